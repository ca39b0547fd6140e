// Package tables - affiliate commission-rate ranges
package tables

import "strings"

// CommissionRange is the typical commission band for a product category
type CommissionRange struct {
	// Min is the low end of the typical rate, percent
	Min float64 `json:"min"`

	// Max is the high end of the typical rate, percent
	Max float64 `json:"max"`

	// Default is the rate assumed when a brief names no rate
	Default float64 `json:"default"`
}

// AffiliateFallbackCategory absorbs briefs with no recognizable category
const AffiliateFallbackCategory = "other"

// commissionRanges covers the eight named product categories plus the
// "other" fallback. Rates are percentages.
var commissionRanges = map[string]CommissionRange{
	"beauty":             {Min: 10, Max: 25, Default: 15},
	"fashion":            {Min: 10, Max: 20, Default: 15},
	"fitness":            {Min: 10, Max: 30, Default: 20},
	"tech":               {Min: 5, Max: 15, Default: 10},
	"food_beverage":      {Min: 10, Max: 20, Default: 15},
	"home":               {Min: 8, Max: 20, Default: 12},
	"health_supplements": {Min: 15, Max: 35, Default: 25},
	"digital_products":   {Min: 20, Max: 50, Default: 30},
	"other":              {Min: 10, Max: 20, Default: 15},
}

// CommissionRangeFor returns the typical commission band for a product
// category and the category name it resolved to. Unrecognized or empty
// categories resolve to "other".
func CommissionRangeFor(category string) (string, CommissionRange) {
	key := strings.ToLower(strings.TrimSpace(category))
	if r, ok := commissionRanges[key]; ok {
		return key, r
	}
	return AffiliateFallbackCategory, commissionRanges[AffiliateFallbackCategory]
}
