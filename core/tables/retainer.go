// Package tables - UGC and retainer rate tables
package tables

import (
	"github.com/shopspring/decimal"

	"ratecard/core/types"
)

// ugcBaseRates prices UGC as a flat production service, independent of
// audience size. Unknown formats fall back to the photo rate.
var ugcBaseRates = map[types.ContentFormat]decimal.Decimal{
	types.FormatVideo: decimal.NewFromInt(175),
	types.FormatPhoto: decimal.NewFromInt(100),
}

// UGCBaseRate returns the flat base rate for a UGC format.
func UGCBaseRate(format types.ContentFormat) decimal.Decimal {
	if rate, ok := ugcBaseRates[format]; ok {
		return rate
	}
	return ugcBaseRates[types.FormatPhoto]
}

// contractTerm resolves a contract length to months and volume discount
type contractTerm struct {
	months   int
	discount float64
}

// contractTerms maps contract length to its term. Longer commitments
// buy deeper volume discounts. Unknown lengths resolve to one_time.
var contractTerms = map[types.ContractLength]contractTerm{
	types.ContractOneTime:     {1, 0},
	types.ContractOneMonth:    {1, 0},
	types.ContractThreeMonth:  {3, 0.15},
	types.ContractSixMonth:    {6, 0.25},
	types.ContractTwelveMonth: {12, 0.35},
}

// ContractTerm returns the months and volume discount for a length.
func ContractTerm(length types.ContractLength) (months int, discount float64) {
	if t, ok := contractTerms[length]; ok {
		return t.months, t.discount
	}
	t := contractTerms[types.ContractOneTime]
	return t.months, t.discount
}

// RetainerContentTypes is the fixed order retainer rates are derived
// and reported in.
var RetainerContentTypes = []string{"post", "story", "reel", "video"}

// retainerFormatMultipliers derives per-content-type monthly rates from
// the standard calculator's per-deliverable base rate
var retainerFormatMultipliers = map[string]float64{
	"post":  1.0,
	"story": 0.3,
	"reel":  1.25,
	"video": 1.5,
}

// RetainerFormatMultiplier returns the rate multiplier for a retainer
// content type. Unknown types price as a plain post.
func RetainerFormatMultiplier(contentType string) float64 {
	if m, ok := retainerFormatMultipliers[contentType]; ok {
		return m
	}
	return 1.0
}

// ambassadorExclusivityFactors scales the monthly content value into an
// exclusivity premium over the contract
var ambassadorExclusivityFactors = map[types.ExclusivityLevel]float64{
	types.ExclusivityNone:     0,
	types.ExclusivityCategory: 0.5,
	types.ExclusivityFull:     1.0,
}

// AmbassadorExclusivityFactor returns the premium factor for an
// ambassador lockout level. Unknown levels resolve to none (0).
func AmbassadorExclusivityFactor(level types.ExclusivityLevel) float64 {
	return ambassadorExclusivityFactors[level]
}
