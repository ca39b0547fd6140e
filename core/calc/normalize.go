// Package calc - brief normalization
// Optional brief fields get their named defaults applied here, at the
// engine boundary, so the calculators never null-coalesce.
package calc

import (
	"time"

	"ratecard/core/types"
)

// Defaults are the named defaults for optional brief fields
type Defaults struct {
	// Whitelisting is assumed when a brief names no whitelisting terms
	Whitelisting types.WhitelistingType

	// SeasonalPricing enables calendar-based demand premiums
	SeasonalPricing bool

	// Now supplies the current time for briefs without a campaign date
	Now func() time.Time
}

// DefaultDefaults returns the engine's standard defaults
func DefaultDefaults() Defaults {
	return Defaults{
		Whitelisting:    types.WhitelistingNone,
		SeasonalPricing: true,
		Now:             time.Now,
	}
}

// normalizedBrief is a brief with all optional fields resolved
type normalizedBrief struct {
	types.ParsedBrief

	// campaignDate is always set
	campaignDate time.Time

	// seasonal is false when seasonal pricing is off for this brief
	seasonal bool
}

// normalize resolves a brief's optional fields against the defaults.
// Malformed values are normalized to safe defaults, never rejected.
func normalize(brief *types.ParsedBrief, d Defaults) normalizedBrief {
	var n normalizedBrief
	if brief != nil {
		n.ParsedBrief = *brief
	}
	n.seasonal = d.SeasonalPricing && !n.SeasonalPricingDisabled

	if n.PricingModel == "" {
		n.PricingModel = types.ModelFlatFee
	}
	if n.Content.Quantity < 1 {
		n.Content.Quantity = 1
	}
	if n.Usage.Exclusivity == "" {
		n.Usage.Exclusivity = types.ExclusivityNone
	}
	if n.Usage.Whitelisting == "" {
		n.Usage.Whitelisting = d.Whitelisting
	}
	if n.Usage.DurationDays < 0 {
		n.Usage.DurationDays = 0
	}

	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	if n.CampaignDate != nil && !n.CampaignDate.IsZero() {
		n.campaignDate = *n.CampaignDate
	} else {
		n.campaignDate = now()
	}

	return n
}
