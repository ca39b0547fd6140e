// Package calc - UGC calculator
package calc

import (
	"fmt"

	"ratecard/core/tables"
	"ratecard/core/types"
)

// calculateUGC prices user-generated content as a flat production
// service. Tier, platform, region, engagement, niche, and fit layers
// are deliberately absent: the brand is buying content, not reach.
func calculateUGC(profile *types.CreatorProfile, brief normalizedBrief) *types.PricingResult {
	currency := tables.ResolveCurrency(profile.Currency)
	format := ugcFormat(brief.Content.Format)

	// Layer 1: base rate by UGC format
	b := newLayerBuilder(
		"ugc_base_rate",
		"Base production rate for UGC format",
		string(format),
		tables.UGCBaseRate(format),
	)

	// Layer 2: usage rights (duration + exclusivity)
	usagePremium := tables.UsageDurationPremium(brief.Usage.DurationDays) +
		tables.ExclusivityPremium(brief.Usage.Exclusivity)
	b.premium("usage_rights",
		"Usage duration and exclusivity premium",
		fmt.Sprintf("%d days, %s exclusivity", brief.Usage.DurationDays, brief.Usage.Exclusivity),
		usagePremium)

	// Layer 3: whitelisting
	b.premium("whitelisting",
		"Brand whitelisting premium",
		string(brief.Usage.Whitelisting),
		tables.WhitelistingPremium(brief.Usage.Whitelisting))

	// Layer 4: complexity (UGC-specific table)
	complexity := tables.UGCComplexityFor(format)
	b.premium("complexity",
		"Production complexity premium",
		string(complexity),
		tables.ComplexityPremium(complexity))

	// Layer 5: seasonal demand
	b.premium(seasonalLayer(brief))

	return finishResult(types.ModelFlatFee, b, brief.Content.Quantity, currency)
}

// ugcFormat coerces a brief format to the UGC format set. Anything
// that is not a video prices as a photo shoot.
func ugcFormat(format types.ContentFormat) types.ContentFormat {
	if format == types.FormatVideo || format == types.FormatReel {
		return types.FormatVideo
	}
	return types.FormatPhoto
}
