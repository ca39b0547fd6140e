// Package calc - standard sponsored-content calculator
package calc

import (
	"fmt"

	"ratecard/core/score"
	"ratecard/core/season"
	"ratecard/core/tables"
	"ratecard/core/types"
)

// calculateStandard runs the eleven-layer audience-based formula for
// ordinary sponsored content. Layer order is significant: it is the
// computation order and is reproduced verbatim in the formula string.
func calculateStandard(profile *types.CreatorProfile, brief normalizedBrief, scoreIn *types.ScoreInput) *types.PricingResult {
	tier := tables.TierForFollowers(profile.TotalReach())
	currency := tables.ResolveCurrency(profile.Currency)

	// Layer 1: base rate by tier
	b := newLayerBuilder(
		"base_rate",
		"Base rate for creator tier",
		tier.String(),
		tables.BaseRate(tier),
	)

	// Layer 2: platform
	platform := brief.Content.Platform
	b.multiply("platform",
		"Platform rate multiplier",
		platform.String(),
		tables.PlatformMultiplier(platform))

	// Layer 3: region
	b.multiply("region",
		"Regional market multiplier",
		displayRegion(profile.Region),
		tables.RegionMultiplier(profile.Region))

	// Layer 4: engagement bracket
	engagement := profile.AvgEngagementRate()
	b.multiply("engagement",
		"Engagement rate bracket",
		fmt.Sprintf("%.1f%%", engagement),
		tables.EngagementMultiplier(engagement))

	// Layer 5: niche premium
	b.multiply("niche",
		"Content niche premium",
		displayNiche(profile.Niche),
		tables.NichePremium(profile.Niche))

	// Layer 6: content format
	format := brief.Content.Format
	b.premium("format",
		"Content format premium",
		string(format),
		tables.FormatPremium(format))

	// Layer 7: quality/fit adjustment
	level, adjustment := score.Normalize(scoreIn)
	b.premium("quality_fit",
		"Deal quality / brand fit adjustment",
		string(level),
		adjustment)

	// Layer 8: usage rights (duration + exclusivity as one layer)
	usagePremium := tables.UsageDurationPremium(brief.Usage.DurationDays) +
		tables.ExclusivityPremium(brief.Usage.Exclusivity)
	b.premium("usage_rights",
		"Usage duration and exclusivity premium",
		fmt.Sprintf("%d days, %s exclusivity", brief.Usage.DurationDays, brief.Usage.Exclusivity),
		usagePremium)

	// Layer 9: whitelisting
	b.premium("whitelisting",
		"Brand whitelisting premium",
		string(brief.Usage.Whitelisting),
		tables.WhitelistingPremium(brief.Usage.Whitelisting))

	// Layer 10: complexity
	complexity := tables.ComplexityFor(format)
	b.premium("complexity",
		"Production complexity premium",
		string(complexity),
		tables.ComplexityPremium(complexity))

	// Layer 11: seasonal demand
	b.premium(seasonalLayer(brief))

	return finishResult(types.ModelFlatFee, b, brief.Content.Quantity, currency)
}

// seasonalLayer resolves the seasonal layer inputs for a brief
func seasonalLayer(brief normalizedBrief) (name, description, input string, premium float64) {
	period := season.PeriodDefault
	if brief.seasonal {
		period = season.Resolve(brief.campaignDate)
	}
	return "seasonal",
		"Seasonal demand premium",
		string(period),
		season.Premium(period)
}

func displayRegion(region string) string {
	if region == "" {
		return "united_states"
	}
	return region
}

func displayNiche(niche string) string {
	if niche == "" {
		return "lifestyle"
	}
	return niche
}
