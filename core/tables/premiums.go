// Package tables - additive premium tables
// Premiums are fractions added on top of the running price: a premium
// of 0.25 turns into a 1.25 multiplier in the formula.
package tables

import "ratecard/core/types"

// formatPremiums maps content format to its production premium.
// Static posts are the 0 baseline; stories price below it.
var formatPremiums = map[types.ContentFormat]float64{
	types.FormatStatic:   0,
	types.FormatCarousel: 0.15,
	types.FormatStory:    -0.15,
	types.FormatReel:     0.25,
	types.FormatVideo:    0.35,
	types.FormatLive:     0.40,
}

// FormatPremium returns the additive premium for a content format.
// Unknown formats resolve to the static baseline (0).
func FormatPremium(format types.ContentFormat) float64 {
	return formatPremiums[format]
}

// usageTier is one rung of the usage-duration ladder
type usageTier struct {
	maxDays int // inclusive upper bound
	premium float64
}

// usageTiers is checked ascending; the first bound that covers the
// duration wins. Anything beyond a year is priced as perpetual.
var usageTiers = []usageTier{
	{0, 0},
	{30, 0.25},
	{60, 0.35},
	{90, 0.45},
	{180, 0.6},
	{365, 0.8},
}

const perpetualUsagePremium = 1.0

// UsageDurationPremium returns the additive premium for a usage window
// in days. Negative durations are treated as zero.
func UsageDurationPremium(days int) float64 {
	if days < 0 {
		days = 0
	}
	for _, t := range usageTiers {
		if days <= t.maxDays {
			return t.premium
		}
	}
	return perpetualUsagePremium
}

// exclusivityPremiums maps lockout level to its additive premium.
// Unknown levels resolve to none (0).
var exclusivityPremiums = map[types.ExclusivityLevel]float64{
	types.ExclusivityNone:     0,
	types.ExclusivityCategory: 0.3,
	types.ExclusivityFull:     0.5,
}

// ExclusivityPremium returns the additive premium for a lockout level.
func ExclusivityPremium(level types.ExclusivityLevel) float64 {
	return exclusivityPremiums[level]
}

// whitelistingPremiums maps brand reuse rights to additive premiums.
// Unknown types resolve to none (0).
var whitelistingPremiums = map[types.WhitelistingType]float64{
	types.WhitelistingNone:      0,
	types.WhitelistingOrganic:   0.5,
	types.WhitelistingPaid:      1.0,
	types.WhitelistingFullMedia: 2.0,
}

// WhitelistingPremium returns the additive premium for a whitelisting type.
func WhitelistingPremium(wt types.WhitelistingType) float64 {
	return whitelistingPremiums[wt]
}

// ComplexityLevel grades how much production work a format demands
type ComplexityLevel string

const (
	ComplexitySimple     ComplexityLevel = "simple"
	ComplexityStandard   ComplexityLevel = "standard"
	ComplexityComplex    ComplexityLevel = "complex"
	ComplexityProduction ComplexityLevel = "production"
)

// complexityPremiums maps complexity level to its additive premium
var complexityPremiums = map[ComplexityLevel]float64{
	ComplexitySimple:     0,
	ComplexityStandard:   0.15,
	ComplexityComplex:    0.3,
	ComplexityProduction: 0.5,
}

// formatComplexity maps sponsored content formats to their complexity
// level. Unknown formats resolve to simple.
var formatComplexity = map[types.ContentFormat]ComplexityLevel{
	types.FormatStatic:   ComplexitySimple,
	types.FormatStory:    ComplexitySimple,
	types.FormatCarousel: ComplexityStandard,
	types.FormatReel:     ComplexityStandard,
	types.FormatVideo:    ComplexityComplex,
	types.FormatLive:     ComplexityProduction,
}

// ugcFormatComplexity maps UGC formats to their complexity level.
// UGC photos are simple shoots; UGC video is standard production.
var ugcFormatComplexity = map[types.ContentFormat]ComplexityLevel{
	types.FormatPhoto: ComplexitySimple,
	types.FormatVideo: ComplexityStandard,
}

// ComplexityFor returns the complexity level of a sponsored format.
func ComplexityFor(format types.ContentFormat) ComplexityLevel {
	if lvl, ok := formatComplexity[format]; ok {
		return lvl
	}
	return ComplexitySimple
}

// UGCComplexityFor returns the complexity level of a UGC format.
func UGCComplexityFor(format types.ContentFormat) ComplexityLevel {
	if lvl, ok := ugcFormatComplexity[format]; ok {
		return lvl
	}
	return ComplexitySimple
}

// ComplexityPremium returns the additive premium for a complexity level.
// Unknown levels resolve to simple (0).
func ComplexityPremium(level ComplexityLevel) float64 {
	return complexityPremiums[level]
}
