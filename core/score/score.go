// Package score aggregates quality/fit dimension scores and adapts
// either score family to the single level/adjustment pair the pricing
// calculators consume.
//
// Two families coexist: the legacy 5-dimension brand-fit model and the
// newer 6-dimension deal-quality model. Both produce a weighted 0-100
// total classified into four levels; only the level feeds pricing.
package score

import "ratecard/core/types"

// Legacy brand-fit dimension weights. They sum to 100.
const (
	weightNicheMatch       = 30
	weightDemographics     = 25
	weightEngagement       = 20
	weightPlatformPresence = 15
	weightRateFairness     = 10
)

// Deal-quality dimension weights. They sum to 100.
const (
	weightDQRateFairness    = 25
	weightDQBrandLegitimacy = 20
	weightDQTermsFairness   = 20
	weightDQCreativeFreedom = 15
	weightDQPortfolioValue  = 10
	weightDQGrowthPotential = 10
)

// Level classification thresholds on the 0-100 total
const (
	thresholdTop  = 85
	thresholdHigh = 70
	thresholdMid  = 50
)

// levelAdjustments maps the normalized fit level to the single
// multiplicative price adjustment pricing applies
var levelAdjustments = map[types.FitLevel]float64{
	types.FitPerfect: 0.25,
	types.FitHigh:    0.15,
	types.FitMedium:  0,
	types.FitLow:     -0.10,
}

// qualityToFit maps the newer quality levels onto the legacy fit levels
var qualityToFit = map[types.QualityLevel]types.FitLevel{
	types.QualityExcellent: types.FitPerfect,
	types.QualityGood:      types.FitHigh,
	types.QualityFair:      types.FitMedium,
	types.QualityCaution:   types.FitLow,
}

// clamp bounds a dimension score to the 0-100 scale
func clamp(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

// BrandFit aggregates the legacy five dimensions into a scored result.
func BrandFit(b types.BrandFitBreakdown) *types.BrandFitResult {
	total := (clamp(b.NicheMatch)*weightNicheMatch +
		clamp(b.Demographics)*weightDemographics +
		clamp(b.Engagement)*weightEngagement +
		clamp(b.PlatformPresence)*weightPlatformPresence +
		clamp(b.RateFairness)*weightRateFairness) / 100

	return &types.BrandFitResult{
		Total:     total,
		Level:     fitLevelFor(total),
		Breakdown: b,
	}
}

// DealQuality aggregates the newer six dimensions into a scored result.
func DealQuality(b types.DealQualityBreakdown) *types.DealQualityResult {
	total := (clamp(b.RateFairness)*weightDQRateFairness +
		clamp(b.BrandLegitimacy)*weightDQBrandLegitimacy +
		clamp(b.TermsFairness)*weightDQTermsFairness +
		clamp(b.CreativeFreedom)*weightDQCreativeFreedom +
		clamp(b.PortfolioValue)*weightDQPortfolioValue +
		clamp(b.GrowthPotential)*weightDQGrowthPotential) / 100

	return &types.DealQualityResult{
		Total:     total,
		Level:     qualityLevelFor(total),
		Breakdown: b,
	}
}

func fitLevelFor(total float64) types.FitLevel {
	switch {
	case total >= thresholdTop:
		return types.FitPerfect
	case total >= thresholdHigh:
		return types.FitHigh
	case total >= thresholdMid:
		return types.FitMedium
	default:
		return types.FitLow
	}
}

func qualityLevelFor(total float64) types.QualityLevel {
	switch {
	case total >= thresholdTop:
		return types.QualityExcellent
	case total >= thresholdHigh:
		return types.QualityGood
	case total >= thresholdMid:
		return types.QualityFair
	default:
		return types.QualityCaution
	}
}

// Normalize reduces either score variant to the fit level and price
// adjustment pricing needs. A nil or empty input is treated as a
// medium fit with no adjustment.
func Normalize(in *types.ScoreInput) (types.FitLevel, float64) {
	level := types.FitMedium

	switch {
	case in == nil:
	case in.Kind == types.ScoreDealQuality && in.DealQuality != nil:
		if mapped, ok := qualityToFit[in.DealQuality.Level]; ok {
			level = mapped
		}
	case in.BrandFit != nil:
		if _, ok := levelAdjustments[in.BrandFit.Level]; ok {
			level = in.BrandFit.Level
		}
	}

	return level, levelAdjustments[level]
}

// Adjustment returns the price adjustment for a fit level.
// Unknown levels adjust by 0.
func Adjustment(level types.FitLevel) float64 {
	return levelAdjustments[level]
}
