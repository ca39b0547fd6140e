package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ratecard/core/types"
	"ratecard/internal/errors"
)

func affiliateConfig() *types.AffiliateConfig {
	return &types.AffiliateConfig{
		CommissionRate: 20,
		EstimatedSales: 500,
		AvgOrderValue:  decimal.NewFromInt(85),
		Category:       "beauty",
	}
}

func TestAffiliateOnlyScenario(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelAffiliate
	brief.Affiliate = affiliateConfig()

	result, err := CalculatePrice(microProfile(), brief, nil)
	require.NoError(err)

	require.Equal(types.ModelAffiliate, result.PricingModel)
	// Pure commission: no flat fee at all
	require.True(result.PricePerDeliverable.IsZero())
	require.True(result.TotalPrice.IsZero())

	require.NotNil(result.Affiliate)
	// 500 × 85 × 0.20 = 8500
	require.True(result.Affiliate.EstimatedEarnings.Equal(decimal.NewFromInt(8500)),
		"got %s", result.Affiliate.EstimatedEarnings)
	require.Equal("beauty", result.Affiliate.Category)
}

func TestAffiliateEarningsRounding(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelAffiliate
	brief.Affiliate = &types.AffiliateConfig{
		CommissionRate: 12.5,
		EstimatedSales: 33,
		AvgOrderValue:  decimal.NewFromFloat(49.99),
	}

	result, err := CalculatePrice(microProfile(), brief, nil)
	require.NoError(err)

	// 33 × 49.99 × 0.125 = 206.20875, rounds to 205
	require.True(result.Affiliate.EstimatedEarnings.Equal(decimal.NewFromInt(205)),
		"got %s", result.Affiliate.EstimatedEarnings)
	require.Equal("other", result.Affiliate.Category)
}

func TestAffiliateDefaultRateFromCategory(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelAffiliate
	brief.Affiliate = &types.AffiliateConfig{
		EstimatedSales: 100,
		AvgOrderValue:  decimal.NewFromInt(50),
		Category:       "fitness",
	}

	result, err := CalculatePrice(microProfile(), brief, nil)
	require.NoError(err)

	// No rate named: the fitness default (20%) applies
	require.Equal(20.0, result.Affiliate.CommissionRate)
	// 100 × 50 × 0.20 = 1000
	require.True(result.Affiliate.EstimatedEarnings.Equal(decimal.NewFromInt(1000)),
		"got %s", result.Affiliate.EstimatedEarnings)
	require.True(result.Affiliate.RateWithinRange)
	require.Equal(10.0, result.Affiliate.TypicalRateMin)
	require.Equal(30.0, result.Affiliate.TypicalRateMax)
}

func TestAffiliateRateOutsideTypicalRange(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelAffiliate
	brief.Affiliate = &types.AffiliateConfig{
		CommissionRate: 40,
		EstimatedSales: 10,
		AvgOrderValue:  decimal.NewFromInt(100),
		Category:       "tech",
	}

	result, err := CalculatePrice(microProfile(), brief, nil)
	require.NoError(err)

	// The named rate is honored even above the tech band (5–15), but
	// the breakdown flags it
	require.Equal(40.0, result.Affiliate.CommissionRate)
	require.False(result.Affiliate.RateWithinRange)
	// 10 × 100 × 0.40 = 400
	require.True(result.Affiliate.EstimatedEarnings.Equal(decimal.NewFromInt(400)))
}

func TestAffiliateRequiresConfig(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelAffiliate

	_, err := CalculatePrice(microProfile(), brief, nil)
	require.Error(err)
	require.True(errors.IsType(err, errors.TypeConfig))

	_, err = CalculateAffiliatePricing(brief, microProfile())
	require.Error(err)
	require.True(errors.IsType(err, errors.TypeConfig))
}

func TestHybridHalvesFlatFee(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelHybrid
	brief.Affiliate = affiliateConfig()

	result, err := CalculatePrice(microProfile(), brief, mediumScore())
	require.NoError(err)

	require.Equal(types.ModelHybrid, result.PricingModel)
	// The flat fee would be 400; the hybrid discount halves it
	require.True(result.PricePerDeliverable.Equal(decimal.NewFromInt(200)))
	require.True(result.TotalPrice.Equal(decimal.NewFromInt(200)))

	require.NotNil(result.Hybrid)
	require.True(result.Hybrid.FullFlatFee.Equal(decimal.NewFromInt(400)))
	require.True(result.Hybrid.BaseFee.Equal(decimal.NewFromInt(200)))
	require.True(result.Hybrid.Affiliate.EstimatedEarnings.Equal(decimal.NewFromInt(8500)))
	require.True(result.Hybrid.EstimatedTotal.Equal(decimal.NewFromInt(8700)))
}

func TestHybridLayersReplayToDiscountedPrice(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelHybrid
	brief.Affiliate = affiliateConfig()

	result, err := CalculatePrice(microProfile(), brief, mediumScore())
	require.NoError(err)

	// The discount and its re-rounding appear as the final two layers
	require.GreaterOrEqual(len(result.Layers), 2)
	discount := result.Layers[len(result.Layers)-2]
	require.Equal("hybrid_discount", discount.Name)
	require.Equal(0.5, discount.Multiplier)
	require.Equal("rounding", result.Layers[len(result.Layers)-1].Name)

	// Replaying the layer list reproduces the discounted price, not
	// the full flat fee
	require.True(Replay(result.Layers).Equal(result.PricePerDeliverable),
		"replay %s vs price %s", Replay(result.Layers), result.PricePerDeliverable)

	sum := decimal.Zero
	for _, l := range result.Layers {
		sum = sum.Add(l.Amount)
	}
	require.True(sum.Equal(result.PricePerDeliverable))

	// The formula derives from the same layers and ends at the same value
	require.Equal(Formula(result.CurrencySymbol, result.Layers), result.Formula)
	require.Contains(result.Formula, "= $200.00")
}

func TestHybridDiscountReRounds(t *testing.T) {
	require := require.New(t)

	// Reels price at 575 (400 × 1.25 format × 1.15 complexity); half is
	// 287.50, which re-rounds to 290
	brief := neutralBrief()
	brief.PricingModel = types.ModelHybrid
	brief.Affiliate = affiliateConfig()
	brief.Content.Format = types.FormatReel

	result, err := CalculatePrice(microProfile(), brief, mediumScore())
	require.NoError(err)

	require.True(result.Hybrid.FullFlatFee.Equal(decimal.NewFromInt(575)))
	require.True(result.PricePerDeliverable.Equal(decimal.NewFromInt(290)))
	require.True(Replay(result.Layers).Equal(decimal.NewFromInt(290)))
}

func TestHybridRequiresAffiliateConfig(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelHybrid

	_, err := CalculatePrice(microProfile(), brief, nil)
	require.Error(err)
	require.True(errors.IsType(err, errors.TypeConfig))
}

func TestPerformanceOverlay(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelPerformance
	brief.Performance = &types.PerformanceConfig{
		BonusAmount: decimal.NewFromInt(250),
		Threshold:   10_000,
		Metric:      types.MetricClicks,
	}

	result, err := CalculatePrice(microProfile(), brief, mediumScore())
	require.NoError(err)

	require.Equal(types.ModelPerformance, result.PricingModel)
	// The guaranteed fee is the full standard flat fee
	require.True(result.PricePerDeliverable.Equal(decimal.NewFromInt(400)))

	require.NotNil(result.Performance)
	require.True(result.Performance.GuaranteedTotal.Equal(decimal.NewFromInt(400)))
	require.True(result.Performance.PotentialTotal.Equal(decimal.NewFromInt(650)))
	require.Equal(types.MetricClicks, result.Performance.Metric)
	require.Equal(int64(10_000), result.Performance.Threshold)
}

func TestPerformanceRequiresConfig(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelPerformance

	_, err := CalculatePrice(microProfile(), brief, nil)
	require.Error(err)
	require.True(errors.IsType(err, errors.TypeConfig))
}
