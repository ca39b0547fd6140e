package calc

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"ratecard/core/types"
	"ratecard/internal/errors"
)

func TestRetainerThreeMonthDiscount(t *testing.T) {
	require := require.New(t)

	cfg := &types.RetainerConfig{
		Length: types.ContractThreeMonth,
		MonthlyDeliverables: map[string]int{
			"post": 2,
			"reel": 1,
		},
	}

	breakdown := CalculateRetainerPrice(decimal.NewFromInt(400), cfg, types.TierMicro)

	require.Equal(3, breakdown.Months)
	require.Equal(0.15, breakdown.VolumeDiscount)

	// Discounted rates: post 400×1.0×0.85=340, reel 400×1.25×0.85=425
	require.True(breakdown.MonthlyRates["post"].Equal(decimal.NewFromInt(340)))
	require.True(breakdown.MonthlyRates["reel"].Equal(decimal.NewFromInt(425)))
	require.True(breakdown.MonthlyRates["story"].Equal(decimal.NewFromInt(102)))

	// Monthly: 2×340 + 425 = 1105; contract: 1105 × 3 = 3315
	require.True(breakdown.MonthlyContentValue.Equal(decimal.NewFromInt(1105)))
	require.True(breakdown.TotalContentValue.Equal(decimal.NewFromInt(3315)))
	require.True(breakdown.TotalContractValue.Equal(decimal.NewFromInt(3315)))
	require.True(breakdown.ExclusivityPremium.IsZero())
	require.True(breakdown.EventValue.IsZero())
}

func TestRetainerTwelveMonthAmbassador(t *testing.T) {
	require := require.New(t)

	cfg := &types.RetainerConfig{
		Length: types.ContractTwelveMonth,
		MonthlyDeliverables: map[string]int{
			"post": 1,
		},
		Perks: &types.AmbassadorPerks{
			Exclusivity:         types.ExclusivityCategory,
			EventAppearances:    2,
			ProductSeeding:      true,
			ProductSeedingValue: decimal.NewFromInt(800),
		},
	}

	breakdown := CalculateRetainerPrice(decimal.NewFromInt(400), cfg, types.TierMicro)

	require.Equal(12, breakdown.Months)
	require.Equal(0.35, breakdown.VolumeDiscount)

	// Post rate 400 × 0.65 = 260; content 260 × 12 = 3120
	require.True(breakdown.TotalContentValue.Equal(decimal.NewFromInt(3120)))

	// Exclusivity: 260 × 0.5 × 12 = 1560
	require.True(breakdown.ExclusivityPremium.Equal(decimal.NewFromInt(1560)))

	// Events: 2 × 500 micro-tier default day rate
	require.True(breakdown.EventValue.Equal(decimal.NewFromInt(1000)))

	// Seeding is reported but excluded from the monetary total
	require.True(breakdown.ProductSeedingValue.Equal(decimal.NewFromInt(800)))
	require.True(breakdown.TotalContractValue.Equal(decimal.NewFromInt(5680)))
}

func TestRetainerExplicitDayRateWins(t *testing.T) {
	require := require.New(t)

	cfg := &types.RetainerConfig{
		Length:              types.ContractSixMonth,
		MonthlyDeliverables: map[string]int{"post": 1},
		Perks: &types.AmbassadorPerks{
			EventAppearances: 3,
			EventDayRate:     decimal.NewFromInt(1200),
		},
	}

	breakdown := CalculateRetainerPrice(decimal.NewFromInt(400), cfg, types.TierMicro)
	require.True(breakdown.EventValue.Equal(decimal.NewFromInt(3600)))
}

func TestRetainerFullExclusivity(t *testing.T) {
	require := require.New(t)

	cfg := &types.RetainerConfig{
		Length:              types.ContractThreeMonth,
		MonthlyDeliverables: map[string]int{"post": 1},
		Perks: &types.AmbassadorPerks{
			Exclusivity: types.ExclusivityFull,
		},
	}

	breakdown := CalculateRetainerPrice(decimal.NewFromInt(400), cfg, types.TierMicro)

	// Monthly content 340; full exclusivity doubles it per month:
	// 340 × 1.0 × 3 = 1020
	require.True(breakdown.ExclusivityPremium.Equal(decimal.NewFromInt(1020)))
}

func TestRetainerRoutesThroughStandardBase(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.Retainer = &types.RetainerConfig{
		Length:              types.ContractThreeMonth,
		MonthlyDeliverables: map[string]int{"post": 2, "reel": 1},
	}

	result, err := CalculatePrice(microProfile(), brief, mediumScore())
	require.NoError(err)

	require.Equal(types.ModelRetainer, result.PricingModel)
	// The standard calculator's per-deliverable rate seeds the retainer
	require.True(result.PricePerDeliverable.Equal(decimal.NewFromInt(400)))
	require.NotNil(result.Retainer)
	require.True(result.TotalPrice.Equal(result.Retainer.TotalContractValue))
	require.True(result.Retainer.TotalContractValue.Equal(decimal.NewFromInt(3315)))
}

func TestRetainerModelWithoutConfigFails(t *testing.T) {
	require := require.New(t)

	brief := neutralBrief()
	brief.PricingModel = types.ModelRetainer

	_, err := CalculatePrice(microProfile(), brief, nil)
	require.Error(err)
	require.True(errors.IsType(err, errors.TypeConfig))
}

func TestRetainerComponentsAreMultiplesOfFive(t *testing.T) {
	require := require.New(t)

	five := decimal.NewFromInt(5)
	cfg := &types.RetainerConfig{
		Length: types.ContractSixMonth,
		MonthlyDeliverables: map[string]int{
			"post": 3, "story": 7, "reel": 2, "video": 1,
		},
		Perks: &types.AmbassadorPerks{
			Exclusivity:      types.ExclusivityCategory,
			EventAppearances: 1,
		},
	}

	breakdown := CalculateRetainerPrice(decimal.NewFromInt(415), cfg, types.TierMid)

	require.True(breakdown.TotalContentValue.Mod(five).IsZero())
	require.True(breakdown.ExclusivityPremium.Mod(five).IsZero())
	require.True(breakdown.EventValue.Mod(five).IsZero())
	require.True(breakdown.TotalContractValue.Mod(five).IsZero())
}
