// Package calc - commission-based overlays
// Affiliate math either replaces the flat fee (affiliate-only) or is
// layered on top of the standard calculator's result (hybrid,
// performance). Overlays receive the standard result by composition;
// they never recompute or mutate it.
package calc

import (
	"fmt"

	"github.com/shopspring/decimal"

	"ratecard/core/tables"
	"ratecard/core/types"
	"ratecard/internal/errors"
)

// hybridDiscount halves the flat fee on fee-plus-commission deals
const hybridDiscount = 0.5

// affiliateEarnings computes the commission component of a deal:
// estimated sales * average order value * rate, rounded to nearest 5.
// A brief without a rate is priced at the category's default rate, and
// the applied rate is checked against the category's typical band.
func affiliateEarnings(cfg *types.AffiliateConfig) types.AffiliateBreakdown {
	category, band := tables.CommissionRangeFor(cfg.Category)
	rate := cfg.CommissionRate
	if rate <= 0 {
		rate = band.Default
	}
	earnings := decimal.NewFromInt(cfg.EstimatedSales).Mul(cfg.AvgOrderValue).
		Mul(decimal.NewFromFloat(rate).Div(decimal.NewFromInt(100)))

	return types.AffiliateBreakdown{
		CommissionRate:    rate,
		EstimatedSales:    cfg.EstimatedSales,
		AvgOrderValue:     cfg.AvgOrderValue,
		Category:          category,
		TypicalRateMin:    band.Min,
		TypicalRateMax:    band.Max,
		RateWithinRange:   rate >= band.Min && rate <= band.Max,
		EstimatedEarnings: roundToStep(earnings),
	}
}

// calculateAffiliate prices a pure-commission deal. There is no flat
// fee: the per-deliverable price is 0 and compensation is entirely the
// estimated commission.
func calculateAffiliate(profile *types.CreatorProfile, brief normalizedBrief) (*types.PricingResult, error) {
	if brief.Affiliate == nil {
		return nil, errors.Config("affiliate pricing model requires an affiliate configuration")
	}

	currency := tables.ResolveCurrency(profile.Currency)
	breakdown := affiliateEarnings(brief.Affiliate)

	return &types.PricingResult{
		PricingModel:        types.ModelAffiliate,
		PricePerDeliverable: decimal.Zero,
		Quantity:            brief.Content.Quantity,
		TotalPrice:          decimal.Zero,
		Currency:            currency.Code,
		CurrencySymbol:      currency.Symbol,
		ValidityDays:        types.QuoteValidityDays,
		Formula: fmt.Sprintf("%d sales × %s%s × %.1f%% = %s%s estimated commission",
			breakdown.EstimatedSales,
			currency.Symbol, breakdown.AvgOrderValue.StringFixed(2),
			breakdown.CommissionRate,
			currency.Symbol, breakdown.EstimatedEarnings.StringFixed(2)),
		Affiliate: &breakdown,
	}, nil
}

// applyHybrid overlays commission math on a standard flat-fee result:
// the guaranteed fee is the flat fee at the hybrid discount, and the
// commission component is added on top.
func applyHybrid(flat *types.PricingResult, brief normalizedBrief) (*types.PricingResult, error) {
	if brief.Affiliate == nil {
		return nil, errors.Config("hybrid pricing model requires an affiliate configuration")
	}

	halved := flat.PricePerDeliverable.Mul(decimal.NewFromFloat(hybridDiscount))
	perDeliverable := roundToStep(halved)
	baseFee := perDeliverable.Mul(decimal.NewFromInt(int64(flat.Quantity)))
	commission := affiliateEarnings(brief.Affiliate)

	layers := append([]types.PricingLayer(nil), flat.Layers...)
	layers = append(layers, types.PricingLayer{
		Name:        "hybrid_discount",
		Description: "Flat fee discounted against commission upside",
		Input:       fmt.Sprintf("%.0f%% of flat fee", hybridDiscount*100),
		Multiplier:  hybridDiscount,
		Amount:      halved.Sub(flat.PricePerDeliverable),
	}, types.PricingLayer{
		Name:        "rounding",
		Description: "Rounded to the nearest $5",
		Input:       halved.StringFixed(2),
		Multiplier:  1.0,
		Amount:      perDeliverable.Sub(halved),
	})

	result := *flat
	result.PricingModel = types.ModelHybrid
	result.PricePerDeliverable = perDeliverable
	result.TotalPrice = baseFee
	result.Layers = layers
	result.Formula = Formula(flat.CurrencySymbol, layers)
	result.Hybrid = &types.HybridBreakdown{
		FullFlatFee:    flat.TotalPrice,
		BaseFee:        baseFee,
		Affiliate:      commission,
		EstimatedTotal: baseFee.Add(commission.EstimatedEarnings),
	}
	return &result, nil
}

// applyPerformance overlays a fixed bonus on a standard flat-fee
// result. The guaranteed total excludes the bonus; the potential total
// includes it.
func applyPerformance(flat *types.PricingResult, brief normalizedBrief) (*types.PricingResult, error) {
	if brief.Performance == nil {
		return nil, errors.Config("performance pricing model requires a performance configuration")
	}

	cfg := brief.Performance
	result := *flat
	result.PricingModel = types.ModelPerformance
	result.Performance = &types.PerformanceBreakdown{
		BaseFee:         flat.TotalPrice,
		BonusAmount:     cfg.BonusAmount,
		Threshold:       cfg.Threshold,
		Metric:          cfg.Metric,
		GuaranteedTotal: flat.TotalPrice,
		PotentialTotal:  flat.TotalPrice.Add(cfg.BonusAmount),
	}
	return &result, nil
}
