// Package calc - retainer / ambassador calculator
package calc

import (
	"github.com/shopspring/decimal"

	"ratecard/core/tables"
	"ratecard/core/types"
)

// CalculateRetainerPrice values a multi-month contract from the
// standard calculator's per-deliverable base rate. Content, exclusivity,
// and event components are each rounded to the nearest 5 before they
// are summed; product seeding is reported but never added to the total.
func CalculateRetainerPrice(baseRate decimal.Decimal, cfg *types.RetainerConfig, tier types.Tier) *types.RetainerBreakdown {
	months, discount := tables.ContractTerm(cfg.Length)
	discountFactor := decimal.NewFromFloat(1 - discount)
	monthsDec := decimal.NewFromInt(int64(months))

	// Discounted per-content-type rates and the monthly content value
	rates := make(map[string]decimal.Decimal, len(tables.RetainerContentTypes))
	monthly := decimal.Zero
	for _, contentType := range tables.RetainerContentTypes {
		rate := baseRate.
			Mul(decimal.NewFromFloat(tables.RetainerFormatMultiplier(contentType))).
			Mul(discountFactor)
		rates[contentType] = rate

		if count := cfg.MonthlyDeliverables[contentType]; count > 0 {
			monthly = monthly.Add(rate.Mul(decimal.NewFromInt(int64(count))))
		}
	}

	contentValue := roundToStep(monthly.Mul(monthsDec))

	breakdown := &types.RetainerBreakdown{
		Length:              cfg.Length,
		Months:              months,
		VolumeDiscount:      discount,
		MonthlyRates:        rates,
		MonthlyContentValue: monthly,
		TotalContentValue:   contentValue,
		ExclusivityPremium:  decimal.Zero,
		EventValue:          decimal.Zero,
		ProductSeedingValue: decimal.Zero,
	}

	if perks := cfg.Perks; perks != nil {
		factor := tables.AmbassadorExclusivityFactor(perks.Exclusivity)
		if factor > 0 {
			breakdown.ExclusivityPremium = roundToStep(
				monthly.Mul(decimal.NewFromFloat(factor)).Mul(monthsDec))
		}

		if perks.EventAppearances > 0 {
			dayRate := perks.EventDayRate
			if dayRate.IsZero() || dayRate.IsNegative() {
				dayRate = tables.EventDayRate(tier)
			}
			breakdown.EventValue = roundToStep(
				dayRate.Mul(decimal.NewFromInt(int64(perks.EventAppearances))))
		}

		if perks.ProductSeeding {
			breakdown.ProductSeedingValue = perks.ProductSeedingValue
		}
	}

	breakdown.TotalContractValue = breakdown.TotalContentValue.
		Add(breakdown.ExclusivityPremium).
		Add(breakdown.EventValue)

	return breakdown
}

// applyRetainer turns a standard flat-fee result into a retainer
// contract valuation. The flat result supplies the per-deliverable
// base rate the retainer rates derive from.
func applyRetainer(flat *types.PricingResult, cfg *types.RetainerConfig, tier types.Tier) *types.PricingResult {
	breakdown := CalculateRetainerPrice(flat.PricePerDeliverable, cfg, tier)

	result := *flat
	result.PricingModel = types.ModelRetainer
	result.TotalPrice = breakdown.TotalContractValue
	result.Retainer = breakdown
	return &result
}
