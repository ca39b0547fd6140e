// Package types - pricing output types
package types

import "github.com/shopspring/decimal"

// QuoteValidityDays is the fixed validity window of a produced quote
const QuoteValidityDays = 14

// PricingLayer is one named, ordered step of a pricing formula.
// Layers are append-only; their order is the computation order, and
// replaying them against the base rate reproduces the final price.
type PricingLayer struct {
	// Name identifies the step (e.g., "base_rate", "platform")
	Name string `json:"name"`

	// Description is the human-readable explanation of the step
	Description string `json:"description"`

	// Input is a display value for the step's input
	// (e.g., "instagram", "2.0%", "45 days + category exclusivity")
	Input string `json:"input"`

	// Multiplier is the factor this step applied; 1.0 is a no-op
	Multiplier float64 `json:"multiplier"`

	// Amount is the additive dollar adjustment this step contributed.
	// Summing Amount across all layers yields the per-deliverable price.
	Amount decimal.Decimal `json:"amount"`
}

// AffiliateBreakdown details commission-based earnings
type AffiliateBreakdown struct {
	// CommissionRate is the percentage applied
	CommissionRate float64 `json:"commission_rate"`

	// EstimatedSales is the unit-sales assumption
	EstimatedSales int64 `json:"estimated_sales"`

	// AvgOrderValue is the order-value assumption
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`

	// Category is the resolved product category
	Category string `json:"category"`

	// TypicalRateMin and TypicalRateMax bound the category's typical
	// commission rates, percent
	TypicalRateMin float64 `json:"typical_rate_min"`
	TypicalRateMax float64 `json:"typical_rate_max"`

	// RateWithinRange reports whether the applied rate falls inside
	// the category's typical band
	RateWithinRange bool `json:"rate_within_range"`

	// EstimatedEarnings = sales * AOV * rate/100, rounded to nearest 5
	EstimatedEarnings decimal.Decimal `json:"estimated_earnings"`
}

// HybridBreakdown details a fee-plus-commission deal
type HybridBreakdown struct {
	// FullFlatFee is the standard calculator's result before discount
	FullFlatFee decimal.Decimal `json:"full_flat_fee"`

	// BaseFee is the guaranteed fee after the hybrid discount
	BaseFee decimal.Decimal `json:"base_fee"`

	// Affiliate is the commission component
	Affiliate AffiliateBreakdown `json:"affiliate"`

	// EstimatedTotal = BaseFee + Affiliate.EstimatedEarnings
	EstimatedTotal decimal.Decimal `json:"estimated_total"`
}

// PerformanceBreakdown details a fee-plus-bonus deal
type PerformanceBreakdown struct {
	// BaseFee is the guaranteed standard flat fee
	BaseFee decimal.Decimal `json:"base_fee"`

	// BonusAmount is unlocked at the threshold
	BonusAmount decimal.Decimal `json:"bonus_amount"`

	// Threshold is the metric value that unlocks the bonus
	Threshold int64 `json:"threshold"`

	// Metric is what the threshold counts
	Metric PerformanceMetric `json:"metric"`

	// GuaranteedTotal excludes the bonus
	GuaranteedTotal decimal.Decimal `json:"guaranteed_total"`

	// PotentialTotal includes the bonus
	PotentialTotal decimal.Decimal `json:"potential_total"`
}

// RetainerBreakdown details a multi-month contract valuation
type RetainerBreakdown struct {
	// Length is the contract commitment period
	Length ContractLength `json:"length"`

	// Months is the resolved contract length in months
	Months int `json:"months"`

	// VolumeDiscount is the discount fraction applied to each rate
	VolumeDiscount float64 `json:"volume_discount"`

	// MonthlyRates maps content type to the discounted per-unit rate
	MonthlyRates map[string]decimal.Decimal `json:"monthly_rates"`

	// MonthlyContentValue is the discounted value of one month's deliverables
	MonthlyContentValue decimal.Decimal `json:"monthly_content_value"`

	// TotalContentValue = MonthlyContentValue * Months
	TotalContentValue decimal.Decimal `json:"total_content_value"`

	// ExclusivityPremium is the ambassador lockout premium, if any
	ExclusivityPremium decimal.Decimal `json:"exclusivity_premium"`

	// EventValue is appearances * day rate, if any
	EventValue decimal.Decimal `json:"event_value"`

	// ProductSeedingValue is informational and excluded from the total
	ProductSeedingValue decimal.Decimal `json:"product_seeding_value"`

	// TotalContractValue = content + exclusivity + events
	TotalContractValue decimal.Decimal `json:"total_contract_value"`
}

// PricingResult is the engine's output for one brief
type PricingResult struct {
	// PricingModel is the compensation structure that was priced
	PricingModel PricingModel `json:"pricing_model"`

	// PricePerDeliverable is always a multiple of 5 in the base
	// currency unit (0 for pure-commission deals)
	PricePerDeliverable decimal.Decimal `json:"price_per_deliverable"`

	// Quantity of deliverables priced
	Quantity int `json:"quantity"`

	// TotalPrice = PricePerDeliverable * Quantity
	TotalPrice decimal.Decimal `json:"total_price"`

	// Currency is the resolved currency code
	Currency string `json:"currency"`

	// CurrencySymbol is the display symbol for the currency
	CurrencySymbol string `json:"currency_symbol"`

	// ValidityDays is the fixed quote validity window
	ValidityDays int `json:"validity_days"`

	// Layers is the ordered step list of the computation
	Layers []PricingLayer `json:"layers"`

	// Formula is the human-readable derivation string
	Formula string `json:"formula"`

	// Exactly one of the following is set for non-flat models
	Affiliate   *AffiliateBreakdown   `json:"affiliate,omitempty"`
	Hybrid      *HybridBreakdown      `json:"hybrid,omitempty"`
	Performance *PerformanceBreakdown `json:"performance,omitempty"`
	Retainer    *RetainerBreakdown    `json:"retainer,omitempty"`
}
