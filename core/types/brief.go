// Package types - parsed deal brief types
// A ParsedBrief is produced by the (external) extraction stage and is
// immutable once built; one brief maps to one pricing computation.
package types

import (
	"time"

	"github.com/shopspring/decimal"
)

// DealType distinguishes audience endorsements from flat production work
type DealType string

const (
	DealSponsored DealType = "sponsored"
	DealUGC       DealType = "ugc"
)

// PricingModel selects the compensation structure for a deal
type PricingModel string

const (
	ModelFlatFee     PricingModel = "flat_fee"
	ModelAffiliate   PricingModel = "affiliate"
	ModelHybrid      PricingModel = "hybrid"
	ModelPerformance PricingModel = "performance"
	ModelRetainer    PricingModel = "retainer"
)

// ContentFormat is the deliverable format requested by the brand
type ContentFormat string

const (
	FormatStatic   ContentFormat = "static"
	FormatCarousel ContentFormat = "carousel"
	FormatStory    ContentFormat = "story"
	FormatReel     ContentFormat = "reel"
	FormatVideo    ContentFormat = "video"
	FormatLive     ContentFormat = "live"
	FormatPhoto    ContentFormat = "photo" // UGC only
)

// ExclusivityLevel is the category-lockout term on a deal
type ExclusivityLevel string

const (
	ExclusivityNone     ExclusivityLevel = "none"
	ExclusivityCategory ExclusivityLevel = "category"
	ExclusivityFull     ExclusivityLevel = "full"
)

// WhitelistingType is the brand's right to run creator content
// through the brand's own channels
type WhitelistingType string

const (
	WhitelistingNone      WhitelistingType = "none"
	WhitelistingOrganic   WhitelistingType = "organic"
	WhitelistingPaid      WhitelistingType = "paid_social"
	WhitelistingFullMedia WhitelistingType = "full_media"
)

// UsageRights captures how long and how broadly the brand may reuse content
type UsageRights struct {
	// DurationDays is the usage window in days; 0 means organic-only,
	// values above one year are treated as perpetual
	DurationDays int `json:"duration_days"`

	// Exclusivity is the category-lockout level
	Exclusivity ExclusivityLevel `json:"exclusivity,omitempty"`

	// PaidAmplification is whether the brand may boost the post
	PaidAmplification bool `json:"paid_amplification,omitempty"`

	// Whitelisting is the brand reuse right; empty defaults to none
	Whitelisting WhitelistingType `json:"whitelisting,omitempty"`
}

// ContentRequirements is what the brand is asking to be produced
type ContentRequirements struct {
	// Platform the content is for
	Platform Platform `json:"platform"`

	// Format of each deliverable
	Format ContentFormat `json:"format"`

	// Quantity of deliverables requested; 0 is normalized to 1
	Quantity int `json:"quantity"`
}

// AffiliateConfig configures commission-based compensation.
// Required whenever the pricing model is affiliate or hybrid.
type AffiliateConfig struct {
	// CommissionRate is a percentage (20 means 20%). Zero or negative
	// means the category's default rate applies.
	CommissionRate float64 `json:"commission_rate"`

	// EstimatedSales is the expected unit sales over the campaign
	EstimatedSales int64 `json:"estimated_sales"`

	// AvgOrderValue is the expected average order value
	AvgOrderValue decimal.Decimal `json:"avg_order_value"`

	// Category is the product category, used to sanity-check the rate
	// against the category's typical range; empty falls back to "other"
	Category string `json:"category,omitempty"`
}

// PerformanceMetric is the unit a performance bonus is measured in
type PerformanceMetric string

const (
	MetricClicks      PerformanceMetric = "clicks"
	MetricSales       PerformanceMetric = "sales"
	MetricConversions PerformanceMetric = "conversions"
	MetricViews       PerformanceMetric = "views"
)

// PerformanceConfig configures a fee-plus-bonus deal.
// Required whenever the pricing model is performance.
type PerformanceConfig struct {
	// BonusAmount is unlocked when the threshold is reached
	BonusAmount decimal.Decimal `json:"bonus_amount"`

	// Threshold is the metric value that unlocks the bonus
	Threshold int64 `json:"threshold"`

	// Metric is what the threshold counts
	Metric PerformanceMetric `json:"metric"`
}

// ContractLength is the retainer commitment period
type ContractLength string

const (
	ContractOneTime     ContractLength = "one_time"
	ContractOneMonth    ContractLength = "1_month"
	ContractThreeMonth  ContractLength = "3_month"
	ContractSixMonth    ContractLength = "6_month"
	ContractTwelveMonth ContractLength = "12_month"
)

// RetainerConfig configures a multi-month ambassador/retainer deal
type RetainerConfig struct {
	// Length is the contract commitment period
	Length ContractLength `json:"length"`

	// MonthlyDeliverables maps content type to deliverables per month.
	// Recognized keys: post, story, reel, video.
	MonthlyDeliverables map[string]int `json:"monthly_deliverables"`

	// Perks are optional ambassador perks
	Perks *AmbassadorPerks `json:"perks,omitempty"`
}

// AmbassadorPerks are the optional extras on an ambassador deal
type AmbassadorPerks struct {
	// Exclusivity is the required lockout level, if any
	Exclusivity ExclusivityLevel `json:"exclusivity,omitempty"`

	// ProductSeeding is whether the creator receives product
	ProductSeeding bool `json:"product_seeding,omitempty"`

	// ProductSeedingValue is the retail value of seeded product
	ProductSeedingValue decimal.Decimal `json:"product_seeding_value,omitempty"`

	// EventAppearances is the number of in-person events required
	EventAppearances int `json:"event_appearances,omitempty"`

	// EventDayRate overrides the tier default day rate when positive
	EventDayRate decimal.Decimal `json:"event_day_rate,omitempty"`
}

// ParsedBrief is the deal-side input to pricing
type ParsedBrief struct {
	// BrandName is the counterparty brand
	BrandName string `json:"brand_name,omitempty"`

	// DealType is sponsored or ugc
	DealType DealType `json:"deal_type"`

	// PricingModel selects the compensation structure; empty
	// defaults to flat_fee
	PricingModel PricingModel `json:"pricing_model,omitempty"`

	// Content is what the brand is asking for
	Content ContentRequirements `json:"content"`

	// Usage captures reuse terms
	Usage UsageRights `json:"usage,omitempty"`

	// Affiliate is required for affiliate and hybrid models
	Affiliate *AffiliateConfig `json:"affiliate,omitempty"`

	// Performance is required for the performance model
	Performance *PerformanceConfig `json:"performance,omitempty"`

	// Retainer, when present, turns the deal into a retainer/ambassador
	// contract priced per-month
	Retainer *RetainerConfig `json:"retainer,omitempty"`

	// CampaignDate anchors seasonal pricing; nil defaults to now
	CampaignDate *time.Time `json:"campaign_date,omitempty"`

	// SeasonalPricingDisabled forces the default (0%) seasonal period
	SeasonalPricingDisabled bool `json:"seasonal_pricing_disabled,omitempty"`

	// Timeline is free-text timing context from the brief
	Timeline string `json:"timeline,omitempty"`
}
