// Package types - quality/fit score types
// Two score families coexist: the legacy 5-dimension brand-fit model and
// the newer 6-dimension deal-quality model. ScoreInput is a tagged union;
// exactly one variant is present and the discriminator says which.
package types

// ScoreKind discriminates the two score families
type ScoreKind string

const (
	ScoreBrandFit    ScoreKind = "brand_fit"
	ScoreDealQuality ScoreKind = "deal_quality"
)

// FitLevel is the legacy four-valued fit classification
type FitLevel string

const (
	FitPerfect FitLevel = "perfect"
	FitHigh    FitLevel = "high"
	FitMedium  FitLevel = "medium"
	FitLow     FitLevel = "low"
)

// QualityLevel is the newer four-valued deal-quality classification
type QualityLevel string

const (
	QualityExcellent QualityLevel = "excellent"
	QualityGood      QualityLevel = "good"
	QualityFair      QualityLevel = "fair"
	QualityCaution   QualityLevel = "caution"
)

// BrandFitBreakdown holds the legacy model's five dimension scores,
// each on a 0-100 scale
type BrandFitBreakdown struct {
	NicheMatch       float64 `json:"niche_match"`
	Demographics     float64 `json:"demographics"`
	PlatformPresence float64 `json:"platform_presence"`
	Engagement       float64 `json:"engagement"`
	RateFairness     float64 `json:"rate_fairness"`
}

// DealQualityBreakdown holds the newer model's six dimension scores,
// each on a 0-100 scale
type DealQualityBreakdown struct {
	BrandLegitimacy float64 `json:"brand_legitimacy"`
	RateFairness    float64 `json:"rate_fairness"`
	PortfolioValue  float64 `json:"portfolio_value"`
	GrowthPotential float64 `json:"growth_potential"`
	TermsFairness   float64 `json:"terms_fairness"`
	CreativeFreedom float64 `json:"creative_freedom"`
}

// BrandFitResult is the legacy scorer output
type BrandFitResult struct {
	// Total is the weighted 0-100 score
	Total float64 `json:"total"`

	// Level is the classification of the total
	Level FitLevel `json:"level"`

	// Breakdown holds the per-dimension scores
	Breakdown BrandFitBreakdown `json:"breakdown"`
}

// DealQualityResult is the newer scorer output
type DealQualityResult struct {
	// Total is the weighted 0-100 score
	Total float64 `json:"total"`

	// Level is the classification of the total
	Level QualityLevel `json:"level"`

	// Breakdown holds the per-dimension scores
	Breakdown DealQualityBreakdown `json:"breakdown"`
}

// ScoreInput is the tagged union the pricing engine consumes.
// Exactly one of BrandFit / DealQuality is non-nil, selected by Kind.
type ScoreInput struct {
	// Kind is the discriminator
	Kind ScoreKind `json:"kind"`

	// BrandFit is set when Kind == ScoreBrandFit
	BrandFit *BrandFitResult `json:"brand_fit,omitempty"`

	// DealQuality is set when Kind == ScoreDealQuality
	DealQuality *DealQualityResult `json:"deal_quality,omitempty"`
}
