// Package calc - unified entry point
package calc

import (
	"ratecard/core/tables"
	"ratecard/core/types"
	"ratecard/internal/errors"
)

// CalculatePrice is the unified entry point. It inspects the brief's
// deal type and pricing model and routes to exactly one terminal
// calculator, computing the standard flat-fee result first when an
// overlay (hybrid, performance, retainer) builds on it.
func CalculatePrice(profile *types.CreatorProfile, brief *types.ParsedBrief, scoreIn *types.ScoreInput) (*types.PricingResult, error) {
	return CalculatePriceWithDefaults(profile, brief, scoreIn, DefaultDefaults())
}

// CalculatePriceWithDefaults is CalculatePrice with explicit named
// defaults for the brief's optional fields.
func CalculatePriceWithDefaults(profile *types.CreatorProfile, brief *types.ParsedBrief, scoreIn *types.ScoreInput, d Defaults) (*types.PricingResult, error) {
	if profile == nil {
		return nil, errors.Input("a creator profile is required")
	}
	if brief == nil {
		return nil, errors.Input("a parsed brief is required")
	}

	n := normalize(brief, d)

	if n.DealType == types.DealUGC {
		return calculateUGC(profile, n), nil
	}

	if n.Retainer != nil || n.PricingModel == types.ModelRetainer {
		if n.Retainer == nil {
			return nil, errors.Config("retainer pricing model requires a retainer configuration")
		}
		flat := calculateStandard(profile, n, scoreIn)
		tier := tables.TierForFollowers(profile.TotalReach())
		return applyRetainer(flat, n.Retainer, tier), nil
	}

	switch n.PricingModel {
	case types.ModelAffiliate:
		return calculateAffiliate(profile, n)
	case types.ModelHybrid:
		flat := calculateStandard(profile, n, scoreIn)
		return applyHybrid(flat, n)
	case types.ModelPerformance:
		flat := calculateStandard(profile, n, scoreIn)
		return applyPerformance(flat, n)
	default:
		return calculateStandard(profile, n, scoreIn), nil
	}
}

// CalculateUGCPrice prices a brief as flat UGC production work,
// regardless of its declared deal type.
func CalculateUGCPrice(brief *types.ParsedBrief, profile *types.CreatorProfile) (*types.PricingResult, error) {
	if profile == nil {
		return nil, errors.Input("a creator profile is required")
	}
	if brief == nil {
		return nil, errors.Input("a parsed brief is required")
	}
	return calculateUGC(profile, normalize(brief, DefaultDefaults())), nil
}

// CalculateAffiliatePricing prices a brief as a pure-commission deal.
// It fails with a configuration error when the brief carries no
// affiliate configuration.
func CalculateAffiliatePricing(brief *types.ParsedBrief, profile *types.CreatorProfile) (*types.PricingResult, error) {
	if profile == nil {
		return nil, errors.Input("a creator profile is required")
	}
	if brief == nil {
		return nil, errors.Input("a parsed brief is required")
	}
	return calculateAffiliate(profile, normalize(brief, DefaultDefaults()))
}
