// Package calc - rate card generation
package calc

import (
	"ratecard/core/types"
	"ratecard/internal/errors"
)

// RateCardEntry is one row of a per-format rate card
type RateCardEntry struct {
	// Format is the content format the row prices
	Format types.ContentFormat `json:"format"`

	// Result is the full pricing result for one deliverable
	Result *types.PricingResult `json:"result"`
}

// rateCardFormats is the fixed format order a rate card covers
var rateCardFormats = []types.ContentFormat{
	types.FormatStatic,
	types.FormatCarousel,
	types.FormatStory,
	types.FormatReel,
	types.FormatVideo,
	types.FormatLive,
}

// BuildRateCard prices one brief across every sponsored content format,
// one deliverable each, producing the creator's per-format rate card
// for the brief's terms.
func BuildRateCard(profile *types.CreatorProfile, brief *types.ParsedBrief, scoreIn *types.ScoreInput) ([]RateCardEntry, error) {
	if profile == nil {
		return nil, errors.Input("a creator profile is required")
	}
	if brief == nil {
		return nil, errors.Input("a parsed brief is required")
	}

	entries := make([]RateCardEntry, 0, len(rateCardFormats))
	for _, format := range rateCardFormats {
		row := *brief
		row.DealType = types.DealSponsored
		row.PricingModel = types.ModelFlatFee
		row.Content.Format = format
		row.Content.Quantity = 1

		result, err := CalculatePrice(profile, &row, scoreIn)
		if err != nil {
			return nil, err
		}
		entries = append(entries, RateCardEntry{Format: format, Result: result})
	}
	return entries, nil
}
