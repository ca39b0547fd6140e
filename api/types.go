// Package api - API types for deal valuation
// These types define the contract for the /quote endpoints.
// The API is stateless, idempotent, and deterministic.
package api

import (
	"time"

	"github.com/google/uuid"

	"ratecard/core/calc"
	"ratecard/core/types"
)

// QuoteRequest is the input to POST /api/v1/quote
type QuoteRequest struct {
	// Profile is the creator-side input
	Profile *types.CreatorProfile `json:"profile"`

	// Brief is the parsed deal brief
	Brief *types.ParsedBrief `json:"brief"`

	// Score is the optional quality/fit score input
	Score *types.ScoreInput `json:"score,omitempty"`
}

// QuoteEnvelope wraps a pricing result with its quote identity.
// The envelope is the only place identity and clock state enter:
// the engine's result stays deterministic.
type QuoteEnvelope struct {
	// QuoteID uniquely identifies this quote
	QuoteID uuid.UUID `json:"quote_id"`

	// GeneratedAt is when the quote was produced
	GeneratedAt time.Time `json:"generated_at"`

	// ValidUntil is GeneratedAt plus the fixed validity window
	ValidUntil time.Time `json:"valid_until"`

	// Result is the engine output
	Result *types.PricingResult `json:"result"`
}

// RateCardResponse is the output of POST /api/v1/rate-card
type RateCardResponse struct {
	// QuoteID uniquely identifies this rate card
	QuoteID uuid.UUID `json:"quote_id"`

	// GeneratedAt is when the card was produced
	GeneratedAt time.Time `json:"generated_at"`

	// Entries are the per-format rows
	Entries []calc.RateCardEntry `json:"entries"`
}

// ErrorResponse is the error body for all endpoints
type ErrorResponse struct {
	// Code is the machine-readable error code
	Code string `json:"code"`

	// Message is the human-readable description
	Message string `json:"message"`
}

// newEnvelope wraps an engine result in a quote envelope
func newEnvelope(result *types.PricingResult) QuoteEnvelope {
	now := time.Now().UTC()
	return QuoteEnvelope{
		QuoteID:     uuid.New(),
		GeneratedAt: now,
		ValidUntil:  now.AddDate(0, 0, types.QuoteValidityDays),
		Result:      result,
	}
}
