// Package tables holds the immutable lookup and multiplier tables the
// pricing calculators draw from. Every table is a total function: an
// unrecognized key resolves to a documented neutral default, never an
// error. Tables are plain package-level data built once at init and
// never mutated; they are safe to read from any goroutine.
package tables

import (
	"github.com/shopspring/decimal"

	"ratecard/core/types"
)

// tierThreshold is one rung of the classification ladder
type tierThreshold struct {
	below int64
	tier  types.Tier
}

// tierLadder is checked in ascending order; the first bound the
// follower count falls under wins. Celebrity is the open-ended top.
var tierLadder = []tierThreshold{
	{10_000, types.TierNano},
	{50_000, types.TierMicro},
	{100_000, types.TierMid},
	{250_000, types.TierRising},
	{500_000, types.TierMacro},
	{1_000_000, types.TierMega},
}

// TierForFollowers classifies a follower count into a creator tier.
// Negative counts are treated as zero.
func TierForFollowers(followers int64) types.Tier {
	for _, t := range tierLadder {
		if followers < t.below {
			return t.tier
		}
	}
	return types.TierCelebrity
}

// tierBaseRates maps tier to the flat-fee base rate in USD
var tierBaseRates = map[types.Tier]decimal.Decimal{
	types.TierNano:      decimal.NewFromInt(150),
	types.TierMicro:     decimal.NewFromInt(400),
	types.TierMid:       decimal.NewFromInt(900),
	types.TierRising:    decimal.NewFromInt(2000),
	types.TierMacro:     decimal.NewFromInt(4000),
	types.TierMega:      decimal.NewFromInt(7500),
	types.TierCelebrity: decimal.NewFromInt(12000),
}

// BaseRate returns the per-deliverable base rate for a tier.
// Unknown tiers fall back to the nano rate.
func BaseRate(tier types.Tier) decimal.Decimal {
	if rate, ok := tierBaseRates[tier]; ok {
		return rate
	}
	return tierBaseRates[types.TierNano]
}

// eventDayRates maps tier to the default ambassador event day rate,
// used when the perk configuration carries no explicit rate
var eventDayRates = map[types.Tier]decimal.Decimal{
	types.TierNano:      decimal.NewFromInt(250),
	types.TierMicro:     decimal.NewFromInt(500),
	types.TierMid:       decimal.NewFromInt(750),
	types.TierRising:    decimal.NewFromInt(1000),
	types.TierMacro:     decimal.NewFromInt(1500),
	types.TierMega:      decimal.NewFromInt(2500),
	types.TierCelebrity: decimal.NewFromInt(5000),
}

// EventDayRate returns the default event appearance day rate for a tier.
// Unknown tiers fall back to the nano rate.
func EventDayRate(tier types.Tier) decimal.Decimal {
	if rate, ok := eventDayRates[tier]; ok {
		return rate
	}
	return eventDayRates[types.TierNano]
}
