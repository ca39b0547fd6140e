// Package calc implements the deal valuation calculators.
//
// Every calculator is a pure, synchronous function over its inputs:
// no I/O, no shared mutable state, no logging. A single entry point
// (CalculatePrice) inspects the brief and routes to exactly one
// terminal calculator.
package calc

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"ratecard/core/tables"
	"ratecard/core/types"
)

// priceStep is the rounding granularity for per-deliverable prices
var priceStep = decimal.NewFromInt(5)

// roundToStep rounds an amount to the nearest multiple of 5
func roundToStep(amount decimal.Decimal) decimal.Decimal {
	return amount.Div(priceStep).Round(0).Mul(priceStep)
}

// layerBuilder accumulates the ordered layer list while tracking the
// running price. Each layer records the multiplier it applied and the
// dollar delta it contributed, so the list replays to the final price.
type layerBuilder struct {
	layers  []types.PricingLayer
	running decimal.Decimal
}

// newLayerBuilder starts a formula from its base rate. The base layer
// carries a 1.0 multiplier and the base amount as its delta.
func newLayerBuilder(name, description, input string, base decimal.Decimal) *layerBuilder {
	return &layerBuilder{
		layers: []types.PricingLayer{{
			Name:        name,
			Description: description,
			Input:       input,
			Multiplier:  1.0,
			Amount:      base,
		}},
		running: base,
	}
}

// multiply applies a multiplicative layer to the running price
func (b *layerBuilder) multiply(name, description, input string, multiplier float64) {
	next := b.running.Mul(decimal.NewFromFloat(multiplier))
	b.layers = append(b.layers, types.PricingLayer{
		Name:        name,
		Description: description,
		Input:       input,
		Multiplier:  multiplier,
		Amount:      next.Sub(b.running),
	})
	b.running = next
}

// premium applies an additive premium as a (1 + premium) multiplier
func (b *layerBuilder) premium(name, description, input string, premium float64) {
	b.multiply(name, description, input, 1+premium)
}

// round closes the formula: it rounds the running price to the nearest
// step and records the rounding delta as a final 1.0-multiplier layer.
func (b *layerBuilder) round() decimal.Decimal {
	rounded := roundToStep(b.running)
	b.layers = append(b.layers, types.PricingLayer{
		Name:        "rounding",
		Description: "Rounded to the nearest $5",
		Input:       b.running.StringFixed(2),
		Multiplier:  1.0,
		Amount:      rounded.Sub(b.running),
	})
	b.running = rounded
	return rounded
}

// Formula re-derives the human-readable derivation string from a layer
// list. It depends only on the layers, so replaying the list always
// reproduces the same string and the same value.
func Formula(symbol string, layers []types.PricingLayer) string {
	if len(layers) == 0 {
		return ""
	}

	var sb strings.Builder
	value := decimal.Zero
	for i, l := range layers {
		switch {
		case i == 0:
			value = l.Amount
			fmt.Fprintf(&sb, "%s%s (%s: %s)", symbol, l.Amount.StringFixed(2), l.Name, l.Input)
		case l.Multiplier != 1.0:
			value = value.Mul(decimal.NewFromFloat(l.Multiplier))
			fmt.Fprintf(&sb, " × %.2f (%s: %s)", l.Multiplier, l.Name, l.Input)
		default:
			value = value.Add(l.Amount)
		}
	}
	fmt.Fprintf(&sb, " = %s%s", symbol, value.StringFixed(2))
	return sb.String()
}

// Replay applies a layer list from scratch: the first layer seeds the
// price, multiplicative layers scale it, and no-op-multiplier layers
// add their recorded delta. The result equals the per-deliverable price.
func Replay(layers []types.PricingLayer) decimal.Decimal {
	value := decimal.Zero
	for i, l := range layers {
		switch {
		case i == 0:
			value = l.Amount
		case l.Multiplier != 1.0:
			value = value.Mul(decimal.NewFromFloat(l.Multiplier))
		default:
			value = value.Add(l.Amount)
		}
	}
	return value
}

// finishResult assembles the shared tail of a flat-fee style result
func finishResult(model types.PricingModel, b *layerBuilder, quantity int, currency tables.CurrencyInfo) *types.PricingResult {
	perDeliverable := b.round()
	return &types.PricingResult{
		PricingModel:        model,
		PricePerDeliverable: perDeliverable,
		Quantity:            quantity,
		TotalPrice:          perDeliverable.Mul(decimal.NewFromInt(int64(quantity))),
		Currency:            currency.Code,
		CurrencySymbol:      currency.Symbol,
		ValidityDays:        types.QuoteValidityDays,
		Layers:              b.layers,
		Formula:             Formula(currency.Symbol, b.layers),
	}
}
