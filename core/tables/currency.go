// Package tables - quote currency table
package tables

import "strings"

// CurrencyInfo pairs a currency code with its display symbol
type CurrencyInfo struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
}

// currencies is ordered; the first entry is the fallback for
// unrecognized or missing preferred currencies.
var currencies = []CurrencyInfo{
	{Code: "USD", Symbol: "$"},
	{Code: "EUR", Symbol: "€"},
	{Code: "GBP", Symbol: "£"},
	{Code: "CAD", Symbol: "C$"},
	{Code: "AUD", Symbol: "A$"},
	{Code: "INR", Symbol: "₹"},
	{Code: "AED", Symbol: "د.إ"},
}

// ResolveCurrency maps a preferred currency code to its table entry.
// Unrecognized or empty codes resolve to the table's first entry.
func ResolveCurrency(code string) CurrencyInfo {
	key := strings.ToUpper(strings.TrimSpace(code))
	for _, c := range currencies {
		if c.Code == key {
			return c
		}
	}
	return currencies[0]
}

// Currencies returns a copy of the currency table in display order.
func Currencies() []CurrencyInfo {
	out := make([]CurrencyInfo, len(currencies))
	copy(out, currencies)
	return out
}
