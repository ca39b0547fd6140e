// Package tables - multiplicative rate tables
package tables

import (
	"strings"

	"ratecard/core/types"
)

// platformMultipliers scales the base rate by where the content runs.
// Instagram is the 1.0 baseline. Unknown platforms resolve to 1.0.
var platformMultipliers = map[types.Platform]float64{
	types.PlatformInstagram:     1.0,
	types.PlatformTikTok:        0.9,
	types.PlatformYouTube:       1.4,
	types.PlatformYouTubeShorts: 0.7,
	types.PlatformTwitter:       0.7,
	types.PlatformThreads:       0.6,
	types.PlatformPinterest:     0.8,
	types.PlatformLinkedIn:      1.3,
	types.PlatformBluesky:       0.5,
	types.PlatformLemon8:        0.6,
	types.PlatformSnapchat:      0.75,
	types.PlatformTwitch:        1.1,
}

// PlatformMultiplier returns the rate multiplier for a platform.
// Unknown platforms are priced at the Instagram baseline.
func PlatformMultiplier(platform types.Platform) float64 {
	if m, ok := platformMultipliers[platform]; ok {
		return m
	}
	return 1.0
}

// regionMultipliers scales the base rate by the creator's primary
// market. The United States is the 1.0 baseline. Unknown or missing
// regions resolve to 0.7.
var regionMultipliers = map[string]float64{
	"united_states":  1.0,
	"uae_gulf":       1.1,
	"canada":         0.95,
	"united_kingdom": 0.95,
	"australia_nz":   0.9,
	"western_europe": 0.9,
	"east_asia":      0.8,
	"eastern_europe": 0.6,
	"latin_america":  0.55,
	"southeast_asia": 0.5,
	"india":          0.4,
	"africa":         0.4,
}

// regionFallback covers unknown markets conservatively
const regionFallback = 0.7

// RegionMultiplier returns the rate multiplier for a market region.
func RegionMultiplier(region string) float64 {
	key := strings.ToLower(strings.TrimSpace(region))
	if key == "" {
		return regionMultipliers["united_states"]
	}
	if m, ok := regionMultipliers[key]; ok {
		return m
	}
	return regionFallback
}

// engagementBracket is one rung of the engagement ladder
type engagementBracket struct {
	below      float64 // exclusive upper bound, percent
	multiplier float64
}

// engagementBrackets is checked ascending; the first bound the rate
// falls under wins. Rates of 8% and above take the top multiplier.
// Multipliers are non-decreasing in rate.
var engagementBrackets = []engagementBracket{
	{1.0, 0.8},
	{3.0, 1.0},
	{5.0, 1.3},
	{8.0, 1.6},
}

const engagementTopMultiplier = 2.0

// EngagementMultiplier returns the multiplier for an engagement rate
// expressed as a percentage (2.5 means 2.5%).
func EngagementMultiplier(rate float64) float64 {
	for _, b := range engagementBrackets {
		if rate < b.below {
			return b.multiplier
		}
	}
	return engagementTopMultiplier
}

// nichePremiums maps normalized niche names to rate premiums.
// Lifestyle is the 1.0 baseline; unmatched niches resolve to 1.0.
// Keys are a fixed synonym table matched case-insensitively.
var nichePremiums = map[string]float64{
	"finance":          2.0,
	"investing":        2.0,
	"personal finance": 2.0,
	"fintech":          2.0,
	"business":         1.8,
	"b2b":              1.8,
	"entrepreneurship": 1.8,
	"tech":             1.7,
	"technology":       1.7,
	"legal":            1.7,
	"law":              1.7,
	"medical":          1.7,
	"healthcare":       1.7,
	"luxury":           1.5,
	"beauty":           1.3,
	"skincare":         1.3,
	"makeup":           1.3,
	"fitness":          1.2,
	"wellness":         1.2,
	"health":           1.2,
	"food":             1.15,
	"cooking":          1.15,
	"travel":           1.15,
	"parenting":        1.1,
	"family":           1.1,
	"lifestyle":        1.0,
	"entertainment":    1.0,
	"comedy":           1.0,
	"gaming":           0.95,
}

// NichePremium returns the rate premium for a content niche.
// Matching is a case-insensitive exact match against the synonym
// table; anything unmatched prices at the lifestyle baseline.
func NichePremium(niche string) float64 {
	key := strings.ToLower(strings.TrimSpace(niche))
	if m, ok := nichePremiums[key]; ok {
		return m
	}
	return 1.0
}
