// Package types defines core domain types shared across all layers.
// This package contains NO business logic - only type definitions.
package types

// Platform represents a social platform a creator publishes on
type Platform string

const (
	PlatformInstagram     Platform = "instagram"
	PlatformTikTok        Platform = "tiktok"
	PlatformYouTube       Platform = "youtube"
	PlatformYouTubeShorts Platform = "youtube_shorts"
	PlatformTwitter       Platform = "twitter"
	PlatformThreads       Platform = "threads"
	PlatformPinterest     Platform = "pinterest"
	PlatformLinkedIn      Platform = "linkedin"
	PlatformBluesky       Platform = "bluesky"
	PlatformLemon8        Platform = "lemon8"
	PlatformSnapchat      Platform = "snapchat"
	PlatformTwitch        Platform = "twitch"
)

// String returns the string representation of the platform
func (p Platform) String() string {
	return string(p)
}

// Tier represents a creator size bucket derived from total follower count
type Tier string

const (
	TierNano      Tier = "nano"
	TierMicro     Tier = "micro"
	TierMid       Tier = "mid"
	TierRising    Tier = "rising"
	TierMacro     Tier = "macro"
	TierMega      Tier = "mega"
	TierCelebrity Tier = "celebrity"
)

// String returns the string representation of the tier
func (t Tier) String() string {
	return string(t)
}

// PlatformMetrics holds per-platform audience numbers
type PlatformMetrics struct {
	// Platform the metrics belong to
	Platform Platform `json:"platform"`

	// Followers is the follower count on the platform
	Followers int64 `json:"followers"`

	// EngagementRate is a percentage (2.5 means 2.5%)
	EngagementRate float64 `json:"engagement_rate"`

	// AvgLikes is the average likes per post
	AvgLikes int64 `json:"avg_likes,omitempty"`

	// AvgComments is the average comments per post
	AvgComments int64 `json:"avg_comments,omitempty"`

	// AvgViews is the average views per post
	AvgViews int64 `json:"avg_views,omitempty"`
}

// AudienceDemographics describes the creator's audience composition
type AudienceDemographics struct {
	// AgeRange is the dominant audience age range (e.g., "25-34")
	AgeRange string `json:"age_range,omitempty"`

	// GenderSplit maps gender labels to percentages
	GenderSplit map[string]float64 `json:"gender_split,omitempty"`

	// TopLocations lists the most common audience locations
	TopLocations []string `json:"top_locations,omitempty"`

	// Interests lists the most common audience interests
	Interests []string `json:"interests,omitempty"`
}

// CreatorProfile is the creator-side input to pricing.
// The pricing engine treats it as read-only; it is mutated only
// through profile-update flows outside this core.
type CreatorProfile struct {
	// DisplayName is the creator's public name
	DisplayName string `json:"display_name,omitempty"`

	// Platforms holds per-platform metrics (up to four platforms)
	Platforms []PlatformMetrics `json:"platforms"`

	// Demographics describes the audience composition
	Demographics AudienceDemographics `json:"demographics,omitempty"`

	// Niche is the creator's content niche (free text, matched
	// case-insensitively against the niche table)
	Niche string `json:"niche,omitempty"`

	// Region is the creator's primary market; empty defaults
	// to the baseline market
	Region string `json:"region,omitempty"`

	// Currency is the creator's preferred quote currency code
	Currency string `json:"currency,omitempty"`
}

// TotalReach sums follower counts across all platforms
func (p *CreatorProfile) TotalReach() int64 {
	var total int64
	for _, m := range p.Platforms {
		total += m.Followers
	}
	return total
}

// AvgEngagementRate averages the engagement rate across platforms
// that report one. Returns 0 when no platform reports a rate.
func (p *CreatorProfile) AvgEngagementRate() float64 {
	var sum float64
	var n int
	for _, m := range p.Platforms {
		if m.EngagementRate > 0 {
			sum += m.EngagementRate
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return sum / float64(n)
}

// MetricsFor returns the metrics for a platform, if present
func (p *CreatorProfile) MetricsFor(platform Platform) (PlatformMetrics, bool) {
	for _, m := range p.Platforms {
		if m.Platform == platform {
			return m, true
		}
	}
	return PlatformMetrics{}, false
}
