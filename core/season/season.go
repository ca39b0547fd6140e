// Package season resolves a calendar date to a named demand period.
// Periods can overlap on paper; resolution is by fixed priority:
// Q4 holiday > back-to-school > valentines > summer > default.
// August in particular belongs to back-to-school, not summer.
package season

import "time"

// Period is a named seasonal demand window
type Period string

const (
	PeriodQ4Holiday    Period = "q4_holiday"
	PeriodBackToSchool Period = "back_to_school"
	PeriodValentines   Period = "valentines"
	PeriodSummer       Period = "summer"
	PeriodDefault      Period = "default"
)

// premiums maps each period to its additive demand premium
var premiums = map[Period]float64{
	PeriodQ4Holiday:    0.25,
	PeriodBackToSchool: 0.15,
	PeriodValentines:   0.10,
	PeriodSummer:       0.05,
	PeriodDefault:      0,
}

// Premium returns the additive premium for a period.
// Unknown periods resolve to the default (0).
func Premium(p Period) float64 {
	return premiums[p]
}

// Resolve maps a date to its demand period. A zero date resolves
// against the current time.
func Resolve(date time.Time) Period {
	if date.IsZero() {
		date = time.Now()
	}
	month := date.Month()
	day := date.Day()

	switch {
	case month == time.November || month == time.December:
		return PeriodQ4Holiday
	case month == time.August || (month == time.September && day <= 15):
		return PeriodBackToSchool
	case month == time.February && day <= 14:
		return PeriodValentines
	case month == time.June || month == time.July:
		return PeriodSummer
	default:
		return PeriodDefault
	}
}

// ResolvePremium resolves a date and returns both the period and its
// premium in one call.
func ResolvePremium(date time.Time) (Period, float64) {
	p := Resolve(date)
	return p, Premium(p)
}
