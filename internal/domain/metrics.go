package domain

import (
	"math"
	"time"
)

// SurvivalRate returns the percentage of the initial bird count still alive.
// A zero initial count yields 0, never NaN.
func SurvivalRate(current, initial int) float64 {
	if initial == 0 {
		return 0
	}
	return float64(current) / float64(initial) * 100
}

// MortalityRate returns the percentage of the initial bird count that died.
// A zero initial count yields 0, never NaN.
func MortalityRate(mortality, initial int) float64 {
	if initial == 0 {
		return 0
	}
	return float64(mortality) / float64(initial) * 100
}

// Mortality returns the absolute loss for a batch.
func Mortality(initial, current int) int {
	return initial - current
}

// AgeWeeks returns the whole weeks elapsed between the arrival date and now.
// Partial days count as a full day before the week division floors, matching
// how the dashboard has always reported flock age.
func AgeWeeks(arrivalDate string, now time.Time) int {
	arrival, err := time.Parse("2006-01-02", arrivalDate)
	if err != nil {
		// Arrival dates sometimes come back as full timestamps.
		arrival, err = time.Parse(time.RFC3339, arrivalDate)
		if err != nil {
			return 0
		}
	}
	days := int(math.Ceil(math.Abs(now.Sub(arrival).Hours()) / 24))
	return days / 7
}
