package domain

import (
	"math"
	"testing"
	"time"
)

func TestSurvivalRate(t *testing.T) {
	tests := []struct {
		name     string
		current  int
		initial  int
		expected float64
	}{
		{"full survival", 500, 500, 100},
		{"half survival", 250, 500, 50},
		{"zero initial", 0, 0, 0},
		{"zero initial nonzero current", 10, 0, 0},
		{"total loss", 0, 500, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SurvivalRate(tt.current, tt.initial)
			if got != tt.expected {
				t.Errorf("SurvivalRate(%d, %d) = %v, want %v", tt.current, tt.initial, got, tt.expected)
			}
			if math.IsNaN(got) {
				t.Errorf("SurvivalRate(%d, %d) returned NaN", tt.current, tt.initial)
			}
		})
	}
}

func TestMortalityRate(t *testing.T) {
	if got := MortalityRate(50, 500); got != 10 {
		t.Errorf("MortalityRate(50, 500) = %v, want 10", got)
	}
	if got := MortalityRate(0, 0); got != 0 {
		t.Errorf("MortalityRate(0, 0) = %v, want 0", got)
	}
	if math.IsNaN(MortalityRate(5, 0)) {
		t.Error("MortalityRate with zero initial returned NaN")
	}
}

func TestMortality(t *testing.T) {
	if got := Mortality(500, 480); got != 20 {
		t.Errorf("Mortality(500, 480) = %d, want 20", got)
	}
}

func TestAgeWeeks(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)

	// 2024-01-01 -> 2024-03-01 is 60 days, floor(60/7) = 8 weeks.
	if got := AgeWeeks("2024-01-01", now); got != 8 {
		t.Errorf("AgeWeeks(2024-01-01) = %d, want 8", got)
	}

	// Same day is zero weeks.
	if got := AgeWeeks("2024-03-01", now); got != 0 {
		t.Errorf("AgeWeeks(same day) = %d, want 0", got)
	}

	// Six days is still week zero; seven days rolls over.
	if got := AgeWeeks("2024-02-24", now); got != 0 {
		t.Errorf("AgeWeeks(6 days) = %d, want 0", got)
	}
	if got := AgeWeeks("2024-02-23", now); got != 1 {
		t.Errorf("AgeWeeks(7 days) = %d, want 1", got)
	}
}

func TestAgeWeeks_Timestamps(t *testing.T) {
	now := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	if got := AgeWeeks("2024-01-01T00:00:00Z", now); got != 8 {
		t.Errorf("AgeWeeks(RFC3339) = %d, want 8", got)
	}
	if got := AgeWeeks("not-a-date", now); got != 0 {
		t.Errorf("AgeWeeks(garbage) = %d, want 0", got)
	}
}
