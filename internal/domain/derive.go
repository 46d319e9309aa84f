package domain

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// FallbackPopulation is assumed whenever a fair has no usable population.
	FallbackPopulation = 5000
	// attendanceRatePercent: flat 5% of town population is projected to attend.
	attendanceRatePercent = 5
)

// Totals are recomputed on every read, never cached.
type Totals struct {
	Cost  decimal.Decimal `json:"cost"`
	Staff int             `json:"staff"`
}

// Totals sums activity costs plus material actual costs, and the staff headcount
// required across both collections.
func (f Fair) Totals() Totals {
	cost := decimal.Zero
	staff := 0

	for _, a := range f.Activities {
		cost = cost.Add(a.Cost)
		staff += a.StaffRequired
	}
	for _, m := range f.Materials {
		cost = cost.Add(m.ActualCost)
		staff += m.StaffRequired
	}

	return Totals{Cost: cost, Staff: staff}
}

// AttendanceProjection estimates visitors as floor(population * 5%). The
// population field is stripped to digits first; anything unusable falls back to
// FallbackPopulation. "12,345 habitants" projects 617, an empty field 250.
func (f Fair) AttendanceProjection() int {
	population := FallbackPopulation

	if digits := DigitsOnly(f.Population); digits != "" {
		if n, err := strconv.Atoi(digits); err == nil {
			population = n
		}
	}

	return population * attendanceRatePercent / 100
}

// DigitsOnly strips every non-digit rune from s.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}

	return b.String()
}

// ParseAmount coerces free-form monetary input to a non-negative decimal.
// Malformed or negative input becomes zero rather than propagating into state.
func ParseAmount(s string) decimal.Decimal {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}

	return d
}
