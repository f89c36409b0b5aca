// Package finance holds the pure money math behind the goal tracker and the
// investment simulator: savings aggregation, compound growth projection, and
// the financial health score.
package finance

import "math"

// Annual return assumptions per risk level.
const (
	RateLow    = 0.06
	RateMedium = 0.10
	RateHigh   = 0.15
)

// MonthlySavings returns income minus expenses, floored at zero.
func MonthlySavings(income, expenses float64) float64 {
	return math.Max(income-expenses, 0)
}

// SavingsRate returns savings as a percentage of income, zero when there is
// no income.
func SavingsRate(income, savings float64) float64 {
	if income == 0 {
		return 0
	}
	return savings / income * 100
}

// CompoundGrowth projects the future value of a recurring monthly saving at
// the given annual rate over the given number of months, compounding monthly.
func CompoundGrowth(monthlySaving, annualRate float64, months int) float64 {
	r := annualRate / 12
	if r == 0 {
		return monthlySaving * float64(months)
	}
	return monthlySaving * ((math.Pow(1+r, float64(months)) - 1) / r)
}

// RateForRisk maps a risk level name to its annual return assumption,
// defaulting to medium.
func RateForRisk(level string) float64 {
	switch level {
	case "low":
		return RateLow
	case "high":
		return RateHigh
	default:
		return RateMedium
	}
}

// HealthScore grades a saving rate (percent) into a score and label.
func HealthScore(rate float64) (int, string) {
	switch {
	case rate >= 40:
		return 90, "Investment Pro"
	case rate >= 30:
		return 75, "Smart Planner"
	case rate >= 20:
		return 60, "Habit Builder"
	case rate >= 10:
		return 40, "Beginner Saver"
	default:
		return 20, "Needs Improvement"
	}
}
