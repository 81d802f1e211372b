package utils

import (
	"math"
	"strings"
)

// MaleAdjustment selects how the male correction is applied to the base goal.
// Two rules exist in the wild for this formula; the multiplicative factor is
// the default and the flat offset is kept selectable.
type MaleAdjustment int

const (
	MaleFactor MaleAdjustment = iota // base × 1.05
	MaleOffset                       // base + 250 ml
)

// DefaultGoalMl is used when weight or age is missing or implausible.
const DefaultGoalMl = 2000

// DailyGoalMl derives the daily water target in milliliters from biometrics:
// weight × 35, scaled down 10% over age 60, up 10% under 30, with the male
// adjustment applied last. The result is rounded to the nearest 10 ml.
func DailyGoalMl(weightKg float64, ageYears int, gender string, policy MaleAdjustment) int {
	if weightKg <= 0 || ageYears <= 0 {
		return DefaultGoalMl
	}
	// Sanity check to avoid garbage input, as with BMI-style calculators.
	if weightKg < 10 || weightKg > 400 || ageYears > 130 {
		return DefaultGoalMl
	}

	base := weightKg * 35
	if ageYears > 60 {
		base *= 0.9
	}
	if ageYears < 30 {
		base *= 1.1
	}
	if strings.EqualFold(gender, "male") {
		switch policy {
		case MaleOffset:
			base += 250
		default:
			base *= 1.05
		}
	}

	return int(math.Round(base/10) * 10)
}
