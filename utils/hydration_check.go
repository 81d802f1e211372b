package utils

import "fmt"

// WarningSeverity categorizes how serious the flag is.
type WarningSeverity string

const (
	Info    WarningSeverity = "info"
	Caution WarningSeverity = "caution"
	High    WarningSeverity = "high"
)

// Warning is a structured finding the API surfaces alongside the dashboard.
type Warning struct {
	Code     string          `json:"code"`
	Severity WarningSeverity `json:"severity"`
	Message  string          `json:"message"`
	Value    float64         `json:"value,omitempty"`
	Limit    float64         `json:"limit,omitempty"`
}

const (
	// Single entries above this are probably a typo (a jug, not a glass).
	largeEntryMl = 1000
	// Sustained intake above this in one day warrants a caution.
	highDailyMl = 5000
	// Hyponatremia territory.
	extremeDailyMl = 10000
)

// AssessDailyIntake runs advisory checks over a day's total and the amounts
// of its individual entries. Findings never block logging.
func AssessDailyIntake(totalMl float64, entryAmountsMl []float64) []Warning {
	var warnings []Warning

	for _, amount := range entryAmountsMl {
		if amount > largeEntryMl {
			warnings = append(warnings, Warning{
				Code:     "LARGE_SINGLE_ENTRY",
				Severity: Info,
				Message:  fmt.Sprintf("A single entry of %.0f ml is unusually large; double-check the amount.", amount),
				Value:    amount,
				Limit:    largeEntryMl,
			})
		}
	}

	switch {
	case totalMl > extremeDailyMl:
		warnings = append(warnings, Warning{
			Code:     "EXTREME_DAILY_INTAKE",
			Severity: High,
			Message:  "Logged intake is far above safe daily limits. If accurate, consider medical advice.",
			Value:    totalMl,
			Limit:    extremeDailyMl,
		})
	case totalMl > highDailyMl:
		warnings = append(warnings, Warning{
			Code:     "HIGH_DAILY_INTAKE",
			Severity: Caution,
			Message:  "Logged intake is well above typical daily needs.",
			Value:    totalMl,
			Limit:    highDailyMl,
		})
	}

	return warnings
}
