package utils

import "testing"

func findWarning(warnings []Warning, code string) *Warning {
	for i := range warnings {
		if warnings[i].Code == code {
			return &warnings[i]
		}
	}
	return nil
}

func TestAssessDailyIntake(t *testing.T) {
	t.Run("normal day has no findings", func(t *testing.T) {
		if w := AssessDailyIntake(1750, []float64{250, 500, 500, 500}); len(w) != 0 {
			t.Fatalf("expected no warnings, got %v", w)
		}
	})

	t.Run("oversized single entry", func(t *testing.T) {
		w := AssessDailyIntake(1500, []float64{1500})
		if findWarning(w, "LARGE_SINGLE_ENTRY") == nil {
			t.Fatalf("expected LARGE_SINGLE_ENTRY, got %v", w)
		}
	})

	t.Run("high daily total", func(t *testing.T) {
		w := AssessDailyIntake(6000, []float64{500})
		found := findWarning(w, "HIGH_DAILY_INTAKE")
		if found == nil {
			t.Fatalf("expected HIGH_DAILY_INTAKE, got %v", w)
		}
		if found.Severity != Caution {
			t.Fatalf("expected caution severity, got %s", found.Severity)
		}
	})

	t.Run("extreme total supersedes high", func(t *testing.T) {
		w := AssessDailyIntake(12000, []float64{500})
		if findWarning(w, "EXTREME_DAILY_INTAKE") == nil {
			t.Fatalf("expected EXTREME_DAILY_INTAKE, got %v", w)
		}
		if findWarning(w, "HIGH_DAILY_INTAKE") != nil {
			t.Fatal("extreme total should not also report HIGH_DAILY_INTAKE")
		}
	})
}
