package utils

import "testing"

func TestDailyGoalMl(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		ageYears int
		gender   string
		policy   MaleAdjustment
		want     int
	}{
		{"young male, factor policy", 70, 25, "male", MaleFactor, 2830},
		{"young male, offset policy", 70, 25, "male", MaleOffset, 2950},
		{"young female", 70, 25, "female", MaleFactor, 2700},
		{"middle-aged female", 60, 40, "female", MaleFactor, 2100},
		{"senior male", 80, 65, "male", MaleFactor, 2650},
		{"gender case-insensitive", 70, 25, "Male", MaleFactor, 2830},
		{"unspecified gender", 70, 25, "unspecified", MaleFactor, 2700},
		{"missing weight falls back", 0, 25, "male", MaleFactor, DefaultGoalMl},
		{"missing age falls back", 70, 0, "male", MaleFactor, DefaultGoalMl},
		{"implausible weight falls back", 700, 25, "male", MaleFactor, DefaultGoalMl},
		{"negative age falls back", 70, -1, "male", MaleFactor, DefaultGoalMl},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := DailyGoalMl(tc.weightKg, tc.ageYears, tc.gender, tc.policy)
			if got != tc.want {
				t.Fatalf("DailyGoalMl(%v, %d, %q) = %d, want %d",
					tc.weightKg, tc.ageYears, tc.gender, got, tc.want)
			}
		})
	}
}

func TestDailyGoalMlAlwaysPositiveMultipleOfTen(t *testing.T) {
	for _, w := range []float64{40, 55.5, 70, 88.2, 120} {
		for _, age := range []int{18, 29, 30, 45, 60, 61, 90} {
			for _, g := range []string{"male", "female", "unspecified"} {
				got := DailyGoalMl(w, age, g, MaleFactor)
				if got <= 0 {
					t.Fatalf("goal for (%v, %d, %s) not positive: %d", w, age, g, got)
				}
				if got%10 != 0 {
					t.Fatalf("goal for (%v, %d, %s) not a multiple of 10: %d", w, age, g, got)
				}
			}
		}
	}
}
