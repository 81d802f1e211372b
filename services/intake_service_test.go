package services

import (
	"errors"
	"testing"
	"time"
)

// Validation must reject bad amounts before any database access, so a nil
// DB is safe for these cases.
func TestAddEntryValidation(t *testing.T) {
	svc := NewIntakeService(nil)

	for _, amount := range []float64{0, -1, -250} {
		if _, err := svc.AddEntry(1, amount); !errors.Is(err, ErrValidation) {
			t.Fatalf("AddEntry(%v): expected ErrValidation, got %v", amount, err)
		}
	}
}

func TestEditEntryValidation(t *testing.T) {
	svc := NewIntakeService(nil)

	if _, err := svc.EditEntry(1, 7, 0); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for zero amount, got %v", err)
	}
	if _, err := svc.EditEntry(1, 7, -100); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for negative amount, got %v", err)
	}
}

func TestDayStartLocal(t *testing.T) {
	at := time.Date(2026, 9, 1, 17, 45, 12, 0, time.Local)
	got := dayStartLocal(at)
	want := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("dayStartLocal = %v, want %v", got, want)
	}
	if got.Location() != time.Local {
		t.Fatal("day start must be in the local timezone")
	}
}
