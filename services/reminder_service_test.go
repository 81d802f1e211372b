package services

import (
	"errors"
	"testing"
	"time"

	"github.com/suyogshejal2004/waterreminder/models"
)

func clock(h, m int) time.Time {
	return time.Date(2026, 9, 1, h, m, 0, 0, time.Local)
}

func TestPlanReminders(t *testing.T) {
	wake := clock(8, 0)
	sleep := clock(22, 0)
	interval := 90 * time.Minute

	t.Run("full window before wake", func(t *testing.T) {
		instants, err := PlanReminders(wake, sleep, interval, clock(6, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 08:00 .. 21:30 stepping 90 min
		if len(instants) != 10 {
			t.Fatalf("expected 10 instants, got %d", len(instants))
		}
		if !instants[0].Equal(clock(8, 0)) {
			t.Fatalf("first instant = %v, want 08:00", instants[0])
		}
		if !instants[len(instants)-1].Equal(clock(21, 30)) {
			t.Fatalf("last instant = %v, want 21:30", instants[len(instants)-1])
		}
	})

	t.Run("instants at or before now are dropped", func(t *testing.T) {
		instants, err := PlanReminders(wake, sleep, interval, clock(12, 30))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		// 12:30 itself is excluded; 14:00 .. 21:30 remain.
		if len(instants) != 6 {
			t.Fatalf("expected 6 instants, got %d", len(instants))
		}
		if !instants[0].Equal(clock(14, 0)) {
			t.Fatalf("first instant = %v, want 14:00", instants[0])
		}
	})

	t.Run("all in the past", func(t *testing.T) {
		instants, err := PlanReminders(wake, sleep, interval, clock(23, 0))
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(instants) != 0 {
			t.Fatalf("expected no instants, got %d", len(instants))
		}
	})

	t.Run("sleep before wake rejected", func(t *testing.T) {
		_, err := PlanReminders(clock(22, 0), clock(8, 0), interval, clock(6, 0))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("sleep equals wake rejected", func(t *testing.T) {
		_, err := PlanReminders(wake, wake, interval, clock(6, 0))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})

	t.Run("non-positive interval rejected", func(t *testing.T) {
		_, err := PlanReminders(wake, sleep, 0, clock(6, 0))
		if !errors.Is(err, ErrValidation) {
			t.Fatalf("expected ErrValidation, got %v", err)
		}
	})
}

func TestParseClockToday(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 0, 0, 0, time.Local)

	got, err := parseClockToday("07:30", now)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := time.Date(2026, 9, 1, 7, 30, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Fatalf("parseClockToday = %v, want %v", got, want)
	}

	if _, err := parseClockToday("25:00", now); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for bad clock, got %v", err)
	}
	if _, err := parseClockToday("bedtime", now); !errors.Is(err, ErrValidation) {
		t.Fatalf("expected ErrValidation for junk, got %v", err)
	}
}

func TestNextRollover(t *testing.T) {
	now := time.Date(2026, 9, 1, 15, 4, 5, 0, time.Local)
	want := time.Date(2026, 9, 2, 0, 0, 0, 0, time.Local)

	if got := nextRollover(now); !got.Equal(want) {
		t.Fatalf("nextRollover(%v) = %v, want %v", now, got, want)
	}

	// just before midnight still rolls to the coming day
	late := time.Date(2026, 9, 1, 23, 59, 59, 0, time.Local)
	if got := nextRollover(late); !got.Equal(want) {
		t.Fatalf("nextRollover(%v) = %v, want %v", late, got, want)
	}

	// exactly at midnight rolls a full day forward, never to itself
	midnight := time.Date(2026, 9, 1, 0, 0, 0, 0, time.Local)
	if got := nextRollover(midnight); !got.After(midnight) {
		t.Fatalf("nextRollover at midnight must advance, got %v", got)
	}
}

// Reminders must recur every day, not just on the day they were scheduled:
// Reschedule arms a midnight rollover timer alongside the day's instants,
// and Cancel tears it down with the rest.
func TestRescheduleArmsDailyRollover(t *testing.T) {
	sched := NewReminderScheduler(nil, nil)

	user := &models.User{
		ReminderEnabled: true,
		WakeTime:        "00:00",
		SleepTime:       "00:01",
	}
	user.ID = 7

	if err := sched.Reschedule(user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The one-minute window after midnight is already in the past, so the
	// only armed timer is the rollover that replans tomorrow.
	sched.mu.Lock()
	n := len(sched.timers[user.ID])
	sched.mu.Unlock()
	if n != 1 {
		t.Fatalf("expected exactly the rollover timer, got %d timers", n)
	}

	sched.Cancel(user.ID)
	sched.mu.Lock()
	n = len(sched.timers[user.ID])
	sched.mu.Unlock()
	if n != 0 {
		t.Fatalf("cancel left %d timers armed", n)
	}
}

func TestRescheduleDisabledArmsNothing(t *testing.T) {
	sched := NewReminderScheduler(nil, nil)

	user := &models.User{ReminderEnabled: false, WakeTime: "08:00", SleepTime: "22:00"}
	user.ID = 8

	if err := sched.Reschedule(user); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	sched.mu.Lock()
	n := len(sched.timers[user.ID])
	sched.mu.Unlock()
	if n != 0 {
		t.Fatalf("disabled user should have no timers, got %d", n)
	}
}

func TestReminderIntervalEnv(t *testing.T) {
	t.Setenv("REMINDER_INTERVAL_MINUTES", "")
	if got := reminderInterval(); got != DefaultReminderInterval {
		t.Fatalf("default interval = %v, want %v", got, DefaultReminderInterval)
	}

	t.Setenv("REMINDER_INTERVAL_MINUTES", "60")
	if got := reminderInterval(); got != time.Hour {
		t.Fatalf("interval = %v, want 1h", got)
	}

	t.Setenv("REMINDER_INTERVAL_MINUTES", "banana")
	if got := reminderInterval(); got != DefaultReminderInterval {
		t.Fatalf("invalid value should fall back, got %v", got)
	}
}
