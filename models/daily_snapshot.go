package models

import (
    "time"

    "gorm.io/gorm"
)

// DailySnapshot is the persisted per-day rollup of intake entries, keyed by
// (user, local midnight). It is rewritten on every ledger mutation so the
// history view can read goal-at-the-time instead of recomputing it.
type DailySnapshot struct {
    gorm.Model
    UserID        uint      `gorm:"index;not null"`
    Date          time.Time `gorm:"index;not null"` // local midnight

    TotalIntakeMl float64
    GoalMl        int
}
