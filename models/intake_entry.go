package models

import (
    "time"

    "gorm.io/gorm"
)

// IntakeEntry is one logged water-consumption event. Rows are append-only:
// an edit changes the amount, never the timestamp; undo deletes the row.
type IntakeEntry struct {
    gorm.Model
    UserID     uint      `gorm:"index;not null" json:"user_id"`
    AmountMl   float64   `gorm:"not null" json:"amount_ml"`
    OccurredAt time.Time `gorm:"index;not null" json:"occurred_at"`
}
