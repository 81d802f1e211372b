package models

import (
    "time"

    "gorm.io/gorm"
)

type User struct {
    gorm.Model
    Email    string `gorm:"uniqueIndex;not null"`
    Password string `gorm:"not null"`
    Name     string

    WeightKg float64
    HeightCm float64
    AgeYears int
    Gender   string `gorm:"size:16"` // "male" | "female" | "unspecified"

    WakeTime        string `gorm:"size:5"` // "HH:MM", user-local
    SleepTime       string `gorm:"size:5"`
    ReminderEnabled bool   `gorm:"default:false"`

    ProfilePicture string

    ResetToken    string
    ResetTokenExp time.Time
    Disabled      bool `gorm:"default:false"`
}
