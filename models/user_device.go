package models

import "time"

// UserDevice records a push registration: the raw token is exchanged for an
// SNS platform endpoint and only its hash is kept for dedup.
type UserDevice struct {
    ID          uint   `gorm:"primaryKey"`
    UserID      uint   `gorm:"index"`
    Platform    string `gorm:"size:16"` // "android" | "ios"
    TokenHash   string `gorm:"size:64"`
    EndpointARN string `gorm:"size:256"`
    Enabled     bool   `gorm:"default:true"`
    UpdatedAt   time.Time
    CreatedAt   time.Time
}
