package models

import (
	"time"

	"github.com/google/uuid"
)

// UserAchievement records a single earned badge. The composite unique index
// on (user_id, achievement_id) is the backstop that keeps grants idempotent
// even when two evaluation passes race.
type UserAchievement struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_user_achievement" json:"user_id"`

	AchievementID string     `gorm:"size:100;not null;uniqueIndex:idx_user_achievement" json:"achievement_id"`
	EarnedAt      time.Time  `gorm:"not null" json:"earned_at"`
	HorseID       *uuid.UUID `gorm:"type:uuid" json:"horse_id"`

	IsManuallyGranted bool `gorm:"default:false" json:"is_manually_granted"`

	CreatedAt time.Time `json:"created_at"`
}
