package models

import (
	"time"

	"github.com/google/uuid"
)

type TrainingSession struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	HorseID uuid.UUID `gorm:"type:uuid;not null;index" json:"horse_id"`

	Date            time.Time `gorm:"not null;index" json:"date"`
	Discipline      string    `gorm:"size:100" json:"discipline"`
	DurationMinutes int       `gorm:"default:0" json:"duration_minutes"`
	Intensity       string    `gorm:"size:20" json:"intensity"`
	Notes           string    `gorm:"type:text" json:"notes"`

	Horse Horse `json:"horse,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
