package models

import (
	"time"

	"github.com/google/uuid"
)

type HealthLog struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	HorseID uuid.UUID `gorm:"type:uuid;not null;index" json:"horse_id"`

	Date  time.Time `gorm:"not null;index" json:"date"`
	Type  string    `gorm:"size:50;not null" json:"type"` // vet, farrier, dental, vaccination, other
	Notes string    `gorm:"type:text" json:"notes"`

	Horse Horse `json:"horse,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
