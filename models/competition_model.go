package models

import (
	"time"

	"github.com/google/uuid"
)

type Competition struct {
	ID      uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`
	HorseID uuid.UUID `gorm:"type:uuid;not null;index" json:"horse_id"`

	Name       string    `gorm:"size:255;not null" json:"name"`
	Date       time.Time `gorm:"not null" json:"date"`
	Location   string    `gorm:"size:255" json:"location"`
	Discipline string    `gorm:"size:100" json:"discipline"`
	Placement  *string   `gorm:"size:50" json:"placement"`
	Notes      string    `gorm:"type:text" json:"notes"`

	Horse Horse `json:"horse,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
