package models

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	HorseID *uuid.UUID `gorm:"type:uuid;index" json:"horse_id"`

	Title string    `gorm:"size:255;not null" json:"title"`
	Notes string    `gorm:"type:text" json:"notes"`
	DueAt time.Time `gorm:"not null;index" json:"due_at"`

	IsSent bool       `gorm:"default:false" json:"is_sent"`
	SentAt *time.Time `json:"sent_at"`

	User User `json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
