package models

import (
	"time"

	"github.com/google/uuid"
)

type Horse struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID uuid.UUID `gorm:"type:uuid;not null;index" json:"user_id"`

	Name        string     `gorm:"size:255;not null" json:"name"`
	Breed       string     `gorm:"size:255" json:"breed"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Color       string     `gorm:"size:100" json:"color"`
	Gender      string     `gorm:"size:20" json:"gender"`

	// Optional personality fields; empty values never count toward
	// the personality achievement.
	PersonalityTrait *string `gorm:"type:text" json:"personality_trait"`
	FunFact          *string `gorm:"type:text" json:"fun_fact"`

	PhotoURL *string `gorm:"size:512" json:"photo_url"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
