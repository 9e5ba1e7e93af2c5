package models

import (
	"time"

	"github.com/google/uuid"
)

type User struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	FullName string    `gorm:"size:255;not null" json:"full_name"`
	Email    string    `gorm:"size:255;not null;unique" json:"email"`
	Password string    `gorm:"not null" json:"-"`
	Role     string    `gorm:"size:20;not null;default:'owner'" json:"role"`

	ResetPasswordToken          *string    `json:"-"`
	ResetPasswordTokenExpiresAt *time.Time `json:"-"`

	Horses       []Horse           `json:"horses,omitempty"`
	Achievements []UserAchievement `json:"achievements,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
