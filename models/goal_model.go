package models

import (
	"time"

	"github.com/google/uuid"
)

type Goal struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	HorseID *uuid.UUID `gorm:"type:uuid;index" json:"horse_id"`

	Title       string     `gorm:"size:255;not null" json:"title"`
	Description string     `gorm:"type:text" json:"description"`
	TargetDate  *time.Time `json:"target_date"`
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`

	Milestones []Milestone `json:"milestones,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type Milestone struct {
	ID     uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	GoalID uuid.UUID `gorm:"type:uuid;not null;index" json:"goal_id"`

	Title       string     `gorm:"size:255;not null" json:"title"`
	IsCompleted bool       `gorm:"default:false" json:"is_completed"`
	CompletedAt *time.Time `json:"completed_at"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
