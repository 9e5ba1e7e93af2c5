package models

import (
	"time"

	"github.com/google/uuid"
)

type Document struct {
	ID      uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	UserID  uuid.UUID  `gorm:"type:uuid;not null;index" json:"user_id"`
	HorseID *uuid.UUID `gorm:"type:uuid;index" json:"horse_id"`

	FileName string `gorm:"size:255;not null" json:"file_name"`
	FileURL  string `gorm:"size:512;not null" json:"file_url"`

	// Text extracted from the file at upload time, used by the
	// document question-answering endpoint.
	ExtractedText string `gorm:"type:text" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
