package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Exercise struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LessonID uuid.UUID `gorm:"type:uuid;not null" json:"lesson_id"`
	File     string    `gorm:"size:255;not null" json:"file"`

	Lesson Lesson `gorm:"foreignkey:LessonID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (e *Exercise) BeforeCreate(tx *gorm.DB) error {
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	return nil
}
