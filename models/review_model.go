package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Review struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	LessonID uuid.UUID `gorm:"type:uuid;not null" json:"lesson_id"`
	Text     string    `gorm:"type:text" json:"text"`
	Rating   int       `gorm:"not null;default:0" json:"rating"`

	Lesson Lesson `gorm:"foreignkey:LessonID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (r *Review) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
