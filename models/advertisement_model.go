package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Advertisement struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	TeacherID   uuid.UUID `gorm:"type:uuid;not null" json:"teacher_id"`
	Title       string    `gorm:"size:255" json:"title"`
	Link        string    `gorm:"size:255" json:"link"`
	Description string    `gorm:"type:text" json:"description"`

	Teacher Teacher `gorm:"foreignkey:TeacherID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (a *Advertisement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}
