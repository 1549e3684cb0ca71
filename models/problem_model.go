package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Problem struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	StudentID   uuid.UUID `gorm:"type:uuid;not null" json:"student_id"`
	Title       string    `gorm:"size:255" json:"title"`
	Link        string    `gorm:"size:255" json:"link"`
	Description string    `gorm:"type:text" json:"description"`

	Student Student `gorm:"foreignkey:StudentID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (p *Problem) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}
