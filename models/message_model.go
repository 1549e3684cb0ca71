package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Message struct {
	ID       uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	ChatID   uuid.UUID `gorm:"type:uuid;not null" json:"chat_id"`
	AuthorID uuid.UUID `gorm:"type:uuid;not null" json:"author_id"`
	Content  string    `gorm:"type:text;not null" json:"content"`

	Author User `gorm:"foreignkey:AuthorID;constraint:OnDelete:CASCADE" json:"-"`
	Chat   Chat `gorm:"foreignkey:ChatID" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (m *Message) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
