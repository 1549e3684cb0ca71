package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Email     string    `gorm:"size:255;not null;unique" json:"email"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Password  string    `gorm:"not null" json:"-"`
	IsActive  bool      `gorm:"default:true" json:"is_active"`
	IsStaff   bool      `gorm:"default:false" json:"is_staff"`
	IsStudent bool      `gorm:"default:false" json:"is_student"`
	IsTeacher bool      `gorm:"default:false" json:"is_teacher"`

	Chats []*Chat `gorm:"many2many:chat_participants;" json:"-"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
