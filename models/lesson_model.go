package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Lesson struct {
	ID          uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	StudentID   uuid.UUID  `gorm:"type:uuid;not null" json:"student_id"`
	TeacherID   uuid.UUID  `gorm:"type:uuid;not null" json:"teacher_id"`
	Topic       string     `gorm:"size:255" json:"topic"`
	Description string     `gorm:"type:text" json:"description"`
	Duration    int        `gorm:"not null;default:60" json:"duration"`
	LessonDate  *time.Time `json:"lesson_date"`
	MeetingLink *string    `gorm:"size:255" json:"meeting_link"`

	Student   Student    `gorm:"foreignkey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Teacher   Teacher    `gorm:"foreignkey:TeacherID;constraint:OnDelete:CASCADE" json:"-"`
	Exercises []Exercise `json:"exercises,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (l *Lesson) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
