package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Offer records a proposed engagement: either a student answering a
// teacher's advertisement, or a teacher answering a student's problem.
type Offer struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Name            string     `gorm:"size:255" json:"name"`
	StudentID       *uuid.UUID `gorm:"type:uuid" json:"student_id"`
	TeacherID       *uuid.UUID `gorm:"type:uuid" json:"teacher_id"`
	AdvertisementID *uuid.UUID `gorm:"type:uuid" json:"advertisement_id"`
	ProblemID       *uuid.UUID `gorm:"type:uuid" json:"problem_id"`

	Student       *Student       `gorm:"foreignkey:StudentID;constraint:OnDelete:CASCADE" json:"-"`
	Teacher       *Teacher       `gorm:"foreignkey:TeacherID" json:"-"`
	Advertisement *Advertisement `gorm:"foreignkey:AdvertisementID;constraint:OnDelete:CASCADE" json:"-"`
	Problem       *Problem       `gorm:"foreignkey:ProblemID;constraint:OnDelete:CASCADE" json:"-"`

	CreatedAt time.Time `json:"created_at"`
}

func (o *Offer) BeforeCreate(tx *gorm.DB) error {
	if o.ID == uuid.Nil {
		o.ID = uuid.New()
	}
	return nil
}
