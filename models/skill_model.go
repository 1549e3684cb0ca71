package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ProficiencyJunior = "junior"
	ProficiencyMid    = "mid"
	ProficiencySenior = "senior"
)

type Skill struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	Name        string    `gorm:"size:255;not null" json:"name"`
	Proficiency string    `gorm:"size:20;not null;default:'junior'" json:"proficiency"`
}

func (s *Skill) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
