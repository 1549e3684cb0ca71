package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Student struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	GithubLink   *string   `gorm:"size:255" json:"github_link"`
	LinkedinLink *string   `gorm:"size:255" json:"linkedin_link"`
	Description  string    `gorm:"type:text" json:"description"`
	Image        *string   `gorm:"size:255" json:"image"`

	Skills []*Skill `gorm:"many2many:student_skills;" json:"skills,omitempty"`
	User   User     `gorm:"foreignkey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}

func (s *Student) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
