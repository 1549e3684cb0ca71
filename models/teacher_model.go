package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Teacher struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key" json:"id"`
	UserID       uuid.UUID `gorm:"type:uuid;not null;unique" json:"user_id"`
	GithubLink   *string   `gorm:"size:255" json:"github_link"`
	LinkedinLink *string   `gorm:"size:255" json:"linkedin_link"`
	Description  string    `gorm:"type:text" json:"description"`
	Image        *string   `gorm:"size:255" json:"image"`
	Rating       float64   `gorm:"default:0" json:"rating"`

	Skills []*Skill `gorm:"many2many:teacher_skills;" json:"skills,omitempty"`
	User   User     `gorm:"foreignkey:UserID;constraint:OnDelete:CASCADE" json:"user"`
}

func (t *Teacher) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}
