package policy

import (
	"errors"

	"github.com/google/uuid"
	"github.com/justlearn/backend/models"
	"gorm.io/gorm"
)

// Role tags the caller's resolved profile kind.
type Role int

const (
	RoleNone Role = iota
	RoleStudent
	RoleTeacher
)

func (r Role) String() string {
	switch r {
	case RoleStudent:
		return "student"
	case RoleTeacher:
		return "teacher"
	}
	return "none"
}

// ErrProfileNotFound means a user's role flag claims a profile that does not
// exist. This is a data-integrity fault, not a client error.
var ErrProfileNotFound = errors.New("role flag set but no linked profile record exists")

// Caller is the resolved identity of an authenticated request. Exactly one
// of Student/Teacher is non-nil when Role is RoleStudent/RoleTeacher; staff
// and unlinked accounts resolve to RoleNone.
type Caller struct {
	User    models.User
	Role    Role
	Student *models.Student
	Teacher *models.Teacher
}

// Resolve maps an authenticated user id to its Caller.
func Resolve(db *gorm.DB, userID uuid.UUID) (Caller, error) {
	var user models.User
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return Caller{}, err
	}

	caller := Caller{User: user, Role: RoleNone}

	switch {
	case user.IsStudent:
		var student models.Student
		if err := db.First(&student, "user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Caller{}, ErrProfileNotFound
			}
			return Caller{}, err
		}
		caller.Role = RoleStudent
		caller.Student = &student
	case user.IsTeacher:
		var teacher models.Teacher
		if err := db.First(&teacher, "user_id = ?", user.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return Caller{}, ErrProfileNotFound
			}
			return Caller{}, err
		}
		caller.Role = RoleTeacher
		caller.Teacher = &teacher
	}

	return caller, nil
}
