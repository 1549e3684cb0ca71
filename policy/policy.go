package policy

import "github.com/justlearn/backend/models"

// Operation splits requests into safe reads and mutating writes, mirroring
// the HTTP method classes (GET vs POST/PATCH/DELETE).
type Operation int

const (
	OpRead Operation = iota
	OpWrite
)

// Collection-level checks apply before a specific object is known (list,
// create). Object-level checks compare the loaded object's owner against the
// caller's resolved profile. A RoleNone caller fails every ownership
// comparison.

func CanAccessLessons(c Caller, op Operation) bool {
	if op == OpRead {
		return true
	}
	return c.Role == RoleTeacher
}

// CanAccessLesson restricts even reads to the lesson's own participants:
// lesson content is private between the paired student and teacher.
func CanAccessLesson(c Caller, lesson models.Lesson, op Operation) bool {
	if op == OpRead {
		switch c.Role {
		case RoleStudent:
			return lesson.StudentID == c.Student.ID
		case RoleTeacher:
			return lesson.TeacherID == c.Teacher.ID
		}
		return false
	}
	return c.Role == RoleTeacher && lesson.TeacherID == c.Teacher.ID
}

func CanAccessProblems(c Caller, op Operation) bool {
	if op == OpRead {
		return true
	}
	return c.Role == RoleStudent
}

func CanAccessProblem(c Caller, problem models.Problem, op Operation) bool {
	if op == OpRead {
		return true
	}
	return c.Role == RoleStudent && problem.StudentID == c.Student.ID
}

func CanAccessAdvertisements(c Caller, op Operation) bool {
	if op == OpRead {
		return true
	}
	return c.Role == RoleTeacher
}

func CanAccessAdvertisement(c Caller, ad models.Advertisement, op Operation) bool {
	if op == OpRead {
		return true
	}
	return c.Role == RoleTeacher && ad.TeacherID == c.Teacher.ID
}
