package policy

import (
	"fmt"
	"testing"

	"github.com/justlearn/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Student{}, &models.Teacher{}, &models.Skill{}, &models.Chat{}, &models.Message{}))
	return db
}

func TestResolveStudent(t *testing.T) {
	db := testDB(t)

	user := models.User{Email: "ann@example.com", Name: "Ann", Password: "x", IsStudent: true}
	require.NoError(t, db.Create(&user).Error)
	student := models.Student{UserID: user.ID}
	require.NoError(t, db.Create(&student).Error)

	caller, err := Resolve(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleStudent, caller.Role)
	require.NotNil(t, caller.Student)
	assert.Equal(t, student.ID, caller.Student.ID)
	assert.Nil(t, caller.Teacher)
}

func TestResolveTeacher(t *testing.T) {
	db := testDB(t)

	user := models.User{Email: "bob@example.com", Name: "Bob", Password: "x", IsTeacher: true}
	require.NoError(t, db.Create(&user).Error)
	teacher := models.Teacher{UserID: user.ID}
	require.NoError(t, db.Create(&teacher).Error)

	caller, err := Resolve(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleTeacher, caller.Role)
	require.NotNil(t, caller.Teacher)
	assert.Equal(t, teacher.ID, caller.Teacher.ID)
}

func TestResolveStaffHasNoProfile(t *testing.T) {
	db := testDB(t)

	user := models.User{Email: "staff@example.com", Name: "Staff", Password: "x", IsStaff: true}
	require.NoError(t, db.Create(&user).Error)

	caller, err := Resolve(db, user.ID)
	require.NoError(t, err)
	assert.Equal(t, RoleNone, caller.Role)
	assert.Nil(t, caller.Student)
	assert.Nil(t, caller.Teacher)
}

// A role flag without a matching profile row is a data-integrity fault and
// must never be treated as an anonymous caller.
func TestResolveMissingProfileIsAnError(t *testing.T) {
	db := testDB(t)

	user := models.User{Email: "ghost@example.com", Name: "Ghost", Password: "x", IsStudent: true}
	require.NoError(t, db.Create(&user).Error)

	_, err := Resolve(db, user.ID)
	assert.ErrorIs(t, err, ErrProfileNotFound)
}
