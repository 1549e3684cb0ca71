package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesMatchingProfile(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Ann Student",
		"email":    "ann@example.com",
		"password": "secret123",
		"role":     "student",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var body struct {
		IsStudent bool `json:"is_student"`
		IsTeacher bool `json:"is_teacher"`
	}
	decodeBody(t, resp, &body)
	assert.True(t, body.IsStudent)
	assert.False(t, body.IsTeacher)

	student := studentProfile(t, "ann@example.com")
	assert.NotEqual(t, "", student.ID.String())

	var teacherCount int64
	database.DB.Model(&models.Teacher{}).Count(&teacherCount)
	assert.Zero(t, teacherCount, "student signup must not create a teacher profile")
}

func TestRegisterTeacherCreatesTeacherProfile(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Bob Teacher",
		"email":    "bob@example.com",
		"password": "secret123",
		"role":     "teacher",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	teacher := teacherProfile(t, "bob@example.com")
	assert.Zero(t, teacher.Rating)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Eve",
		"email":    "eve@example.com",
		"password": "secret123",
		"role":     "admin",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	app := setupApp(t)
	signupAndLogin(t, app, "Ann", "ann@example.com", "student")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/register", "", fiber.Map{
		"name":     "Ann Again",
		"email":    "ann@example.com",
		"password": "secret123",
		"role":     "teacher",
	})
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	app := setupApp(t)
	signupAndLogin(t, app, "Ann", "ann@example.com", "student")

	resp := doJSON(t, app, http.MethodPost, "/api/v1/auth/login", "", fiber.Map{
		"email":    "ann@example.com",
		"password": "wrong-password",
	})
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProtectedEndpointRejectsMissingToken(t *testing.T) {
	app := setupApp(t)

	resp := doJSON(t, app, http.MethodGet, "/api/v1/lessons", "", nil)
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}
