package handlers_test

import (
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReviewRatingBounds(t *testing.T) {
	app := setupApp(t)
	teacherToken := signupAndLogin(t, app, "Bob Teacher", "bob@example.com", "teacher")
	studentToken := signupAndLogin(t, app, "Ann Student", "ann@example.com", "student")
	studentID := studentProfile(t, "ann@example.com").ID.String()
	lessonID := createLesson(t, app, teacherToken, studentID, "Reviewable", nil)

	for _, rating := range []int{-1, 11, 42} {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/lessons/"+lessonID+"/reviews", studentToken, fiber.Map{
			"text":   "out of range",
			"rating": rating,
		})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode, "rating %d must be rejected", rating)
		resp.Body.Close()
	}

	for _, rating := range []int{0, 10} {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/lessons/"+lessonID+"/reviews", studentToken, fiber.Map{
			"text":   "boundary",
			"rating": rating,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		var review struct {
			Rating int `json:"rating"`
		}
		decodeBody(t, resp, &review)
		assert.Equal(t, rating, review.Rating, "rating must round-trip unchanged")
	}
}

func TestReviewRecomputesTeacherRating(t *testing.T) {
	app := setupApp(t)
	teacherToken := signupAndLogin(t, app, "Bob Teacher", "bob@example.com", "teacher")
	studentToken := signupAndLogin(t, app, "Ann Student", "ann@example.com", "student")
	studentID := studentProfile(t, "ann@example.com").ID.String()
	lessonID := createLesson(t, app, teacherToken, studentID, "Rated", nil)

	for _, rating := range []int{4, 8} {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/lessons/"+lessonID+"/reviews", studentToken, fiber.Map{
			"rating": rating,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	teacher := teacherProfile(t, "bob@example.com")
	assert.InDelta(t, 6.0, teacher.Rating, 0.001)
}

func TestReviewOnlyByLessonStudent(t *testing.T) {
	app := setupApp(t)
	teacherToken := signupAndLogin(t, app, "Bob Teacher", "bob@example.com", "teacher")
	signupAndLogin(t, app, "Ann Student", "ann@example.com", "student")
	outsiderToken := signupAndLogin(t, app, "Zoe Student", "zoe@example.com", "student")
	studentID := studentProfile(t, "ann@example.com").ID.String()
	lessonID := createLesson(t, app, teacherToken, studentID, "Not yours", nil)

	// An uninvolved student cannot even learn the lesson exists.
	resp := doJSON(t, app, http.MethodPost, "/api/v1/lessons/"+lessonID+"/reviews", outsiderToken, fiber.Map{
		"rating": 5,
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	// The teacher is blocked by the role guard.
	resp = doJSON(t, app, http.MethodPost, "/api/v1/lessons/"+lessonID+"/reviews", teacherToken, fiber.Map{
		"rating": 5,
	})
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	resp.Body.Close()
}

func TestListLessonReviewsVisibleToParticipants(t *testing.T) {
	app := setupApp(t)
	teacherToken := signupAndLogin(t, app, "Bob Teacher", "bob@example.com", "teacher")
	studentToken := signupAndLogin(t, app, "Ann Student", "ann@example.com", "student")
	outsiderToken := signupAndLogin(t, app, "Cat Teacher", "cat@example.com", "teacher")
	studentID := studentProfile(t, "ann@example.com").ID.String()
	lessonID := createLesson(t, app, teacherToken, studentID, "Discussed", nil)

	resp := doJSON(t, app, http.MethodPost, "/api/v1/lessons/"+lessonID+"/reviews", studentToken, fiber.Map{
		"text":   "great lesson",
		"rating": 9,
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodGet, "/api/v1/lessons/"+lessonID+"/reviews", teacherToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var reviews []struct {
		Text string `json:"text"`
	}
	decodeBody(t, resp, &reviews)
	require.Len(t, reviews, 1)
	assert.Equal(t, "great lesson", reviews[0].Text)

	resp = doJSON(t, app, http.MethodGet, "/api/v1/lessons/"+lessonID+"/reviews", outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}
