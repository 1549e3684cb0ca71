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

func userID(t *testing.T, email string) string {
	t.Helper()
	var user models.User
	require.NoError(t, database.DB.First(&user, "email = ?", email).Error)
	return user.ID.String()
}

func openChat(t *testing.T, app *fiber.App, token, recipientID string) string {
	t.Helper()
	resp := doJSON(t, app, http.MethodPost, "/api/v1/chats", token, fiber.Map{
		"recipient_id": recipientID,
	})
	require.Contains(t, []int{http.StatusOK, http.StatusCreated}, resp.StatusCode)
	var chat struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &chat)
	return chat.ID
}

func TestChatCreateOrGetIsIdempotent(t *testing.T) {
	app := setupApp(t)
	annToken := signupAndLogin(t, app, "Ann Student", "ann@example.com", "student")
	signupAndLogin(t, app, "Bob Teacher", "bob@example.com", "teacher")

	bobID := userID(t, "bob@example.com")
	first := openChat(t, app, annToken, bobID)
	second := openChat(t, app, annToken, bobID)
	assert.Equal(t, first, second)
}

func TestChatMessagesOrderedAndParticipantOnly(t *testing.T) {
	app := setupApp(t)
	annToken := signupAndLogin(t, app, "Ann Student", "ann@example.com", "student")
	bobToken := signupAndLogin(t, app, "Bob Teacher", "bob@example.com", "teacher")
	outsiderToken := signupAndLogin(t, app, "Zoe Student", "zoe@example.com", "student")

	chatID := openChat(t, app, annToken, userID(t, "bob@example.com"))

	for _, content := range []string{"hi", "hello", "when do we start?"} {
		resp := doJSON(t, app, http.MethodPost, "/api/v1/chats/"+chatID+"/messages", annToken, fiber.Map{
			"content": content,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode)
		resp.Body.Close()
	}

	resp := doJSON(t, app, http.MethodGet, "/api/v1/chats/"+chatID+"/messages", bobToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var messages []struct {
		Content string `json:"content"`
	}
	decodeBody(t, resp, &messages)
	require.Len(t, messages, 3)
	assert.Equal(t, "hi", messages[0].Content)
	assert.Equal(t, "when do we start?", messages[2].Content)

	// A non-participant gets the same answer as a missing chat.
	resp = doJSON(t, app, http.MethodGet, "/api/v1/chats/"+chatID+"/messages", outsiderToken, nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()

	resp = doJSON(t, app, http.MethodPost, "/api/v1/chats/"+chatID+"/messages", outsiderToken, fiber.Map{
		"content": "let me in",
	})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp.Body.Close()
}

func TestChatListShowsMyChats(t *testing.T) {
	app := setupApp(t)
	annToken := signupAndLogin(t, app, "Ann Student", "ann@example.com", "student")
	signupAndLogin(t, app, "Bob Teacher", "bob@example.com", "teacher")
	openChat(t, app, annToken, userID(t, "bob@example.com"))

	resp := doJSON(t, app, http.MethodGet, "/api/v1/chats", annToken, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var chats []struct {
		ID string `json:"id"`
	}
	decodeBody(t, resp, &chats)
	assert.Len(t, chats, 1)
}
