package handlers

import (
	"errors"
	"fmt"
	"log"
	"strconv"

	configs "github.com/justlearn/backend/configs"
	websocketcontrib "github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"github.com/justlearn/backend/database"
	"github.com/justlearn/backend/models"
	"github.com/justlearn/backend/utils"
	"github.com/justlearn/backend/websocket"
)

func GetMyChats(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	var user models.User
	if err := database.DB.
		Preload("Chats.Participants").
		Where("id = ?", userID).
		First(&user).Error; err != nil {
		return notFound(c, "User")
	}

	return c.JSON(user.Chats)
}

// CreateOrGetChat returns the existing two-party chat with the recipient or
// starts a new one.
func CreateOrGetChat(c *fiber.Ctx) error {
	userID1, err := utils.UserIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}

	type Request struct {
		RecipientID string `json:"recipient_id" validate:"required,uuid"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	userID2, _ := uuid.Parse(req.RecipientID)

	var chat models.Chat
	err = database.DB.
		Joins("JOIN chat_participants cp1 ON cp1.chat_id = chats.id AND cp1.user_id = ?", userID1).
		Joins("JOIN chat_participants cp2 ON cp2.chat_id = chats.id AND cp2.user_id = ?", userID2).
		First(&chat).Error
	if err == nil {
		return c.JSON(chat)
	}

	var user1, user2 models.User
	if err := database.DB.First(&user1, "id = ?", userID1).Error; err != nil {
		return notFound(c, "User")
	}
	if err := database.DB.First(&user2, "id = ?", userID2).Error; err != nil {
		return notFound(c, "Recipient")
	}
	newChat := models.Chat{Participants: []*models.User{&user1, &user2}}
	if err := database.DB.Create(&newChat).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create chat"})
	}

	return c.Status(fiber.StatusCreated).JSON(newChat)
}

func isChatParticipant(chatID, userID uuid.UUID) bool {
	var count int64
	database.DB.
		Table("chat_participants").
		Where("chat_id = ? AND user_id = ?", chatID, userID).
		Count(&count)
	return count > 0
}

// GetChatMessages pages over the chat's messages, oldest first. Messages are
// read straight off the relationship rather than materialized on the chat.
func GetChatMessages(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	chatID, err := uuid.Parse(c.Params("chatId"))
	if err != nil {
		return notFound(c, "Chat")
	}
	if !isChatParticipant(chatID, userID) {
		return notFound(c, "Chat")
	}

	page, _ := strconv.Atoi(c.Query("page", "1"))
	pageSize, _ := strconv.Atoi(c.Query("page_size", "50"))
	offset := (page - 1) * pageSize

	var messages []models.Message
	if err := database.DB.
		Where("chat_id = ?", chatID).
		Order("created_at asc").
		Limit(pageSize).
		Offset(offset).
		Find(&messages).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch messages"})
	}

	return c.JSON(messages)
}

// SendMessage persists a message and hands it to the hub for live delivery.
func SendMessage(c *fiber.Ctx) error {
	userID, err := utils.UserIDFromToken(c)
	if err != nil {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "Invalid token"})
	}
	chatID, err := uuid.Parse(c.Params("chatId"))
	if err != nil {
		return notFound(c, "Chat")
	}
	if !isChatParticipant(chatID, userID) {
		return notFound(c, "Chat")
	}

	type Request struct {
		Content string `json:"content" validate:"required,max=255"`
	}
	var req Request
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	message := models.Message{ChatID: chatID, AuthorID: userID, Content: req.Content}
	if err := database.DB.Create(&message).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to save message"})
	}

	select {
	case websocket.Broadcast <- &message:
	default:
	}

	return c.Status(fiber.StatusCreated).JSON(message)
}

func ServeWs(c *websocketcontrib.Conn) {
	type AuthMessage struct {
		Type  string `json:"type"`
		Token string `json:"token"`
	}
	var authMsg AuthMessage
	if err := c.ReadJSON(&authMsg); err != nil || authMsg.Type != "auth" {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid or missing auth message"})
		c.Close()
		return
	}

	claims, err := parseToken(authMsg.Token)
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid token"})
		c.Close()
		return
	}

	userID, err := uuid.Parse(claims["user_id"].(string))
	if err != nil {
		_ = c.WriteJSON(fiber.Map{"error": "Invalid user ID"})
		c.Close()
		return
	}

	client := &websocket.Client{UserID: userID, Conn: c}
	websocket.Register <- client
	defer func() {
		websocket.Unregister <- client
		c.Close()
	}()

	for {
		var msg websocket.MessagePayload
		if err := c.ReadJSON(&msg); err != nil {
			if !websocketcontrib.IsCloseError(err, websocketcontrib.CloseGoingAway, websocketcontrib.CloseAbnormalClosure) {
				log.Printf("WebSocket read error for client %s: %v", userID, err)
			}
			break
		}

		chatID, err := uuid.Parse(msg.ChatID)
		if err != nil {
			_ = c.WriteJSON(fiber.Map{"error": "Invalid chat ID"})
			continue
		}
		if !isChatParticipant(chatID, userID) {
			_ = c.WriteJSON(fiber.Map{"error": "Not a participant of this chat"})
			continue
		}
		dbMessage := models.Message{
			ChatID:   chatID,
			AuthorID: userID,
			Content:  msg.Content,
		}
		if err := database.DB.Create(&dbMessage).Error; err != nil {
			log.Printf("Failed to save message for client %s: %v", userID, err)
			_ = c.WriteJSON(fiber.Map{"error": "Failed to save message"})
			continue
		}
		websocket.Broadcast <- &dbMessage
	}
}

func parseToken(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(configs.Config("JWT_SECRET")), nil
	})
	if err != nil {
		return nil, err
	}
	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}
