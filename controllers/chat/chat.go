package chatcontroller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/middleware"
	"github.com/anderson-code22/lojavirtual/models"
)

const welcomeMessage = "Olá! Como podemos ajudar você hoje?"

type MessageInput struct {
	Message string `json:"message" binding:"required"`
}

// openSession returns the user's open chat session, creating one (with
// the support welcome message) on first contact.
func openSession(db *gorm.DB, userID string) (models.ChatSession, error) {
	var session models.ChatSession
	err := db.Preload("Messages", func(q *gorm.DB) *gorm.DB {
		return q.Order("created_at ASC")
	}).Where("user_id = ? AND status = ?", userID, models.ChatSessionOpen).
		First(&session).Error
	if err == nil {
		return session, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return session, err
	}

	session = models.ChatSession{
		ID:     uuid.NewString(),
		UserID: userID,
		Status: models.ChatSessionOpen,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&session).Error; err != nil {
			return err
		}
		welcome := models.ChatMessage{
			SessionID:  session.ID,
			SenderID:   "support",
			SenderName: "Suporte",
			Message:    welcomeMessage,
		}
		if err := tx.Create(&welcome).Error; err != nil {
			return err
		}
		session.Messages = []models.ChatMessage{welcome}
		return nil
	})
	return session, err
}

// GET /user/chat
func GetChatSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		session, err := openSession(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open chat session"})
			return
		}
		c.JSON(http.StatusOK, session)
	}
}

// POST /user/chat/messages
func SendMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}
		if len(input.Message) > 2000 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"message": "must have at most 2000 characters"}})
			return
		}

		session, err := openSession(db, userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to open chat session"})
			return
		}

		var user models.User
		if err := db.Select("name").Where("id = ?", userID).First(&user).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load user"})
			return
		}

		msg := models.ChatMessage{
			SessionID:  session.ID,
			SenderID:   userID,
			SenderName: user.Name,
			Message:    input.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}

		broadcastMessage(msg)
		c.JSON(http.StatusCreated, msg)
	}
}

// GET /admin/chat-sessions
func GetChatSessions(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var sessions []models.ChatSession
		if err := db.WithContext(c.Request.Context()).
			Preload("Messages", func(q *gorm.DB) *gorm.DB {
				return q.Order("created_at ASC")
			}).
			Order("updated_at DESC").
			Find(&sessions).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch chat sessions"})
			return
		}
		c.JSON(http.StatusOK, sessions)
	}
}

// POST /admin/chat-sessions/:sessionID/messages
func SendSupportMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		sessionID := c.Param("sessionID")

		var session models.ChatSession
		if err := db.First(&session, "id = ?", sessionID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
			return
		}

		var input MessageInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		msg := models.ChatMessage{
			SessionID:  session.ID,
			SenderID:   "support",
			SenderName: "Suporte",
			Message:    input.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to send message"})
			return
		}

		broadcastMessage(msg)
		c.JSON(http.StatusCreated, msg)
	}
}

// PUT /admin/chat-sessions/:sessionID/close
func CloseChatSession(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		result := db.Model(&models.ChatSession{}).
			Where("id = ?", c.Param("sessionID")).
			Update("status", models.ChatSessionClosed)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to close chat session"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Chat session not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Chat session closed"})
	}
}
