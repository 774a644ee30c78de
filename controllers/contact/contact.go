package contactcontroller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/models"
	"github.com/anderson-code22/lojavirtual/validation"
)

type ContactInput struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject"`
	Message string `json:"message" binding:"required"`
}

type NewsletterInput struct {
	Email string `json:"email" binding:"required"`
}

// POST /contact
func CreateContactMessage(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input ContactInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		if fieldErr := validation.Name(input.Name); fieldErr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
			return
		}
		if fieldErr := validation.Email(strings.ToLower(input.Email)); fieldErr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
			return
		}
		if len(input.Message) < 10 || len(input.Message) > 2000 {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{"message": "must have between 10 and 2000 characters"}})
			return
		}

		msg := models.ContactMessage{
			Name:    strings.TrimSpace(input.Name),
			Email:   strings.ToLower(strings.TrimSpace(input.Email)),
			Subject: input.Subject,
			Message: input.Message,
		}
		if err := db.Create(&msg).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save message"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Message received"})
	}
}

// GET /admin/contact-messages
func GetContactMessages(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var messages []models.ContactMessage
		if err := db.WithContext(c.Request.Context()).
			Order("created_at DESC").Find(&messages).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch messages"})
			return
		}
		c.JSON(http.StatusOK, messages)
	}
}

// SubscribeNewsletter is idempotent: subscribing twice with the same
// email returns success without a duplicate row.
func SubscribeNewsletter(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		var input NewsletterInput
		if err := c.ShouldBindJSON(&input); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
			return
		}

		email := strings.ToLower(strings.TrimSpace(input.Email))
		if fieldErr := validation.Email(email); fieldErr != nil {
			c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": gin.H{fieldErr.Field: fieldErr.Reason}})
			return
		}

		var existing models.NewsletterSubscriber
		err := db.Where("email = ?", email).First(&existing).Error
		if err == nil {
			c.JSON(http.StatusOK, gin.H{"message": "Already subscribed"})
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error"})
			return
		}

		if err := db.Create(&models.NewsletterSubscriber{Email: email}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to subscribe"})
			return
		}
		c.JSON(http.StatusCreated, gin.H{"message": "Subscribed"})
	}
}
