package notificationcontroller

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/anderson-code22/lojavirtual/middleware"
	"github.com/anderson-code22/lojavirtual/models"
)

// GET /user/notifications
func GetNotifications(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var notifications []models.Notification
		if err := db.WithContext(c.Request.Context()).
			Where("user_id = ?", userID).
			Order("created_at DESC").
			Limit(50).
			Find(&notifications).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}

// GET /user/notifications/unread-count
func GetUnreadCount(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		var count int64
		if err := db.Model(&models.Notification{}).
			Where("user_id = ? AND read_at IS NULL", userID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to count notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"unread_count": count})
	}
}

// PUT /user/notifications/:id/read
func MarkAsRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		now := time.Now()
		result := db.Model(&models.Notification{}).
			Where("id = ? AND user_id = ? AND read_at IS NULL", c.Param("id"), userID).
			Update("read_at", now)
		if result.Error != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notification"})
			return
		}
		if result.RowsAffected == 0 {
			c.JSON(http.StatusNotFound, gin.H{"error": "Notification not found"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "Notification marked as read"})
	}
}

// POST /user/notifications/read-all
func MarkAllAsRead(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := middleware.UserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		now := time.Now()
		if err := db.Model(&models.Notification{}).
			Where("user_id = ? AND read_at IS NULL", userID).
			Update("read_at", now).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to mark notifications"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"message": "All notifications marked as read"})
	}
}
