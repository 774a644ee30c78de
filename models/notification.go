package models

import "time"

type NotificationType string

const (
	NotificationOrderPlaced NotificationType = "order_placed"
	NotificationOrderStatus NotificationType = "order_status"
	NotificationPromotion   NotificationType = "promotion"
)

type Notification struct {
	ID        uint             `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID    string           `gorm:"index;not null" json:"user_id"`
	Type      NotificationType `gorm:"type:VARCHAR(30)" json:"type"`
	Title     string           `json:"title"`
	Body      string           `json:"body"`
	ReadAt    *time.Time       `json:"read_at"`
	CreatedAt time.Time        `json:"created_at"`
}
