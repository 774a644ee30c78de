package models

import "time"

type ChatSessionStatus string

const (
	ChatSessionOpen   ChatSessionStatus = "open"
	ChatSessionClosed ChatSessionStatus = "closed"
)

type ChatSession struct {
	ID        string            `gorm:"primaryKey" json:"id"` // uuid
	UserID    string            `gorm:"index;not null" json:"user_id"`
	Status    ChatSessionStatus `gorm:"type:VARCHAR(20);default:'open'" json:"status"`
	Messages  []ChatMessage     `gorm:"foreignKey:SessionID;constraint:OnDelete:CASCADE" json:"messages,omitempty"`
	CreatedAt time.Time         `json:"created_at"`
	UpdatedAt time.Time         `json:"updated_at"`
}

type ChatMessage struct {
	ID         uint      `gorm:"primaryKey;autoIncrement" json:"id"`
	SessionID  string    `gorm:"index;not null" json:"session_id"`
	SenderID   string    `json:"sender_id"` // user id, or "support" for staff replies
	SenderName string    `json:"sender_name"`
	Message    string    `gorm:"not null" json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}
