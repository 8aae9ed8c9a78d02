package models

import "time"

type ChatMessage struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	SenderID   *uint     `json:"sender_id"`   // nil for bot messages
	ReceiverID *uint     `json:"receiver_id"` // nil for messages to the bot
	Content    string    `gorm:"type:text" json:"content"`
	Type       string    `json:"type"` // "sent" or "received", from the user's perspective
	CreatedAt  time.Time `json:"created_at"`
}
