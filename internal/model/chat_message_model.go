package model

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessage struct {
	Id          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	SenderId    uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_sender_recipient"`
	RecipientId uuid.UUID `gorm:"type:uuid;not null;index:idx_chat_sender_recipient"`
	Content     string    `gorm:"type:text;not null"`
	Timestamp   time.Time `gorm:"autoCreateTime;index"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
