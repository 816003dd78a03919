package dto

import (
	"time"

	"github.com/google/uuid"
)

type ChatMessageResponse struct {
	Id          uuid.UUID `json:"id"`
	SenderId    uuid.UUID `json:"senderId"`
	RecipientId uuid.UUID `json:"recipientId"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

type ConversationHistoryResponse struct {
	ConversationId string                `json:"conversationId"`
	Messages       []ChatMessageResponse `json:"messages"`
}

type UnreadCountResponse struct {
	ConversationId string `json:"conversationId"`
	Count          int    `json:"count"`
}
