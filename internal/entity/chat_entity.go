package entity

import (
	"time"

	"github.com/google/uuid"
)

// ChatMessage is one direct message between two users. Immutable once stored.
type ChatMessage struct {
	Id          uuid.UUID
	SenderId    uuid.UUID
	RecipientId uuid.UUID
	Content     string
	Timestamp   time.Time
}

// UnreadCounter tallies messages delivered to a user while they were not
// present in the conversation room. Exactly one row per (conversation, user).
type UnreadCounter struct {
	ConversationId string
	UserId         uuid.UUID
	Count          int
	UpdatedAt      time.Time
}
