package chat

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Client-emitted events.
const (
	EventConnect           = "connect"
	EventJoinConversation  = "joinConversation"
	EventLeaveConversation = "leaveConversation"
	EventSendMessage       = "sendMessage"
	EventGetUnreadCount    = "getUnreadCount"
)

// Server-emitted events.
const (
	EventConnected          = "connected"
	EventNewMessage         = "newMessage"
	EventUnreadCount        = "unreadCount"
	EventUnreadNotification = "unreadNotification"
	EventError              = "error"
)

// Envelope is the wire frame for every websocket message in either
// direction.
type Envelope struct {
	Event string          `json:"event"`
	Data  json.RawMessage `json:"data,omitempty"`
}

type ConnectPayload struct {
	Token string `json:"token" validate:"required"`
}

type ConversationPayload struct {
	RecipientId uuid.UUID `json:"recipientId" validate:"required"`
}

type SendMessagePayload struct {
	RecipientId uuid.UUID `json:"recipientId" validate:"required"`
	Content     string    `json:"content" validate:"required,max=2000"`
}

type ConnectedPayload struct {
	UserId   uuid.UUID `json:"userId"`
	Username string    `json:"username"`
}

type NewMessagePayload struct {
	Id          uuid.UUID `json:"id"`
	SenderId    uuid.UUID `json:"senderId"`
	RecipientId uuid.UUID `json:"recipientId"`
	Content     string    `json:"content"`
	Timestamp   time.Time `json:"timestamp"`
}

type UnreadCountPayload struct {
	ConversationId string `json:"conversationId"`
	Count          int    `json:"count"`
}

type UnreadNotificationPayload struct {
	ConversationId string    `json:"conversationId"`
	SenderId       uuid.UUID `json:"senderId"`
	Count          int       `json:"count"`
	Preview        string    `json:"preview"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}

func newEnvelope(event string, payload interface{}) ([]byte, error) {
	var data json.RawMessage
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, err
		}
		data = raw
	}
	return json.Marshal(Envelope{Event: event, Data: data})
}
