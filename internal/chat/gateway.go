package chat

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"project-collab-be/internal/entity"
	"project-collab-be/internal/pkg/logger"
	"project-collab-be/internal/pkg/token"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/websocket/v2"
	"github.com/google/uuid"
)

const previewLimit = 50

// MessageStore persists conversation messages. Append stamps the message
// with the server clock; stored messages are immutable.
type MessageStore interface {
	Append(ctx context.Context, senderId, recipientId uuid.UUID, content string) (*entity.ChatMessage, error)
	ListConversation(ctx context.Context, a, b uuid.UUID) ([]*entity.ChatMessage, error)
}

// UnreadStore tracks per-user unread totals keyed by conversation.
type UnreadStore interface {
	Increment(ctx context.Context, conversationId string, userId uuid.UUID) (int, error)
	Reset(ctx context.Context, conversationId string, userId uuid.UUID) error
	Get(ctx context.Context, conversationId string, userId uuid.UUID) (int, error)
}

// Registry extends RoomRegistry with connection lifecycle. The Hub
// satisfies it in production; tests swap in a fake.
type Registry interface {
	RoomRegistry
	Register(c *Client)
	Unregister(c *Client)
}

// Gateway drives the chat protocol: handshake, room membership, message
// fanout and unread accounting. Events on one connection are handled
// sequentially by that connection's read loop, so a sender's messages are
// persisted and multicast in the order they arrive.
type Gateway struct {
	registry Registry
	verifier token.Verifier
	messages MessageStore
	counters UnreadStore
	logger   logger.ILogger
	validate *validator.Validate
}

func NewGateway(
	registry Registry,
	verifier token.Verifier,
	messages MessageStore,
	counters UnreadStore,
	log logger.ILogger,
) *Gateway {
	return &Gateway{
		registry: registry,
		verifier: verifier,
		messages: messages,
		counters: counters,
		logger:   log,
		validate: validator.New(),
	}
}

// HandleConnection owns the websocket from upgrade to close. The caller's
// goroutine runs the read loop.
func (g *Gateway) HandleConnection(conn *websocket.Conn) {
	client, err := g.handshake(conn)
	if err != nil {
		g.rejectConnection(conn, err)
		return
	}

	g.registry.Register(client)
	g.registry.Join(client, client.UserID.String())
	client.Emit(EventConnected, ConnectedPayload{UserId: client.UserID, Username: client.Username})

	g.logger.Info("ChatGateway", "Client connected", map[string]interface{}{
		"user_id":  client.UserID,
		"username": client.Username,
	})

	go client.writePump()
	g.readLoop(client)
}

// handshake authenticates the connection from its first frame. The token
// travels in the connect payload, never in the URL or headers.
func (g *Gateway) handshake(conn *websocket.Conn) (*Client, error) {
	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(handshakeWait)); err != nil {
		return nil, errors.New("connection unusable")
	}

	_, raw, err := conn.ReadMessage()
	if err != nil {
		return nil, errors.New("handshake not received")
	}

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Event != EventConnect {
		return nil, errors.New("expected connect event")
	}

	var payload ConnectPayload
	if err := json.Unmarshal(env.Data, &payload); err != nil {
		return nil, errors.New("malformed connect payload")
	}
	if err := g.validate.Struct(&payload); err != nil {
		return nil, errors.New("missing token")
	}

	identity, err := g.verifier.Verify(payload.Token)
	if err != nil {
		return nil, errors.New("invalid token")
	}

	return newClient(conn, identity.UserID, identity.Username), nil
}

func (g *Gateway) rejectConnection(conn *websocket.Conn, cause error) {
	frame, err := newEnvelope(EventError, ErrorPayload{Message: cause.Error()})
	if err == nil {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		conn.WriteMessage(websocket.TextMessage, frame)
	}
	conn.Close()
	g.logger.Warn("ChatGateway", "Connection rejected", map[string]interface{}{"reason": cause.Error()})
}

func (g *Gateway) readLoop(client *Client) {
	defer func() {
		g.registry.Unregister(client)
		client.conn.Close()
		g.logger.Info("ChatGateway", "Client disconnected", map[string]interface{}{"user_id": client.UserID})
	}()

	client.conn.SetReadLimit(maxMessageSize)
	client.conn.SetReadDeadline(time.Now().Add(pongWait))
	client.conn.SetPongHandler(func(string) error {
		client.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := client.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				g.logger.Warn("ChatGateway", "Read error", map[string]interface{}{
					"user_id": client.UserID,
					"error":   err.Error(),
				})
			}
			return
		}
		g.dispatch(client, raw)
	}
}

// dispatch routes one inbound frame. Failures are reported to the
// originating connection only; nothing here may take the loop down.
func (g *Gateway) dispatch(client *Client, raw []byte) {
	defer func() {
		if r := recover(); r != nil {
			g.logger.Error("ChatGateway", "Recovered handler panic", map[string]interface{}{
				"user_id": client.UserID,
				"panic":   fmt.Sprint(r),
			})
			client.Emit(EventError, ErrorPayload{Message: "internal error"})
		}
	}()

	var env Envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		client.Emit(EventError, ErrorPayload{Message: "malformed frame"})
		return
	}

	var err error
	switch env.Event {
	case EventJoinConversation:
		err = g.handleJoin(client, env.Data)
	case EventLeaveConversation:
		err = g.handleLeave(client, env.Data)
	case EventSendMessage:
		err = g.handleSend(client, env.Data)
	case EventGetUnreadCount:
		err = g.handleGetUnread(client, env.Data)
	default:
		err = fmt.Errorf("unknown event %q", env.Event)
	}

	if err != nil {
		client.Emit(EventError, ErrorPayload{Message: err.Error()})
	}
}

func (g *Gateway) conversationPayload(data json.RawMessage) (*ConversationPayload, error) {
	var payload ConversationPayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, errors.New("malformed payload")
	}
	if err := g.validate.Struct(&payload); err != nil {
		return nil, errors.New("recipientId is required")
	}
	return &payload, nil
}

// handleJoin opens the conversation for the caller: join the room, clear
// the caller's unread counter, report the (now zero) count back. Joining
// twice is harmless.
func (g *Gateway) handleJoin(client *Client, data json.RawMessage) error {
	payload, err := g.conversationPayload(data)
	if err != nil {
		return err
	}

	key := ConversationKey(client.UserID, payload.RecipientId)
	g.registry.Join(client, key)

	if err := g.counters.Reset(context.Background(), key, client.UserID); err != nil {
		g.logger.Error("ChatGateway", "Counter reset failed", map[string]interface{}{
			"conversation": key,
			"user_id":      client.UserID,
			"error":        err.Error(),
		})
		return errors.New("could not reset unread count")
	}

	client.Emit(EventUnreadCount, UnreadCountPayload{ConversationId: key, Count: 0})
	return nil
}

// handleLeave drops the caller from the room. No counter side effects;
// leaving a room never joined is a no-op.
func (g *Gateway) handleLeave(client *Client, data json.RawMessage) error {
	payload, err := g.conversationPayload(data)
	if err != nil {
		return err
	}
	g.registry.Leave(client, ConversationKey(client.UserID, payload.RecipientId))
	return nil
}

func (g *Gateway) handleSend(client *Client, data json.RawMessage) error {
	var payload SendMessagePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return errors.New("malformed payload")
	}
	if err := g.validate.Struct(&payload); err != nil {
		return errors.New("recipientId and content are required")
	}

	ctx := context.Background()

	// Persist first. A message that cannot be stored is never multicast.
	msg, err := g.messages.Append(ctx, client.UserID, payload.RecipientId, payload.Content)
	if err != nil {
		g.logger.Error("ChatGateway", "Message persist failed", map[string]interface{}{
			"sender_id": client.UserID,
			"error":     err.Error(),
		})
		return errors.New("could not store message")
	}

	key := ConversationKey(client.UserID, payload.RecipientId)
	wire := NewMessagePayload{
		Id:          msg.Id,
		SenderId:    msg.SenderId,
		RecipientId: msg.RecipientId,
		Content:     msg.Content,
		Timestamp:   msg.Timestamp,
	}
	g.registry.EmitTo(key, EventNewMessage, wire)

	if g.isPresent(key, payload.RecipientId) {
		return nil
	}

	// Recipient is not viewing the conversation: deliver to their inbox
	// and bump the unread counter.
	inbox := payload.RecipientId.String()
	g.registry.EmitTo(inbox, EventNewMessage, wire)

	count, err := g.counters.Increment(ctx, key, payload.RecipientId)
	if err != nil {
		g.logger.Error("ChatGateway", "Counter increment failed", map[string]interface{}{
			"conversation": key,
			"user_id":      payload.RecipientId,
			"error":        err.Error(),
		})
		return errors.New("could not update unread count")
	}

	g.registry.EmitTo(inbox, EventUnreadNotification, UnreadNotificationPayload{
		ConversationId: key,
		SenderId:       client.UserID,
		Count:          count,
		Preview:        preview(msg.Content),
	})
	return nil
}

func (g *Gateway) handleGetUnread(client *Client, data json.RawMessage) error {
	payload, err := g.conversationPayload(data)
	if err != nil {
		return err
	}

	key := ConversationKey(client.UserID, payload.RecipientId)
	count, err := g.counters.Get(context.Background(), key, client.UserID)
	if err != nil {
		return errors.New("could not read unread count")
	}

	client.Emit(EventUnreadCount, UnreadCountPayload{ConversationId: key, Count: count})
	return nil
}

// isPresent reports whether the recipient has a connection inside the
// conversation room. Any failure to determine presence counts as absent,
// so the recipient still gets notified.
func (g *Gateway) isPresent(room string, userId uuid.UUID) (present bool) {
	defer func() {
		if recover() != nil {
			present = false
		}
	}()
	for _, member := range g.registry.MembersOf(room) {
		if member != nil && member.UserID == userId {
			return true
		}
	}
	return false
}

func preview(content string) string {
	runes := []rune(content)
	if len(runes) <= previewLimit {
		return content
	}
	return string(runes[:previewLimit]) + "..."
}
