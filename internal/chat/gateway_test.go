package chat

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"project-collab-be/internal/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debug(string, string, map[string]interface{}) {}
func (nopLogger) Info(string, string, map[string]interface{})  {}
func (nopLogger) Warn(string, string, map[string]interface{})  {}
func (nopLogger) Error(string, string, map[string]interface{}) {}
func (nopLogger) Sync() error                                  { return nil }

type emitRecord struct {
	Room    string
	Event   string
	Payload interface{}
}

// fakeRegistry satisfies Registry with plain maps, no goroutines.
type fakeRegistry struct {
	rooms          map[string]map[*Client]struct{}
	emits          []emitRecord
	panicMembersOf bool
}

func newFakeRegistry() *fakeRegistry {
	return &fakeRegistry{rooms: make(map[string]map[*Client]struct{})}
}

func (f *fakeRegistry) Register(c *Client)   {}
func (f *fakeRegistry) Unregister(c *Client) {}

func (f *fakeRegistry) Join(c *Client, room string) {
	if f.rooms[room] == nil {
		f.rooms[room] = make(map[*Client]struct{})
	}
	f.rooms[room][c] = struct{}{}
}

func (f *fakeRegistry) Leave(c *Client, room string) {
	delete(f.rooms[room], c)
}

func (f *fakeRegistry) MembersOf(room string) []*Client {
	if f.panicMembersOf {
		panic("presence backend down")
	}
	var members []*Client
	for c := range f.rooms[room] {
		members = append(members, c)
	}
	return members
}

func (f *fakeRegistry) EmitTo(room string, event string, payload interface{}) {
	f.emits = append(f.emits, emitRecord{Room: room, Event: event, Payload: payload})
}

func (f *fakeRegistry) emitsTo(room string) []emitRecord {
	var out []emitRecord
	for _, e := range f.emits {
		if e.Room == room {
			out = append(out, e)
		}
	}
	return out
}

type fakeMessageStore struct {
	messages   []*entity.ChatMessage
	failAppend bool
}

func (s *fakeMessageStore) Append(_ context.Context, senderId, recipientId uuid.UUID, content string) (*entity.ChatMessage, error) {
	if s.failAppend {
		return nil, errors.New("db down")
	}
	msg := &entity.ChatMessage{
		Id:          uuid.New(),
		SenderId:    senderId,
		RecipientId: recipientId,
		Content:     content,
		Timestamp:   time.Now(),
	}
	s.messages = append(s.messages, msg)
	return msg, nil
}

func (s *fakeMessageStore) ListConversation(_ context.Context, a, b uuid.UUID) ([]*entity.ChatMessage, error) {
	var out []*entity.ChatMessage
	for _, m := range s.messages {
		if (m.SenderId == a && m.RecipientId == b) || (m.SenderId == b && m.RecipientId == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

type fakeUnreadStore struct {
	counts        map[string]int
	failIncrement bool
	failReset     bool
}

func newFakeUnreadStore() *fakeUnreadStore {
	return &fakeUnreadStore{counts: make(map[string]int)}
}

func (s *fakeUnreadStore) key(conversationId string, userId uuid.UUID) string {
	return conversationId + "|" + userId.String()
}

func (s *fakeUnreadStore) Increment(_ context.Context, conversationId string, userId uuid.UUID) (int, error) {
	if s.failIncrement {
		return 0, errors.New("db down")
	}
	k := s.key(conversationId, userId)
	s.counts[k]++
	return s.counts[k], nil
}

func (s *fakeUnreadStore) Reset(_ context.Context, conversationId string, userId uuid.UUID) error {
	if s.failReset {
		return errors.New("db down")
	}
	s.counts[s.key(conversationId, userId)] = 0
	return nil
}

func (s *fakeUnreadStore) Get(_ context.Context, conversationId string, userId uuid.UUID) (int, error) {
	return s.counts[s.key(conversationId, userId)], nil
}

type gatewayFixture struct {
	gateway  *Gateway
	registry *fakeRegistry
	messages *fakeMessageStore
	counters *fakeUnreadStore
}

func newGatewayFixture() *gatewayFixture {
	registry := newFakeRegistry()
	messages := &fakeMessageStore{}
	counters := newFakeUnreadStore()
	return &gatewayFixture{
		gateway:  NewGateway(registry, nil, messages, counters, nopLogger{}),
		registry: registry,
		messages: messages,
		counters: counters,
	}
}

func testClient(id uuid.UUID) *Client {
	return &Client{
		send:     make(chan []byte, 32),
		UserID:   id,
		Username: "tester",
	}
}

func frame(t *testing.T, event string, payload interface{}) []byte {
	t.Helper()
	raw, err := newEnvelope(event, payload)
	require.NoError(t, err)
	return raw
}

// drainClient decodes everything queued on the client's send buffer.
func drainClient(t *testing.T, c *Client) []Envelope {
	t.Helper()
	var out []Envelope
	for {
		select {
		case raw := <-c.send:
			var env Envelope
			require.NoError(t, json.Unmarshal(raw, &env))
			out = append(out, env)
		default:
			return out
		}
	}
}

func decodePayload(t *testing.T, env Envelope, dst interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(env.Data, dst))
}

func TestJoinResetsCounterAndReportsToCaller(t *testing.T) {
	fx := newGatewayFixture()
	alice, bob := uuid.New(), uuid.New()
	client := testClient(alice)
	key := ConversationKey(alice, bob)

	fx.counters.counts[fx.counters.key(key, alice)] = 7

	fx.gateway.dispatch(client, frame(t, EventJoinConversation, ConversationPayload{RecipientId: bob}))

	assert.Contains(t, fx.registry.rooms[key], client)
	assert.Equal(t, 0, fx.counters.counts[fx.counters.key(key, alice)])

	events := drainClient(t, client)
	require.Len(t, events, 1)
	assert.Equal(t, EventUnreadCount, events[0].Event)

	var payload UnreadCountPayload
	decodePayload(t, events[0], &payload)
	assert.Equal(t, key, payload.ConversationId)
	assert.Equal(t, 0, payload.Count)

	// Nothing is broadcast to the room on join.
	assert.Empty(t, fx.registry.emits)
}

func TestJoinIsIdempotent(t *testing.T) {
	fx := newGatewayFixture()
	alice, bob := uuid.New(), uuid.New()
	client := testClient(alice)

	join := frame(t, EventJoinConversation, ConversationPayload{RecipientId: bob})
	fx.gateway.dispatch(client, join)
	fx.gateway.dispatch(client, join)

	key := ConversationKey(alice, bob)
	assert.Len(t, fx.registry.rooms[key], 1)

	for _, env := range drainClient(t, client) {
		assert.NotEqual(t, EventError, env.Event)
	}
}

func TestLeaveWithoutJoinIsNoop(t *testing.T) {
	fx := newGatewayFixture()
	alice, bob := uuid.New(), uuid.New()
	client := testClient(alice)

	fx.gateway.dispatch(client, frame(t, EventLeaveConversation, ConversationPayload{RecipientId: bob}))

	for _, env := range drainClient(t, client) {
		assert.NotEqual(t, EventError, env.Event)
	}
	assert.Empty(t, fx.counters.counts)
}

func TestSendToPresentRecipientSkipsUnreadPath(t *testing.T) {
	fx := newGatewayFixture()
	alice, bob := uuid.New(), uuid.New()
	sender, recipient := testClient(alice), testClient(bob)
	key := ConversationKey(alice, bob)

	fx.registry.Join(sender, key)
	fx.registry.Join(recipient, key)

	fx.gateway.dispatch(sender, frame(t, EventSendMessage, SendMessagePayload{RecipientId: bob, Content: "hi"}))

	require.Len(t, fx.messages.messages, 1)

	roomEmits := fx.registry.emitsTo(key)
	require.Len(t, roomEmits, 1)
	assert.Equal(t, EventNewMessage, roomEmits[0].Event)

	// Recipient was present: no inbox copy, no counter bump.
	assert.Empty(t, fx.registry.emitsTo(bob.String()))
	assert.Empty(t, fx.counters.counts)
}

func TestSendPersistsBeforeMulticast(t *testing.T) {
	fx := newGatewayFixture()
	fx.messages.failAppend = true
	alice, bob := uuid.New(), uuid.New()
	sender := testClient(alice)

	fx.gateway.dispatch(sender, frame(t, EventSendMessage, SendMessagePayload{RecipientId: bob, Content: "hi"}))

	// Persist failed, so nothing may reach any room.
	assert.Empty(t, fx.registry.emits)
	assert.Empty(t, fx.counters.counts)

	events := drainClient(t, sender)
	require.Len(t, events, 1)
	assert.Equal(t, EventError, events[0].Event)
}

func TestSendToAbsentRecipientNotifiesInbox(t *testing.T) {
	fx := newGatewayFixture()
	alice, bob := uuid.New(), uuid.New()
	sender := testClient(alice)
	key := ConversationKey(alice, bob)
	fx.registry.Join(sender, key)

	content := strings.Repeat("a", 60)
	fx.gateway.dispatch(sender, frame(t, EventSendMessage, SendMessagePayload{RecipientId: bob, Content: content}))

	inbox := fx.registry.emitsTo(bob.String())
	require.Len(t, inbox, 2)
	assert.Equal(t, EventNewMessage, inbox[0].Event)
	assert.Equal(t, EventUnreadNotification, inbox[1].Event)

	notif, ok := inbox[1].Payload.(UnreadNotificationPayload)
	require.True(t, ok)
	assert.Equal(t, key, notif.ConversationId)
	assert.Equal(t, alice, notif.SenderId)
	assert.Equal(t, 1, notif.Count)
	assert.Equal(t, strings.Repeat("a", 50)+"...", notif.Preview)

	// Counter belongs to the recipient, not the sender.
	assert.Equal(t, 1, fx.counters.counts[fx.counters.key(key, bob)])
	assert.Equal(t, 0, fx.counters.counts[fx.counters.key(key, alice)])
}

func TestSendCountsAccumulate(t *testing.T) {
	fx := newGatewayFixture()
	alice, bob := uuid.New(), uuid.New()
	sender := testClient(alice)
	key := ConversationKey(alice, bob)

	for i := 0; i < 3; i++ {
		fx.gateway.dispatch(sender, frame(t, EventSendMessage, SendMessagePayload{RecipientId: bob, Content: "ping"}))
	}

	assert.Equal(t, 3, fx.counters.counts[fx.counters.key(key, bob)])

	inbox := fx.registry.emitsTo(bob.String())
	last, ok := inbox[len(inbox)-1].Payload.(UnreadNotificationPayload)
	require.True(t, ok)
	assert.Equal(t, 3, last.Count)
}

func TestPresenceFailureCountsAsAbsent(t *testing.T) {
	fx := newGatewayFixture()
	fx.registry.panicMembersOf = true
	alice, bob := uuid.New(), uuid.New()
	sender := testClient(alice)
	key := ConversationKey(alice, bob)

	fx.gateway.dispatch(sender, frame(t, EventSendMessage, SendMessagePayload{RecipientId: bob, Content: "hi"}))

	// Message persisted and the recipient still got notified.
	require.Len(t, fx.messages.messages, 1)
	assert.Equal(t, 1, fx.counters.counts[fx.counters.key(key, bob)])
	assert.NotEmpty(t, fx.registry.emitsTo(bob.String()))
}

func TestErrorsGoToOriginatorOnly(t *testing.T) {
	fx := newGatewayFixture()
	client := testClient(uuid.New())

	fx.gateway.dispatch(client, []byte("{not json"))
	fx.gateway.dispatch(client, frame(t, "bogusEvent", nil))
	fx.gateway.dispatch(client, frame(t, EventSendMessage, map[string]string{"content": ""}))

	events := drainClient(t, client)
	require.Len(t, events, 3)
	for _, env := range events {
		assert.Equal(t, EventError, env.Event)
	}
	assert.Empty(t, fx.registry.emits)
}

func TestGetUnreadCountMissingRowIsZero(t *testing.T) {
	fx := newGatewayFixture()
	alice, bob := uuid.New(), uuid.New()
	client := testClient(alice)

	fx.gateway.dispatch(client, frame(t, EventGetUnreadCount, ConversationPayload{RecipientId: bob}))

	events := drainClient(t, client)
	require.Len(t, events, 1)
	assert.Equal(t, EventUnreadCount, events[0].Event)

	var payload UnreadCountPayload
	decodePayload(t, events[0], &payload)
	assert.Equal(t, 0, payload.Count)

	// The query itself is read only.
	assert.Empty(t, fx.counters.counts)
}

func TestCounterIncrementFailureReportsToSender(t *testing.T) {
	fx := newGatewayFixture()
	fx.counters.failIncrement = true
	alice, bob := uuid.New(), uuid.New()
	sender := testClient(alice)

	fx.gateway.dispatch(sender, frame(t, EventSendMessage, SendMessagePayload{RecipientId: bob, Content: "hi"}))

	// Message still persisted and multicast before the counter failed.
	require.Len(t, fx.messages.messages, 1)

	var sawError bool
	for _, env := range drainClient(t, sender) {
		if env.Event == EventError {
			sawError = true
		}
	}
	assert.True(t, sawError)

	// No unreadNotification without a successful increment.
	for _, e := range fx.registry.emitsTo(bob.String()) {
		assert.NotEqual(t, EventUnreadNotification, e.Event)
	}
}
