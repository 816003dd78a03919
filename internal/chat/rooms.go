package chat

import (
	"context"
	"encoding/json"
	"sync"

	"project-collab-be/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const clusterChannel = "chat_events"

// RoomRegistry is the capability the gateway uses for room membership and
// fanout. It is always injected, never reached as a global, so tests can
// substitute a fake.
type RoomRegistry interface {
	Join(c *Client, room string)
	Leave(c *Client, room string)
	MembersOf(room string) []*Client
	EmitTo(room string, event string, payload interface{})
}

// Hub is the production RoomRegistry. Membership lives behind a RWMutex;
// connection lifecycle flows through the register and unregister channels.
// With Redis configured, EmitTo also fans out to rooms held by other
// instances.
type Hub struct {
	mu       sync.RWMutex
	rooms    map[string]map[*Client]struct{}
	byClient map[*Client]map[string]struct{}

	register   chan *Client
	unregister chan *Client

	rdb        *redis.Client
	instanceId string

	logger logger.ILogger
}

func NewHub(rdb *redis.Client, log logger.ILogger) *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]struct{}),
		byClient:   make(map[*Client]map[string]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		rdb:        rdb,
		instanceId: uuid.NewString(),
		logger:     log,
	}
}

func (h *Hub) Run() {
	if h.rdb != nil {
		go h.subscribeToRedis()
	}

	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			if _, ok := h.byClient[client]; !ok {
				h.byClient[client] = make(map[string]struct{})
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client registered", map[string]interface{}{"user_id": client.UserID})

		case client := <-h.unregister:
			h.mu.Lock()
			if rooms, ok := h.byClient[client]; ok {
				for room := range rooms {
					h.removeLocked(client, room)
				}
				delete(h.byClient, client)
				close(client.send)
			}
			h.mu.Unlock()
			h.logger.Info("Hub", "Client unregistered", map[string]interface{}{"user_id": client.UserID})
		}
	}
}

func (h *Hub) Register(c *Client)   { h.register <- c }
func (h *Hub) Unregister(c *Client) { h.unregister <- c }

func (h *Hub) Join(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	// Join may run before the register channel is drained; create the
	// tracking entry either way so membership is never dropped.
	if _, ok := h.byClient[c]; !ok {
		h.byClient[c] = make(map[string]struct{})
	}
	members, ok := h.rooms[room]
	if !ok {
		members = make(map[*Client]struct{})
		h.rooms[room] = members
	}
	members[c] = struct{}{}
	h.byClient[c][room] = struct{}{}
}

func (h *Hub) Leave(c *Client, room string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c, room)
	if rooms, ok := h.byClient[c]; ok {
		delete(rooms, room)
	}
}

func (h *Hub) removeLocked(c *Client, room string) {
	if members, ok := h.rooms[room]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
}

func (h *Hub) MembersOf(room string) []*Client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	members := h.rooms[room]
	result := make([]*Client, 0, len(members))
	for c := range members {
		result = append(result, c)
	}
	return result
}

// EmitTo delivers an event to every local member of the room and, when a
// Redis bridge is configured, relays it to other instances.
func (h *Hub) EmitTo(room string, event string, payload interface{}) {
	frame, err := newEnvelope(event, payload)
	if err != nil {
		h.logger.Error("Hub", "Failed to encode event", map[string]interface{}{"event": event, "error": err.Error()})
		return
	}

	h.deliverLocal(room, frame)

	if h.rdb != nil {
		relay, _ := json.Marshal(map[string]interface{}{
			"origin": h.instanceId,
			"room":   room,
			"frame":  json.RawMessage(frame),
		})
		if err := h.rdb.Publish(context.Background(), clusterChannel, relay).Err(); err != nil {
			h.logger.Warn("Hub", "Redis relay failed", map[string]interface{}{"room": room, "error": err.Error()})
		}
	}
}

func (h *Hub) deliverLocal(room string, frame []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.rooms[room] {
		select {
		case c.send <- frame:
		default:
			h.logger.Warn("Hub", "Send buffer full, dropping frame", map[string]interface{}{"user_id": c.UserID})
		}
	}
}

// subscribeToRedis replays frames published by other instances into local
// rooms. Frames tagged with our own instance id are skipped so local
// members never see duplicates.
func (h *Hub) subscribeToRedis() {
	ctx := context.Background()
	pubsub := h.rdb.Subscribe(ctx, clusterChannel)
	defer pubsub.Close()

	for msg := range pubsub.Channel() {
		var relay struct {
			Origin string          `json:"origin"`
			Room   string          `json:"room"`
			Frame  json.RawMessage `json:"frame"`
		}
		if err := json.Unmarshal([]byte(msg.Payload), &relay); err != nil {
			h.logger.Warn("Hub", "Malformed cluster frame", map[string]interface{}{"error": err.Error()})
			continue
		}
		if relay.Origin == h.instanceId {
			continue
		}
		h.deliverLocal(relay.Room, relay.Frame)
	}
}
