package chat

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestHub() *Hub {
	hub := NewHub(nil, nopLogger{})
	go hub.Run()
	return hub
}

func TestHubJoinLeaveMembership(t *testing.T) {
	hub := newTestHub()
	client := testClient(uuid.New())
	hub.Register(client)

	hub.Join(client, "room-a")
	members := hub.MembersOf("room-a")
	require.Len(t, members, 1)
	assert.Same(t, client, members[0])

	hub.Leave(client, "room-a")
	assert.Empty(t, hub.MembersOf("room-a"))

	// Leaving again is harmless.
	hub.Leave(client, "room-a")
}

func TestHubEmitToDeliversToRoomMembersOnly(t *testing.T) {
	hub := newTestHub()
	inside := testClient(uuid.New())
	outside := testClient(uuid.New())
	hub.Register(inside)
	hub.Register(outside)
	hub.Join(inside, "room-b")

	hub.EmitTo("room-b", EventNewMessage, NewMessagePayload{Content: "hello"})

	select {
	case raw := <-inside.send:
		var env Envelope
		require.NoError(t, json.Unmarshal(raw, &env))
		assert.Equal(t, EventNewMessage, env.Event)
	case <-time.After(time.Second):
		t.Fatal("room member did not receive the frame")
	}

	select {
	case <-outside.send:
		t.Fatal("non-member received the frame")
	default:
	}
}

func TestHubUnregisterReleasesAllRooms(t *testing.T) {
	hub := newTestHub()
	client := testClient(uuid.New())
	hub.Register(client)
	hub.Join(client, "room-x")
	hub.Join(client, "room-y")

	hub.Unregister(client)

	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if len(hub.MembersOf("room-x")) == 0 && len(hub.MembersOf("room-y")) == 0 {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	assert.Empty(t, hub.MembersOf("room-x"))
	assert.Empty(t, hub.MembersOf("room-y"))

	// The send channel is closed once unregistered.
	select {
	case _, ok := <-client.send:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("send channel not closed")
	}
}

func TestHubJoinBeforeRegisterIsKept(t *testing.T) {
	hub := newTestHub()
	client := testClient(uuid.New())

	hub.Join(client, "room-early")
	hub.Register(client)

	assert.Len(t, hub.MembersOf("room-early"), 1)
}
