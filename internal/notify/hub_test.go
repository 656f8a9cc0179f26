package notify

import (
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
)

// fakeConn is deliberately not self-synchronized. Like a real websocket
// connection it tolerates only one writer at a time, so the race detector
// flags any broadcast path that skips the hub's per-connection lock.
type fakeConn struct {
	messages [][]byte
	writeErr error
	closed   bool
}

func (c *fakeConn) WriteMessage(_ int, data []byte) error {
	if c.writeErr != nil {
		return c.writeErr
	}
	c.messages = append(c.messages, data)
	return nil
}

func (c *fakeConn) SetWriteDeadline(time.Time) error { return nil }

func (c *fakeConn) Close() error {
	c.closed = true
	return nil
}

func (c *fakeConn) lastMessage(t *testing.T) broker.Message {
	t.Helper()
	require.NotEmpty(t, c.messages)
	var msg broker.Message
	require.NoError(t, json.Unmarshal(c.messages[len(c.messages)-1], &msg))
	return msg
}

func TestJoinAnnouncesToOthersOnly(t *testing.T) {
	hub := NewHub(HubConfig{}, nil)
	first := &fakeConn{}
	second := &fakeConn{}

	hub.Join(first, "room-1", "alice")
	hub.Join(second, "room-1", "bob")

	msg := first.lastMessage(t)
	assert.Equal(t, constants.EventUserJoined, msg.Type)
	assert.Equal(t, "bob", msg.Data["user_id"])
	assert.Empty(t, second.messages)
}

func TestBroadcastReachesRoomMembers(t *testing.T) {
	hub := NewHub(HubConfig{}, nil)
	inRoom := &fakeConn{}
	otherRoom := &fakeConn{}
	hub.Join(inRoom, "room-1", "alice")
	hub.Join(otherRoom, "room-2", "carol")

	hub.Broadcast("room-1", broker.Message{
		Type: constants.EventProcessingStatus,
		Data: map[string]any{"status": "completed"},
	}, nil)

	msg := inRoom.lastMessage(t)
	assert.Equal(t, constants.EventProcessingStatus, msg.Type)
	assert.Empty(t, otherRoom.messages)
}

func TestBroadcastExcludes(t *testing.T) {
	hub := NewHub(HubConfig{}, nil)
	sender := &fakeConn{}
	receiver := &fakeConn{}
	hub.Join(sender, "room-1", "alice")
	hub.Join(receiver, "room-1", "bob")
	sender.messages = nil
	receiver.messages = nil

	hub.Broadcast("room-1", broker.Message{Type: "note"}, sender)

	assert.Empty(t, sender.messages)
	assert.Len(t, receiver.messages, 1)
}

func TestConcurrentBroadcastsSerializePerConnection(t *testing.T) {
	hub := NewHub(HubConfig{}, nil)
	first := &fakeConn{}
	second := &fakeConn{}
	hub.Join(first, "room-1", "alice")
	hub.Join(second, "room-1", "bob")
	first.messages = nil
	second.messages = nil

	const senders = 4
	const perSender = 25
	var wg sync.WaitGroup
	for i := 0; i < senders; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perSender; j++ {
				hub.Broadcast("room-1", broker.Message{Type: "note"}, nil)
			}
		}()
	}
	wg.Wait()

	assert.Len(t, first.messages, senders*perSender)
	assert.Len(t, second.messages, senders*perSender)
}

func TestBroadcastDropsDeadConnections(t *testing.T) {
	hub := NewHub(HubConfig{}, nil)
	dead := &fakeConn{writeErr: errors.New("broken pipe")}
	alive := &fakeConn{}
	hub.Join(dead, "room-1", "alice")
	hub.Join(alive, "room-1", "bob")

	hub.Broadcast("room-1", broker.Message{Type: "note"}, nil)

	assert.True(t, dead.closed)
	assert.Equal(t, []string{"bob"}, hub.ActiveUsers("room-1"))

	// The departure is announced to the survivors.
	msg := alive.lastMessage(t)
	assert.Equal(t, constants.EventUserLeft, msg.Type)
	assert.Equal(t, "alice", msg.Data["user_id"])
}

func TestLeavePrunesEmptyRoom(t *testing.T) {
	hub := NewHub(HubConfig{}, nil)
	conn := &fakeConn{}
	hub.Join(conn, "room-1", "alice")
	require.Equal(t, 1, hub.RoomCount())

	hub.Leave(conn)

	assert.Equal(t, 0, hub.RoomCount())
	assert.Empty(t, hub.ActiveUsers("room-1"))
}

func TestLeaveUnknownConnIsNoop(t *testing.T) {
	hub := NewHub(HubConfig{}, nil)
	hub.Leave(&fakeConn{})
	assert.Equal(t, 0, hub.RoomCount())
}
