package notify

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
)

// chanConn hands each written frame to the test goroutine.
type chanConn struct {
	frames chan []byte
}

func newChanConn() *chanConn {
	return &chanConn{frames: make(chan []byte, 16)}
}

func (c *chanConn) WriteMessage(_ int, data []byte) error {
	c.frames <- data
	return nil
}

func (c *chanConn) SetWriteDeadline(time.Time) error { return nil }

func (c *chanConn) Close() error { return nil }

func (c *chanConn) next(t *testing.T) broker.Message {
	t.Helper()
	select {
	case data := <-c.frames:
		var msg broker.Message
		require.NoError(t, json.Unmarshal(data, &msg))
		return msg
	case <-time.After(time.Second):
		t.Fatal("no frame delivered")
		return broker.Message{}
	}
}

// subBroker feeds a scripted envelope stream into Subscribe.
type subBroker struct {
	envelopes chan broker.Envelope
}

func newSubBroker() *subBroker {
	return &subBroker{envelopes: make(chan broker.Envelope, 16)}
}

func (b *subBroker) Enqueue(context.Context, string, broker.Payload) (string, error) {
	return "", errors.New("not implemented")
}

func (b *subBroker) Dequeue(context.Context, string, time.Duration) (*broker.DequeuedJob, error) {
	return nil, errors.New("not implemented")
}

func (b *subBroker) SetStatus(context.Context, string, constants.JobStatus, any, string) error {
	return errors.New("not implemented")
}

func (b *subBroker) GetStatus(context.Context, string) (*broker.JobStatus, error) {
	return nil, errors.New("not implemented")
}

func (b *subBroker) Publish(context.Context, string, broker.Envelope) error {
	return errors.New("not implemented")
}

func (b *subBroker) Subscribe(context.Context, string) (<-chan broker.Envelope, func()) {
	return b.envelopes, func() {}
}

func TestRelayForwardsRoomEvents(t *testing.T) {
	sb := newSubBroker()
	hub := NewHub(HubConfig{}, nil)
	conn := newChanConn()
	hub.Join(conn, "room-1", "alice")

	relay := NewRelay(sb, hub, nil)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- relay.Run(ctx) }()

	sb.envelopes <- broker.Envelope{
		RoomID: "room-1",
		Message: broker.Message{
			Type: constants.EventProcessingStatus,
			Data: map[string]any{"status": "completed"},
		},
	}

	msg := conn.next(t)
	assert.Equal(t, constants.EventProcessingStatus, msg.Type)
	assert.Equal(t, "completed", msg.Data["status"])

	cancel()
	assert.ErrorIs(t, <-done, context.Canceled)
}

func TestRelayDropsEventsWithoutRoom(t *testing.T) {
	sb := newSubBroker()
	hub := NewHub(HubConfig{}, nil)
	conn := newChanConn()
	hub.Join(conn, "room-1", "alice")

	relay := NewRelay(sb, hub, nil)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	done := make(chan error, 1)
	go func() { done <- relay.Run(ctx) }()

	// The unroutable envelope is processed first; only the second one may
	// reach the connection.
	sb.envelopes <- broker.Envelope{Message: broker.Message{Type: constants.EventGradingComplete}}
	sb.envelopes <- broker.Envelope{
		RoomID:  "room-1",
		Message: broker.Message{Type: constants.EventFactCheckComplete},
	}

	msg := conn.next(t)
	assert.Equal(t, constants.EventFactCheckComplete, msg.Type)
	assert.Empty(t, conn.frames)

	cancel()
	<-done
}

func TestRelayStopsWhenChannelCloses(t *testing.T) {
	sb := newSubBroker()
	relay := NewRelay(sb, NewHub(HubConfig{}, nil), nil)

	close(sb.envelopes)
	assert.NoError(t, relay.Run(context.Background()))
}
