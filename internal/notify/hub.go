package notify

import (
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/notesos/ingest/constants"
	"github.com/notesos/ingest/internal/broker"
)

// Conn is the slice of a websocket connection the hub needs. Satisfied by
// *websocket.Conn.
type Conn interface {
	WriteMessage(messageType int, data []byte) error
	SetWriteDeadline(t time.Time) error
	Close() error
}

// client carries membership plus the per-connection write lock. gorilla
// connections allow only one concurrent writer, so every write to a
// connection goes through its client's mutex.
type client struct {
	roomID  string
	userID  string
	writeMu sync.Mutex
}

// HubConfig tunes the fan-out behavior.
type HubConfig struct {
	WriteTimeout time.Duration
}

// Hub tracks which connections belong to which room and fans events out to
// them. All methods are safe for concurrent use.
type Hub struct {
	mu           sync.RWMutex
	rooms        map[string]map[Conn]*client
	members      map[Conn]*client
	writeTimeout time.Duration
	logger       *slog.Logger
}

func NewHub(cfg HubConfig, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = 10 * time.Second
	}
	return &Hub{
		rooms:        make(map[string]map[Conn]*client),
		members:      make(map[Conn]*client),
		writeTimeout: cfg.WriteTimeout,
		logger:       logger,
	}
}

// Join registers the connection in a room and announces the arrival to the
// existing members. The joining connection does not receive its own
// announcement.
func (h *Hub) Join(conn Conn, roomID, userID string) {
	cl := &client{roomID: roomID, userID: userID}
	h.mu.Lock()
	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[Conn]*client)
	}
	h.rooms[roomID][conn] = cl
	h.members[conn] = cl
	h.mu.Unlock()

	h.logger.Info("connection joined", "room_id", roomID, "user_id", userID)
	h.Broadcast(roomID, broker.Message{
		Type: constants.EventUserJoined,
		Data: map[string]any{"user_id": userID},
	}, conn)
}

// Leave removes the connection and announces the departure. Empty rooms are
// pruned. Calling Leave for an unknown connection is a no-op.
func (h *Hub) Leave(conn Conn) {
	h.mu.Lock()
	cl, ok := h.members[conn]
	if !ok {
		h.mu.Unlock()
		return
	}
	delete(h.members, conn)
	if conns := h.rooms[cl.roomID]; conns != nil {
		delete(conns, conn)
		if len(conns) == 0 {
			delete(h.rooms, cl.roomID)
		}
	}
	h.mu.Unlock()

	h.logger.Info("connection left", "room_id", cl.roomID, "user_id", cl.userID)
	h.Broadcast(cl.roomID, broker.Message{
		Type: constants.EventUserLeft,
		Data: map[string]any{"user_id": cl.userID},
	}, nil)
}

// Broadcast sends one message to every connection in the room except the
// excluded one. The payload is marshalled once. Connections that fail to
// write are dropped from the hub so one dead socket cannot wedge the room.
func (h *Hub) Broadcast(roomID string, msg broker.Message, exclude Conn) {
	payload, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("failed to marshal broadcast", "room_id", roomID, "error", err)
		return
	}

	h.mu.RLock()
	targets := make(map[Conn]*client, len(h.rooms[roomID]))
	for conn, cl := range h.rooms[roomID] {
		if conn != exclude {
			targets[conn] = cl
		}
	}
	h.mu.RUnlock()

	var dead []Conn
	for conn, cl := range targets {
		if err := h.write(conn, cl, payload); err != nil {
			h.logger.Warn("dropping dead connection", "room_id", roomID, "error", err)
			dead = append(dead, conn)
		}
	}
	for _, conn := range dead {
		h.Leave(conn)
		_ = conn.Close()
	}
}

// write holds the connection's write lock across the deadline update and
// the frame write. Broadcasts from the relay goroutine and join/leave
// announcements from handler goroutines never interleave on one socket.
func (h *Hub) write(conn Conn, cl *client, payload []byte) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	_ = conn.SetWriteDeadline(time.Now().Add(h.writeTimeout))
	return conn.WriteMessage(websocket.TextMessage, payload)
}

// ActiveUsers lists the user ids currently connected to a room.
func (h *Hub) ActiveUsers(roomID string) []string {
	h.mu.RLock()
	defer h.mu.RUnlock()

	users := make([]string, 0, len(h.rooms[roomID]))
	for _, cl := range h.rooms[roomID] {
		users = append(users, cl.userID)
	}
	return users
}

// RoomCount reports how many rooms have at least one connection.
func (h *Hub) RoomCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms)
}
