// Package hub fans realtime chat events out to connected websocket clients.
// Each client sits in at most one room at a time; message events are relayed
// to every room member including the sender, typing indicators to everyone
// but the sender.
package hub

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/pingr-im/pingr-go/internal/model"
)

type outbound struct {
	roomID  string
	exclude *client
	event   model.Event
}

type Hub struct {
	logger logger_lib.LoggerInterface

	clients map[*client]struct{}
	rooms   map[string]map[*client]struct{}

	register   chan *client
	unregister chan *client
	broadcast  chan outbound
	done       chan struct{}

	mu sync.RWMutex
}

func New(logger logger_lib.LoggerInterface) *Hub {
	return &Hub{
		logger:     logger,
		clients:    make(map[*client]struct{}),
		rooms:      make(map[string]map[*client]struct{}),
		register:   make(chan *client),
		unregister: make(chan *client),
		broadcast:  make(chan outbound, 256),
		done:       make(chan struct{}),
	}
}

// Run drives the hub until ctx is cancelled, then closes every client.
func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			h.closeAllClients()
			close(h.done)
			return
		case c := <-h.register:
			h.handleRegister(c)
		case c := <-h.unregister:
			h.handleUnregister(c)
		case msg := <-h.broadcast:
			h.handleBroadcast(msg)
		}
	}
}

// Wait blocks until Run has finished shutting down.
func (h *Hub) Wait() {
	<-h.done
}

func (h *Hub) handleRegister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[c] = struct{}{}
	h.logger.Info(fmt.Sprintf("client connected: user=%s", c.userID))
}

func (h *Hub) handleUnregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[c]; !ok {
		return
	}

	h.leaveRoomLocked(c)
	delete(h.clients, c)
	close(c.send)
	h.logger.Info(fmt.Sprintf("client disconnected: user=%s", c.userID))
}

func (h *Hub) handleBroadcast(msg outbound) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	members, ok := h.rooms[msg.roomID]
	if !ok {
		return
	}

	payload, err := json.Marshal(msg.event)
	if err != nil {
		h.logger.Error(fmt.Sprintf("failed to marshal event: %v", err))
		return
	}

	for member := range members {
		if member == msg.exclude {
			continue
		}
		select {
		case member.send <- payload:
		default:
			// Slow consumer; drop the event rather than stall the room.
			h.logger.Warn(fmt.Sprintf("send buffer full, dropping event for user=%s", member.userID))
		}
	}
}

func (h *Hub) joinRoom(c *client, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.roomID == roomID {
		return
	}

	h.leaveRoomLocked(c)

	if h.rooms[roomID] == nil {
		h.rooms[roomID] = make(map[*client]struct{})
	}
	h.rooms[roomID][c] = struct{}{}
	c.roomID = roomID
	h.logger.Info(fmt.Sprintf("user=%s joined room=%s", c.userID, roomID))
}

func (h *Hub) leaveRoom(c *client, roomID string) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c.roomID != roomID {
		return
	}
	h.leaveRoomLocked(c)
}

func (h *Hub) leaveRoomLocked(c *client) {
	if c.roomID == "" {
		return
	}

	if members, ok := h.rooms[c.roomID]; ok {
		delete(members, c)
		if len(members) == 0 {
			delete(h.rooms, c.roomID)
		}
	}
	c.roomID = ""
}

func (h *Hub) closeAllClients() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for c := range h.clients {
		close(c.send)
		_ = c.conn.Close()
		delete(h.clients, c)
	}
	h.rooms = make(map[string]map[*client]struct{})
}

// dispatch routes an event received from c. Room events update membership;
// everything else is relayed to the client's current room.
func (h *Hub) dispatch(c *client, event model.Event) {
	switch event.Event {
	case model.EventJoinRoom:
		h.joinRoom(c, event.Data)
	case model.EventLeaveRoom:
		h.leaveRoom(c, event.Data)
	case model.EventMessage:
		var msg model.Message
		if err := json.Unmarshal([]byte(event.Data), &msg); err != nil {
			h.logger.Warn(fmt.Sprintf("dropping malformed message event from user=%s: %v", c.userID, err))
			return
		}
		h.broadcast <- outbound{roomID: msg.ChatID, event: event}
	case model.EventTyping, model.EventStopTyping:
		h.broadcast <- outbound{roomID: event.Data, exclude: c, event: event}
	default:
		h.logger.Warn(fmt.Sprintf("unknown event %q from user=%s", event.Event, c.userID))
	}
}
