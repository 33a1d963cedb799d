// Package socket maintains the single persistent realtime connection to
// the chat backend and dispatches inbound events by name.
package socket

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/pingr-im/pingr-go/internal/config"
	"github.com/pingr-im/pingr-go/internal/model"
)

const (
	initialBackoff = time.Second
	maxBackoff     = 30 * time.Second
	pingInterval   = 30 * time.Second
	writeTimeout   = 10 * time.Second
)

// Socket owns one websocket connection for the lifetime of the process.
// Transport disconnects trigger automatic reconnection with capped
// exponential backoff; outbound sends while not connected are dropped.
type Socket struct {
	endpoint string
	dialer   *websocket.Dialer
	logger   logger_lib.LoggerInterface

	// header carries the bearer token presented on every dial; guarded by
	// mu because SetToken may race a reconnect.
	header http.Header

	mu      sync.RWMutex
	conn    *websocket.Conn
	state   model.ConnState
	started bool

	// writeMu serializes data frames on the shared connection.
	writeMu sync.Mutex

	// handlers holds at most one handler per event name; On replaces any
	// previous registration to avoid duplicate delivery.
	handlersMu sync.RWMutex
	handlers   map[string]func(data string)

	listenersMu sync.Mutex
	listeners   []func(model.ConnState)

	done     chan struct{}
	doneOnce sync.Once
}

func New(cfg *config.Config, logger logger_lib.LoggerInterface) *Socket {
	s := &Socket{
		endpoint: cfg.Socket.URL,
		dialer: &websocket.Dialer{
			HandshakeTimeout: 10 * time.Second,
		},
		logger:   logger,
		header:   http.Header{},
		handlers: make(map[string]func(data string)),
		done:     make(chan struct{}),
	}
	if cfg.Auth.Token != "" {
		s.header.Set("Authorization", "Bearer "+cfg.Auth.Token)
	}

	return s
}

// SetToken replaces the bearer token used on subsequent dials.
func (s *Socket) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.header = http.Header{}
	if token != "" {
		s.header.Set("Authorization", "Bearer "+token)
	}
}

// Connect starts the connection loop. Calling it again while the loop is
// running is a no-op. The handshake happens asynchronously; observe
// progress via State and OnStateChange.
func (s *Socket) Connect(ctx context.Context) {
	s.mu.Lock()
	if s.started {
		s.mu.Unlock()
		return
	}
	s.started = true
	s.mu.Unlock()

	go s.run(ctx)
}

// Close tears the connection down for good; no reconnection follows.
func (s *Socket) Close() {
	s.doneOnce.Do(func() {
		close(s.done)
	})

	s.mu.Lock()
	conn := s.conn
	s.mu.Unlock()
	if conn != nil {
		_ = conn.Close()
	}
}

func (s *Socket) State() model.ConnState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// OnStateChange registers a listener invoked on every state transition.
// No ordering guarantee between listeners.
func (s *Socket) OnStateChange(listener func(model.ConnState)) {
	s.listenersMu.Lock()
	s.listeners = append(s.listeners, listener)
	s.listenersMu.Unlock()
}

// Send publishes one event, fire and forget. When the connection is not
// established the event is logged and dropped; callers that need delivery
// confirmation must go through the REST API.
func (s *Socket) Send(event, data string) {
	s.mu.RLock()
	conn := s.conn
	state := s.state
	s.mu.RUnlock()

	if conn == nil || state != model.StateConnected {
		s.logger.Warn(fmt.Sprintf("dropping %q event: connection is %s", event, state))
		return
	}

	payload, err := json.Marshal(model.Event{Event: event, Data: data})
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to marshal %q event: %v", event, err))
		return
	}

	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	_ = conn.SetWriteDeadline(time.Now().Add(writeTimeout))
	if err := conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		s.logger.Warn(fmt.Sprintf("failed to send %q event: %v", event, err))
	}
}

// On subscribes a handler for the given event name, replacing any prior
// handler for that name.
func (s *Socket) On(event string, handler func(data string)) {
	s.handlersMu.Lock()
	s.handlers[event] = handler
	s.handlersMu.Unlock()
}

// Off removes the handler for the given event name.
func (s *Socket) Off(event string) {
	s.handlersMu.Lock()
	delete(s.handlers, event)
	s.handlersMu.Unlock()
}

func (s *Socket) run(ctx context.Context) {
	backoff := initialBackoff

	for {
		if s.closed(ctx) {
			s.setState(model.StateDisconnected)
			return
		}

		s.setState(model.StateConnecting)

		s.mu.RLock()
		header := s.header
		s.mu.RUnlock()

		conn, resp, err := s.dialer.DialContext(ctx, s.endpoint, header)
		if err != nil {
			if resp != nil {
				_ = resp.Body.Close()
			}
			s.logger.Warn(fmt.Sprintf("dial %s failed: %v, retrying in %s", s.endpoint, err, backoff))

			select {
			case <-ctx.Done():
				s.setState(model.StateDisconnected)
				return
			case <-s.done:
				s.setState(model.StateDisconnected)
				return
			case <-time.After(backoff):
			}

			backoff *= 2
			if backoff > maxBackoff {
				backoff = maxBackoff
			}
			continue
		}
		backoff = initialBackoff

		s.mu.Lock()
		s.conn = conn
		s.mu.Unlock()
		s.setState(model.StateConnected)

		stopPing := make(chan struct{})
		go s.pingLoop(conn, stopPing)

		s.readLoop(conn)
		close(stopPing)

		s.mu.Lock()
		s.conn = nil
		s.mu.Unlock()
		s.setState(model.StateDisconnected)
	}
}

func (s *Socket) closed(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	case <-s.done:
		return true
	default:
		return false
	}
}

// readLoop blocks until the connection drops. Malformed frames are logged
// and skipped, never fatal to the session.
func (s *Socket) readLoop(conn *websocket.Conn) {
	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				s.logger.Warn(fmt.Sprintf("connection lost: %v", err))
			}
			return
		}

		var event model.Event
		if err := json.Unmarshal(raw, &event); err != nil {
			s.logger.Warn(fmt.Sprintf("dropping malformed frame: %v", err))
			continue
		}

		s.handlersMu.RLock()
		handler := s.handlers[event.Event]
		s.handlersMu.RUnlock()

		if handler != nil {
			handler(event.Data)
		}
	}
}

func (s *Socket) pingLoop(conn *websocket.Conn, stop <-chan struct{}) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-stop:
			return
		case <-s.done:
			return
		case <-ticker.C:
			if err := conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(writeTimeout)); err != nil {
				return
			}
		}
	}
}

func (s *Socket) setState(state model.ConnState) {
	s.mu.Lock()
	if s.state == state {
		s.mu.Unlock()
		return
	}
	s.state = state
	s.mu.Unlock()

	s.listenersMu.Lock()
	listeners := make([]func(model.ConnState), len(s.listeners))
	copy(listeners, s.listeners)
	s.listenersMu.Unlock()

	for _, listener := range listeners {
		listener(state)
	}
}
