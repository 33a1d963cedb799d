package session

import (
	"sync"

	"github.com/pingr-im/pingr-go/internal/model"
)

// Tracker keeps at most one chat "joined" on the realtime stream, matching
// the user's navigation focus. Its active id is the source of truth for
// which chat inbound events are routed to; the join/leave signals are
// advisory hints to the backend and the server is not assumed to enforce
// exclusivity.
type Tracker struct {
	conn Connection

	mu     sync.Mutex
	active string
}

func NewTracker(conn Connection) *Tracker {
	return &Tracker{conn: conn}
}

// Enter makes chatID the active chat. The previous chat, if any, gets a
// leave signal before the join is emitted. Entering the already-active
// chat is a no-op; the return value reports whether anything changed.
func (t *Tracker) Enter(chatID string) bool {
	t.mu.Lock()
	if t.active == chatID {
		t.mu.Unlock()
		return false
	}
	prev := t.active
	t.active = chatID
	t.mu.Unlock()

	if prev != "" {
		t.conn.Send(model.EventLeaveRoom, prev)
	}
	t.conn.Send(model.EventJoinRoom, chatID)
	return true
}

// Leave clears the active chat if chatID is it, emitting a leave signal.
func (t *Tracker) Leave(chatID string) bool {
	t.mu.Lock()
	if t.active != chatID {
		t.mu.Unlock()
		return false
	}
	t.active = ""
	t.mu.Unlock()

	t.conn.Send(model.EventLeaveRoom, chatID)
	return true
}

func (t *Tracker) Active() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.active
}

// Rejoin re-emits the join signal for the active chat. Called after a
// reconnect, since the backend forgets room membership with the old
// connection.
func (t *Tracker) Rejoin() {
	t.mu.Lock()
	active := t.active
	t.mu.Unlock()

	if active != "" {
		t.conn.Send(model.EventJoinRoom, active)
	}
}
