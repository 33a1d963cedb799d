// Package session implements the chat session core: room membership
// tracking and the message stream reconciler that merges history, local
// optimistic sends and live events into one ordered, duplicate-free
// sequence.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/pingr-im/pingr-go/internal/model"
)

const (
	// typingDebounce is how long after the last keystroke the stop-typing
	// signal goes out.
	typingDebounce = time.Second

	// confirmWindow bounds how far apart an optimistic entry and its
	// server echo may be created and still be matched as the same message.
	confirmWindow = 10 * time.Second
)

var (
	ErrEmptyMessage = errors.New("message needs content or an attachment")
	ErrNoActiveChat = errors.New("no active chat")
)

// LoadState is the history-load phase of the active chat.
type LoadState int

const (
	LoadIdle LoadState = iota
	LoadLoading
	LoadLoaded
	LoadFailed
)

// Session exposes the active chat's message stream and typing state to the
// UI collaborator and accepts its imperative calls. All state is guarded
// by one mutex; callbacks from the transport and fetch completions may
// arrive on any goroutine.
type Session struct {
	conn      Connection
	apiClient APIClient
	tracker   *Tracker
	logger    logger_lib.LoggerInterface
	userID    string

	mu        sync.Mutex
	messages  []model.Message // newest first
	loadState LoadState
	typing    bool

	typingTimer *time.Timer
	typingChat  string
	typingSeq   uint64

	onUpdate      func()
	onSendFailure func(userMsg string)
}

// New wires the session to its collaborators and subscribes the live event
// handlers. userID distinguishes own messages from others' for echo
// matching.
func New(conn Connection, apiClient APIClient, userID string, logger logger_lib.LoggerInterface) *Session {
	s := &Session{
		conn:      conn,
		apiClient: apiClient,
		tracker:   NewTracker(conn),
		logger:    logger,
		userID:    userID,
	}

	conn.On(model.EventMessage, s.handleMessageEvent)
	conn.On(model.EventTyping, s.handleTypingEvent(true))
	conn.On(model.EventStopTyping, s.handleTypingEvent(false))
	conn.OnStateChange(func(state model.ConnState) {
		if state == model.StateConnected {
			s.tracker.Rejoin()
		}
	})

	return s
}

// OnUpdate registers the collaborator's change listener, invoked after
// every visible-state mutation. At most one listener.
func (s *Session) OnUpdate(fn func()) {
	s.mu.Lock()
	s.onUpdate = fn
	s.mu.Unlock()
}

// OnSendFailure registers the listener for remote send rejections; the
// argument is safe to show to the user.
func (s *Session) OnSendFailure(fn func(userMsg string)) {
	s.mu.Lock()
	s.onSendFailure = fn
	s.mu.Unlock()
}

// Close unsubscribes the live handlers and stops timers. The connection
// itself stays up; it is owned by the caller.
func (s *Session) Close() {
	s.conn.Off(model.EventMessage)
	s.conn.Off(model.EventTyping)
	s.conn.Off(model.EventStopTyping)

	s.mu.Lock()
	s.stopTypingTimerLocked()
	s.mu.Unlock()
}

// EnterChat makes chatID the active chat and starts the history fetch.
// Entering the already-active chat is a no-op. Any state of the previous
// chat is discarded.
func (s *Session) EnterChat(ctx context.Context, chatID string) {
	if !s.tracker.Enter(chatID) {
		return
	}

	s.mu.Lock()
	s.messages = nil
	s.typing = false
	s.loadState = LoadLoading
	s.stopTypingTimerLocked()
	s.mu.Unlock()
	s.notify()

	go s.loadHistory(ctx, chatID)
}

// LeaveChat discards the active chat's state and signals the departure.
func (s *Session) LeaveChat(chatID string) {
	if !s.tracker.Leave(chatID) {
		return
	}

	s.mu.Lock()
	s.messages = nil
	s.typing = false
	s.loadState = LoadIdle
	s.stopTypingTimerLocked()
	s.mu.Unlock()
	s.notify()
}

// ActiveChat returns the chat currently routing live events.
func (s *Session) ActiveChat() string {
	return s.tracker.Active()
}

// Messages returns the display sequence of the active chat, newest first,
// as a copy safe to hold across further updates.
func (s *Session) Messages() []model.Message {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Message, len(s.messages))
	copy(out, s.messages)
	return out
}

func (s *Session) LoadState() LoadState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadState
}

// IsTyping reports whether the counterpart side of the active chat is
// typing.
func (s *Session) IsTyping() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// ConnState reports the realtime connection state.
func (s *Session) ConnState() model.ConnState {
	return s.conn.State()
}

// SendLocalMessage appends an optimistic entry and issues the authoritative
// send in the background. Validation failures are returned synchronously;
// remote rejections go to the OnSendFailure listener and leave the
// optimistic entry pending.
func (s *Session) SendLocalMessage(ctx context.Context, content, attachment string) error {
	if content == "" && attachment == "" {
		return ErrEmptyMessage
	}

	chatID := s.tracker.Active()
	if chatID == "" {
		return ErrNoActiveChat
	}

	// Without connectivity the send is aborted up front: no request, no
	// optimistic entry, only the failure notice.
	if s.conn.State() == model.StateDisconnected {
		s.reportFailureMessage("No Internet Connection")
		return nil
	}

	optimistic := model.Message{
		TempID:     uuid.New().String(),
		Sender:     model.User{ID: s.userID},
		Content:    content,
		Attachment: attachment,
		ChatID:     chatID,
		CreatedAt:  time.Now(),
	}

	s.mu.Lock()
	s.messages = insertByRecency(s.messages, optimistic)
	s.mu.Unlock()
	s.notify()

	go s.deliver(ctx, optimistic)
	return nil
}

// NotifyLocalTyping signals that the user is typing in the active chat and
// schedules the stop-typing signal for one debounce interval after the
// last keystroke.
func (s *Session) NotifyLocalTyping() {
	chatID := s.tracker.Active()
	if chatID == "" {
		return
	}

	s.conn.Send(model.EventTyping, chatID)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.typingTimer != nil {
		s.typingTimer.Stop()
	}
	s.typingChat = chatID
	s.typingSeq++
	seq := s.typingSeq
	s.typingTimer = time.AfterFunc(typingDebounce, func() {
		s.typingExpired(chatID, seq)
	})
}

// typingExpired fires one debounce interval after a keystroke. The
// sequence check discards timers that were reset or cancelled after
// already firing.
func (s *Session) typingExpired(chatID string, seq uint64) {
	s.mu.Lock()
	if s.typingSeq != seq || s.typingChat != chatID {
		s.mu.Unlock()
		return
	}
	s.typingTimer = nil
	s.typingChat = ""
	s.mu.Unlock()

	s.conn.Send(model.EventStopTyping, chatID)
}

// stopTypingTimerLocked cancels a pending stop-typing signal; callers hold
// s.mu.
func (s *Session) stopTypingTimerLocked() {
	if s.typingTimer != nil {
		s.typingTimer.Stop()
		s.typingTimer = nil
	}
	s.typingChat = ""
	s.typingSeq++
}

func (s *Session) loadHistory(ctx context.Context, chatID string) {
	history, err := s.apiClient.FetchMessages(ctx, chatID)

	s.mu.Lock()
	// The user may have navigated away while the fetch was in flight; a
	// stale result must not leak into another chat's state.
	if s.tracker.Active() != chatID {
		s.mu.Unlock()
		return
	}

	if err != nil {
		s.loadState = LoadFailed
		s.mu.Unlock()
		s.logger.Error(fmt.Sprintf("failed to fetch history for chat %s: %v", chatID, err))
		s.notify()
		return
	}

	s.messages = mergeHistory(history, s.messages)
	s.loadState = LoadLoaded
	s.mu.Unlock()
	s.notify()
}

func (s *Session) deliver(ctx context.Context, optimistic model.Message) {
	confirmed, err := s.apiClient.CreateMessage(ctx, optimistic.ChatID, optimistic.Content, optimistic.Attachment)
	if err != nil {
		s.logger.Warn(fmt.Sprintf("failed to send message to chat %s: %v", optimistic.ChatID, err))
		s.reportSendFailure(err)
		return
	}

	s.mu.Lock()
	if s.tracker.Active() == optimistic.ChatID {
		s.confirmLocked(optimistic.TempID, *confirmed)
	}
	s.mu.Unlock()
	s.notify()

	// Let the backend fan the confirmed copy out to the room. Our own echo
	// is deduplicated by id on receipt.
	raw, err := json.Marshal(confirmed)
	if err != nil {
		s.logger.Error(fmt.Sprintf("failed to marshal confirmed message: %v", err))
		return
	}
	s.conn.Send(model.EventMessage, string(raw))
}

// confirmLocked replaces the optimistic entry with the server-confirmed
// copy. If the echo raced ahead and the confirmed id is already present,
// the optimistic entry is simply removed.
func (s *Session) confirmLocked(tempID string, confirmed model.Message) {
	if containsID(s.messages, confirmed.ID) {
		s.messages = removeTempID(s.messages, tempID)
		return
	}

	for i := range s.messages {
		if s.messages[i].TempID == tempID {
			s.messages[i] = confirmed
			return
		}
	}
	// Optimistic entry already gone (chat was re-entered); keep the
	// confirmed copy so the send is not lost visually.
	s.messages = insertByRecency(s.messages, confirmed)
}

func (s *Session) handleMessageEvent(data string) {
	var msg model.Message
	if err := json.Unmarshal([]byte(data), &msg); err != nil {
		s.logger.Warn(fmt.Sprintf("dropping malformed message event: %v", err))
		return
	}

	// Events for a chat other than the active one are not this component's
	// business; a separate notification path handles those.
	if msg.ChatID != s.tracker.Active() {
		return
	}

	s.mu.Lock()
	switch {
	case msg.Confirmed() && containsID(s.messages, msg.ID):
		// Duplicate delivery, drop.
	case s.replaceOptimisticLocked(msg):
		// Echo of an own pending send, replaced in place.
	default:
		s.messages = insertByRecency(s.messages, msg)
	}
	s.mu.Unlock()
	s.notify()
}

// replaceOptimisticLocked matches a confirmed inbound message against a
// pending optimistic entry: same sender, same payload, confirmed within a
// short window of the optimistic send. The match is heuristic; two
// identical texts sent back-to-back could mis-merge. A client nonce echoed
// by the backend would make this exact.
func (s *Session) replaceOptimisticLocked(msg model.Message) bool {
	if !msg.Confirmed() || !msg.IsMine(s.userID) {
		return false
	}

	for i := range s.messages {
		pending := s.messages[i]
		if pending.Confirmed() || pending.TempID == "" {
			continue
		}
		if !pending.SameContent(msg) {
			continue
		}
		if gap := msg.CreatedAt.Sub(pending.CreatedAt); gap < -confirmWindow || gap > confirmWindow {
			continue
		}
		s.messages[i] = msg
		return true
	}
	return false
}

func (s *Session) handleTypingEvent(typing bool) func(data string) {
	return func(chatID string) {
		if chatID != s.tracker.Active() {
			return
		}

		s.mu.Lock()
		changed := s.typing != typing
		s.typing = typing
		s.mu.Unlock()

		if changed {
			s.notify()
		}
	}
}

func (s *Session) reportSendFailure(err error) {
	var apiErr interface{ UserMessage() string }
	if errors.As(err, &apiErr) {
		s.reportFailureMessage(apiErr.UserMessage())
		return
	}
	s.reportFailureMessage("Something Went Wrong")
}

func (s *Session) reportFailureMessage(userMsg string) {
	s.mu.Lock()
	fn := s.onSendFailure
	s.mu.Unlock()
	if fn != nil {
		fn(userMsg)
	}
}

func (s *Session) notify() {
	s.mu.Lock()
	fn := s.onUpdate
	s.mu.Unlock()
	if fn != nil {
		fn()
	}
}

// insertByRecency places msg into the newest-first sequence, keeping
// CreatedAt descending. Ties go to the newcomer, matching head-append for
// live events.
func insertByRecency(messages []model.Message, msg model.Message) []model.Message {
	idx := sort.Search(len(messages), func(i int) bool {
		return !messages[i].CreatedAt.After(msg.CreatedAt)
	})

	messages = append(messages, model.Message{})
	copy(messages[idx+1:], messages[idx:])
	messages[idx] = msg
	return messages
}

// mergeHistory folds the fetched history into whatever live entries
// accumulated while the fetch was in flight. No server id appears twice;
// unconfirmed optimistic entries are kept as-is.
func mergeHistory(history model.MessageList, live []model.Message) []model.Message {
	seen := make(map[string]struct{}, len(live))
	merged := make([]model.Message, 0, len(history)+len(live))

	for _, msg := range live {
		if msg.Confirmed() {
			seen[msg.ID] = struct{}{}
		}
		merged = append(merged, msg)
	}

	for _, msg := range history {
		if _, dup := seen[msg.ID]; dup {
			continue
		}
		merged = append(merged, msg)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].CreatedAt.After(merged[j].CreatedAt)
	})
	return merged
}

func containsID(messages []model.Message, id string) bool {
	if id == "" {
		return false
	}
	for i := range messages {
		if messages[i].ID == id {
			return true
		}
	}
	return false
}

func removeTempID(messages []model.Message, tempID string) []model.Message {
	for i := range messages {
		if messages[i].TempID == tempID && !messages[i].Confirmed() {
			return append(messages[:i], messages[i+1:]...)
		}
	}
	return messages
}
