package model

import (
	"time"
)

type MessageList []Message

// Message is one chat message. ID is assigned by the backend; a message
// created locally for optimistic display carries only TempID until the
// send request confirms it.
type Message struct {
	ID         string    `json:"_id,omitempty"`
	TempID     string    `json:"-"`
	Sender     User      `json:"sender"`
	Content    string    `json:"content"`
	Attachment string    `json:"attachment,omitempty"`
	ChatID     string    `json:"chat"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Confirmed reports whether the backend has assigned an identifier.
func (m Message) Confirmed() bool {
	return m.ID != ""
}

func (m Message) IsMine(userID string) bool {
	return m.Sender.ID == userID
}

// SameContent reports whether two messages carry the same payload. Used to
// match an optimistic entry against its confirmed copy.
func (m Message) SameContent(other Message) bool {
	return m.Content == other.Content && m.Attachment == other.Attachment
}
