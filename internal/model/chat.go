package model

import "time"

type ChatList []Chat

// Chat is a conversation thread, direct or group.
type Chat struct {
	ID         string    `json:"_id"`
	Name       string    `json:"chatName"`
	IsGroup    bool      `json:"isGroupChat"`
	Users      []User    `json:"users"`
	GroupAdmin *User     `json:"groupAdmin,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

type User struct {
	ID             string `json:"_id"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	ProfilePicture string `json:"profilePicture,omitempty"`
}

// Counterpart returns the other participant of a direct chat. Nil for
// group chats or when the requester is not a member.
func (c Chat) Counterpart(userID string) *User {
	if c.IsGroup {
		return nil
	}
	for i := range c.Users {
		if c.Users[i].ID != userID {
			return &c.Users[i]
		}
	}
	return nil
}

// DisplayName is the chat title as the given user sees it: the explicit
// name for group chats, the counterpart's name for direct chats.
func (c Chat) DisplayName(userID string) string {
	if c.IsGroup {
		return c.Name
	}
	if u := c.Counterpart(userID); u != nil {
		return u.Name
	}
	return c.Name
}
