// Package api defines the REST contract shared by the client and the
// reference backend: request bodies and the result envelope every endpoint
// replies with.
package api

import (
	"github.com/pingr-im/pingr-go/internal/model"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type CreateChatRequest struct {
	UserID string `json:"userId"`
}

type CreateGroupChatRequest struct {
	ChatName string   `json:"chatName"`
	Users    []string `json:"users"`
}

type CreateMessageRequest struct {
	ChatID     string `json:"chatId"`
	Content    string `json:"content"`
	Attachment string `json:"attachment,omitempty"`
}

type AuthResult struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

type AuthResponse struct {
	Result  AuthResult `json:"result"`
	Success bool       `json:"success"`
	Message string     `json:"message"`
}

type ChatsResult struct {
	Chats []model.Chat `json:"chats"`
}

type ChatsResponse struct {
	Result  ChatsResult `json:"result"`
	Success bool        `json:"success"`
	Message string      `json:"message"`
}

type ChatResult struct {
	Chat model.Chat `json:"chat"`
}

type ChatResponse struct {
	Result  ChatResult `json:"result"`
	Success bool       `json:"success"`
	Message string     `json:"message"`
}

type MessagesResult struct {
	Messages []model.Message `json:"messages"`
}

type MessagesResponse struct {
	Result  MessagesResult `json:"result"`
	Success bool           `json:"success"`
	Message string         `json:"message"`
}

type MessageResult struct {
	Message model.Message `json:"message"`
}

type MessageResponse struct {
	Result  MessageResult `json:"result"`
	Success bool          `json:"success"`
	Message string        `json:"message"`
}

// Error is the body returned on failed requests; Message is shown to the
// user when present.
type Error struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
