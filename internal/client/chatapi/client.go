// Package chatapi is the HTTP client for the chat backend REST API. It is
// the authoritative path for message creation; the realtime broadcast is
// only a notification echo.
package chatapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/pingr-im/pingr-go/internal/api"
	"github.com/pingr-im/pingr-go/internal/config"
	"github.com/pingr-im/pingr-go/internal/model"
)

const genericErrorMessage = "Something Went Wrong"

// Error is a remote rejection: the request reached the backend and the
// backend refused it. UserMessage is safe to show as-is.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error (status %d): %s", e.StatusCode, e.Message)
}

// UserMessage returns the backend-provided message, or a generic one when
// the backend did not include any.
func (e *Error) UserMessage() string {
	if e.Message != "" {
		return e.Message
	}
	return genericErrorMessage
}

type Client struct {
	baseURL    string
	httpClient *http.Client

	mu    sync.RWMutex
	token string
}

func New(cfg *config.Config) *Client {
	return &Client{
		baseURL: cfg.API.BaseURL,
		token:   cfg.Auth.Token,
		httpClient: &http.Client{
			Timeout: cfg.API.Timeout,
		},
	}
}

// SetToken installs the access token used for subsequent requests.
func (c *Client) SetToken(token string) {
	c.mu.Lock()
	c.token = token
	c.mu.Unlock()
}

func (c *Client) Token() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.token
}

// Login exchanges credentials for an access token and installs it on the
// client.
func (c *Client) Login(ctx context.Context, email, password string) (*api.AuthResult, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/login", api.LoginRequest{Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	c.SetToken(resp.Result.Token)
	return &resp.Result, nil
}

func (c *Client) Register(ctx context.Context, name, email, password string) (*api.AuthResult, error) {
	var resp api.AuthResponse
	err := c.do(ctx, http.MethodPost, "/auth/register", api.RegisterRequest{Name: name, Email: email, Password: password}, &resp)
	if err != nil {
		return nil, err
	}

	c.SetToken(resp.Result.Token)
	return &resp.Result, nil
}

// FetchMessages returns the chat history, newest first. Idempotent and
// side-effect free.
func (c *Client) FetchMessages(ctx context.Context, chatID string) (model.MessageList, error) {
	var resp api.MessagesResponse
	err := c.do(ctx, http.MethodGet, "/message/"+chatID, nil, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Result.Messages, nil
}

// CreateMessage persists a message and returns the confirmed copy with its
// server-assigned identifier.
func (c *Client) CreateMessage(ctx context.Context, chatID, content, attachment string) (*model.Message, error) {
	req := api.CreateMessageRequest{
		ChatID:     chatID,
		Content:    content,
		Attachment: attachment,
	}

	var resp api.MessageResponse
	err := c.do(ctx, http.MethodPost, "/message", req, &resp)
	if err != nil {
		return nil, err
	}

	return &resp.Result.Message, nil
}

func (c *Client) FetchChats(ctx context.Context) (model.ChatList, error) {
	var resp api.ChatsResponse
	err := c.do(ctx, http.MethodGet, "/chat", nil, &resp)
	if err != nil {
		return nil, err
	}

	return resp.Result.Chats, nil
}

// CreateChat opens (or returns the existing) direct chat with the given
// user.
func (c *Client) CreateChat(ctx context.Context, userID string) (*model.Chat, error) {
	var resp api.ChatResponse
	err := c.do(ctx, http.MethodPost, "/chat", api.CreateChatRequest{UserID: userID}, &resp)
	if err != nil {
		return nil, err
	}

	return &resp.Result.Chat, nil
}

func (c *Client) CreateGroupChat(ctx context.Context, chatName string, userIDs []string) (*model.Chat, error) {
	req := api.CreateGroupChatRequest{
		ChatName: chatName,
		Users:    userIDs,
	}

	var resp api.ChatResponse
	err := c.do(ctx, http.MethodPost, "/chat/group", req, &resp)
	if err != nil {
		return nil, err
	}

	return &resp.Result.Chat, nil
}

func (c *Client) do(ctx context.Context, method, path string, body, out interface{}) error {
	var reader *bytes.Buffer
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewBuffer(jsonData)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	if token := c.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close() //nolint:errcheck // .

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var apiErr api.Error
		_ = json.NewDecoder(resp.Body).Decode(&apiErr)
		return &Error{
			StatusCode: resp.StatusCode,
			Message:    apiErr.Message,
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
