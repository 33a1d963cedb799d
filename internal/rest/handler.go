package rest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"golang.org/x/crypto/bcrypt"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/pingr-im/pingr-go/internal/api"
	"github.com/pingr-im/pingr-go/internal/config"
)

const (
	defaultMessageLimit = 50
	maxMessageLimit     = 200
)

type Handler struct {
	repository   DBRepo
	tokenManager TokenManager
	validator    Validator
}

func New(repo DBRepo, tokenManager TokenManager, validator Validator) *Handler {
	return &Handler{
		repository:   repo,
		tokenManager: tokenManager,
		validator:    validator,
	}
}

func (h *Handler) Register(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Register")

	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.ValidateRegister(&req); err != nil {
		logger.Error(fmt.Sprintf("registration validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("registration validation failed: %v", err), http.StatusBadRequest)
		return
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to hash password: %v", err))
		h.writeError(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	user, err := h.repository.CreateUser(r.Context(), req.Name, req.Email, string(passwordHash))
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create user: %v", err))
		h.writeError(w, "failed to register user", http.StatusInternalServerError)
		return
	}

	token, _, err := h.tokenManager.Generate(*user)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate token: %v", err))
		h.writeError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	response := api.AuthResponse{
		Result:  api.AuthResult{Token: token, User: *user},
		Success: true,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("Login")

	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	user, passwordHash, err := h.repository.GetUserByEmail(r.Context(), req.Email)
	if err != nil {
		logger.Warn(fmt.Sprintf("login failed for %s: %v", req.Email, err))
		h.writeError(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(passwordHash), []byte(req.Password)); err != nil {
		logger.Warn(fmt.Sprintf("login failed for %s: wrong password", req.Email))
		h.writeError(w, "invalid email or password", http.StatusUnauthorized)
		return
	}

	token, _, err := h.tokenManager.Generate(*user)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to generate token: %v", err))
		h.writeError(w, "failed to generate token", http.StatusInternalServerError)
		return
	}

	response := api.AuthResponse{
		Result:  api.AuthResult{Token: token, User: *user},
		Success: true,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetChats(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetChats")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	chats, err := h.repository.GetUserChats(r.Context(), userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to get user chats: %v", err))
		h.writeError(w, fmt.Sprintf("failed to get user chats: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.ChatsResponse{
		Result:  api.ChatsResult{Chats: chats},
		Success: true,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateChat")

	var req api.CreateChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	creatorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get creator ID")
		h.writeError(w, "failed to get creator ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateChat(&req, creatorID); err != nil {
		logger.Error(fmt.Sprintf("chat validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("chat validation failed: %v", err), http.StatusBadRequest)
		return
	}

	chat, err := h.repository.GetOrCreateDirectChat(r.Context(), creatorID, req.UserID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create chat: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create chat: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.ChatResponse{
		Result:  api.ChatResult{Chat: *chat},
		Success: true,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateGroupChat(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateGroupChat")

	var req api.CreateGroupChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	creatorID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get creator ID")
		h.writeError(w, "failed to get creator ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateGroupChat(&req, creatorID); err != nil {
		logger.Error(fmt.Sprintf("group chat validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("group chat validation failed: %v", err), http.StatusBadRequest)
		return
	}

	memberIDs := []string{creatorID}
	seen := map[string]struct{}{creatorID: {}}
	for _, userID := range req.Users {
		if userID == "" {
			continue
		}
		if _, ok := seen[userID]; ok {
			continue
		}
		seen[userID] = struct{}{}
		memberIDs = append(memberIDs, userID)
	}

	chat, err := h.repository.CreateGroupChat(r.Context(), req.ChatName, memberIDs, creatorID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to create group chat: %v", err))
		h.writeError(w, fmt.Sprintf("failed to create group chat: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.ChatResponse{
		Result:  api.ChatResult{Chat: *chat},
		Success: true,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) GetChatMessages(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("GetChatMessages")

	chatID := chi.URLParam(r, "chat_id")

	userID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get user ID")
		h.writeError(w, "failed to get user ID", http.StatusInternalServerError)
		return
	}

	isMember, err := h.repository.IsChatMember(r.Context(), chatID, userID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check chat membership: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check chat membership: %v", err), http.StatusInternalServerError)
		return
	}

	if !isMember {
		logger.Warn(fmt.Sprintf("user %s is not a member of chat %s", userID, chatID))
		h.writeError(w, "user is not a member of the chat", http.StatusForbidden)
		return
	}

	limit := int64(defaultMessageLimit)
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed <= 0 {
			h.writeError(w, "invalid limit parameter", http.StatusBadRequest)
			return
		}
		if parsed > maxMessageLimit {
			parsed = maxMessageLimit
		}
		limit = parsed
	}

	messages, err := h.repository.GetChatMessages(r.Context(), chatID, limit)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to fetch messages: %v", err))
		h.writeError(w, fmt.Sprintf("failed to fetch messages: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.MessagesResponse{
		Result:  api.MessagesResult{Messages: *messages},
		Success: true,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) CreateMessage(w http.ResponseWriter, r *http.Request) {
	logger := logger_lib.FromContext(r.Context(), config.KeyLogger)
	logger.AddFuncName("CreateMessage")

	var req api.CreateMessageRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Error(fmt.Sprintf("failed to decode request: %v", err))
		h.writeError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	senderID, ok := r.Context().Value(config.KeyUUID).(string)
	if !ok {
		logger.Error("failed to get sender ID")
		h.writeError(w, "failed to get sender ID", http.StatusInternalServerError)
		return
	}

	if err := h.validator.ValidateCreateMessage(&req); err != nil {
		logger.Error(fmt.Sprintf("message validation failed: %v", err))
		h.writeError(w, fmt.Sprintf("message validation failed: %v", err), http.StatusBadRequest)
		return
	}

	isMember, err := h.repository.IsChatMember(r.Context(), req.ChatID, senderID)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to check chat membership: %v", err))
		h.writeError(w, fmt.Sprintf("failed to check chat membership: %v", err), http.StatusInternalServerError)
		return
	}

	if !isMember {
		logger.Warn(fmt.Sprintf("user %s is not a member of chat %s", senderID, req.ChatID))
		h.writeError(w, "user is not a member of the chat", http.StatusForbidden)
		return
	}

	message, err := h.repository.CreateMessage(r.Context(), req.ChatID, senderID, req.Content, req.Attachment)
	if err != nil {
		logger.Error(fmt.Sprintf("failed to save message: %v", err))
		h.writeError(w, fmt.Sprintf("failed to save message: %v", err), http.StatusInternalServerError)
		return
	}

	response := api.MessageResponse{
		Result:  api.MessageResult{Message: *message},
		Success: true,
	}

	h.writeJSON(w, response, http.StatusOK)
}

func (h *Handler) writeJSON(w http.ResponseWriter, data interface{}, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		http.Error(w, "Failed to encode response", http.StatusInternalServerError)
	}
}

func (h *Handler) writeError(w http.ResponseWriter, message string, statusCode int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(api.Error{Success: false, Message: message})
}
