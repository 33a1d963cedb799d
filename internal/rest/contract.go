package rest

//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go

import (
	"context"

	"github.com/pingr-im/pingr-go/internal/api"
	"github.com/pingr-im/pingr-go/internal/model"
)

type DBRepo interface {
	CreateUser(ctx context.Context, name, email, passwordHash string) (*model.User, error)
	GetUserByEmail(ctx context.Context, email string) (*model.User, string, error)
	GetOrCreateDirectChat(ctx context.Context, firstUserID, secondUserID string) (*model.Chat, error)
	CreateGroupChat(ctx context.Context, chatName string, memberIDs []string, adminID string) (*model.Chat, error)
	GetUserChats(ctx context.Context, userID string) ([]model.Chat, error)
	IsChatMember(ctx context.Context, chatID, userID string) (bool, error)
	CreateMessage(ctx context.Context, chatID, senderID, content, attachment string) (*model.Message, error)
	GetChatMessages(ctx context.Context, chatID string, limit int64) (*model.MessageList, error)
}

type TokenManager interface {
	Generate(user model.User) (string, int64, error)
	Validate(tokenString string) (*model.AccessClaims, error)
}

type Validator interface {
	ValidateRegister(req *api.RegisterRequest) error
	ValidateCreateChat(req *api.CreateChatRequest, creatorID string) error
	ValidateCreateGroupChat(req *api.CreateGroupChatRequest, creatorID string) error
	ValidateCreateMessage(req *api.CreateMessageRequest) error
}
