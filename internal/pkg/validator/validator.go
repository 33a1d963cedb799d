package validator

import (
	"fmt"
	"strings"

	"github.com/pingr-im/pingr-go/internal/api"
)

const maxContentLength = 2000

type Validator struct{}

func New() *Validator {
	return &Validator{}
}

func (v *Validator) ValidateCreateMessage(req *api.CreateMessageRequest) error {
	if strings.TrimSpace(req.ChatID) == "" {
		return fmt.Errorf("chatId is required")
	}

	if strings.TrimSpace(req.Content) == "" && strings.TrimSpace(req.Attachment) == "" {
		return fmt.Errorf("message needs content or an attachment")
	}

	if len([]rune(req.Content)) > maxContentLength {
		return fmt.Errorf("content exceeds maximum length of %d characters", maxContentLength)
	}

	return nil
}

func (v *Validator) ValidateCreateChat(req *api.CreateChatRequest, creatorID string) error {
	if strings.TrimSpace(req.UserID) == "" {
		return fmt.Errorf("userId is required")
	}

	if req.UserID == creatorID {
		return fmt.Errorf("cannot open a chat with yourself")
	}

	return nil
}

func (v *Validator) ValidateCreateGroupChat(req *api.CreateGroupChatRequest, creatorID string) error {
	if strings.TrimSpace(req.ChatName) == "" {
		return fmt.Errorf("chatName is required")
	}

	uniqueUsers := make(map[string]struct{})
	for _, userID := range req.Users {
		if strings.TrimSpace(userID) != "" && userID != creatorID {
			uniqueUsers[userID] = struct{}{}
		}
	}

	// Creator joins implicitly; a group needs at least two other members.
	if len(uniqueUsers) < 2 {
		return fmt.Errorf("group chat requires at least 3 participants, got %d", len(uniqueUsers)+1)
	}

	return nil
}

func (v *Validator) ValidateRegister(req *api.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("name is required")
	}

	if !strings.Contains(req.Email, "@") {
		return fmt.Errorf("a valid email is required")
	}

	if len(req.Password) < 6 {
		return fmt.Errorf("password must be at least 6 characters")
	}

	return nil
}
