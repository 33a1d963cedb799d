//go:generate mockgen -destination=mock_contract_test.go -package=${GOPACKAGE} -source=contract.go
package session

import (
	"context"

	"github.com/pingr-im/pingr-go/internal/model"
)

// Connection is the realtime transport the session rides on. Subscribing a
// handler for an event name replaces any prior handler for that name.
type Connection interface {
	Send(event, data string)
	On(event string, handler func(data string))
	Off(event string)
	State() model.ConnState
	OnStateChange(listener func(model.ConnState))
}

// APIClient is the authoritative HTTP path for history and message
// creation.
type APIClient interface {
	FetchMessages(ctx context.Context, chatID string) (model.MessageList, error)
	CreateMessage(ctx context.Context, chatID, content, attachment string) (*model.Message, error)
}
