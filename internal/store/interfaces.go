package store

import (
	"context"
	"errors"

	"reex.app/server/internal/model"
)

// ErrNotFound is returned when a requested entity does not exist
var ErrNotFound = errors.New("not found")

// ConversationStore defines the contract for conversation data access
type ConversationStore interface {
	Create(ctx context.Context, title string) (*model.Conversation, error)
	GetByID(ctx context.Context, id int64) (*model.Conversation, error)
	List(ctx context.Context) ([]model.Conversation, error) // newest first
}

// MessageStore defines the contract for message data access
type MessageStore interface {
	Create(ctx context.Context, conversationID int64, content string, isUser bool) (*model.Message, error)
	ListByConversation(ctx context.Context, conversationID int64) ([]model.Message, error) // oldest first
}
