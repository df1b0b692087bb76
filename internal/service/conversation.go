package service

import (
	"context"
	"fmt"
	"log/slog"

	"reex.app/server/internal/model"
	"reex.app/server/internal/store"
)

type ConversationService interface {
	List(ctx context.Context) ([]model.Conversation, error)
	Create(ctx context.Context, title string) (*model.Conversation, error)
	Messages(ctx context.Context, conversationID int64) ([]model.Message, error)
}

type conversationService struct {
	conversations store.ConversationStore
	messages      store.MessageStore
}

func NewConversationService(conversations store.ConversationStore, messages store.MessageStore) ConversationService {
	return &conversationService{
		conversations: conversations,
		messages:      messages,
	}
}

func (s *conversationService) List(ctx context.Context) ([]model.Conversation, error) {
	conversations, err := s.conversations.List(ctx)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list conversations", "error", err)
		return nil, fmt.Errorf("listing conversations: %w", err)
	}
	return conversations, nil
}

func (s *conversationService) Create(ctx context.Context, title string) (*model.Conversation, error) {
	conv, err := s.conversations.Create(ctx, title)
	if err != nil {
		slog.ErrorContext(ctx, "failed to create conversation", "error", err)
		return nil, fmt.Errorf("creating conversation: %w", err)
	}

	slog.InfoContext(ctx, "conversation created", "conversation_id", conv.ID)
	return conv, nil
}

func (s *conversationService) Messages(ctx context.Context, conversationID int64) ([]model.Message, error) {
	messages, err := s.messages.ListByConversation(ctx, conversationID)
	if err != nil {
		slog.ErrorContext(ctx, "failed to list messages",
			"error", err,
			"conversation_id", conversationID,
		)
		return nil, fmt.Errorf("listing messages: %w", err)
	}
	return messages, nil
}
