package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"reex.app/server/internal/model"
)

// memory holds all session state for the process. Conversation and message
// ids are separate counters starting at 1; increment and insert happen under
// one mutex so concurrent creates never collide or leave a gap. Nothing here
// survives a restart, which is the intended contract: this is volatile
// session state, not a durable store.
type memory struct {
	mu sync.Mutex

	conversations      map[int64]model.Conversation
	messages           map[int64]model.Message
	nextConversationID int64
	nextMessageID      int64
}

func newMemory() *memory {
	return &memory{
		conversations:      make(map[int64]model.Conversation),
		messages:           make(map[int64]model.Message),
		nextConversationID: 1,
		nextMessageID:      1,
	}
}

type conversationStore struct {
	mem *memory
}

func newConversationStore(mem *memory) ConversationStore {
	return &conversationStore{mem: mem}
}

func (s *conversationStore) Create(_ context.Context, title string) (*model.Conversation, error) {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	conv := model.Conversation{
		ID:        s.mem.nextConversationID,
		Title:     title,
		CreatedAt: time.Now(),
	}
	s.mem.nextConversationID++
	s.mem.conversations[conv.ID] = conv
	return &conv, nil
}

func (s *conversationStore) GetByID(_ context.Context, id int64) (*model.Conversation, error) {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	conv, ok := s.mem.conversations[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &conv, nil
}

func (s *conversationStore) List(_ context.Context) ([]model.Conversation, error) {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	out := make([]model.Conversation, 0, len(s.mem.conversations))
	for _, conv := range s.mem.conversations {
		out = append(out, conv)
	}
	// Newest first; ids break ties since both advance together.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type messageStore struct {
	mem *memory
}

func newMessageStore(mem *memory) MessageStore {
	return &messageStore{mem: mem}
}

func (s *messageStore) Create(_ context.Context, conversationID int64, content string, isUser bool) (*model.Message, error) {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	if _, ok := s.mem.conversations[conversationID]; !ok {
		return nil, ErrNotFound
	}

	msg := model.Message{
		ID:             s.mem.nextMessageID,
		ConversationID: conversationID,
		Content:        content,
		IsUser:         isUser,
		CreatedAt:      time.Now(),
	}
	s.mem.nextMessageID++
	s.mem.messages[msg.ID] = msg
	return &msg, nil
}

func (s *messageStore) ListByConversation(_ context.Context, conversationID int64) ([]model.Message, error) {
	s.mem.mu.Lock()
	defer s.mem.mu.Unlock()

	var out []model.Message
	for _, msg := range s.mem.messages {
		if msg.ConversationID == conversationID {
			out = append(out, msg)
		}
	}
	// Oldest first. Timestamps from the same request can be equal, so fall
	// back to id order, which is assignment order.
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].CreatedAt.Before(out[j].CreatedAt)
	})
	return out, nil
}
