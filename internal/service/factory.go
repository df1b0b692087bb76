package service

import (
	"reex.app/server/common/llm"
	"reex.app/server/internal/store"
)

type Services struct {
	stores    *store.Stores
	fetcher   RepoFetcher
	completer llm.Client
	maxTokens int
}

func NewServices(stores *store.Stores, fetcher RepoFetcher, completer llm.Client, maxTokens int) *Services {
	return &Services{
		stores:    stores,
		fetcher:   fetcher,
		completer: completer,
		maxTokens: maxTokens,
	}
}

func (s *Services) Explain() ExplainService {
	return NewExplainService(s.fetcher, s.completer, s.stores.Conversations(), s.stores.Messages(), s.maxTokens)
}

func (s *Services) Conversations() ConversationService {
	return NewConversationService(s.stores.Conversations(), s.stores.Messages())
}
