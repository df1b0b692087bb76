package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"reex.app/server/common/llm"
	"reex.app/server/common/logger"
	"reex.app/server/internal/github"
	"reex.app/server/internal/model"
	"reex.app/server/internal/prompt"
	"reex.app/server/internal/store"
)

// completionTimeout bounds a single LLM call. Providers can hang
// indefinitely on their end; a request must not.
const completionTimeout = 30 * time.Second

// Safe responses returned when the provider succeeds but produces no text.
const (
	explainFallback = "I couldn't generate an explanation for this repository. Please try again."
	chatFallback    = "I'm sorry, I couldn't process your question. Please try asking in a different way."
)

// RepoFetcher is the GitHub capability the explain flow depends on.
// Implemented by github.Client; tests substitute a fake.
type RepoFetcher interface {
	Exists(ctx context.Context, owner, repo string) bool
	Readme(ctx context.Context, owner, repo string) (string, error)
	Tree(ctx context.Context, owner, repo string) (string, error)
	KeyFiles(ctx context.Context, owner, repo string) map[string]string
}

type ExplainResult struct {
	Explanation    string
	ConversationID int64
	Context        model.RepoContext
}

type ExplainService interface {
	Explain(ctx context.Context, rawURL string, conversationID *int64) (*ExplainResult, error)
	Chat(ctx context.Context, message string, conversationID int64, repoContext *model.RepoContext) (string, error)
}

type explainService struct {
	fetcher       RepoFetcher
	completer     llm.Client
	conversations store.ConversationStore
	messages      store.MessageStore
	maxTokens     int
}

func NewExplainService(
	fetcher RepoFetcher,
	completer llm.Client,
	conversations store.ConversationStore,
	messages store.MessageStore,
	maxTokens int,
) ExplainService {
	return &explainService{
		fetcher:       fetcher,
		completer:     completer,
		conversations: conversations,
		messages:      messages,
		maxTokens:     maxTokens,
	}
}

// Explain fetches a repository's context, generates an explanation and
// records the exchange. Fails fast on invalid URLs and missing
// repositories before any completion call is made. Tree and key-file
// fetches are supplementary and degrade to empty context on failure.
func (s *explainService) Explain(ctx context.Context, rawURL string, conversationID *int64) (*ExplainResult, error) {
	ref, err := github.ParseURL(rawURL)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithLogFields(ctx, logger.LogFields{
		Owner:     logger.Ptr(ref.Owner),
		Repo:      logger.Ptr(ref.Repo),
		Component: "service.explain",
	})

	sc := logger.StartSpan(ctx, "explain.repository")
	defer sc.End()
	ctx = sc.Context()

	if !s.fetcher.Exists(ctx, ref.Owner, ref.Repo) {
		slog.InfoContext(ctx, "repository does not exist or is private")
		return nil, ErrRepositoryNotFound
	}

	readme, err := s.fetcher.Readme(ctx, ref.Owner, ref.Repo)
	if err != nil {
		return nil, err
	}

	rc := model.RepoContext{Readme: readme}
	if structure, err := s.fetcher.Tree(ctx, ref.Owner, ref.Repo); err != nil {
		slog.WarnContext(ctx, "failed to fetch repository tree", "error", err)
	} else {
		rc.Structure = structure
	}
	rc.KeyFiles = s.fetcher.KeyFiles(ctx, ref.Owner, ref.Repo)

	system, user := prompt.Explain(ref.URL, rc)
	slog.DebugContext(ctx, "explain prompt built", "prompt_preview", logger.Truncate(user, 200))

	cctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	explanation, err := s.completer.Complete(cctx, llm.Request{
		SystemPrompt: system,
		UserPrompt:   user,
		MaxTokens:    s.maxTokens,
		Fallback:     explainFallback,
	})
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "explanation completion failed", "error", err)
		return nil, ErrCompletionFailed
	}

	conv, err := s.resolveConversation(ctx, conversationID, ref.FullName())
	if err != nil {
		return nil, err
	}

	if _, err := s.messages.Create(ctx, conv.ID, rawURL, true); err != nil {
		return nil, fmt.Errorf("saving user message: %w", err)
	}
	if _, err := s.messages.Create(ctx, conv.ID, explanation, false); err != nil {
		return nil, fmt.Errorf("saving assistant message: %w", err)
	}

	slog.InfoContext(ctx, "repository explained",
		"conversation_id", conv.ID,
		"readme_chars", len(readme),
		"key_files", len(rc.KeyFiles),
	)

	return &ExplainResult{
		Explanation:    explanation,
		ConversationID: conv.ID,
		Context:        rc,
	}, nil
}

// Chat answers a follow-up question inside an existing conversation.
// The user message is recorded before the completion call, so a failed
// completion still leaves the question in the transcript.
func (s *explainService) Chat(ctx context.Context, message string, conversationID int64, repoContext *model.RepoContext) (string, error) {
	ctx = logger.WithLogFields(ctx, logger.LogFields{
		ConversationID: logger.Ptr(conversationID),
		Component:      "service.explain",
	})

	sc := logger.StartSpan(ctx, "explain.chat")
	defer sc.End()
	ctx = sc.Context()

	if _, err := s.conversations.GetByID(ctx, conversationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return "", ErrConversationNotFound
		}
		return "", fmt.Errorf("loading conversation: %w", err)
	}

	if _, err := s.messages.Create(ctx, conversationID, message, true); err != nil {
		return "", fmt.Errorf("saving user message: %w", err)
	}

	system, user := prompt.Chat(message, repoContext)

	cctx, cancel := context.WithTimeout(ctx, completionTimeout)
	defer cancel()

	response, err := s.completer.Complete(cctx, llm.Request{
		SystemPrompt: system,
		UserPrompt:   user,
		MaxTokens:    s.maxTokens,
		Temperature:  llm.Temp(0.7),
		Fallback:     chatFallback,
	})
	if err != nil {
		sc.RecordError(err)
		slog.ErrorContext(ctx, "chat completion failed", "error", err)
		return "", ErrCompletionFailed
	}

	if _, err := s.messages.Create(ctx, conversationID, response, false); err != nil {
		return "", fmt.Errorf("saving assistant message: %w", err)
	}

	return response, nil
}

func (s *explainService) resolveConversation(ctx context.Context, conversationID *int64, title string) (*model.Conversation, error) {
	if conversationID != nil {
		conv, err := s.conversations.GetByID(ctx, *conversationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil, ErrConversationNotFound
			}
			return nil, fmt.Errorf("loading conversation: %w", err)
		}
		return conv, nil
	}

	conv, err := s.conversations.Create(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("creating conversation: %w", err)
	}
	return conv, nil
}
