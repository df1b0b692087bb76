package service

import "errors"

// Sentinel errors the HTTP layer maps to status codes. User-facing
// messages live in the handlers; these stay terse.
var (
	ErrRepositoryNotFound   = errors.New("repository not found or is private")
	ErrConversationNotFound = errors.New("conversation not found")
	ErrCompletionFailed     = errors.New("completion failed")
)
