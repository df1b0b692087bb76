package service_test

import (
	"context"

	"reex.app/server/common/llm"
)

type mockRepoFetcher struct {
	existsFn   func(ctx context.Context, owner, repo string) bool
	readmeFn   func(ctx context.Context, owner, repo string) (string, error)
	treeFn     func(ctx context.Context, owner, repo string) (string, error)
	keyFilesFn func(ctx context.Context, owner, repo string) map[string]string

	existsCalls int
}

func (m *mockRepoFetcher) Exists(ctx context.Context, owner, repo string) bool {
	m.existsCalls++
	if m.existsFn != nil {
		return m.existsFn(ctx, owner, repo)
	}
	return true
}

func (m *mockRepoFetcher) Readme(ctx context.Context, owner, repo string) (string, error) {
	if m.readmeFn != nil {
		return m.readmeFn(ctx, owner, repo)
	}
	return "# README", nil
}

func (m *mockRepoFetcher) Tree(ctx context.Context, owner, repo string) (string, error) {
	if m.treeFn != nil {
		return m.treeFn(ctx, owner, repo)
	}
	return "", nil
}

func (m *mockRepoFetcher) KeyFiles(ctx context.Context, owner, repo string) map[string]string {
	if m.keyFilesFn != nil {
		return m.keyFilesFn(ctx, owner, repo)
	}
	return nil
}

type mockCompleter struct {
	completeFn func(ctx context.Context, req llm.Request) (string, error)

	completeCalls int
	lastRequest   llm.Request
}

func (m *mockCompleter) Complete(ctx context.Context, req llm.Request) (string, error) {
	m.completeCalls++
	m.lastRequest = req
	if m.completeFn != nil {
		return m.completeFn(ctx, req)
	}
	return "generated text", nil
}

func (m *mockCompleter) Model() string {
	return "mock-model"
}
