package github

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
)

// ErrReadmeNotFound is returned when every README candidate fails.
// Distinct from a missing repository so the UI can show a specific hint.
var ErrReadmeNotFound = errors.New("README.md not found in this repository")

const (
	defaultAPIBaseURL = "https://api.github.com"
	defaultRawBaseURL = "https://raw.githubusercontent.com"

	defaultTimeout = 10 * time.Second

	// Bounds on the supplementary context so prompts stay a sane size.
	maxTreeEntries  = 100
	maxKeyFileChars = 10000
)

// readmeCandidates is tried in order and the order is load-bearing: some
// repositories have both main and master with different content, so the
// precedence below decides which copy wins.
var readmeCandidates = []string{
	"main/README.md",
	"master/README.md",
	"main/readme.md",
	"master/readme.md",
}

// branches tried for tree and key-file lookups, default branch first.
var branchFallbacks = []string{"main", "master"}

// keyFileNames is the allowlist of well-known project files fetched as
// supplementary context for the explain prompt.
var keyFileNames = []string{
	"package.json",
	"go.mod",
	"requirements.txt",
	"pyproject.toml",
	"Cargo.toml",
	"pom.xml",
	"build.gradle",
	"Makefile",
	"Dockerfile",
	"docker-compose.yml",
	"tsconfig.json",
	"vite.config.ts",
	"next.config.js",
	"composer.json",
	"Gemfile",
}

// Config holds GitHub client configuration. Base URLs are overridable so
// tests can point the client at a local server.
type Config struct {
	APIBaseURL string
	RawBaseURL string
	Token      string // optional: raises rate limits, not required
	Timeout    time.Duration
}

// Client fetches repository metadata and file content from GitHub's REST
// and raw-content surfaces. Every call is bounded by the client timeout.
type Client struct {
	http    *resty.Client
	apiBase string
	rawBase string
}

func NewClient(cfg Config) *Client {
	apiBase := cfg.APIBaseURL
	if apiBase == "" {
		apiBase = defaultAPIBaseURL
	}
	rawBase := cfg.RawBaseURL
	if rawBase == "" {
		rawBase = defaultRawBaseURL
	}
	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}

	http := resty.New().
		SetTimeout(timeout).
		SetHeader("Accept", "application/vnd.github+json").
		SetHeader("User-Agent", "reex-server")
	if cfg.Token != "" {
		http.SetAuthToken(cfg.Token)
	}

	return &Client{
		http:    http,
		apiBase: apiBase,
		rawBase: rawBase,
	}
}

// Exists reports whether owner/repo resolves on the metadata API.
// Any non-success status or transport failure counts as "does not exist":
// a private repository is indistinguishable from a missing one here, and
// failing closed keeps us from fetching content we were never shown.
func (c *Client) Exists(ctx context.Context, owner, repo string) bool {
	resp, err := c.http.R().
		SetContext(ctx).
		Get(fmt.Sprintf("%s/repos/%s/%s", c.apiBase, owner, repo))
	if err != nil {
		slog.WarnContext(ctx, "repository existence check failed", "error", err)
		return false
	}
	return resp.IsSuccess()
}

// Readme fetches the repository README, walking the candidate list in order
// and returning the first success with a non-empty trimmed body.
func (c *Client) Readme(ctx context.Context, owner, repo string) (string, error) {
	for _, candidate := range readmeCandidates {
		resp, err := c.http.R().
			SetContext(ctx).
			Get(fmt.Sprintf("%s/%s/%s/%s", c.rawBase, owner, repo, candidate))
		if err != nil {
			continue
		}
		if !resp.IsSuccess() {
			continue
		}
		body := string(resp.Body())
		if strings.TrimSpace(body) == "" {
			continue
		}
		return body, nil
	}
	return "", ErrReadmeNotFound
}

type treeResponse struct {
	Tree []struct {
		Path string `json:"path"`
		Type string `json:"type"`
	} `json:"tree"`
	Truncated bool `json:"truncated"`
}

// Tree fetches a recursive file listing, capped at maxTreeEntries blob
// paths and newline-joined. Callers treat failure as "no structure
// available" rather than a fatal error.
func (c *Client) Tree(ctx context.Context, owner, repo string) (string, error) {
	var lastErr error
	for _, branch := range branchFallbacks {
		var tree treeResponse
		resp, err := c.http.R().
			SetContext(ctx).
			SetQueryParam("recursive", "1").
			SetResult(&tree).
			Get(fmt.Sprintf("%s/repos/%s/%s/git/trees/%s", c.apiBase, owner, repo, branch))
		if err != nil {
			lastErr = err
			continue
		}
		if !resp.IsSuccess() {
			lastErr = fmt.Errorf("tree fetch for %s returned %s", branch, resp.Status())
			continue
		}

		paths := make([]string, 0, maxTreeEntries)
		for _, entry := range tree.Tree {
			if entry.Type != "blob" {
				continue
			}
			paths = append(paths, entry.Path)
			if len(paths) == maxTreeEntries {
				break
			}
		}
		return strings.Join(paths, "\n"), nil
	}
	return "", fmt.Errorf("fetching tree for %s/%s: %w", owner, repo, lastErr)
}

// KeyFiles fetches the allowlisted project files, trying main then master
// per file. Empty bodies and bodies over maxKeyFileChars are skipped to
// bound prompt size. Never fails; whatever was fetched is returned.
func (c *Client) KeyFiles(ctx context.Context, owner, repo string) map[string]string {
	files := make(map[string]string)
	for _, name := range keyFileNames {
		for _, branch := range branchFallbacks {
			resp, err := c.http.R().
				SetContext(ctx).
				Get(fmt.Sprintf("%s/%s/%s/%s/%s", c.rawBase, owner, repo, branch, name))
			if err != nil || !resp.IsSuccess() {
				continue
			}
			body := string(resp.Body())
			if strings.TrimSpace(body) == "" || len(body) > maxKeyFileChars {
				break
			}
			files[name] = body
			break
		}
	}
	return files
}
