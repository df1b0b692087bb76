package github

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"reex.app/server/internal/model"
)

// ErrInvalidURL is returned when the input is not a usable GitHub
// repository URL. Purely syntactic; parsing never touches the network.
var ErrInvalidURL = errors.New("invalid GitHub repository URL")

const canonicalHost = "github.com"

// ParseURL extracts owner and repo from a GitHub repository URL.
// The first two non-empty path segments are taken verbatim, case preserved;
// anything after them (tree/blob paths, fragments) is ignored.
func ParseURL(raw string) (model.RepoRef, error) {
	parsed, err := url.Parse(raw)
	if err != nil {
		return model.RepoRef{}, fmt.Errorf("%w: %s", ErrInvalidURL, raw)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return model.RepoRef{}, fmt.Errorf("%w: missing scheme", ErrInvalidURL)
	}
	if parsed.Hostname() != canonicalHost {
		return model.RepoRef{}, fmt.Errorf("%w: host must be %s", ErrInvalidURL, canonicalHost)
	}

	var segments []string
	for _, part := range strings.Split(parsed.Path, "/") {
		if part != "" {
			segments = append(segments, part)
		}
	}
	if len(segments) < 2 {
		return model.RepoRef{}, fmt.Errorf("%w: expected /owner/repo path", ErrInvalidURL)
	}

	return model.RepoRef{
		Owner: segments[0],
		Repo:  segments[1],
		URL:   raw,
	}, nil
}
