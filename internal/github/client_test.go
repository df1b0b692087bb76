package github_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"reex.app/server/internal/github"
)

// newClient points both API and raw-content bases at the same test server.
func newClient(server *httptest.Server) *github.Client {
	return github.NewClient(github.Config{
		APIBaseURL: server.URL,
		RawBaseURL: server.URL,
		Timeout:    2 * time.Second,
	})
}

var _ = Describe("Client", func() {
	var ctx context.Context

	BeforeEach(func() {
		ctx = context.Background()
	})

	Describe("Exists", func() {
		It("returns true when the metadata lookup succeeds", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Path).To(Equal("/repos/octocat/Hello-World"))
				w.Write([]byte(`{"full_name":"octocat/Hello-World"}`))
			}))
			defer server.Close()

			Expect(newClient(server).Exists(ctx, "octocat", "Hello-World")).To(BeTrue())
		})

		It("returns false on a 404", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			Expect(newClient(server).Exists(ctx, "nobody", "nothing")).To(BeFalse())
		})

		It("fails closed on transport errors", func() {
			server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
			server.Close()

			Expect(newClient(server).Exists(ctx, "octocat", "Hello-World")).To(BeFalse())
		})
	})

	Describe("Readme", func() {
		It("walks candidates in order and returns the first non-empty success", func() {
			var requested []string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				requested = append(requested, r.URL.Path)
				if r.URL.Path == "/octocat/Hello-World/main/readme.md" {
					w.Write([]byte("# lowercase readme"))
					return
				}
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			readme, err := newClient(server).Readme(ctx, "octocat", "Hello-World")
			Expect(err).NotTo(HaveOccurred())
			Expect(readme).To(Equal("# lowercase readme"))
			Expect(requested).To(Equal([]string{
				"/octocat/Hello-World/main/README.md",
				"/octocat/Hello-World/master/README.md",
				"/octocat/Hello-World/main/readme.md",
			}))
		})

		It("skips candidates that succeed with a blank body", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path == "/octocat/Hello-World/main/README.md" {
					w.Write([]byte("   \n\t"))
					return
				}
				w.Write([]byte("# from master"))
			}))
			defer server.Close()

			readme, err := newClient(server).Readme(ctx, "octocat", "Hello-World")
			Expect(err).NotTo(HaveOccurred())
			Expect(readme).To(Equal("# from master"))
		})

		It("fails with ErrReadmeNotFound when every candidate misses", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			_, err := newClient(server).Readme(ctx, "octocat", "Hello-World")
			Expect(err).To(MatchError(github.ErrReadmeNotFound))
		})
	})

	Describe("Tree", func() {
		writeTree := func(w http.ResponseWriter, entries []map[string]string, truncated bool) {
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]any{"tree": entries, "truncated": truncated})
		}

		It("lists blob paths only, newline-joined", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				Expect(r.URL.Query().Get("recursive")).To(Equal("1"))
				writeTree(w, []map[string]string{
					{"path": "src", "type": "tree"},
					{"path": "src/main.go", "type": "blob"},
					{"path": "go.mod", "type": "blob"},
				}, false)
			}))
			defer server.Close()

			structure, err := newClient(server).Tree(ctx, "octocat", "Hello-World")
			Expect(err).NotTo(HaveOccurred())
			Expect(structure).To(Equal("src/main.go\ngo.mod"))
		})

		It("caps the listing at 100 blobs", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				entries := make([]map[string]string, 0, 150)
				for i := 0; i < 150; i++ {
					entries = append(entries, map[string]string{
						"path": fmt.Sprintf("file%03d.txt", i),
						"type": "blob",
					})
				}
				writeTree(w, entries, true)
			}))
			defer server.Close()

			structure, err := newClient(server).Tree(ctx, "octocat", "Hello-World")
			Expect(err).NotTo(HaveOccurred())
			Expect(strings.Split(structure, "\n")).To(HaveLen(100))
		})

		It("falls back to master when main is missing", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if strings.HasSuffix(r.URL.Path, "/git/trees/main") {
					w.WriteHeader(http.StatusNotFound)
					return
				}
				writeTree(w, []map[string]string{{"path": "README.md", "type": "blob"}}, false)
			}))
			defer server.Close()

			structure, err := newClient(server).Tree(ctx, "octocat", "Hello-World")
			Expect(err).NotTo(HaveOccurred())
			Expect(structure).To(Equal("README.md"))
		})

		It("fails when no branch has a tree", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			_, err := newClient(server).Tree(ctx, "octocat", "Hello-World")
			Expect(err).To(HaveOccurred())
		})
	})

	Describe("KeyFiles", func() {
		It("fetches allowlisted files and skips empty or oversized bodies", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				switch {
				case strings.HasSuffix(r.URL.Path, "/main/go.mod"):
					w.Write([]byte("module example.com/demo"))
				case strings.HasSuffix(r.URL.Path, "/main/Makefile"):
					w.Write([]byte("  ")) // blank, skipped
				case strings.HasSuffix(r.URL.Path, "/main/package.json"):
					w.Write([]byte(strings.Repeat("x", 10001))) // oversized, skipped
				default:
					w.WriteHeader(http.StatusNotFound)
				}
			}))
			defer server.Close()

			files := newClient(server).KeyFiles(ctx, "octocat", "Hello-World")
			Expect(files).To(HaveLen(1))
			Expect(files["go.mod"]).To(Equal("module example.com/demo"))
		})

		It("falls back to master per file", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if strings.HasSuffix(r.URL.Path, "/master/Dockerfile") {
					w.Write([]byte("FROM golang:1.24"))
					return
				}
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			files := newClient(server).KeyFiles(ctx, "octocat", "Hello-World")
			Expect(files).To(Equal(map[string]string{"Dockerfile": "FROM golang:1.24"}))
		})

		It("returns an empty map when nothing is fetchable", func() {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			Expect(newClient(server).KeyFiles(ctx, "octocat", "Hello-World")).To(BeEmpty())
		})
	})
})
