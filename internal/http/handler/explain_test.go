package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"

	"github.com/gin-gonic/gin"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"reex.app/server/internal/github"
	"reex.app/server/internal/http/handler"
	"reex.app/server/internal/model"
	"reex.app/server/internal/service"
)

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, err := json.Marshal(body)
	Expect(err).NotTo(HaveOccurred())

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBuffer(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

var _ = Describe("ExplainHandler", func() {
	var (
		router *gin.Engine
		svc    *mockExplainService
	)

	BeforeEach(func() {
		gin.SetMode(gin.TestMode)
		router = gin.New()
		svc = &mockExplainService{}
		h := handler.NewExplainHandler(svc)
		router.POST("/api/explain", h.Explain)
		router.POST("/api/chat", h.Chat)
	})

	Describe("POST /api/explain", func() {
		It("returns the explanation with the repository context", func() {
			svc.explainFn = func(_ context.Context, rawURL string, _ *int64) (*service.ExplainResult, error) {
				Expect(rawURL).To(Equal("https://github.com/octocat/Hello-World"))
				return &service.ExplainResult{
					Explanation:    "An example repository.",
					ConversationID: 1,
					Context: model.RepoContext{
						Readme:    "# Hello",
						Structure: "README.md",
					},
				}, nil
			}

			w := postJSON(router, "/api/explain", map[string]any{
				"url": "https://github.com/octocat/Hello-World",
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]any
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["explanation"]).To(Equal("An example repository."))
			Expect(resp["conversationId"]).To(BeEquivalentTo(1))
			Expect(resp["repoContext"]).To(Equal("# Hello"))
			Expect(resp["repoStructure"]).To(Equal("README.md"))
		})

		It("passes a supplied conversation id through", func() {
			var got *int64
			svc.explainFn = func(_ context.Context, _ string, conversationID *int64) (*service.ExplainResult, error) {
				got = conversationID
				return &service.ExplainResult{ConversationID: 7}, nil
			}

			w := postJSON(router, "/api/explain", map[string]any{
				"url":            "https://github.com/octocat/Hello-World",
				"conversationId": 7,
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			Expect(got).NotTo(BeNil())
			Expect(*got).To(Equal(int64(7)))
		})

		It("returns 400 when the url is missing", func() {
			w := postJSON(router, "/api/explain", map[string]any{})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		DescribeTable("maps service failures to status codes",
			func(err error, status int, message string) {
				svc.explainFn = func(_ context.Context, _ string, _ *int64) (*service.ExplainResult, error) {
					return nil, err
				}

				w := postJSON(router, "/api/explain", map[string]any{
					"url": "https://github.com/octocat/Hello-World",
				})

				Expect(w.Code).To(Equal(status))
				var resp map[string]string
				Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
				Expect(resp["message"]).To(Equal(message))
			},
			Entry("invalid url",
				fmt.Errorf("%w: host must be github.com", github.ErrInvalidURL),
				http.StatusBadRequest, "Invalid GitHub repository URL"),
			Entry("repository missing",
				service.ErrRepositoryNotFound,
				http.StatusNotFound, "Repository not found or is private"),
			Entry("readme missing",
				github.ErrReadmeNotFound,
				http.StatusNotFound, "README.md not found in this repository"),
			Entry("conversation missing",
				service.ErrConversationNotFound,
				http.StatusNotFound, "Conversation not found"),
			Entry("completion failure",
				service.ErrCompletionFailed,
				http.StatusInternalServerError, "Failed to explain repository. Please try again."),
			Entry("unclassified failure",
				errors.New("boom"),
				http.StatusInternalServerError, "Failed to explain repository. Please try again."),
		)
	})

	Describe("POST /api/chat", func() {
		It("returns the assistant response", func() {
			svc.chatFn = func(_ context.Context, message string, conversationID int64, rc *model.RepoContext) (string, error) {
				Expect(message).To(Equal("What license?"))
				Expect(conversationID).To(Equal(int64(3)))
				Expect(rc.Readme).To(Equal("MIT"))
				return "MIT license.", nil
			}

			w := postJSON(router, "/api/chat", map[string]any{
				"message":        "What license?",
				"conversationId": 3,
				"repoContext":    "MIT",
			})

			Expect(w.Code).To(Equal(http.StatusOK))
			var resp map[string]string
			Expect(json.Unmarshal(w.Body.Bytes(), &resp)).To(Succeed())
			Expect(resp["response"]).To(Equal("MIT license."))
		})

		It("returns 400 when the message is missing", func() {
			w := postJSON(router, "/api/chat", map[string]any{"conversationId": 3})
			Expect(w.Code).To(Equal(http.StatusBadRequest))
		})

		It("returns 404 for an unknown conversation", func() {
			svc.chatFn = func(_ context.Context, _ string, _ int64, _ *model.RepoContext) (string, error) {
				return "", service.ErrConversationNotFound
			}

			w := postJSON(router, "/api/chat", map[string]any{
				"message":        "hi",
				"conversationId": 999,
			})

			Expect(w.Code).To(Equal(http.StatusNotFound))
		})

		It("returns 500 on completion failure", func() {
			svc.chatFn = func(_ context.Context, _ string, _ int64, _ *model.RepoContext) (string, error) {
				return "", service.ErrCompletionFailed
			}

			w := postJSON(router, "/api/chat", map[string]any{
				"message":        "hi",
				"conversationId": 1,
			})

			Expect(w.Code).To(Equal(http.StatusInternalServerError))
		})
	})
})
