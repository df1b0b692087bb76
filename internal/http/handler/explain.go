package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"reex.app/server/internal/github"
	"reex.app/server/internal/http/dto"
	"reex.app/server/internal/model"
	"reex.app/server/internal/service"
)

type ExplainHandler struct {
	explainService service.ExplainService
}

func NewExplainHandler(explainService service.ExplainService) *ExplainHandler {
	return &ExplainHandler{explainService: explainService}
}

func (h *ExplainHandler) Explain(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ExplainRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "A GitHub repository URL is required"})
		return
	}

	result, err := h.explainService.Explain(ctx, req.URL, req.ConversationID)
	if err != nil {
		status, msg := explainErrorStatus(err)
		c.JSON(status, gin.H{"message": msg})
		return
	}

	c.JSON(http.StatusOK, dto.ExplainResponse{
		Explanation:    result.Explanation,
		ConversationID: result.ConversationID,
		RepoContext:    result.Context.Readme,
		RepoStructure:  result.Context.Structure,
		KeyFiles:       result.Context.KeyFiles,
	})
}

func (h *ExplainHandler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "A message and conversation ID are required"})
		return
	}

	rc := &model.RepoContext{
		Readme:    req.RepoContext,
		Structure: req.RepoStructure,
		KeyFiles:  req.KeyFiles,
	}

	response, err := h.explainService.Chat(ctx, req.Message, req.ConversationID, rc)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrConversationNotFound):
			c.JSON(http.StatusNotFound, gin.H{"message": "Conversation not found"})
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to process chat message"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ChatResponse{Response: response})
}

func explainErrorStatus(err error) (int, string) {
	switch {
	case errors.Is(err, github.ErrInvalidURL):
		return http.StatusBadRequest, "Invalid GitHub repository URL"
	case errors.Is(err, service.ErrRepositoryNotFound):
		return http.StatusNotFound, "Repository not found or is private"
	case errors.Is(err, github.ErrReadmeNotFound):
		return http.StatusNotFound, "README.md not found in this repository"
	case errors.Is(err, service.ErrConversationNotFound):
		return http.StatusNotFound, "Conversation not found"
	default:
		return http.StatusInternalServerError, "Failed to explain repository. Please try again."
	}
}
