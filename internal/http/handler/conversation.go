package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"reex.app/server/internal/http/dto"
	"reex.app/server/internal/service"
)

type ConversationHandler struct {
	conversationService service.ConversationService
}

func NewConversationHandler(conversationService service.ConversationService) *ConversationHandler {
	return &ConversationHandler{conversationService: conversationService}
}

func (h *ConversationHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	conversations, err := h.conversationService.List(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch conversations"})
		return
	}

	resp := make([]dto.ConversationResponse, 0, len(conversations))
	for _, conv := range conversations {
		resp = append(resp, *dto.ToConversationResponse(&conv))
	}

	c.JSON(http.StatusOK, resp)
}

func (h *ConversationHandler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	var req dto.CreateConversationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "invalid request body", "error", err)
		c.JSON(http.StatusBadRequest, gin.H{"message": "A conversation title is required"})
		return
	}

	conv, err := h.conversationService.Create(ctx, req.Title)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to create conversation"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToConversationResponse(conv))
}

func (h *ConversationHandler) Messages(c *gin.Context) {
	ctx := c.Request.Context()

	conversationID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid conversation ID"})
		return
	}

	messages, err := h.conversationService.Messages(ctx, conversationID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Failed to fetch messages"})
		return
	}

	resp := make([]dto.MessageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, dto.ToMessageResponse(msg))
	}

	c.JSON(http.StatusOK, resp)
}
