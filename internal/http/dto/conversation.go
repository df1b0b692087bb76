package dto

import (
	"time"

	"reex.app/server/internal/model"
)

type CreateConversationRequest struct {
	Title string `json:"title" binding:"required,min=1,max=255"`
}

type ConversationResponse struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
}

func ToConversationResponse(c *model.Conversation) *ConversationResponse {
	return &ConversationResponse{
		ID:        c.ID,
		Title:     c.Title,
		CreatedAt: c.CreatedAt,
	}
}

type MessageResponse struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversationId"`
	Content        string    `json:"content"`
	IsUser         bool      `json:"isUser"`
	CreatedAt      time.Time `json:"createdAt"`
}

func ToMessageResponse(m model.Message) MessageResponse {
	return MessageResponse{
		ID:             m.ID,
		ConversationID: m.ConversationID,
		Content:        m.Content,
		IsUser:         m.IsUser,
		CreatedAt:      m.CreatedAt,
	}
}
