package model

import "time"

// Message is one turn in a conversation. Messages are written in
// user/assistant pairs within a single request, so retrieval order by
// creation time matches id assignment order.
type Message struct {
	ID             int64     `json:"id"`
	ConversationID int64     `json:"conversation_id"`
	Content        string    `json:"content"`
	IsUser         bool      `json:"is_user"`
	CreatedAt      time.Time `json:"created_at"`
}
