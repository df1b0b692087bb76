package model

import "time"

// Conversation is a thread of messages about one repository.
// Created on the first explain call for a URL; append-only after that
// (there is no deletion or rename API).
type Conversation struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
}
