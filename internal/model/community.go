package model

import (
	"time"

	"github.com/google/uuid"
)

// ForumPost is a community forum entry.
type ForumPost struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	Author    string
	Content   string
	CreatedAt time.Time
}

// ForumStore defines storage operations for forum posts.
type ForumStore interface {
	Add(post ForumPost) (ForumPost, error)
	List() []ForumPost
}

// SupportMessage is a message submitted through the support contact form.
type SupportMessage struct {
	ID        uuid.UUID
	Name      string
	Email     string
	Message   string
	CreatedAt time.Time
}

// SupportStore defines storage operations for support messages.
type SupportStore interface {
	Add(message SupportMessage) (SupportMessage, error)
	List() []SupportMessage
}
