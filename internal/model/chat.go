package model

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole discriminates chat turn authors.
type ChatRole string

const (
	// ChatRoleUser is a turn written by the user.
	ChatRoleUser ChatRole = "user"
	// ChatRoleAssistant is a turn produced by the assistant.
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatTurn is a single message in a user's assistant conversation.
type ChatTurn struct {
	Role      ChatRole
	Content   string
	CreatedAt time.Time
}

// ChatStore keeps per-user assistant conversations in order.
type ChatStore interface {
	Append(userID uuid.UUID, turn ChatTurn)
	History(userID uuid.UUID) []ChatTurn
}
