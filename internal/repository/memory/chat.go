package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/model"
)

var _ model.ChatStore = (*ChatRepository)(nil)

// ChatRepository keeps per-user assistant conversations in memory.
type ChatRepository struct {
	mu    sync.RWMutex
	turns map[uuid.UUID][]model.ChatTurn
}

func NewChatRepository() *ChatRepository {
	return &ChatRepository{turns: make(map[uuid.UUID][]model.ChatTurn)}
}

func (r *ChatRepository) Append(userID uuid.UUID, turn model.ChatTurn) {
	if turn.CreatedAt.IsZero() {
		turn.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.turns[userID] = append(r.turns[userID], turn)
}

func (r *ChatRepository) History(userID uuid.UUID) []model.ChatTurn {
	r.mu.RLock()
	defer r.mu.RUnlock()

	turns := make([]model.ChatTurn, len(r.turns[userID]))
	copy(turns, r.turns[userID])

	return turns
}
