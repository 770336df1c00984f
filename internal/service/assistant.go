package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/generation"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

// Assistant implements the AI chat widget's request/response loop.
type Assistant struct {
	chatStore model.ChatStore
	userStore model.UserStore
	generator model.Generator
	logger    *logger.Logger

	// One chat call in flight at a time.
	chatBusy atomic.Bool
}

func NewAssistant(
	chatStore model.ChatStore,
	userStore model.UserStore,
	generator model.Generator,
	logger *logger.Logger,
) *Assistant {
	return &Assistant{
		chatStore: chatStore,
		userStore: userStore,
		generator: generator,
		logger:    logger,
	}
}

// Chat sends the user's message to the assistant and appends both turns to
// the conversation. A failed generation call leaves the conversation
// untouched: no partial turn is written.
func (s *Assistant) Chat(ctx context.Context, userID uuid.UUID, message string) (model.ChatTurn, error) {
	if message == "" {
		return model.ChatTurn{}, model.NewValidationError("message")
	}

	if _, err := s.userStore.GetByID(userID); err != nil {
		return model.ChatTurn{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	if !s.chatBusy.CompareAndSwap(false, true) {
		return model.ChatTurn{}, model.ErrGenerationBusy
	}
	defer s.chatBusy.Store(false)

	response, err := s.generator.Generate(ctx, generation.AssistantPrompt(message))
	if err != nil {
		s.logger.Error("Assistant service: chat failed", "user_id", userID, "error", err.Error())
		return model.ChatTurn{}, &model.ServiceError{Op: "chat with assistant", Err: err}
	}

	s.chatStore.Append(userID, model.ChatTurn{Role: model.ChatRoleUser, Content: message})
	reply := model.ChatTurn{Role: model.ChatRoleAssistant, Content: response}
	s.chatStore.Append(userID, reply)

	return reply, nil
}

// History returns the user's conversation in order.
func (s *Assistant) History(_ context.Context, userID uuid.UUID) []model.ChatTurn {
	return s.chatStore.History(userID)
}
