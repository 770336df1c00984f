package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

// Forum implements the community forum feed.
type Forum struct {
	forumStore model.ForumStore
	userStore  model.UserStore
	logger     *logger.Logger
}

func NewForum(forumStore model.ForumStore, userStore model.UserStore, logger *logger.Logger) *Forum {
	return &Forum{forumStore: forumStore, userStore: userStore, logger: logger}
}

// Post publishes a forum entry under the user's name.
func (s *Forum) Post(_ context.Context, userID uuid.UUID, content string) (model.ForumPost, error) {
	user, err := s.userStore.GetByID(userID)
	if err != nil {
		return model.ForumPost{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	post, err := s.forumStore.Add(model.ForumPost{
		UserID:  user.ID,
		Author:  user.FullName,
		Content: content,
	})
	if err != nil {
		return model.ForumPost{}, fmt.Errorf("failed to add forum post: %w", err)
	}

	return post, nil
}

// Feed returns all posts, oldest first.
func (s *Forum) Feed(_ context.Context) []model.ForumPost {
	return s.forumStore.List()
}

// Support implements the support contact form.
type Support struct {
	supportStore model.SupportStore
	logger       *logger.Logger
}

func NewSupport(supportStore model.SupportStore, logger *logger.Logger) *Support {
	return &Support{supportStore: supportStore, logger: logger}
}

// Submit records a support request.
func (s *Support) Submit(_ context.Context, name, email, message string) (model.SupportMessage, error) {
	saved, err := s.supportStore.Add(model.SupportMessage{
		Name:    name,
		Email:   email,
		Message: message,
	})
	if err != nil {
		return model.SupportMessage{}, fmt.Errorf("failed to add support message: %w", err)
	}

	s.logger.Info("Support service: message received", "message_id", saved.ID)

	return saved, nil
}

// List returns all support messages, oldest first.
func (s *Support) List(_ context.Context) []model.SupportMessage {
	return s.supportStore.List()
}
