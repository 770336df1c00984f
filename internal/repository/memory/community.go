package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/model"
)

var (
	_ model.ForumStore   = (*ForumRepository)(nil)
	_ model.SupportStore = (*SupportRepository)(nil)
)

// ForumRepository keeps community forum posts in memory, newest last.
type ForumRepository struct {
	mu    sync.RWMutex
	posts []model.ForumPost
}

func NewForumRepository() *ForumRepository {
	return &ForumRepository{}
}

func (r *ForumRepository) Add(post model.ForumPost) (model.ForumPost, error) {
	if post.Content == "" {
		return model.ForumPost{}, model.NewValidationError("content")
	}
	if post.Author == "" {
		return model.ForumPost{}, model.NewValidationError("author")
	}

	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	if post.CreatedAt.IsZero() {
		post.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.posts = append(r.posts, post)

	return post, nil
}

func (r *ForumRepository) List() []model.ForumPost {
	r.mu.RLock()
	defer r.mu.RUnlock()

	posts := make([]model.ForumPost, len(r.posts))
	copy(posts, r.posts)

	return posts
}

// SupportRepository keeps support contact form submissions in memory.
type SupportRepository struct {
	mu       sync.RWMutex
	messages []model.SupportMessage
}

func NewSupportRepository() *SupportRepository {
	return &SupportRepository{}
}

func (r *SupportRepository) Add(message model.SupportMessage) (model.SupportMessage, error) {
	if message.Name == "" {
		return model.SupportMessage{}, model.NewValidationError("name")
	}
	if message.Email == "" {
		return model.SupportMessage{}, model.NewValidationError("email")
	}
	if message.Message == "" {
		return model.SupportMessage{}, model.NewValidationError("message")
	}

	if message.ID == uuid.Nil {
		message.ID = uuid.New()
	}
	if message.CreatedAt.IsZero() {
		message.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.messages = append(r.messages, message)

	return message, nil
}

func (r *SupportRepository) List() []model.SupportMessage {
	r.mu.RLock()
	defer r.mu.RUnlock()

	messages := make([]model.SupportMessage, len(r.messages))
	copy(messages, r.messages)

	return messages
}
