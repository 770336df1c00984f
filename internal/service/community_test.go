package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/inclusive-jobs/server/internal/model"
	"github.com/inclusive-jobs/server/internal/testutil"
)

func TestForum_Post(t *testing.T) {
	userID := uuid.New()

	t.Run("author name resolved from profile", func(t *testing.T) {
		forumStore := &MockForumStore{}
		userStore := &MockUserStore{}

		userStore.On("GetByID", userID).Return(model.User{ID: userID, FullName: "Анна Смирнова"}, nil)
		forumStore.On("Add", mock.MatchedBy(func(p model.ForumPost) bool {
			return p.Author == "Анна Смирнова" && p.UserID == userID
		})).Return(model.ForumPost{ID: uuid.New(), Author: "Анна Смирнова"}, nil)

		service := NewForum(forumStore, userStore, testutil.MakeNoopLogger())

		post, err := service.Post(context.Background(), userID, "Поделюсь опытом удалённой работы")
		require.NoError(t, err)
		assert.Equal(t, "Анна Смирнова", post.Author)

		forumStore.AssertExpectations(t)
	})

	t.Run("unknown user", func(t *testing.T) {
		forumStore := &MockForumStore{}
		userStore := &MockUserStore{}

		userStore.On("GetByID", userID).Return(model.User{}, model.ErrNotFound)

		service := NewForum(forumStore, userStore, testutil.MakeNoopLogger())

		_, err := service.Post(context.Background(), userID, "текст")
		assert.ErrorIs(t, err, model.ErrNotFound)
		forumStore.AssertNotCalled(t, "Add", mock.Anything)
	})
}

func TestSupport_Submit(t *testing.T) {
	supportStore := &MockSupportStore{}
	supportStore.On("Add", mock.MatchedBy(func(m model.SupportMessage) bool {
		return m.Email == "anna@example.com"
	})).Return(model.SupportMessage{ID: uuid.New(), Email: "anna@example.com"}, nil)

	service := NewSupport(supportStore, testutil.MakeNoopLogger())

	saved, err := service.Submit(context.Background(), "Анна", "anna@example.com", "Не открывается страница вакансий")
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, saved.ID)

	supportStore.AssertExpectations(t)
}
