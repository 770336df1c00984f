package memory

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inclusive-jobs/server/internal/model"
)

func TestSessionRepository_SetAndGet(t *testing.T) {
	repo := NewSessionRepository()

	assert.Nil(t, repo.Get())

	user := &model.User{
		ID:       uuid.New(),
		Type:     model.UserTypeEmployee,
		FullName: "Айгерим Санова",
		Email:    "aigerim@example.com",
	}
	repo.Set(user)

	got := repo.Get()
	require.NotNil(t, got)
	assert.Equal(t, user.ID, got.ID)

	// The store hands out copies, not the shared record.
	got.FullName = "changed"
	assert.Equal(t, "Айгерим Санова", repo.Get().FullName)
}

func TestSessionRepository_ClearLeavesOtherStoresIntact(t *testing.T) {
	session := NewSessionRepository()
	catalog := NewCatalogRepository()
	resumes := NewResumeRepository()
	applications := NewApplicationRepository()

	user := &model.User{ID: uuid.New(), Type: model.UserTypeEmployee, FullName: "Айгерим Санова"}
	session.Set(user)

	job, err := catalog.Add(validJob())
	require.NoError(t, err)
	resume, err := resumes.Save(model.Resume{UserID: user.ID, FullName: user.FullName, FileKey: "resumes/a.pdf"})
	require.NoError(t, err)
	_, err = applications.Add(model.Application{JobID: job.ID, UserID: user.ID, ResumeID: resume.ID})
	require.NoError(t, err)

	session.Set(nil)

	assert.Nil(t, session.Get())
	assert.Len(t, catalog.List(), 1)
	assert.Len(t, applications.List(), 1)
	_, err = resumes.GetByUserID(user.ID)
	assert.NoError(t, err)
}
