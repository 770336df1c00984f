package service

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/inclusive-jobs/server/internal/model"
)

// MockUserStore mocks the UserStore interface
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) Create(user model.User) (model.User, error) {
	args := m.Called(user)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByID(id uuid.UUID) (model.User, error) {
	args := m.Called(id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) GetByEmail(email string) (model.User, error) {
	args := m.Called(email)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockUserStore) Replace(user model.User) (model.User, error) {
	args := m.Called(user)
	return args.Get(0).(model.User), args.Error(1)
}

// MockSessionStore mocks the SessionStore interface
type MockSessionStore struct {
	mock.Mock
}

func (m *MockSessionStore) Set(user *model.User) {
	m.Called(user)
}

func (m *MockSessionStore) Get() *model.User {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.User)
}

// MockCatalogStore mocks the CatalogStore interface
type MockCatalogStore struct {
	mock.Mock
}

func (m *MockCatalogStore) Add(job model.Job) (model.Job, error) {
	args := m.Called(job)
	return args.Get(0).(model.Job), args.Error(1)
}

func (m *MockCatalogStore) List() []model.Job {
	args := m.Called()
	return args.Get(0).([]model.Job)
}

func (m *MockCatalogStore) GetByID(id uuid.UUID) (model.Job, error) {
	args := m.Called(id)
	return args.Get(0).(model.Job), args.Error(1)
}

func (m *MockCatalogStore) GetByEmployerID(employerID uuid.UUID) []model.Job {
	args := m.Called(employerID)
	return args.Get(0).([]model.Job)
}

// MockResumeStore mocks the ResumeStore interface
type MockResumeStore struct {
	mock.Mock
}

func (m *MockResumeStore) Save(resume model.Resume) (model.Resume, error) {
	args := m.Called(resume)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *MockResumeStore) GetByID(id uuid.UUID) (model.Resume, error) {
	args := m.Called(id)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *MockResumeStore) GetByUserID(userID uuid.UUID) (model.Resume, error) {
	args := m.Called(userID)
	return args.Get(0).(model.Resume), args.Error(1)
}

// MockApplicationStore mocks the ApplicationStore interface
type MockApplicationStore struct {
	mock.Mock
}

func (m *MockApplicationStore) Add(application model.Application) (model.Application, error) {
	args := m.Called(application)
	return args.Get(0).(model.Application), args.Error(1)
}

func (m *MockApplicationStore) List() []model.Application {
	args := m.Called()
	return args.Get(0).([]model.Application)
}

func (m *MockApplicationStore) GetByID(id uuid.UUID) (model.Application, error) {
	args := m.Called(id)
	return args.Get(0).(model.Application), args.Error(1)
}

func (m *MockApplicationStore) GetByUserID(userID uuid.UUID) []model.Application {
	args := m.Called(userID)
	return args.Get(0).([]model.Application)
}

func (m *MockApplicationStore) GetByJobID(jobID uuid.UUID) []model.Application {
	args := m.Called(jobID)
	return args.Get(0).([]model.Application)
}

func (m *MockApplicationStore) GetByResumeID(resumeID uuid.UUID) []model.Application {
	args := m.Called(resumeID)
	return args.Get(0).([]model.Application)
}

func (m *MockApplicationStore) UpdateStatus(id uuid.UUID, status model.ApplicationStatus) (model.Application, error) {
	args := m.Called(id, status)
	return args.Get(0).(model.Application), args.Error(1)
}

// MockChatStore mocks the ChatStore interface
type MockChatStore struct {
	mock.Mock
}

func (m *MockChatStore) Append(userID uuid.UUID, turn model.ChatTurn) {
	m.Called(userID, turn)
}

func (m *MockChatStore) History(userID uuid.UUID) []model.ChatTurn {
	args := m.Called(userID)
	return args.Get(0).([]model.ChatTurn)
}

// MockForumStore mocks the ForumStore interface
type MockForumStore struct {
	mock.Mock
}

func (m *MockForumStore) Add(post model.ForumPost) (model.ForumPost, error) {
	args := m.Called(post)
	return args.Get(0).(model.ForumPost), args.Error(1)
}

func (m *MockForumStore) List() []model.ForumPost {
	args := m.Called()
	return args.Get(0).([]model.ForumPost)
}

// MockSupportStore mocks the SupportStore interface
type MockSupportStore struct {
	mock.Mock
}

func (m *MockSupportStore) Add(message model.SupportMessage) (model.SupportMessage, error) {
	args := m.Called(message)
	return args.Get(0).(model.SupportMessage), args.Error(1)
}

func (m *MockSupportStore) List() []model.SupportMessage {
	args := m.Called()
	return args.Get(0).([]model.SupportMessage)
}

// MockGenerator mocks the Generator interface
type MockGenerator struct {
	mock.Mock
}

func (m *MockGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	args := m.Called(ctx, prompt)
	return args.String(0), args.Error(1)
}

// MockDocumentStorage mocks the DocumentStorage interface
type MockDocumentStorage struct {
	mock.Mock
}

func (m *MockDocumentStorage) Upload(ctx context.Context, key string, reader io.Reader) error {
	args := m.Called(ctx, key, reader)
	return args.Error(0)
}

func (m *MockDocumentStorage) Download(ctx context.Context, key string) (io.ReadCloser, error) {
	args := m.Called(ctx, key)
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

func (m *MockDocumentStorage) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockDocumentStorage) Exists(ctx context.Context, key string) (bool, error) {
	args := m.Called(ctx, key)
	return args.Bool(0), args.Error(1)
}

// MockTokenManager mocks the TokenManager interface
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID uuid.UUID) (string, error) {
	args := m.Called(userID)
	return args.String(0), args.Error(1)
}

func (m *MockTokenManager) ParseAccessToken(token string) (uuid.UUID, error) {
	args := m.Called(token)
	return args.Get(0).(uuid.UUID), args.Error(1)
}
