package handler

import (
	"context"
	"io"

	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"

	"github.com/inclusive-jobs/server/internal/filter"
	"github.com/inclusive-jobs/server/internal/model"
	"github.com/inclusive-jobs/server/internal/service"
)

// MockAuthService mocks the AuthService interface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Register(ctx context.Context, params service.RegisterParams) (model.User, string, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Login(ctx context.Context, email string) (model.User, string, error) {
	args := m.Called(ctx, email)
	return args.Get(0).(model.User), args.String(1), args.Error(2)
}

func (m *MockAuthService) Logout(ctx context.Context) {
	m.Called(ctx)
}

func (m *MockAuthService) GetUser(ctx context.Context, id uuid.UUID) (model.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.User), args.Error(1)
}

func (m *MockAuthService) ReplaceProfile(ctx context.Context, user model.User) (model.User, error) {
	args := m.Called(ctx, user)
	return args.Get(0).(model.User), args.Error(1)
}

// MockCatalogService mocks the CatalogService interface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) PostJob(ctx context.Context, params service.PostJobParams) (model.Job, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Job), args.Error(1)
}

func (m *MockCatalogService) ListJobs(ctx context.Context, criteria filter.Criteria) []model.Job {
	args := m.Called(ctx, criteria)
	return args.Get(0).([]model.Job)
}

func (m *MockCatalogService) GetJob(ctx context.Context, id uuid.UUID) (model.Job, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(model.Job), args.Error(1)
}

func (m *MockCatalogService) JobsByEmployer(ctx context.Context, employerID uuid.UUID) []model.Job {
	args := m.Called(ctx, employerID)
	return args.Get(0).([]model.Job)
}

func (m *MockCatalogService) RewriteInclusive(ctx context.Context, userID uuid.UUID, description string) (string, error) {
	args := m.Called(ctx, userID, description)
	return args.String(0), args.Error(1)
}

// MockResumeService mocks the ResumeService interface
type MockResumeService struct {
	mock.Mock
}

func (m *MockResumeService) Upload(ctx context.Context, params service.ResumeParams, fileName string, file io.Reader) (model.Resume, error) {
	args := m.Called(ctx, params, fileName, file)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *MockResumeService) Generate(ctx context.Context, params service.ResumeParams) (model.Resume, error) {
	args := m.Called(ctx, params)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *MockResumeService) GetForUser(ctx context.Context, userID uuid.UUID) (model.Resume, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(model.Resume), args.Error(1)
}

func (m *MockResumeService) DownloadFile(ctx context.Context, resumeID uuid.UUID) (io.ReadCloser, error) {
	args := m.Called(ctx, resumeID)
	return args.Get(0).(io.ReadCloser), args.Error(1)
}

// MockApplicationService mocks the ApplicationService interface
type MockApplicationService struct {
	mock.Mock
}

func (m *MockApplicationService) Apply(ctx context.Context, userID, jobID uuid.UUID) (model.Application, error) {
	args := m.Called(ctx, userID, jobID)
	return args.Get(0).(model.Application), args.Error(1)
}

func (m *MockApplicationService) Decide(ctx context.Context, employerID, applicationID uuid.UUID, accept bool) (model.Application, error) {
	args := m.Called(ctx, employerID, applicationID, accept)
	return args.Get(0).(model.Application), args.Error(1)
}

func (m *MockApplicationService) ForUser(ctx context.Context, userID uuid.UUID) []model.Application {
	args := m.Called(ctx, userID)
	return args.Get(0).([]model.Application)
}

func (m *MockApplicationService) ForJob(ctx context.Context, employerID, jobID uuid.UUID) ([]model.Application, error) {
	args := m.Called(ctx, employerID, jobID)
	return args.Get(0).([]model.Application), args.Error(1)
}
