package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

// Applications implements applying to jobs and employer decisions.
type Applications struct {
	applicationStore model.ApplicationStore
	catalogStore     model.CatalogStore
	resumeStore      model.ResumeStore
	logger           *logger.Logger
}

func NewApplications(
	applicationStore model.ApplicationStore,
	catalogStore model.CatalogStore,
	resumeStore model.ResumeStore,
	logger *logger.Logger,
) *Applications {
	return &Applications{
		applicationStore: applicationStore,
		catalogStore:     catalogStore,
		resumeStore:      resumeStore,
		logger:           logger,
	}
}

// Apply creates a pending application for the user's current resume.
// Precondition: the user has a resume; otherwise ErrResumeRequired.
func (s *Applications) Apply(_ context.Context, userID, jobID uuid.UUID) (model.Application, error) {
	job, err := s.catalogStore.GetByID(jobID)
	if err != nil {
		return model.Application{}, fmt.Errorf("failed to get job by id: %w", err)
	}

	resume, err := s.resumeStore.GetByUserID(userID)
	if errors.Is(err, model.ErrNotFound) {
		return model.Application{}, model.ErrResumeRequired
	}
	if err != nil {
		return model.Application{}, fmt.Errorf("failed to get resume by user id: %w", err)
	}

	application, err := s.applicationStore.Add(model.Application{
		JobID:    job.ID,
		UserID:   userID,
		ResumeID: resume.ID,
		Status:   model.ApplicationStatusPending,
	})
	if err != nil {
		return model.Application{}, fmt.Errorf("failed to add application: %w", err)
	}

	s.logger.Info("Applications service: application created",
		"application_id", application.ID,
		"job_id", jobID,
		"user_id", userID)

	return application, nil
}

// Decide accepts or rejects a pending application. Only the employer who
// owns the job may decide; terminal statuses are immutable.
func (s *Applications) Decide(_ context.Context, employerID, applicationID uuid.UUID, accept bool) (model.Application, error) {
	application, err := s.applicationStore.GetByID(applicationID)
	if err != nil {
		return model.Application{}, fmt.Errorf("failed to get application by id: %w", err)
	}

	job, err := s.catalogStore.GetByID(application.JobID)
	if err != nil {
		return model.Application{}, fmt.Errorf("failed to get job by id: %w", err)
	}
	if job.EmployerID != employerID {
		return model.Application{}, model.ErrForbidden
	}

	status := model.ApplicationStatusRejected
	if accept {
		status = model.ApplicationStatusAccepted
	}

	application, err = s.applicationStore.UpdateStatus(applicationID, status)
	if err != nil {
		return model.Application{}, err
	}

	s.logger.Info("Applications service: application decided",
		"application_id", application.ID,
		"status", status)

	return application, nil
}

// ForUser returns the user's applications in creation order.
func (s *Applications) ForUser(_ context.Context, userID uuid.UUID) []model.Application {
	return s.applicationStore.GetByUserID(userID)
}

// ForJob returns a job's applications; only the owning employer may read them.
func (s *Applications) ForJob(_ context.Context, employerID, jobID uuid.UUID) ([]model.Application, error) {
	job, err := s.catalogStore.GetByID(jobID)
	if err != nil {
		return nil, fmt.Errorf("failed to get job by id: %w", err)
	}
	if job.EmployerID != employerID {
		return nil, model.ErrForbidden
	}

	return s.applicationStore.GetByJobID(jobID), nil
}
