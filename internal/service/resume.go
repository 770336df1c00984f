package service

import (
	"context"
	"fmt"
	"io"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/generation"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

// ResumeParams contains the profile fields of a resume.
type ResumeParams struct {
	UserID      uuid.UUID
	FullName    string
	Skills      []string
	Experience  string
	Description string
}

// Resume implements resume upload and AI generation. Either path produces
// the user's single current resume; the store supersedes earlier ones.
type Resume struct {
	resumeStore   model.ResumeStore
	userStore     model.UserStore
	storage       model.DocumentStorage
	generator     model.Generator
	subscriptions *Subscription
	logger        *logger.Logger

	// One generation call in flight at a time.
	generateBusy atomic.Bool
}

func NewResume(
	resumeStore model.ResumeStore,
	userStore model.UserStore,
	storage model.DocumentStorage,
	generator model.Generator,
	subscriptions *Subscription,
	logger *logger.Logger,
) *Resume {
	return &Resume{
		resumeStore:   resumeStore,
		userStore:     userStore,
		storage:       storage,
		generator:     generator,
		subscriptions: subscriptions,
		logger:        logger,
	}
}

// Upload stores the resume document and saves the resume record referencing
// it by opaque key.
func (s *Resume) Upload(ctx context.Context, params ResumeParams, fileName string, file io.Reader) (model.Resume, error) {
	if params.FullName == "" {
		return model.Resume{}, model.NewValidationError("fullName")
	}
	if file == nil {
		return model.Resume{}, model.NewValidationError("file")
	}

	if _, err := s.userStore.GetByID(params.UserID); err != nil {
		return model.Resume{}, fmt.Errorf("failed to get user by id: %w", err)
	}

	key := fmt.Sprintf("resumes/%s-%s", uuid.New(), fileName)
	if err := s.storage.Upload(ctx, key, file); err != nil {
		return model.Resume{}, fmt.Errorf("failed to upload resume file: %w", err)
	}

	resume, err := s.resumeStore.Save(model.Resume{
		UserID:      params.UserID,
		FullName:    params.FullName,
		Skills:      params.Skills,
		Experience:  params.Experience,
		Description: params.Description,
		FileKey:     key,
	})
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to save resume: %w", err)
	}

	s.logger.Info("Resume service: resume uploaded", "user_id", params.UserID, "resume_id", resume.ID)

	return resume, nil
}

// Generate produces a resume from the profile fields through the external
// generator and saves it. Premium only. The record is written after the
// generation call succeeds, never before.
func (s *Resume) Generate(ctx context.Context, params ResumeParams) (model.Resume, error) {
	if params.FullName == "" {
		return model.Resume{}, model.NewValidationError("fullName")
	}
	if len(params.Skills) == 0 {
		return model.Resume{}, model.NewValidationError("skills")
	}

	user, err := s.userStore.GetByID(params.UserID)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to get user by id: %w", err)
	}
	if !s.subscriptions.HasPremium(user) {
		return model.Resume{}, model.ErrForbidden
	}

	if !s.generateBusy.CompareAndSwap(false, true) {
		return model.Resume{}, model.ErrGenerationBusy
	}
	defer s.generateBusy.Store(false)

	prompt := generation.ResumePrompt(params.FullName, params.Skills, params.Experience, params.Description)
	content, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Resume service: generation failed", "user_id", params.UserID, "error", err.Error())
		return model.Resume{}, &model.ServiceError{Op: "generate resume", Err: err}
	}

	resume, err := s.resumeStore.Save(model.Resume{
		UserID:           params.UserID,
		FullName:         params.FullName,
		Skills:           params.Skills,
		Experience:       params.Experience,
		Description:      params.Description,
		GeneratedContent: content,
	})
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to save resume: %w", err)
	}

	s.logger.Info("Resume service: resume generated", "user_id", params.UserID, "resume_id", resume.ID)

	return resume, nil
}

// GetForUser returns the user's current resume.
func (s *Resume) GetForUser(_ context.Context, userID uuid.UUID) (model.Resume, error) {
	resume, err := s.resumeStore.GetByUserID(userID)
	if err != nil {
		return model.Resume{}, fmt.Errorf("failed to get resume by user id: %w", err)
	}

	return resume, nil
}

// DownloadFile streams an uploaded resume document.
func (s *Resume) DownloadFile(ctx context.Context, resumeID uuid.UUID) (io.ReadCloser, error) {
	resume, err := s.resumeStore.GetByID(resumeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get resume by id: %w", err)
	}
	if resume.FileKey == "" {
		return nil, model.ErrNotFound
	}

	reader, err := s.storage.Download(ctx, resume.FileKey)
	if err != nil {
		return nil, fmt.Errorf("failed to download resume file: %w", err)
	}

	return reader, nil
}
