package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/model"
)

var _ model.ResumeStore = (*ResumeRepository)(nil)

// ResumeRepository keeps resumes in memory, one per user. The uniqueness
// invariant lives here, not in the callers: Save supersedes any earlier
// resume for the same user.
type ResumeRepository struct {
	mu      sync.RWMutex
	resumes []model.Resume
}

func NewResumeRepository() *ResumeRepository {
	return &ResumeRepository{}
}

func (r *ResumeRepository) Save(resume model.Resume) (model.Resume, error) {
	if resume.UserID == uuid.Nil {
		return model.Resume{}, model.NewValidationError("userId")
	}
	if resume.FullName == "" {
		return model.Resume{}, model.NewValidationError("fullName")
	}
	if resume.FileKey == "" && resume.GeneratedContent == "" {
		return model.Resume{}, model.NewValidationError("content")
	}
	// A resume is an uploaded artifact or a generated one, never both.
	if resume.FileKey != "" && resume.GeneratedContent != "" {
		return model.Resume{}, model.NewValidationError("content")
	}

	if resume.ID == uuid.Nil {
		resume.ID = uuid.New()
	}
	if resume.CreatedAt.IsZero() {
		resume.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	for i, existing := range r.resumes {
		if existing.UserID == resume.UserID {
			r.resumes[i] = resume
			return resume, nil
		}
	}

	r.resumes = append(r.resumes, resume)

	return resume, nil
}

func (r *ResumeRepository) GetByID(id uuid.UUID) (model.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.resumes {
		if res.ID == id {
			return res, nil
		}
	}

	return model.Resume{}, model.ErrNotFound
}

func (r *ResumeRepository) GetByUserID(userID uuid.UUID) (model.Resume, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, res := range r.resumes {
		if res.UserID == userID {
			return res, nil
		}
	}

	return model.Resume{}, model.ErrNotFound
}
