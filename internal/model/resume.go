package model

import (
	"time"

	"github.com/google/uuid"
)

// Resume represents a job seeker's resume. A resume is either an uploaded
// document (FileKey) or AI-generated text (GeneratedContent), never both.
// Each user has at most one current resume; saving a new one supersedes it.
type Resume struct {
	ID               uuid.UUID
	UserID           uuid.UUID
	FullName         string
	Skills           []string
	Experience       string
	Description      string
	FileKey          string
	GeneratedContent string
	CreatedAt        time.Time
}

// ResumeStore defines storage operations for resumes.
// Save enforces the one-resume-per-user invariant: the latest write wins and
// any earlier resume for the same user stops being retrievable.
type ResumeStore interface {
	Save(resume Resume) (Resume, error)
	GetByID(id uuid.UUID) (Resume, error)
	GetByUserID(userID uuid.UUID) (Resume, error)
}
