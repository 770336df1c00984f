package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus enumerates application states.
type ApplicationStatus string

const (
	// ApplicationStatusPending awaits an employer decision.
	ApplicationStatusPending ApplicationStatus = "pending"
	// ApplicationStatusAccepted is terminal.
	ApplicationStatusAccepted ApplicationStatus = "accepted"
	// ApplicationStatusRejected is terminal.
	ApplicationStatusRejected ApplicationStatus = "rejected"
)

// Terminal reports whether the status permits no further transition.
func (s ApplicationStatus) Terminal() bool {
	return s == ApplicationStatusAccepted || s == ApplicationStatusRejected
}

// Application ties a user's resume to a job posting. Status starts at pending
// and moves exactly once, to accepted or rejected. Applications are never
// deleted.
type Application struct {
	ID        uuid.UUID
	JobID     uuid.UUID
	UserID    uuid.UUID
	ResumeID  uuid.UUID
	Status    ApplicationStatus
	CreatedAt time.Time
}

// ApplicationStore defines storage operations for applications.
// UpdateStatus owns the pending -> terminal state machine: it returns
// ErrNotFound for an unknown id and InvalidTransitionError when the current
// status is already terminal.
type ApplicationStore interface {
	Add(application Application) (Application, error)
	List() []Application
	GetByID(id uuid.UUID) (Application, error)
	GetByUserID(userID uuid.UUID) []Application
	GetByJobID(jobID uuid.UUID) []Application
	GetByResumeID(resumeID uuid.UUID) []Application
	UpdateStatus(id uuid.UUID, status ApplicationStatus) (Application, error)
}
