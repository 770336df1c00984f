package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/model"
)

var _ model.ApplicationStore = (*ApplicationRepository)(nil)

// ApplicationRepository keeps applications in memory, insertion order
// preserved. The pending -> accepted/rejected state machine is enforced here
// so no caller can move an application out of a terminal state.
type ApplicationRepository struct {
	mu           sync.RWMutex
	applications []model.Application
}

func NewApplicationRepository() *ApplicationRepository {
	return &ApplicationRepository{}
}

func (r *ApplicationRepository) Add(application model.Application) (model.Application, error) {
	if application.JobID == uuid.Nil {
		return model.Application{}, model.NewValidationError("jobId")
	}
	if application.UserID == uuid.Nil {
		return model.Application{}, model.NewValidationError("userId")
	}
	if application.ResumeID == uuid.Nil {
		return model.Application{}, model.NewValidationError("resumeId")
	}

	if application.ID == uuid.Nil {
		application.ID = uuid.New()
	}
	if application.Status == "" {
		application.Status = model.ApplicationStatusPending
	}
	if application.CreatedAt.IsZero() {
		application.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.applications = append(r.applications, application)

	return application, nil
}

func (r *ApplicationRepository) List() []model.Application {
	r.mu.RLock()
	defer r.mu.RUnlock()

	applications := make([]model.Application, len(r.applications))
	copy(applications, r.applications)

	return applications
}

func (r *ApplicationRepository) GetByID(id uuid.UUID) (model.Application, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.applications {
		if a.ID == id {
			return a, nil
		}
	}

	return model.Application{}, model.ErrNotFound
}

func (r *ApplicationRepository) GetByUserID(userID uuid.UUID) []model.Application {
	return r.filter(func(a model.Application) bool { return a.UserID == userID })
}

func (r *ApplicationRepository) GetByJobID(jobID uuid.UUID) []model.Application {
	return r.filter(func(a model.Application) bool { return a.JobID == jobID })
}

func (r *ApplicationRepository) GetByResumeID(resumeID uuid.UUID) []model.Application {
	return r.filter(func(a model.Application) bool { return a.ResumeID == resumeID })
}

// UpdateStatus transitions an application out of pending. Terminal states are
// immutable: a second transition fails with InvalidTransitionError and leaves
// the stored status unchanged.
func (r *ApplicationRepository) UpdateStatus(id uuid.UUID, status model.ApplicationStatus) (model.Application, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.applications {
		if a.ID != id {
			continue
		}

		if !status.Terminal() || a.Status != model.ApplicationStatusPending {
			return model.Application{}, &model.InvalidTransitionError{From: a.Status, To: status}
		}

		r.applications[i].Status = status
		return r.applications[i], nil
	}

	return model.Application{}, model.ErrNotFound
}

func (r *ApplicationRepository) filter(keep func(model.Application) bool) []model.Application {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var applications []model.Application
	for _, a := range r.applications {
		if keep(a) {
			applications = append(applications, a)
		}
	}

	return applications
}
