package memory

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/model"
)

var _ model.CatalogStore = (*CatalogRepository)(nil)

// CatalogRepository keeps job postings in memory, insertion order preserved.
// The catalog is append-only: postings are never mutated or deleted.
type CatalogRepository struct {
	mu   sync.RWMutex
	jobs []model.Job
}

func NewCatalogRepository() *CatalogRepository {
	return &CatalogRepository{}
}

func (r *CatalogRepository) Add(job model.Job) (model.Job, error) {
	if job.Title == "" {
		return model.Job{}, model.NewValidationError("title")
	}
	if job.Company == "" {
		return model.Job{}, model.NewValidationError("company")
	}
	if job.Description == "" {
		return model.Job{}, model.NewValidationError("description")
	}
	if job.Salary < 0 {
		return model.Job{}, model.NewValidationError("salary")
	}
	switch job.Format {
	case model.JobFormatRemote, model.JobFormatOffice, model.JobFormatHybrid:
	default:
		return model.Job{}, model.NewValidationError("format")
	}
	for _, f := range job.Features {
		if !model.IsKnownFeature(f) {
			return model.Job{}, model.NewValidationError("features")
		}
	}

	if job.ID == uuid.Nil {
		job.ID = uuid.New()
	}
	if job.CreatedAt.IsZero() {
		job.CreatedAt = time.Now()
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.jobs = append(r.jobs, job)

	return job, nil
}

// List returns all postings in insertion order.
func (r *CatalogRepository) List() []model.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]model.Job, len(r.jobs))
	copy(jobs, r.jobs)

	return jobs
}

func (r *CatalogRepository) GetByID(id uuid.UUID) (model.Job, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, j := range r.jobs {
		if j.ID == id {
			return j, nil
		}
	}

	return model.Job{}, model.ErrNotFound
}

func (r *CatalogRepository) GetByEmployerID(employerID uuid.UUID) []model.Job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var jobs []model.Job
	for _, j := range r.jobs {
		if j.EmployerID == employerID {
			jobs = append(jobs, j)
		}
	}

	return jobs
}
