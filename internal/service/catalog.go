package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/filter"
	"github.com/inclusive-jobs/server/internal/generation"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

// PostJobParams contains parameters to create a job posting.
type PostJobParams struct {
	EmployerID        uuid.UUID
	Title             string
	Location          string
	Format            model.JobFormat
	Salary            int
	EmploymentType    string
	Requirements      string
	Experience        string
	Description       string
	Address           string
	Tags              []string
	Features          []string
	Coordinates       *model.GeoPoint
	ManagerContact    string
	CallCenterContact string
}

// Catalog implements job posting, listing with filters and the premium
// inclusive-description rewrite.
type Catalog struct {
	catalogStore  model.CatalogStore
	userStore     model.UserStore
	generator     model.Generator
	subscriptions *Subscription
	logger        *logger.Logger

	// One rewrite call in flight at a time.
	rewriteBusy atomic.Bool
}

func NewCatalog(
	catalogStore model.CatalogStore,
	userStore model.UserStore,
	generator model.Generator,
	subscriptions *Subscription,
	logger *logger.Logger,
) *Catalog {
	return &Catalog{
		catalogStore:  catalogStore,
		userStore:     userStore,
		generator:     generator,
		subscriptions: subscriptions,
		logger:        logger,
	}
}

// PostJob appends a posting to the catalog. Only employer accounts may post.
func (s *Catalog) PostJob(_ context.Context, params PostJobParams) (model.Job, error) {
	employer, err := s.userStore.GetByID(params.EmployerID)
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to get employer by id: %w", err)
	}
	if employer.Type != model.UserTypeEmployer {
		return model.Job{}, model.ErrForbidden
	}

	job := model.Job{
		Title:             params.Title,
		Company:           employer.CompanyName,
		Location:          params.Location,
		Format:            params.Format,
		Salary:            params.Salary,
		EmploymentType:    params.EmploymentType,
		Requirements:      params.Requirements,
		Experience:        params.Experience,
		Description:       params.Description,
		Address:           params.Address,
		Tags:              params.Tags,
		Features:          params.Features,
		EmployerID:        employer.ID,
		Coordinates:       params.Coordinates,
		ManagerContact:    params.ManagerContact,
		CallCenterContact: params.CallCenterContact,
	}

	job, err = s.catalogStore.Add(job)
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to add job: %w", err)
	}

	s.logger.Info("Catalog service: job posted", "job_id", job.ID, "employer_id", employer.ID)

	return job, nil
}

// ListJobs returns the visible subset of the catalog for the criteria,
// catalog order preserved. An empty result is not an error.
func (s *Catalog) ListJobs(_ context.Context, criteria filter.Criteria) []model.Job {
	return filter.Apply(s.catalogStore.List(), criteria)
}

// GetJob returns a posting by id.
func (s *Catalog) GetJob(_ context.Context, id uuid.UUID) (model.Job, error) {
	job, err := s.catalogStore.GetByID(id)
	if err != nil {
		return model.Job{}, fmt.Errorf("failed to get job by id: %w", err)
	}

	return job, nil
}

// JobsByEmployer returns the employer's own postings.
func (s *Catalog) JobsByEmployer(_ context.Context, employerID uuid.UUID) []model.Job {
	return s.catalogStore.GetByEmployerID(employerID)
}

// RewriteInclusive rewrites a draft description in inclusive language.
// Premium only; the result goes back to the caller, nothing is stored until
// the employer posts the job.
func (s *Catalog) RewriteInclusive(ctx context.Context, userID uuid.UUID, description string) (string, error) {
	if description == "" {
		return "", model.NewValidationError("description")
	}

	user, err := s.userStore.GetByID(userID)
	if err != nil {
		return "", fmt.Errorf("failed to get user by id: %w", err)
	}
	if !s.subscriptions.HasPremium(user) {
		return "", model.ErrForbidden
	}

	if !s.rewriteBusy.CompareAndSwap(false, true) {
		return "", model.ErrGenerationBusy
	}
	defer s.rewriteBusy.Store(false)

	rewritten, err := s.generator.Generate(ctx, generation.InclusivePrompt(description))
	if err != nil {
		s.logger.Error("Catalog service: inclusive rewrite failed", "user_id", userID, "error", err.Error())
		return "", &model.ServiceError{Op: "rewrite inclusive description", Err: err}
	}

	return rewritten, nil
}
