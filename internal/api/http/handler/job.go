package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/api/http/middleware"
	"github.com/inclusive-jobs/server/internal/filter"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
	"github.com/inclusive-jobs/server/internal/service"
)

// CatalogService defines job catalog operations.
type CatalogService interface {
	PostJob(ctx context.Context, params service.PostJobParams) (model.Job, error)
	ListJobs(ctx context.Context, criteria filter.Criteria) []model.Job
	GetJob(ctx context.Context, id uuid.UUID) (model.Job, error)
	JobsByEmployer(ctx context.Context, employerID uuid.UUID) []model.Job
	RewriteInclusive(ctx context.Context, userID uuid.UUID, description string) (string, error)
}

// Job handles HTTP endpoints for the job catalog.
type Job struct {
	catalogService CatalogService
	logger         *logger.Logger
}

// NewJob creates a new Job handler.
func NewJob(catalogService CatalogService, logger *logger.Logger) *Job {
	return &Job{catalogService: catalogService, logger: logger}
}

// List returns the catalog filtered by query params: format (exact value or
// "all"), minSalary (floor, 0 means no floor) and features (repeatable,
// matched as a required subset).
func (h *Job) List(c *gin.Context) {
	criteria := filter.Criteria{
		Format:   c.DefaultQuery("format", filter.FormatAll),
		Features: c.QueryArray("features"),
	}

	if raw := c.Query("minSalary"); raw != "" {
		minSalary, err := strconv.Atoi(raw)
		if err != nil || minSalary < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid minSalary"})
			return
		}
		criteria.MinSalary = minSalary
	}

	jobs := h.catalogService.ListJobs(c.Request.Context(), criteria)

	c.JSON(http.StatusOK, toJobResponses(jobs))
}

type postJobRequest struct {
	Title             string            `json:"title"`
	Location          string            `json:"location"`
	Format            string            `json:"format"`
	Salary            int               `json:"salary"`
	EmploymentType    string            `json:"employmentType"`
	Requirements      string            `json:"requirements"`
	Experience        string            `json:"experience"`
	Description       string            `json:"description"`
	Address           string            `json:"address"`
	Tags              []string          `json:"tags"`
	Features          []string          `json:"features"`
	Coordinates       *geoPointResponse `json:"coordinates"`
	ManagerContact    string            `json:"managerContact"`
	CallCenterContact string            `json:"callCenterContact"`
}

// Post creates a job posting for the authenticated employer.
func (h *Job) Post(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req postJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	params := service.PostJobParams{
		EmployerID:        userID,
		Title:             req.Title,
		Location:          req.Location,
		Format:            model.JobFormat(req.Format),
		Salary:            req.Salary,
		EmploymentType:    req.EmploymentType,
		Requirements:      req.Requirements,
		Experience:        req.Experience,
		Description:       req.Description,
		Address:           req.Address,
		Tags:              req.Tags,
		Features:          req.Features,
		ManagerContact:    req.ManagerContact,
		CallCenterContact: req.CallCenterContact,
	}
	if req.Coordinates != nil {
		params.Coordinates = &model.GeoPoint{Lat: req.Coordinates.Lat, Lng: req.Coordinates.Lng}
	}

	job, err := h.catalogService.PostJob(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Job handler: posting failed", "employer_id", userID, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toJobResponse(job))
}

// Get returns a single posting by id.
func (h *Job) Get(c *gin.Context) {
	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	job, err := h.catalogService.GetJob(c.Request.Context(), jobID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toJobResponse(job))
}

// Mine returns the authenticated employer's own postings.
func (h *Job) Mine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	jobs := h.catalogService.JobsByEmployer(c.Request.Context(), userID)

	c.JSON(http.StatusOK, toJobResponses(jobs))
}

type rewriteRequest struct {
	Description string `json:"description"`
}

// Rewrite returns the draft description rewritten in inclusive language.
// Nothing is stored: the employer reviews the text before posting.
func (h *Job) Rewrite(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req rewriteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	rewritten, err := h.catalogService.RewriteInclusive(c.Request.Context(), userID, req.Description)
	if err != nil {
		h.logger.Error("Job handler: inclusive rewrite failed", "user_id", userID, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"description": rewritten})
}
