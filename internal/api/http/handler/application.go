package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/api/http/middleware"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
)

// ApplicationService defines applying and employer decision operations.
type ApplicationService interface {
	Apply(ctx context.Context, userID, jobID uuid.UUID) (model.Application, error)
	Decide(ctx context.Context, employerID, applicationID uuid.UUID, accept bool) (model.Application, error)
	ForUser(ctx context.Context, userID uuid.UUID) []model.Application
	ForJob(ctx context.Context, employerID, jobID uuid.UUID) ([]model.Application, error)
}

// Application handles HTTP endpoints for job applications.
type Application struct {
	applicationService ApplicationService
	logger             *logger.Logger
}

// NewApplication creates a new Application handler.
func NewApplication(applicationService ApplicationService, logger *logger.Logger) *Application {
	return &Application{applicationService: applicationService, logger: logger}
}

type applyRequest struct {
	JobID string `json:"jobId"`
}

// Apply creates a pending application for the authenticated user.
func (h *Application) Apply(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req applyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	jobID, err := uuid.Parse(req.JobID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	application, err := h.applicationService.Apply(c.Request.Context(), userID, jobID)
	if err != nil {
		h.logger.Error("Application handler: apply failed",
			"user_id", userID,
			"job_id", jobID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toApplicationResponse(application))
}

// ListMine returns the authenticated user's applications in creation order.
func (h *Application) ListMine(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	applications := h.applicationService.ForUser(c.Request.Context(), userID)

	c.JSON(http.StatusOK, toApplicationResponses(applications))
}

// ListForJob returns a job's applications for the owning employer.
func (h *Application) ListForJob(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	jobID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid job id"})
		return
	}

	applications, err := h.applicationService.ForJob(c.Request.Context(), userID, jobID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApplicationResponses(applications))
}

type decideRequest struct {
	Accept bool `json:"accept"`
}

// Decide accepts or rejects a pending application.
func (h *Application) Decide(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	applicationID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid application id"})
		return
	}

	var req decideRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	application, err := h.applicationService.Decide(c.Request.Context(), userID, applicationID, req.Accept)
	if err != nil {
		h.logger.Error("Application handler: decision failed",
			"employer_id", userID,
			"application_id", applicationID,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toApplicationResponse(application))
}
