package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/inclusive-jobs/server/internal/model"
)

// handleError maps domain errors to HTTP statuses. Every handler funnels
// failed service calls through here so the mapping lives in one place.
func handleError(c *gin.Context, err error) {
	var validationErr *model.ValidationError
	var transitionErr *model.InvalidTransitionError
	var serviceErr *model.ServiceError

	switch {
	case errors.As(err, &validationErr):
		c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
	case errors.Is(err, model.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, model.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": "operation not allowed"})
	case errors.Is(err, model.ErrResumeRequired):
		c.JSON(http.StatusConflict, gin.H{"error": "resume required before applying"})
	case errors.Is(err, model.ErrGenerationBusy):
		c.JSON(http.StatusConflict, gin.H{"error": "generation already in progress"})
	case errors.As(err, &transitionErr):
		c.JSON(http.StatusConflict, gin.H{"error": transitionErr.Error()})
	case errors.As(err, &serviceErr):
		c.JSON(http.StatusBadGateway, gin.H{"error": "external service failed"})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
