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

// SubscriptionService defines subscription activation.
type SubscriptionService interface {
	Subscribe(ctx context.Context, userID uuid.UUID, tier model.SubscriptionTier) (model.User, error)
}

// Subscription handles the HTTP endpoint for premium activation.
type Subscription struct {
	subscriptionService SubscriptionService
	logger              *logger.Logger
}

// NewSubscription creates a new Subscription handler.
func NewSubscription(subscriptionService SubscriptionService, logger *logger.Logger) *Subscription {
	return &Subscription{subscriptionService: subscriptionService, logger: logger}
}

type subscribeRequest struct {
	Tier string `json:"tier"`
}

// Subscribe activates the requested tier for the authenticated user.
func (h *Subscription) Subscribe(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.subscriptionService.Subscribe(c.Request.Context(), userID, model.SubscriptionTier(req.Tier))
	if err != nil {
		h.logger.Error("Subscription handler: activation failed",
			"user_id", userID,
			"tier", req.Tier,
			"error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
