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

// AssistantService defines the chat widget operations.
type AssistantService interface {
	Chat(ctx context.Context, userID uuid.UUID, message string) (model.ChatTurn, error)
	History(ctx context.Context, userID uuid.UUID) []model.ChatTurn
}

// Assistant handles HTTP endpoints for the AI assistant.
type Assistant struct {
	assistantService AssistantService
	logger           *logger.Logger
}

// NewAssistant creates a new Assistant handler.
func NewAssistant(assistantService AssistantService, logger *logger.Logger) *Assistant {
	return &Assistant{assistantService: assistantService, logger: logger}
}

type chatRequest struct {
	Message string `json:"message"`
}

// Chat sends a message to the assistant and returns its reply.
func (h *Assistant) Chat(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	reply, err := h.assistantService.Chat(c.Request.Context(), userID, req.Message)
	if err != nil {
		h.logger.Error("Assistant handler: chat failed", "user_id", userID, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toChatTurnResponse(reply))
}

// History returns the authenticated user's conversation in order.
func (h *Assistant) History(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	turns := h.assistantService.History(c.Request.Context(), userID)

	c.JSON(http.StatusOK, toChatTurnResponses(turns))
}
