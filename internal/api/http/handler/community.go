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

// ForumService defines forum feed operations.
type ForumService interface {
	Post(ctx context.Context, userID uuid.UUID, content string) (model.ForumPost, error)
	Feed(ctx context.Context) []model.ForumPost
}

// SupportService defines support contact form operations.
type SupportService interface {
	Submit(ctx context.Context, name, email, message string) (model.SupportMessage, error)
}

// Community handles HTTP endpoints for the forum and the support form.
type Community struct {
	forumService   ForumService
	supportService SupportService
	logger         *logger.Logger
}

// NewCommunity creates a new Community handler.
func NewCommunity(forumService ForumService, supportService SupportService, logger *logger.Logger) *Community {
	return &Community{forumService: forumService, supportService: supportService, logger: logger}
}

// Feed returns all forum posts, oldest first.
func (h *Community) Feed(c *gin.Context) {
	posts := h.forumService.Feed(c.Request.Context())

	c.JSON(http.StatusOK, toForumPostResponses(posts))
}

type forumPostRequest struct {
	Content string `json:"content"`
}

// Post publishes a forum entry under the authenticated user's name.
func (h *Community) Post(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req forumPostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Content == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "content is required"})
		return
	}

	post, err := h.forumService.Post(c.Request.Context(), userID, req.Content)
	if err != nil {
		h.logger.Error("Community handler: forum post failed", "user_id", userID, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toForumPostResponse(post))
}

type supportRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Support records a support request. The endpoint is public: visitors can
// reach out before registering.
func (h *Community) Support(c *gin.Context) {
	var req supportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if req.Message == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	message, err := h.supportService.Submit(c.Request.Context(), req.Name, req.Email, req.Message)
	if err != nil {
		h.logger.Error("Community handler: support submit failed", "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": message.ID.String()})
}
