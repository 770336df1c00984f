package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/api/http/middleware"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
	"github.com/inclusive-jobs/server/internal/service"
)

// AuthService defines registration, demo login and profile operations.
type AuthService interface {
	Register(ctx context.Context, params service.RegisterParams) (model.User, string, error)
	Login(ctx context.Context, email string) (model.User, string, error)
	Logout(ctx context.Context)
	GetUser(ctx context.Context, id uuid.UUID) (model.User, error)
	ReplaceProfile(ctx context.Context, user model.User) (model.User, error)
}

// Auth handles HTTP endpoints for authentication and profiles.
type Auth struct {
	authService AuthService
	logger      *logger.Logger
}

// NewAuth creates a new Auth handler.
func NewAuth(authService AuthService, logger *logger.Logger) *Auth {
	return &Auth{authService: authService, logger: logger}
}

type registerRequest struct {
	Type               string `json:"type" form:"type"`
	FullName           string `json:"fullName" form:"fullName"`
	Phone              string `json:"phone" form:"phone"`
	Email              string `json:"email" form:"email"`
	HealthNeeds        string `json:"healthNeeds" form:"healthNeeds"`
	CompanyName        string `json:"companyName" form:"companyName"`
	CompanyDescription string `json:"companyDescription" form:"companyDescription"`
}

type authResponse struct {
	User        userResponse `json:"user"`
	AccessToken string       `json:"accessToken"`
}

// Register creates an account. Employers may attach a license document as
// multipart field "license".
func (h *Auth) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBind(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	params := service.RegisterParams{
		Type:               model.UserType(req.Type),
		FullName:           req.FullName,
		Phone:              req.Phone,
		Email:              req.Email,
		HealthNeeds:        req.HealthNeeds,
		CompanyName:        req.CompanyName,
		CompanyDescription: req.CompanyDescription,
	}

	if fileHeader, err := c.FormFile("license"); err == nil {
		file, err := fileHeader.Open()
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open license file"})
			return
		}
		defer func() { _ = file.Close() }()

		params.LicenseFileName = fileHeader.Filename
		params.LicenseFile = file
	}

	user, accessToken, err := h.authService.Register(c.Request.Context(), params)
	if err != nil {
		h.logger.Error("Auth handler: registration failed", "email", req.Email, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, authResponse{User: toUserResponse(user), AccessToken: accessToken})
}

type loginRequest struct {
	Email string `json:"email"`
}

// Login opens a session for the account with the given email. No credential
// check: the platform runs in demo mode.
func (h *Auth) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, accessToken, err := h.authService.Login(c.Request.Context(), req.Email)
	if err != nil {
		h.logger.Error("Auth handler: login failed", "email", req.Email, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, authResponse{User: toUserResponse(user), AccessToken: accessToken})
}

// Logout clears the session.
func (h *Auth) Logout(c *gin.Context) {
	h.authService.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}

// Me returns the authenticated user's profile.
func (h *Auth) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}

type profileRequest struct {
	FullName           string `json:"fullName"`
	Phone              string `json:"phone"`
	Email              string `json:"email"`
	HealthNeeds        string `json:"healthNeeds"`
	CompanyName        string `json:"companyName"`
	CompanyDescription string `json:"companyDescription"`
}

// UpdateProfile replaces the editable profile fields wholesale.
func (h *Auth) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req profileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	user.FullName = req.FullName
	user.Phone = req.Phone
	user.Email = req.Email
	user.HealthNeeds = req.HealthNeeds
	user.CompanyName = req.CompanyName
	user.CompanyDescription = req.CompanyDescription

	user, err = h.authService.ReplaceProfile(c.Request.Context(), user)
	if err != nil {
		h.logger.Error("Auth handler: profile update failed", "user_id", userID, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
