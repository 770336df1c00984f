package handler

import (
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/inclusive-jobs/server/internal/api/http/middleware"
	"github.com/inclusive-jobs/server/internal/logger"
	"github.com/inclusive-jobs/server/internal/model"
	"github.com/inclusive-jobs/server/internal/service"
)

// ResumeService defines resume upload, generation and retrieval operations.
type ResumeService interface {
	Upload(ctx context.Context, params service.ResumeParams, fileName string, file io.Reader) (model.Resume, error)
	Generate(ctx context.Context, params service.ResumeParams) (model.Resume, error)
	GetForUser(ctx context.Context, userID uuid.UUID) (model.Resume, error)
	DownloadFile(ctx context.Context, resumeID uuid.UUID) (io.ReadCloser, error)
}

// Resume handles HTTP endpoints for resumes.
type Resume struct {
	resumeService ResumeService
	logger        *logger.Logger
}

// NewResume creates a new Resume handler.
func NewResume(resumeService ResumeService, logger *logger.Logger) *Resume {
	return &Resume{resumeService: resumeService, logger: logger}
}

// Upload stores a resume document sent as multipart field "file" with the
// profile fields alongside. Skills come as a comma-separated form value.
func (h *Resume) Upload(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to open file"})
		return
	}
	defer func() { _ = file.Close() }()

	params := service.ResumeParams{
		UserID:      userID,
		FullName:    c.PostForm("fullName"),
		Skills:      splitSkills(c.PostForm("skills")),
		Experience:  c.PostForm("experience"),
		Description: c.PostForm("description"),
	}

	resume, err := h.resumeService.Upload(c.Request.Context(), params, fileHeader.Filename, file)
	if err != nil {
		h.logger.Error("Resume handler: upload failed", "user_id", userID, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResumeResponse(resume))
}

type generateResumeRequest struct {
	FullName    string   `json:"fullName"`
	Skills      []string `json:"skills"`
	Experience  string   `json:"experience"`
	Description string   `json:"description"`
}

// Generate produces an AI-written resume from the profile fields.
func (h *Resume) Generate(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	var req generateResumeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	resume, err := h.resumeService.Generate(c.Request.Context(), service.ResumeParams{
		UserID:      userID,
		FullName:    req.FullName,
		Skills:      req.Skills,
		Experience:  req.Experience,
		Description: req.Description,
	})
	if err != nil {
		h.logger.Error("Resume handler: generation failed", "user_id", userID, "error", err.Error())
		handleError(c, err)
		return
	}

	c.JSON(http.StatusCreated, toResumeResponse(resume))
}

// Me returns the authenticated user's current resume.
func (h *Resume) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing authorization token"})
		return
	}

	resume, err := h.resumeService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		handleError(c, err)
		return
	}

	c.JSON(http.StatusOK, toResumeResponse(resume))
}

// Download streams an uploaded resume document.
func (h *Resume) Download(c *gin.Context) {
	resumeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid resume id"})
		return
	}

	reader, err := h.resumeService.DownloadFile(c.Request.Context(), resumeID)
	if err != nil {
		handleError(c, err)
		return
	}
	defer func() { _ = reader.Close() }()

	c.Header("Content-Type", "application/octet-stream")
	c.Status(http.StatusOK)
	if _, err := io.Copy(c.Writer, reader); err != nil {
		h.logger.Error("Resume handler: download stream failed", "resume_id", resumeID, "error", err.Error())
	}
}

func splitSkills(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	skills := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			skills = append(skills, trimmed)
		}
	}

	return skills
}
