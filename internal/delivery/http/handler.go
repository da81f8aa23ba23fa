package http

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/labelcheck/backend/internal/domain"
)

// VerificationUsecase is the slice of the usecase layer the handler needs.
type VerificationUsecase interface {
	VerifyLabel(ctx context.Context, image []byte, fields domain.FormFields) (*domain.VerificationResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	verifier VerificationUsecase
}

// NewHandler creates a new HTTP handler
func NewHandler(verifier VerificationUsecase) *Handler {
	return &Handler{verifier: verifier}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "labelcheck-backend",
		"version": "1.0.0",
	})
}

// VerifyLabel handles label verification requests: multipart form fields
// plus an image file, returning the per-field checks and overall verdict.
func (h *Handler) VerifyLabel(c *gin.Context) {
	if h.verifier == nil {
		c.JSON(http.StatusNotImplemented, gin.H{
			"error": "Verification service not configured",
		})
		return
	}

	var fields domain.FormFields
	if err := c.ShouldBind(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid form data"})
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": domain.ErrMissingImage.Error()})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read image file"})
		return
	}

	result, err := h.verifier.VerifyLabel(c.Request.Context(), image, fields)
	if err != nil {
		status := statusForError(err)
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

// statusForError maps the domain error taxonomy onto HTTP status codes.
func statusForError(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest),
		errors.Is(err, domain.ErrMissingImage),
		errors.Is(err, domain.ErrInvalidImage),
		errors.Is(err, domain.ErrUnreadableText):
		return http.StatusBadRequest
	case errors.Is(err, domain.ErrUnparseableClaim):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
