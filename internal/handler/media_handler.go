package handler

import (
	"errors"
	"net/http"

	"campus-events/internal/media"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type MediaHandler struct {
	store media.Store
}

func NewMediaHandler(store media.Store) *MediaHandler {
	return &MediaHandler{store: store}
}

func (h *MediaHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1")
	{
		router.POST("media", h.Upload)
	}
}

func (h *MediaHandler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file"})
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		h.handleError(c, err, "Upload")
		return
	}
	defer file.Close()

	url, err := h.store.Upload(c.Request.Context(), fileHeader.Filename, file)
	if err != nil {
		h.handleError(c, err, "Upload")
		return
	}
	c.JSON(http.StatusCreated, gin.H{"url": url})
}

func (h *MediaHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrUnsupportedMediaType):
		log.Warn("Unsupported media type")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Only image uploads are allowed"})
	case errors.Is(err, apperrors.ErrMediaTooLarge):
		log.Warn("Media too large")
		c.JSON(http.StatusBadRequest, gin.H{"error": "File is too large"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
