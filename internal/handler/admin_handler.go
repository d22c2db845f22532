package handler

import (
	"errors"
	"net/http"

	"campus-events/internal/model"
	"campus-events/internal/service"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AdminHandler struct {
	service       service.AdminService
	reviewService service.ReviewService
}

func NewAdminHandler(service service.AdminService, reviewService service.ReviewService) *AdminHandler {
	return &AdminHandler{service: service, reviewService: reviewService}
}

func (h *AdminHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/admin", requireAdminActor)
	{
		router.GET("events", h.ListByStatus)
		router.PUT("events/:id/status", h.SetStatus)
		router.DELETE("events/:id", h.Reject)
		router.GET("events/:id/history", h.History)
		router.GET("analytics", h.Analytics)
	}
}

// requireAdminActor 先驗身分再解析參數，未登入一律 401
func requireAdminActor(c *gin.Context) {
	if !CurrentActor(c).IsAdmin() {
		logger.WithComponent("handler").Warn("Admin authentication required",
			zap.String("path", c.FullPath()))
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrAdminAuthRequired.Error()})
		return
	}
	c.Next()
}

// ListEventsQuery ?status=pending|approved
type ListEventsQuery struct {
	Status model.EventStatus `form:"status" binding:"required"`
}

func (h *AdminHandler) ListByStatus(c *gin.Context) {
	var query ListEventsQuery
	if err := BindQuery(c, &query); err != nil {
		return
	}
	events, err := h.service.ListByStatus(c.Request.Context(), CurrentActor(c), query.Status)
	if err != nil {
		h.handleError(c, err, "ListByStatus")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *AdminHandler) SetStatus(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	var req model.UpdateEventStatusRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	event, err := h.service.SetStatus(c.Request.Context(), CurrentActor(c), eventID, req.Status)
	if err != nil {
		h.handleError(c, err, "SetStatus")
		return
	}
	c.JSON(http.StatusOK, event)
}

func (h *AdminHandler) Reject(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	if err := h.service.Reject(c.Request.Context(), CurrentActor(c), eventID); err != nil {
		h.handleError(c, err, "Reject")
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *AdminHandler) History(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	entries, err := h.reviewService.History(c.Request.Context(), CurrentActor(c), eventID)
	if err != nil {
		h.handleError(c, err, "History")
		return
	}
	c.JSON(http.StatusOK, entries)
}

func (h *AdminHandler) Analytics(c *gin.Context) {
	analytics, err := h.service.Analytics(c.Request.Context(), CurrentActor(c))
	if err != nil {
		h.handleError(c, err, "Analytics")
		return
	}
	c.JSON(http.StatusOK, analytics)
}

func (h *AdminHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrAdminAuthRequired):
		log.Warn("Admin authentication required")
		c.JSON(http.StatusUnauthorized, gin.H{"error": apperrors.ErrAdminAuthRequired.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid status"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrInvalidEventStatus):
		log.Warn("Invalid status transition")
		c.JSON(http.StatusConflict, gin.H{"error": "Event is not pending review"})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
