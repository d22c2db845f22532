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

type EventHandler struct {
	service     service.EventService
	submitLimit gin.HandlerFunc
}

// NewEventHandler submitLimit 可為 nil（不限流）
func NewEventHandler(service service.EventService, submitLimit gin.HandlerFunc) *EventHandler {
	return &EventHandler{service: service, submitLimit: submitLimit}
}

func (h *EventHandler) RegisterRoutes(r *gin.Engine) {
	submit := []gin.HandlerFunc{h.Submit}
	if h.submitLimit != nil {
		submit = append([]gin.HandlerFunc{h.submitLimit}, submit...)
	}

	router := r.Group("/api/v1")
	{
		router.GET("events", h.ListApproved)
		router.POST("events", submit...)
		router.POST("events/:id/registrations", h.Register)
		router.GET("me/registrations", h.ListRegistrations)
	}
}

func (h *EventHandler) Submit(c *gin.Context) {
	var req model.SubmitEventRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	event, err := h.service.Submit(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "Submit")
		return
	}
	c.JSON(http.StatusOK, model.SubmitEventResponse{Success: true, ID: event.ID})
}

func (h *EventHandler) ListApproved(c *gin.Context) {
	events, err := h.service.ListApproved(c.Request.Context())
	if err != nil {
		h.handleError(c, err, "ListApproved")
		return
	}
	c.JSON(http.StatusOK, events)
}

func (h *EventHandler) Register(c *gin.Context) {
	eventID, ok := bindEventID(c)
	if !ok {
		return
	}
	registration, err := h.service.Register(c.Request.Context(), CurrentActor(c), eventID)
	if err != nil {
		h.handleError(c, err, "Register")
		return
	}
	c.JSON(http.StatusCreated, model.RegistrationResponse{Success: true, ID: registration.ID})
}

func (h *EventHandler) ListRegistrations(c *gin.Context) {
	registrations, err := h.service.ListRegistrations(c.Request.Context(), CurrentActor(c))
	if err != nil {
		h.handleError(c, err, "ListRegistrations")
		return
	}
	c.JSON(http.StatusOK, registrations)
}

func (h *EventHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrMissingRequiredFields),
		errors.Is(err, apperrors.ErrInvalidDateFormat),
		errors.Is(err, apperrors.ErrInvalidCategory),
		errors.Is(err, apperrors.ErrInvalidDateRange):
		log.Warn("Invalid submission")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrSignInRequired):
		log.Warn("Sign in required")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Please sign in to register for events"})
	case errors.Is(err, apperrors.ErrEventNotFound):
		log.Warn("Event not found")
		c.JSON(http.StatusNotFound, gin.H{"error": "Event not found"})
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		log.Warn("Already registered")
		c.JSON(http.StatusConflict, gin.H{"error": apperrors.ErrAlreadyRegistered.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
