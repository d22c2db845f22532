package handler

import (
	"errors"
	"net/http"

	"campus-events/internal/model"
	"campus-events/internal/service"
	"campus-events/internal/session"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type AuthHandler struct {
	service service.AuthService
}

func NewAuthHandler(service service.AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

func (h *AuthHandler) RegisterRoutes(r *gin.Engine) {
	router := r.Group("/api/v1/auth")
	{
		router.POST("signup", h.SignUp)
		router.POST("signin", h.SignIn)
		router.POST("admin", h.AdminSignIn)
		router.POST("signout", h.SignOut)
		router.GET("me", h.Me)
	}
}

func respondSession(c *gin.Context, s *session.Session) {
	c.JSON(http.StatusOK, model.AuthResponse{Token: s.Token, Actor: s.Actor})
}

func (h *AuthHandler) SignUp(c *gin.Context) {
	var req model.SignUpRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	s, err := h.service.SignUp(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "SignUp")
		return
	}
	respondSession(c, s)
}

func (h *AuthHandler) SignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	s, err := h.service.SignIn(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "SignIn")
		return
	}
	respondSession(c, s)
}

func (h *AuthHandler) AdminSignIn(c *gin.Context) {
	var req model.SignInRequest
	if err := BindJson(c, &req); err != nil {
		return
	}
	s, err := h.service.AdminSignIn(c.Request.Context(), req)
	if err != nil {
		h.handleError(c, err, "AdminSignIn")
		return
	}
	respondSession(c, s)
}

func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.service.SignOut(c.Request.Context(), sessionToken(c)); err != nil {
		h.handleError(c, err, "SignOut")
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

func (h *AuthHandler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, model.AuthResponse{Token: sessionToken(c), Actor: CurrentActor(c)})
}

func (h *AuthHandler) handleError(c *gin.Context, err error, operation string) {
	log := logger.WithComponent("handler").With(zap.String("operation", operation), zap.Error(err))
	switch {
	case errors.Is(err, apperrors.ErrWeakPassword):
		log.Warn("Weak password")
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidInput):
		log.Warn("Invalid input")
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
	case errors.Is(err, apperrors.ErrEmailTaken):
		log.Warn("Email taken")
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, apperrors.ErrInvalidCredentials),
		errors.Is(err, apperrors.ErrInvalidAdminLogin):
		log.Warn("Invalid credentials")
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	default:
		log.Error("Unexpected error")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
