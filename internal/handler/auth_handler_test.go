package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus-events/internal/model"
	"campus-events/internal/session"
	apperrors "campus-events/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestAuthSignUp(t *testing.T) {
	req := model.SignUpRequest{Email: "ada@campus.edu", Password: "secret1", FullName: "Ada"}

	t.Run("Success", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		s.auth.EXPECT().SignUp(mock.Anything, req).
			Return(&session.Session{Token: userToken, Actor: testUser, ExpiresAt: time.Now().Add(time.Hour)}, nil).Once()

		w := s.do(createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/signup", req), "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.AuthResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, userToken, resp.Token)
		assert.True(t, resp.Actor.IsUser())
	})

	t.Run("Failed - EmailTaken", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		s.auth.EXPECT().SignUp(mock.Anything, req).Return(nil, apperrors.ErrEmailTaken).Once()

		w := s.do(createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/signup", req), "")

		assert.Equal(t, http.StatusConflict, w.Code)
	})

	t.Run("Failed - WeakPassword", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		s.auth.EXPECT().SignUp(mock.Anything, mock.Anything).Return(nil, apperrors.ErrWeakPassword).Once()

		w := s.do(createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/signup", req), "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("Failed - InvalidEmail", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		bad := req
		bad.Email = "not-an-email"
		w := s.do(createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/signup", bad), "")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		s.auth.AssertNotCalled(t, "SignUp", mock.Anything, mock.Anything)
	})
}

func TestAuthSignIn(t *testing.T) {
	req := model.SignInRequest{Email: "ada@campus.edu", Password: "secret1"}

	t.Run("Success", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		s.auth.EXPECT().SignIn(mock.Anything, req).Return(&session.Session{Token: userToken, Actor: testUser}, nil).Once()

		w := s.do(createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/signin", req), "")

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Failed - InvalidCredentials", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		s.auth.EXPECT().SignIn(mock.Anything, req).Return(nil, apperrors.ErrInvalidCredentials).Once()

		w := s.do(createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/signin", req), "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Admin", func(t *testing.T) {
		s := setupTestRouter(t, 0)
		adminReq := model.SignInRequest{Email: "admin@campus.edu", Password: "admin-secret"}

		s.auth.EXPECT().AdminSignIn(mock.Anything, adminReq).Return(&session.Session{Token: adminToken, Actor: testAdmin}, nil).Once()

		w := s.do(createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/admin", adminReq), "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.AuthResponse
		decodeBody(t, w, &resp)
		assert.True(t, resp.Actor.IsAdmin())
	})

	t.Run("Admin - InvalidCredentials", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		s.auth.EXPECT().AdminSignIn(mock.Anything, mock.Anything).Return(nil, apperrors.ErrInvalidAdminLogin).Once()

		w := s.do(createJSONHTTPRequest(http.MethodPost, "/api/v1/auth/admin", model.SignInRequest{Email: "x", Password: "y"}), "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestAuthSignOutAndMe(t *testing.T) {
	t.Run("SignOut", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		s.auth.EXPECT().SignOut(mock.Anything, userToken).Return(nil).Once()

		w := s.do(httptest.NewRequest(http.MethodPost, "/api/v1/auth/signout", nil), userToken)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("Me - Anonymous", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil), "")

		assert.Equal(t, http.StatusOK, w.Code)
		var resp model.AuthResponse
		decodeBody(t, w, &resp)
		assert.Equal(t, model.ActorAnonymous, resp.Actor.Kind)
	})

	t.Run("Me - Admin", func(t *testing.T) {
		s := setupTestRouter(t, 0)

		w := s.do(httptest.NewRequest(http.MethodGet, "/api/v1/auth/me", nil), adminToken)

		var resp model.AuthResponse
		decodeBody(t, w, &resp)
		assert.True(t, resp.Actor.IsAdmin())
		assert.Equal(t, adminToken, resp.Token)
	})
}
