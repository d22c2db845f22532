package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"strings"
	"time"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// APIError 伺服器回傳的錯誤；Err 為對應的 sentinel（可能為 nil）
type APIError struct {
	Status  int
	Message string
	Err     error
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("server returned status %d", e.Status)
}

func (e *APIError) Unwrap() error { return e.Err }

// 伺服器錯誤訊息 -> sentinel
var knownErrors = map[string]error{}

func init() {
	for _, err := range []error{
		apperrors.ErrMissingRequiredFields,
		apperrors.ErrInvalidDateFormat,
		apperrors.ErrInvalidCategory,
		apperrors.ErrInvalidDateRange,
		apperrors.ErrAlreadyRegistered,
		apperrors.ErrEmailTaken,
		apperrors.ErrInvalidCredentials,
		apperrors.ErrInvalidAdminLogin,
		apperrors.ErrWeakPassword,
		apperrors.ErrAdminAuthRequired,
	} {
		knownErrors[err.Error()] = err
	}
}

func sentinelFor(status int, message string) error {
	if err, ok := knownErrors[message]; ok {
		return err
	}
	switch status {
	case http.StatusUnauthorized:
		return apperrors.ErrSignInRequired
	case http.StatusNotFound:
		return apperrors.ErrEventNotFound
	case http.StatusConflict:
		return apperrors.ErrInvalidEventStatus
	case http.StatusBadRequest:
		return apperrors.ErrInvalidInput
	}
	return nil
}

type Client struct {
	baseURL string
	http    *http.Client
	token   func() string
}

// NewClient token 每次請求時呼叫，可為 nil
func NewClient(baseURL string, timeout time.Duration, token func() string) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
	}
}

func (c *Client) do(ctx context.Context, method, path string, body io.Reader, contentType string, out interface{}, expected ...int) error {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return err
	}
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	req.Header.Set("Accept", "application/json")
	if c.token != nil {
		if token := c.token(); token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		logger.WithComponent("client").Debug("request failed", zap.String("path", path), zap.Error(err))
		return err
	}
	defer resp.Body.Close()

	ok := false
	for _, status := range expected {
		if resp.StatusCode == status {
			ok = true
			break
		}
	}
	if !ok {
		var payload struct {
			Error string `json:"error"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&payload)
		return &APIError{
			Status:  resp.StatusCode,
			Message: payload.Error,
			Err:     sentinelFor(resp.StatusCode, payload.Error),
		}
	}

	if out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", path, err)
	}
	return nil
}

func (c *Client) doJSON(ctx context.Context, method, path string, in, out interface{}, expected ...int) error {
	var body io.Reader
	contentType := ""
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return err
		}
		body = bytes.NewReader(raw)
		contentType = "application/json"
	}
	return c.do(ctx, method, path, body, contentType, out, expected...)
}

func (c *Client) CreatePendingEvent(ctx context.Context, payload model.SubmitEventRequest) (uuid.UUID, error) {
	var resp model.SubmitEventResponse
	if err := c.doJSON(ctx, http.MethodPost, "/api/v1/events", payload, &resp, http.StatusOK); err != nil {
		return uuid.Nil, err
	}
	if !resp.Success {
		return uuid.Nil, errors.New("event submission was not accepted")
	}
	return resp.ID, nil
}

func (c *Client) ListApprovedEvents(ctx context.Context) ([]*model.Event, error) {
	events := make([]*model.Event, 0)
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/events", nil, &events, http.StatusOK); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) ListEventsByStatus(ctx context.Context, status model.EventStatus) ([]*model.Event, error) {
	events := make([]*model.Event, 0)
	path := "/api/v1/admin/events?" + url.Values{"status": {string(status)}}.Encode()
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &events, http.StatusOK); err != nil {
		return nil, err
	}
	return events, nil
}

func (c *Client) SetEventStatus(ctx context.Context, eventID uuid.UUID, status model.EventStatus) error {
	path := fmt.Sprintf("/api/v1/admin/events/%s/status", eventID)
	return c.doJSON(ctx, http.MethodPut, path, model.UpdateEventStatusRequest{Status: status}, nil, http.StatusOK)
}

func (c *Client) DeleteEvent(ctx context.Context, eventID uuid.UUID) error {
	path := fmt.Sprintf("/api/v1/admin/events/%s", eventID)
	return c.doJSON(ctx, http.MethodDelete, path, nil, nil, http.StatusNoContent, http.StatusOK)
}

func (c *Client) Analytics(ctx context.Context) (*model.EventAnalytics, error) {
	var analytics model.EventAnalytics
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/admin/analytics", nil, &analytics, http.StatusOK); err != nil {
		return nil, err
	}
	return &analytics, nil
}

func (c *Client) ReviewHistory(ctx context.Context, eventID uuid.UUID) ([]*model.ReviewLogEntry, error) {
	entries := make([]*model.ReviewLogEntry, 0)
	path := fmt.Sprintf("/api/v1/admin/events/%s/history", eventID)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &entries, http.StatusOK); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) RegisterForEvent(ctx context.Context, eventID uuid.UUID) error {
	path := fmt.Sprintf("/api/v1/events/%s/registrations", eventID)
	return c.doJSON(ctx, http.MethodPost, path, nil, nil, http.StatusCreated, http.StatusOK)
}

func (c *Client) MyRegistrations(ctx context.Context) ([]*model.Registration, error) {
	registrations := make([]*model.Registration, 0)
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/me/registrations", nil, &registrations, http.StatusOK); err != nil {
		return nil, err
	}
	return registrations, nil
}

func (c *Client) UploadMedia(ctx context.Context, name string, r io.Reader) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", name)
	if err != nil {
		return "", err
	}
	if _, err := io.Copy(part, r); err != nil {
		return "", fmt.Errorf("read media %s: %w", name, err)
	}
	if err := mw.Close(); err != nil {
		return "", err
	}

	var resp struct {
		URL string `json:"url"`
	}
	if err := c.do(ctx, http.MethodPost, "/api/v1/media", &buf, mw.FormDataContentType(), &resp, http.StatusCreated, http.StatusOK); err != nil {
		return "", err
	}
	return resp.URL, nil
}

func (c *Client) SignUp(ctx context.Context, req model.SignUpRequest) (*model.AuthResponse, error) {
	return c.auth(ctx, "/api/v1/auth/signup", req)
}

func (c *Client) SignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error) {
	return c.auth(ctx, "/api/v1/auth/signin", req)
}

func (c *Client) AdminSignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error) {
	return c.auth(ctx, "/api/v1/auth/admin", req)
}

func (c *Client) auth(ctx context.Context, path string, req interface{}) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.doJSON(ctx, http.MethodPost, path, req, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *Client) SignOut(ctx context.Context) error {
	return c.doJSON(ctx, http.MethodPost, "/api/v1/auth/signout", nil, nil, http.StatusOK)
}

func (c *Client) Me(ctx context.Context) (*model.AuthResponse, error) {
	var resp model.AuthResponse
	if err := c.doJSON(ctx, http.MethodGet, "/api/v1/auth/me", nil, &resp, http.StatusOK); err != nil {
		return nil, err
	}
	return &resp, nil
}
