package handler_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"campus-events/internal/handler"
	mediaMocks "campus-events/internal/media/mocks"
	"campus-events/internal/model"
	"campus-events/internal/service/mocks"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	InvalidJSON = `{"invalid": json}`

	userToken  = "user-token"
	adminToken = "admin-token"

	testUser  = model.UserActor(&model.User{ID: uuid.New(), Email: "ada@campus.edu", FullName: "Ada"})
	testAdmin = model.AdminActor("admin@campus.edu")
)

type testServer struct {
	router *gin.Engine
	events *mocks.MockEventService
	admin  *mocks.MockAdminService
	review *mocks.MockReviewService
	auth   *mocks.MockAuthService
	media  *mediaMocks.MockStore
}

// setupTestRouter 以 mock service 組出完整 router；token 對應固定 actor
func setupTestRouter(t *testing.T, submitPerMinute int) *testServer {
	t.Helper()
	gin.SetMode(gin.TestMode)

	s := &testServer{
		events: mocks.NewMockEventService(t),
		admin:  mocks.NewMockAdminService(t),
		review: mocks.NewMockReviewService(t),
		auth:   mocks.NewMockAuthService(t),
		media:  mediaMocks.NewMockStore(t),
	}

	s.auth.EXPECT().CurrentActor(mock.Anything, "").Return(model.AnonymousActor(), nil).Maybe()
	s.auth.EXPECT().CurrentActor(mock.Anything, userToken).Return(testUser, nil).Maybe()
	s.auth.EXPECT().CurrentActor(mock.Anything, adminToken).Return(testAdmin, nil).Maybe()

	s.router = handler.NewRouter(handler.RouterDeps{
		EventService:    s.events,
		AdminService:    s.admin,
		ReviewService:   s.review,
		AuthService:     s.auth,
		MediaStore:      s.media,
		SubmitPerMinute: submitPerMinute,
	})
	return s
}

func (s *testServer) do(req *http.Request, token string) *httptest.ResponseRecorder {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

// create JSON request body
func createJSONRequest(data interface{}) *bytes.Buffer {
	if raw, ok := data.(string); ok {
		return bytes.NewBufferString(raw)
	}
	jsonData, err := json.Marshal(data)
	if err != nil {
		return bytes.NewBuffer([]byte(""))
	}
	return bytes.NewBuffer(jsonData)
}

// create HTTP request with JSON body
func createJSONHTTPRequest(method, url string, data interface{}) *http.Request {
	req := httptest.NewRequest(method, url, createJSONRequest(data))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}
