package client

import (
	"context"
	"errors"
	"io"

	"campus-events/internal/model"

	"github.com/google/uuid"
)

var (
	ErrGeolocationUnsupported = errors.New("geolocation is not supported on this device")
	ErrLocationRequired       = errors.New("location required")
	ErrCategoryRequired       = errors.New("category required")
	ErrSubmissionInFlight     = errors.New("a submission is already in progress")
)

// Backend 伺服器端的活動 repository 邊界
type Backend interface {
	CreatePendingEvent(ctx context.Context, payload model.SubmitEventRequest) (uuid.UUID, error)
	ListApprovedEvents(ctx context.Context) ([]*model.Event, error)
	ListEventsByStatus(ctx context.Context, status model.EventStatus) ([]*model.Event, error)
	SetEventStatus(ctx context.Context, eventID uuid.UUID, status model.EventStatus) error
	DeleteEvent(ctx context.Context, eventID uuid.UUID) error
	RegisterForEvent(ctx context.Context, eventID uuid.UUID) error
	UploadMedia(ctx context.Context, name string, r io.Reader) (string, error)
}

// AuthBackend 登入相關的遠端呼叫
type AuthBackend interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (*model.AuthResponse, error)
	SignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error)
	AdminSignIn(ctx context.Context, req model.SignInRequest) (*model.AuthResponse, error)
	SignOut(ctx context.Context) error
	Me(ctx context.Context) (*model.AuthResponse, error)
}

// Geolocation 裝置定位；不支援時回傳 ErrGeolocationUnsupported
type Geolocation interface {
	CurrentPosition(ctx context.Context) (model.Coordinate, error)
}

type MarkerStyle struct {
	Color string
}

// Popup 地圖標記的內容
type Popup struct {
	EventID     uuid.UUID
	Title       string
	Organizer   string
	Start       string
	Description string
	Link        *string
	Images      []string
}

type Map interface {
	ClearMarkers()
	PlaceMarker(coord model.Coordinate, style MarkerStyle, popup Popup)
}

type URLOpener interface {
	Open(url string) error
}

type Notification struct {
	Title       string
	Description string
	Destructive bool
}

type Notifier interface {
	Notify(n Notification)
}

// FormPresenter 顯示／隱藏送出表單
type FormPresenter interface {
	ShowForm(prefill *model.Coordinate)
	HideForm()
}
