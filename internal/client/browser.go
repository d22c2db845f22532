package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	CategoryAll = "all"

	popupDescriptionLimit = 100
	startTimeLayout       = "Jan 2, 2006 at 3:04 PM"
)

type ViewMode string

const (
	ViewAll   ViewMode = "all"
	ViewSaved ViewMode = "saved"
)

type Filter struct {
	Search   string
	Category string // CategoryAll 或某個類別
	View     ViewMode
}

func DefaultFilter() Filter {
	return Filter{Category: CategoryAll, View: ViewAll}
}

var categoryColors = map[model.Category]string{
	model.CategoryCultural:  "#f59e0b",
	model.CategoryTechnical: "#3b82f6",
	model.CategorySports:    "#22c55e",
	model.CategoryAcademic:  "#8b5cf6",
}

const defaultMarkerColor = "#6b7280"

// CategoryStyle 未知類別用預設色
func CategoryStyle(category model.Category) MarkerStyle {
	if color, ok := categoryColors[category]; ok {
		return MarkerStyle{Color: color}
	}
	return MarkerStyle{Color: defaultMarkerColor}
}

// Matches 三個條件全部成立才顯示
func (f Filter) Matches(e *model.Event, saved map[uuid.UUID]bool) bool {
	if search := strings.ToLower(strings.TrimSpace(f.Search)); search != "" {
		if !strings.Contains(strings.ToLower(e.Title), search) &&
			!strings.Contains(strings.ToLower(e.Organizer), search) {
			return false
		}
	}
	if f.Category != "" && f.Category != CategoryAll && model.Category(f.Category) != e.Category {
		return false
	}
	if f.View == ViewSaved && !saved[e.ID] {
		return false
	}
	return true
}

// FilterEvents 保持原本順序
func FilterEvents(events []*model.Event, f Filter, saved map[uuid.UUID]bool) []*model.Event {
	out := make([]*model.Event, 0, len(events))
	for _, e := range events {
		if e != nil && f.Matches(e, saved) {
			out = append(out, e)
		}
	}
	return out
}

// TruncateDescription 以字元計算，超過時加上 "..."
func TruncateDescription(s string, limit int) string {
	runes := []rune(s)
	if len(runes) <= limit {
		return s
	}
	return string(runes[:limit]) + "..."
}

func FormatStart(e *model.Event) string {
	return e.StartDate.Local().Format(startTimeLayout)
}

func BuildPopup(e *model.Event) Popup {
	return Popup{
		EventID:     e.ID,
		Title:       e.Title,
		Organizer:   e.Organizer,
		Start:       FormatStart(e),
		Description: TruncateDescription(e.Description, popupDescriptionLimit),
		Link:        e.EventLink,
		Images:      e.Images(),
	}
}

// DirectionsURL origin 為 nil 時只帶目的地
func DirectionsURL(origin *model.Coordinate, destination model.Coordinate) string {
	q := url.Values{}
	q.Set("api", "1")
	if origin != nil {
		q.Set("origin", fmt.Sprintf("%g,%g", origin.Lat, origin.Lng))
	}
	q.Set("destination", fmt.Sprintf("%g,%g", destination.Lat, destination.Lng))
	return "https://www.google.com/maps/dir/?" + q.Encode()
}

type EventBrowser struct {
	backend  Backend
	state    *State
	session  *SessionStore
	geo      Geolocation
	opener   URLOpener
	notifier Notifier

	events []*model.Event
	Filter Filter
}

func NewEventBrowser(backend Backend, state *State, session *SessionStore, geo Geolocation, opener URLOpener, notifier Notifier) *EventBrowser {
	return &EventBrowser{
		backend:  backend,
		state:    state,
		session:  session,
		geo:      geo,
		opener:   opener,
		notifier: notifier,
		events:   []*model.Event{},
		Filter:   DefaultFilter(),
	}
}

// Load 抓一次已核准活動
func (b *EventBrowser) Load(ctx context.Context) error {
	events, err := b.backend.ListApprovedEvents(ctx)
	if err != nil {
		b.notifier.Notify(Notification{
			Title:       "Error",
			Description: fmt.Sprintf("Failed to load events: %v", err),
			Destructive: true,
		})
		return err
	}
	b.events = events
	return nil
}

func (b *EventBrowser) Events() []*model.Event {
	return b.events
}

func (b *EventBrowser) Visible() []*model.Event {
	return FilterEvents(b.events, b.Filter, b.state.savedSet())
}

func (b *EventBrowser) IsSaved(id uuid.UUID) bool {
	return b.state.IsSaved(id)
}

func (b *EventBrowser) ToggleSaved(id uuid.UUID) (bool, error) {
	return b.state.ToggleSaved(id)
}

// Render 清掉舊標記後，替每個有座標的可見活動放一個標記
func (b *EventBrowser) Render(m Map) int {
	m.ClearMarkers()
	placed := 0
	for _, e := range b.Visible() {
		coord, ok := e.Location()
		if !ok {
			continue
		}
		m.PlaceMarker(coord, CategoryStyle(e.Category), BuildPopup(e))
		placed++
	}
	return placed
}

func (b *EventBrowser) Register(ctx context.Context, eventID uuid.UUID) error {
	if !b.session.CurrentActor().IsUser() {
		b.notifier.Notify(Notification{
			Title:       "Sign In Required",
			Description: "Please sign in to register for events.",
			Destructive: true,
		})
		return apperrors.ErrSignInRequired
	}

	err := b.backend.RegisterForEvent(ctx, eventID)
	switch {
	case err == nil:
		b.notifier.Notify(Notification{
			Title:       "Registration Successful",
			Description: "You have been registered for this event.",
		})
		return nil
	case errors.Is(err, apperrors.ErrAlreadyRegistered):
		b.notifier.Notify(Notification{
			Title:       "Already Registered",
			Description: "You are already registered for this event.",
		})
	default:
		b.session.expire(err)
		b.notifier.Notify(Notification{
			Title:       "Registration Failed",
			Description: err.Error(),
			Destructive: true,
		})
	}
	return err
}

// Directions 開啟導航連結，不追蹤結果
func (b *EventBrowser) Directions(ctx context.Context, e *model.Event) string {
	dest := model.Coordinate{Lat: e.LocationLat, Lng: e.LocationLng}

	var origin *model.Coordinate
	if b.geo != nil {
		if pos, err := b.geo.CurrentPosition(ctx); err == nil {
			origin = &pos
		}
	}

	link := DirectionsURL(origin, dest)
	if err := b.opener.Open(link); err != nil {
		logger.WithComponent("client").Warn("open directions failed", zap.Error(err))
	}
	return link
}
