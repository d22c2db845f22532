package model_test

import (
	"testing"

	"campus-events/internal/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEventStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		name   string
		from   model.EventStatus
		to     model.EventStatus
		expect bool
	}{
		{"pending to approved", model.EventStatusPending, model.EventStatusApproved, true},
		{"pending to pending", model.EventStatusPending, model.EventStatusPending, false},
		{"approved to approved", model.EventStatusApproved, model.EventStatusApproved, false},
		{"approved to pending", model.EventStatusApproved, model.EventStatusPending, false},
		{"unknown status", model.EventStatus("rejected"), model.EventStatusApproved, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expect, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestCategory_IsValid(t *testing.T) {
	for _, c := range model.Categories {
		assert.True(t, c.IsValid(), c)
	}
	assert.False(t, model.Category("").IsValid())
	assert.False(t, model.Category("Sports").IsValid())
	assert.False(t, model.Category("music").IsValid())
}

func TestEvent_Location(t *testing.T) {
	t.Run("HasLocation", func(t *testing.T) {
		e := &model.Event{LocationLat: 12.9716, LocationLng: 77.5946}
		coord, ok := e.Location()
		assert.True(t, ok)
		assert.Equal(t, model.Coordinate{Lat: 12.9716, Lng: 77.5946}, coord)
	})

	t.Run("ZeroLatitude", func(t *testing.T) {
		e := &model.Event{LocationLat: 0, LocationLng: 77.5946}
		_, ok := e.Location()
		assert.False(t, ok)
	})

	t.Run("ZeroLongitude", func(t *testing.T) {
		e := &model.Event{LocationLat: 12.9716, LocationLng: 0}
		_, ok := e.Location()
		assert.False(t, ok)
	})
}

func TestEvent_Images(t *testing.T) {
	poster := "https://cdn.example.com/poster.png"

	t.Run("PosterFirst", func(t *testing.T) {
		e := &model.Event{PosterURL: &poster, ImageURLs: []string{"a.png", "", "b.png"}}
		assert.Equal(t, []string{poster, "a.png", "b.png"}, e.Images())
	})

	t.Run("NoPoster", func(t *testing.T) {
		empty := ""
		e := &model.Event{PosterURL: &empty, ImageURLs: []string{"a.png"}}
		assert.Equal(t, []string{"a.png"}, e.Images())
	})

	t.Run("Nothing", func(t *testing.T) {
		e := &model.Event{}
		assert.Empty(t, e.Images())
	})
}

func TestNewEventAnalytics(t *testing.T) {
	events := []*model.Event{
		{ID: uuid.New(), Status: model.EventStatusPending, Category: model.CategorySports},
		{ID: uuid.New(), Status: model.EventStatusApproved, Category: model.CategorySports},
		{ID: uuid.New(), Status: model.EventStatusApproved, Category: model.CategoryTechnical},
		nil,
	}

	a := model.NewEventAnalytics(events)

	assert.Equal(t, 3, a.TotalEvents)
	assert.Equal(t, 1, a.PendingEvents)
	assert.Equal(t, 2, a.ApprovedEvents)
	assert.Equal(t, 2, a.CategoryCounts[model.CategorySports])
	assert.Equal(t, 1, a.CategoryCounts[model.CategoryTechnical])
	assert.Equal(t, 0, a.CategoryCounts[model.CategoryAcademic])
	assert.Equal(t, a.TotalEvents, a.PendingEvents+a.ApprovedEvents)
}

func TestActor(t *testing.T) {
	user := &model.User{ID: uuid.New(), Email: "a@campus.edu", FullName: "Ada"}

	u := model.UserActor(user)
	assert.True(t, u.IsUser())
	assert.True(t, u.IsAuthenticated())
	assert.False(t, u.IsAdmin())
	assert.Equal(t, user.ID, *u.UserID)

	admin := model.AdminActor("admin@campus.edu")
	assert.True(t, admin.IsAdmin())
	assert.False(t, admin.IsUser())
	assert.True(t, admin.IsAuthenticated())

	anon := model.AnonymousActor()
	assert.False(t, anon.IsAuthenticated())
	assert.False(t, anon.IsUser())
	assert.False(t, anon.IsAdmin())
}
