package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type submissionFixture struct {
	backend  *fakeBackend
	form     *fakeForm
	notifier *recordingNotifier
	picker   *LocationPicker
	flow     *SubmissionFlow
}

func newSubmissionFixture() *submissionFixture {
	f := &submissionFixture{
		backend:  newFakeBackend(),
		form:     &fakeForm{},
		notifier: &recordingNotifier{},
	}
	f.picker = NewLocationPicker(nil, f.form, f.notifier)
	f.flow = NewSubmissionFlow(f.backend, f.picker, f.form, f.notifier)
	return f
}

func (f *submissionFixture) pick() {
	f.picker.StartPicking()
	f.picker.MapClicked(model.Coordinate{Lat: 12.97, Lng: 77.59})
}

func validForm() EventForm {
	return EventForm{
		Title:       "  Hackathon ",
		Organizer:   "CS Club",
		Description: "24h build",
		Category:    string(model.CategoryTechnical),
		StartDate:   "2026-03-01T10:00",
	}
}

func memoryFile(name, content string) MediaSource {
	return MediaSource{
		Name: name,
		Open: func() (io.ReadCloser, error) { return io.NopCloser(bytes.NewBufferString(content)), nil },
	}
}

func TestSubmissionFlow_Validation(t *testing.T) {
	ctx := context.Background()

	t.Run("LocationCheckedFirst", func(t *testing.T) {
		f := newSubmissionFixture()
		f.flow.Open()
		f.flow.Form = EventForm{}

		_, err := f.flow.Submit(ctx)

		assert.ErrorIs(t, err, ErrLocationRequired)
		assert.Equal(t, "Location Required", f.notifier.last().Title)
		assert.Empty(t, f.backend.createCalls)
	})

	t.Run("CategoryBeforeFields", func(t *testing.T) {
		f := newSubmissionFixture()
		f.pick()
		f.flow.Form = EventForm{Title: "x"}

		_, err := f.flow.Submit(ctx)

		assert.ErrorIs(t, err, ErrCategoryRequired)
		assert.Equal(t, "Category Required", f.notifier.last().Title)
	})

	t.Run("MissingFields", func(t *testing.T) {
		f := newSubmissionFixture()
		f.pick()
		form := validForm()
		form.Organizer = "   "
		f.flow.Form = form
		f.flow.SetPoster(&MediaSource{URL: "https://cdn.example.com/p.png"})

		_, err := f.flow.Submit(ctx)

		assert.ErrorIs(t, err, apperrors.ErrMissingRequiredFields)
		assert.Empty(t, f.backend.createCalls)
		assert.Zero(t, f.backend.uploadCount())
	})
}

func TestSubmissionFlow_Submit(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		f := newSubmissionFixture()
		f.pick()
		f.flow.Open()
		f.flow.Form = validForm()
		f.flow.Form.EventLink = "https://hack.example.com"

		id, err := f.flow.Submit(ctx)

		require.NoError(t, err)
		assert.Equal(t, f.backend.createID, id)
		require.Len(t, f.backend.createCalls, 1)
		payload := f.backend.createCalls[0]
		assert.Equal(t, "Hackathon", payload.Title)
		require.NotNil(t, payload.EndDate)
		assert.Equal(t, "2026-03-01T10:00", *payload.EndDate)
		assert.Equal(t, 12.97, payload.LocationLat)
		assert.Equal(t, "https://hack.example.com", *payload.EventLink)
		assert.Nil(t, payload.PosterURL)
		assert.Empty(t, payload.ImageURLs)

		assert.Equal(t, "Event Submitted", f.notifier.last().Title)
		assert.False(t, f.flow.IsOpen())
		assert.False(t, f.form.visible)
		assert.Equal(t, EventForm{}, f.flow.Form)
		assert.Equal(t, PickerIdle, f.picker.State())
	})

	t.Run("UploadsWithPartialFailure", func(t *testing.T) {
		f := newSubmissionFixture()
		f.pick()
		f.flow.Form = validForm()
		poster := memoryFile("poster.png", "p")
		f.flow.SetPoster(&poster)
		f.flow.AddImage(memoryFile("a.png", "a"))
		f.flow.AddImage(memoryFile("broken.png", "b"))
		f.flow.AddImage(MediaURL("https://elsewhere.example.com/c.png"))
		assert.False(t, f.flow.AddImage(memoryFile("d.png", "d")))
		f.backend.failUpload["broken.png"] = true

		_, err := f.flow.Submit(ctx)

		require.NoError(t, err)
		assert.Equal(t, 3, f.backend.uploadCount())
		payload := f.backend.createCalls[0]
		require.NotNil(t, payload.PosterURL)
		assert.Equal(t, "https://cdn.example.com/poster.png", *payload.PosterURL)
		assert.Equal(t, []string{
			"https://cdn.example.com/a.png",
			"https://elsewhere.example.com/c.png",
		}, payload.ImageURLs)
	})

	t.Run("Failed - BackendError", func(t *testing.T) {
		f := newSubmissionFixture()
		f.pick()
		f.flow.Open()
		f.flow.Form = validForm()
		f.backend.createErr = errors.New("Invalid date format")

		_, err := f.flow.Submit(ctx)

		assert.Error(t, err)
		assert.Equal(t, "Submission Failed", f.notifier.last().Title)
		assert.Equal(t, "Invalid date format", f.notifier.last().Description)
		assert.Equal(t, "Hackathon", f.flow.Form.trimmed().Title)
		assert.True(t, f.flow.IsOpen())
		assert.False(t, f.flow.Submitting())
	})

	t.Run("StaleCompletionLeavesNewForm", func(t *testing.T) {
		f := newSubmissionFixture()
		f.pick()
		f.flow.Open()
		f.flow.Form = validForm()
		f.backend.onCreate = func() {
			// 等待期間使用者關掉表單並開始另一筆
			f.flow.Dismiss()
			f.flow.Open()
			f.flow.Form = EventForm{Title: "Next event"}
		}

		_, err := f.flow.Submit(ctx)

		require.NoError(t, err)
		assert.Equal(t, "Event Submitted", f.notifier.last().Title)
		assert.Equal(t, "Next event", f.flow.Form.Title)
		assert.True(t, f.flow.IsOpen())
	})
}

func TestSubmissionFlow_Dismiss(t *testing.T) {
	f := newSubmissionFixture()
	f.pick()
	f.flow.Open()
	f.flow.Form = validForm()

	f.flow.Dismiss()

	assert.False(t, f.flow.IsOpen())
	assert.False(t, f.form.visible)
	assert.Equal(t, PickerIdle, f.picker.State())
	assert.Equal(t, validForm(), f.flow.Form)
}

func TestBuildPayload(t *testing.T) {
	form := EventForm{StartDate: "2026-01-01", EndDate: "2026-01-02"}
	poster := "p"

	payload := buildPayload(form, model.Coordinate{Lat: 1, Lng: 2}, &poster, []string{"a"})

	assert.Equal(t, "2026-01-02", *payload.EndDate)
	assert.Nil(t, payload.EventLink)
	assert.Equal(t, &poster, payload.PosterURL)
	assert.Equal(t, 2.0, payload.LocationLng)
}
