package client

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"strings"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// uploadConcurrency 同時上傳的檔案數
const uploadConcurrency = 2

// EventForm 送出表單欄位；Category 另外檢查
type EventForm struct {
	Title       string `validate:"required"`
	Organizer   string `validate:"required"`
	Description string `validate:"required"`
	Category    string
	StartDate   string `validate:"required"`
	EndDate     string
	EventLink   string
}

func (f EventForm) trimmed() EventForm {
	return EventForm{
		Title:       strings.TrimSpace(f.Title),
		Organizer:   strings.TrimSpace(f.Organizer),
		Description: strings.TrimSpace(f.Description),
		Category:    strings.TrimSpace(f.Category),
		StartDate:   strings.TrimSpace(f.StartDate),
		EndDate:     strings.TrimSpace(f.EndDate),
		EventLink:   strings.TrimSpace(f.EventLink),
	}
}

// MediaSource 圖片來源：直接給 URL，或需要上傳的檔案
type MediaSource struct {
	URL  string
	Name string
	Open func() (io.ReadCloser, error)
}

func MediaURL(url string) MediaSource {
	return MediaSource{URL: url}
}

func MediaFile(path string) MediaSource {
	return MediaSource{
		Name: filepath.Base(path),
		Open: func() (io.ReadCloser, error) { return os.Open(path) },
	}
}

type SubmissionFlow struct {
	backend  Backend
	picker   *LocationPicker
	form     FormPresenter
	notifier Notifier
	validate *validator.Validate

	Form   EventForm
	poster *MediaSource
	images []MediaSource

	open       bool
	submitting bool
	generation uint64
}

func NewSubmissionFlow(backend Backend, picker *LocationPicker, form FormPresenter, notifier Notifier) *SubmissionFlow {
	return &SubmissionFlow{
		backend:  backend,
		picker:   picker,
		form:     form,
		notifier: notifier,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (f *SubmissionFlow) IsOpen() bool     { return f.open }
func (f *SubmissionFlow) Submitting() bool { return f.submitting }

func (f *SubmissionFlow) Open() {
	f.generation++
	f.open = true
	var prefill *model.Coordinate
	if coord, ok := f.picker.Coordinate(); ok {
		prefill = &coord
	}
	f.form.ShowForm(prefill)
}

// Dismiss 關閉表單但保留已填欄位；選好的地點丟棄
func (f *SubmissionFlow) Dismiss() {
	f.generation++
	f.open = false
	f.picker.Reset()
	f.form.HideForm()
}

func (f *SubmissionFlow) SetPoster(src *MediaSource) {
	f.poster = src
}

// AddImage 超過上限的圖片直接忽略
func (f *SubmissionFlow) AddImage(src MediaSource) bool {
	if len(f.images) >= model.MaxAdditionalImages {
		return false
	}
	f.images = append(f.images, src)
	return true
}

func (f *SubmissionFlow) Images() []MediaSource {
	out := make([]MediaSource, len(f.images))
	copy(out, f.images)
	return out
}

func (f *SubmissionFlow) clear() {
	f.Form = EventForm{}
	f.poster = nil
	f.images = nil
}

// Submit 驗證順序：地點 -> 類別 -> 必填欄位；通過前不會有任何網路呼叫
func (f *SubmissionFlow) Submit(ctx context.Context) (uuid.UUID, error) {
	if f.submitting {
		return uuid.Nil, ErrSubmissionInFlight
	}

	coord, ok := f.picker.Coordinate()
	if !ok {
		f.notifier.Notify(Notification{
			Title:       "Location Required",
			Description: "Please select a location for the event.",
			Destructive: true,
		})
		return uuid.Nil, ErrLocationRequired
	}

	form := f.Form.trimmed()
	if !model.Category(form.Category).IsValid() {
		f.notifier.Notify(Notification{
			Title:       "Category Required",
			Description: "Please select an event category.",
			Destructive: true,
		})
		return uuid.Nil, ErrCategoryRequired
	}

	if err := f.validate.Struct(form); err != nil {
		f.notifier.Notify(Notification{
			Title:       "Missing Required Fields",
			Description: "Please fill in the title, organizer, description and start time.",
			Destructive: true,
		})
		return uuid.Nil, apperrors.ErrMissingRequiredFields
	}

	f.submitting = true
	defer func() { f.submitting = false }()
	generation := f.generation

	posterURL, imageURLs := f.uploadMedia(ctx)
	payload := buildPayload(form, coord, posterURL, imageURLs)

	id, err := f.backend.CreatePendingEvent(ctx, payload)
	stale := generation != f.generation
	if err != nil {
		f.notifier.Notify(Notification{
			Title:       "Submission Failed",
			Description: err.Error(),
			Destructive: true,
		})
		return uuid.Nil, err
	}

	// 表單在等待期間被關掉或重開：只通知結果，不動目前的表單與地點
	if !stale {
		f.clear()
		f.picker.Reset()
		f.open = false
		f.form.HideForm()
	}
	f.notifier.Notify(Notification{
		Title:       "Event Submitted",
		Description: "Your event has been submitted for approval.",
	})
	return id, nil
}

// uploadMedia 每個檔案獨立上傳，失敗只會少掉該張圖
func (f *SubmissionFlow) uploadMedia(ctx context.Context) (*string, []string) {
	slots := make([]*MediaSource, 0, 1+len(f.images))
	slots = append(slots, f.poster)
	for i := range f.images {
		slots = append(slots, &f.images[i])
	}
	results := make([]string, len(slots))

	var g errgroup.Group
	g.SetLimit(uploadConcurrency)
	for i, src := range slots {
		if src == nil {
			continue
		}
		if src.Open == nil {
			results[i] = strings.TrimSpace(src.URL)
			continue
		}
		g.Go(func() error {
			url, err := f.uploadOne(ctx, src)
			if err != nil {
				logger.WithComponent("client").Warn("media upload failed",
					zap.String("file", src.Name),
					zap.Error(err))
				return nil
			}
			results[i] = url
			return nil
		})
	}
	_ = g.Wait()

	var posterURL *string
	if results[0] != "" {
		posterURL = &results[0]
	}
	images := make([]string, 0, model.MaxAdditionalImages)
	for _, url := range results[1:] {
		if url == "" {
			continue
		}
		if len(images) == model.MaxAdditionalImages {
			break
		}
		images = append(images, url)
	}
	return posterURL, images
}

func (f *SubmissionFlow) uploadOne(ctx context.Context, src *MediaSource) (string, error) {
	rc, err := src.Open()
	if err != nil {
		return "", err
	}
	defer rc.Close()
	return f.backend.UploadMedia(ctx, src.Name, rc)
}

func buildPayload(form EventForm, coord model.Coordinate, posterURL *string, imageURLs []string) model.SubmitEventRequest {
	endDate := form.EndDate
	if endDate == "" {
		endDate = form.StartDate
	}
	var link *string
	if form.EventLink != "" {
		l := form.EventLink
		link = &l
	}
	return model.SubmitEventRequest{
		Title:       form.Title,
		Description: form.Description,
		Organizer:   form.Organizer,
		Category:    form.Category,
		StartDate:   form.StartDate,
		EndDate:     &endDate,
		EventLink:   link,
		LocationLat: coord.Lat,
		LocationLng: coord.Lng,
		PosterURL:   posterURL,
		ImageURLs:   imageURLs,
	}
}
