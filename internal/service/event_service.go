package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"campus-events/internal/cache"
	"campus-events/internal/metrics"
	"campus-events/internal/model"
	"campus-events/internal/queue"
	"campus-events/internal/repository"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type EventService interface {
	// createPendingEvent：驗證、正規化後建立 pending 活動
	Submit(ctx context.Context, req model.SubmitEventRequest) (*model.Event, error)
	// 已核准活動（先讀快取）
	ListApproved(ctx context.Context) ([]*model.Event, error)
	// 報名，需登入的一般使用者
	Register(ctx context.Context, actor model.Actor, eventID uuid.UUID) (*model.Registration, error)
	ListRegistrations(ctx context.Context, actor model.Actor) ([]*model.Registration, error)
}

type EventServiceImpl struct {
	repo             repository.EventRepository
	registrationRepo repository.RegistrationRepository
	approvedCache    cache.ApprovedEventsCache
	reviewQueue      queue.ReviewQueue
}

func NewEventService(
	repo repository.EventRepository,
	registrationRepo repository.RegistrationRepository,
	approvedCache cache.ApprovedEventsCache,
	reviewQueue queue.ReviewQueue,
) EventService {
	return &EventServiceImpl{
		repo:             repo,
		registrationRepo: registrationRepo,
		approvedCache:    approvedCache,
		reviewQueue:      reviewQueue,
	}
}

func trimmedOrNil(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	if v == "" {
		return nil
	}
	return &v
}

// NormalizeSubmission 驗證順序：必填 -> 日期格式 -> 類別 -> 日期區間
func NormalizeSubmission(req model.SubmitEventRequest) (*model.Event, error) {
	title := strings.TrimSpace(req.Title)
	description := strings.TrimSpace(req.Description)
	organizer := strings.TrimSpace(req.Organizer)
	category := strings.TrimSpace(req.Category)
	rawStart := strings.TrimSpace(req.StartDate)

	if title == "" || description == "" || organizer == "" || category == "" || rawStart == "" {
		return nil, apperrors.ErrMissingRequiredFields
	}

	startDate, ok := ParseEventTime(rawStart)
	if !ok {
		return nil, apperrors.ErrInvalidDateFormat
	}
	endDate := startDate
	if req.EndDate != nil && strings.TrimSpace(*req.EndDate) != "" {
		endDate, ok = ParseEventTime(*req.EndDate)
		if !ok {
			return nil, apperrors.ErrInvalidDateFormat
		}
	}

	if !model.Category(category).IsValid() {
		return nil, apperrors.ErrInvalidCategory
	}
	if endDate.Before(startDate) {
		return nil, apperrors.ErrInvalidDateRange
	}

	images := make([]string, 0, model.MaxAdditionalImages)
	for _, u := range req.ImageURLs {
		if u = strings.TrimSpace(u); u == "" {
			continue
		}
		if len(images) == model.MaxAdditionalImages {
			break
		}
		images = append(images, u)
	}

	return &model.Event{
		Title:       title,
		Description: description,
		Organizer:   organizer,
		Category:    model.Category(category),
		StartDate:   startDate,
		EndDate:     endDate,
		EventLink:   trimmedOrNil(req.EventLink),
		LocationLat: req.LocationLat,
		LocationLng: req.LocationLng,
		PosterURL:   trimmedOrNil(req.PosterURL),
		ImageURLs:   images,
		Status:      model.EventStatusPending,
	}, nil
}

func (s *EventServiceImpl) Submit(ctx context.Context, req model.SubmitEventRequest) (*model.Event, error) {
	event, err := NormalizeSubmission(req)
	if err != nil {
		metrics.EventSubmissionsTotal.WithLabelValues("invalid").Inc()
		return nil, err
	}
	event.ID = uuid.New()
	// 送出者不需登入，一律不記錄建立者，狀態固定 pending
	event.CreatedBy = nil
	event.Status = model.EventStatusPending

	created, err := s.repo.Create(ctx, event)
	if err != nil {
		metrics.EventSubmissionsTotal.WithLabelValues("error").Inc()
		return nil, err
	}
	metrics.EventSubmissionsTotal.WithLabelValues("accepted").Inc()

	publishNotice(ctx, s.reviewQueue, &model.ReviewNotice{
		EventID:    created.ID,
		Action:     model.ReviewActionSubmitted,
		Title:      created.Title,
		OccurredAt: time.Now().UTC(),
	})

	return created, nil
}

func (s *EventServiceImpl) ListApproved(ctx context.Context) ([]*model.Event, error) {
	events, err := s.approvedCache.Get(ctx)
	switch {
	case err == nil:
		metrics.ApprovedCacheLookups.WithLabelValues("hit").Inc()
		return events, nil
	case errors.Is(err, apperrors.ErrCacheMiss):
		metrics.ApprovedCacheLookups.WithLabelValues("miss").Inc()
	default:
		// 快取掛掉時退回資料庫
		metrics.ApprovedCacheLookups.WithLabelValues("error").Inc()
		logger.WithComponent("service").Warn("approved events cache unavailable", zap.Error(err))
	}

	// 版本要在查詢資料庫之前取得，期間若有核准或駁回就不回填
	version, versionErr := s.approvedCache.Version(ctx)

	events, err = s.repo.ListByStatus(ctx, model.EventStatusApproved)
	if err != nil {
		return nil, err
	}

	if versionErr != nil {
		logger.WithComponent("service").Warn("approved events cache version unavailable", zap.Error(versionErr))
		return events, nil
	}
	err = s.approvedCache.Set(ctx, version, events)
	switch {
	case errors.Is(err, cache.ErrVersionChanged):
		logger.WithComponent("service").Debug("approved events changed during refill, skip cache")
	case err != nil:
		logger.WithComponent("service").Warn("failed to fill approved events cache", zap.Error(err))
	}
	return events, nil
}

func (s *EventServiceImpl) Register(ctx context.Context, actor model.Actor, eventID uuid.UUID) (*model.Registration, error) {
	if !actor.IsUser() {
		return nil, apperrors.ErrSignInRequired
	}

	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	// 只能報名已核准的活動
	if event.Status != model.EventStatusApproved {
		return nil, apperrors.ErrEventNotFound
	}

	registration, err := s.registrationRepo.Create(ctx, &model.Registration{
		ID:      uuid.New(),
		EventID: eventID,
		UserID:  *actor.UserID,
	})
	if err != nil {
		if errors.Is(err, apperrors.ErrAlreadyRegistered) {
			metrics.RegistrationsTotal.WithLabelValues("duplicate").Inc()
		} else {
			metrics.RegistrationsTotal.WithLabelValues("error").Inc()
		}
		return nil, err
	}
	metrics.RegistrationsTotal.WithLabelValues("created").Inc()
	return registration, nil
}

func (s *EventServiceImpl) ListRegistrations(ctx context.Context, actor model.Actor) ([]*model.Registration, error) {
	if !actor.IsUser() {
		return nil, apperrors.ErrSignInRequired
	}
	return s.registrationRepo.ListByUserID(ctx, *actor.UserID)
}

// publishNotice 通知為盡力而為，失敗只記 log，不影響主流程
func publishNotice(ctx context.Context, q queue.ReviewQueue, notice *model.ReviewNotice) {
	if q == nil {
		return
	}
	if err := q.Publish(ctx, notice); err != nil {
		logger.WithComponent("service").Warn("failed to publish review notice",
			zap.String("event_id", notice.EventID.String()),
			zap.String("action", string(notice.Action)),
			zap.Error(err))
	}
}
