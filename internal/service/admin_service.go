package service

import (
	"context"
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

// AdminService 每次呼叫都重新檢查 actor，不信任先前的結果
type AdminService interface {
	ListByStatus(ctx context.Context, actor model.Actor, status model.EventStatus) ([]*model.Event, error)
	// setEventStatus：目前只有 pending -> approved
	SetStatus(ctx context.Context, actor model.Actor, eventID uuid.UUID, status model.EventStatus) (*model.Event, error)
	// deleteEvent：駁回即刪除
	Reject(ctx context.Context, actor model.Actor, eventID uuid.UUID) error
	Analytics(ctx context.Context, actor model.Actor) (*model.EventAnalytics, error)
}

type AdminServiceImpl struct {
	repo          repository.EventRepository
	approvedCache cache.ApprovedEventsCache
	reviewQueue   queue.ReviewQueue
}

func NewAdminService(
	repo repository.EventRepository,
	approvedCache cache.ApprovedEventsCache,
	reviewQueue queue.ReviewQueue,
) AdminService {
	return &AdminServiceImpl{
		repo:          repo,
		approvedCache: approvedCache,
		reviewQueue:   reviewQueue,
	}
}

func requireAdmin(actor model.Actor) error {
	if !actor.IsAdmin() {
		return apperrors.ErrAdminAuthRequired
	}
	return nil
}

func (s *AdminServiceImpl) ListByStatus(ctx context.Context, actor model.Actor, status model.EventStatus) ([]*model.Event, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}
	return s.repo.ListByStatus(ctx, status)
}

func (s *AdminServiceImpl) SetStatus(ctx context.Context, actor model.Actor, eventID uuid.UUID, status model.EventStatus) (*model.Event, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidInput
	}

	// 條件式更新：已核准的活動再次核准會回 ErrInvalidEventStatus
	event, err := s.repo.UpdateStatus(ctx, eventID, model.EventStatusPending, status)
	if err != nil {
		return nil, err
	}

	s.invalidateApproved(ctx)
	metrics.ReviewDecisionsTotal.WithLabelValues(string(model.ReviewActionApproved)).Inc()
	publishNotice(ctx, s.reviewQueue, &model.ReviewNotice{
		EventID:    event.ID,
		Action:     model.ReviewActionApproved,
		ActorEmail: actor.Email,
		Title:      event.Title,
		OccurredAt: time.Now().UTC(),
	})

	return event, nil
}

func (s *AdminServiceImpl) Reject(ctx context.Context, actor model.Actor, eventID uuid.UUID) error {
	if err := requireAdmin(actor); err != nil {
		return err
	}

	// 先取標題給審核紀錄用，刪除後就查不到了
	event, err := s.repo.FindByID(ctx, eventID)
	if err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, eventID); err != nil {
		return err
	}

	if event.Status == model.EventStatusApproved {
		s.invalidateApproved(ctx)
	}
	metrics.ReviewDecisionsTotal.WithLabelValues(string(model.ReviewActionRejected)).Inc()
	publishNotice(ctx, s.reviewQueue, &model.ReviewNotice{
		EventID:    eventID,
		Action:     model.ReviewActionRejected,
		ActorEmail: actor.Email,
		Title:      event.Title,
		OccurredAt: time.Now().UTC(),
	})

	return nil
}

func (s *AdminServiceImpl) Analytics(ctx context.Context, actor model.Actor) (*model.EventAnalytics, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	events, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	analytics := model.NewEventAnalytics(events)
	return &analytics, nil
}

func (s *AdminServiceImpl) invalidateApproved(ctx context.Context) {
	if err := s.approvedCache.Invalidate(ctx); err != nil {
		logger.WithComponent("service").Warn("failed to invalidate approved events cache", zap.Error(err))
	}
}
