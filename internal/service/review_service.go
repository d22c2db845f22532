package service

import (
	"context"

	"campus-events/internal/model"
	"campus-events/internal/repository"

	"github.com/google/uuid"
)

type ReviewService interface {
	// worker 呼叫：寫入一筆審核紀錄
	Record(ctx context.Context, notice *model.ReviewNotice) error
	// 管理員查詢某活動的審核歷程
	History(ctx context.Context, actor model.Actor, eventID uuid.UUID) ([]*model.ReviewLogEntry, error)
}

type ReviewServiceImpl struct {
	repo repository.ReviewLogRepository
}

func NewReviewService(repo repository.ReviewLogRepository) ReviewService {
	return &ReviewServiceImpl{repo: repo}
}

func (s *ReviewServiceImpl) Record(ctx context.Context, notice *model.ReviewNotice) error {
	_, err := s.repo.Append(ctx, notice)
	return err
}

func (s *ReviewServiceImpl) History(ctx context.Context, actor model.Actor, eventID uuid.UUID) ([]*model.ReviewLogEntry, error) {
	if err := requireAdmin(actor); err != nil {
		return nil, err
	}
	return s.repo.ListByEventID(ctx, eventID)
}
