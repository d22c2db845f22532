package service_test

import (
	"context"
	"errors"
	"testing"

	cacheMocks "campus-events/internal/cache/mocks"
	"campus-events/internal/model"
	queueMocks "campus-events/internal/queue/mocks"
	repoMocks "campus-events/internal/repository/mocks"
	"campus-events/internal/service"
	apperrors "campus-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var adminActor = model.AdminActor("admin@campus.edu")

func setupAdminService(t *testing.T) (service.AdminService, *repoMocks.MockEventRepository, *cacheMocks.MockApprovedEventsCache, *queueMocks.MockReviewQueue) {
	eventRepo := repoMocks.NewMockEventRepository(t)
	approvedCache := cacheMocks.NewMockApprovedEventsCache(t)
	reviewQueue := queueMocks.NewMockReviewQueue(t)
	return service.NewAdminService(eventRepo, approvedCache, reviewQueue), eventRepo, approvedCache, reviewQueue
}

func TestAdminService_RequiresAdmin(t *testing.T) {
	ctx := context.Background()
	user := model.UserActor(&model.User{ID: uuid.New()})

	for _, actor := range []model.Actor{model.AnonymousActor(), user} {
		t.Run(string(actor.Kind), func(t *testing.T) {
			svc, eventRepo, _, _ := setupAdminService(t)

			_, err := svc.ListByStatus(ctx, actor, model.EventStatusPending)
			assert.ErrorIs(t, err, apperrors.ErrAdminAuthRequired)

			_, err = svc.SetStatus(ctx, actor, uuid.New(), model.EventStatusApproved)
			assert.ErrorIs(t, err, apperrors.ErrAdminAuthRequired)

			err = svc.Reject(ctx, actor, uuid.New())
			assert.ErrorIs(t, err, apperrors.ErrAdminAuthRequired)

			_, err = svc.Analytics(ctx, actor)
			assert.ErrorIs(t, err, apperrors.ErrAdminAuthRequired)

			assert.Empty(t, eventRepo.Calls)
		})
	}
}

func TestAdminService_ListByStatus(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, eventRepo, _, _ := setupAdminService(t)
		pending := []*model.Event{{ID: uuid.New(), Status: model.EventStatusPending}}

		eventRepo.EXPECT().ListByStatus(ctx, model.EventStatusPending).Return(pending, nil).Once()

		events, err := svc.ListByStatus(ctx, adminActor, model.EventStatusPending)

		require.NoError(t, err)
		assert.Equal(t, pending, events)
	})

	t.Run("Failed - InvalidStatus", func(t *testing.T) {
		svc, _, _, _ := setupAdminService(t)

		_, err := svc.ListByStatus(ctx, adminActor, model.EventStatus("rejected"))

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})
}

func TestAdminService_SetStatus(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		svc, eventRepo, approvedCache, reviewQueue := setupAdminService(t)

		eventRepo.EXPECT().UpdateStatus(ctx, eventID, model.EventStatusPending, model.EventStatusApproved).
			Return(&model.Event{ID: eventID, Title: "Concert", Status: model.EventStatusApproved}, nil).Once()
		approvedCache.EXPECT().Invalidate(ctx).Return(nil).Once()
		reviewQueue.EXPECT().Publish(ctx, mock.MatchedBy(func(n *model.ReviewNotice) bool {
			return n.EventID == eventID && n.Action == model.ReviewActionApproved && n.ActorEmail == "admin@campus.edu"
		})).Return(nil).Once()

		event, err := svc.SetStatus(ctx, adminActor, eventID, model.EventStatusApproved)

		require.NoError(t, err)
		assert.Equal(t, model.EventStatusApproved, event.Status)
	})

	t.Run("Failed - AlreadyApproved", func(t *testing.T) {
		svc, eventRepo, approvedCache, _ := setupAdminService(t)

		eventRepo.EXPECT().UpdateStatus(ctx, eventID, model.EventStatusPending, model.EventStatusApproved).
			Return(nil, apperrors.ErrInvalidEventStatus).Once()

		_, err := svc.SetStatus(ctx, adminActor, eventID, model.EventStatusApproved)

		assert.ErrorIs(t, err, apperrors.ErrInvalidEventStatus)
		approvedCache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		svc, eventRepo, _, _ := setupAdminService(t)

		eventRepo.EXPECT().UpdateStatus(ctx, eventID, model.EventStatusPending, model.EventStatusApproved).
			Return(nil, apperrors.ErrEventNotFound).Once()

		_, err := svc.SetStatus(ctx, adminActor, eventID, model.EventStatusApproved)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
	})

	t.Run("CacheFailureIgnored", func(t *testing.T) {
		svc, eventRepo, approvedCache, reviewQueue := setupAdminService(t)

		eventRepo.EXPECT().UpdateStatus(ctx, eventID, model.EventStatusPending, model.EventStatusApproved).
			Return(&model.Event{ID: eventID, Status: model.EventStatusApproved}, nil).Once()
		approvedCache.EXPECT().Invalidate(ctx).Return(errors.New("redis down")).Once()
		reviewQueue.EXPECT().Publish(ctx, mock.Anything).Return(nil).Once()

		_, err := svc.SetStatus(ctx, adminActor, eventID, model.EventStatusApproved)

		require.NoError(t, err)
	})
}

func TestAdminService_Reject(t *testing.T) {
	ctx := context.Background()
	eventID := uuid.New()

	t.Run("PendingEvent", func(t *testing.T) {
		svc, eventRepo, approvedCache, reviewQueue := setupAdminService(t)

		eventRepo.EXPECT().FindByID(ctx, eventID).Return(&model.Event{ID: eventID, Title: "Spam", Status: model.EventStatusPending}, nil).Once()
		eventRepo.EXPECT().Delete(ctx, eventID).Return(nil).Once()
		reviewQueue.EXPECT().Publish(ctx, mock.MatchedBy(func(n *model.ReviewNotice) bool {
			return n.Action == model.ReviewActionRejected && n.Title == "Spam"
		})).Return(nil).Once()

		err := svc.Reject(ctx, adminActor, eventID)

		require.NoError(t, err)
		approvedCache.AssertNotCalled(t, "Invalidate", mock.Anything)
	})

	t.Run("ApprovedEventInvalidatesCache", func(t *testing.T) {
		svc, eventRepo, approvedCache, reviewQueue := setupAdminService(t)

		eventRepo.EXPECT().FindByID(ctx, eventID).Return(&model.Event{ID: eventID, Status: model.EventStatusApproved}, nil).Once()
		eventRepo.EXPECT().Delete(ctx, eventID).Return(nil).Once()
		approvedCache.EXPECT().Invalidate(ctx).Return(nil).Once()
		reviewQueue.EXPECT().Publish(ctx, mock.Anything).Return(nil).Once()

		err := svc.Reject(ctx, adminActor, eventID)

		require.NoError(t, err)
	})

	t.Run("Failed - NotFound", func(t *testing.T) {
		svc, eventRepo, _, reviewQueue := setupAdminService(t)

		eventRepo.EXPECT().FindByID(ctx, eventID).Return(nil, apperrors.ErrEventNotFound).Once()

		err := svc.Reject(ctx, adminActor, eventID)

		assert.ErrorIs(t, err, apperrors.ErrEventNotFound)
		eventRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		reviewQueue.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestAdminService_Analytics(t *testing.T) {
	ctx := context.Background()
	svc, eventRepo, _, _ := setupAdminService(t)

	eventRepo.EXPECT().ListAll(ctx).Return([]*model.Event{
		{Status: model.EventStatusPending, Category: model.CategoryAcademic},
		{Status: model.EventStatusApproved, Category: model.CategoryAcademic},
		{Status: model.EventStatusApproved, Category: model.CategoryCultural},
	}, nil).Once()

	analytics, err := svc.Analytics(ctx, adminActor)

	require.NoError(t, err)
	assert.Equal(t, 3, analytics.TotalEvents)
	assert.Equal(t, 1, analytics.PendingEvents)
	assert.Equal(t, 2, analytics.ApprovedEvents)
	assert.Equal(t, 2, analytics.CategoryCounts[model.CategoryAcademic])
}
