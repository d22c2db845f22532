package client

import (
	"context"
	"fmt"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"

	"github.com/google/uuid"
)

// ReviewFlow 管理員審核；每次呼叫都重新檢查身分
type ReviewFlow struct {
	backend  Backend
	session  *SessionStore
	notifier Notifier

	Pending   []*model.Event
	Approved  []*model.Event
	Analytics model.EventAnalytics
	loading   bool
}

func NewReviewFlow(backend Backend, session *SessionStore, notifier Notifier) *ReviewFlow {
	return &ReviewFlow{
		backend:   backend,
		session:   session,
		notifier:  notifier,
		Pending:   []*model.Event{},
		Approved:  []*model.Event{},
		Analytics: model.NewEventAnalytics(nil),
	}
}

func (f *ReviewFlow) Loading() bool { return f.loading }

func (f *ReviewFlow) requireAdmin() error {
	if !f.session.CurrentActor().IsAdmin() {
		f.notifier.Notify(Notification{
			Title:       "Error",
			Description: apperrors.ErrAdminAuthRequired.Error(),
			Destructive: true,
		})
		return apperrors.ErrAdminAuthRequired
	}
	return nil
}

func (f *ReviewFlow) fail(description string, err error) error {
	f.session.expire(err)
	f.notifier.Notify(Notification{
		Title:       "Error",
		Description: fmt.Sprintf("%s: %v", description, err),
		Destructive: true,
	})
	return err
}

// Refresh 重新抓 pending 與 approved，並在本機重算統計
func (f *ReviewFlow) Refresh(ctx context.Context) error {
	if err := f.requireAdmin(); err != nil {
		return err
	}
	f.loading = true
	defer func() { f.loading = false }()

	pending, err := f.backend.ListEventsByStatus(ctx, model.EventStatusPending)
	if err != nil {
		return f.fail("Failed to fetch events", err)
	}
	approved, err := f.backend.ListEventsByStatus(ctx, model.EventStatusApproved)
	if err != nil {
		return f.fail("Failed to fetch events", err)
	}

	f.Pending = pending
	f.Approved = approved
	all := make([]*model.Event, 0, len(pending)+len(approved))
	all = append(all, pending...)
	all = append(all, approved...)
	f.Analytics = model.NewEventAnalytics(all)
	return nil
}

func (f *ReviewFlow) Approve(ctx context.Context, eventID uuid.UUID) error {
	if err := f.requireAdmin(); err != nil {
		return err
	}
	f.loading = true
	err := f.backend.SetEventStatus(ctx, eventID, model.EventStatusApproved)
	f.loading = false
	if err != nil {
		return f.fail("Failed to approve event", err)
	}

	f.notifier.Notify(Notification{
		Title:       "Event Approved",
		Description: "The event has been approved successfully.",
	})
	return f.Refresh(ctx)
}

// Reject 直接刪除活動，無法復原
func (f *ReviewFlow) Reject(ctx context.Context, eventID uuid.UUID) error {
	if err := f.requireAdmin(); err != nil {
		return err
	}
	f.loading = true
	err := f.backend.DeleteEvent(ctx, eventID)
	f.loading = false
	if err != nil {
		return f.fail("Failed to reject event", err)
	}

	f.notifier.Notify(Notification{
		Title:       "Event Rejected",
		Description: "The event has been rejected and deleted.",
	})
	return f.Refresh(ctx)
}
