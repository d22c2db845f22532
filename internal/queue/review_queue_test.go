package queue_test

import (
	"context"
	"testing"
	"time"

	"campus-events/internal/model"
	"campus-events/internal/queue"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func newNotice(action model.ReviewAction) *model.ReviewNotice {
	return &model.ReviewNotice{
		EventID:    uuid.New(),
		Action:     action,
		Title:      "Hack Night",
		OccurredAt: time.Now().UTC(),
	}
}

func TestMemoryReviewQueue_PublishSubscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryReviewQueue(4)
	notice := newNotice(model.ReviewActionSubmitted)
	require.NoError(t, q.Publish(ctx, notice))

	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)

	select {
	case d := <-ch:
		assert.Equal(t, notice, d.Data)
		d.Ack()
	case <-ctx.Done():
		t.Fatal("timeout waiting for delivery")
	}

	cancel()
	for range ch {
	}
}

func TestMemoryReviewQueue_Full(t *testing.T) {
	ctx := context.Background()
	q := queue.NewMemoryReviewQueue(1)

	require.NoError(t, q.Publish(ctx, newNotice(model.ReviewActionSubmitted)))
	err := q.Publish(ctx, newNotice(model.ReviewActionApproved))

	assert.ErrorIs(t, err, queue.ErrQueueFull)
}

func TestMemoryReviewQueue_NackRequeue(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	q := queue.NewMemoryReviewQueue(2)
	notice := newNotice(model.ReviewActionApproved)
	require.NoError(t, q.Publish(ctx, notice))

	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)

	first := <-ch
	first.Nack(true)

	select {
	case d := <-ch:
		assert.Equal(t, notice.EventID, d.Data.EventID)
		d.Nack(false)
	case <-ctx.Done():
		t.Fatal("requeued notice was not redelivered")
	}

	select {
	case d := <-ch:
		t.Fatalf("discarded notice redelivered: %v", d.Data.EventID)
	case <-time.After(100 * time.Millisecond):
	}

	cancel()
	for range ch {
	}
}

func TestMemoryReviewQueue_CancelClosesChannel(t *testing.T) {
	defer goleak.VerifyNone(t)

	ctx, cancel := context.WithCancel(context.Background())
	q := queue.NewMemoryReviewQueue(1)
	ch, err := q.Subscribe(ctx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
