package queue_test

import (
	"context"
	"testing"
	"time"

	"campus-events/internal/model"
	"campus-events/internal/queue"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStream(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func fastConfig() *queue.RedisStreamReviewQueueConfig {
	return &queue.RedisStreamReviewQueueConfig{
		ClaimMinIdleTime:   200 * time.Millisecond,
		MaxRetryCount:      3,
		ReadGroupBlockTime: 100 * time.Millisecond,
	}
}

// drain 等 Subscribe 的 goroutine 結束
func drain(ch <-chan queue.Delivery) {
	for range ch {
	}
}

func TestNewRedisStreamReviewQueue(t *testing.T) {
	_, client := setupStream(t)

	t.Run("success", func(t *testing.T) {
		q, err := queue.NewRedisStreamReviewQueue(client, "test-consumer", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})

	t.Run("group_already_exists", func(t *testing.T) {
		q, err := queue.NewRedisStreamReviewQueue(client, "", nil)
		require.NoError(t, err)
		require.NotNil(t, q)
	})
}

func TestRedisStreamReviewQueue_Subscribe_deliversPublishedNotice(t *testing.T) {
	ctx := context.Background()
	_, client := setupStream(t)

	q, err := queue.NewRedisStreamReviewQueue(client, "deliver-test", fastConfig())
	require.NoError(t, err)

	notice := newNotice(model.ReviewActionSubmitted)
	require.NoError(t, q.Publish(ctx, notice))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d, ok := <-ch:
		require.True(t, ok)
		require.NotNil(t, d.Data)
		assert.Equal(t, notice.EventID, d.Data.EventID)
		assert.Equal(t, notice.Action, d.Data.Action)
		assert.Equal(t, notice.Title, d.Data.Title)
		assert.True(t, notice.OccurredAt.Equal(d.Data.OccurredAt))
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for delivery")
	}

	cancel()
	drain(ch)
}

func TestRedisStreamReviewQueue_Ack_removesFromPending(t *testing.T) {
	ctx := context.Background()
	_, client := setupStream(t)

	q, err := queue.NewRedisStreamReviewQueue(client, "ack-test", fastConfig())
	require.NoError(t, err)
	require.NoError(t, q.Publish(ctx, newNotice(model.ReviewActionApproved)))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-ch:
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for delivery")
	}

	pending, err := client.XPending(ctx, queue.StreamKey, queue.ConsumerGroupName).Result()
	require.NoError(t, err)
	assert.Zero(t, pending.Count)

	cancel()
	drain(ch)
}

func TestRedisStreamReviewQueue_NackRequeue_redeliversAfterIdle(t *testing.T) {
	ctx := context.Background()
	_, client := setupStream(t)

	q, err := queue.NewRedisStreamReviewQueue(client, "requeue-test", fastConfig())
	require.NoError(t, err)

	notice := newNotice(model.ReviewActionRejected)
	require.NoError(t, q.Publish(ctx, notice))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-ch:
		d.Nack(true)
	case <-subCtx.Done():
		t.Fatal("timeout waiting for first delivery")
	}

	select {
	case d, ok := <-ch:
		require.True(t, ok)
		assert.Equal(t, notice.EventID, d.Data.EventID)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("requeued notice was not claimed again")
	}

	cancel()
	drain(ch)
}

func TestRedisStreamReviewQueue_NackDiscard_preventsRedelivery(t *testing.T) {
	ctx := context.Background()
	_, client := setupStream(t)

	q, err := queue.NewRedisStreamReviewQueue(client, "discard-test", fastConfig())
	require.NoError(t, err)

	notice := newNotice(model.ReviewActionSubmitted)
	require.NoError(t, q.Publish(ctx, notice))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-ch:
		d.Nack(false)
	case <-subCtx.Done():
		t.Fatal("timeout waiting for delivery")
	}

	select {
	case d, ok := <-ch:
		if ok && d.Data != nil && d.Data.EventID == notice.EventID {
			t.Fatal("discarded notice was delivered again")
		}
	case <-time.After(time.Second):
	}

	cancel()
	drain(ch)
}

func TestRedisStreamReviewQueue_MalformedMessageDropped(t *testing.T) {
	ctx := context.Background()
	_, client := setupStream(t)

	q, err := queue.NewRedisStreamReviewQueue(client, "malformed-test", fastConfig())
	require.NoError(t, err)

	require.NoError(t, client.XAdd(ctx, &redis.XAddArgs{
		Stream: queue.StreamKey,
		Values: map[string]interface{}{"notice": "{broken"},
	}).Err())
	good := newNotice(model.ReviewActionApproved)
	require.NoError(t, q.Publish(ctx, good))

	subCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	select {
	case d := <-ch:
		assert.Equal(t, good.EventID, d.Data.EventID)
		d.Ack()
	case <-subCtx.Done():
		t.Fatal("timeout waiting for valid notice")
	}

	cancel()
	drain(ch)
}

func TestRedisStreamReviewQueue_Subscribe_ctxCancel_closesChannel(t *testing.T) {
	_, client := setupStream(t)

	q, err := queue.NewRedisStreamReviewQueue(client, "cancel-test", fastConfig())
	require.NoError(t, err)

	subCtx, cancel := context.WithCancel(context.Background())
	ch, err := q.Subscribe(subCtx)
	require.NoError(t, err)

	cancel()
	select {
	case _, ok := <-ch:
		assert.False(t, ok)
	case <-time.After(3 * time.Second):
		t.Fatal("channel not closed after cancel")
	}
}
