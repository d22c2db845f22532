package worker

import (
	"context"
	"sync"
	"time"

	"campus-events/internal/metrics"
	"campus-events/internal/queue"
	"campus-events/internal/service"
	"campus-events/pkg/logger"

	"go.uber.org/zap"
)

const maxRetryBackoff = 30 * time.Second

type ReviewWorker interface {
	// 訂閱審核通知並寫入審核紀錄，ctx 結束後停止
	Start(ctx context.Context) error
	// 等待背景 goroutine 結束
	Wait()
}

type ReviewWorkerImpl struct {
	service service.ReviewService
	queue   queue.ReviewQueue
	backoff time.Duration
	wg      sync.WaitGroup
}

// NewReviewWorker backoff 為第一次重試前的等待，連續失敗時加倍，上限 maxRetryBackoff
func NewReviewWorker(service service.ReviewService, queue queue.ReviewQueue, backoff time.Duration) ReviewWorker {
	if backoff <= 0 {
		backoff = time.Second
	}
	return &ReviewWorkerImpl{
		service: service,
		queue:   queue,
		backoff: backoff,
	}
}

func (w *ReviewWorkerImpl) Start(ctx context.Context) error {
	msgs, err := w.queue.Subscribe(ctx)
	if err != nil {
		return err
	}

	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		failures := 0
		for msg := range msgs {
			if err := w.service.Record(ctx, msg.Data); err != nil {
				failures++
				delay := w.retryDelay(failures)
				// 資料庫暫時不可用，等一下再交回 queue 重試
				logger.WithComponent("worker").Warn("record review notice failed",
					zap.String("event_id", msg.Data.EventID.String()),
					zap.String("action", string(msg.Data.Action)),
					zap.Int("failures", failures),
					zap.Duration("retry_in", delay),
					zap.Error(err))
				metrics.ReviewNoticesProcessed.WithLabelValues("retry").Inc()
				sleep(ctx, delay)
				msg.Nack(true)
				if ctx.Err() != nil {
					return
				}
				continue
			}
			failures = 0
			metrics.ReviewNoticesProcessed.WithLabelValues("recorded").Inc()
			msg.Ack()
		}
	}()
	return nil
}

func (w *ReviewWorkerImpl) Wait() {
	w.wg.Wait()
}

func (w *ReviewWorkerImpl) retryDelay(failures int) time.Duration {
	delay := w.backoff
	for i := 1; i < failures && delay < maxRetryBackoff; i++ {
		delay *= 2
	}
	return min(delay, maxRetryBackoff)
}

// sleep 等待 d 或 ctx 結束
func sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
