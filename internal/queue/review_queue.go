package queue

import (
	"context"
	"errors"

	"campus-events/internal/model"
	"campus-events/pkg/logger"

	"go.uber.org/zap"
)

var ErrQueueFull = errors.New("review queue is full")

type Delivery struct {
	Data *model.ReviewNotice
	Ack  func()
	Nack func(requeue bool)
}

type ReviewQueue interface {
	// 發送審核通知
	Publish(ctx context.Context, notice *model.ReviewNotice) error
	// 訂閱審核通知；ctx 結束時關閉 channel
	Subscribe(ctx context.Context) (<-chan Delivery, error)
}

type MemoryReviewQueueImpl struct {
	// 使用 Go channel 模擬 MQ
	ch chan *model.ReviewNotice
}

func NewMemoryReviewQueue(bufferSize int) ReviewQueue {
	if bufferSize <= 0 {
		bufferSize = 1
	}
	return &MemoryReviewQueueImpl{
		ch: make(chan *model.ReviewNotice, bufferSize),
	}
}

func (q *MemoryReviewQueueImpl) Publish(ctx context.Context, notice *model.ReviewNotice) error {
	select {
	case q.ch <- notice:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	default:
		return ErrQueueFull
	}
}

func (q *MemoryReviewQueueImpl) Subscribe(ctx context.Context) (<-chan Delivery, error) {
	out := make(chan Delivery)

	go func() {
		defer close(out)
		for {
			select {
			case <-ctx.Done():
				return
			case notice := <-q.ch:
				d := Delivery{
					Data: notice,
					Ack:  func() {},
					Nack: func(requeue bool) {
						if !requeue {
							return
						}
						select {
						case q.ch <- notice:
						default:
							logger.WithComponent("mq").Warn("requeue dropped, buffer full",
								zap.String("event_id", notice.EventID.String()))
						}
					},
				}
				select {
				case out <- d:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	return out, nil
}
