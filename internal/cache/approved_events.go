package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"

	"github.com/redis/go-redis/v9"
)

const (
	approvedEventsKey        = "events:approved"
	approvedEventsVersionKey = "events:approved:version"
)

// ErrVersionChanged 讀取資料庫期間列表已被失效，這次不回填
var ErrVersionChanged = errors.New("approved events changed during refill")

// ApprovedEventsCache 快取已核准活動列表（讀多寫少）
type ApprovedEventsCache interface {
	// 獲取：快取不存在時回傳 ErrCacheMiss
	Get(ctx context.Context) ([]*model.Event, error)
	// 版本：查詢資料庫之前先取得，回填時一併帶入
	Version(ctx context.Context) (int64, error)
	// 寫入：版本與 version 相同才寫入，否則回傳 ErrVersionChanged
	Set(ctx context.Context, version int64, events []*model.Event) error
	// 失效：核准、駁回後呼叫，版本加一
	Invalidate(ctx context.Context) error
}

type RedisApprovedEventsCacheImpl struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisApprovedEventsCache(client *redis.Client, ttl time.Duration) ApprovedEventsCache {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &RedisApprovedEventsCacheImpl{
		client: client,
		ttl:    ttl,
	}
}

func (c *RedisApprovedEventsCacheImpl) Get(ctx context.Context) ([]*model.Event, error) {
	raw, err := c.client.Get(ctx, approvedEventsKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, apperrors.ErrCacheMiss
	}
	if err != nil {
		return nil, err
	}

	events := make([]*model.Event, 0)
	if err := json.Unmarshal(raw, &events); err != nil {
		// 格式壞掉就當作沒有快取
		_ = c.client.Del(ctx, approvedEventsKey).Err()
		return nil, apperrors.ErrCacheMiss
	}
	return events, nil
}

func (c *RedisApprovedEventsCacheImpl) Version(ctx context.Context) (int64, error) {
	version, err := c.client.Get(ctx, approvedEventsVersionKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	return version, err
}

func (c *RedisApprovedEventsCacheImpl) Set(ctx context.Context, version int64, events []*model.Event) error {
	if events == nil {
		events = []*model.Event{}
	}
	raw, err := json.Marshal(events)
	if err != nil {
		return fmt.Errorf("marshal approved events: %w", err)
	}

	// 版本比對與寫入必須是同一個原子操作
	script := `
		local current = redis.call('GET', KEYS[2]) or '0'
		if current ~= ARGV[1] then
			return 0
		end
		redis.call('SET', KEYS[1], ARGV[2], 'PX', ARGV[3])
		return 1
	`
	written, err := c.client.Eval(ctx, script,
		[]string{approvedEventsKey, approvedEventsVersionKey},
		strconv.FormatInt(version, 10), raw, c.ttl.Milliseconds(),
	).Int()
	if err != nil {
		return err
	}
	if written == 0 {
		return ErrVersionChanged
	}
	return nil
}

// Invalidate 先加版本再刪除，進行中的回填會因版本不符而放棄
func (c *RedisApprovedEventsCacheImpl) Invalidate(ctx context.Context) error {
	_, err := c.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Incr(ctx, approvedEventsVersionKey)
		pipe.Del(ctx, approvedEventsKey)
		return nil
	})
	return err
}
