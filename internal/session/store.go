package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Session 登入後發給 client 的憑證
type Session struct {
	Token     string      `json:"token"`
	Actor     model.Actor `json:"actor"`
	ExpiresAt time.Time   `json:"expires_at"`
}

type Store interface {
	// 建立：簽發 token 並在 Redis 記錄 session
	Create(ctx context.Context, actor model.Actor) (*Session, error)
	// 解析：token 無效、過期或已登出都回傳 ErrSessionNotFound
	Resolve(ctx context.Context, token string) (model.Actor, error)
	// 登出：刪除 Redis 紀錄，之後同一 token 不再有效
	Revoke(ctx context.Context, token string) error
}

type claims struct {
	Kind model.ActorKind `json:"kind"`
	jwt.RegisteredClaims
}

type RedisStoreImpl struct {
	client *redis.Client
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewRedisStore(client *redis.Client, secret string, ttl time.Duration) Store {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &RedisStoreImpl{
		client: client,
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

func (s *RedisStoreImpl) key(jti string) string {
	return fmt.Sprintf("session:%s", jti)
}

func (s *RedisStoreImpl) Create(ctx context.Context, actor model.Actor) (*Session, error) {
	if !actor.IsAuthenticated() {
		return nil, apperrors.ErrInvalidInput
	}

	now := s.now()
	expiresAt := now.Add(s.ttl)
	jti := uuid.NewString()

	subject := actor.Email
	if actor.UserID != nil {
		subject = actor.UserID.String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Kind: actor.Kind,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	})
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("sign session token: %w", err)
	}

	raw, err := json.Marshal(actor)
	if err != nil {
		return nil, fmt.Errorf("marshal actor: %w", err)
	}
	if err := s.client.Set(ctx, s.key(jti), raw, s.ttl).Err(); err != nil {
		return nil, err
	}

	return &Session{Token: signed, Actor: actor, ExpiresAt: expiresAt}, nil
}

func (s *RedisStoreImpl) parse(token string, opts ...jwt.ParserOption) (*claims, error) {
	opts = append(opts, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	parsed, err := jwt.ParseWithClaims(token, &claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil {
		return nil, apperrors.ErrSessionNotFound
	}
	c, ok := parsed.Claims.(*claims)
	if !ok || !parsed.Valid || c.ID == "" {
		return nil, apperrors.ErrSessionNotFound
	}
	return c, nil
}

func (s *RedisStoreImpl) Resolve(ctx context.Context, token string) (model.Actor, error) {
	c, err := s.parse(token)
	if err != nil {
		return model.AnonymousActor(), err
	}

	raw, err := s.client.Get(ctx, s.key(c.ID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.AnonymousActor(), apperrors.ErrSessionNotFound
	}
	if err != nil {
		return model.AnonymousActor(), err
	}

	var actor model.Actor
	if err := json.Unmarshal(raw, &actor); err != nil || actor.Kind != c.Kind {
		return model.AnonymousActor(), apperrors.ErrSessionNotFound
	}
	return actor, nil
}

func (s *RedisStoreImpl) Revoke(ctx context.Context, token string) error {
	// 已過期的 token 也允許登出
	c, err := s.parse(token, jwt.WithoutClaimsValidation())
	if err != nil {
		return nil
	}
	return s.client.Del(ctx, s.key(c.ID)).Err()
}
