package session_test

import (
	"context"
	"testing"
	"time"

	"campus-events/internal/model"
	"campus-events/internal/session"
	apperrors "campus-events/pkg/app_errors"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupStore(t *testing.T, secret string) (*miniredis.Miniredis, session.Store) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, session.NewRedisStore(client, secret, time.Hour)
}

func TestRedisStore(t *testing.T) {
	ctx := context.Background()
	user := model.UserActor(&model.User{ID: uuid.New(), Email: "ada@campus.edu", FullName: "Ada"})
	admin := model.AdminActor("admin@campus.edu")

	t.Run("CreateThenResolve", func(t *testing.T) {
		_, store := setupStore(t, "secret")

		for _, actor := range []model.Actor{user, admin} {
			sess, err := store.Create(ctx, actor)
			require.NoError(t, err)
			assert.NotEmpty(t, sess.Token)
			assert.True(t, sess.ExpiresAt.After(time.Now()))

			got, err := store.Resolve(ctx, sess.Token)
			require.NoError(t, err)
			assert.Equal(t, actor, got)
		}
	})

	t.Run("Failed - Anonymous", func(t *testing.T) {
		_, store := setupStore(t, "secret")

		_, err := store.Create(ctx, model.AnonymousActor())

		assert.ErrorIs(t, err, apperrors.ErrInvalidInput)
	})

	t.Run("Revoke", func(t *testing.T) {
		_, store := setupStore(t, "secret")
		sess, err := store.Create(ctx, user)
		require.NoError(t, err)

		require.NoError(t, store.Revoke(ctx, sess.Token))

		_, err = store.Resolve(ctx, sess.Token)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("RevokeGarbageToken", func(t *testing.T) {
		_, store := setupStore(t, "secret")

		assert.NoError(t, store.Revoke(ctx, "not-a-token"))
	})

	t.Run("ExpiredRecord", func(t *testing.T) {
		mr, store := setupStore(t, "secret")
		sess, err := store.Create(ctx, user)
		require.NoError(t, err)

		mr.FastForward(2 * time.Hour)

		actor, err := store.Resolve(ctx, sess.Token)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
		assert.False(t, actor.IsAuthenticated())
	})

	t.Run("WrongSecret", func(t *testing.T) {
		mr := miniredis.RunT(t)
		client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
		defer client.Close()
		issuer := session.NewRedisStore(client, "secret-a", time.Hour)
		verifier := session.NewRedisStore(client, "secret-b", time.Hour)

		sess, err := issuer.Create(ctx, admin)
		require.NoError(t, err)

		_, err = verifier.Resolve(ctx, sess.Token)
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})

	t.Run("TamperedToken", func(t *testing.T) {
		_, store := setupStore(t, "secret")
		sess, err := store.Create(ctx, user)
		require.NoError(t, err)

		_, err = store.Resolve(ctx, sess.Token+"x")
		assert.ErrorIs(t, err, apperrors.ErrSessionNotFound)
	})
}
