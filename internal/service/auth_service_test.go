package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"campus-events/config"
	"campus-events/internal/model"
	repoMocks "campus-events/internal/repository/mocks"
	"campus-events/internal/service"
	"campus-events/internal/session"
	sessionMocks "campus-events/internal/session/mocks"
	apperrors "campus-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

var testAdmin = config.AdminConfig{Email: "admin@campus.edu", Password: "admin-secret"}

func setupAuthService(t *testing.T, admin config.AdminConfig) (service.AuthService, *repoMocks.MockUserRepository, *sessionMocks.MockStore) {
	users := repoMocks.NewMockUserRepository(t)
	sessions := sessionMocks.NewMockStore(t)
	return service.NewAuthService(users, sessions, admin), users, sessions
}

func issued(actor model.Actor) *session.Session {
	return &session.Session{Token: "token-" + string(actor.Kind), Actor: actor, ExpiresAt: time.Now().Add(time.Hour)}
}

func TestAuthService_SignUp(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, users, sessions := setupAuthService(t, testAdmin)

		var created *model.User
		users.EXPECT().Create(ctx, mock.Anything).RunAndReturn(func(_ context.Context, u *model.User) (*model.User, error) {
			created = u
			return u, nil
		}).Once()
		sessions.EXPECT().Create(ctx, mock.MatchedBy(func(a model.Actor) bool {
			return a.IsUser() && a.Email == "ada@campus.edu"
		})).RunAndReturn(func(_ context.Context, a model.Actor) (*session.Session, error) {
			return issued(a), nil
		}).Once()

		sess, err := svc.SignUp(ctx, model.SignUpRequest{Email: " Ada@Campus.edu ", Password: "secret1", FullName: "Ada"})

		require.NoError(t, err)
		assert.Equal(t, "Ada", sess.Actor.DisplayName)
		assert.Equal(t, "ada@campus.edu", created.Email)
		assert.NotEqual(t, "secret1", created.PasswordHash)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(created.PasswordHash), []byte("secret1")))
	})

	t.Run("Failed - WeakPassword", func(t *testing.T) {
		svc, users, _ := setupAuthService(t, testAdmin)

		_, err := svc.SignUp(ctx, model.SignUpRequest{Email: "ada@campus.edu", Password: "12345", FullName: "Ada"})

		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
		users.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - EmailTaken", func(t *testing.T) {
		svc, users, sessions := setupAuthService(t, testAdmin)

		users.EXPECT().Create(ctx, mock.Anything).Return(nil, apperrors.ErrEmailTaken).Once()

		_, err := svc.SignUp(ctx, model.SignUpRequest{Email: "ada@campus.edu", Password: "secret1", FullName: "Ada"})

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestAuthService_SignIn(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret1"), bcrypt.MinCost)
	require.NoError(t, err)
	user := &model.User{ID: uuid.New(), Email: "ada@campus.edu", FullName: "Ada", PasswordHash: string(hash)}

	t.Run("Success", func(t *testing.T) {
		svc, users, sessions := setupAuthService(t, testAdmin)

		users.EXPECT().FindByEmail(ctx, "ada@campus.edu").Return(user, nil).Once()
		sessions.EXPECT().Create(ctx, model.UserActor(user)).Return(issued(model.UserActor(user)), nil).Once()

		sess, err := svc.SignIn(ctx, model.SignInRequest{Email: "ada@campus.edu", Password: "secret1"})

		require.NoError(t, err)
		assert.True(t, sess.Actor.IsUser())
	})

	t.Run("Failed - WrongPassword", func(t *testing.T) {
		svc, users, _ := setupAuthService(t, testAdmin)

		users.EXPECT().FindByEmail(ctx, "ada@campus.edu").Return(user, nil).Once()

		_, err := svc.SignIn(ctx, model.SignInRequest{Email: "ada@campus.edu", Password: "wrong"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("Failed - UnknownUser", func(t *testing.T) {
		svc, users, _ := setupAuthService(t, testAdmin)

		users.EXPECT().FindByEmail(ctx, "nobody@campus.edu").Return(nil, apperrors.ErrUserNotFound).Once()

		_, err := svc.SignIn(ctx, model.SignInRequest{Email: "nobody@campus.edu", Password: "secret1"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestAuthService_AdminSignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		svc, _, sessions := setupAuthService(t, testAdmin)

		sessions.EXPECT().Create(ctx, model.AdminActor("admin@campus.edu")).Return(issued(model.AdminActor("admin@campus.edu")), nil).Once()

		sess, err := svc.AdminSignIn(ctx, model.SignInRequest{Email: "ADMIN@campus.edu", Password: "admin-secret"})

		require.NoError(t, err)
		assert.True(t, sess.Actor.IsAdmin())
	})

	t.Run("Failed - WrongPassword", func(t *testing.T) {
		svc, _, sessions := setupAuthService(t, testAdmin)

		_, err := svc.AdminSignIn(ctx, model.SignInRequest{Email: "admin@campus.edu", Password: "guess"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidAdminLogin)
		sessions.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Failed - Disabled", func(t *testing.T) {
		svc, _, _ := setupAuthService(t, config.AdminConfig{Email: "admin@campus.edu"})

		_, err := svc.AdminSignIn(ctx, model.SignInRequest{Email: "admin@campus.edu", Password: ""})

		assert.ErrorIs(t, err, apperrors.ErrInvalidAdminLogin)
	})
}

func TestAuthService_CurrentActor(t *testing.T) {
	ctx := context.Background()

	t.Run("EmptyToken", func(t *testing.T) {
		svc, _, sessions := setupAuthService(t, testAdmin)

		actor, err := svc.CurrentActor(ctx, "")

		require.NoError(t, err)
		assert.False(t, actor.IsAuthenticated())
		sessions.AssertNotCalled(t, "Resolve", mock.Anything, mock.Anything)
	})

	t.Run("ExpiredToken", func(t *testing.T) {
		svc, _, sessions := setupAuthService(t, testAdmin)

		sessions.EXPECT().Resolve(ctx, "stale").Return(model.Actor{}, apperrors.ErrSessionNotFound).Once()

		actor, err := svc.CurrentActor(ctx, "stale")

		require.NoError(t, err)
		assert.Equal(t, model.ActorAnonymous, actor.Kind)
	})

	t.Run("StoreError", func(t *testing.T) {
		svc, _, sessions := setupAuthService(t, testAdmin)

		sessions.EXPECT().Resolve(ctx, "tok").Return(model.Actor{}, errors.New("redis down")).Once()

		actor, err := svc.CurrentActor(ctx, "tok")

		require.Error(t, err)
		assert.False(t, actor.IsAuthenticated())
	})

	t.Run("Valid", func(t *testing.T) {
		svc, _, sessions := setupAuthService(t, testAdmin)

		sessions.EXPECT().Resolve(ctx, "tok").Return(adminActor, nil).Once()

		actor, err := svc.CurrentActor(ctx, "tok")

		require.NoError(t, err)
		assert.True(t, actor.IsAdmin())
	})
}

func TestAuthService_SignOut(t *testing.T) {
	ctx := context.Background()
	svc, _, sessions := setupAuthService(t, testAdmin)

	sessions.EXPECT().Revoke(ctx, "tok").Return(nil).Once()

	require.NoError(t, svc.SignOut(ctx, "tok"))
	require.NoError(t, svc.SignOut(ctx, ""))
}
