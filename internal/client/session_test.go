package client

import (
	"context"
	"errors"
	"testing"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionStore_SignUp(t *testing.T) {
	ctx := context.Background()
	req := model.SignUpRequest{Email: "ada@campus.edu", Password: "secret1", FullName: "Ada"}

	t.Run("Success", func(t *testing.T) {
		state, _ := newTestState(t)
		auth := &fakeAuth{signUpResp: &model.AuthResponse{Token: "t1", Actor: testUser}}
		notifier := &recordingNotifier{}
		s := NewSessionStore(state, auth, notifier)

		require.NoError(t, s.SignUp(ctx, req))

		assert.Equal(t, testUser, s.CurrentActor())
		assert.Equal(t, "t1", s.Token())
		assert.Equal(t, "Welcome!", notifier.last().Title)
	})

	t.Run("Failed - WeakPasswordNeverCallsServer", func(t *testing.T) {
		state, _ := newTestState(t)
		auth := &fakeAuth{}
		notifier := &recordingNotifier{}
		s := NewSessionStore(state, auth, notifier)

		weak := req
		weak.Password = "12345"
		err := s.SignUp(ctx, weak)

		assert.ErrorIs(t, err, apperrors.ErrWeakPassword)
		assert.Zero(t, auth.signUpCalls)
		assert.Equal(t, "Password must be at least 6 characters long", notifier.last().Description)
	})

	t.Run("Failed - EmailTaken", func(t *testing.T) {
		state, _ := newTestState(t)
		notifier := &recordingNotifier{}
		s := NewSessionStore(state, &fakeAuth{err: apperrors.ErrEmailTaken}, notifier)

		err := s.SignUp(ctx, req)

		assert.ErrorIs(t, err, apperrors.ErrEmailTaken)
		assert.Equal(t, model.ActorAnonymous, s.CurrentActor().Kind)
		assert.Equal(t, "Sign Up Failed", notifier.last().Title)
	})
}

func TestSessionStore_SignIn(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		state, _ := newTestState(t)
		s := NewSessionStore(state, &fakeAuth{signInResp: &model.AuthResponse{Token: "t", Actor: testUser}}, &recordingNotifier{})

		require.NoError(t, s.SignIn(ctx, "ada@campus.edu", "secret1"))

		assert.True(t, s.CurrentActor().IsUser())
	})

	t.Run("Failed - InvalidCredentials", func(t *testing.T) {
		state, _ := newTestState(t)
		notifier := &recordingNotifier{}
		s := NewSessionStore(state, &fakeAuth{err: apperrors.ErrInvalidCredentials}, notifier)

		err := s.SignIn(ctx, "ada@campus.edu", "wrong")

		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
		assert.Equal(t, "Invalid email or password.", notifier.last().Description)
	})

	t.Run("AdminSignIn", func(t *testing.T) {
		state, _ := newTestState(t)
		notifier := &recordingNotifier{}
		s := NewSessionStore(state, &fakeAuth{adminResp: &model.AuthResponse{Token: "a", Actor: testAdmin}}, notifier)

		require.NoError(t, s.AdminSignIn(ctx, "admin@campus.edu", "pw"))

		assert.True(t, s.CurrentActor().IsAdmin())
		assert.Equal(t, "Welcome Admin!", notifier.last().Title)
	})

	t.Run("AdminSignIn - NonAdminResponseRejected", func(t *testing.T) {
		state, _ := newTestState(t)
		s := NewSessionStore(state, &fakeAuth{adminResp: &model.AuthResponse{Token: "u", Actor: testUser}}, &recordingNotifier{})

		err := s.AdminSignIn(ctx, "ada@campus.edu", "pw")

		assert.ErrorIs(t, err, apperrors.ErrInvalidAdminLogin)
		assert.Equal(t, model.ActorAnonymous, s.CurrentActor().Kind)
	})

	t.Run("SignInReplacesPreviousActor", func(t *testing.T) {
		state, _ := newTestState(t)
		signedIn(t, state, testAdmin)
		s := NewSessionStore(state, &fakeAuth{signInResp: &model.AuthResponse{Token: "t", Actor: testUser}}, &recordingNotifier{})

		require.NoError(t, s.SignIn(ctx, "ada@campus.edu", "secret1"))

		assert.False(t, s.CurrentActor().IsAdmin())
		assert.False(t, state.IsAdmin())
	})
}

func TestSessionStore_SignOut(t *testing.T) {
	ctx := context.Background()

	t.Run("ClearsEvenIfRemoteFails", func(t *testing.T) {
		state, _ := newTestState(t)
		signedIn(t, state, testUser)
		auth := &fakeAuth{signOutErr: errors.New("offline")}
		s := NewSessionStore(state, auth, &recordingNotifier{})

		require.NoError(t, s.SignOut(ctx))

		assert.Equal(t, 1, auth.signOutCalls)
		assert.Equal(t, model.ActorAnonymous, s.CurrentActor().Kind)
		assert.Empty(t, s.Token())
	})

	t.Run("AnonymousSkipsRemote", func(t *testing.T) {
		state, _ := newTestState(t)
		auth := &fakeAuth{}
		s := NewSessionStore(state, auth, &recordingNotifier{})

		require.NoError(t, s.SignOut(ctx))

		assert.Zero(t, auth.signOutCalls)
	})
}

func TestSessionStore_Refresh(t *testing.T) {
	ctx := context.Background()

	t.Run("Anonymous", func(t *testing.T) {
		state, _ := newTestState(t)
		s := NewSessionStore(state, &fakeAuth{}, &recordingNotifier{})

		actor, err := s.Refresh(ctx)

		require.NoError(t, err)
		assert.Equal(t, model.ActorAnonymous, actor.Kind)
	})

	t.Run("StillValid", func(t *testing.T) {
		state, _ := newTestState(t)
		signedIn(t, state, testUser)
		s := NewSessionStore(state, &fakeAuth{meResp: &model.AuthResponse{Token: "t", Actor: testUser}}, &recordingNotifier{})

		actor, err := s.Refresh(ctx)

		require.NoError(t, err)
		assert.Equal(t, testUser, actor)
	})

	t.Run("ExpiredOnServer", func(t *testing.T) {
		state, _ := newTestState(t)
		signedIn(t, state, testUser)
		s := NewSessionStore(state, &fakeAuth{meResp: &model.AuthResponse{Actor: model.AnonymousActor()}}, &recordingNotifier{})

		actor, err := s.Refresh(ctx)

		require.NoError(t, err)
		assert.Equal(t, model.ActorAnonymous, actor.Kind)
		_, ok := state.Session()
		assert.False(t, ok)
	})

	t.Run("NetworkErrorKeepsSession", func(t *testing.T) {
		state, _ := newTestState(t)
		signedIn(t, state, testUser)
		s := NewSessionStore(state, &fakeAuth{err: errors.New("offline")}, &recordingNotifier{})

		actor, err := s.Refresh(ctx)

		assert.Error(t, err)
		assert.Equal(t, testUser, actor)
	})
}
