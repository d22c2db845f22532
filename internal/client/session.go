package client

import (
	"context"
	"errors"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"
	"campus-events/pkg/logger"

	"go.uber.org/zap"
)

// SessionStore client 端目前的身分；實際來源（一般帳號或管理員）對呼叫端不可見
type SessionStore struct {
	state    *State
	auth     AuthBackend
	notifier Notifier
}

func NewSessionStore(state *State, auth AuthBackend, notifier Notifier) *SessionStore {
	return &SessionStore{state: state, auth: auth, notifier: notifier}
}

// CurrentActor 每次都從 state 讀，不快取
func (s *SessionStore) CurrentActor() model.Actor {
	sess, ok := s.state.Session()
	if !ok {
		return model.AnonymousActor()
	}
	if sess.Actor.IsAdmin() && !s.state.IsAdmin() {
		return model.AnonymousActor()
	}
	return sess.Actor
}

// Token 給 API client 帶 Authorization header
func (s *SessionStore) Token() string {
	sess, ok := s.state.Session()
	if !ok {
		return ""
	}
	return sess.Token
}

func (s *SessionStore) adopt(resp *model.AuthResponse) error {
	return s.state.SetSession(StoredSession{Token: resp.Token, Actor: resp.Actor})
}

func (s *SessionStore) SignUp(ctx context.Context, req model.SignUpRequest) error {
	if len(req.Password) < 6 {
		s.notifier.Notify(Notification{Title: "Sign Up Failed", Description: apperrors.ErrWeakPassword.Error(), Destructive: true})
		return apperrors.ErrWeakPassword
	}
	resp, err := s.auth.SignUp(ctx, req)
	if err == nil {
		err = s.adopt(resp)
	}
	if err != nil {
		s.notifier.Notify(Notification{Title: "Sign Up Failed", Description: err.Error(), Destructive: true})
		return err
	}
	s.notifier.Notify(Notification{Title: "Welcome!", Description: "Your account has been created and you are signed in."})
	return nil
}

func (s *SessionStore) SignIn(ctx context.Context, email, password string) error {
	resp, err := s.auth.SignIn(ctx, model.SignInRequest{Email: email, Password: password})
	if err == nil {
		err = s.adopt(resp)
	}
	if err != nil {
		s.notifier.Notify(Notification{Title: "Sign In Failed", Description: err.Error(), Destructive: true})
		return err
	}
	s.notifier.Notify(Notification{Title: "Welcome back!", Description: "You have been signed in successfully."})
	return nil
}

func (s *SessionStore) AdminSignIn(ctx context.Context, email, password string) error {
	resp, err := s.auth.AdminSignIn(ctx, model.SignInRequest{Email: email, Password: password})
	if err == nil && !resp.Actor.IsAdmin() {
		err = apperrors.ErrInvalidAdminLogin
	}
	if err == nil {
		err = s.adopt(resp)
	}
	if err != nil {
		s.notifier.Notify(Notification{Title: "Admin Login Failed", Description: err.Error(), Destructive: true})
		return err
	}
	s.notifier.Notify(Notification{Title: "Welcome Admin!", Description: "You have been signed in as administrator."})
	return nil
}

// SignOut 遠端撤銷失敗也會清掉本機 session
func (s *SessionStore) SignOut(ctx context.Context) error {
	if s.Token() != "" {
		if err := s.auth.SignOut(ctx); err != nil {
			logger.WithComponent("client").Warn("remote sign out failed", zap.Error(err))
		}
	}
	return s.state.ClearSession()
}

// Refresh 向伺服器確認 session 仍有效；失效時清掉本機紀錄
func (s *SessionStore) Refresh(ctx context.Context) (model.Actor, error) {
	if s.Token() == "" {
		return model.AnonymousActor(), nil
	}
	resp, err := s.auth.Me(ctx)
	if err != nil {
		return s.CurrentActor(), err
	}
	if !resp.Actor.IsAuthenticated() {
		if err := s.state.ClearSession(); err != nil {
			return model.AnonymousActor(), err
		}
		return model.AnonymousActor(), nil
	}
	return resp.Actor, nil
}

// expire 伺服器判定 session 失效時呼叫
func (s *SessionStore) expire(err error) {
	if !errors.Is(err, apperrors.ErrAdminAuthRequired) && !errors.Is(err, apperrors.ErrSignInRequired) {
		return
	}
	if clearErr := s.state.ClearSession(); clearErr != nil {
		logger.WithComponent("client").Warn("clear expired session failed", zap.Error(clearErr))
	}
}
