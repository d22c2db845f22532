package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"

	"campus-events/config"
	"campus-events/internal/model"
	"campus-events/internal/repository"
	"campus-events/internal/session"
	apperrors "campus-events/pkg/app_errors"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 6

type AuthService interface {
	SignUp(ctx context.Context, req model.SignUpRequest) (*session.Session, error)
	SignIn(ctx context.Context, req model.SignInRequest) (*session.Session, error)
	// 固定帳密的管理員登入
	AdminSignIn(ctx context.Context, req model.SignInRequest) (*session.Session, error)
	SignOut(ctx context.Context, token string) error
	// token 為空、無效或過期時回傳匿名 actor
	CurrentActor(ctx context.Context, token string) (model.Actor, error)
}

type AuthServiceImpl struct {
	users    repository.UserRepository
	sessions session.Store
	admin    config.AdminConfig
	cost     int
}

func NewAuthService(users repository.UserRepository, sessions session.Store, admin config.AdminConfig) AuthService {
	return &AuthServiceImpl{
		users:    users,
		sessions: sessions,
		admin:    admin,
		cost:     bcrypt.DefaultCost,
	}
}

func (s *AuthServiceImpl) SignUp(ctx context.Context, req model.SignUpRequest) (*session.Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	fullName := strings.TrimSpace(req.FullName)
	if email == "" || fullName == "" {
		return nil, apperrors.ErrInvalidInput
	}
	if len(req.Password) < minPasswordLength {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), s.cost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user, err := s.users.Create(ctx, &model.User{
		ID:           uuid.New(),
		Email:        email,
		FullName:     fullName,
		RegID:        trimmedOrNil(req.RegID),
		PasswordHash: string(hash),
	})
	if err != nil {
		return nil, err
	}

	return s.sessions.Create(ctx, model.UserActor(user))
}

func (s *AuthServiceImpl) SignIn(ctx context.Context, req model.SignInRequest) (*session.Session, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.sessions.Create(ctx, model.UserActor(user))
}

func (s *AuthServiceImpl) AdminSignIn(ctx context.Context, req model.SignInRequest) (*session.Session, error) {
	if s.admin.Password == "" {
		return nil, apperrors.ErrInvalidAdminLogin
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	emailOK := subtle.ConstantTimeCompare([]byte(email), []byte(strings.ToLower(s.admin.Email))) == 1
	passwordOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(s.admin.Password)) == 1
	if !emailOK || !passwordOK {
		return nil, apperrors.ErrInvalidAdminLogin
	}

	return s.sessions.Create(ctx, model.AdminActor(email))
}

func (s *AuthServiceImpl) SignOut(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.sessions.Revoke(ctx, token)
}

func (s *AuthServiceImpl) CurrentActor(ctx context.Context, token string) (model.Actor, error) {
	if token == "" {
		return model.AnonymousActor(), nil
	}
	actor, err := s.sessions.Resolve(ctx, token)
	if err != nil {
		if errors.Is(err, apperrors.ErrSessionNotFound) {
			return model.AnonymousActor(), nil
		}
		return model.AnonymousActor(), err
	}
	return actor, nil
}
