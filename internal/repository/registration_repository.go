package repository

import (
	"context"
	"errors"
	"fmt"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

type RegistrationRepository interface {
	// Create 同一使用者對同一活動只能報名一次（由 UNIQUE 約束保證）
	Create(ctx context.Context, registration *model.Registration) (*model.Registration, error)
	ListByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Registration, error)
	CountByEventID(ctx context.Context, eventID uuid.UUID) (int, error)
}

type RegistrationRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewRegistrationRepository(pool *pgxpool.Pool) RegistrationRepository {
	return &RegistrationRepositoryImpl{
		pool: pool,
	}
}

func (r *RegistrationRepositoryImpl) Create(ctx context.Context, registration *model.Registration) (*model.Registration, error) {
	query := `
		INSERT INTO registrations (id, event_id, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, event_id, user_id, created_at
	`

	var created model.Registration
	err := r.pool.QueryRow(ctx, query,
		registration.ID, registration.EventID, registration.UserID,
	).Scan(
		&created.ID,
		&created.EventID,
		&created.UserID,
		&created.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			switch pgErr.Code {
			case pgUniqueViolation:
				return nil, apperrors.ErrAlreadyRegistered
			case pgForeignKeyViolation:
				if pgErr.ConstraintName == "registrations_user_id_fkey" {
					return nil, apperrors.ErrUserNotFound
				}
				return nil, apperrors.ErrEventNotFound
			}
		}
		return nil, fmt.Errorf("failed to create registration: %w", err)
	}

	return &created, nil
}

func (r *RegistrationRepositoryImpl) ListByUserID(ctx context.Context, userID uuid.UUID) ([]*model.Registration, error) {
	query := `
		SELECT id, event_id, user_id, created_at
		FROM registrations
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	registrations := make([]*model.Registration, 0)
	for rows.Next() {
		var registration model.Registration
		err := rows.Scan(
			&registration.ID,
			&registration.EventID,
			&registration.UserID,
			&registration.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		registrations = append(registrations, &registration)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return registrations, nil
}

func (r *RegistrationRepositoryImpl) CountByEventID(ctx context.Context, eventID uuid.UUID) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM registrations WHERE event_id = $1`, eventID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
