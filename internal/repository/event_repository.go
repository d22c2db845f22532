package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"campus-events/internal/model"
	apperrors "campus-events/pkg/app_errors"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EventRepository interface {
	Create(ctx context.Context, event *model.Event) (*model.Event, error)
	// ListByStatus approved 依 start_date 由早到晚；pending 依建立時間由新到舊
	ListByStatus(ctx context.Context, status model.EventStatus) ([]*model.Event, error)
	// ListAll 統計用，不分狀態
	ListAll(ctx context.Context) ([]*model.Event, error)
	FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error)
	// UpdateStatus 僅在目前狀態為 from 時更新（條件式 UPDATE，不需交易）
	UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.EventStatus) (*model.Event, error)
	// Delete 直接刪除（駁回），報名紀錄 cascade
	Delete(ctx context.Context, id uuid.UUID) error
}

type EventRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewEventRepository(pool *pgxpool.Pool) EventRepository {
	return &EventRepositoryImpl{
		pool: pool,
	}
}

const eventColumns = `id, title, description, organizer, category, start_date, end_date,
		event_link, location_lat, location_lng, poster_url, image_urls, status,
		created_by, created_at, updated_at`

func scanEvent(row pgx.Row) (*model.Event, error) {
	var event model.Event
	err := row.Scan(
		&event.ID,
		&event.Title,
		&event.Description,
		&event.Organizer,
		&event.Category,
		&event.StartDate,
		&event.EndDate,
		&event.EventLink,
		&event.LocationLat,
		&event.LocationLng,
		&event.PosterURL,
		&event.ImageURLs,
		&event.Status,
		&event.CreatedBy,
		&event.CreatedAt,
		&event.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if event.ImageURLs == nil {
		event.ImageURLs = []string{}
	}
	return &event, nil
}

func (r *EventRepositoryImpl) Create(ctx context.Context, event *model.Event) (*model.Event, error) {
	if event.ImageURLs == nil {
		event.ImageURLs = []string{}
	}

	query := `
		INSERT INTO events (
			id, title, description, organizer, category, start_date, end_date,
			event_link, location_lat, location_lng, poster_url, image_urls, status, created_by
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + eventColumns

	created, err := scanEvent(r.pool.QueryRow(ctx, query,
		event.ID, event.Title, event.Description, event.Organizer, event.Category,
		event.StartDate, event.EndDate, event.EventLink, event.LocationLat, event.LocationLng,
		event.PosterURL, event.ImageURLs, event.Status, event.CreatedBy,
	))
	if err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return created, nil
}

func (r *EventRepositoryImpl) ListByStatus(ctx context.Context, status model.EventStatus) ([]*model.Event, error) {
	if !status.IsValid() {
		return nil, apperrors.ErrInvalidEventStatus
	}

	orderBy := "start_date ASC, id ASC"
	if status == model.EventStatusPending {
		orderBy = "created_at DESC, id ASC"
	}

	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE status = $1
		ORDER BY ` + orderBy

	return r.list(ctx, query, status)
}

func (r *EventRepositoryImpl) ListAll(ctx context.Context) ([]*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		ORDER BY created_at DESC, id ASC
	`
	return r.list(ctx, query)
}

func (r *EventRepositoryImpl) list(ctx context.Context, query string, args ...interface{}) ([]*model.Event, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := make([]*model.Event, 0)
	for rows.Next() {
		event, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, event)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return events, nil
}

func (r *EventRepositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*model.Event, error) {
	query := `
		SELECT ` + eventColumns + `
		FROM events
		WHERE id = $1
	`

	event, err := scanEvent(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrEventNotFound
		}
		return nil, err
	}

	return event, nil
}

func (r *EventRepositoryImpl) UpdateStatus(ctx context.Context, id uuid.UUID, from, to model.EventStatus) (*model.Event, error) {
	if !from.CanTransitionTo(to) {
		return nil, apperrors.ErrInvalidEventStatus
	}

	query := `
		UPDATE events
		SET status = $1, updated_at = $2
		WHERE id = $3 AND status = $4
		RETURNING ` + eventColumns

	event, err := scanEvent(r.pool.QueryRow(ctx, query, to, time.Now().UTC(), id, from))
	if err == nil {
		return event, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to update event status: %w", err)
	}

	// 沒更新到：區分不存在與狀態不符
	var exists bool
	if err := r.pool.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, id).Scan(&exists); err != nil {
		return nil, err
	}
	if !exists {
		return nil, apperrors.ErrEventNotFound
	}
	return nil, apperrors.ErrInvalidEventStatus
}

func (r *EventRepositoryImpl) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := r.pool.Exec(ctx, `DELETE FROM events WHERE id = $1`, id)
	if err != nil {
		return err
	}

	if result.RowsAffected() == 0 {
		return apperrors.ErrEventNotFound
	}

	return nil
}
