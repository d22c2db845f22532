package repository

import (
	"context"
	"fmt"

	"campus-events/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ReviewLogRepository 活動審核歷程，只新增不修改
type ReviewLogRepository interface {
	Append(ctx context.Context, notice *model.ReviewNotice) (*model.ReviewLogEntry, error)
	ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.ReviewLogEntry, error)
}

type ReviewLogRepositoryImpl struct {
	pool *pgxpool.Pool
}

func NewReviewLogRepository(pool *pgxpool.Pool) ReviewLogRepository {
	return &ReviewLogRepositoryImpl{
		pool: pool,
	}
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r *ReviewLogRepositoryImpl) Append(ctx context.Context, notice *model.ReviewNotice) (*model.ReviewLogEntry, error) {
	query := `
		INSERT INTO event_reviews (event_id, action, actor_email, title, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, event_id, action, actor_email, title, created_at
	`

	var entry model.ReviewLogEntry
	err := r.pool.QueryRow(ctx, query,
		notice.EventID, notice.Action, nullableString(notice.ActorEmail), nullableString(notice.Title), notice.OccurredAt,
	).Scan(
		&entry.ID,
		&entry.EventID,
		&entry.Action,
		&entry.ActorEmail,
		&entry.Title,
		&entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to append review log: %w", err)
	}

	return &entry, nil
}

func (r *ReviewLogRepositoryImpl) ListByEventID(ctx context.Context, eventID uuid.UUID) ([]*model.ReviewLogEntry, error) {
	query := `
		SELECT id, event_id, action, actor_email, title, created_at
		FROM event_reviews
		WHERE event_id = $1
		ORDER BY created_at ASC, id ASC
	`

	rows, err := r.pool.Query(ctx, query, eventID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]*model.ReviewLogEntry, 0)
	for rows.Next() {
		var entry model.ReviewLogEntry
		err := rows.Scan(
			&entry.ID,
			&entry.EventID,
			&entry.Action,
			&entry.ActorEmail,
			&entry.Title,
			&entry.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		entries = append(entries, &entry)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
