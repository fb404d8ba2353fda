package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/risehub-org/risehub/internal/domain"
)

// InteractionRepository stores the append-only interaction-event log.
type InteractionRepository struct {
	pool *pgxpool.Pool
}

func NewInteractionRepository(pool *pgxpool.Pool) *InteractionRepository {
	return &InteractionRepository{pool: pool}
}

func (r *InteractionRepository) Append(ctx context.Context, event *domain.InteractionEvent) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO interaction_events (id, user_id, content_id, interaction_type, duration_seconds, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		event.ID, event.UserID, event.ContentID, event.Type, event.DurationSeconds, event.CreatedAt,
	)
	return err
}

// ListViewsByContent returns the newest view events on one content item.
func (r *InteractionRepository) ListViewsByContent(ctx context.Context, contentID string, limit int) ([]*domain.InteractionEvent, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, content_id, interaction_type, duration_seconds, created_at
		 FROM interaction_events
		 WHERE content_id = $1 AND interaction_type = $2
		 ORDER BY created_at DESC, id DESC
		 LIMIT $3`,
		contentID, domain.InteractionTypeView, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInteractionRows(rows)
}

// ListViewsByUserBetween returns one user's view events inside a time
// window, oldest first.
func (r *InteractionRepository) ListViewsByUserBetween(ctx context.Context, userID string, from, to time.Time) ([]*domain.InteractionEvent, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, content_id, interaction_type, duration_seconds, created_at
		 FROM interaction_events
		 WHERE user_id = $1 AND interaction_type = $2 AND created_at BETWEEN $3 AND $4
		 ORDER BY created_at ASC, id ASC`,
		userID, domain.InteractionTypeView, from, to,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanInteractionRows(rows)
}

func scanInteractionRows(rows pgx.Rows) ([]*domain.InteractionEvent, error) {
	var results []*domain.InteractionEvent
	for rows.Next() {
		var e domain.InteractionEvent
		if err := rows.Scan(&e.ID, &e.UserID, &e.ContentID, &e.Type, &e.DurationSeconds, &e.CreatedAt); err != nil {
			return nil, err
		}
		results = append(results, &e)
	}
	return results, rows.Err()
}
