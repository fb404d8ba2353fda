package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/risehub-org/risehub/internal/domain"
)

type ContentRepository struct {
	pool *pgxpool.Pool
}

func NewContentRepository(pool *pgxpool.Pool) *ContentRepository {
	return &ContentRepository{pool: pool}
}

func (r *ContentRepository) Create(ctx context.Context, c *domain.ContentItem) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO content_items (id, title, content_type, body, source, url, tags, created_at, view_count, search_appearance_count)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`,
		c.ID, c.Title, c.Type, c.Body, nullableString(c.Source), nullableString(c.URL), c.Tags, c.CreatedAt, c.ViewCount, c.SearchAppearanceCount,
	)
	return err
}

func (r *ContentRepository) GetByID(ctx context.Context, id string) (*domain.ContentItem, error) {
	var c domain.ContentItem
	var source, url *string
	err := r.pool.QueryRow(ctx,
		`SELECT id, title, content_type, body, source, url, tags, created_at, view_count, search_appearance_count
		 FROM content_items WHERE id = $1`,
		id,
	).Scan(&c.ID, &c.Title, &c.Type, &c.Body, &source, &url, &c.Tags, &c.CreatedAt, &c.ViewCount, &c.SearchAppearanceCount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrContentNotFound
		}
		return nil, err
	}
	if source != nil {
		c.Source = *source
	}
	if url != nil {
		c.URL = *url
	}
	return &c, nil
}

// ListRecent returns the newest content first; this order is also the
// tie-break order of the ranker, so it must be deterministic.
func (r *ContentRepository) ListRecent(ctx context.Context, limit int) ([]*domain.ContentItem, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, title, content_type, body, source, url, tags, created_at, view_count, search_appearance_count
		 FROM content_items ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanContentRows(rows)
}

// IncrementViewCount bumps view_count atomically in storage, keeping the
// engine itself stateless.
func (r *ContentRepository) IncrementViewCount(ctx context.Context, contentID string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE content_items SET view_count = view_count + 1 WHERE id = $1`,
		contentID,
	)
	return err
}

// IncrementSearchAppearances bumps search_appearance_count for every item
// that appeared on a served results page.
func (r *ContentRepository) IncrementSearchAppearances(ctx context.Context, contentIDs []string) error {
	if len(contentIDs) == 0 {
		return nil
	}
	_, err := r.pool.Exec(ctx,
		`UPDATE content_items SET search_appearance_count = search_appearance_count + 1 WHERE id = ANY($1)`,
		contentIDs,
	)
	return err
}

func scanContentRows(rows pgx.Rows) ([]*domain.ContentItem, error) {
	var results []*domain.ContentItem
	for rows.Next() {
		var c domain.ContentItem
		var source, url *string
		if err := rows.Scan(&c.ID, &c.Title, &c.Type, &c.Body, &source, &url, &c.Tags, &c.CreatedAt, &c.ViewCount, &c.SearchAppearanceCount); err != nil {
			return nil, err
		}
		if source != nil {
			c.Source = *source
		}
		if url != nil {
			c.URL = *url
		}
		results = append(results, &c)
	}
	return results, rows.Err()
}

func nullableString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
