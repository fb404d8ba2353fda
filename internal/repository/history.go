package repository

import (
	"context"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/risehub-org/risehub/internal/domain"
	"github.com/risehub-org/risehub/internal/search"
)

// HistoryRepository stores the append-only search-history log.
type HistoryRepository struct {
	pool *pgxpool.Pool
}

func NewHistoryRepository(pool *pgxpool.Pool) *HistoryRepository {
	return &HistoryRepository{pool: pool}
}

func (r *HistoryRepository) Append(ctx context.Context, entry *domain.SearchHistoryEntry) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO search_history (id, user_id, query, created_at)
		 VALUES ($1, $2, $3, $4)`,
		entry.ID, nullableString(entry.UserID), entry.Query, entry.CreatedAt,
	)
	return err
}

// CountByPrefix groups past queries starting with the given prefix by
// frequency, most frequent first. The prefix is user text; its LIKE
// metacharacters are escaped so it always matches literally.
func (r *HistoryRepository) CountByPrefix(ctx context.Context, prefix string, limit int) ([]search.QueryCount, error) {
	if limit <= 0 {
		limit = 5
	}
	rows, err := r.pool.Query(ctx,
		`SELECT query, COUNT(*) AS occurrences
		 FROM search_history
		 WHERE query LIKE $1 ESCAPE '\'
		 GROUP BY query
		 ORDER BY occurrences DESC, query ASC
		 LIMIT $2`,
		escapeLike(prefix)+"%", limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var counts []search.QueryCount
	for rows.Next() {
		var qc search.QueryCount
		if err := rows.Scan(&qc.Query, &qc.Count); err != nil {
			return nil, err
		}
		counts = append(counts, qc)
	}
	return counts, rows.Err()
}

func (r *HistoryRepository) ListRecent(ctx context.Context, limit int) ([]*domain.SearchHistoryEntry, error) {
	if limit <= 0 {
		limit = 100
	}
	rows, err := r.pool.Query(ctx,
		`SELECT id, user_id, query, created_at
		 FROM search_history ORDER BY created_at DESC, id DESC LIMIT $1`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []*domain.SearchHistoryEntry
	for rows.Next() {
		var e domain.SearchHistoryEntry
		var userID *string
		if err := rows.Scan(&e.ID, &userID, &e.Query, &e.CreatedAt); err != nil {
			return nil, err
		}
		if userID != nil {
			e.UserID = *userID
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// escapeLike escapes LIKE metacharacters so untrusted query text is never
// interpreted as a pattern.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
