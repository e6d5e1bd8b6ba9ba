package repository

import (
	"context"

	"fuzzyfind/internal/domain"
)

type SearchHistoryRepository interface {
	// RecordSearch upserts by (query_text, root_path): a repeated query
	// refreshes the existing row instead of inserting a duplicate.
	RecordSearch(ctx context.Context, entry *domain.SearchHistory) error

	List(ctx context.Context, limit int) ([]*domain.SearchHistory, error)

	Delete(ctx context.Context, id int64) error

	Clear(ctx context.Context) error

	Count(ctx context.Context) (int64, error)
}
