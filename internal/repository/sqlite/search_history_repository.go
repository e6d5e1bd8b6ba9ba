package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"fuzzyfind/internal/domain"
	"fuzzyfind/internal/repository"
)

type searchHistoryRepository struct {
	db *DB
}

func NewSearchHistoryRepository(db *DB) repository.SearchHistoryRepository {
	return &searchHistoryRepository{db: db}
}

func (r *searchHistoryRepository) RecordSearch(ctx context.Context, entry *domain.SearchHistory) error {
	if err := entry.Validate(); err != nil {
		return fmt.Errorf("invalid search history entry: %w", err)
	}

	var existingID int64
	checkQuery := `
		SELECT id FROM search_history
		WHERE query_text = ? AND root_path = ?
		LIMIT 1
	`

	err := r.db.GetContext(ctx, &existingID, checkQuery, entry.QueryText, entry.RootPath)

	if err == nil {
		updateQuery := `
			UPDATE search_history
			SET updated_at = CURRENT_TIMESTAMP,
			    term_count = ?,
			    result_count = ?
			WHERE id = ?
		`
		_, err := r.db.ExecContext(ctx, updateQuery, entry.TermCount, entry.ResultCount, existingID)
		if err != nil {
			return fmt.Errorf("failed to update search history: %w", err)
		}
		entry.ID = existingID
		return nil
	} else if !errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("failed to check existing search history: %w", err)
	}

	insertQuery := `
		INSERT INTO search_history (
			query_text, term_count, result_count, root_path, created_at, updated_at
		) VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP, CURRENT_TIMESTAMP)
	`

	result, err := r.db.ExecContext(ctx, insertQuery,
		entry.QueryText,
		entry.TermCount,
		entry.ResultCount,
		entry.RootPath,
	)
	if err != nil {
		return fmt.Errorf("failed to create search history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get last insert ID: %w", err)
	}
	entry.ID = id

	return nil
}

func (r *searchHistoryRepository) List(ctx context.Context, limit int) ([]*domain.SearchHistory, error) {
	query := `
		SELECT id, query_text, term_count, result_count, root_path, created_at, updated_at
		FROM search_history
		ORDER BY updated_at DESC
	`

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", limit)
	}

	var entries []*domain.SearchHistory
	if err := r.db.SelectContext(ctx, &entries, query); err != nil {
		return nil, fmt.Errorf("failed to query search history: %w", err)
	}

	return entries, nil
}

func (r *searchHistoryRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM search_history WHERE id = ?`

	result, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return fmt.Errorf("failed to delete search history: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return fmt.Errorf("search history entry with id %d not found", id)
	}

	return nil
}

func (r *searchHistoryRepository) Clear(ctx context.Context) error {
	query := `DELETE FROM search_history`

	_, err := r.db.ExecContext(ctx, query)
	if err != nil {
		return fmt.Errorf("failed to clear search history: %w", err)
	}

	return nil
}

func (r *searchHistoryRepository) Count(ctx context.Context) (int64, error) {
	query := `SELECT COUNT(*) FROM search_history`

	var count int64
	if err := r.db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count search history: %w", err)
	}

	return count, nil
}
