package sqlite

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fuzzyfind/internal/domain"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewDB(Config{Path: filepath.Join(t.TempDir(), "test.db")})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return db
}

func TestRecordSearch(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))
	ctx := context.Background()

	entry := domain.NewSearchHistory("'abc def", 2, "/tmp/project")
	entry.ResultCount = 7

	err := repo.RecordSearch(ctx, entry)
	require.NoError(t, err)
	assert.NotZero(t, entry.ID)

	entries, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "'abc def", entries[0].QueryText)
	assert.Equal(t, 2, entries[0].TermCount)
	assert.Equal(t, 7, entries[0].ResultCount)
	assert.Equal(t, "/tmp/project", entries[0].RootPath)
}

func TestRecordSearch_UpsertsSameQuery(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))
	ctx := context.Background()

	first := domain.NewSearchHistory("main", 1, "/tmp/project")
	first.ResultCount = 3
	require.NoError(t, repo.RecordSearch(ctx, first))

	again := domain.NewSearchHistory("main", 1, "/tmp/project")
	again.ResultCount = 5
	require.NoError(t, repo.RecordSearch(ctx, again))

	// same query and root must refresh the row, not duplicate it
	assert.Equal(t, first.ID, again.ID)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)

	entries, err := repo.List(ctx, 0)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, 5, entries[0].ResultCount)
}

func TestRecordSearch_DifferentRootsAreSeparate(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.RecordSearch(ctx, domain.NewSearchHistory("main", 1, "/a")))
	require.NoError(t, repo.RecordSearch(ctx, domain.NewSearchHistory("main", 1, "/b")))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)
}

func TestRecordSearch_RejectsInvalidEntry(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))

	err := repo.RecordSearch(context.Background(), domain.NewSearchHistory("   ", 1, ""))
	assert.Error(t, err)
}

func TestList_RespectsLimit(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))
	ctx := context.Background()

	queries := []string{"one", "two", "three", "four"}
	for _, q := range queries {
		require.NoError(t, repo.RecordSearch(ctx, domain.NewSearchHistory(q, 1, "/p")))
	}

	entries, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, entries, 2)
}

func TestDelete(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))
	ctx := context.Background()

	entry := domain.NewSearchHistory("main", 1, "/p")
	require.NoError(t, repo.RecordSearch(ctx, entry))

	require.NoError(t, repo.Delete(ctx, entry.ID))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)

	// deleting again reports not found
	assert.Error(t, repo.Delete(ctx, entry.ID))
}

func TestClear(t *testing.T) {
	repo := NewSearchHistoryRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.RecordSearch(ctx, domain.NewSearchHistory("one", 1, "/p")))
	require.NoError(t, repo.RecordSearch(ctx, domain.NewSearchHistory("two", 1, "/p")))

	require.NoError(t, repo.Clear(ctx))

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.EqualValues(t, 0, count)
}
