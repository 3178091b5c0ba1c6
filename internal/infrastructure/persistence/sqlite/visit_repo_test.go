package sqlite_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/navkit/internal/domain/entity"
	"github.com/bnema/navkit/internal/domain/repository"
	"github.com/bnema/navkit/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/navkit/internal/logging"
)

func visitTestCtx() context.Context {
	logger := logging.New(logging.DefaultConfig())
	return logging.WithContext(context.Background(), logger)
}

func newTestRepo(t *testing.T) (context.Context, repository.VisitRepository) {
	t.Helper()
	ctx := visitTestCtx()
	dbPath := filepath.Join(t.TempDir(), "navkit.db")

	db, err := sqlite.NewConnection(ctx, dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return ctx, sqlite.NewVisitRepository(db)
}

func TestVisitRepository_SaveAndFind(t *testing.T) {
	ctx, repo := newTestRepo(t)

	visit := entity.NewVisit("https://example.com/app/page")
	require.NoError(t, repo.Save(ctx, visit))

	found, err := repo.FindByURI(ctx, "https://example.com/app/page")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "https://example.com/app/page", found.URI)
	assert.Equal(t, int64(1), found.Count)
}

func TestVisitRepository_FindUnknownReturnsNil(t *testing.T) {
	ctx, repo := newTestRepo(t)

	found, err := repo.FindByURI(ctx, "https://example.com/nope")
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestVisitRepository_UpsertUpdatesCount(t *testing.T) {
	ctx, repo := newTestRepo(t)

	visit := entity.NewVisit("https://example.com/app/docs")
	require.NoError(t, repo.Save(ctx, visit))

	visit.Count = 7
	visit.LastSeen = time.Now()
	require.NoError(t, repo.Save(ctx, visit))

	found, err := repo.FindByURI(ctx, "https://example.com/app/docs")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, int64(7), found.Count)
}

func TestVisitRepository_GetRecentOrdersByLastSeen(t *testing.T) {
	ctx, repo := newTestRepo(t)

	now := time.Now()
	uris := []struct {
		uri  string
		seen time.Time
	}{
		{"https://example.com/a", now.Add(-3 * time.Hour)},
		{"https://example.com/b", now.Add(-1 * time.Hour)},
		{"https://example.com/c", now.Add(-2 * time.Hour)},
	}
	for _, v := range uris {
		visit := entity.NewVisit(v.uri)
		visit.LastSeen = v.seen
		require.NoError(t, repo.Save(ctx, visit))
	}

	recent, err := repo.GetRecent(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "https://example.com/b", recent[0].URI)
	assert.Equal(t, "https://example.com/c", recent[1].URI)
}

func TestVisitRepository_SearchMatchesSubstring(t *testing.T) {
	ctx, repo := newTestRepo(t)

	require.NoError(t, repo.Save(ctx, entity.NewVisit("https://example.com/app/docs/intro")))
	require.NoError(t, repo.Save(ctx, entity.NewVisit("https://example.com/app/settings")))

	results, err := repo.Search(ctx, "docs", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "https://example.com/app/docs/intro", results[0].URI)
}

func TestVisitRepository_DeleteOlderThan(t *testing.T) {
	ctx, repo := newTestRepo(t)

	old := entity.NewVisit("https://example.com/old")
	old.LastSeen = time.Now().Add(-48 * time.Hour)
	require.NoError(t, repo.Save(ctx, old))
	require.NoError(t, repo.Save(ctx, entity.NewVisit("https://example.com/new")))

	require.NoError(t, repo.DeleteOlderThan(ctx, time.Now().Add(-24*time.Hour)))

	remaining, err := repo.GetRecent(ctx, 10, 0)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "https://example.com/new", remaining[0].URI)
}

func TestVisitRepository_Stats(t *testing.T) {
	ctx, repo := newTestRepo(t)

	a := entity.NewVisit("https://example.com/a")
	a.Count = 3
	require.NoError(t, repo.Save(ctx, a))
	require.NoError(t, repo.Save(ctx, entity.NewVisit("https://example.com/b")))

	stats, err := repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalURIs)
	assert.Equal(t, int64(4), stats.TotalVisits)

	require.NoError(t, repo.DeleteAll(ctx))
	stats, err = repo.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalURIs)
}
