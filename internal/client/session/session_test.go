package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

func setupRepo(t *testing.T) *SQLiteRepository {
	t.Helper()
	db, err := InitDatabase(context.Background(), "file:sessiontest?mode=memory&cache=shared")
	require.NoError(t, err)
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`DELETE FROM metadata`)
	require.NoError(t, err)
	return NewSQLiteRepository(db)
}

func TestLoadWithoutTokenIsGuest(t *testing.T) {
	repo := setupRepo(t)

	mode, err := Load(context.Background(), repo)
	require.NoError(t, err)
	assert.IsType(t, Guest{}, mode)
}

func TestSaveThenLoadIsAuthenticated(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	want := Session{
		AccessToken: "token-123",
		StartDate:   time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC),
	}
	require.NoError(t, Save(ctx, repo, want))

	mode, err := Load(ctx, repo)
	require.NoError(t, err)
	authed, ok := mode.(Authenticated)
	require.True(t, ok)
	assert.Equal(t, "token-123", authed.Session.AccessToken)
	assert.True(t, authed.Session.StartDate.Equal(want.StartDate))
}

func TestClearReturnsToGuest(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, Save(ctx, repo, Session{AccessToken: "t", StartDate: time.Now()}))
	require.NoError(t, Clear(ctx, repo))

	mode, err := Load(ctx, repo)
	require.NoError(t, err)
	assert.IsType(t, Guest{}, mode)
}

func TestTokenWithBadAnchorFallsBackToGuest(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "accessToken", "t"))
	require.NoError(t, repo.Set(ctx, "startDate", "christmas"))

	mode, err := Load(ctx, repo)
	require.NoError(t, err)
	assert.IsType(t, Guest{}, mode)
}

func TestRepositoryGetMissingKey(t *testing.T) {
	repo := setupRepo(t)

	v, err := repo.Get(context.Background(), "nope")
	require.NoError(t, err)
	assert.Empty(t, v)
}
