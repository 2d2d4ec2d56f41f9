package session

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velvetresearch/velvet/internal/client/storage"

	_ "modernc.org/sqlite"
)

func setupService(t *testing.T) *Service {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE localstore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);`)
	require.NoError(t, err)

	return NewService(storage.NewSQLiteRepository(db))
}

func TestSaveThenLoad_RoundTrip(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	user := User{ID: "u-123", Email: "x@y.com"}
	require.NoError(t, svc.Save(ctx, "abc", user))

	got, err := svc.Load(ctx)
	require.NoError(t, err)

	assert.True(t, got.Authenticated())
	assert.Equal(t, "abc", got.Token)
	assert.Equal(t, user, got.User)
	assert.Equal(t, "x", got.Label())
}

func TestClearThenLoad_LoggedOut(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.Save(ctx, "abc", User{ID: "u-1", Email: "a@b.co"}))
	require.NoError(t, svc.Clear(ctx))

	got, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got.Authenticated())
	assert.Empty(t, got.Token)
	assert.Empty(t, got.Label())
}

func TestLoad_MissingEitherEntryMeansLoggedOut(t *testing.T) {
	ctx := context.Background()

	t.Run("only token", func(t *testing.T) {
		svc := setupService(t)
		require.NoError(t, svc.store.Set(ctx, TokenKey, []byte("abc")))

		got, err := svc.Load(ctx)
		require.NoError(t, err)
		assert.False(t, got.Authenticated())
	})

	t.Run("only user", func(t *testing.T) {
		svc := setupService(t)
		require.NoError(t, svc.store.Set(ctx, UserKey, []byte(`{"id":"u","email":"a@b.co"}`)))

		got, err := svc.Load(ctx)
		require.NoError(t, err)
		assert.False(t, got.Authenticated())
	})
}

func TestLoad_CorruptUserRecordMeansLoggedOutNotError(t *testing.T) {
	svc := setupService(t)
	ctx := context.Background()

	require.NoError(t, svc.store.Set(ctx, TokenKey, []byte("abc")))
	require.NoError(t, svc.store.Set(ctx, UserKey, []byte("{not json")))

	got, err := svc.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got.Authenticated())
}
