package persistence

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// exerciseStore checks the behaviour every backend shares.
func exerciseStore(t *testing.T, store FlagStore) {
	t.Helper()
	ctx := context.Background()

	got, err := store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got, "missing flag loads as false")

	require.NoError(t, store.Save(ctx, true))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.True(t, got)

	require.NoError(t, store.Save(ctx, true))
	require.NoError(t, store.Save(ctx, false))
	got, err = store.Load(ctx)
	require.NoError(t, err)
	assert.False(t, got)
}

func TestMemoryStore(t *testing.T) {
	store := NewMemoryStore()
	defer store.Close()
	exerciseStore(t, store)
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	store := NewMemoryStore()
	_, err := store.Load(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, store.Save(ctx, true), context.Canceled)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeguard.db")
	store, err := OpenSQLite(path)
	require.NoError(t, err)
	exerciseStore(t, store)

	require.NoError(t, store.Save(context.Background(), true))
	require.NoError(t, store.Close())

	// The flag survives reopening the file.
	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()
	got, err := reopened.Load(context.Background())
	require.NoError(t, err)
	assert.True(t, got)
}

func TestOpenSQLite_RequiresPath(t *testing.T) {
	_, err := OpenSQLite("  ")
	assert.Error(t, err)
}

func TestRedisStore(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	store := NewRedisStore(mr.Addr(), testLogger())
	defer store.Close()
	require.NoError(t, store.Ping(context.Background()))
	exerciseStore(t, store)

	require.NoError(t, store.Save(context.Background(), true))
	value, err := mr.Get(AdvancedUnlockedKey)
	require.NoError(t, err)
	assert.Equal(t, "1", value)
}

func TestRedisStore_ServerDown(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	store := NewRedisStore(mr.Addr(), testLogger())
	defer store.Close()
	mr.Close()

	_, err = store.Load(context.Background())
	assert.ErrorContains(t, err, "redis get failed")
	assert.ErrorContains(t, store.Save(context.Background(), true), "redis set failed")
}

func TestOpen(t *testing.T) {
	ctx := context.Background()

	store, err := Open(ctx, Options{})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, store)

	store, err = Open(ctx, Options{Backend: BackendSQLite, SQLitePath: filepath.Join(t.TempDir(), "flags.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, store)
	require.NoError(t, store.Close())

	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()
	store, err = Open(ctx, Options{Backend: BackendRedis, RedisAddr: mr.Addr(), Logger: testLogger()})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, store)
	require.NoError(t, store.Close())

	_, err = Open(ctx, Options{Backend: "floppy"})
	assert.ErrorContains(t, err, "unknown store backend")
}
