package main

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lifeguard/pkg/game/config"
	"lifeguard/pkg/game/persistence"
)

type failingStore struct{}

func (failingStore) Load(context.Context) (bool, error) { return false, errors.New("disk gone") }
func (failingStore) Save(context.Context, bool) error    { return errors.New("disk gone") }
func (failingStore) Close() error                        { return nil }

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestFlagRoundTrip(t *testing.T) {
	store := persistence.NewMemoryStore()
	assert.False(t, loadFlag(store, quietLogger()))

	saveFlag(store, quietLogger())(true)
	assert.True(t, loadFlag(store, quietLogger()))
}

func TestFlagStoreFailuresAreLogged(t *testing.T) {
	assert.False(t, loadFlag(failingStore{}, quietLogger()))
	require.NotPanics(t, func() { saveFlag(failingStore{}, quietLogger())(true) })
}

func TestRun_RejectsBadFlags(t *testing.T) {
	assert.Error(t, run([]string{"-renderer", "sdl"}))
}

func TestOpenStoreFallsBackToMemory(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	addr := mr.Addr()
	mr.Close()

	for _, cfg := range []*config.Config{
		{Store: "tape"},
		{Store: "redis", RedisAddr: addr},
	} {
		store := openStore(cfg, quietLogger())
		assert.IsType(t, &persistence.MemoryStore{}, store, cfg.Store)

		saveFlag(store, quietLogger())(true)
		assert.True(t, loadFlag(store, quietLogger()), cfg.Store)
		require.NoError(t, store.Close())
	}
}

func TestOpenStoreUsesConfiguredBackend(t *testing.T) {
	mr := miniredis.RunT(t)

	store := openStore(&config.Config{Store: "redis", RedisAddr: mr.Addr()}, quietLogger())
	defer store.Close()
	assert.IsType(t, &persistence.RedisStore{}, store)
}
