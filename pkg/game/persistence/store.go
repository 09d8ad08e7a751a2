// Package persistence stores the one durable flag that outlives a session.
package persistence

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
)

// AdvancedUnlockedKey is the fixed key the durable flag is stored under
const AdvancedUnlockedKey = "lifeguard:advanced_unlocked"

// FlagStore loads and saves the advanced_unlocked flag. A missing value
// loads as false.
type FlagStore interface {
	Load(ctx context.Context) (bool, error)
	Save(ctx context.Context, unlocked bool) error
	Close() error
}

// Backend names accepted by Open.
const (
	BackendMemory = "memory"
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
)

// Options selects and configures a backend.
type Options struct {
	Backend    string
	SQLitePath string
	RedisAddr  string
	Logger     *slog.Logger
}

// Open returns the store for the configured backend
func Open(ctx context.Context, opts Options) (FlagStore, error) {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	switch opts.Backend {
	case "", BackendMemory:
		return NewMemoryStore(), nil
	case BackendSQLite:
		return OpenSQLite(opts.SQLitePath)
	case BackendRedis:
		store := NewRedisStore(opts.RedisAddr, logger)
		if err := store.Ping(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown store backend %q", opts.Backend)
	}
}

// MemoryStore keeps the flag for the life of the process.
type MemoryStore struct {
	mu       sync.Mutex
	unlocked bool
}

var _ FlagStore = (*MemoryStore)(nil)

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{}
}

func (m *MemoryStore) Load(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.unlocked, nil
}

func (m *MemoryStore) Save(ctx context.Context, unlocked bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unlocked = unlocked
	return nil
}

func (m *MemoryStore) Close() error {
	return nil
}
