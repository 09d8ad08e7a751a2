package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

const createFlagsTable = `
CREATE TABLE IF NOT EXISTS flags (
	key   TEXT PRIMARY KEY,
	value INTEGER NOT NULL
)`

// SQLiteStore keeps the flag in a local SQLite file.
type SQLiteStore struct {
	sqlDB *sql.DB
}

var _ FlagStore = (*SQLiteStore)(nil)

// OpenSQLite opens (creating if needed) the database at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("sqlite path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(createFlagsTable); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("create flags table: %w", err)
	}
	return &SQLiteStore{sqlDB: sqlDB}, nil
}

func (s *SQLiteStore) Load(ctx context.Context) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	var value int
	err := s.sqlDB.QueryRowContext(ctx, `SELECT value FROM flags WHERE key = ?`, AdvancedUnlockedKey).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("sqlite load flag: %w", err)
	}
	return value != 0, nil
}

func (s *SQLiteStore) Save(ctx context.Context, unlocked bool) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value := 0
	if unlocked {
		value = 1
	}
	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO flags (key, value) VALUES (?, ?)
ON CONFLICT(key) DO UPDATE SET value = excluded.value
`, AdvancedUnlockedKey, value)
	if err != nil {
		return fmt.Errorf("sqlite save flag: %w", err)
	}
	return nil
}

// Close releases the SQLite connection.
func (s *SQLiteStore) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}
