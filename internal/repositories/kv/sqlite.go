package kv

import (
	"context"
	"database/sql"
	stderrors "errors"
	"path/filepath"
	"strings"
	"sync"

	// Registers the pure-Go "sqlite" driver.
	_ "modernc.org/sqlite"

	"github.com/KirkDiggler/npc-tracker/internal/errors"
)

const (
	sqliteSchema = `CREATE TABLE IF NOT EXISTS kv (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`
	sqliteUpsert = `INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`
	sqliteSelect = `SELECT value FROM kv WHERE key = ?`
)

// SQLiteRepository persists keys in a single-table SQLite file.
type SQLiteRepository struct {
	db        *sql.DB
	closeOnce sync.Once
	closeErr  error
}

// SQLiteConfig contains configuration for the SQLite store.
type SQLiteConfig struct {
	// Path is the database file. ":memory:" opens a private in-memory database.
	Path string
}

// Validate validates the SQLiteConfig.
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	errors.ValidateRequired("path", cfg.Path, vb)
	return vb.Build()
}

// NewSQLite opens (creating if needed) the database file and ensures the
// kv table exists.
func NewSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteRepository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := cfg.Path
	if dsn != ":memory:" {
		dsn = filepath.Clean(strings.TrimSpace(dsn)) + "?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=synchronous(NORMAL)"
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open sqlite db %s", cfg.Path)
	}
	// One writer keeps ":memory:" databases on a single connection.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCodef(err, errors.CodeUnavailable, "failed to ping sqlite db %s", cfg.Path)
	}
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to create kv table")
	}

	return &SQLiteRepository{db: db}, nil
}

// Get returns the value stored under key
func (r *SQLiteRepository) Get(ctx context.Context, key string) (string, error) {
	if key == "" {
		return "", errors.InvalidArgument(errKeyEmpty)
	}

	var value string
	err := r.db.QueryRowContext(ctx, sqliteSelect, key).Scan(&value)
	if stderrors.Is(err, sql.ErrNoRows) {
		return "", errors.NotFoundf("key %s not found", key).WithMeta("key", key)
	}
	if err != nil {
		return "", errors.Wrapf(err, "failed to get %s", key)
	}

	return value, nil
}

// Set upserts value under key
func (r *SQLiteRepository) Set(ctx context.Context, key, value string) error {
	if key == "" {
		return errors.InvalidArgument(errKeyEmpty)
	}

	if _, err := r.db.ExecContext(ctx, sqliteUpsert, key, value); err != nil {
		return errors.Wrapf(err, "failed to set %s", key)
	}
	return nil
}

// Close closes the database handle. Safe to call more than once.
func (r *SQLiteRepository) Close() error {
	r.closeOnce.Do(func() {
		r.closeErr = r.db.Close()
	})
	return r.closeErr
}
