// Package database keeps a reading plan in SQLite so it can be edited or
// replaced without rebuilding the binary.
package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"time"

	_ "github.com/mattn/go-sqlite3" // SQLite driver
)

// MemoryPath opens a private in-memory database. Its plan is gone when the
// database is closed.
const MemoryPath = ":memory:"

// ErrNotFound is returned when a day has no stored reading.
var ErrNotFound = errors.New("no reading stored")

// IsNotFound reports whether err means a day is missing from the plan.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// DB is a reading-plan database.
type DB struct {
	*sql.DB
	logger *slog.Logger
}

// Config describes where the plan lives and how its pool behaves.
type Config struct {
	Path            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

// DefaultConfig keeps one connection open. An in-memory plan exists only
// on that connection, so it never expires.
func DefaultConfig(path string) Config {
	cfg := Config{
		Path:            path,
		MaxOpenConns:    1,
		MaxIdleConns:    1,
		ConnMaxLifetime: time.Hour,
	}
	if path == MemoryPath {
		cfg.ConnMaxLifetime = 0
	}
	return cfg
}

// dsn adds the driver options for path. WAL does not apply to memory.
func dsn(path string) string {
	if path == MemoryPath {
		return path + "?_busy_timeout=5000"
	}
	return path + "?_journal_mode=WAL&_busy_timeout=5000"
}

// Open connects to the plan at cfg.Path, creating its directory if needed.
// Close it when done.
func Open(cfg Config, logger *slog.Logger) (*DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Path == "" {
		return nil, errors.New("database path is required")
	}

	if cfg.Path != MemoryPath {
		if dir := filepath.Dir(cfg.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create database directory: %w", err)
			}
		}
	}

	sqlDB, err := sql.Open("sqlite3", dsn(cfg.Path))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	db := &DB{DB: sqlDB, logger: logger.With(slog.String("db", cfg.Path))}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.Health(ctx); err != nil {
		sqlDB.Close()
		return nil, err
	}

	db.logger.Debug("reading plan database open")
	return db, nil
}

// Health pings the database and runs a trivial query.
func (db *DB) Health(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var one int
	if err := db.QueryRowContext(ctx, "SELECT 1").Scan(&one); err != nil {
		return fmt.Errorf("database unreachable: %w", err)
	}
	return nil
}

// Migrate applies the versions in migrationsSQL that schema_migrations
// has not recorded, in ascending order and in one transaction. It returns
// how many were applied.
func (db *DB) Migrate(ctx context.Context) (int, error) {
	versions := make([]int, 0, len(migrationsSQL))
	for v := range migrationsSQL {
		versions = append(versions, v)
	}
	sort.Ints(versions)

	applied := 0
	err := db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at TEXT NOT NULL DEFAULT (datetime('now'))
		)`); err != nil {
			return fmt.Errorf("create schema_migrations: %w", err)
		}

		done, err := tx.appliedVersions(ctx)
		if err != nil {
			return err
		}

		for _, v := range versions {
			if done[v] {
				continue
			}
			if _, err := tx.ExecContext(ctx, migrationsSQL[v]); err != nil {
				return fmt.Errorf("migration %d: %w", v, err)
			}
			if _, err := tx.ExecContext(ctx, "INSERT INTO schema_migrations (version) VALUES (?)", v); err != nil {
				return fmt.Errorf("record migration %d: %w", v, err)
			}
			applied++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	if applied > 0 {
		db.logger.Debug("schema migrated", slog.Int("applied", applied))
	}
	return applied, nil
}

// Tx is a transaction on the plan database.
type Tx struct {
	*sql.Tx
}

func (tx *Tx) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := tx.QueryContext(ctx, "SELECT version FROM schema_migrations")
	if err != nil {
		return nil, fmt.Errorf("list migrations: %w", err)
	}
	defer rows.Close()

	done := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("scan migration: %w", err)
		}
		done[v] = true
	}
	return done, rows.Err()
}

// WithTx runs fn in a transaction, committing if fn returns nil and
// rolling back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(*Tx) error) error {
	sqlTx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	tx := &Tx{sqlTx}

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return errors.Join(err, fmt.Errorf("rollback: %w", rbErr))
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
