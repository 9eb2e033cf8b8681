package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/devotion/internal/readingplan"
)

// =============================================================================
// Helper Functions
// =============================================================================

// parseTimestamp parses a timestamp from SQLite TEXT format.
// Returns the zero time if parsing fails.
func parseTimestamp(ns sql.NullString) time.Time {
	if !ns.Valid || ns.String == "" {
		return time.Time{}
	}

	for _, layout := range []string{time.RFC3339, "2006-01-02 15:04:05"} {
		if t, err := time.Parse(layout, ns.String); err == nil {
			return t
		}
	}
	return time.Time{}
}

// =============================================================================
// Reading Plan Queries
// =============================================================================

// GetPlanEntry retrieves the stored entry for a day.
// Returns ErrNotFound if the day has no reading.
func (db *DB) GetPlanEntry(ctx context.Context, day int) (*PlanEntry, error) {
	if err := readingplan.CheckDay(day); err != nil {
		return nil, err
	}

	var entry PlanEntry
	var createdAt sql.NullString

	err := db.QueryRowContext(ctx,
		"SELECT day, label, created_at FROM reading_plan WHERE day = ?",
		day,
	).Scan(&entry.Day, &entry.Label, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("reading for day %d: %w", day, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("query reading for day %d: %w", day, err)
	}

	entry.CreatedAt = parseTimestamp(createdAt)
	return &entry, nil
}

// SeedReadingPlan stores the first 366 labels as days 1..366.
// Days that already have a reading are left alone.
//
// Returns the number of rows inserted.
func (db *DB) SeedReadingPlan(ctx context.Context, labels []string) (int, error) {
	if len(labels) < readingplan.Days {
		return 0, fmt.Errorf("reading plan has %d entries, need at least %d", len(labels), readingplan.Days)
	}

	var inserted int
	err := db.WithTx(ctx, func(tx *Tx) error {
		var err error
		inserted, err = insertPlan(ctx, tx, labels)
		return err
	})
	if err != nil {
		return 0, err
	}

	db.logger.Debug("reading plan seeded", slog.Int("inserted", inserted))
	return inserted, nil
}

// ReplaceReadingPlan deletes the stored plan and inserts labels in its
// place. Both happen in one transaction.
func (db *DB) ReplaceReadingPlan(ctx context.Context, labels []string) (int, error) {
	if len(labels) < readingplan.Days {
		return 0, fmt.Errorf("reading plan has %d entries, need at least %d", len(labels), readingplan.Days)
	}

	var inserted int
	err := db.WithTx(ctx, func(tx *Tx) error {
		if _, err := tx.ExecContext(ctx, "DELETE FROM reading_plan"); err != nil {
			return fmt.Errorf("clear reading plan: %w", err)
		}
		var err error
		inserted, err = insertPlan(ctx, tx, labels)
		return err
	})
	if err != nil {
		return 0, err
	}

	db.logger.Debug("reading plan replaced", slog.Int("inserted", inserted))
	return inserted, nil
}

// insertPlan inserts one row per day, skipping days already stored.
func insertPlan(ctx context.Context, tx *Tx, labels []string) (int, error) {
	stmt, err := tx.PrepareContext(ctx,
		"INSERT OR IGNORE INTO reading_plan (day, label) VALUES (?, ?)")
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	inserted := 0
	for day := 1; day <= readingplan.Days; day++ {
		res, err := stmt.ExecContext(ctx, day, labels[day-1])
		if err != nil {
			return 0, fmt.Errorf("insert day %d: %w", day, err)
		}
		n, err := res.RowsAffected()
		if err != nil {
			return 0, fmt.Errorf("rows affected for day %d: %w", day, err)
		}
		inserted += int(n)
	}
	return inserted, nil
}

// CountReadings returns the number of stored days.
func (db *DB) CountReadings(ctx context.Context) (int, error) {
	var n int
	if err := db.QueryRowContext(ctx, "SELECT COUNT(*) FROM reading_plan").Scan(&n); err != nil {
		return 0, fmt.Errorf("count readings: %w", err)
	}
	return n, nil
}
