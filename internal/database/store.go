package database

import (
	"context"
	"fmt"

	"github.com/zapponejosh/devotion/internal/readingplan"
)

// Store serves a reading plan out of the database.
type Store struct {
	db *DB
}

var _ readingplan.Plan = (*Store)(nil)

// NewStore wraps db as a reading plan.
func NewStore(db *DB) *Store {
	return &Store{db: db}
}

// ReadingFor returns the stored label for day.
func (s *Store) ReadingFor(ctx context.Context, day int) (string, error) {
	entry, err := s.db.GetPlanEntry(ctx, day)
	if err != nil {
		return "", err
	}
	return entry.Label, nil
}

// PreparePlan applies migrations and seeds the built-in plan into an empty
// table, then returns a Store over db. A partial plan is left as it is.
func PreparePlan(ctx context.Context, db *DB) (*Store, error) {
	if _, err := db.Migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}

	n, err := db.CountReadings(ctx)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		if _, err := db.SeedReadingPlan(ctx, readingplan.Builtin().Labels()); err != nil {
			return nil, fmt.Errorf("seed built-in plan: %w", err)
		}
	}

	return NewStore(db), nil
}
