package database

// migrationsSQL maps schema version to the SQL that reaches it. Migrate
// runs unapplied versions in ascending order.
var migrationsSQL = map[int]string{
	1: migrationV1ReadingPlan,
}

// migrationV1ReadingPlan creates the reading plan table.
//
// One row per day of the year. The day is the primary key, so a plan can
// never hold two readings for the same day, and the CHECK keeps the table
// inside the 366-day index used for lookups.
const migrationV1ReadingPlan = `
-- Migration 001: Reading plan

CREATE TABLE IF NOT EXISTS reading_plan (
    day INTEGER PRIMARY KEY CHECK (day BETWEEN 1 AND 366),
    label TEXT NOT NULL CHECK (length(label) > 0),
    created_at TEXT NOT NULL DEFAULT (datetime('now'))
);
`
