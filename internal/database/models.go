package database

import (
	"time"
)

// PlanEntry is one day of a stored reading plan.
type PlanEntry struct {
	Day       int       `json:"day"`   // 1-based day of the year
	Label     string    `json:"label"` // e.g., "Genesis 1-3"
	CreatedAt time.Time `json:"created_at"`
}
