// Package readingplan supplies the daily Bible reading for a day of the year.
package readingplan

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Days is the number of days a plan must cover.
const Days = 366

// ErrDayOutOfRange is returned for a day-of-year outside 1..366.
var ErrDayOutOfRange = errors.New("day of year out of range")

// Plan looks up the reading label for a 1-based day of the year.
type Plan interface {
	ReadingFor(ctx context.Context, day int) (string, error)
}

// DayOfYear returns the 1-based day of the year for t.
//
// The plan is indexed the same way in every year, so from March on a
// non-leap year reads one entry behind the leap-year schedule.
func DayOfYear(t time.Time) int {
	return t.YearDay()
}

// CheckDay validates a day-of-year.
func CheckDay(day int) error {
	if day < 1 || day > Days {
		return fmt.Errorf("%w: %d", ErrDayOutOfRange, day)
	}
	return nil
}

// Static is a plan held in memory.
type Static struct {
	labels []string
}

var _ Plan = (*Static)(nil)

// Builtin returns the built-in reading plan.
func Builtin() *Static {
	return &Static{labels: table}
}

// NewStatic builds a plan from labels. At least Days labels are required.
func NewStatic(labels []string) (*Static, error) {
	if len(labels) < Days {
		return nil, fmt.Errorf("reading plan has %d entries, need at least %d", len(labels), Days)
	}
	cp := make([]string, len(labels))
	copy(cp, labels)
	return &Static{labels: cp}, nil
}

// ReadingFor returns the label for day.
func (s *Static) ReadingFor(_ context.Context, day int) (string, error) {
	if err := CheckDay(day); err != nil {
		return "", err
	}
	return s.labels[day-1], nil
}

// Labels returns a copy of the plan's labels.
func (s *Static) Labels() []string {
	cp := make([]string, len(s.labels))
	copy(cp, s.labels)
	return cp
}
