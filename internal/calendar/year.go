package calendar

import (
	"errors"
	"fmt"
	"time"
)

// Supported civil years. The Gregorian computus is only defined from 1583,
// and the liturgical year built from MaxYear reaches into MaxYear+1.
const (
	MinYear = 1583
	MaxYear = 9998
)

// Offsets from Easter Sunday, in days.
const (
	ashWednesdayOffset = -46
	ascensionOffset    = 39
	pentecostOffset    = 49
	trinityOffset      = 56
)

// ErrYearOutOfRange is returned when a civil year falls outside
// MinYear..MaxYear.
var ErrYearOutOfRange = errors.New("year out of supported range")

// Year holds every season boundary of one liturgical year.
//
// The liturgical year begins in Advent of CivilYear and runs into
// CivilYear+1, where Easter and everything relative to it falls.
// A Year is never modified after NewYear returns it.
type Year struct {
	CivilYear int

	Advent1      time.Time
	Advent4      time.Time
	Epiphany     time.Time
	Epiphany1    time.Time
	AshWednesday time.Time
	Easter       time.Time
	Ascension    time.Time
	Pentecost    time.Time
	Trinity      time.Time
	NextAdvent1  time.Time

	EpiphanySundays  int
	TrinitySundays   int
	PentecostSundays int
}

// Boundary is a named date in a liturgical year.
type Boundary struct {
	Name string
	Date time.Time
}

// NewYear computes the boundaries of the liturgical year that starts in
// Advent of civilYear.
func NewYear(civilYear int) (*Year, error) {
	if civilYear < MinYear || civilYear > MaxYear {
		return nil, fmt.Errorf("%w: %d (want %d..%d)", ErrYearOutOfRange, civilYear, MinYear, MaxYear)
	}

	next := civilYear + 1
	easter := CalculateEaster(next)

	y := &Year{
		CivilYear:    civilYear,
		Advent1:      CalculateAdvent(civilYear),
		Epiphany:     Date(next, time.January, 6),
		Epiphany1:    CalculateEpiphany1(next),
		Easter:       easter,
		AshWednesday: easter.AddDate(0, 0, ashWednesdayOffset),
		Ascension:    easter.AddDate(0, 0, ascensionOffset),
		Pentecost:    easter.AddDate(0, 0, pentecostOffset),
		Trinity:      easter.AddDate(0, 0, trinityOffset),
		NextAdvent1:  CalculateAdvent(next),
	}
	y.Advent4 = y.Advent1.AddDate(0, 0, 21)

	y.EpiphanySundays = DaysBetween(y.Epiphany1, y.AshWednesday)/7 + 1
	y.TrinitySundays = DaysBetween(y.Trinity, y.NextAdvent1)/7 - 1
	y.PentecostSundays = y.TrinitySundays + 1

	return y, nil
}

// Boundaries returns the named boundary dates in calendar order.
func (y *Year) Boundaries() []Boundary {
	return []Boundary{
		{Name: "Advent 1", Date: y.Advent1},
		{Name: "Advent 4", Date: y.Advent4},
		{Name: "Epiphany", Date: y.Epiphany},
		{Name: "Epiphany 1", Date: y.Epiphany1},
		{Name: "Ash Wednesday", Date: y.AshWednesday},
		{Name: "Easter", Date: y.Easter},
		{Name: "Ascension", Date: y.Ascension},
		{Name: "Pentecost", Date: y.Pentecost},
		{Name: "Trinity", Date: y.Trinity},
		{Name: "Next Advent 1", Date: y.NextAdvent1},
	}
}
