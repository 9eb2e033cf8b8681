package calendar

import (
	"fmt"
	"time"
)

// LiturgicalYear returns the civil year whose Advent begins the liturgical
// year in effect on the given date.
//
// The cutoff is December 1, not the computed first Sunday of Advent:
//   - November 30, 2024: 2023 (Advent 2023 liturgical year)
//   - December 1, 2024: 2024
//   - March 15, 2025: 2024
//
// Between December 1 and an Advent Sunday that falls on December 2 or 3 the
// new year's boundaries are already selected, so those days classify as
// Trinity until Advent actually begins.
func LiturgicalYear(date time.Time) int {
	year, month, _ := date.Date()
	if month == time.December {
		return year
	}
	return year - 1
}

// Classifier maps dates to seasons against one liturgical year.
// It holds no mutable state and is safe for concurrent use.
type Classifier struct {
	today time.Time
	year  *Year
}

// NewClassifier selects the liturgical year in effect on today.
func NewClassifier(today time.Time) (*Classifier, error) {
	year, err := NewYear(LiturgicalYear(today))
	if err != nil {
		return nil, fmt.Errorf("select liturgical year for %s: %w", FormatDate(today), err)
	}
	return &Classifier{today: CivilDate(today), year: year}, nil
}

// NewClassifierForYear builds a classifier over a fixed liturgical year.
// Today is taken to be the first Sunday of Advent.
func NewClassifierForYear(year *Year) *Classifier {
	return &Classifier{today: year.Advent1, year: year}
}

// Year returns the boundaries the classifier works against.
func (c *Classifier) Year() *Year {
	return c.year
}

// Today returns the reference date the classifier was built for.
func (c *Classifier) Today() time.Time {
	return c.today
}

// Current classifies the reference date.
func (c *Classifier) Current() Season {
	return c.Classify(c.today)
}

// Classify returns the season containing d. The first matching rule wins.
func (c *Classifier) Classify(d time.Time) Season {
	d = CivilDate(d)
	y := c.year

	switch {
	case d.Before(y.Advent1):
		return SeasonTrinity
	case !d.After(y.Advent4):
		return SeasonAdvent
	case d.Before(y.Epiphany):
		return SeasonChristmas
	case d.Before(y.AshWednesday):
		return SeasonEpiphany
	case d.Before(y.Easter):
		return SeasonLent
	case d.Before(y.Ascension):
		return SeasonEaster
	case d.Before(y.Pentecost):
		return SeasonAscension
	case d.Before(y.Trinity):
		return SeasonPentecost
	default:
		return SeasonTrinity
	}
}

// EpiphanySundays returns the number of Sundays in the Epiphany season.
func (c *Classifier) EpiphanySundays() int {
	return c.year.EpiphanySundays
}

// TrinitySundays returns the number of Sundays after Trinity.
func (c *Classifier) TrinitySundays() int {
	return c.year.TrinitySundays
}
