// Package calendar provides liturgical calendar calculations.
package calendar

import (
	"time"
)

// CalculateEaster calculates the date of Easter Sunday for a given year
// using the anonymous Gregorian computus (Meeus/Jones/Butcher).
//
// The result matches the civil Easter date for every Gregorian year (1583 on).
func CalculateEaster(year int) time.Time {
	a := year % 19
	b := year / 100
	c := year % 100
	d := (19*a + b - b/4 - (b-(b+8)/25+1)/3 + 15) % 30
	e := (32 + 2*(b%4) + 2*(c/4) - d - (c % 4)) % 7
	f := d + e - 7*((a+11*d+22*e)/451) + 114
	month := f / 31
	day := f%31 + 1

	return Date(year, time.Month(month), day)
}

// CalculateAdvent calculates the date of the first Sunday of Advent
// for a given year.
//
// Advent Sunday is the Sunday closest to November 30. Starting from
// November 27, walk forward to the next Sunday (or stay if it already is one),
// which always lands between November 27 and December 3.
func CalculateAdvent(year int) time.Time {
	nov27 := Date(year, time.November, 27)

	weekday := ISOWeekday(nov27)
	if weekday == 7 {
		return nov27
	}
	return nov27.AddDate(0, 0, 7-weekday)
}

// CalculateEpiphany1 calculates the first Sunday of the Epiphany season
// for a given year.
//
// The octave of Epiphany ends on January 13. Unlike Advent, this walks
// backward from January 13 to the preceding Sunday, so the result falls
// between January 7 and January 13.
func CalculateEpiphany1(year int) time.Time {
	jan13 := Date(year, time.January, 13)

	weekday := ISOWeekday(jan13)
	if weekday == 7 {
		return jan13
	}
	return jan13.AddDate(0, 0, -weekday)
}
