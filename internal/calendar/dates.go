package calendar

import "time"

// Date returns midnight UTC on the given civil date.
// All liturgical boundaries are expressed this way so that comparisons
// are plain day comparisons.
func Date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// CivilDate strips the clock and location from t, keeping the calendar
// date as seen in t's own location.
func CivilDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return Date(y, m, d)
}

// ISOWeekday returns the ISO 8601 weekday number: Monday=1 through Sunday=7.
func ISOWeekday(t time.Time) int {
	if t.Weekday() == time.Sunday {
		return 7
	}
	return int(t.Weekday())
}

// DaysBetween returns the whole number of days from a to b.
func DaysBetween(a, b time.Time) int {
	return int(CivilDate(b).Sub(CivilDate(a)).Hours() / 24)
}

// ParseDateString parses a date string in YYYY-MM-DD format.
func ParseDateString(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", dateStr)
}

// FormatDate formats a date as YYYY-MM-DD
func FormatDate(date time.Time) string {
	return date.Format("2006-01-02")
}
