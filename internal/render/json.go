package render

import (
	"encoding/json"
	"io"
	"time"

	"github.com/zapponejosh/devotion/internal/calendar"
	"github.com/zapponejosh/devotion/internal/devotion"
)

// JSON renders machine-readable output.
type JSON struct{}

// boundaryJSON is a boundary with its date as YYYY-MM-DD.
type boundaryJSON struct {
	Name    string `json:"name"`
	Date    string `json:"date"`
	Weekday string `json:"weekday"`
}

type calendarJSON struct {
	CivilYear        int            `json:"civil_year"`
	Boundaries       []boundaryJSON `json:"boundaries"`
	EpiphanySundays  int            `json:"epiphany_sundays"`
	TrinitySundays   int            `json:"trinity_sundays"`
	PentecostSundays int            `json:"pentecost_sundays"`
}

type seasonJSON struct {
	Date            string          `json:"date"`
	Season          calendar.Season `json:"season"`
	CivilYear       int             `json:"civil_year"`
	EpiphanySundays int             `json:"epiphany_sundays"`
	TrinitySundays  int             `json:"trinity_sundays"`
}

type readingJSON struct {
	Date      string `json:"date"`
	DayOfYear int    `json:"day_of_year"`
	Reading   string `json:"reading"`
}

// writeJSON writes v as indented JSON.
func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// Devotion writes the devotion as JSON.
func (JSON) Devotion(w io.Writer, d *devotion.Devotion) error {
	return writeJSON(w, d)
}

// Season writes the season in effect on the classifier's date.
func (JSON) Season(w io.Writer, c *calendar.Classifier) error {
	return writeJSON(w, seasonJSON{
		Date:            calendar.FormatDate(c.Today()),
		Season:          c.Current(),
		CivilYear:       c.Year().CivilYear,
		EpiphanySundays: c.EpiphanySundays(),
		TrinitySundays:  c.TrinitySundays(),
	})
}

// Calendar writes every boundary of a liturgical year.
func (JSON) Calendar(w io.Writer, y *calendar.Year) error {
	out := calendarJSON{
		CivilYear:        y.CivilYear,
		EpiphanySundays:  y.EpiphanySundays,
		TrinitySundays:   y.TrinitySundays,
		PentecostSundays: y.PentecostSundays,
	}
	for _, b := range y.Boundaries() {
		out.Boundaries = append(out.Boundaries, boundaryJSON{
			Name:    b.Name,
			Date:    calendar.FormatDate(b.Date),
			Weekday: b.Date.Weekday().String(),
		})
	}
	return writeJSON(w, out)
}

// Reading writes the reading of the day.
func (JSON) Reading(w io.Writer, date time.Time, day int, label string) error {
	return writeJSON(w, readingJSON{
		Date:      calendar.FormatDate(date),
		DayOfYear: day,
		Reading:   label,
	})
}
