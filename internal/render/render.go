// Package render formats devotions and calendar listings for output.
package render

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/zapponejosh/devotion/internal/calendar"
	"github.com/zapponejosh/devotion/internal/content"
	"github.com/zapponejosh/devotion/internal/devotion"
)

// Renderer writes each kind of output the command line produces.
type Renderer interface {
	Devotion(w io.Writer, d *devotion.Devotion) error
	Season(w io.Writer, c *calendar.Classifier) error
	Calendar(w io.Writer, y *calendar.Year) error
	Reading(w io.Writer, date time.Time, day int, label string) error
}

var (
	_ Renderer = Text{}
	_ Renderer = JSON{}
)

// Text renders human-readable output.
type Text struct {
	Theme   Theme
	Content content.Content
}

// NewText returns a Text renderer with the default theme.
func NewText(c content.Content) Text {
	return Text{Theme: DefaultTheme(), Content: c}
}

// Devotion writes the order of service.
func (t Text) Devotion(w io.Writer, d *devotion.Devotion) error {
	var b lines

	b.add(t.Theme.Title, d.PrayerTime)
	b.add(t.Theme.Subtitle, d.DateString())
	b.add(t.Theme.Body, t.Content.Votum)
	b.add(t.Theme.Body, d.Prayer)
	b.add(t.Theme.Body, t.Content.SummaryOfLaw)
	b.field(t.Theme.Label, "Confession", d.Confession)
	b.add(t.Theme.Body, t.Content.Assurance)
	b.field(t.Theme.Label, "Bible reading", d.Reading)
	b.field(t.Theme.Label, "Psalm", fmt.Sprintf("Psalm %d", d.Psalm))
	b.field(t.Theme.Label, "Hymn for "+d.Season.String(), fmt.Sprintf("Hymn %d", d.Hymn))
	b.field(t.Theme.Label, "Credo", d.Credo)
	b.add(t.Theme.Body, t.Content.Benediction)
	if t.Content.Attribution != "" {
		b.add(t.Theme.Footer, t.Content.Attribution)
	}

	return b.flush(w)
}

// Season writes the season in effect on the classifier's date.
func (t Text) Season(w io.Writer, c *calendar.Classifier) error {
	var b lines
	y := c.Year()

	b.add(t.Theme.Title, fmt.Sprintf("%s: %s", calendar.FormatDate(c.Today()), c.Current()))
	b.add(t.Theme.Subtitle, fmt.Sprintf("Liturgical year %d-%d", y.CivilYear, y.CivilYear+1))
	b.field(t.Theme.Label, "Epiphany Sundays", fmt.Sprint(c.EpiphanySundays()))
	b.field(t.Theme.Label, "Trinity Sundays", fmt.Sprint(c.TrinitySundays()))

	return b.flush(w)
}

// Calendar writes every boundary of a liturgical year.
func (t Text) Calendar(w io.Writer, y *calendar.Year) error {
	var b lines

	b.add(t.Theme.Title, fmt.Sprintf("Liturgical year %d-%d", y.CivilYear, y.CivilYear+1))
	for _, bd := range y.Boundaries() {
		b.plain(fmt.Sprintf("%-14s %s  %s", bd.Name, calendar.FormatDate(bd.Date), bd.Date.Weekday()))
	}
	b.field(t.Theme.Label, "Epiphany Sundays", fmt.Sprint(y.EpiphanySundays))
	b.field(t.Theme.Label, "Trinity Sundays", fmt.Sprint(y.TrinitySundays))
	b.field(t.Theme.Label, "Pentecost Sundays", fmt.Sprint(y.PentecostSundays))

	return b.flush(w)
}

// Reading writes the reading of the day.
func (t Text) Reading(w io.Writer, date time.Time, day int, label string) error {
	var b lines
	b.field(t.Theme.Label, fmt.Sprintf("%s (day %d)", calendar.FormatDate(date), day), label)
	return b.flush(w)
}

// lines accumulates output one line (or styled block) at a time.
type lines struct {
	sb strings.Builder
}

// add styles each line of s separately so multi-line texts keep their
// own line breaks. A width pads wrapped lines with spaces; those are cut.
func (l *lines) add(style lipgloss.Style, s string) {
	for _, part := range strings.Split(s, "\n") {
		for _, line := range strings.Split(style.Render(part), "\n") {
			l.plain(strings.TrimRight(line, " "))
		}
	}
}

func (l *lines) field(label lipgloss.Style, name, value string) {
	l.plain(label.Render(name+":") + " " + value)
}

func (l *lines) plain(s string) {
	l.sb.WriteString(s)
	l.sb.WriteByte('\n')
}

func (l *lines) flush(w io.Writer) error {
	_, err := io.WriteString(w, l.sb.String())
	return err
}
