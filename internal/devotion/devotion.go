// Package devotion assembles a daily devotion: the season of the church
// year, the prayer for the time of day, the reading of the day and the
// randomly drawn confession, psalm, hymn and credo.
package devotion

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/zapponejosh/devotion/internal/calendar"
	"github.com/zapponejosh/devotion/internal/content"
	"github.com/zapponejosh/devotion/internal/logger"
	"github.com/zapponejosh/devotion/internal/readingplan"
)

// PsalmCount is the number of psalms in the Psalter.
const PsalmCount = 150

// Confessions are the penitential psalms read at the confession.
var Confessions = []string{"Psalm 32", "Psalm 51"}

// Credos are the ways the creed is confessed.
var Credos = []string{"recited", "Hymn 1", "Hymn 2"}

// Devotion is one assembled order of service.
type Devotion struct {
	Date       time.Time       `json:"-"`
	PrayerTime string          `json:"prayer_time"`
	Prayer     string          `json:"prayer"`
	Season     calendar.Season `json:"season"`
	Confession string          `json:"confession"`
	Reading    string          `json:"reading"`
	Psalm      int             `json:"psalm"`
	Hymn       int             `json:"hymn"`
	Credo      string          `json:"credo"`

	EpiphanySundays int `json:"epiphany_sundays"`
	TrinitySundays  int `json:"trinity_sundays"`
}

// DateString returns the devotion's date as YYYY-MM-DD.
func (d Devotion) DateString() string {
	return calendar.FormatDate(d.Date)
}

// MarshalJSON writes the date as YYYY-MM-DD.
func (d Devotion) MarshalJSON() ([]byte, error) {
	type plain Devotion
	return json.Marshal(struct {
		Date string `json:"date"`
		plain
	}{d.DateString(), plain(d)})
}

// Builder assembles devotions from its collaborators.
type Builder struct {
	content content.Content
	plan    readingplan.Plan
	rand    Randomizer
}

// NewBuilder creates a Builder. A nil plan uses the built-in reading plan
// and a nil Randomizer is seeded from entropy.
func NewBuilder(c content.Content, plan readingplan.Plan, r Randomizer) *Builder {
	if plan == nil {
		plan = readingplan.Builtin()
	}
	if r == nil {
		r = NewRandomizer(0)
	}
	return &Builder{content: c, plan: plan, rand: r}
}

// Build assembles the devotion for now. The date and hour are taken from
// now in its own location.
func (b *Builder) Build(ctx context.Context, now time.Time) (*Devotion, error) {
	classifier, err := calendar.NewClassifier(now)
	if err != nil {
		return nil, fmt.Errorf("classify %s: %w", calendar.FormatDate(now), err)
	}

	day := readingplan.DayOfYear(now)
	reading, err := b.plan.ReadingFor(ctx, day)
	if err != nil {
		return nil, fmt.Errorf("reading for day %d: %w", day, err)
	}

	season := classifier.Current()
	hymns := Hymns(season)
	if len(hymns) == 0 {
		return nil, errors.New("no hymns for season " + season.String())
	}

	hour := now.Hour()
	d := &Devotion{
		Date:            classifier.Today(),
		PrayerTime:      content.PrayerTime(hour),
		Prayer:          b.content.Prayer(hour),
		Season:          season,
		Reading:         reading,
		EpiphanySundays: classifier.EpiphanySundays(),
		TrinitySundays:  classifier.TrinitySundays(),
	}

	// Seeded output depends on this draw order.
	d.Confession = pick(b.rand, Confessions)
	d.Credo = pick(b.rand, Credos)
	d.Hymn = pick(b.rand, hymns)
	d.Psalm = 1 + b.rand.IntN(PsalmCount)

	logger.Debug(ctx, "devotion assembled",
		slog.String("date", d.DateString()),
		slog.String("season", season.String()),
		slog.Int("day_of_year", day),
		slog.Int("hymn", d.Hymn),
	)

	return d, nil
}
