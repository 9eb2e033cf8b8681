package devotion

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/zapponejosh/devotion/internal/calendar"
	"github.com/zapponejosh/devotion/internal/content"
	"github.com/zapponejosh/devotion/internal/readingplan"
)

// scripted returns the queued values in order, clamped to n-1.
type scripted struct {
	values []int
	calls  []int
}

func (s *scripted) IntN(n int) int {
	s.calls = append(s.calls, n)
	if len(s.values) == 0 {
		return 0
	}
	v := s.values[0]
	s.values = s.values[1:]
	if v >= n {
		v = n - 1
	}
	return v
}

type failingPlan struct{}

func (failingPlan) ReadingFor(context.Context, int) (string, error) {
	return "", errors.New("plan unavailable")
}

func TestHymns(t *testing.T) {
	tests := []struct {
		season calendar.Season
		first  int
		last   int
		count  int
	}{
		{calendar.SeasonAdvent, 15, 18, 4},
		{calendar.SeasonChristmas, 19, 22, 4},
		{calendar.SeasonEpiphany, 23, 24, 2},
		{calendar.SeasonLent, 25, 30, 6},
		{calendar.SeasonEaster, 31, 36, 6},
		{calendar.SeasonAscension, 37, 46, 10},
		{calendar.SeasonPentecost, 47, 50, 4},
		{calendar.SeasonTrinity, 3, 85, 47},
	}

	for _, tt := range tests {
		t.Run(tt.season.String(), func(t *testing.T) {
			hymns := Hymns(tt.season)
			require.Len(t, hymns, tt.count)
			assert.Equal(t, tt.first, hymns[0])
			assert.Equal(t, tt.last, hymns[len(hymns)-1])
		})
	}
}

func TestHymns_TrinitySkipsSeasonalHymns(t *testing.T) {
	hymns := Hymns(calendar.SeasonTrinity)
	assert.Contains(t, hymns, 14)
	assert.Contains(t, hymns, 51)
	assert.NotContains(t, hymns, 15)
	assert.NotContains(t, hymns, 50)
	assert.NotContains(t, hymns, 86)
}

func TestHymns_EverySeasonHasHymns(t *testing.T) {
	for _, s := range calendar.Seasons() {
		assert.NotEmpty(t, Hymns(s), s)
		assert.NotEmpty(t, HymnRanges(s), s)
	}
	assert.Empty(t, Hymns("Ordinary"))
}

func TestBuild_Scripted(t *testing.T) {
	r := &scripted{values: []int{1, 2, 3, 22}}
	b := NewBuilder(content.Default(), readingplan.Builtin(), r)

	// Easter Day 2024, morning.
	now := time.Date(2024, time.March, 31, 7, 30, 0, 0, time.UTC)
	d, err := b.Build(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, "2024-03-31", d.DateString())
	assert.Equal(t, calendar.SeasonEaster, d.Season)
	assert.Equal(t, content.MorningPrayer, d.PrayerTime)
	assert.Equal(t, content.Default().MorningPrayer, d.Prayer)
	assert.Equal(t, "Psalm 51", d.Confession)
	assert.Equal(t, "Hymn 2", d.Credo)
	assert.Equal(t, 34, d.Hymn)
	assert.Equal(t, 23, d.Psalm)
	assert.Equal(t, 6, d.EpiphanySundays)
	assert.Equal(t, 26, d.TrinitySundays)

	want, err := readingplan.Builtin().ReadingFor(context.Background(), 91)
	require.NoError(t, err)
	assert.Equal(t, want, d.Reading)

	// Confession, credo, hymn, psalm.
	assert.Equal(t, []int{2, 3, 6, PsalmCount}, r.calls)
}

func TestBuild_EveningTrinity(t *testing.T) {
	r := &scripted{values: []int{0, 0, 46, 149}}
	b := NewBuilder(content.Default(), nil, r)

	now := time.Date(2024, time.August, 15, 19, 0, 0, 0, time.UTC)
	d, err := b.Build(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, calendar.SeasonTrinity, d.Season)
	assert.Equal(t, content.EveningPrayer, d.PrayerTime)
	assert.Equal(t, "Psalm 32", d.Confession)
	assert.Equal(t, "recited", d.Credo)
	assert.Equal(t, 85, d.Hymn)
	assert.Equal(t, 150, d.Psalm)
}

func TestBuild_SeededIsReproducible(t *testing.T) {
	now := time.Date(2025, time.December, 20, 9, 0, 0, 0, time.UTC)

	a, err := NewBuilder(content.Default(), nil, NewRandomizer(42)).Build(context.Background(), now)
	require.NoError(t, err)
	b, err := NewBuilder(content.Default(), nil, NewRandomizer(42)).Build(context.Background(), now)
	require.NoError(t, err)

	assert.Equal(t, a, b)
	assert.Equal(t, calendar.SeasonAdvent, a.Season)
	assert.Contains(t, Hymns(calendar.SeasonAdvent), a.Hymn)
	assert.GreaterOrEqual(t, a.Psalm, 1)
	assert.LessOrEqual(t, a.Psalm, PsalmCount)
}

func TestBuild_DrawsWithinSeasonRanges(t *testing.T) {
	b := NewBuilder(content.Default(), nil, NewRandomizer(7))

	start := time.Date(2024, time.January, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 366; i += 3 {
		now := start.AddDate(0, 0, i)
		d, err := b.Build(context.Background(), now)
		require.NoError(t, err)

		assert.Contains(t, Hymns(d.Season), d.Hymn, "%s", d.DateString())
		assert.Contains(t, Confessions, d.Confession)
		assert.Contains(t, Credos, d.Credo)
	}
}

func TestBuild_PlanError(t *testing.T) {
	b := NewBuilder(content.Default(), failingPlan{}, &scripted{})

	_, err := b.Build(context.Background(), time.Date(2024, time.May, 1, 8, 0, 0, 0, time.UTC))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "plan unavailable")
}

func TestBuild_OutOfRangeYear(t *testing.T) {
	b := NewBuilder(content.Default(), nil, &scripted{})

	_, err := b.Build(context.Background(), time.Date(1400, time.May, 1, 8, 0, 0, 0, time.UTC))
	assert.ErrorIs(t, err, calendar.ErrYearOutOfRange)
}

func TestDevotion_MarshalJSON(t *testing.T) {
	d := Devotion{
		Date:       calendar.Date(2024, time.March, 31),
		PrayerTime: content.MorningPrayer,
		Season:     calendar.SeasonEaster,
		Hymn:       34,
	}

	data, err := json.Marshal(d)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "2024-03-31", got["date"])
	assert.Equal(t, "Easter", got["season"])
	assert.EqualValues(t, 34, got["hymn"])
}
