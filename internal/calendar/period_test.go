package calendar

import (
	"testing"
	"time"
)

func TestLiturgicalYear(t *testing.T) {
	tests := []struct {
		name string
		date time.Time
		want int
	}{
		{"January", Date(2025, time.January, 1), 2024},
		{"mid Lent", Date(2025, time.March, 15), 2024},
		{"November 30", Date(2024, time.November, 30), 2023},
		{"December 1", Date(2024, time.December, 1), 2024},
		{"December 31", Date(2024, time.December, 31), 2024},
		{"late evening local time", time.Date(2024, time.December, 1, 23, 59, 0, 0, time.FixedZone("UTC-8", -8*60*60)), 2024},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LiturgicalYear(tt.date); got != tt.want {
				t.Errorf("LiturgicalYear(%s) = %d, want %d", FormatDate(tt.date), got, tt.want)
			}
		})
	}
}

func TestClassifier_Boundaries(t *testing.T) {
	// Liturgical year 2023: Advent 2023-12-03 .. Trinity 2024-05-26
	c := NewClassifierForYear(mustYear(t, 2023))

	tests := []struct {
		date time.Time
		want Season
	}{
		{Date(2023, time.December, 2), SeasonTrinity},
		{Date(2023, time.December, 3), SeasonAdvent},
		{Date(2023, time.December, 24), SeasonAdvent},
		{Date(2023, time.December, 25), SeasonChristmas},
		{Date(2024, time.January, 5), SeasonChristmas},
		{Date(2024, time.January, 6), SeasonEpiphany},
		{Date(2024, time.February, 13), SeasonEpiphany},
		{Date(2024, time.February, 14), SeasonLent},
		{Date(2024, time.March, 30), SeasonLent},
		{Date(2024, time.March, 31), SeasonEaster},
		{Date(2024, time.May, 8), SeasonEaster},
		{Date(2024, time.May, 9), SeasonAscension},
		{Date(2024, time.May, 18), SeasonAscension},
		{Date(2024, time.May, 19), SeasonPentecost},
		{Date(2024, time.May, 25), SeasonPentecost},
		{Date(2024, time.May, 26), SeasonTrinity},
		{Date(2024, time.November, 30), SeasonTrinity},
	}

	for _, tt := range tests {
		if got := c.Classify(tt.date); got != tt.want {
			t.Errorf("Classify(%s) = %s, want %s", FormatDate(tt.date), got, tt.want)
		}
	}
}

func TestClassifier_BoundaryOpensSeason(t *testing.T) {
	for year := 1990; year <= 2060; year++ {
		y := mustYear(t, year)
		c := NewClassifierForYear(y)

		opens := []struct {
			date time.Time
			want Season
		}{
			{y.Advent1, SeasonAdvent},
			{y.Epiphany, SeasonEpiphany},
			{y.AshWednesday, SeasonLent},
			{y.Easter, SeasonEaster},
			{y.Ascension, SeasonAscension},
			{y.Pentecost, SeasonPentecost},
			{y.Trinity, SeasonTrinity},
		}
		for _, o := range opens {
			if got := c.Classify(o.date); got != o.want {
				t.Errorf("%d: Classify(%s) = %s, want %s", year, FormatDate(o.date), got, o.want)
			}
		}

		// Advent 4 is the last day of Advent, inclusive.
		if got := c.Classify(y.Advent4); got != SeasonAdvent {
			t.Errorf("%d: Classify(Advent4) = %s, want Advent", year, got)
		}
		if got := c.Classify(y.Advent4.AddDate(0, 0, 1)); got != SeasonChristmas {
			t.Errorf("%d: Classify(Advent4+1) = %s, want Christmas", year, got)
		}
	}
}

func TestClassifier_TotalAndOrdered(t *testing.T) {
	y := mustYear(t, 2024)
	c := NewClassifierForYear(y)

	// Walk two full civil years. Seasons must appear in liturgical order:
	// Trinity (previous year), Advent .. Pentecost, then Trinity again.
	start := Date(2024, time.January, 1)
	end := Date(2025, time.December, 31)

	var seen []Season
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		s := c.Classify(d)
		if !s.IsValid() {
			t.Fatalf("Classify(%s) = %q, not a season", FormatDate(d), s)
		}
		if len(seen) == 0 || seen[len(seen)-1] != s {
			seen = append(seen, s)
		}
	}

	want := []Season{
		SeasonTrinity, SeasonAdvent, SeasonChristmas, SeasonEpiphany, SeasonLent,
		SeasonEaster, SeasonAscension, SeasonPentecost, SeasonTrinity,
	}
	if len(seen) != len(want) {
		t.Fatalf("season sequence = %v, want %v", seen, want)
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("season sequence[%d] = %s, want %s", i, seen[i], want[i])
		}
	}
}

func TestNewClassifier_SelectsYear(t *testing.T) {
	tests := []struct {
		name       string
		today      time.Time
		wantYear   int
		wantSeason Season
	}{
		{"Lent 2024", Date(2024, time.March, 15), 2023, SeasonLent},
		{"Easter Day 2025", Date(2025, time.April, 20), 2024, SeasonEaster},
		{"November before Advent", Date(2024, time.November, 30), 2023, SeasonTrinity},
		{"Advent on December 1", Date(2024, time.December, 1), 2024, SeasonAdvent},
		// Advent 2023 begins on December 3, so the first two days of
		// December still classify as Trinity.
		{"December 1 before Advent", Date(2023, time.December, 1), 2023, SeasonTrinity},
		{"Christmas Day", Date(2023, time.December, 25), 2023, SeasonChristmas},
		// Advent 2025 begins on November 30, ahead of the December 1 cutoff.
		{"Advent Sunday before cutoff", Date(2025, time.November, 30), 2024, SeasonTrinity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := NewClassifier(tt.today)
			if err != nil {
				t.Fatalf("NewClassifier() error = %v", err)
			}
			if c.Year().CivilYear != tt.wantYear {
				t.Errorf("CivilYear = %d, want %d", c.Year().CivilYear, tt.wantYear)
			}
			if got := c.Current(); got != tt.wantSeason {
				t.Errorf("Current() = %s, want %s", got, tt.wantSeason)
			}
			if !c.Today().Equal(tt.today) {
				t.Errorf("Today() = %s, want %s", c.Today(), tt.today)
			}
		})
	}
}

func TestNewClassifier_Counts(t *testing.T) {
	c, err := NewClassifier(Date(2024, time.June, 1))
	if err != nil {
		t.Fatalf("NewClassifier() error = %v", err)
	}
	if got := c.EpiphanySundays(); got != 6 {
		t.Errorf("EpiphanySundays() = %d, want 6", got)
	}
	if got := c.TrinitySundays(); got != 26 {
		t.Errorf("TrinitySundays() = %d, want 26", got)
	}
}

func TestNewClassifier_OutOfRange(t *testing.T) {
	if _, err := NewClassifier(Date(1500, time.June, 1)); err == nil {
		t.Error("NewClassifier(1500-06-01) error = nil, want error")
	}
}

func TestSeason_Parse(t *testing.T) {
	for _, s := range Seasons() {
		got, err := ParseSeason(string(s))
		if err != nil || got != s {
			t.Errorf("ParseSeason(%q) = %q, %v", s, got, err)
		}
	}

	if got, err := ParseSeason("lent"); err != nil || got != SeasonLent {
		t.Errorf("ParseSeason(lent) = %q, %v", got, err)
	}
	if _, err := ParseSeason("Ordinary"); err == nil {
		t.Error("ParseSeason(Ordinary) error = nil, want error")
	}
	if Season("Holy Week").IsValid() {
		t.Error("Holy Week should not be a valid season")
	}
}
