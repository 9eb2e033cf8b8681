package devotion

import "github.com/zapponejosh/devotion/internal/calendar"

// HymnRange is a half-open range of hymn numbers [Start, End).
type HymnRange struct {
	Start int
	End   int
}

// hymnRanges lists the Book of Praise hymns for each season. Trinity draws
// from two ranges: the hymns on the creeds and the general hymns.
var hymnRanges = map[calendar.Season][]HymnRange{
	calendar.SeasonAdvent:    {{15, 19}},
	calendar.SeasonChristmas: {{19, 23}},
	calendar.SeasonEpiphany:  {{23, 25}},
	calendar.SeasonLent:      {{25, 31}},
	calendar.SeasonEaster:    {{31, 37}},
	calendar.SeasonAscension: {{37, 47}},
	calendar.SeasonPentecost: {{47, 51}},
	calendar.SeasonTrinity:   {{3, 15}, {51, 86}},
}

// HymnRanges returns the hymn ranges for a season.
func HymnRanges(season calendar.Season) []HymnRange {
	ranges := hymnRanges[season]
	out := make([]HymnRange, len(ranges))
	copy(out, ranges)
	return out
}

// Hymns returns every hymn number a season may draw, in ascending order.
func Hymns(season calendar.Season) []int {
	var hymns []int
	for _, r := range hymnRanges[season] {
		for n := r.Start; n < r.End; n++ {
			hymns = append(hymns, n)
		}
	}
	return hymns
}
