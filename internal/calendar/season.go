package calendar

import (
	"fmt"
	"strings"
)

// Season represents a liturgical season.
type Season string

const (
	SeasonAdvent    Season = "Advent"
	SeasonChristmas Season = "Christmas"
	SeasonEpiphany  Season = "Epiphany"
	SeasonLent      Season = "Lent"
	SeasonEaster    Season = "Easter"
	SeasonAscension Season = "Ascension"
	SeasonPentecost Season = "Pentecost"
	SeasonTrinity   Season = "Trinity"
)

// Seasons returns all seasons in liturgical order, starting with Advent.
func Seasons() []Season {
	return []Season{
		SeasonAdvent,
		SeasonChristmas,
		SeasonEpiphany,
		SeasonLent,
		SeasonEaster,
		SeasonAscension,
		SeasonPentecost,
		SeasonTrinity,
	}
}

// IsValid checks if a season is valid.
func (s Season) IsValid() bool {
	for _, valid := range Seasons() {
		if s == valid {
			return true
		}
	}
	return false
}

func (s Season) String() string {
	return string(s)
}

// ParseSeason matches a season name case-insensitively.
func ParseSeason(name string) (Season, error) {
	for _, s := range Seasons() {
		if strings.EqualFold(name, string(s)) {
			return s, nil
		}
	}
	return "", fmt.Errorf("unknown season: %q", name)
}
