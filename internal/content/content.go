// Package content provides the fixed devotional texts: the two daily
// prayers and the spoken parts of the order of service.
package content

import (
	"errors"
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// NoonHour splits the day: earlier hours get the morning prayer.
const NoonHour = 12

// Prayer time labels.
const (
	MorningPrayer = "Morning Prayer"
	EveningPrayer = "Evening Prayer"
)

// ErrInvalidContent is returned when a content file leaves a required
// text empty.
var ErrInvalidContent = errors.New("invalid content")

// Content holds every text the devotion prints.
type Content struct {
	MorningPrayer string `yaml:"morning_prayer" validate:"required"`
	EveningPrayer string `yaml:"evening_prayer" validate:"required"`
	Votum         string `yaml:"votum" validate:"required"`
	SummaryOfLaw  string `yaml:"summary_of_law" validate:"required"`
	Assurance     string `yaml:"assurance" validate:"required"`
	Benediction   string `yaml:"benediction" validate:"required"`
	Attribution   string `yaml:"attribution"`
}

var validate = validator.New(validator.WithRequiredStructEnabled())

// Default returns the built-in texts.
func Default() Content {
	return Content{
		MorningPrayer: defaultMorningPrayer,
		EveningPrayer: defaultEveningPrayer,
		Votum:         defaultVotum,
		SummaryOfLaw:  defaultSummaryOfLaw,
		Assurance:     defaultAssurance,
		Benediction:   defaultBenediction,
		Attribution:   defaultAttribution,
	}
}

// LoadFile reads a YAML file over the built-in texts. Keys missing from
// the file keep their default; keys set to an empty string fail validation.
func LoadFile(path string) (Content, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Content{}, fmt.Errorf("read content file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML over the built-in texts and validates the result.
func Parse(data []byte) (Content, error) {
	c := Default()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Content{}, fmt.Errorf("parse content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Content{}, err
	}
	return c, nil
}

// Validate checks that every required text is present.
func (c Content) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			missing := make([]error, 0, len(verrs))
			for _, fe := range verrs {
				missing = append(missing, fmt.Errorf("%s is required", fe.Field()))
			}
			return fmt.Errorf("%w: %w", ErrInvalidContent, errors.Join(missing...))
		}
		return fmt.Errorf("%w: %w", ErrInvalidContent, err)
	}
	return nil
}

// PrayerTime names the prayer for an hour of the day (0..23).
func PrayerTime(hour int) string {
	if hour < NoonHour {
		return MorningPrayer
	}
	return EveningPrayer
}

// Prayer returns the prayer text for an hour of the day.
func (c Content) Prayer(hour int) string {
	if hour < NoonHour {
		return c.MorningPrayer
	}
	return c.EveningPrayer
}
