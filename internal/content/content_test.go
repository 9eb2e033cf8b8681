package content

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Valid(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.True(t, strings.HasPrefix(c.MorningPrayer, "Merciful Father"))
	assert.True(t, strings.HasPrefix(c.EveningPrayer, "Merciful God"))
	assert.True(t, strings.HasSuffix(c.MorningPrayer, "Amen."))
	assert.NotContains(t, c.MorningPrayer, "  ")
	assert.NotContains(t, c.EveningPrayer, "  ")
}

func TestPrayerTime(t *testing.T) {
	tests := []struct {
		hour int
		want string
	}{
		{0, MorningPrayer},
		{6, MorningPrayer},
		{11, MorningPrayer},
		{12, EveningPrayer},
		{18, EveningPrayer},
		{23, EveningPrayer},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, PrayerTime(tt.hour), "hour %d", tt.hour)
	}
}

func TestContent_Prayer(t *testing.T) {
	c := Default()
	assert.Equal(t, c.MorningPrayer, c.Prayer(11))
	assert.Equal(t, c.EveningPrayer, c.Prayer(12))
}

func TestParse_OverlaysDefaults(t *testing.T) {
	c, err := Parse([]byte("morning_prayer: Lord, keep us this day.\n"))
	require.NoError(t, err)

	assert.Equal(t, "Lord, keep us this day.", c.MorningPrayer)
	assert.Equal(t, Default().EveningPrayer, c.EveningPrayer)
	assert.Equal(t, Default().Benediction, c.Benediction)
}

func TestParse_EmptyRequiredText(t *testing.T) {
	_, err := Parse([]byte("votum: \"\"\nbenediction: \"\"\n"))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidContent)
	assert.Contains(t, err.Error(), "Votum")
	assert.Contains(t, err.Error(), "Benediction")
}

func TestParse_EmptyAttributionAllowed(t *testing.T) {
	c, err := Parse([]byte("attribution: \"\"\n"))
	require.NoError(t, err)
	assert.Empty(t, c.Attribution)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("morning_prayer: [unterminated"))
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrInvalidContent)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("evening_prayer: Abide with us, Lord.\n"), 0o644))

	c, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Abide with us, Lord.", c.EveningPrayer)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
