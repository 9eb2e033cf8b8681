package readingplan

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writePlan(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return path
}

func TestLoadFile_YAML(t *testing.T) {
	var sb strings.Builder
	sb.WriteString("- Mark 1\n")
	for i := 1; i < Days; i++ {
		sb.WriteString("- Proverbs 1\n")
	}

	plan, err := LoadFile(writePlan(t, "plan.yaml", []byte(sb.String())))
	require.NoError(t, err)

	got, err := plan.ReadingFor(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "Mark 1", got)
}

func TestLoadFile_JSON(t *testing.T) {
	data, err := json.Marshal(Builtin().Labels())
	require.NoError(t, err)

	plan, err := LoadFile(writePlan(t, "plan.json", data))
	require.NoError(t, err)
	assert.Equal(t, Builtin().Labels(), plan.Labels())
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"not a list", "day: Genesis 1"},
		{"too short", "- Genesis 1\n- Genesis 2\n"},
		{"blank label", "- Genesis 1\n- '  '\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.data))
			assert.Error(t, err)
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
