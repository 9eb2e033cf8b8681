package readingplan

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a plan from a YAML (or JSON) list of labels, one per day
// starting on January 1.
func LoadFile(path string) (*Static, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read reading plan: %w", err)
	}
	return Parse(data)
}

// Parse decodes a list of labels. Blank labels are rejected.
func Parse(data []byte) (*Static, error) {
	var labels []string
	if err := yaml.Unmarshal(data, &labels); err != nil {
		return nil, fmt.Errorf("parse reading plan: %w", err)
	}

	for i, label := range labels {
		labels[i] = strings.TrimSpace(label)
		if labels[i] == "" {
			return nil, fmt.Errorf("reading plan day %d has no label", i+1)
		}
	}

	return NewStatic(labels)
}
