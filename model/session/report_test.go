package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/bouquet/model/inventory"
	"gopkg.in/yaml.v3"
)

func TestReport_YAML(t *testing.T) {
	report := &Report{
		ID:          "s1",
		Source:      "mem://localhost/in/example01.txt",
		Destination: "mem://localhost/out/out.example01.txt",
		Flowers:     8,
		Designs:     2,
		Codes:       []string{"AS1a2b", "BL2a", "AS2a1b"},
		Sweeps:      3,
		Residual:    map[inventory.Species]map[inventory.Size]int{"a": {"S": 0}},
		StartedAt:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		Duration:    time.Second,
	}
	data, err := report.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(data), "- BL2a")
	assert.NotContains(t, string(data), "error")

	decoded := &Report{}
	require.NoError(t, yaml.Unmarshal(data, decoded))
	assert.Equal(t, report.Codes, decoded.Codes)
	assert.Equal(t, report.Residual, decoded.Residual)
}

func TestReport_Field(t *testing.T) {
	report := &Report{ID: "s1", Source: "in.txt", Destination: "out.in.txt"}
	testCases := []struct {
		name     string
		expected string
		ok       bool
	}{
		{"ID", "s1", true},
		{"Source", "in.txt", true},
		{"Destination", "out.in.txt", true},
		{"Sweeps", "", false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			actual, ok := report.Field(tc.name)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, actual)
		})
	}
}
