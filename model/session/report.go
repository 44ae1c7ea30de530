// Package session describes the outcome of one planning session.
package session

import (
	"time"

	"github.com/viant/bouquet/model/inventory"
	"gopkg.in/yaml.v3"
)

// Report summarises a planning session over one input document
type Report struct {
	ID          string                                       `json:"id" yaml:"id"`
	Source      string                                       `json:"source" yaml:"source"`
	Destination string                                       `json:"destination" yaml:"destination"`
	Flowers     int                                          `json:"flowers" yaml:"flowers"`
	Designs     int                                          `json:"designs" yaml:"designs"`
	Unknown     int                                          `json:"unknown,omitempty" yaml:"unknown,omitempty"`
	Codes       []string                                     `json:"codes" yaml:"codes"`
	Sweeps      int                                          `json:"sweeps" yaml:"sweeps"`
	Residual    map[inventory.Species]map[inventory.Size]int `json:"residual,omitempty" yaml:"residual,omitempty"`
	StartedAt   time.Time                                    `json:"startedAt" yaml:"startedAt"`
	Duration    time.Duration                                `json:"duration" yaml:"duration"`
	Change      *Change                                      `json:"change,omitempty" yaml:"change,omitempty"`
	Error       string                                       `json:"error,omitempty" yaml:"error,omitempty"`
}

// Change describes how a rewritten output differs from its previous content
type Change struct {
	Diff    string `json:"diff,omitempty" yaml:"diff,omitempty"`
	Hunks   int    `json:"hunks" yaml:"hunks"`
	Added   int    `json:"added" yaml:"added"`
	Removed int    `json:"removed" yaml:"removed"`
}

// Field returns a named string field, used by report filters
func (r *Report) Field(name string) (string, bool) {
	switch name {
	case "ID":
		return r.ID, true
	case "Source":
		return r.Source, true
	case "Destination":
		return r.Destination, true
	}
	return "", false
}

// YAML renders the report
func (r *Report) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}
