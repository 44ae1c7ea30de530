package bouquet

import (
	"fmt"
	"path"

	"github.com/viant/bouquet/service/planner"
)

// Config is a serialisable representation of the driver configuration. It
// can be populated from YAML, JSON, environment variables or flags.
type Config struct {
	Input   Input          `json:"input" yaml:"input" mapstructure:"input"`
	Output  Output         `json:"output" yaml:"output" mapstructure:"output"`
	Planner planner.Config `json:"planner" yaml:"planner" mapstructure:"planner"`
}

// Input selects the documents to plan
type Input struct {
	URL       string `json:"url" yaml:"url" mapstructure:"url"`
	Pattern   string `json:"pattern" yaml:"pattern" mapstructure:"pattern"`
	Recursive bool   `json:"recursive" yaml:"recursive" mapstructure:"recursive"`
}

// Output describes where bouquet lists are written
type Output struct {
	URL    string `json:"url" yaml:"url" mapstructure:"url"`
	Prefix string `json:"prefix" yaml:"prefix" mapstructure:"prefix"`
	// Reverse writes the most recently made bouquet first.
	Reverse bool `json:"reverse" yaml:"reverse" mapstructure:"reverse"`
	// Diff records how each rewritten output differs from its previous content.
	Diff bool `json:"diff" yaml:"diff" mapstructure:"diff"`
}

// DefaultConfig returns a Config with every default populated. Callers may
// modify the returned struct before passing it to WithConfig.
func DefaultConfig() *Config {
	return &Config{
		Input: Input{
			Pattern:   "*.txt",
			Recursive: true,
		},
		Output: Output{
			Prefix:  "out.",
			Reverse: true,
		},
		Planner: planner.DefaultConfig(),
	}
}

// Validate returns an error describing the first invalid setting, or nil.
func (c *Config) Validate() error {
	if c == nil {
		return nil
	}
	if c.Input.Pattern != "" {
		if _, err := path.Match(c.Input.Pattern, ""); err != nil {
			return fmt.Errorf("input.pattern %q is invalid: %w", c.Input.Pattern, err)
		}
	}
	if c.Output.Prefix == "" && c.Output.URL != "" && c.Output.URL == c.Input.URL {
		return fmt.Errorf("output.prefix must be set when output.url equals input.url")
	}
	return c.Planner.Validate()
}
