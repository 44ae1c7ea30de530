package planner

import "fmt"

// Config controls the sweep loop
type Config struct {
	// MaxSweeps bounds the number of sweeps, 0 means unbounded.
	MaxSweeps int `json:"maxSweeps" yaml:"maxSweeps" mapstructure:"maxSweeps"`
}

// DefaultConfig returns the default planner configuration
func DefaultConfig() Config {
	return Config{}
}

// Validate reports invalid settings
func (c Config) Validate() error {
	if c.MaxSweeps < 0 {
		return fmt.Errorf("planner.maxSweeps must be >= 0")
	}
	return nil
}
