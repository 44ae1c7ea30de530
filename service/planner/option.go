package planner

import (
	"github.com/go-logr/logr"
	"github.com/viant/bouquet/internal/metrics"
)

// Option represents planner option
type Option func(s *Service)

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithAllocator replaces the greedy allocator
func WithAllocator(allocator Allocator) Option {
	return func(s *Service) {
		s.allocator = allocator
	}
}

// WithConfig sets the planner config
func WithConfig(config Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}
