package allocator

import "github.com/go-logr/logr"

// Option represents allocator option
type Option func(s *Service)

// WithLogger sets the logger
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}
