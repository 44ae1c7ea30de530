package bouquet

import (
	"github.com/go-logr/logr"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/bouquet/internal/metrics"
	"github.com/viant/bouquet/model/session"
	"github.com/viant/bouquet/progress"
	"github.com/viant/bouquet/service/dao"
)

// Option represents a driver option
type Option func(s *Service)

// WithConfig sets the configuration
func WithConfig(config *Config) Option {
	return func(s *Service) {
		s.config = config
	}
}

// WithLogger sets the logger shared by the driver and the planners it creates
func WithLogger(logger logr.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

// WithFs sets the file system used for inputs and outputs
func WithFs(fs afs.Service) Option {
	return func(s *Service) {
		s.fs = fs
	}
}

// WithInputFsOptions sets storage options used when reading inputs, e.g. an embed.FS
func WithInputFsOptions(options ...storage.Option) Option {
	return func(s *Service) {
		s.inputFsOptions = options
	}
}

// WithMetrics sets the metrics sink
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithReportDAO sets the session report store
func WithReportDAO(reportDAO dao.Service[string, session.Report]) Option {
	return func(s *Service) {
		s.runtime.reportDAO = reportDAO
	}
}

// WithProgressListener registers a callback receiving session counters after every sweep
func WithProgressListener(listener func(progress.Progress)) Option {
	return func(s *Service) {
		s.runtime.onProgress = listener
	}
}
