package bouquet

import (
	"github.com/go-logr/logr"
	"github.com/viant/afs"
	"github.com/viant/afs/storage"
	"github.com/viant/bouquet/internal/metrics"
	rmemory "github.com/viant/bouquet/service/dao/report/memory"
	"github.com/viant/bouquet/service/planner"
	dstorage "github.com/viant/bouquet/service/storage"
)

// Service represents the bouquet driver
type Service struct {
	runtime        *Runtime
	config         *Config
	logger         logr.Logger
	metrics        *metrics.Metrics
	fs             afs.Service
	inputFsOptions []storage.Option
}

func (s *Service) init(options []Option) {
	for _, option := range options {
		option(s)
	}
	s.ensureBaseSetup()
	s.runtime.config = s.config
	s.runtime.logger = s.logger
	s.runtime.input = dstorage.New(s.fs, s.inputFsOptions...)
	s.runtime.output = dstorage.New(s.fs)
	s.runtime.newPlanner = func() *planner.Service {
		return planner.New(
			planner.WithConfig(s.config.Planner),
			planner.WithLogger(s.logger),
			planner.WithMetrics(s.metrics),
		)
	}
	s.runtime.metrics = s.metrics
}

func (s *Service) ensureBaseSetup() {
	if s.config == nil {
		s.config = DefaultConfig()
	}
	if s.fs == nil {
		s.fs = afs.New()
	}
	if s.runtime.reportDAO == nil {
		s.runtime.reportDAO = rmemory.New()
	}
}

// Config returns the effective configuration
func (s *Service) Config() *Config {
	return s.config
}

// Runtime returns the driver runtime
func (s *Service) Runtime() *Runtime {
	return s.runtime
}

// New creates a driver service
func New(options ...Option) *Service {
	ret := &Service{runtime: &Runtime{}, logger: logr.Discard()}
	ret.init(options)
	return ret
}
