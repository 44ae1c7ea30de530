package planner

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/go-logr/logr"
	"github.com/viant/bouquet/internal/metrics"
	"github.com/viant/bouquet/model/design"
	"github.com/viant/bouquet/model/inventory"
	"github.com/viant/bouquet/progress"
	"github.com/viant/bouquet/service/allocator"
	"github.com/viant/bouquet/service/decoder"
	"github.com/viant/bouquet/tracing"
)

// ErrSweepLimit is returned when the configured number of sweeps ran out
// before a sweep made no bouquet.
var ErrSweepLimit = errors.New("sweep limit reached")

// Allocator fills a single design from the ledger
type Allocator interface {
	Allocate(aDesign *design.Design, ledger *inventory.Ledger) (*allocator.Bouquet, bool)
}

// Service plans bouquets for one session
type Service struct {
	config    Config
	allocator Allocator
	logger    logr.Logger
	metrics   *metrics.Metrics

	mux     sync.Mutex
	ledger  *inventory.Ledger
	designs []*design.Design
}

// AddFlowers credits amount flowers of species and size
func (s *Service) AddFlowers(species inventory.Species, size inventory.Size, amount int) {
	s.mux.Lock()
	defer s.mux.Unlock()
	s.ledger.Add(species, size, amount)
}

// AddDesign appends a design to the end of the design list
func (s *Service) AddDesign(name string, size inventory.Size, totalQuantity int, flowers ...design.Requirement) *design.Design {
	return s.Add(design.New(name, size, totalQuantity, flowers...))
}

// Add appends a copy of aDesign to the end of the design list
func (s *Service) Add(aDesign *design.Design) *design.Design {
	aDesign = aDesign.Clone()
	s.mux.Lock()
	defer s.mux.Unlock()
	s.designs = append(s.designs, aDesign)
	return aDesign
}

// Designs returns the design list in priority order
func (s *Service) Designs() []*design.Design {
	s.mux.Lock()
	defer s.mux.Unlock()
	return append([]*design.Design(nil), s.designs...)
}

// Amount returns the number of available flowers
func (s *Service) Amount(species inventory.Species, size inventory.Size) int {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.ledger.Amount(species, size)
}

// Ledger returns a copy of the current ledger
func (s *Service) Ledger() *inventory.Ledger {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.ledger.Clone()
}

// Import decodes every line of data, crediting flowers and appending designs.
// Unknown lines are counted and skipped.
func (s *Service) Import(ctx context.Context, data []byte) (*Summary, error) {
	summary := &Summary{}
	for _, line := range decoder.Lines(data) {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		record := decoder.Decode([]byte(line))
		switch record.Kind {
		case decoder.KindFlower:
			s.AddFlowers(record.Species, record.Size, 1)
			summary.Flowers++
		case decoder.KindDesign:
			s.Add(record.Design)
			summary.Designs++
		default:
			summary.Unknown++
		}
	}
	s.logger.V(1).Info("imported", "flowers", summary.Flowers, "designs", summary.Designs, "unknown", summary.Unknown)
	return summary, nil
}

// Build runs Plan and renders the bouquet codes
func (s *Service) Build(ctx context.Context) ([]string, error) {
	plan, err := s.Plan(ctx)
	return plan.Codes(), err
}

// Plan sweeps the design list until a sweep makes no bouquet or takes no
// flower. The context is checked between sweeps; on cancellation the
// bouquets made so far are returned with the context error.
func (s *Service) Plan(ctx context.Context) (plan *Plan, err error) {
	ctx, span := tracing.StartSpan(ctx, "plan")
	plan = &Plan{}
	defer func() {
		span.WithCount("sweeps", plan.Sweeps).WithCount("bouquets", len(plan.Bouquets))
		tracing.EndSpan(span, err)
	}()

	designs := s.Designs()
	for {
		if err = ctx.Err(); err != nil {
			return plan, err
		}
		if s.config.MaxSweeps > 0 && plan.Sweeps >= s.config.MaxSweeps {
			err = fmt.Errorf("%w: %d", ErrSweepLimit, s.config.MaxSweeps)
			return plan, err
		}
		plan.Sweeps++
		bouquets, consumed := s.sweep(ctx, plan.Sweeps, designs)
		plan.Bouquets = append(plan.Bouquets, bouquets...)
		if len(bouquets) == 0 || consumed == 0 {
			break
		}
	}
	s.logger.Info("plan completed", "sweeps", plan.Sweeps, "bouquets", len(plan.Bouquets), "designs", len(designs))
	return plan, nil
}

// sweep tries every design once in order, returning the bouquets made and
// the number of flowers they took.
func (s *Service) sweep(ctx context.Context, n int, designs []*design.Design) ([]*allocator.Bouquet, int) {
	_, span := tracing.StartSweepSpan(ctx, n)
	var bouquets []*allocator.Bouquet
	consumed, infeasible := 0, 0
	for _, aDesign := range designs {
		bouquet, ok := s.allocate(aDesign)
		if !ok {
			infeasible++
			s.metrics.ObserveInfeasible(aDesign.Name)
			continue
		}
		bouquets = append(bouquets, bouquet)
		consumed += bouquet.Quantity()
		span.AddEvent("bouquet", map[string]string{"code": bouquet.Code()})
		s.metrics.ObserveBouquet(aDesign.Name, bySpecies(bouquet))
	}
	s.metrics.ObserveSweep()
	progress.UpdateCtx(ctx, progress.Delta{Sweeps: 1, Bouquets: len(bouquets), Infeasible: infeasible, Consumed: consumed})
	s.logger.V(1).Info("sweep completed", "sweep", n, "bouquets", len(bouquets), "consumed", consumed)
	span.WithCount("bouquets", len(bouquets))
	tracing.EndSpan(span, nil)
	return bouquets, consumed
}

// allocate holds the ledger lock for the whole check-and-debit.
func (s *Service) allocate(aDesign *design.Design) (*allocator.Bouquet, bool) {
	s.mux.Lock()
	defer s.mux.Unlock()
	return s.allocator.Allocate(aDesign, s.ledger)
}

func bySpecies(bouquet *allocator.Bouquet) map[string]int {
	ret := make(map[string]int, len(bouquet.Picks))
	for _, pick := range bouquet.Picks {
		ret[string(pick.Species)] += pick.Amount
	}
	return ret
}

// New creates a planner with an empty ledger
func New(options ...Option) *Service {
	ret := &Service{
		config: DefaultConfig(),
		logger: logr.Discard(),
		ledger: inventory.New(),
	}
	for _, opt := range options {
		opt(ret)
	}
	if ret.allocator == nil {
		ret.allocator = allocator.New(allocator.WithLogger(ret.logger))
	}
	return ret
}
