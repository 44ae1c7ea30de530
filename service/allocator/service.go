package allocator

import (
	"github.com/go-logr/logr"
	"github.com/viant/bouquet/model/design"
	"github.com/viant/bouquet/model/inventory"
)

// Service allocates flowers from a ledger to designs
type Service struct {
	logger logr.Logger
}

// Allocate tries to fill aDesign from the ledger. On success the picks are
// debited and the bouquet is returned. When the total quantity cannot be
// reached Allocate returns false and leaves the ledger unchanged.
func (s *Service) Allocate(aDesign *design.Design, ledger *inventory.Ledger) (*Bouquet, bool) {
	remaining := aDesign.TotalQuantity
	var picks []Pick
	for _, requirement := range aDesign.Flowers {
		if remaining == 0 {
			break
		}
		available := ledger.Amount(requirement.Species, aDesign.Size)
		if available <= 0 {
			continue
		}
		taken := take(available, requirement.Max, remaining)
		if taken <= 0 {
			continue
		}
		picks = append(picks, Pick{Species: requirement.Species, Size: aDesign.Size, Amount: taken})
		remaining -= taken
	}
	if remaining > 0 {
		s.logger.V(1).Info("design infeasible", "design", aDesign.Name, "size", aDesign.Size, "missing", remaining)
		return nil, false
	}
	for _, pick := range picks {
		ledger.Remove(pick.Species, pick.Size, pick.Amount)
	}
	return &Bouquet{Design: aDesign, Picks: picks}, true
}

func take(available, max, remaining int) int {
	switch {
	case available >= remaining && max >= remaining:
		return remaining
	case available >= max:
		return max
	default:
		return available
	}
}

// New creates an allocator service
func New(options ...Option) *Service {
	ret := &Service{logger: logr.Discard()}
	for _, opt := range options {
		opt(ret)
	}
	return ret
}
