package progress

import (
	"context"
	"sync"
	"time"

	"github.com/viant/bouquet/internal/clock"
)

// Delta represents an incremental counter change emitted by the planner.
type Delta struct {
	Sweeps     int
	Bouquets   int
	Infeasible int
	Consumed   int
}

// Progress keeps aggregated counters of one planning session.
// It is safe for concurrent use.
type Progress struct {
	SessionID string
	Source    string
	StartedAt time.Time

	Sweeps     int
	Bouquets   int
	Infeasible int
	Consumed   int

	mux      sync.Mutex
	onChange func(Progress)
}

// Update applies the delta. The onChange callback, if any, receives a copy
// of the counters outside of the lock.
func (p *Progress) Update(d Delta) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.Sweeps += d.Sweeps
	p.Bouquets += d.Bouquets
	p.Infeasible += d.Infeasible
	p.Consumed += d.Consumed
	snapshot := p.snapshot()
	cb := p.onChange
	p.mux.Unlock()

	if cb != nil {
		cb(snapshot)
	}
}

func (p *Progress) snapshot() Progress {
	return Progress{
		SessionID:  p.SessionID,
		Source:     p.Source,
		StartedAt:  p.StartedAt,
		Sweeps:     p.Sweeps,
		Bouquets:   p.Bouquets,
		Infeasible: p.Infeasible,
		Consumed:   p.Consumed,
	}
}

// Snapshot returns a copy of the counters
func (p *Progress) Snapshot() Progress {
	if p == nil {
		return Progress{}
	}
	p.mux.Lock()
	defer p.mux.Unlock()
	return p.snapshot()
}

// OnChange registers a callback invoked after every Update; nil disables it.
func (p *Progress) OnChange(cb func(Progress)) {
	if p == nil {
		return
	}
	p.mux.Lock()
	p.onChange = cb
	p.mux.Unlock()
}

type trackerKeyT struct{}

var trackerKey trackerKeyT

// WithNewTracker creates a tracker and embeds it in a derived context.
func WithNewTracker(ctx context.Context, sessionID, source string, onChange func(Progress)) (context.Context, *Progress) {
	if ctx == nil {
		ctx = context.Background()
	}
	tr := &Progress{
		SessionID: sessionID,
		Source:    source,
		StartedAt: clock.Now(),
		onChange:  onChange,
	}
	return context.WithValue(ctx, trackerKey, tr), tr
}

// FromContext extracts the tracker from ctx
func FromContext(ctx context.Context) (*Progress, bool) {
	if ctx == nil {
		return nil, false
	}
	tr, ok := ctx.Value(trackerKey).(*Progress)
	return tr, ok
}

// UpdateCtx applies the delta to the tracker carried by ctx, if any.
func UpdateCtx(ctx context.Context, d Delta) {
	if tr, ok := FromContext(ctx); ok {
		tr.Update(d)
	}
}
