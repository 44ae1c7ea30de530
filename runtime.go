package bouquet

import (
	"context"
	"errors"
	"fmt"
	"path"
	"slices"
	"strings"

	"github.com/go-logr/logr"
	"github.com/viant/afs/url"
	"github.com/viant/bouquet/internal/clock"
	"github.com/viant/bouquet/internal/idgen"
	"github.com/viant/bouquet/internal/metrics"
	"github.com/viant/bouquet/model/session"
	"github.com/viant/bouquet/progress"
	"github.com/viant/bouquet/service/dao"
	"github.com/viant/bouquet/service/planner"
	dstorage "github.com/viant/bouquet/service/storage"
	"github.com/viant/bouquet/tracing"
)

var (
	// ErrNoInput is returned when no input location is configured.
	ErrNoInput = errors.New("input url was empty")
	// ErrNoOutput is returned when no output location is configured.
	ErrNoOutput = errors.New("output url was empty")
)

// Runtime runs planning sessions over input documents
type Runtime struct {
	config     *Config
	logger     logr.Logger
	metrics    *metrics.Metrics
	input      *dstorage.Service
	output     *dstorage.Service
	reportDAO  dao.Service[string, session.Report]
	onProgress func(progress.Progress)
	newPlanner func() *planner.Service
}

// Run plans every input document matching the configured pattern, in URL
// order. It stops at the first failing session and returns the reports made
// so far together with the error.
func (r *Runtime) Run(ctx context.Context) ([]*session.Report, error) {
	if err := r.config.Validate(); err != nil {
		return nil, err
	}
	input := r.config.Input
	if input.URL == "" {
		return nil, ErrNoInput
	}
	if r.config.Output.URL == "" {
		return nil, ErrNoOutput
	}
	assets, err := r.input.List(ctx, input.URL, input.Pattern, input.Recursive)
	if err != nil {
		return nil, err
	}
	r.logger.Info("planning", "input", input.URL, "documents", len(assets))
	var reports []*session.Report
	for _, asset := range assets {
		report, err := r.RunFile(ctx, asset.URL)
		if report != nil {
			reports = append(reports, report)
		}
		if err != nil {
			return reports, err
		}
	}
	return reports, nil
}

// RunFile plans a single document and writes its bouquet list to the output location.
func (r *Runtime) RunFile(ctx context.Context, URL string) (report *session.Report, err error) {
	if r.config.Output.URL == "" {
		return nil, ErrNoOutput
	}
	name := path.Base(url.Path(URL))
	report = &session.Report{
		ID:          idgen.New(),
		Source:      URL,
		Destination: r.output.Join(r.config.Output.URL, r.config.Output.Prefix+name),
	}
	ctx, span := tracing.StartSpan(ctx, "session")
	span.WithAttributes(map[string]string{"session": report.ID, "source": URL})
	ctx, tracker := progress.WithNewTracker(ctx, report.ID, URL, r.onProgress)
	report.StartedAt = tracker.StartedAt
	logger := r.logger.WithValues("session", report.ID, "source", URL)
	defer func() {
		report.Duration = clock.Since(report.StartedAt)
		if err != nil {
			report.Error = err.Error()
			logger.Error(err, "session failed")
		}
		if sErr := r.reportDAO.Save(ctx, report); sErr != nil && err == nil {
			err = fmt.Errorf("failed to save report %v: %w", report.ID, sErr)
		}
		r.metrics.ObserveSession()
		tracing.EndSpan(span, err)
	}()

	data, err := r.input.Download(ctx, URL)
	if err != nil {
		return report, err
	}
	aPlanner := r.newPlanner()
	summary, err := aPlanner.Import(ctx, data)
	if err != nil {
		return report, fmt.Errorf("failed to import %v: %w", URL, err)
	}
	report.Flowers, report.Designs, report.Unknown = summary.Flowers, summary.Designs, summary.Unknown
	plan, err := aPlanner.Plan(ctx)
	report.Sweeps = plan.Sweeps
	report.Residual = aPlanner.Ledger().Snapshot()
	if err != nil {
		return report, fmt.Errorf("failed to plan %v: %w", URL, err)
	}
	codes := plan.Codes()
	if r.config.Output.Reverse {
		slices.Reverse(codes)
	}
	report.Codes = codes
	if err = r.output.EnsureDir(ctx, r.config.Output.URL); err != nil {
		return report, err
	}
	content := render(codes)
	if r.config.Output.Diff {
		if report.Change, err = r.compare(ctx, report.Destination, content); err != nil {
			return report, err
		}
	}
	if _, err = r.output.Upload(ctx, report.Destination, content); err != nil {
		return report, err
	}
	logger.Info("session completed", "destination", report.Destination, "bouquets", len(codes), "sweeps", report.Sweeps)
	return report, nil
}

// Reports lists saved session reports; parameters filter by ID, Source or Destination.
func (r *Runtime) Reports(ctx context.Context, parameters ...*dao.Parameter) ([]*session.Report, error) {
	return r.reportDAO.List(ctx, parameters...)
}

// Report loads a session report by ID
func (r *Runtime) Report(ctx context.Context, id string) (*session.Report, error) {
	return r.reportDAO.Load(ctx, id)
}

// compare diffs content against the current destination; nil when the destination does not exist yet.
func (r *Runtime) compare(ctx context.Context, destination string, content []byte) (*session.Change, error) {
	exists, err := r.output.Exists(ctx, destination)
	if err != nil || !exists {
		return nil, err
	}
	previous, err := r.output.Download(ctx, destination)
	if err != nil {
		return nil, err
	}
	return dstorage.Compare(path.Base(url.Path(destination)), previous, content, 0)
}

// render writes one code per line, each terminated by a newline.
func render(codes []string) []byte {
	var b strings.Builder
	for _, code := range codes {
		b.WriteString(code)
		b.WriteByte('\n')
	}
	return []byte(b.String())
}
