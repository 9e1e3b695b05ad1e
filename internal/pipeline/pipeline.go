// Package pipeline orchestrates the read-parse-aggregate-report run.
package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/couchcryptid/weather-report/internal/domain"
	"github.com/couchcryptid/weather-report/internal/observability"
	"github.com/couchcryptid/weather-report/internal/report"
)

// Source provides the ordered lines of a named input.
type Source interface {
	Lines(path string) ([]string, error)
}

// Pipeline runs the whole analysis as one pass: read the source, parse every
// line, aggregate, and print the composed report. There is no partial-success
// mode; a malformed line aborts the run before any report output.
type Pipeline struct {
	source   Source
	composer report.Composer
	out      io.Writer
	logger   *slog.Logger
	metrics  *observability.Metrics
}

// New creates a Pipeline writing its report to out.
func New(src Source, composer report.Composer, out io.Writer, logger *slog.Logger, metrics *observability.Metrics) *Pipeline {
	return &Pipeline{
		source:   src,
		composer: composer,
		out:      out,
		logger:   logger,
		metrics:  metrics,
	}
}

// Run executes one analysis over the file at path. Parsing completes in full
// before any report text is written, so a parse failure yields no output.
func (p *Pipeline) Run(ctx context.Context, path string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	p.logger.Info("analysis started", "path", path)
	p.metrics.AnalysisRunning.Set(1)
	defer p.metrics.AnalysisRunning.Set(0)
	start := time.Now()

	lines, err := p.source.Lines(path)
	if err != nil {
		return err
	}

	observations, err := domain.ParseLines(lines)
	if err != nil {
		p.metrics.ParseErrors.Inc()
		return err
	}
	p.metrics.ObservationsParsed.Add(float64(len(observations)))

	if err := p.composer.WriteSummary(p.out, observations); err != nil {
		return fmt.Errorf("write summary: %w", err)
	}
	monthly := p.composer.MonthlyReport(observations)
	if _, err := fmt.Fprintf(p.out, "\n%s", monthly); err != nil {
		return fmt.Errorf("write monthly report: %w", err)
	}

	p.metrics.RunsCompleted.Inc()
	p.metrics.RunDuration.Observe(time.Since(start).Seconds())
	p.logger.Info("analysis complete",
		"records", len(observations),
		"rainy_days", domain.CountRainyDays(observations),
		"duration", time.Since(start),
	)
	return nil
}
