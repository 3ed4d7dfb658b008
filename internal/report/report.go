// Package report carries load diagnostics from display components to
// wherever they are kept. Reporting never changes what visitors see.
package report

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"noticeboard/internal/model"

	"github.com/google/uuid"
)

type Reporter interface {
	Report(ctx context.Context, r model.LoadReport) error
}

// New starts a report for one load of component.
func New(component string, now time.Time) model.LoadReport {
	return model.LoadReport{
		ID:        uuid.NewString(),
		Component: component,
		LoadedAt:  now.UTC(),
	}
}

// Send hands r to reporter and logs, rather than returns, any failure.
func Send(ctx context.Context, reporter Reporter, r model.LoadReport) {
	if err := reporter.Report(ctx, r); err != nil {
		slog.Warn("error reporting load", "component", r.Component, "report_id", r.ID, "error", err)
	}
}

type LogReporter struct{}

func (LogReporter) Report(ctx context.Context, r model.LoadReport) error {
	slog.InfoContext(ctx, "load report",
		"report_id", r.ID,
		"component", r.Component,
		"outcome", r.Outcome,
		"rows", r.Rows,
		"skipped", r.Skipped,
		"hidden", r.Hidden,
		"eligible", r.Eligible,
		"error", r.Error,
	)
	return nil
}

// Multi sends every report to each reporter in turn and returns the
// failures joined.
type Multi []Reporter

func (m Multi) Report(ctx context.Context, r model.LoadReport) error {
	var errs []error
	for _, reporter := range m {
		if err := reporter.Report(ctx, r); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
