package notice

import (
	"context"
	"errors"
	"fmt"
	"time"

	"noticeboard/internal/model"
	"noticeboard/internal/report"
	"noticeboard/pkg/delimited"
	"noticeboard/pkg/source"
)

// Loader fetches the sheet once per call. Nothing is cached between calls.
type Loader struct {
	source   source.Source
	reporter report.Reporter
	now      func() time.Time
}

func NewLoader(src source.Source, reporter report.Reporter) *Loader {
	if reporter == nil {
		reporter = report.LogReporter{}
	}
	return &Loader{
		source:   src,
		reporter: reporter,
		now:      time.Now,
	}
}

func (l *Loader) Load(ctx context.Context, opts Options) ([]model.Notice, error) {
	component := model.ComponentNotices
	if opts.Type == TypeScrolling {
		component = model.ComponentTicker
	}
	r := report.New(component, l.now())

	notices, err := l.load(ctx, opts, &r)
	if err != nil {
		r.Error = err.Error()
	}
	report.Send(ctx, l.reporter, r)

	return notices, err
}

func (l *Loader) load(ctx context.Context, opts Options, r *model.LoadReport) ([]model.Notice, error) {
	text, err := l.source.Fetch(ctx)
	if err != nil {
		r.Outcome = model.OutcomeNetworkFailure
		return nil, fmt.Errorf("%w: %w", ErrNetworkFailure, err)
	}

	rows, err := delimited.Parse(text)
	if err != nil {
		r.Outcome = model.OutcomeMalformedInput
		return nil, fmt.Errorf("%w: %w", ErrMalformedInput, err)
	}

	notices, stats := SelectWithStats(rows, opts)
	r.Rows = stats.Rows
	r.Skipped = stats.Skipped
	r.Hidden = stats.Hidden
	r.Eligible = stats.Eligible

	r.Outcome = model.OutcomeOK
	if len(notices) == 0 {
		r.Outcome = model.OutcomeEmpty
	}

	return notices, nil
}

// IsLoadFailure reports whether err came from fetching or parsing the sheet.
func IsLoadFailure(err error) bool {
	return errors.Is(err, ErrNetworkFailure) || errors.Is(err, ErrMalformedInput)
}
