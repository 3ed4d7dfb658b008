package gallery

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"noticeboard/internal/model"
	"noticeboard/internal/report"
	"noticeboard/pkg/source"
)

var (
	ErrUnavailable = errors.New("manifest unavailable")
	ErrMalformed   = errors.New("manifest malformed")
)

// entry accepts both the gallery keys (src, alt) and the slide keys
// (image, caption).
type entry struct {
	Src     string `json:"src"`
	Image   string `json:"image"`
	Alt     string `json:"alt"`
	Caption string `json:"caption"`
}

// Decode reads a JSON array manifest, keeping array order. Entries without
// an image location are dropped.
func Decode(text string) ([]model.Image, error) {
	var entries []entry
	if err := json.Unmarshal([]byte(text), &entries); err != nil {
		return nil, fmt.Errorf("decode manifest: %w", err)
	}

	images := make([]model.Image, 0, len(entries))
	for _, e := range entries {
		img := model.Image{
			Src: strings.TrimSpace(firstNonEmpty(e.Src, e.Image)),
			Alt: strings.TrimSpace(firstNonEmpty(e.Alt, e.Caption)),
		}
		if img.Src == "" {
			continue
		}
		images = append(images, img)
	}
	return images, nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Loader reads a manifest once per call.
type Loader struct {
	source    source.Source
	component string
	reporter  report.Reporter
}

func NewLoader(src source.Source, component string, reporter report.Reporter) *Loader {
	if reporter == nil {
		reporter = report.LogReporter{}
	}
	return &Loader{source: src, component: component, reporter: reporter}
}

func (l *Loader) Load(ctx context.Context) ([]model.Image, error) {
	r := report.New(l.component, time.Now())

	images, err := l.load(ctx, &r)
	if err != nil {
		r.Error = err.Error()
	}
	report.Send(ctx, l.reporter, r)

	return images, err
}

func (l *Loader) load(ctx context.Context, r *model.LoadReport) ([]model.Image, error) {
	text, err := l.source.Fetch(ctx)
	if err != nil {
		r.Outcome = model.OutcomeNetworkFailure
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	}

	images, err := Decode(text)
	if err != nil {
		r.Outcome = model.OutcomeMalformedInput
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}

	r.Rows = len(images)
	r.Eligible = len(images)
	r.Outcome = model.OutcomeOK
	if len(images) == 0 {
		r.Outcome = model.OutcomeEmpty
	}
	return images, nil
}
