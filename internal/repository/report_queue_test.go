package repository

import (
	"testing"
	"time"

	"noticeboard/internal/model"

	"github.com/go-playground/assert/v2"
)

func TestDecodeReport(t *testing.T) {
	loadedAt := time.Date(2025, 8, 3, 9, 0, 0, 0, time.UTC)
	data, err := EncodeReport(model.LoadReport{
		ID:        "2b1c8d7e-7f0a-4c1e-9a43-3f7d1f0d2a11",
		Component: model.ComponentNotices,
		Outcome:   model.OutcomeOK,
		Rows:      4,
		Skipped:   1,
		Eligible:  2,
		LoadedAt:  loadedAt,
	})
	assert.Equal(t, nil, err)

	r, err := DecodeReport(data)

	assert.Equal(t, nil, err)
	assert.Equal(t, model.ComponentNotices, r.Component)
	assert.Equal(t, 1, r.Skipped)
	assert.Equal(t, true, r.LoadedAt.Equal(loadedAt))
}

func TestDecodeReportRejectsIncomplete(t *testing.T) {
	_, err := DecodeReport(`{"outcome":"ok"}`)
	assert.NotEqual(t, nil, err)

	_, err = DecodeReport(`not json`)
	assert.NotEqual(t, nil, err)
}
