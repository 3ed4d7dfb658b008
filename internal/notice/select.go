package notice

import (
	"log/slog"
	"strings"

	"noticeboard/internal/model"
)

// Column positions in the published sheet.
const (
	colDate = iota
	colTitle
	colDescription
	colStatus
	colType
)

const DefaultRequiredColumns = 4

type TypeFilter int

const (
	TypeAny TypeFilter = iota
	TypeNormal
	TypeScrolling
)

func (f TypeFilter) matches(t model.Type) bool {
	switch f {
	case TypeNormal:
		return t == model.TypeNormal
	case TypeScrolling:
		return t == model.TypeScrolling
	default:
		return true
	}
}

type Options struct {
	HeaderRow       bool
	RequiredColumns int
	// MaxResults of zero or less keeps every eligible notice.
	MaxResults int
	Type       TypeFilter
}

// DefaultOptions matches the published sheet: a header row and four
// mandatory columns.
func DefaultOptions() Options {
	return Options{
		HeaderRow:       true,
		RequiredColumns: DefaultRequiredColumns,
	}
}

type Stats struct {
	Rows     int
	Skipped  int
	Hidden   int
	Eligible int
}

// Select maps rows to notices, keeps the eligible ones and returns them
// last sheet row first.
func Select(rows [][]string, opts Options) []model.Notice {
	notices, _ := SelectWithStats(rows, opts)
	return notices
}

func SelectWithStats(rows [][]string, opts Options) ([]model.Notice, Stats) {
	var stats Stats

	if opts.HeaderRow && len(rows) > 0 {
		rows = rows[1:]
	}

	required := opts.RequiredColumns
	if required < DefaultRequiredColumns {
		required = DefaultRequiredColumns
	}

	notices := make([]model.Notice, 0, len(rows))
	for i, row := range rows {
		stats.Rows++

		n, ok := mapRow(row, required)
		if !ok {
			slog.Debug("skipping short row", "row", i, "fields", len(row), "required", required)
			stats.Skipped++
			continue
		}

		if !n.Visible() || !opts.Type.matches(n.Type) {
			stats.Hidden++
			continue
		}

		notices = append(notices, n)
	}

	for i, j := 0, len(notices)-1; i < j; i, j = i+1, j-1 {
		notices[i], notices[j] = notices[j], notices[i]
	}

	stats.Eligible = len(notices)
	if opts.MaxResults > 0 && len(notices) > opts.MaxResults {
		notices = notices[:opts.MaxResults]
	}

	return notices, stats
}

func mapRow(row []string, required int) (model.Notice, bool) {
	if len(row) < required {
		return model.Notice{}, false
	}

	n := model.Notice{
		Date:        strings.TrimSpace(row[colDate]),
		Title:       strings.TrimSpace(row[colTitle]),
		Description: strings.TrimSpace(row[colDescription]),
		Status:      model.ParseStatus(row[colStatus]),
		Type:        model.TypeNormal,
	}
	if len(row) > colType {
		n.Type = model.ParseType(row[colType])
	}

	return n, true
}
