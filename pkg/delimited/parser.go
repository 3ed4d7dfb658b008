package delimited

import (
	"errors"
	"fmt"
	"strings"
)

const (
	delimiter = ','
	quote     = '"'
)

var ErrUnterminatedQuote = errors.New("unterminated quoted field")

// Parse splits comma separated text into rows of fields. Quoted fields may
// contain commas, newlines and doubled quotes. Rows are returned as read:
// fields are not trimmed and rows may differ in width.
func Parse(text string) ([][]string, error) {
	var (
		rows      [][]string
		row       []string
		field     strings.Builder
		inQuotes  bool
		inRow     bool
		line      = 1
		quoteLine int
	)

	endField := func() {
		row = append(row, field.String())
		field.Reset()
	}
	endRow := func() {
		endField()
		rows = append(rows, row)
		row = nil
		inRow = false
	}

	for i := 0; i < len(text); i++ {
		ch := text[i]

		if inQuotes {
			switch ch {
			case quote:
				if i+1 < len(text) && text[i+1] == quote {
					field.WriteByte(quote)
					i++
				} else {
					inQuotes = false
				}
			case '\n':
				line++
				field.WriteByte(ch)
			default:
				field.WriteByte(ch)
			}
			continue
		}

		switch ch {
		case quote:
			inQuotes = true
			inRow = true
			quoteLine = line
		case delimiter:
			endField()
			inRow = true
		case '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			line++
			endRow()
		case '\n':
			line++
			endRow()
		default:
			field.WriteByte(ch)
			inRow = true
		}
	}

	if inQuotes {
		return nil, fmt.Errorf("line %d: %w", quoteLine, ErrUnterminatedQuote)
	}

	if inRow {
		endRow()
	}

	return rows, nil
}

// Format writes rows back as comma separated text, one line per row. Fields
// containing a delimiter, quote or line break are quoted.
func Format(rows [][]string) string {
	var b strings.Builder
	for _, row := range rows {
		for i, f := range row {
			if i > 0 {
				b.WriteByte(delimiter)
			}
			if strings.ContainsAny(f, ",\"\r\n") {
				b.WriteByte(quote)
				b.WriteString(strings.ReplaceAll(f, `"`, `""`))
				b.WriteByte(quote)
				continue
			}
			b.WriteString(f)
		}
		b.WriteByte('\n')
	}
	return b.String()
}
