package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

var ErrUnexpectedStatus = errors.New("unexpected response status")

// Source returns the full text of a published document.
type Source interface {
	Fetch(ctx context.Context) (string, error)
	Name() string
}

// Open picks an HTTP source for http(s) locations and a file source otherwise.
func Open(location string, timeout time.Duration) Source {
	if strings.HasPrefix(location, "http://") || strings.HasPrefix(location, "https://") {
		return NewHTTPSource(location, timeout)
	}
	return NewFileSource(location)
}

// readText decodes r as UTF-8, dropping a leading byte order mark, and
// otherwise leaves the text exactly as published.
func readText(r io.Reader) (string, error) {
	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())

	b, err := io.ReadAll(transform.NewReader(r, decoder))
	if err != nil {
		return "", fmt.Errorf("decode: %w", err)
	}
	return string(b), nil
}
