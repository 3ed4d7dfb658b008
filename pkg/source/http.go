package source

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

type HTTPSource struct {
	url        string
	httpClient *http.Client
}

func NewHTTPSource(url string, timeout time.Duration) *HTTPSource {
	return &HTTPSource{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (s *HTTPSource) Name() string {
	return s.url
}

func (s *HTTPSource) Fetch(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return "", fmt.Errorf("source request: %w", err)
	}
	req.Header.Set("Cache-Control", "no-cache")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("source fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("source fetch: %w: %s", ErrUnexpectedStatus, resp.Status)
	}

	text, err := readText(resp.Body)
	if err != nil {
		return "", fmt.Errorf("source fetch: %w", err)
	}

	return text, nil
}
