// Package web fetches content resources over HTTP(S).
package web

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

const (
	// DefaultTimeout is the default HTTP request timeout.
	DefaultTimeout = 30 * time.Second

	// MaxBodySize caps a single resource.
	MaxBodySize = 10 << 20
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// StatusError is returned for a non-2xx response.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("web: GET %s: %d %s", e.URL, e.StatusCode, http.StatusText(e.StatusCode))
}

// Is maps 404 and 410 to domain.ErrSourceNotFound.
func (e *StatusError) Is(target error) bool {
	return target == domain.ErrSourceNotFound &&
		(e.StatusCode == http.StatusNotFound || e.StatusCode == http.StatusGone)
}

// Fetcher issues a single GET per resource. There are no retries.
type Fetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a fetcher. A nil client gets DefaultTimeout.
func New(client *http.Client, userAgent string) *Fetcher {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}
	return &Fetcher{client: client, userAgent: userAgent}
}

// Fetch returns the response body for location.
func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("web: build request: %w", err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("web: GET %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{URL: location, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(io.LimitReader(resp.Body, MaxBodySize+1))
	if err != nil {
		return nil, fmt.Errorf("web: read %s: %w", location, err)
	}
	if len(data) > MaxBodySize {
		return nil, fmt.Errorf("web: %s exceeds %d bytes", location, MaxBodySize)
	}
	return data, nil
}
