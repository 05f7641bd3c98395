package github

import (
	"context"

	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure Fetcher implements the interface.
var _ driven.Fetcher = (*Fetcher)(nil)

// Fetcher reads github:// locations.
type Fetcher struct {
	client *Client
}

// NewFetcher creates a fetcher using client.
func NewFetcher(client *Client) *Fetcher {
	return &Fetcher{client: client}
}

// Fetch returns the content of the file at location.
func (f *Fetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	loc, err := ParseLocation(location)
	if err != nil {
		return nil, err
	}

	data, err := f.client.GetFileContent(ctx, loc)
	if err != nil {
		return nil, err
	}

	logger.Debug("GitHub quota: %d/%d remaining", f.client.RateLimiter().Remaining(), f.client.RateLimiter().Limit())
	return data, nil
}
