package driven

import "context"

// Fetcher reads a content resource by location.
// A non-successful response (missing file, non-2xx status) is an error.
type Fetcher interface {
	// Fetch returns the raw bytes at location.
	Fetch(ctx context.Context, location string) ([]byte, error)
}
