package connectors

import (
	"context"
	"fmt"
	"sync"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure Router implements the interface.
var _ driven.Fetcher = (*Router)(nil)

// Router dispatches each location to the fetcher for its source kind.
type Router struct {
	mu       sync.RWMutex
	fetchers map[domain.SourceKind]driven.Fetcher
}

// NewRouter creates an empty router.
func NewRouter() *Router {
	return &Router{
		fetchers: make(map[domain.SourceKind]driven.Fetcher),
	}
}

// Register sets the fetcher for kind, replacing any previous one.
func (r *Router) Register(kind domain.SourceKind, fetcher driven.Fetcher) error {
	if !kind.IsValid() {
		return fmt.Errorf("%w: %q", domain.ErrUnsupportedSource, kind)
	}
	if fetcher == nil {
		return fmt.Errorf("%w: nil fetcher for %s", domain.ErrInvalidInput, kind)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.fetchers[kind] = fetcher
	return nil
}

// Kinds returns the registered source kinds in canonical order.
func (r *Router) Kinds() []domain.SourceKind {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var kinds []domain.SourceKind
	for _, k := range domain.AllSourceKinds() {
		if _, ok := r.fetchers[k]; ok {
			kinds = append(kinds, k)
		}
	}
	return kinds
}

// Fetch routes location to its fetcher.
func (r *Router) Fetch(ctx context.Context, location string) ([]byte, error) {
	kind, err := domain.KindOf(location)
	if err != nil {
		return nil, err
	}

	r.mu.RLock()
	fetcher, ok := r.fetchers[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: no fetcher registered for %s", domain.ErrUnsupportedSource, kind)
	}

	logger.Debug("Routing %s to %s fetcher", location, kind)
	return fetcher.Fetch(ctx, location)
}
