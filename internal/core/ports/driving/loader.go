package driving

import (
	"context"

	"github.com/custodia-labs/folio/internal/core/domain"
)

// SnapshotLoader assembles the startup snapshot from the configured sources.
type SnapshotLoader interface {
	// Load fetches all sources concurrently and parses them.
	// Any fetch failure yields a *domain.DataLoadError; there are no retries.
	Load(ctx context.Context) (*domain.Snapshot, error)
}
