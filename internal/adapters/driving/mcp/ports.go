package mcp

import (
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Loader fetches and parses the portfolio content.
	Loader driving.SnapshotLoader

	// Conversations creates the state machine once content is loaded.
	Conversations func(snapshot *domain.Snapshot) driving.ConversationService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Loader == nil {
		return ErrMissingLoader
	}
	if p.Conversations == nil {
		return ErrMissingConversationFactory
	}
	return nil
}
