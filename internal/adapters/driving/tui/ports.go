// Package tui provides an interactive terminal user interface for folio.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// ConversationFactory builds a conversation over a freshly loaded snapshot.
type ConversationFactory func(snapshot *domain.Snapshot) driving.ConversationService

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Loader fetches and parses the portfolio content.
	Loader driving.SnapshotLoader

	// Revealer types out the greeting and answers.
	Revealer driving.Revealer

	// Conversations creates the state machine once content is loaded.
	Conversations ConversationFactory

	// Link returns the current deep link for the status bar. Optional.
	Link func() string
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	loader driving.SnapshotLoader,
	revealer driving.Revealer,
	conversations ConversationFactory,
) *Ports {
	return &Ports{
		Loader:        loader,
		Revealer:      revealer,
		Conversations: conversations,
	}
}

// Validate ensures all required ports are set.
// Returns an error if any port is nil.
func (p *Ports) Validate() error {
	if p.Loader == nil {
		return ErrMissingLoader
	}
	if p.Revealer == nil {
		return ErrMissingRevealer
	}
	if p.Conversations == nil {
		return ErrMissingConversationFactory
	}
	return nil
}
