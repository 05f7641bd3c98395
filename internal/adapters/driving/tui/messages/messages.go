// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/folio/internal/core/domain"
)

// ViewType identifies which screen is currently active.
type ViewType int

const (
	// ViewLoading is shown while content is fetched.
	ViewLoading ViewType = iota
	// ViewNotice is the blocking notice shown when loading fails.
	ViewNotice
	// ViewConversation is the hero, turns and suggestion grid.
	ViewConversation
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewLoading:
		return "loading"
	case ViewNotice:
		return "notice"
	case ViewConversation:
		return "conversation"
	default:
		return "unknown"
	}
}

// SnapshotLoaded carries the result of a data load.
type SnapshotLoaded struct {
	Snapshot *domain.Snapshot
	Err      error
}

// ReloadRequested asks for the content to be fetched again.
type ReloadRequested struct{}

// TopicSelected is sent when a suggestion is chosen.
type TopicSelected struct {
	Key string
}

// RevealTicked is sent whenever any running reveal advances or completes.
// Ticks are coalesced; the receiver reads current reveal state directly.
type RevealTicked struct{}

// Quit signals the application should exit.
type Quit struct{}
