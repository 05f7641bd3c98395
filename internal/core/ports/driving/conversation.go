package driving

import "github.com/custodia-labs/folio/internal/core/domain"

// ConversationService is the conversation state machine.
type ConversationService interface {
	// Initialize resets the conversation from the current deep-link key.
	// A known key yields one turn with suggestions hidden; otherwise the
	// conversation is empty and suggestions are visible.
	Initialize()

	// SelectTopic appends a turn for key, hides suggestions and records the
	// key as the current deep link. Unknown keys yield a content-unavailable turn.
	SelectTopic(key string) domain.Turn

	// RemainingTopics returns topics whose key has not been asked, in keyword order.
	RemainingTopics() []domain.Topic

	// RevealSuggestions makes the suggestion list visible.
	RevealSuggestions()

	// SuggestionsVisible reports whether suggestions should be shown.
	SuggestionsVisible() bool

	// Turns returns the conversation history.
	Turns() []domain.Turn

	// Exhausted reports whether every topic has been asked.
	Exhausted() bool

	// Snapshot returns the snapshot the conversation resolves against.
	Snapshot() *domain.Snapshot
}
