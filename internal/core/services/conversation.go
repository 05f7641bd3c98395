package services

import (
	"sync"

	"github.com/google/uuid"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
	"github.com/custodia-labs/folio/internal/logger"
)

// Ensure Conversation implements the interface.
var _ driving.ConversationService = (*Conversation)(nil)

// Conversation is the topic selection state machine.
//
// Turns are append-only between calls to Initialize. Every entry point takes
// the mutex, so mutations are serialised even when adapters call from
// several goroutines.
type Conversation struct {
	mu                 sync.Mutex
	snapshot           *domain.Snapshot
	navigator          driven.Navigator
	turns              []domain.Turn
	suggestionsVisible bool
	newID              func() string
}

// NewConversation creates a conversation over snapshot.
// navigator may be nil, in which case deep links are neither read nor written.
func NewConversation(snapshot *domain.Snapshot, navigator driven.Navigator) *Conversation {
	if snapshot == nil {
		snapshot = domain.NewSnapshot(nil, nil, nil)
	}
	return &Conversation{
		snapshot:           snapshot,
		navigator:          navigator,
		suggestionsVisible: true,
		newID:              func() string { return uuid.New().String() },
	}
}

// Initialize resets the conversation from the deep-link query parameter.
func (c *Conversation) Initialize() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.turns = nil
	c.suggestionsVisible = true

	if c.navigator == nil {
		return
	}

	key := c.navigator.QueryParam(driven.QueryParam)
	if key == "" || !c.snapshot.HasKey(key) {
		if key != "" {
			logger.Debug("Ignoring unknown deep-link key %q", key)
		}
		return
	}

	logger.Debug("Resuming conversation at %q", key)
	c.turns = append(c.turns, c.resolve(key))
	c.suggestionsVisible = false
}

// SelectTopic appends a turn for key and records it as the current deep link.
func (c *Conversation) SelectTopic(key string) domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()

	turn := c.resolve(key)
	c.turns = append(c.turns, turn)
	c.suggestionsVisible = false

	if c.navigator != nil {
		if err := c.navigator.SetQueryParam(driven.QueryParam, key); err != nil {
			logger.Warn("Failed to record deep link for %q: %v", key, err)
		}
	}

	return turn
}

// resolve builds a turn for key. Caller must hold the lock.
func (c *Conversation) resolve(key string) domain.Turn {
	turn := domain.Turn{
		ID:          c.newID(),
		InternalKey: key,
	}

	label, ok := c.snapshot.Label(key)
	if !ok {
		logger.Warn("Unknown topic key %q", key)
		turn.Label = key
		return turn
	}
	turn.Label = label

	section, ok := c.snapshot.SectionFor(label)
	if !ok {
		logger.Debug("No section titled %q", label)
		return turn
	}

	turn.Section = section
	turn.Evidence = c.snapshot.EvidenceFor(key)
	return turn
}

// RemainingTopics returns unasked topics in keyword order.
func (c *Conversation) RemainingTopics() []domain.Topic {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.remaining()
}

func (c *Conversation) remaining() []domain.Topic {
	asked := make(map[string]struct{}, len(c.turns))
	for _, t := range c.turns {
		asked[t.InternalKey] = struct{}{}
	}

	topics := c.snapshot.Topics()
	out := make([]domain.Topic, 0, len(topics))
	for _, t := range topics {
		if _, ok := asked[t.Key]; ok {
			continue
		}
		out = append(out, t)
	}
	return out
}

// Exhausted reports whether all topics have been asked.
func (c *Conversation) Exhausted() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.turns) > 0 && len(c.remaining()) == 0
}

// RevealSuggestions makes the suggestion list visible.
func (c *Conversation) RevealSuggestions() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.suggestionsVisible = true
}

// SuggestionsVisible reports whether suggestions should be shown.
func (c *Conversation) SuggestionsVisible() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.suggestionsVisible
}

// Turns returns a copy of the conversation history.
func (c *Conversation) Turns() []domain.Turn {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]domain.Turn, len(c.turns))
	copy(out, c.turns)
	return out
}

// Snapshot returns the snapshot the conversation resolves against.
func (c *Conversation) Snapshot() *domain.Snapshot {
	return c.snapshot
}
