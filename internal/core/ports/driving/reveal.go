package driving

import "github.com/custodia-labs/folio/internal/core/domain"

// RevealHooks are optional callbacks for a reveal.
// They may be called from timer goroutines, one at a time, and must not call
// back into the reveal synchronously.
type RevealHooks struct {
	// OnStep is called with the visible text after a step. The text only ever
	// grows between calls; a step overtaken by a later one is not reported.
	OnStep func(text string)

	// OnComplete is called exactly once when the full text is visible.
	OnComplete func()
}

// Revealer starts typewriter reveals.
type Revealer interface {
	Start(text string, pacing domain.Pacing, hooks RevealHooks) Reveal
}

// Reveal is one cancelable typewriter activation.
type Reveal interface {
	// Text returns the currently visible text.
	Text() string

	// State returns the reveal lifecycle state.
	State() domain.RevealState

	// Skip jumps straight to the full text and completes. Idempotent.
	Skip()

	// Cancel stops any pending step without completing.
	Cancel()

	// Done is closed once the reveal completes.
	Done() <-chan struct{}

	// Skipped reports whether the reveal was completed by Skip.
	Skipped() bool
}
