package domain

import "time"

// Default pacing for a reveal.
const (
	DefaultBaseDelay        = 25 * time.Millisecond
	DefaultParagraphPause   = 500 * time.Millisecond
	DefaultPunctuationPause = 200 * time.Millisecond

	// DefaultAnswerDelay is the base delay used for answer bodies.
	DefaultAnswerDelay = 20 * time.Millisecond

	// DefaultGreetingDelay is the base delay used for the greeting.
	DefaultGreetingDelay = 130 * time.Millisecond
)

// Pacing configures how fast a reveal progresses.
type Pacing struct {
	// BaseDelay applies to every character without a special pause.
	BaseDelay time.Duration

	// ParagraphPause applies to a newline followed by another newline.
	ParagraphPause time.Duration

	// PunctuationPause applies to . ! ? ; followed by a space.
	PunctuationPause time.Duration
}

// DefaultPacing returns the default reveal pacing.
func DefaultPacing() Pacing {
	return Pacing{
		BaseDelay:        DefaultBaseDelay,
		ParagraphPause:   DefaultParagraphPause,
		PunctuationPause: DefaultPunctuationPause,
	}
}

// WithBaseDelay returns a copy of p with a different base delay.
func (p Pacing) WithBaseDelay(d time.Duration) Pacing {
	p.BaseDelay = d
	return p
}

// Delay returns the pause before revealing current, given the next rune.
// hasNext is false at the end of the text, where nothing matches.
func (p Pacing) Delay(current, next rune, hasNext bool) time.Duration {
	if !hasNext {
		return p.BaseDelay
	}
	switch {
	case current == '\n' && next == '\n':
		return p.ParagraphPause
	case isPausePunctuation(current) && next == ' ':
		return p.PunctuationPause
	default:
		return p.BaseDelay
	}
}

func isPausePunctuation(r rune) bool {
	switch r {
	case '.', '!', '?', ';':
		return true
	default:
		return false
	}
}

// RevealState is the lifecycle of a single reveal.
type RevealState int

const (
	// RevealPending means no character has been revealed yet.
	RevealPending RevealState = iota
	// RevealRevealing means some but not all characters are visible.
	RevealRevealing
	// RevealRevealed means the full text is visible.
	RevealRevealed
)

// String returns the string representation of the state.
func (s RevealState) String() string {
	switch s {
	case RevealPending:
		return "pending"
	case RevealRevealing:
		return "revealing"
	case RevealRevealed:
		return "revealed"
	default:
		return "unknown"
	}
}
