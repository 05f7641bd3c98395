package services

import (
	"sync"

	"github.com/custodia-labs/folio/internal/core/domain"
	"github.com/custodia-labs/folio/internal/core/ports/driven"
	"github.com/custodia-labs/folio/internal/core/ports/driving"
)

// Ensure Typewriter and Reveal implement the interfaces.
var (
	_ driving.Revealer = (*Typewriter)(nil)
	_ driving.Reveal   = (*Reveal)(nil)
)

// Typewriter starts paced character-by-character reveals.
type Typewriter struct {
	scheduler driven.Scheduler
}

// NewTypewriter creates a typewriter using scheduler for every step.
func NewTypewriter(scheduler driven.Scheduler) *Typewriter {
	return &Typewriter{scheduler: scheduler}
}

// Start begins revealing text. Empty text completes before Start returns.
func (t *Typewriter) Start(text string, pacing domain.Pacing, hooks driving.RevealHooks) driving.Reveal {
	return t.start(text, pacing, hooks)
}

func (t *Typewriter) start(text string, pacing domain.Pacing, hooks driving.RevealHooks) *Reveal {
	r := &Reveal{
		scheduler: t.scheduler,
		runes:     []rune(text),
		pacing:    pacing,
		hooks:     hooks,
		done:      make(chan struct{}),
	}

	if len(r.runes) == 0 {
		r.completed = true
		close(r.done)
		if hooks.OnComplete != nil {
			hooks.OnComplete()
		}
		return r
	}

	r.mu.Lock()
	r.scheduleLocked()
	r.mu.Unlock()
	return r
}

// Reveal is one typewriter activation.
//
// At most one step is pending at a time. Completion happens exactly once,
// either when the last rune is revealed or on Skip. Cancel is terminal:
// no step, hook or completion follows it. delivered is guarded by notifyMu.
type Reveal struct {
	mu        sync.Mutex
	notifyMu  sync.Mutex
	delivered int
	scheduler driven.Scheduler
	runes     []rune
	pacing    domain.Pacing
	hooks     driving.RevealHooks
	index     int
	timer     driven.Timer
	completed bool
	cancelled bool
	skipped   bool
	done      chan struct{}
}

// scheduleLocked arms the timer for the rune at r.index. Caller must hold r.mu.
func (r *Reveal) scheduleLocked() {
	var next rune
	hasNext := r.index+1 < len(r.runes)
	if hasNext {
		next = r.runes[r.index+1]
	}
	delay := r.pacing.Delay(r.runes[r.index], next, hasNext)
	r.timer = r.scheduler.AfterFunc(delay, r.step)
}

// step reveals one rune and arms the next step.
func (r *Reveal) step() {
	r.mu.Lock()
	if r.completed || r.cancelled {
		r.mu.Unlock()
		return
	}

	r.timer = nil
	r.index++
	finished := r.index >= len(r.runes)
	if finished {
		r.completed = true
		close(r.done)
	} else {
		r.scheduleLocked()
	}
	r.mu.Unlock()

	r.notify(finished)
}

// notify runs the hooks for the latest visible text. Deliveries are
// serialised and OnStep only sees text longer than it saw before, so a step
// that loses a race with a later step or Skip reports nothing.
func (r *Reveal) notify(finished bool) {
	r.notifyMu.Lock()
	defer r.notifyMu.Unlock()

	r.mu.Lock()
	if r.cancelled {
		r.mu.Unlock()
		return
	}
	index := r.index
	text := string(r.runes[:index])
	hooks := r.hooks
	r.mu.Unlock()

	if index > r.delivered {
		r.delivered = index
		if hooks.OnStep != nil {
			hooks.OnStep(text)
		}
	}
	if finished && hooks.OnComplete != nil {
		hooks.OnComplete()
	}
}

// Skip reveals the full text immediately and completes.
// Repeated calls, calls after completion and calls after Cancel do nothing.
func (r *Reveal) Skip() {
	r.mu.Lock()
	if r.completed || r.cancelled {
		r.mu.Unlock()
		return
	}

	r.stopLocked()
	r.index = len(r.runes)
	r.completed = true
	r.skipped = true
	close(r.done)
	r.mu.Unlock()

	r.notify(true)
}

// Cancel stops the pending step. The reveal never completes afterwards.
func (r *Reveal) Cancel() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.completed || r.cancelled {
		return
	}
	r.stopLocked()
	r.cancelled = true
}

func (r *Reveal) stopLocked() {
	if r.timer != nil {
		r.timer.Stop()
		r.timer = nil
	}
}

// Text returns the visible text.
func (r *Reveal) Text() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return string(r.runes[:r.index])
}

// FullText returns the complete text being revealed.
func (r *Reveal) FullText() string {
	return string(r.runes)
}

// State returns the reveal lifecycle state.
func (r *Reveal) State() domain.RevealState {
	r.mu.Lock()
	defer r.mu.Unlock()
	switch {
	case r.completed:
		return domain.RevealRevealed
	case r.index == 0:
		return domain.RevealPending
	default:
		return domain.RevealRevealing
	}
}

// Progress returns the number of visible runes and the total.
func (r *Reveal) Progress() (revealed, total int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.index, len(r.runes)
}

// Done is closed when the reveal completes.
func (r *Reveal) Done() <-chan struct{} {
	return r.done
}

// Skipped reports whether Skip completed the reveal.
func (r *Reveal) Skipped() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.skipped
}

// Cancelled reports whether the reveal was cancelled before completing.
func (r *Reveal) Cancelled() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.cancelled
}
