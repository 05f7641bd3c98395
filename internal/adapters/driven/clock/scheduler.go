// Package clock provides the wall-clock Scheduler used outside tests.
package clock

import (
	"time"

	"github.com/custodia-labs/folio/internal/core/ports/driven"
)

// Ensure Scheduler implements the interface.
var _ driven.Scheduler = Scheduler{}

// Scheduler runs callbacks with time.AfterFunc.
type Scheduler struct{}

// New returns a wall-clock scheduler.
func New() Scheduler {
	return Scheduler{}
}

// AfterFunc calls f on its own goroutine once d has elapsed.
func (Scheduler) AfterFunc(d time.Duration, f func()) driven.Timer {
	return time.AfterFunc(d, f)
}
