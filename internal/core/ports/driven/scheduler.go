package driven

import "time"

// Scheduler runs callbacks after a delay.
// Reveals use it for each character step so tests can substitute a fake clock.
type Scheduler interface {
	// AfterFunc calls f once d has elapsed, on its own goroutine.
	AfterFunc(d time.Duration, f func()) Timer
}

// Timer is a pending scheduled callback.
type Timer interface {
	// Stop prevents the callback from firing.
	// It returns false if the callback already fired or was stopped.
	Stop() bool
}
