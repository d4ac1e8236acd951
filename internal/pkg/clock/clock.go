// Package clock abstracts wall time so services and tests share one source
// of "now".
package clock

import "time"

type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now().UTC() }

// System returns the wall clock, normalized to UTC.
func System() Clock { return systemClock{} }

// Fixed always reports the same instant.
type Fixed struct {
	Instant time.Time
}

func (f Fixed) Now() time.Time { return f.Instant.UTC() }

// At is shorthand for a Fixed clock pinned to t.
func At(t time.Time) Clock { return Fixed{Instant: t} }
