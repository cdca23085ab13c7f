package motion

import "time"

// Clock provides frame time for a canvas. Tests inject a fake clock to
// control animation timing deterministically.
type Clock interface {
	Now() time.Time
}

// SystemClock reads the wall clock. Its readings carry Go's monotonic
// component, so elapsed times are immune to wall clock changes.
type SystemClock struct{}

// Now returns time.Now().
func (SystemClock) Now() time.Time { return time.Now() }
