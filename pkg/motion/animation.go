package motion

import (
	"math"
	"time"

	"github.com/go-drift/chartmotion/pkg/easing"
)

// RepeatForever makes an Animation cycle until its property is set again
// or completed explicitly.
const RepeatForever = math.MaxInt

// Animation describes how a property moves: how long one cycle takes,
// how many cycles run and which easing shapes each cycle.
//
// Animations are shared by pointer across many properties and must not be
// mutated once in use; derive variants with WithRepeat or a new literal.
type Animation struct {
	Duration time.Duration
	// Repeat is the number of cycles; values below 1 mean one cycle.
	Repeat int
	// Easing maps linear progress to eased progress. Nil disables
	// animation and the property jumps to its target.
	Easing easing.Func
}

// NewAnimation returns a single-cycle animation.
func NewAnimation(ease easing.Func, duration time.Duration) *Animation {
	return &Animation{Duration: duration, Repeat: 1, Easing: ease}
}

// WithRepeat returns a copy of a that runs n cycles.
func (a *Animation) WithRepeat(n int) *Animation {
	cp := *a
	cp.Repeat = n
	return &cp
}

func (a *Animation) cycles() int {
	if a.Repeat < 1 {
		return 1
	}
	return a.Repeat
}

// progress returns the eased progress after elapsed time and whether the
// final cycle has finished. Elapsed times before the start clamp to 0.
func (a *Animation) progress(elapsed time.Duration) (float64, bool) {
	if a.Duration <= 0 || a.Easing == nil {
		return 1, true
	}
	if elapsed <= 0 {
		return a.Easing(0), false
	}
	cycle := elapsed / a.Duration
	if cycles := a.cycles(); cycles != RepeatForever && int64(cycle) >= int64(cycles) {
		return 1, true
	}
	linear := float64(elapsed%a.Duration) / float64(a.Duration)
	return a.Easing(linear), false
}
