package motion

import (
	"fmt"
	"time"

	"github.com/go-drift/chartmotion/pkg/errors"
)

// Property is the untyped view of a MotionProperty. Visual states and
// transition helpers work through it without knowing the value type.
type Property interface {
	Name() string
	IsCompleted() bool
	// Complete ends the transition; the property reads as its target.
	Complete()
	Animation() *Animation
	SetAnimation(anim *Animation)
	// Value returns the target value, the one the property is moving to.
	Value() any
	// Accepts reports whether v has the property's value type.
	Accepts(v any) bool
	// SetValue starts a transition to v. It fails when v is not of the
	// property's value type.
	SetValue(v any) error
}

// MotionProperty is a value of type T that transitions between a from and
// a to value when set. It belongs to exactly one Animatable.
type MotionProperty[T any] struct {
	owner        *Animatable
	name         string
	lerp         Lerp[T]
	from         T
	to           T
	start        time.Time
	requiresInit bool
	completed    bool
	animation    *Animation
}

var _ Property = (*MotionProperty[float64])(nil)

// Register declares a property named name on owner with an initial value.
// The property starts completed at initial. Registering a name twice on
// the same owner panics.
func Register[T any](owner *Animatable, name string, initial T, lerp Lerp[T]) *MotionProperty[T] {
	p := &MotionProperty[T]{
		owner:     owner,
		name:      name,
		lerp:      lerp,
		from:      initial,
		to:        initial,
		completed: true,
	}
	owner.register(p, p.settle)
	return p
}

// Name returns the registered property name.
func (p *MotionProperty[T]) Name() string { return p.name }

// From returns the value the current transition started at.
func (p *MotionProperty[T]) From() T { return p.from }

// To returns the value the current transition is moving to.
func (p *MotionProperty[T]) To() T { return p.to }

// IsCompleted reports whether the transition has reached its target.
func (p *MotionProperty[T]) IsCompleted() bool { return p.completed }

// Complete ends the transition immediately.
func (p *MotionProperty[T]) Complete() {
	p.completed = true
	p.requiresInit = false
}

// Animation returns the animation used by future transitions.
func (p *MotionProperty[T]) Animation() *Animation { return p.animation }

// SetAnimation sets the animation for future transitions. A transition in
// progress keeps its start time but is evaluated with the new animation.
func (p *MotionProperty[T]) SetAnimation(anim *Animation) { p.animation = anim }

func (p *MotionProperty[T]) animated() bool {
	return p.animation != nil && p.animation.Easing != nil && p.animation.Duration > 0 && p.lerp != nil
}

// Get returns the value at the owner's current time. Reading a property
// that is still moving marks the owner invalid.
func (p *MotionProperty[T]) Get() T {
	now, ok := p.owner.CurrentTime()
	if !ok && !p.completed && p.animated() && p.requiresInit {
		p.owner.valid = false
		return p.from
	}
	v := p.Movement(now)
	if !p.completed {
		p.owner.valid = false
	}
	return v
}

// Set starts a transition from the current value to v. The transition
// starts at the owner's current time, or at the first frame that reads the
// property when the owner has not been drawn yet.
func (p *MotionProperty[T]) Set(v T) {
	p.from = p.peek()
	p.to = v
	if now, ok := p.owner.CurrentTime(); ok {
		p.start = now
		p.requiresInit = false
	} else {
		p.requiresInit = true
	}
	p.completed = false
	p.owner.transitionStarted()
}

// Movement evaluates the transition at now. Times before the start yield
// the from value; once the last cycle ends the property completes and
// yields the to value from then on.
func (p *MotionProperty[T]) Movement(now time.Time) T {
	if p.completed {
		return p.to
	}
	if !p.animated() {
		p.completed = true
		return p.to
	}
	if p.requiresInit {
		p.start = now
		p.requiresInit = false
	}
	progress, done := p.animation.progress(now.Sub(p.start))
	if done {
		p.completed = true
		return p.to
	}
	return p.lerp(p.from, p.to, progress)
}

// settle advances an unread transition to now and reports whether it is
// completed.
func (p *MotionProperty[T]) settle(now time.Time) bool {
	if !p.completed {
		p.Movement(now)
	}
	return p.completed
}

// peek evaluates the current value without changing completion state.
func (p *MotionProperty[T]) peek() T {
	if p.completed || !p.animated() {
		return p.to
	}
	now, ok := p.owner.CurrentTime()
	if !ok || p.requiresInit {
		return p.from
	}
	progress, done := p.animation.progress(now.Sub(p.start))
	if done {
		return p.to
	}
	return p.lerp(p.from, p.to, progress)
}

func (p *MotionProperty[T]) Value() any { return p.to }

func (p *MotionProperty[T]) Accepts(v any) bool {
	_, ok := v.(T)
	return ok
}

func (p *MotionProperty[T]) SetValue(v any) error {
	typed, ok := v.(T)
	if !ok {
		var zero T
		return errors.New("motion.SetValue", errors.KindState,
			"property %q holds %T, cannot set %T", p.name, zero, v)
	}
	p.Set(typed)
	return nil
}

func (p *MotionProperty[T]) String() string {
	return fmt.Sprintf("%s(%v -> %v, completed=%t)", p.name, p.from, p.to, p.completed)
}
