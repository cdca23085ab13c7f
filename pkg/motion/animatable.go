package motion

import (
	"fmt"
	"slices"
	"time"
)

// Animatable owns a set of named motion properties and tracks whether they
// have settled. Geometries and paint tasks embed it and declare their
// properties with Register at construction.
//
// The zero value is ready to use.
type Animatable struct {
	props             []Property
	settlers          []func(now time.Time) bool
	byName            map[string]Property
	now               time.Time
	hasTime           bool
	valid             bool
	removeOnCompleted bool
	pending           bool
	invalidator       func()
	listeners         []completedListener
	nextListenerID    int
}

type completedListener struct {
	id int
	fn func()
}

func (a *Animatable) register(p Property, settle func(now time.Time) bool) {
	if a.byName == nil {
		a.byName = make(map[string]Property)
	}
	if _, exists := a.byName[p.Name()]; exists {
		panic(fmt.Sprintf("motion: property %q registered twice", p.Name()))
	}
	a.byName[p.Name()] = p
	a.props = append(a.props, p)
	a.settlers = append(a.settlers, settle)
}

// Property returns the property registered under name.
func (a *Animatable) Property(name string) (Property, bool) {
	p, ok := a.byName[name]
	return p, ok
}

// Properties returns the registered properties in declaration order.
func (a *Animatable) Properties() []Property {
	return slices.Clone(a.props)
}

// BeginFrame sets the time properties are evaluated at and marks the
// owner valid. Reads of unfinished properties during the frame clear the
// flag again.
func (a *Animatable) BeginFrame(now time.Time) {
	a.now = now
	a.hasTime = true
	a.valid = true
}

// EndFrame evaluates the properties the frame did not read at the frame
// time, then fires the completion listeners once per transition chain, on
// the first frame in which every registered property is completed. It
// returns whether listeners fired.
func (a *Animatable) EndFrame() bool {
	if a.hasTime {
		for _, settle := range a.settlers {
			if !settle(a.now) {
				a.valid = false
			}
		}
	}
	if !a.valid || !a.pending || !a.IsCompleted() {
		return false
	}
	a.pending = false
	for _, l := range slices.Clone(a.listeners) {
		l.fn()
	}
	return true
}

// CurrentTime returns the time of the last BeginFrame. ok is false before
// the first frame.
func (a *Animatable) CurrentTime() (now time.Time, ok bool) {
	return a.now, a.hasTime
}

// IsValid reports whether every property read since BeginFrame was
// settled. After EndFrame it covers all registered properties.
func (a *Animatable) IsValid() bool { return a.valid }

// Invalidate marks the owner as needing another frame and notifies the
// canvas through the invalidator hook.
func (a *Animatable) Invalidate() {
	a.valid = false
	if a.invalidator != nil {
		a.invalidator()
	}
}

// SetInvalidator installs the hook Invalidate calls, typically the owning
// canvas' Invalidate. Pass nil to detach.
func (a *Animatable) SetInvalidator(fn func()) { a.invalidator = fn }

func (a *Animatable) transitionStarted() {
	a.pending = true
	a.Invalidate()
}

// IsCompleted reports whether all properties have reached their targets.
func (a *Animatable) IsCompleted() bool {
	for _, p := range a.props {
		if !p.IsCompleted() {
			return false
		}
	}
	return true
}

// RemoveOnCompleted reports whether the canvas should drop this object
// once its transitions finish.
func (a *Animatable) RemoveOnCompleted() bool { return a.removeOnCompleted }

// SetRemoveOnCompleted marks the object for removal after its transitions
// finish. The final frame still draws it.
func (a *Animatable) SetRemoveOnCompleted(remove bool) { a.removeOnCompleted = remove }

// OnCompleted registers fn to run when a transition chain finishes. The
// returned function unregisters it.
func (a *Animatable) OnCompleted(fn func()) func() {
	id := a.nextListenerID
	a.nextListenerID++
	a.listeners = append(a.listeners, completedListener{id: id, fn: fn})
	return func() {
		a.listeners = slices.DeleteFunc(a.listeners, func(l completedListener) bool {
			return l.id == id
		})
	}
}

// SetTransition assigns anim to the named properties, or to all of them
// when no names are given. Unknown names panic.
func (a *Animatable) SetTransition(anim *Animation, names ...string) {
	for _, p := range a.selected("SetTransition", names) {
		p.SetAnimation(anim)
	}
}

// RemoveTransition clears the animation of the named properties, or of
// all of them, so later changes apply without interpolation.
func (a *Animatable) RemoveTransition(names ...string) {
	for _, p := range a.selected("RemoveTransition", names) {
		p.SetAnimation(nil)
	}
}

// CompleteTransitions finishes the named transitions, or all of them,
// immediately. Subsequent reads return the target values.
func (a *Animatable) CompleteTransitions(names ...string) {
	for _, p := range a.selected("CompleteTransitions", names) {
		p.Complete()
	}
}

func (a *Animatable) selected(op string, names []string) []Property {
	if len(names) == 0 {
		return a.props
	}
	out := make([]Property, 0, len(names))
	for _, name := range names {
		p, ok := a.byName[name]
		if !ok {
			panic(fmt.Sprintf("motion: %s: unknown property %q", op, name))
		}
		out = append(out, p)
	}
	return out
}
