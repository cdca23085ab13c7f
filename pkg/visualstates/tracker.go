package visualstates

import (
	"slices"

	"github.com/go-drift/chartmotion/pkg/motion"
)

// Target is an object visual states can be applied to. Geometries satisfy
// it by embedding motion.Animatable and Tracker.
type Target interface {
	Property(name string) (motion.Property, bool)
	StateTracker() *Tracker
}

// Tracker records the states active on one object, in the order they were
// applied, and the values their properties had before any state touched
// them. Each active state keeps the setters it was applied with, so a
// later change to the dictionary does not affect clearing it. The zero
// value is ready to use.
type Tracker struct {
	active    []appliedState
	originals map[string]any
}

type appliedState struct {
	name    string
	setters []Setter
}

// StateTracker returns t, letting embedders satisfy Target.
func (t *Tracker) StateTracker() *Tracker { return t }

// ActiveStates returns the applied states, oldest first.
func (t *Tracker) ActiveStates() []string {
	names := make([]string, len(t.active))
	for i, a := range t.active {
		names[i] = a.name
	}
	return names
}

// IsActive reports whether state is currently applied.
func (t *Tracker) IsActive(state string) bool {
	return t.index(state) >= 0
}

func (t *Tracker) index(state string) int {
	return slices.IndexFunc(t.active, func(a appliedState) bool { return a.name == state })
}

// Original returns the captured pre-state value of property.
func (t *Tracker) Original(property string) (any, bool) {
	v, ok := t.originals[property]
	return v, ok
}

func (t *Tracker) push(state string, setters []Setter) {
	t.remove(state)
	t.active = append(t.active, appliedState{name: state, setters: setters})
}

// remove drops state and returns the setters it was applied with.
func (t *Tracker) remove(state string) ([]Setter, bool) {
	i := t.index(state)
	if i < 0 {
		return nil, false
	}
	setters := t.active[i].setters
	t.active = slices.Delete(t.active, i, i+1)
	return setters, true
}

// capture stores value as the original of property unless one is held.
func (t *Tracker) capture(property string, value any) {
	if t.originals == nil {
		t.originals = make(map[string]any)
	}
	if _, ok := t.originals[property]; !ok {
		t.originals[property] = value
	}
}

func (t *Tracker) reset() {
	t.active = t.active[:0]
	clear(t.originals)
}
