package visualstates

import (
	"slices"

	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/logging"
	"github.com/go-drift/chartmotion/pkg/motion"
)

// Setter assigns Value to the property named Property. Value must have
// the property's exact value type.
type Setter struct {
	Property string
	Value    any
}

// Dictionary maps state names to the setters they apply.
type Dictionary struct {
	states map[string][]Setter
}

// NewDictionary returns an empty dictionary.
func NewDictionary() *Dictionary {
	return &Dictionary{states: make(map[string][]Setter)}
}

// Add defines state, replacing any previous definition.
func (d *Dictionary) Add(state string, setters ...Setter) {
	d.states[state] = slices.Clone(setters)
}

// Remove deletes the definition of state. Targets that still have the
// state applied keep its values until it is cleared.
func (d *Dictionary) Remove(state string) {
	delete(d.states, state)
}

// Has reports whether state is defined.
func (d *Dictionary) Has(state string) bool {
	_, ok := d.states[state]
	return ok
}

// States returns the defined state names in sorted order.
func (d *Dictionary) States() []string {
	names := make([]string, 0, len(d.states))
	for name := range d.states {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// SetState applies state to target. Each property's value before its
// first state change is captured so it can be restored later. Applying an
// already active state re-applies it as the most recent one. Unknown
// states are ignored. A state naming a missing property or holding a value
// of the wrong type fails before any property changes.
func (d *Dictionary) SetState(state string, target Target) error {
	const op = "visualstates.SetState"
	setters, ok := d.states[state]
	if !ok {
		return nil
	}
	props, err := resolve(op, state, setters, target)
	if err != nil {
		return err
	}
	for i, s := range setters {
		if !props[i].Accepts(s.Value) {
			return errors.New(op, errors.KindState, "state %q: property %q cannot hold %T", state, s.Property, s.Value)
		}
	}

	tracker := target.StateTracker()
	for i, s := range setters {
		tracker.capture(s.Property, props[i].Value())
		if err := props[i].SetValue(s.Value); err != nil {
			return errors.Wrap(op, errors.KindState, err)
		}
	}
	tracker.push(state, setters)
	logging.Logger().Debug("visual state applied", "state", state, "active", len(tracker.active))
	return nil
}

// ClearState removes state from target. Every property the state set goes
// back to the value of the most recently applied state that still sets it,
// or to its captured original when no active state does. The setters used
// are the ones the state was applied with, even if the dictionary has
// since redefined or removed it. Clearing a state that is not active is a
// no-op.
func (d *Dictionary) ClearState(state string, target Target) error {
	const op = "visualstates.ClearState"
	tracker := target.StateTracker()
	setters, ok := tracker.remove(state)
	if !ok {
		return nil
	}
	props, err := resolve(op, state, setters, target)
	if err != nil {
		return err
	}

	for i, s := range setters {
		value, fromState := lastActiveValue(tracker, s.Property)
		if !fromState {
			original, captured := tracker.originals[s.Property]
			if !captured {
				continue
			}
			value = original
			delete(tracker.originals, s.Property)
		}
		if err := props[i].SetValue(value); err != nil {
			return errors.Wrap(op, errors.KindState, err)
		}
	}
	logging.Logger().Debug("visual state cleared", "state", state, "active", len(tracker.active))
	return nil
}

// ClearStates restores every captured original on target and forgets all
// active states.
func (d *Dictionary) ClearStates(target Target) error {
	const op = "visualstates.ClearStates"
	tracker := target.StateTracker()
	names := make([]string, 0, len(tracker.originals))
	for name := range tracker.originals {
		names = append(names, name)
	}
	slices.Sort(names)

	var errs []error
	for _, name := range names {
		p, ok := target.Property(name)
		if !ok {
			errs = append(errs, errors.New(op, errors.KindState, "unknown property %q", name))
			continue
		}
		if err := p.SetValue(tracker.originals[name]); err != nil {
			errs = append(errs, errors.Wrap(op, errors.KindState, err))
		}
	}
	tracker.reset()
	return errors.Join(errs...)
}

// lastActiveValue walks the active states from most recent to oldest and
// returns the first value set for property.
func lastActiveValue(tracker *Tracker, property string) (any, bool) {
	for i := len(tracker.active) - 1; i >= 0; i-- {
		for _, s := range tracker.active[i].setters {
			if s.Property == property {
				return s.Value, true
			}
		}
	}
	return nil, false
}

func resolve(op, state string, setters []Setter, target Target) ([]motion.Property, error) {
	props := make([]motion.Property, len(setters))
	for i, s := range setters {
		p, ok := target.Property(s.Property)
		if !ok {
			return nil, errors.New(op, errors.KindState, "state %q sets unknown property %q", state, s.Property)
		}
		props[i] = p
	}
	return props, nil
}
