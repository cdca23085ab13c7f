// Package visualstates applies named sets of property values, such as
// "Hover" or "Selected", to animatable objects and removes them again.
//
// States stack: each application pushes the state onto the target's
// Tracker and captures the original value of every property it touches
// the first time that property is changed. Clearing a state hands each
// property back to the most recently applied state that still sets it, or
// to the captured original when none does.
package visualstates
