// Package motion is the time-driven transition engine behind chart
// geometries and paints.
//
// An [Animatable] owns named [MotionProperty] values. Setting a property
// records where it starts from, where it is going and when; every read
// during a frame evaluates the transition at the owner's current time:
//
//	progress = clamp((now - start) / duration, 0, 1)
//	value    = lerp(from, to, easing(progress))
//
// A property that is still moving marks its owner invalid when read, which
// is how the canvas learns that another frame is needed.
//
// Nothing in this package is safe for concurrent use. Properties are
// mutated and read on the thread that drives the canvas.
package motion
