// Package easing provides the time-remapping curves that shape transitions.
//
// Each curve maps linear progress t in [0, 1] to eased progress. Families
// come in In, Out and InOut variants: quadratic, cubic, sin, circle,
// polynomial, exponential, back, bounce and elastic. The With builders
// take custom constants (overshoot, amplitude, period, exponent).
//
// [NewCubicBezier] builds CSS-style curves and rejects control points whose
// x coordinate leaves [0, 1]. [KeyFrames] composes a curve from pinned
// values, and [ByName] resolves the kebab-case names used in settings files.
package easing
