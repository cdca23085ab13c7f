package easing

import (
	"math"

	"github.com/go-drift/chartmotion/pkg/errors"
)

const (
	newtonIterations         = 4
	newtonMinSlope           = 0.001
	subdivisionPrecision     = 0.0000001
	subdivisionMaxIterations = 10
	splineTableSize          = 11
	sampleStepSize           = 1.0 / (splineTableSize - 1)
)

// NewCubicBezier returns a cubic-bezier easing function matching CSS
// cubic-bezier(). The curve starts at (0,0), ends at (1,1) and is shaped by
// the control points (x1,y1) and (x2,y2). The x coordinates must lie in
// [0, 1] so the curve stays a function of time; y may overshoot.
//
// When x1 == y1 and x2 == y2 the curve is the identity and Linear is returned.
func NewCubicBezier(x1, y1, x2, y2 float64) (Func, error) {
	if !inUnit(x1) || !inUnit(x2) {
		return nil, errors.New("easing.NewCubicBezier", errors.KindInvalidArgument,
			"control point x values must be in [0, 1], got x1=%v x2=%v", x1, x2)
	}
	if x1 == y1 && x2 == y2 {
		return Linear, nil
	}

	var samples [splineTableSize]float64
	for i := range samples {
		samples[i] = calcBezier(float64(i)*sampleStepSize, x1, x2)
	}

	tForX := func(x float64) float64 {
		intervalStart := 0.0
		current := 1
		last := splineTableSize - 1
		for ; current != last && samples[current] <= x; current++ {
			intervalStart += sampleStepSize
		}
		current--

		dist := (x - samples[current]) / (samples[current+1] - samples[current])
		guess := intervalStart + dist*sampleStepSize

		slope := bezierSlope(guess, x1, x2)
		switch {
		case slope >= newtonMinSlope:
			return newtonRaphson(x, guess, x1, x2)
		case slope == 0:
			return guess
		default:
			return binarySubdivide(x, intervalStart, intervalStart+sampleStepSize, x1, x2)
		}
	}

	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}
		return calcBezier(tForX(t), y1, y2)
	}, nil
}

// MustCubicBezier is like NewCubicBezier but panics on invalid control points.
// Use it for package-level curves with constant arguments.
func MustCubicBezier(x1, y1, x2, y2 float64) Func {
	fn, err := NewCubicBezier(x1, y1, x2, y2)
	if err != nil {
		panic(err)
	}
	return fn
}

// calcBezier evaluates one coordinate of the curve at parameter t, where a1
// and a2 are that coordinate's control values.
func calcBezier(t, a1, a2 float64) float64 {
	return ((coefA(a1, a2)*t+coefB(a1, a2))*t + coefC(a1)) * t
}

// bezierSlope is dx/dt of calcBezier.
func bezierSlope(t, a1, a2 float64) float64 {
	return 3*coefA(a1, a2)*t*t + 2*coefB(a1, a2)*t + coefC(a1)
}

func coefA(a1, a2 float64) float64 { return 1 - 3*a2 + 3*a1 }
func coefB(a1, a2 float64) float64 { return 3*a2 - 6*a1 }
func coefC(a1 float64) float64     { return 3 * a1 }

func newtonRaphson(x, guess, x1, x2 float64) float64 {
	for range newtonIterations {
		slope := bezierSlope(guess, x1, x2)
		if slope == 0 {
			return guess
		}
		guess -= (calcBezier(guess, x1, x2) - x) / slope
	}
	return guess
}

func binarySubdivide(x, lo, hi, x1, x2 float64) float64 {
	var t float64
	for i := 0; i < subdivisionMaxIterations; i++ {
		t = lo + (hi-lo)/2
		diff := calcBezier(t, x1, x2) - x
		if math.Abs(diff) <= subdivisionPrecision {
			break
		}
		if diff > 0 {
			hi = t
		} else {
			lo = t
		}
	}
	return t
}

func inUnit(v float64) bool {
	return v >= 0 && v <= 1
}

func clampUnit(value float64) float64 {
	if value < 0 {
		return 0
	}
	if value > 1 {
		return 1
	}
	return value
}
