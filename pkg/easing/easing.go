package easing

import "math"

// Func maps normalized time t in [0, 1] to eased progress. Every function in
// this package returns exactly 0 at t=0 and 1 at t=1; back and elastic
// curves may leave [0, 1] in between.
type Func func(t float64) float64

const (
	halfPi = math.Pi / 2
	tau    = 2 * math.Pi

	// DefaultOvershoot is the back curve overshoot (about 10%).
	DefaultOvershoot = 1.70158
	// DefaultAmplitude is the elastic curve amplitude.
	DefaultAmplitude = 1.0
	// DefaultPeriod is the elastic curve period.
	DefaultPeriod = 0.3
	// DefaultExponent is the exponential curve exponent.
	DefaultExponent = 10.0
	// DefaultPower is the polynomial curve exponent.
	DefaultPower = 3.0
)

// Linear returns linear progress (no easing).
func Linear(t float64) float64 {
	return t
}

// QuadraticIn accelerates from zero velocity.
func QuadraticIn(t float64) float64 {
	return t * t
}

// QuadraticOut decelerates to zero velocity.
func QuadraticOut(t float64) float64 {
	return t * (2 - t)
}

// QuadraticInOut accelerates until halfway, then decelerates.
func QuadraticInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t / 2
	}
	t--
	return (t*(2-t) + 1) / 2
}

// CubicIn accelerates from zero velocity.
func CubicIn(t float64) float64 {
	return t * t * t
}

// CubicOut decelerates to zero velocity.
func CubicOut(t float64) float64 {
	t--
	return t*t*t + 1
}

// CubicInOut accelerates until halfway, then decelerates.
func CubicInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return t * t * t / 2
	}
	t -= 2
	return (t*t*t + 2) / 2
}

// SinIn follows the first quarter of a cosine wave.
func SinIn(t float64) float64 {
	if t >= 1 {
		return 1
	}
	return 1 - math.Cos(t*halfPi)
}

// SinOut follows the first quarter of a sine wave.
func SinOut(t float64) float64 {
	return math.Sin(t * halfPi)
}

// SinInOut follows half a cosine wave.
func SinInOut(t float64) float64 {
	return (1 - math.Cos(math.Pi*t)) / 2
}

// CircleIn follows a quarter circle, slow at the start.
func CircleIn(t float64) float64 {
	return 1 - math.Sqrt(1-t*t)
}

// CircleOut follows a quarter circle, slow at the end.
func CircleOut(t float64) float64 {
	t--
	return math.Sqrt(1 - t*t)
}

// CircleInOut joins CircleIn and CircleOut at the midpoint.
func CircleInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return (1 - math.Sqrt(1-t*t)) / 2
	}
	t -= 2
	return (math.Sqrt(1-t*t) + 1) / 2
}

// Polynomial curves raise t to DefaultPower.
var (
	PolynomialIn    = PolynomialInWith(DefaultPower)
	PolynomialOut   = PolynomialOutWith(DefaultPower)
	PolynomialInOut = PolynomialInOutWith(DefaultPower)
)

// PolynomialInWith returns t^exponent. Exponents <= 0 give Linear.
func PolynomialInWith(exponent float64) Func {
	if exponent <= 0 {
		return Linear
	}
	return func(t float64) float64 {
		return math.Pow(t, exponent)
	}
}

// PolynomialOutWith returns the reverse of PolynomialInWith.
func PolynomialOutWith(exponent float64) Func {
	if exponent <= 0 {
		return Linear
	}
	return func(t float64) float64 {
		return 1 - math.Pow(1-t, exponent)
	}
}

// PolynomialInOutWith joins the in and out polynomial halves.
func PolynomialInOutWith(exponent float64) Func {
	if exponent <= 0 {
		return Linear
	}
	return func(t float64) float64 {
		t *= 2
		if t <= 1 {
			return math.Pow(t, exponent) / 2
		}
		return (2 - math.Pow(2-t, exponent)) / 2
	}
}

// Exponential curves with DefaultExponent.
var (
	ExponentialIn    = ExponentialInWith(DefaultExponent)
	ExponentialOut   = ExponentialOutWith(DefaultExponent)
	ExponentialInOut = ExponentialInOutWith(DefaultExponent)
)

// tpmt is 2^(-exponent*x), rescaled so tpmt(0) == 1 and tpmt(1) == 0.
func tpmt(exponent, x float64) float64 {
	floor := math.Exp2(-exponent)
	return (math.Exp2(-exponent*x) - floor) / (1 - floor)
}

// ExponentialInWith returns an exponential ease-in with the given exponent.
// The curve flattens toward Linear as exponent approaches 0, and an
// exponent of exactly 0 gives Linear.
func ExponentialInWith(exponent float64) Func {
	if exponent == 0 {
		return Linear
	}
	return func(t float64) float64 {
		return tpmt(exponent, 1-t)
	}
}

// ExponentialOutWith returns an exponential ease-out with the given exponent.
func ExponentialOutWith(exponent float64) Func {
	if exponent == 0 {
		return Linear
	}
	return func(t float64) float64 {
		return 1 - tpmt(exponent, t)
	}
}

// ExponentialInOutWith joins the exponential halves at the midpoint.
func ExponentialInOutWith(exponent float64) Func {
	if exponent == 0 {
		return Linear
	}
	return func(t float64) float64 {
		t *= 2
		if t <= 1 {
			return tpmt(exponent, 1-t) / 2
		}
		return (2 - tpmt(exponent, t-1)) / 2
	}
}

// Back curves overshoot by DefaultOvershoot.
var (
	BackIn    = BackInWith(DefaultOvershoot)
	BackOut   = BackOutWith(DefaultOvershoot)
	BackInOut = BackInOutWith(DefaultOvershoot)
)

// BackInWith pulls back before moving toward the target.
func BackInWith(overshoot float64) Func {
	return func(t float64) float64 {
		return t * t * ((overshoot+1)*t - overshoot)
	}
}

// BackOutWith overshoots the target before settling.
func BackOutWith(overshoot float64) Func {
	return func(t float64) float64 {
		t--
		return t*t*((overshoot+1)*t+overshoot) + 1
	}
}

// BackInOutWith pulls back at the start and overshoots at the end.
func BackInOutWith(overshoot float64) Func {
	return func(t float64) float64 {
		t *= 2
		if t < 1 {
			return t * t * ((overshoot+1)*t - overshoot) / 2
		}
		t -= 2
		return (t*t*((overshoot+1)*t+overshoot) + 2) / 2
	}
}

const (
	b1 = 4.0 / 11
	b2 = 6.0 / 11
	b3 = 8.0 / 11
	b4 = 3.0 / 4
	b5 = 9.0 / 11
	b6 = 10.0 / 11
	b7 = 15.0 / 16
	b8 = 21.0 / 22
	b9 = 63.0 / 64
	b0 = 1 / b1 / b1
)

// BounceOut bounces against the target like a dropped ball.
func BounceOut(t float64) float64 {
	switch {
	case t < b1:
		return b0 * t * t
	case t < b3:
		t -= b2
		return b0*t*t + b4
	case t < b6:
		t -= b5
		return b0*t*t + b7
	default:
		t -= b8
		return b0*t*t + b9
	}
}

// BounceIn is BounceOut mirrored in time.
func BounceIn(t float64) float64 {
	return 1 - BounceOut(1-t)
}

// BounceInOut bounces at both ends.
func BounceInOut(t float64) float64 {
	t *= 2
	if t <= 1 {
		return (1 - BounceOut(1-t)) / 2
	}
	return (BounceOut(t-1) + 1) / 2
}

// Elastic curves with DefaultAmplitude and DefaultPeriod.
var (
	ElasticIn    = ElasticInWith(DefaultAmplitude, DefaultPeriod)
	ElasticOut   = ElasticOutWith(DefaultAmplitude, DefaultPeriod)
	ElasticInOut = ElasticInOutWith(DefaultAmplitude, DefaultPeriod)
)

// elasticParams normalizes amplitude (at least 1) and period (positive,
// DefaultPeriod otherwise) and returns the phase shift s and the period
// measured in radians-per-unit.
func elasticParams(amplitude, period float64) (a, s, p float64) {
	a = math.Max(1, amplitude)
	if !(period > 0) {
		period = DefaultPeriod
	}
	p = period / tau
	s = math.Asin(1/a) * p
	return a, s, p
}

// ElasticInWith oscillates with growing amplitude before reaching the target.
func ElasticInWith(amplitude, period float64) Func {
	a, s, p := elasticParams(amplitude, period)
	return func(t float64) float64 {
		t--
		return a * tpmt(DefaultExponent, -t) * math.Sin((s-t)/p)
	}
}

// ElasticOutWith overshoots and oscillates around the target.
func ElasticOutWith(amplitude, period float64) Func {
	a, s, p := elasticParams(amplitude, period)
	return func(t float64) float64 {
		return 1 - a*tpmt(DefaultExponent, t)*math.Sin((t+s)/p)
	}
}

// ElasticInOutWith oscillates at both ends.
func ElasticInOutWith(amplitude, period float64) Func {
	a, s, p := elasticParams(amplitude, period)
	return func(t float64) float64 {
		t = t*2 - 1
		if t < 0 {
			return a * tpmt(DefaultExponent, -t) * math.Sin((s-t)/p) / 2
		}
		return (2 - a*tpmt(DefaultExponent, t)*math.Sin((s+t)/p)) / 2
	}
}

// CSS named curves.
var (
	// Ease is CSS ease: cubic-bezier(0.25, 0.1, 0.25, 1).
	Ease = MustCubicBezier(0.25, 0.1, 0.25, 1.0)
	// EaseIn is CSS ease-in: cubic-bezier(0.42, 0, 1, 1).
	EaseIn = MustCubicBezier(0.42, 0.0, 1.0, 1.0)
	// EaseOut is CSS ease-out: cubic-bezier(0, 0, 0.58, 1).
	EaseOut = MustCubicBezier(0.0, 0.0, 0.58, 1.0)
	// EaseInOut is CSS ease-in-out: cubic-bezier(0.42, 0, 0.58, 1).
	EaseInOut = MustCubicBezier(0.42, 0.0, 0.58, 1.0)
)
