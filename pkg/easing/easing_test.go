package easing

import (
	"math"
	"testing"

	"github.com/go-drift/chartmotion/pkg/errors"
)

const tolerance = 1e-9

func TestEndpoints(t *testing.T) {
	for _, name := range Names() {
		fn, err := ByName(name)
		if err != nil {
			t.Fatalf("ByName(%q) error: %v", name, err)
		}
		if got := fn(0); math.Abs(got) > tolerance {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > tolerance {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestCustomConstantsKeepEndpoints(t *testing.T) {
	curves := map[string]Func{
		"back-in(3)":          BackInWith(3),
		"back-out(0.5)":       BackOutWith(0.5),
		"back-in-out(2)":      BackInOutWith(2),
		"elastic-in(2,0.5)":   ElasticInWith(2, 0.5),
		"elastic-out(1,0.1)":  ElasticOutWith(1, 0.1),
		"elastic-in-out(3,1)": ElasticInOutWith(3, 1),
		"exponential-in(4)":   ExponentialInWith(4),
		"exponential-out(20)": ExponentialOutWith(20),
		"polynomial-in(5)":    PolynomialInWith(5),
		"polynomial-in-out(2)": PolynomialInOutWith(2),
	}
	for name, fn := range curves {
		if got := fn(0); math.Abs(got) > tolerance {
			t.Errorf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > tolerance {
			t.Errorf("%s(1) = %v, want 1", name, got)
		}
	}
}

func TestDegenerateConstants(t *testing.T) {
	curves := map[string]Func{
		"exponential-in(0)":     ExponentialInWith(0),
		"exponential-out(0)":    ExponentialOutWith(0),
		"exponential-in-out(0)": ExponentialInOutWith(0),
		"polynomial-in(0)":      PolynomialInWith(0),
		"polynomial-out(-1)":    PolynomialOutWith(-1),
		"polynomial-in-out(0)":  PolynomialInOutWith(0),
	}
	for name, fn := range curves {
		for _, x := range []float64{0, 0.25, 0.5, 1} {
			if got := fn(x); math.Abs(got-x) > tolerance {
				t.Errorf("%s(%v) = %v, want %v (linear)", name, x, got, x)
			}
		}
	}

	elastic := map[string][2]Func{
		"in":     {ElasticInWith(1, 0), ElasticIn},
		"out":    {ElasticOutWith(1, -2), ElasticOut},
		"in-out": {ElasticInOutWith(1, math.NaN()), ElasticInOut},
	}
	for name, pair := range elastic {
		for _, x := range []float64{0, 0.3, 0.7, 1} {
			got, want := pair[0](x), pair[1](x)
			if math.IsNaN(got) || math.Abs(got-want) > tolerance {
				t.Errorf("elastic-%s with bad period at %v = %v, want %v", name, x, got, want)
			}
		}
	}
}

func TestInOutMidpoints(t *testing.T) {
	tests := []struct {
		name string
		fn   Func
	}{
		{"quadratic", QuadraticInOut},
		{"cubic", CubicInOut},
		{"sin", SinInOut},
		{"circle", CircleInOut},
		{"polynomial", PolynomialInOut},
		{"exponential", ExponentialInOut},
		{"bounce", BounceInOut},
	}
	for _, tt := range tests {
		if got := tt.fn(0.5); math.Abs(got-0.5) > 1e-6 {
			t.Errorf("%s-in-out(0.5) = %v, want 0.5", tt.name, got)
		}
	}
}

func TestBackOvershoots(t *testing.T) {
	if got := BackIn(0.2); got >= 0 {
		t.Errorf("BackIn(0.2) = %v, want negative (pull back)", got)
	}
	if got := BackOut(0.8); got <= 1 {
		t.Errorf("BackOut(0.8) = %v, want > 1 (overshoot)", got)
	}
}

func TestCubicBezierSymmetricControlsIsIdentity(t *testing.T) {
	fn, err := NewCubicBezier(0.5, 0.5, 0.5, 0.5)
	if err != nil {
		t.Fatalf("NewCubicBezier error: %v", err)
	}
	for i := 0; i <= 20; i++ {
		x := float64(i) / 20
		if got := fn(x); got != x {
			t.Errorf("identity bezier(%v) = %v", x, got)
		}
	}
}

func TestCubicBezierRejectsOutOfRange(t *testing.T) {
	tests := []struct {
		x1, y1, x2, y2 float64
	}{
		{1.2, 0, 0.5, 1},
		{0.5, 0, -0.1, 1},
	}
	for _, tt := range tests {
		_, err := NewCubicBezier(tt.x1, tt.y1, tt.x2, tt.y2)
		if err == nil {
			t.Errorf("NewCubicBezier(%v, %v, %v, %v) should fail", tt.x1, tt.y1, tt.x2, tt.y2)
			continue
		}
		if !errors.IsKind(err, errors.KindInvalidArgument) {
			t.Errorf("error kind = %v, want invalid argument", err)
		}
	}
}

func TestCubicBezierAllowsOvershootingY(t *testing.T) {
	fn, err := NewCubicBezier(0.68, -0.55, 0.265, 1.55)
	if err != nil {
		t.Fatalf("NewCubicBezier error: %v", err)
	}
	if fn(0) != 0 || fn(1) != 1 {
		t.Errorf("endpoints = (%v, %v), want (0, 1)", fn(0), fn(1))
	}
}

func TestCubicBezierMatchesReferenceSolve(t *testing.T) {
	curves := [][4]float64{
		{0.25, 0.1, 0.25, 1.0},
		{0.42, 0.0, 1.0, 1.0},
		{0.0, 0.0, 0.58, 1.0},
		{0.4, 0.0, 0.2, 1.0},
		{0.95, 0.05, 0.8, 0.04},
	}
	for _, c := range curves {
		fn := MustCubicBezier(c[0], c[1], c[2], c[3])
		for i := 1; i < 20; i++ {
			x := float64(i) / 20
			want := referenceBezier(c, x)
			if got := fn(x); math.Abs(got-want) > 1e-3 {
				t.Errorf("bezier%v(%v) = %v, want %v", c, x, got, want)
			}
		}
	}
}

// referenceBezier solves x(u) = x by long bisection and returns y(u).
func referenceBezier(c [4]float64, x float64) float64 {
	lo, hi := 0.0, 1.0
	for range 100 {
		mid := (lo + hi) / 2
		if calcBezier(mid, c[0], c[2]) < x {
			lo = mid
		} else {
			hi = mid
		}
	}
	return calcBezier((lo+hi)/2, c[1], c[3])
}

func TestKeyFrames(t *testing.T) {
	fn, err := KeyFrames(
		KeyFrame{Time: 0, Value: 0},
		KeyFrame{Time: 0.5, Value: 0.8},
		KeyFrame{Time: 1, Value: 1},
	)
	if err != nil {
		t.Fatalf("KeyFrames error: %v", err)
	}
	tests := []struct {
		t, want float64
	}{
		{0, 0},
		{0.25, 0.4},
		{0.5, 0.8},
		{0.75, 0.9},
		{1, 1},
	}
	for _, tt := range tests {
		if got := fn(tt.t); math.Abs(got-tt.want) > tolerance {
			t.Errorf("keyframes(%v) = %v, want %v", tt.t, got, tt.want)
		}
	}
}

func TestKeyFramesUsesSegmentEasing(t *testing.T) {
	fn, err := KeyFrames(
		KeyFrame{Time: 0, Value: 0},
		KeyFrame{Time: 1, Value: 1, Easing: QuadraticIn},
	)
	if err != nil {
		t.Fatalf("KeyFrames error: %v", err)
	}
	if got := fn(0.5); math.Abs(got-0.25) > tolerance {
		t.Errorf("keyframes(0.5) = %v, want 0.25", got)
	}
}

func TestKeyFramesValidation(t *testing.T) {
	tests := []struct {
		name   string
		frames []KeyFrame
	}{
		{"single frame", []KeyFrame{{Time: 0}}},
		{"late start", []KeyFrame{{Time: 0.1}, {Time: 1}}},
		{"early end", []KeyFrame{{Time: 0}, {Time: 0.9}}},
		{"not increasing", []KeyFrame{{Time: 0}, {Time: 0.5}, {Time: 0.5}, {Time: 1}}},
	}
	for _, tt := range tests {
		if _, err := KeyFrames(tt.frames...); err == nil {
			t.Errorf("%s: expected error", tt.name)
		}
	}
}

func TestByName(t *testing.T) {
	fn, err := ByName("Bounce_In_Out")
	if err != nil {
		t.Fatalf("ByName error: %v", err)
	}
	if got, want := fn(0.3), BounceInOut(0.3); got != want {
		t.Errorf("ByName(Bounce_In_Out)(0.3) = %v, want %v", got, want)
	}
	if _, err := ByName("wobble"); err == nil {
		t.Error("expected error for unknown easing name")
	}
}
