package motion

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/exp/constraints"

	"github.com/go-drift/chartmotion/pkg/rendering"
)

// Lerp interpolates between a and b at progress t. t is usually in [0, 1]
// but overshooting easings (back, elastic) produce values outside it.
type Lerp[T any] func(a, b T, t float64) T

// LerpFloat linearly interpolates between two float64 values.
func LerpFloat(a, b, t float64) float64 {
	return a + (b-a)*t
}

// LerpNumber interpolates any numeric type through float64. Integer
// results are rounded to the nearest value.
func LerpNumber[T constraints.Integer | constraints.Float](a, b T, t float64) T {
	v := LerpFloat(float64(a), float64(b), t)
	// Integer division truncates 1/2 to 0; this also catches named types.
	if one := T(1); one/2 != 0 {
		return T(v)
	}
	return T(math.Round(v))
}

// LerpColor interpolates each ARGB channel independently.
func LerpColor(a, b rendering.Color, t float64) rendering.Color {
	return rendering.RGBA(
		lerpChannel(a.R(), b.R(), t),
		lerpChannel(a.G(), b.G(), t),
		lerpChannel(a.B(), b.B(), t),
		lerpChannel(a.A(), b.A(), t),
	)
}

func lerpChannel(a, b uint8, t float64) uint8 {
	v := math.Round(LerpFloat(float64(a), float64(b), t))
	return uint8(max(0, min(255, v)))
}

// LerpColorLab interpolates through CIE L*a*b* space, which keeps
// perceived lightness even between distant hues. Alpha is interpolated
// linearly.
func LerpColorLab(a, b rendering.Color, t float64) rendering.Color {
	ar, ag, ab, _ := a.RGBAF()
	br, bg, bb, _ := b.RGBAF()
	from := colorful.Color{R: ar, G: ag, B: ab}
	to := colorful.Color{R: br, G: bg, B: bb}
	r, g, bl := from.BlendLab(to, t).Clamped().RGB255()
	return rendering.RGBA(r, g, bl, lerpChannel(a.A(), b.A(), t))
}

// LerpOffset interpolates both coordinates.
func LerpOffset(a, b rendering.Offset, t float64) rendering.Offset {
	return rendering.Offset{
		X: LerpFloat(a.X, b.X, t),
		Y: LerpFloat(a.Y, b.Y, t),
	}
}

// LerpRect interpolates all four edges.
func LerpRect(a, b rendering.Rect, t float64) rendering.Rect {
	return rendering.Rect{
		Left:   LerpFloat(a.Left, b.Left, t),
		Top:    LerpFloat(a.Top, b.Top, t),
		Right:  LerpFloat(a.Right, b.Right, t),
		Bottom: LerpFloat(a.Bottom, b.Bottom, t),
	}
}

// LerpMatrix interpolates the six affine coefficients.
func LerpMatrix(a, b rendering.Matrix, t float64) rendering.Matrix {
	return rendering.Matrix{
		A: LerpFloat(a.A, b.A, t),
		B: LerpFloat(a.B, b.B, t),
		C: LerpFloat(a.C, b.C, t),
		D: LerpFloat(a.D, b.D, t),
		E: LerpFloat(a.E, b.E, t),
		F: LerpFloat(a.F, b.F, t),
	}
}

// LerpOffsets interpolates point lists point by point. When the lists
// differ in length the shorter one is padded with its last point, so new
// points grow out of the end of the line and removed ones collapse into
// it. At t >= 1 the result is exactly b.
func LerpOffsets(a, b []rendering.Offset, t float64) []rendering.Offset {
	if t >= 1 || len(a) == 0 {
		return append([]rendering.Offset(nil), b...)
	}
	if len(b) == 0 {
		if t <= 0 {
			return append([]rendering.Offset(nil), a...)
		}
		return nil
	}
	n := max(len(a), len(b))
	out := make([]rendering.Offset, n)
	for i := range n {
		out[i] = LerpOffset(pointAt(a, i), pointAt(b, i), t)
	}
	return out
}

func pointAt(points []rendering.Offset, i int) rendering.Offset {
	if i < len(points) {
		return points[i]
	}
	return points[len(points)-1]
}

// Snap holds a until the transition completes and then jumps to b. Use it
// for values with no meaningful midpoint such as label text.
func Snap[T any](a, b T, t float64) T {
	if t >= 1 {
		return b
	}
	return a
}
