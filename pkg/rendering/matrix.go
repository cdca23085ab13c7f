package rendering

import "math"

// Matrix is a 2x3 affine transform. A point (x, y) maps to
// (A*x + B*y + C, D*x + E*y + F).
type Matrix struct {
	A, B, C float64
	D, E, F float64
}

// IdentityMatrix returns the transform that leaves points unchanged.
func IdentityMatrix() Matrix {
	return Matrix{A: 1, E: 1}
}

// TranslationMatrix returns a translation by (dx, dy).
func TranslationMatrix(dx, dy float64) Matrix {
	return Matrix{A: 1, C: dx, E: 1, F: dy}
}

// ScaleMatrix returns a scale by (sx, sy) about the origin.
func ScaleMatrix(sx, sy float64) Matrix {
	return Matrix{A: sx, E: sy}
}

// RotationMatrix returns a rotation by radians about the origin.
func RotationMatrix(radians float64) Matrix {
	sin, cos := math.Sincos(radians)
	return Matrix{A: cos, B: -sin, D: sin, E: cos}
}

// Multiply returns m * other; other is applied first.
func (m Matrix) Multiply(other Matrix) Matrix {
	return Matrix{
		A: m.A*other.A + m.B*other.D,
		B: m.A*other.B + m.B*other.E,
		C: m.A*other.C + m.B*other.F + m.C,
		D: m.D*other.A + m.E*other.D,
		E: m.D*other.B + m.E*other.E,
		F: m.D*other.C + m.E*other.F + m.F,
	}
}

// TransformPoint applies m to p.
func (m Matrix) TransformPoint(p Offset) Offset {
	return Offset{
		X: m.A*p.X + m.B*p.Y + m.C,
		Y: m.D*p.X + m.E*p.Y + m.F,
	}
}

// IsIdentity reports whether m is (approximately) the identity transform.
func (m Matrix) IsIdentity() bool {
	return floatEqual(m.A, 1) && floatEqual(m.B, 0) && floatEqual(m.C, 0) &&
		floatEqual(m.D, 0) && floatEqual(m.E, 1) && floatEqual(m.F, 0)
}
