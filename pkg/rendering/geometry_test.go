package rendering

import (
	"math"
	"testing"
)

func TestMatrixComposition(t *testing.T) {
	m := TranslationMatrix(10, 20).Multiply(ScaleMatrix(2, 3))
	got := m.TransformPoint(Offset{X: 1, Y: 1})
	if got != (Offset{X: 12, Y: 23}) {
		t.Errorf("TransformPoint = %v, want (12, 23)", got)
	}
}

func TestRotationMatrix(t *testing.T) {
	got := RotationMatrix(math.Pi / 2).TransformPoint(Offset{X: 1, Y: 0})
	if math.Abs(got.X) > epsilon || math.Abs(got.Y-1) > epsilon {
		t.Errorf("rotated point = %v, want (0, 1)", got)
	}
	if !IdentityMatrix().Multiply(IdentityMatrix()).IsIdentity() {
		t.Error("identity * identity should be identity")
	}
}

func TestColorChannels(t *testing.T) {
	c := RGBA(0x12, 0x34, 0x56, 0x78)
	if c.R() != 0x12 || c.G() != 0x34 || c.B() != 0x56 || c.A() != 0x78 {
		t.Errorf("channels of %v = %x %x %x %x", c, c.R(), c.G(), c.B(), c.A())
	}
	if got := ColorRed.WithOpacity(0.5).A(); got != 128 {
		t.Errorf("WithOpacity(0.5).A() = %d, want 128", got)
	}
	if got := ColorRed.String(); got != "#FFFF0000" {
		t.Errorf("String = %q, want #FFFF0000", got)
	}
}

func TestArcEndsOnCircle(t *testing.T) {
	p := NewPath()
	center := Offset{X: 50, Y: 50}
	p.ArcTo(center, 10, 0, math.Pi, true)

	if len(p.Commands) != 3 {
		t.Fatalf("len(Commands) = %d, want 3 (move + 2 quarter arcs)", len(p.Commands))
	}
	last := p.Commands[len(p.Commands)-1].Args
	if math.Abs(last[4]-40) > epsilon || math.Abs(last[5]-50) > epsilon {
		t.Errorf("arc end = (%v, %v), want (40, 50)", last[4], last[5])
	}
}

func TestAddPolygon(t *testing.T) {
	p := NewPath()
	p.AddPolygon([]Offset{{X: 0, Y: 0}}, true)
	if !p.IsEmpty() {
		t.Error("single point polygon should add nothing")
	}
	p.AddPolygon([]Offset{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}}, true)
	ops := []PathOp{PathOpMoveTo, PathOpLineTo, PathOpLineTo, PathOpClose}
	for i, op := range ops {
		if p.Commands[i].Op != op {
			t.Errorf("command %d = %v, want %v", i, p.Commands[i].Op, op)
		}
	}
}
