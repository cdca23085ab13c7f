package rendering

import (
	"fmt"
	"math"
)

// PathOp represents a path drawing operation type.
type PathOp int

const (
	PathOpMoveTo  PathOp = iota // Start new subpath at point (x, y)
	PathOpLineTo                // Draw line to point (x, y)
	PathOpQuadTo                // Draw quadratic curve to (x2, y2) via control (x1, y1)
	PathOpCubicTo               // Draw cubic curve to (x3, y3) via controls (x1, y1), (x2, y2)
	PathOpClose                 // Close subpath with line to start point
)

// String returns a human-readable representation of the path operation.
func (o PathOp) String() string {
	switch o {
	case PathOpMoveTo:
		return "move_to"
	case PathOpLineTo:
		return "line_to"
	case PathOpQuadTo:
		return "quad_to"
	case PathOpCubicTo:
		return "cubic_to"
	case PathOpClose:
		return "close"
	default:
		return fmt.Sprintf("PathOp(%d)", int(o))
	}
}

// PathFillRule determines how path interiors are calculated for filling.
type PathFillRule int

const (
	// FillRuleNonZero fills regions with nonzero winding count.
	// A point is inside if a ray from it crosses more left-to-right edges
	// than right-to-left edges (or vice versa).
	FillRuleNonZero PathFillRule = iota

	// FillRuleEvenOdd fills regions crossed an odd number of times.
	// Useful for creating holes: nested shapes alternate between filled/unfilled.
	FillRuleEvenOdd
)

// String returns a human-readable representation of the path fill rule.
func (r PathFillRule) String() string {
	switch r {
	case FillRuleNonZero:
		return "nonzero"
	case FillRuleEvenOdd:
		return "evenodd"
	default:
		return fmt.Sprintf("PathFillRule(%d)", int(r))
	}
}

// PathCommand represents a single path operation with its coordinate arguments.
type PathCommand struct {
	Op   PathOp    // The operation type
	Args []float64 // Coordinates: MoveTo/LineTo=[x,y], QuadTo=[x1,y1,x2,y2], CubicTo=[x1,y1,x2,y2,x3,y3]
}

// Path represents a vector path for drawing arbitrary shapes.
//
// Build paths using MoveTo, LineTo, QuadTo, CubicTo, and Close methods.
// Use with DrawingContext.DrawPath to stroke or fill it with the selected paint.
type Path struct {
	Commands []PathCommand
	FillRule PathFillRule
}

// NewPath creates a new empty path with nonzero fill rule.
func NewPath() *Path {
	return &Path{FillRule: FillRuleNonZero}
}

// NewPathWithFillRule creates a new empty path with the specified fill rule.
func NewPathWithFillRule(fillRule PathFillRule) *Path {
	return &Path{FillRule: fillRule}
}

// MoveTo starts a new subpath at the given point.
func (p *Path) MoveTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpMoveTo,
		Args: []float64{x, y},
	})
}

// LineTo adds a line segment from the current point to (x, y).
func (p *Path) LineTo(x, y float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpLineTo,
		Args: []float64{x, y},
	})
}

// QuadTo adds a quadratic bezier curve from the current point to (x2, y2)
// with control point (x1, y1).
func (p *Path) QuadTo(x1, y1, x2, y2 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpQuadTo,
		Args: []float64{x1, y1, x2, y2},
	})
}

// CubicTo adds a cubic bezier curve from the current point to (x3, y3)
// with control points (x1, y1) and (x2, y2).
func (p *Path) CubicTo(x1, y1, x2, y2, x3, y3 float64) {
	p.Commands = append(p.Commands, PathCommand{
		Op:   PathOpCubicTo,
		Args: []float64{x1, y1, x2, y2, x3, y3},
	})
}

// Close closes the current subpath by drawing a line to the starting point.
func (p *Path) Close() {
	p.Commands = append(p.Commands, PathCommand{
		Op: PathOpClose,
	})
}

// IsEmpty returns true if the path has no commands.
func (p *Path) IsEmpty() bool {
	return len(p.Commands) == 0
}

// Clear removes all commands from the path.
func (p *Path) Clear() {
	p.Commands = p.Commands[:0]
}

// AddPolygon appends a subpath through points, closed when close is true.
// Fewer than two points add nothing.
func (p *Path) AddPolygon(points []Offset, close bool) {
	if len(points) < 2 {
		return
	}
	p.MoveTo(points[0].X, points[0].Y)
	for _, pt := range points[1:] {
		p.LineTo(pt.X, pt.Y)
	}
	if close {
		p.Close()
	}
}

// ArcTo appends a circular arc around center, starting at startAngle and
// sweeping sweepAngle radians (positive is clockwise in screen space). The
// arc is approximated by cubic segments of at most a quarter turn. When
// moveTo is true the arc starts a new subpath; otherwise a line joins the
// current point to the arc start.
func (p *Path) ArcTo(center Offset, radius, startAngle, sweepAngle float64, moveTo bool) {
	start := pointOnCircle(center, radius, startAngle)
	if moveTo {
		p.MoveTo(start.X, start.Y)
	} else {
		p.LineTo(start.X, start.Y)
	}
	if sweepAngle == 0 || radius <= 0 {
		return
	}

	segments := int(math.Ceil(math.Abs(sweepAngle) / (math.Pi / 2)))
	step := sweepAngle / float64(segments)
	k := 4.0 / 3.0 * math.Tan(step/4)
	a1 := startAngle
	for range segments {
		a2 := a1 + step
		sin1, cos1 := math.Sincos(a1)
		sin2, cos2 := math.Sincos(a2)
		p.CubicTo(
			center.X+radius*(cos1-k*sin1), center.Y+radius*(sin1+k*cos1),
			center.X+radius*(cos2+k*sin2), center.Y+radius*(sin2-k*cos2),
			center.X+radius*cos2, center.Y+radius*sin2,
		)
		a1 = a2
	}
}

func pointOnCircle(center Offset, radius, angle float64) Offset {
	sin, cos := math.Sincos(angle)
	return Offset{X: center.X + radius*cos, Y: center.Y + radius*sin}
}

// AddRRect appends a closed rounded rectangle. The radius is clamped to
// half the shorter side.
func (p *Path) AddRRect(rrect RRect) {
	r := rrect.Rect
	rad := min(rrect.UniformRadius(), r.Width()/2, r.Height()/2)
	if rad <= 0 {
		p.AddPolygon([]Offset{
			{X: r.Left, Y: r.Top}, {X: r.Right, Y: r.Top},
			{X: r.Right, Y: r.Bottom}, {X: r.Left, Y: r.Bottom},
		}, true)
		return
	}
	quarter := math.Pi / 2
	p.ArcTo(Offset{X: r.Left + rad, Y: r.Top + rad}, rad, math.Pi, quarter, true)
	p.ArcTo(Offset{X: r.Right - rad, Y: r.Top + rad}, rad, -quarter, quarter, false)
	p.ArcTo(Offset{X: r.Right - rad, Y: r.Bottom - rad}, rad, 0, quarter, false)
	p.ArcTo(Offset{X: r.Left + rad, Y: r.Bottom - rad}, rad, quarter, quarter, false)
	p.Close()
}
