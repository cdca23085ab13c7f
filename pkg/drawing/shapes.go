package drawing

import (
	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

// Rectangle is an axis-aligned box with its top-left corner at (X, Y).
type Rectangle struct {
	Geometry
	Width  *motion.MotionProperty[float64]
	Height *motion.MotionProperty[float64]
}

// NewRectangle returns a zero-sized rectangle at the origin.
func NewRectangle() *Rectangle {
	r := &Rectangle{}
	r.init(r)
	r.Width = motion.Register(&r.Animatable, "Width", 0.0, motion.LerpFloat)
	r.Height = motion.Register(&r.Animatable, "Height", 0.0, motion.LerpFloat)
	return r
}

func (r *Rectangle) bounds(rendering.DrawingContext) rendering.Rect {
	return rendering.RectFromLTWH(r.X.Get(), r.Y.Get(), r.Width.Get(), r.Height.Get())
}

func (r *Rectangle) drawShape(ctx rendering.DrawingContext) {
	ctx.DrawRect(r.bounds(ctx))
}

// RoundedRectangle is a Rectangle with rounded corners.
type RoundedRectangle struct {
	Geometry
	Width        *motion.MotionProperty[float64]
	Height       *motion.MotionProperty[float64]
	CornerRadius *motion.MotionProperty[float64]
}

// NewRoundedRectangle returns a zero-sized rounded rectangle at the origin.
func NewRoundedRectangle() *RoundedRectangle {
	r := &RoundedRectangle{}
	r.init(r)
	r.Width = motion.Register(&r.Animatable, "Width", 0.0, motion.LerpFloat)
	r.Height = motion.Register(&r.Animatable, "Height", 0.0, motion.LerpFloat)
	r.CornerRadius = motion.Register(&r.Animatable, "CornerRadius", 0.0, motion.LerpFloat)
	return r
}

func (r *RoundedRectangle) bounds(rendering.DrawingContext) rendering.Rect {
	return rendering.RectFromLTWH(r.X.Get(), r.Y.Get(), r.Width.Get(), r.Height.Get())
}

func (r *RoundedRectangle) drawShape(ctx rendering.DrawingContext) {
	ctx.DrawRRect(rendering.RRect{
		Rect:   r.bounds(ctx),
		Radius: rendering.CircularRadius(r.CornerRadius.Get()),
	})
}

// Circle is centered on (X, Y).
type Circle struct {
	Geometry
	Radius *motion.MotionProperty[float64]
}

// NewCircle returns a zero-radius circle at the origin.
func NewCircle() *Circle {
	c := &Circle{}
	c.init(c)
	c.Radius = motion.Register(&c.Animatable, "Radius", 0.0, motion.LerpFloat)
	return c
}

func (c *Circle) bounds(rendering.DrawingContext) rendering.Rect {
	r := c.Radius.Get()
	return rendering.RectFromLTWH(c.X.Get()-r, c.Y.Get()-r, 2*r, 2*r)
}

func (c *Circle) drawShape(ctx rendering.DrawingContext) {
	ctx.DrawCircle(rendering.Offset{X: c.X.Get(), Y: c.Y.Get()}, c.Radius.Get())
}

// Line runs from (X, Y) to (X1, Y1). Lines are always stroked.
type Line struct {
	Geometry
	X1 *motion.MotionProperty[float64]
	Y1 *motion.MotionProperty[float64]
}

// NewLine returns a zero-length line at the origin.
func NewLine() *Line {
	l := &Line{}
	l.init(l)
	l.X1 = motion.Register(&l.Animatable, "X1", 0.0, motion.LerpFloat)
	l.Y1 = motion.Register(&l.Animatable, "Y1", 0.0, motion.LerpFloat)
	return l
}

func (l *Line) bounds(rendering.DrawingContext) rendering.Rect {
	x, y, x1, y1 := l.X.Get(), l.Y.Get(), l.X1.Get(), l.Y1.Get()
	return rendering.Rect{Left: min(x, x1), Top: min(y, y1), Right: max(x, x1), Bottom: max(y, y1)}
}

func (l *Line) drawShape(ctx rendering.DrawingContext) {
	ctx.DrawLine(
		rendering.Offset{X: l.X.Get(), Y: l.Y.Get()},
		rendering.Offset{X: l.X1.Get(), Y: l.Y1.Get()},
	)
}
