package drawing

import (
	"math"

	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

// Polyline connects Points, offset by (X, Y). Points animate one by one;
// see motion.LerpOffsets for how lists of different lengths morph.
type Polyline struct {
	Geometry
	Points *motion.MotionProperty[[]rendering.Offset]
	// Close joins the last point back to the first, making an area.
	Close bool
}

// NewPolyline returns a polyline without points.
func NewPolyline() *Polyline {
	p := &Polyline{}
	p.init(p)
	p.Points = motion.Register(&p.Animatable, "Points", []rendering.Offset(nil), motion.LerpOffsets)
	return p
}

func (p *Polyline) bounds(rendering.DrawingContext) rendering.Rect {
	points := p.Points.Get()
	if len(points) == 0 {
		return rendering.Rect{}
	}
	dx, dy := p.X.Get(), p.Y.Get()
	b := rendering.Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	for _, pt := range points {
		b.Left = min(b.Left, pt.X+dx)
		b.Top = min(b.Top, pt.Y+dy)
		b.Right = max(b.Right, pt.X+dx)
		b.Bottom = max(b.Bottom, pt.Y+dy)
	}
	return b
}

func (p *Polyline) drawShape(ctx rendering.DrawingContext) {
	points := p.Points.Get()
	if len(points) < 2 {
		return
	}
	offset := rendering.Offset{X: p.X.Get(), Y: p.Y.Get()}
	shifted := make([]rendering.Offset, len(points))
	for i, pt := range points {
		shifted[i] = pt.Add(offset)
	}
	path := rendering.NewPath()
	path.AddPolygon(shifted, p.Close)
	ctx.DrawPath(path)
}
