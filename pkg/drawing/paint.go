package drawing

import (
	"slices"
	"time"

	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

// PaintTask is a style bound to the geometries it draws on each canvas.
// Canvases draw tasks in ascending ZIndex order.
type PaintTask interface {
	BeginFrame(now time.Time)
	EndFrame() bool
	IsValid() bool
	IsCompleted() bool
	RemoveOnCompleted() bool
	CompleteTransitions(names ...string)
	SetInvalidator(fn func())

	ZIndex() int
	IsPaused() bool
	// Initialize selects the task's paint on ctx before its geometries draw.
	Initialize(ctx rendering.DrawingContext)
	// Geometries returns the geometries drawn on the canvas identified by owner.
	Geometries(owner any) []Drawable
	RemoveGeometry(owner any, g Drawable)
}

// geometrySet keeps insertion order so frames draw deterministically.
type geometrySet struct {
	items []Drawable
}

func (s *geometrySet) add(g Drawable) {
	if !slices.Contains(s.items, g) {
		s.items = append(s.items, g)
	}
}

func (s *geometrySet) remove(g Drawable) {
	s.items = slices.DeleteFunc(s.items, func(d Drawable) bool { return d == g })
}

// SolidColorPaint fills or strokes its geometries with one color.
type SolidColorPaint struct {
	motion.Animatable
	Color           *motion.MotionProperty[rendering.Color]
	StrokeThickness *motion.MotionProperty[float64]

	Style      rendering.PaintStyle
	StrokeCap  rendering.StrokeCap
	StrokeJoin rendering.StrokeJoin
	Dash       *rendering.DashPattern

	zIndex     int
	paused     bool
	geometries map[any]*geometrySet
}

// PaintOption configures a SolidColorPaint.
type PaintOption func(*paintOptions)

type paintOptions struct {
	style     rendering.PaintStyle
	thickness float64
	zIndex    int
	colorLerp motion.Lerp[rendering.Color]
}

// WithStyle selects fill, stroke or both. The default is fill.
func WithStyle(style rendering.PaintStyle) PaintOption {
	return func(o *paintOptions) { o.style = style }
}

// WithStrokeThickness sets the initial stroke width.
func WithStrokeThickness(thickness float64) PaintOption {
	return func(o *paintOptions) { o.thickness = thickness }
}

// WithZIndex sets the drawing order.
func WithZIndex(z int) PaintOption {
	return func(o *paintOptions) { o.zIndex = z }
}

// WithColorLerp replaces the per-channel color interpolation, for example
// with motion.LerpColorLab.
func WithColorLerp(lerp motion.Lerp[rendering.Color]) PaintOption {
	return func(o *paintOptions) { o.colorLerp = lerp }
}

// NewSolidColorPaint returns a paint of the given color.
func NewSolidColorPaint(color rendering.Color, opts ...PaintOption) *SolidColorPaint {
	o := paintOptions{style: rendering.PaintStyleFill, thickness: 1, colorLerp: motion.LerpColor}
	for _, opt := range opts {
		opt(&o)
	}
	p := &SolidColorPaint{
		Style:      o.style,
		zIndex:     o.zIndex,
		geometries: make(map[any]*geometrySet),
	}
	p.Color = motion.Register(&p.Animatable, "Color", color, o.colorLerp)
	p.StrokeThickness = motion.Register(&p.Animatable, "StrokeThickness", o.thickness, motion.LerpFloat)
	return p
}

// ZIndex returns the drawing order; lower values draw first.
func (p *SolidColorPaint) ZIndex() int { return p.zIndex }

// SetZIndex changes the drawing order and requests a frame.
func (p *SolidColorPaint) SetZIndex(z int) {
	p.zIndex = z
	p.Invalidate()
}

// IsPaused reports whether drawing is suspended.
func (p *SolidColorPaint) IsPaused() bool { return p.paused }

// SetPaused suspends or resumes drawing. A paused task keeps its
// geometries, but canvases neither draw nor evaluate them, and pending
// removals wait until it resumes.
func (p *SolidColorPaint) SetPaused(paused bool) {
	p.paused = paused
	p.Invalidate()
}

// Initialize selects this paint on ctx.
func (p *SolidColorPaint) Initialize(ctx rendering.DrawingContext) {
	ctx.SelectPaint(rendering.Paint{
		Color:       p.Color.Get(),
		Style:       p.Style,
		StrokeWidth: p.StrokeThickness.Get(),
		StrokeCap:   p.StrokeCap,
		StrokeJoin:  p.StrokeJoin,
		Dash:        p.Dash,
	})
}

// AddGeometry adds g to the set drawn on the canvas identified by owner.
// Adding a geometry twice has no effect.
func (p *SolidColorPaint) AddGeometry(owner any, g Drawable) {
	set, ok := p.geometries[owner]
	if !ok {
		set = &geometrySet{}
		p.geometries[owner] = set
	}
	set.add(g)
	p.Invalidate()
}

// RemoveGeometry drops g from the set drawn on owner.
func (p *SolidColorPaint) RemoveGeometry(owner any, g Drawable) {
	set, ok := p.geometries[owner]
	if !ok {
		return
	}
	set.remove(g)
	if len(set.items) == 0 {
		delete(p.geometries, owner)
	}
}

// Geometries returns the geometries drawn on owner in insertion order.
func (p *SolidColorPaint) Geometries(owner any) []Drawable {
	set, ok := p.geometries[owner]
	if !ok {
		return nil
	}
	return slices.Clone(set.items)
}

// ClearGeometries drops every geometry drawn on owner.
func (p *SolidColorPaint) ClearGeometries(owner any) {
	delete(p.geometries, owner)
	p.Invalidate()
}

var _ PaintTask = (*SolidColorPaint)(nil)
