package ggcanvas

import (
	"image"
	"io"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
	fontErr    error
)

func loadFont() (*text.FontSource, error) {
	fontOnce.Do(func() {
		fontSource, fontErr = text.NewFontSource(goregular.TTF)
	})
	return fontSource, fontErr
}

// Context draws into an in-memory RGBA image through gg.
type Context struct {
	dc       *gg.Context
	size     rendering.Size
	state    *rendering.StateStack
	paint    rendering.Paint
	hasPaint bool
	font     *text.FontSource
	faces    map[float64]text.Face
	errs     []error
}

var _ rendering.DrawingContext = (*Context)(nil)

// New returns a context with a width x height pixel surface.
func New(width, height int) (*Context, error) {
	const op = "ggcanvas.New"
	if width <= 0 || height <= 0 {
		return nil, errors.New(op, errors.KindInvalidArgument, "surface size must be positive, got %dx%d", width, height)
	}
	font, err := loadFont()
	if err != nil {
		return nil, errors.Wrap(op, errors.KindRender, err)
	}
	return &Context{
		dc:    gg.NewContext(width, height),
		size:  rendering.Size{Width: float64(width), Height: float64(height)},
		state: rendering.NewStateStack(),
		font:  font,
		faces: make(map[float64]text.Face),
	}, nil
}

// BeginDraw resets the transform, opacity and paint selection.
func (c *Context) BeginDraw() {
	for c.state.Depth() > 0 {
		c.Restore()
	}
	c.state.Reset()
	c.dc.Identity()
	c.hasPaint = false
	c.errs = c.errs[:0]
}

// EndDraw returns the raster errors collected since BeginDraw.
func (c *Context) EndDraw() error {
	if len(c.errs) == 0 {
		return nil
	}
	return errors.Wrap("ggcanvas.EndDraw", errors.KindRender, errors.Join(c.errs...))
}

func (c *Context) Clear(color rendering.Color) {
	r, g, b, a := color.RGBAF()
	c.dc.ClearWithColor(gg.RGBA{R: r, G: g, B: b, A: a})
}

func (c *Context) SelectPaint(paint rendering.Paint) {
	c.paint = paint
	c.hasPaint = true
}

func (c *Context) Save() {
	c.dc.Push()
	c.state.Save()
}

func (c *Context) Restore() {
	if c.state.Depth() == 0 {
		return
	}
	c.dc.Pop()
	c.state.Restore()
}

func (c *Context) Translate(dx, dy float64) {
	c.dc.Translate(dx, dy)
}

func (c *Context) Rotate(radians float64) {
	c.dc.Rotate(radians)
}

func (c *Context) Scale(sx, sy float64) {
	c.dc.Scale(sx, sy)
}

func (c *Context) Concat(m rendering.Matrix) {
	c.dc.Transform(gg.Matrix{A: m.A, B: m.B, C: m.C, D: m.D, E: m.E, F: m.F})
}

func (c *Context) SetOpacity(opacity float64) {
	c.state.MultiplyOpacity(opacity)
}

func (c *Context) DrawRect(rect rendering.Rect) {
	c.shape("draw_rect", func() {
		c.dc.DrawRectangle(rect.Left, rect.Top, rect.Width(), rect.Height())
	})
}

func (c *Context) DrawRRect(rrect rendering.RRect) {
	path := rendering.NewPath()
	path.AddRRect(rrect)
	c.shape("draw_rrect", func() { c.tracePath(path) })
}

func (c *Context) DrawCircle(center rendering.Offset, radius float64) {
	c.shape("draw_circle", func() {
		c.dc.DrawCircle(center.X, center.Y, radius)
	})
}

// DrawLine always strokes, whatever the paint style.
func (c *Context) DrawLine(start, end rendering.Offset) {
	c.requirePaint("draw_line")
	c.applyStroke()
	c.dc.DrawLine(start.X, start.Y, end.X, end.Y)
	c.collect(c.dc.Stroke())
}

func (c *Context) DrawPath(path *rendering.Path) {
	if path == nil || path.IsEmpty() {
		c.requirePaint("draw_path")
		return
	}
	if path.FillRule == rendering.FillRuleEvenOdd {
		c.dc.SetFillRule(gg.FillRuleEvenOdd)
	} else {
		c.dc.SetFillRule(gg.FillRuleNonZero)
	}
	c.shape("draw_path", func() { c.tracePath(path) })
}

func (c *Context) DrawText(s string, position rendering.Offset, size float64) {
	c.requirePaint("draw_text")
	if s == "" || size <= 0 {
		return
	}
	c.dc.SetFont(c.face(size))
	c.setColor()
	x, y := c.dc.TransformPoint(position.X, position.Y)
	c.dc.DrawStringAnchored(s, x, y, 0, 1)
}

func (c *Context) MeasureText(s string, size float64) rendering.Size {
	if s == "" || size <= 0 {
		return rendering.Size{}
	}
	w, h := text.Measure(s, c.face(size))
	return rendering.Size{Width: w, Height: h}
}

func (c *Context) Size() rendering.Size {
	return c.size
}

// Image returns the rendered surface.
func (c *Context) Image() image.Image {
	return c.dc.Image()
}

// SavePNG writes the surface to a PNG file.
func (c *Context) SavePNG(path string) error {
	return errors.Wrap("ggcanvas.SavePNG", errors.KindRender, c.dc.SavePNG(path))
}

// EncodePNG writes the surface as PNG to w.
func (c *Context) EncodePNG(w io.Writer) error {
	return errors.Wrap("ggcanvas.EncodePNG", errors.KindRender, c.dc.EncodePNG(w))
}

// Close releases the gg context.
func (c *Context) Close() error {
	return c.dc.Close()
}

func (c *Context) face(size float64) text.Face {
	key := math.Round(size*4) / 4
	face, ok := c.faces[key]
	if !ok {
		face = c.font.Face(key)
		c.faces[key] = face
	}
	return face
}

func (c *Context) requirePaint(op string) {
	if !c.hasPaint {
		panic("ggcanvas: " + op + " called before SelectPaint")
	}
}

// shape traces the outline once per pass the paint style asks for.
func (c *Context) shape(op string, trace func()) {
	c.requirePaint(op)
	style := c.paint.Style
	if style.Fills() {
		c.setColor()
		trace()
		c.collect(c.dc.Fill())
	}
	if style.Strokes() {
		c.applyStroke()
		trace()
		c.collect(c.dc.Stroke())
	}
}

func (c *Context) setColor() {
	r, g, b, a := c.paint.Color.RGBAF()
	c.dc.SetRGBA(r, g, b, a*c.state.Opacity())
}

func (c *Context) applyStroke() {
	c.setColor()
	width := c.paint.StrokeWidth
	if width <= 0 {
		width = 1
	}
	c.dc.SetLineWidth(width)
	c.dc.SetLineCap(lineCap(c.paint.StrokeCap))
	c.dc.SetLineJoin(lineJoin(c.paint.StrokeJoin))
	if c.paint.MiterLimit > 0 {
		c.dc.SetMiterLimit(c.paint.MiterLimit)
	} else {
		c.dc.SetMiterLimit(4)
	}
	if dash := c.paint.Dash; dash != nil && len(dash.Intervals) >= 2 {
		c.dc.SetDash(dash.Intervals...)
		c.dc.SetDashOffset(dash.Phase)
	} else {
		c.dc.SetDash()
	}
}

func (c *Context) tracePath(path *rendering.Path) {
	for _, cmd := range path.Commands {
		a := cmd.Args
		switch cmd.Op {
		case rendering.PathOpMoveTo:
			c.dc.MoveTo(a[0], a[1])
		case rendering.PathOpLineTo:
			c.dc.LineTo(a[0], a[1])
		case rendering.PathOpQuadTo:
			c.dc.QuadraticTo(a[0], a[1], a[2], a[3])
		case rendering.PathOpCubicTo:
			c.dc.CubicTo(a[0], a[1], a[2], a[3], a[4], a[5])
		case rendering.PathOpClose:
			c.dc.ClosePath()
		}
	}
}

func (c *Context) collect(err error) {
	if err != nil {
		c.errs = append(c.errs, err)
	}
}

func lineCap(cp rendering.StrokeCap) gg.LineCap {
	switch cp {
	case rendering.CapRound:
		return gg.LineCapRound
	case rendering.CapSquare:
		return gg.LineCapSquare
	default:
		return gg.LineCapButt
	}
}

func lineJoin(j rendering.StrokeJoin) gg.LineJoin {
	switch j {
	case rendering.JoinRound:
		return gg.LineJoinRound
	case rendering.JoinBevel:
		return gg.LineJoinBevel
	default:
		return gg.LineJoinMiter
	}
}
