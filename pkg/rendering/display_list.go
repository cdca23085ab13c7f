package rendering

import (
	"math"
	"unicode/utf8"
)

// DisplayList is an immutable list of drawing operations.
// It can be replayed onto any DrawingContext implementation.
type DisplayList struct {
	ops   []displayOp
	draws []DrawCall
	size  Size
}

// Paint replays the recorded operations onto the provided context. The
// context's BeginDraw and EndDraw are left to the caller.
func (d *DisplayList) Paint(ctx DrawingContext) {
	for _, op := range d.ops {
		op.execute(ctx)
	}
}

// Size returns the size recorded when the display list was created.
func (d *DisplayList) Size() Size {
	return d.size
}

// Len returns the number of recorded operations.
func (d *DisplayList) Len() int {
	return len(d.ops)
}

// OpNames returns the recorded operation names in order, e.g.
// "clear", "select_paint", "draw_rect".
func (d *DisplayList) OpNames() []string {
	names := make([]string, len(d.ops))
	for i, op := range d.ops {
		names[i] = op.name()
	}
	return names
}

// Draws returns the recorded draw calls with the state they were made in.
func (d *DisplayList) Draws() []DrawCall {
	out := make([]DrawCall, len(d.draws))
	copy(out, d.draws)
	return out
}

// DrawCall describes a single recorded draw operation.
type DrawCall struct {
	Op        string  // "draw_rect", "draw_circle", ...
	Paint     Paint   // Paint selected when the call was made
	Opacity   float64 // Accumulated opacity
	Transform Matrix  // Transform in effect
	Bounds    Rect    // Local-space bounds of the shape
	Text      string  // Text for draw_text
}

// PictureRecorder records drawing commands into a display list.
type PictureRecorder struct {
	ops       []displayOp
	draws     []DrawCall
	recording bool
	size      Size
}

// BeginRecording starts a new recording session.
func (r *PictureRecorder) BeginRecording(size Size) DrawingContext {
	r.ops = r.ops[:0]
	r.draws = r.draws[:0]
	r.recording = true
	r.size = size
	return &recordingContext{recorder: r, size: size, state: NewStateStack()}
}

// EndRecording finishes the recording and returns a display list.
func (r *PictureRecorder) EndRecording() *DisplayList {
	if !r.recording {
		return &DisplayList{size: r.size}
	}
	r.recording = false
	ops := make([]displayOp, len(r.ops))
	copy(ops, r.ops)
	draws := make([]DrawCall, len(r.draws))
	copy(draws, r.draws)
	return &DisplayList{
		ops:   ops,
		draws: draws,
		size:  r.size,
	}
}

func (r *PictureRecorder) append(op displayOp) {
	if !r.recording {
		return
	}
	r.ops = append(r.ops, op)
}

type displayOp interface {
	name() string
	execute(ctx DrawingContext)
}

type recordingContext struct {
	recorder *PictureRecorder
	size     Size
	state    *StateStack
	paint    Paint
	hasPaint bool
}

func (c *recordingContext) BeginDraw() {
	c.state.Reset()
	c.hasPaint = false
}

func (c *recordingContext) EndDraw() error { return nil }

func (c *recordingContext) Clear(color Color) {
	c.recorder.append(opClear{color: color})
}

func (c *recordingContext) SelectPaint(paint Paint) {
	c.paint = paint
	c.hasPaint = true
	c.recorder.append(opSelectPaint{paint: paint})
}

func (c *recordingContext) Save() {
	c.state.Save()
	c.recorder.append(opSave{})
}

func (c *recordingContext) Restore() {
	c.state.Restore()
	c.recorder.append(opRestore{})
}

func (c *recordingContext) Translate(dx, dy float64) {
	c.state.Concat(TranslationMatrix(dx, dy))
	c.recorder.append(opTranslate{dx: dx, dy: dy})
}

func (c *recordingContext) Rotate(radians float64) {
	c.state.Concat(RotationMatrix(radians))
	c.recorder.append(opRotate{radians: radians})
}

func (c *recordingContext) Scale(sx, sy float64) {
	c.state.Concat(ScaleMatrix(sx, sy))
	c.recorder.append(opScale{sx: sx, sy: sy})
}

func (c *recordingContext) Concat(m Matrix) {
	c.state.Concat(m)
	c.recorder.append(opConcat{m: m})
}

func (c *recordingContext) SetOpacity(opacity float64) {
	c.state.MultiplyOpacity(opacity)
	c.recorder.append(opOpacity{opacity: opacity})
}

func (c *recordingContext) DrawRect(rect Rect) {
	c.draw(opRect{rect: rect}, rect, "")
}

func (c *recordingContext) DrawRRect(rrect RRect) {
	c.draw(opRRect{rrect: rrect}, rrect.Rect, "")
}

func (c *recordingContext) DrawCircle(center Offset, radius float64) {
	bounds := Rect{Left: center.X - radius, Top: center.Y - radius, Right: center.X + radius, Bottom: center.Y + radius}
	c.draw(opCircle{center: center, radius: radius}, bounds, "")
}

func (c *recordingContext) DrawLine(start, end Offset) {
	bounds := Rect{
		Left: math.Min(start.X, end.X), Top: math.Min(start.Y, end.Y),
		Right: math.Max(start.X, end.X), Bottom: math.Max(start.Y, end.Y),
	}
	c.draw(opLine{start: start, end: end}, bounds, "")
}

func (c *recordingContext) DrawPath(path *Path) {
	c.draw(opPath{path: path}, pathBounds(path), "")
}

func (c *recordingContext) DrawText(text string, position Offset, size float64) {
	extent := c.MeasureText(text, size)
	c.draw(opText{text: text, position: position, size: size},
		RectFromLTWH(position.X, position.Y, extent.Width, extent.Height), text)
}

// MeasureText approximates glyph advances as 0.6 em, which is close enough
// for layout checks against a recording.
func (c *recordingContext) MeasureText(text string, size float64) Size {
	return Size{Width: 0.6 * size * float64(utf8.RuneCountInString(text)), Height: size}
}

func (c *recordingContext) Size() Size {
	return c.size
}

func (c *recordingContext) draw(op displayOp, bounds Rect, text string) {
	if !c.hasPaint {
		panic("rendering: " + op.name() + " called before SelectPaint")
	}
	c.recorder.append(op)
	if c.recorder.recording {
		c.recorder.draws = append(c.recorder.draws, DrawCall{
			Op:        op.name(),
			Paint:     c.paint,
			Opacity:   c.state.Opacity(),
			Transform: c.state.Transform(),
			Bounds:    bounds,
			Text:      text,
		})
	}
}

func pathBounds(path *Path) Rect {
	if path == nil {
		return Rect{}
	}
	bounds := Rect{Left: math.Inf(1), Top: math.Inf(1), Right: math.Inf(-1), Bottom: math.Inf(-1)}
	found := false
	for _, cmd := range path.Commands {
		for i := 0; i+1 < len(cmd.Args); i += 2 {
			x, y := cmd.Args[i], cmd.Args[i+1]
			bounds.Left = math.Min(bounds.Left, x)
			bounds.Top = math.Min(bounds.Top, y)
			bounds.Right = math.Max(bounds.Right, x)
			bounds.Bottom = math.Max(bounds.Bottom, y)
			found = true
		}
	}
	if !found {
		return Rect{}
	}
	return bounds
}

type opClear struct {
	color Color
}

func (op opClear) name() string { return "clear" }
func (op opClear) execute(ctx DrawingContext) {
	ctx.Clear(op.color)
}

type opSelectPaint struct {
	paint Paint
}

func (op opSelectPaint) name() string { return "select_paint" }
func (op opSelectPaint) execute(ctx DrawingContext) {
	ctx.SelectPaint(op.paint)
}

type opSave struct{}

func (opSave) name() string { return "save" }
func (opSave) execute(ctx DrawingContext) {
	ctx.Save()
}

type opRestore struct{}

func (opRestore) name() string { return "restore" }
func (opRestore) execute(ctx DrawingContext) {
	ctx.Restore()
}

type opTranslate struct {
	dx float64
	dy float64
}

func (op opTranslate) name() string { return "translate" }
func (op opTranslate) execute(ctx DrawingContext) {
	ctx.Translate(op.dx, op.dy)
}

type opRotate struct {
	radians float64
}

func (op opRotate) name() string { return "rotate" }
func (op opRotate) execute(ctx DrawingContext) {
	ctx.Rotate(op.radians)
}

type opScale struct {
	sx float64
	sy float64
}

func (op opScale) name() string { return "scale" }
func (op opScale) execute(ctx DrawingContext) {
	ctx.Scale(op.sx, op.sy)
}

type opConcat struct {
	m Matrix
}

func (op opConcat) name() string { return "concat" }
func (op opConcat) execute(ctx DrawingContext) {
	ctx.Concat(op.m)
}

type opOpacity struct {
	opacity float64
}

func (op opOpacity) name() string { return "set_opacity" }
func (op opOpacity) execute(ctx DrawingContext) {
	ctx.SetOpacity(op.opacity)
}

type opRect struct {
	rect Rect
}

func (op opRect) name() string { return "draw_rect" }
func (op opRect) execute(ctx DrawingContext) {
	ctx.DrawRect(op.rect)
}

type opRRect struct {
	rrect RRect
}

func (op opRRect) name() string { return "draw_rrect" }
func (op opRRect) execute(ctx DrawingContext) {
	ctx.DrawRRect(op.rrect)
}

type opCircle struct {
	center Offset
	radius float64
}

func (op opCircle) name() string { return "draw_circle" }
func (op opCircle) execute(ctx DrawingContext) {
	ctx.DrawCircle(op.center, op.radius)
}

type opLine struct {
	start Offset
	end   Offset
}

func (op opLine) name() string { return "draw_line" }
func (op opLine) execute(ctx DrawingContext) {
	ctx.DrawLine(op.start, op.end)
}

type opPath struct {
	path *Path
}

func (op opPath) name() string { return "draw_path" }
func (op opPath) execute(ctx DrawingContext) {
	ctx.DrawPath(op.path)
}

type opText struct {
	text     string
	position Offset
	size     float64
}

func (op opText) name() string { return "draw_text" }
func (op opText) execute(ctx DrawingContext) {
	ctx.DrawText(op.text, op.position, op.size)
}
