package testing

import (
	"fmt"
	"math"

	"github.com/go-drift/chartmotion/pkg/rendering"
)

// DisplayOp represents a serialized drawing operation.
type DisplayOp struct {
	Op     string         `json:"op"`
	Params map[string]any `json:"params,omitempty"`
}

// serializingContext implements rendering.DrawingContext and records ops
// as DisplayOp.
type serializingContext struct {
	ops  []DisplayOp
	size rendering.Size
}

func (c *serializingContext) BeginDraw()     {}
func (c *serializingContext) EndDraw() error { return nil }

func (c *serializingContext) Clear(color rendering.Color) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "clear",
		Params: sortedMap("color", serializeColor(color)),
	})
}

func (c *serializingContext) SelectPaint(paint rendering.Paint) {
	params := sortedMap(
		"color", serializeColor(paint.Color),
		"style", paint.Style.String(),
	)
	if paint.Style.Strokes() {
		params["strokeWidth"] = round2(paint.StrokeWidth)
	}
	if paint.Dash != nil {
		params["dash"] = paint.Dash.Intervals
	}
	c.ops = append(c.ops, DisplayOp{Op: "selectPaint", Params: params})
}

func (c *serializingContext) Save() {
	c.ops = append(c.ops, DisplayOp{Op: "save"})
}

func (c *serializingContext) Restore() {
	c.ops = append(c.ops, DisplayOp{Op: "restore"})
}

func (c *serializingContext) Translate(dx, dy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "translate",
		Params: sortedMap("dx", round2(dx), "dy", round2(dy)),
	})
}

func (c *serializingContext) Rotate(radians float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "rotate",
		Params: sortedMap("radians", round2(radians)),
	})
}

func (c *serializingContext) Scale(sx, sy float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "scale",
		Params: sortedMap("sx", round2(sx), "sy", round2(sy)),
	})
}

func (c *serializingContext) Concat(m rendering.Matrix) {
	c.ops = append(c.ops, DisplayOp{
		Op: "concat",
		Params: sortedMap("matrix", []float64{
			round2(m.A), round2(m.B), round2(m.C),
			round2(m.D), round2(m.E), round2(m.F),
		}),
	})
}

func (c *serializingContext) SetOpacity(opacity float64) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "setOpacity",
		Params: sortedMap("opacity", round2(opacity)),
	})
}

func (c *serializingContext) DrawRect(rect rendering.Rect) {
	c.ops = append(c.ops, DisplayOp{
		Op:     "drawRect",
		Params: sortedMap("rect", serializeRect(rect)),
	})
}

func (c *serializingContext) DrawRRect(rrect rendering.RRect) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawRRect",
		Params: sortedMap(
			"rect", serializeRect(rrect.Rect),
			"radius", sortedMap("x", round2(rrect.Radius.X), "y", round2(rrect.Radius.Y)),
		),
	})
}

func (c *serializingContext) DrawCircle(center rendering.Offset, radius float64) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawCircle",
		Params: sortedMap(
			"cx", round2(center.X),
			"cy", round2(center.Y),
			"radius", round2(radius),
		),
	})
}

func (c *serializingContext) DrawLine(start, end rendering.Offset) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawLine",
		Params: sortedMap(
			"x1", round2(start.X), "y1", round2(start.Y),
			"x2", round2(end.X), "y2", round2(end.Y),
		),
	})
}

func (c *serializingContext) DrawPath(path *rendering.Path) {
	commands := make([]string, 0, len(path.Commands))
	for _, cmd := range path.Commands {
		args := make([]float64, len(cmd.Args))
		for i, a := range cmd.Args {
			args[i] = round2(a)
		}
		if len(args) == 0 {
			commands = append(commands, cmd.Op.String())
			continue
		}
		commands = append(commands, fmt.Sprintf("%s%v", cmd.Op, args))
	}
	c.ops = append(c.ops, DisplayOp{
		Op: "drawPath",
		Params: sortedMap(
			"commands", commands,
			"fillRule", path.FillRule.String(),
		),
	})
}

func (c *serializingContext) DrawText(text string, position rendering.Offset, size float64) {
	c.ops = append(c.ops, DisplayOp{
		Op: "drawText",
		Params: sortedMap(
			"text", text,
			"x", round2(position.X),
			"y", round2(position.Y),
			"size", round2(size),
		),
	})
}

func (c *serializingContext) MeasureText(text string, size float64) rendering.Size {
	return rendering.Size{Width: 0.6 * size * float64(len([]rune(text))), Height: size}
}

func (c *serializingContext) Size() rendering.Size {
	return c.size
}

// serializeDisplayList replays a DisplayList through the serializing context.
func serializeDisplayList(dl *rendering.DisplayList) []DisplayOp {
	ctx := &serializingContext{size: dl.Size()}
	dl.Paint(ctx)
	return ctx.ops
}

// --- Serialization helpers ---

func serializeRect(r rendering.Rect) map[string]any {
	return sortedMap(
		"left", round2(r.Left),
		"top", round2(r.Top),
		"right", round2(r.Right),
		"bottom", round2(r.Bottom),
	)
}

func serializeColor(c rendering.Color) string {
	return fmt.Sprintf("0x%08X", uint32(c))
}

// round2 rounds a float64 to 2 decimal places.
func round2(f float64) float64 {
	return math.Round(f*100) / 100
}

// sortedMap creates a map from alternating key-value pairs. JSON
// marshaling sorts the keys, so snapshots are stable.
func sortedMap(kvs ...any) map[string]any {
	m := make(map[string]any, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		m[kvs[i].(string)] = kvs[i+1]
	}
	return m
}
