package drawing

import (
	"fmt"

	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

// Align positions a label relative to its anchor point.
type Align int

const (
	AlignStart  Align = iota // Anchor at the left or top edge
	AlignMiddle              // Anchor at the center
	AlignEnd                 // Anchor at the right or bottom edge
)

// String returns a human-readable representation of the alignment.
func (a Align) String() string {
	switch a {
	case AlignStart:
		return "start"
	case AlignMiddle:
		return "middle"
	case AlignEnd:
		return "end"
	default:
		return fmt.Sprintf("Align(%d)", int(a))
	}
}

// Label draws text anchored at (X, Y). The text itself does not
// interpolate; it switches to the new string when its transition ends.
type Label struct {
	Geometry
	Text     *motion.MotionProperty[string]
	TextSize *motion.MotionProperty[float64]

	Padding         float64
	HorizontalAlign Align
	VerticalAlign   Align
}

// NewLabel returns an empty 12px label anchored at its top-left corner.
func NewLabel() *Label {
	l := &Label{}
	l.init(l)
	l.Text = motion.Register(&l.Animatable, "Text", "", motion.Snap[string])
	l.TextSize = motion.Register(&l.Animatable, "TextSize", 12.0, motion.LerpFloat)
	return l
}

func (l *Label) bounds(ctx rendering.DrawingContext) rendering.Rect {
	extent := ctx.MeasureText(l.Text.Get(), l.TextSize.Get())
	w := extent.Width + 2*l.Padding
	h := extent.Height + 2*l.Padding
	return rendering.RectFromLTWH(
		alignedStart(l.X.Get(), w, l.HorizontalAlign),
		alignedStart(l.Y.Get(), h, l.VerticalAlign),
		w, h,
	)
}

func (l *Label) drawShape(ctx rendering.DrawingContext) {
	text := l.Text.Get()
	if text == "" {
		return
	}
	b := l.bounds(ctx)
	ctx.DrawText(text, rendering.Offset{X: b.Left + l.Padding, Y: b.Top + l.Padding}, l.TextSize.Get())
}

func alignedStart(anchor, extent float64, align Align) float64 {
	switch align {
	case AlignMiddle:
		return anchor - extent/2
	case AlignEnd:
		return anchor - extent
	default:
		return anchor
	}
}
