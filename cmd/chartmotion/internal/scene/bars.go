package scene

import (
	"github.com/go-drift/chartmotion/pkg/canvas"
	"github.com/go-drift/chartmotion/pkg/drawing"
	"github.com/go-drift/chartmotion/pkg/rendering"
	"github.com/go-drift/chartmotion/pkg/visualstates"
)

var barData = [][]float64{
	{4, 7, 3, 9, 5},
	{6, 2, 8, 4, 7},
	{3, 9, 5},
	{5, 6, 4, 8, 2, 7},
}

const (
	barMargin = 24.0
	barGap    = 0.2
)

type bar struct {
	rect  *drawing.Rectangle
	label *drawing.Label
	paint *drawing.SolidColorPaint
}

// Bars is a column chart. Columns grow from the baseline, resize on every
// step and shrink away when the data has fewer points.
type Bars struct {
	canvas  *canvas.Canvas
	opts    Options
	colors  *palette
	text    *drawing.SolidColorPaint
	axis    *drawing.SolidColorPaint
	states  *visualstates.Dictionary
	bars    []*bar
	hovered *bar
}

// NewBars builds an empty column chart on c.
func NewBars(c *canvas.Canvas, opts Options) *Bars {
	b := &Bars{
		canvas: c,
		opts:   opts,
		colors: newPalette(c, opts),
		text:   drawing.NewSolidColorPaint(rendering.RGB(0x33, 0x33, 0x33), drawing.WithZIndex(2)),
		axis: drawing.NewSolidColorPaint(rendering.RGB(0x99, 0x99, 0x99),
			drawing.WithStyle(rendering.PaintStyleStroke), drawing.WithZIndex(1)),
		states: hoverStates(false),
	}
	c.AddPaintTask(b.text)
	c.AddPaintTask(b.axis)

	axis := drawing.NewLine()
	axis.X.Set(barMargin)
	axis.Y.Set(b.baseline())
	axis.X1.Set(opts.Size.Width - barMargin)
	axis.Y1.Set(b.baseline())
	b.axis.AddGeometry(c, axis)
	return b
}

// Steps implements Scene.
func (b *Bars) Steps() int { return len(barData) }

// Step implements Scene.
func (b *Bars) Step(i int) error {
	values := barData[i%len(barData)]
	if err := b.SetValues(values); err != nil {
		return err
	}
	return b.HoverIndex(i % len(values))
}

func (b *Bars) baseline() float64 { return b.opts.Size.Height - barMargin }

// SetValues animates the columns to values.
func (b *Bars) SetValues(values []float64) error {
	peak := 0.0
	for _, v := range values {
		peak = max(peak, v)
	}
	plotHeight := b.baseline() - 2*barMargin
	slot := (b.opts.Size.Width - 2*barMargin) / float64(len(values))

	for i, v := range values {
		x := barMargin + float64(i)*slot + slot*barGap/2
		w := slot * (1 - barGap)
		if i == len(b.bars) {
			b.bars = append(b.bars, b.newBar(i, x, w))
		}
		br := b.bars[i]
		h := 0.0
		if peak > 0 {
			h = v / peak * plotHeight
		}
		br.rect.X.Set(x)
		br.rect.Width.Set(w)
		br.rect.Y.Set(b.baseline() - h)
		br.rect.Height.Set(h)
		br.label.X.Set(x + w/2)
		br.label.Y.Set(b.baseline() - h - 4)
		br.label.Text.Set(formatValue(v))
	}

	for _, br := range b.bars[len(values):] {
		b.retire(br)
	}
	b.bars = b.bars[:len(values)]
	return nil
}

func (b *Bars) newBar(i int, x, w float64) *bar {
	br := &bar{rect: drawing.NewRectangle(), label: drawing.NewLabel(), paint: b.colors.paint(i)}
	br.rect.X.Set(x)
	br.rect.Width.Set(w)
	br.rect.Y.Set(b.baseline())
	br.label.HorizontalAlign = drawing.AlignMiddle
	br.label.VerticalAlign = drawing.AlignEnd
	br.label.X.Set(x + w/2)
	br.label.Y.Set(b.baseline())

	// Start from the initial layout, then animate every later change.
	br.rect.CompleteTransitions()
	br.label.CompleteTransitions()
	if t := b.opts.Transition; t != nil {
		br.rect.SetTransition(t)
		br.label.SetTransition(t, "X", "Y", "Opacity")
	}
	br.paint.AddGeometry(b.canvas, br.rect)
	b.text.AddGeometry(b.canvas, br.label)
	return br
}

// retire shrinks a column into the baseline; the canvas drops it once the
// transition ends.
func (b *Bars) retire(br *bar) {
	if b.hovered == br {
		b.hovered = nil
	}
	br.rect.Y.Set(b.baseline())
	br.rect.Height.Set(0)
	br.rect.SetRemoveOnCompleted(true)
	br.label.Opacity.Set(0)
	br.label.SetRemoveOnCompleted(true)
}

// HoverIndex moves the Hover state to column i.
func (b *Bars) HoverIndex(i int) error {
	if b.hovered != nil {
		if err := b.states.ClearState(Hover, b.hovered.rect); err != nil {
			return err
		}
		b.hovered = nil
	}
	if i < 0 || i >= len(b.bars) {
		return nil
	}
	b.hovered = b.bars[i]
	return b.states.SetState(Hover, b.hovered.rect)
}

// Len returns the number of live columns.
func (b *Bars) Len() int { return len(b.bars) }
