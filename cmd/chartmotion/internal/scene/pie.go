package scene

import (
	"github.com/go-drift/chartmotion/pkg/canvas"
	"github.com/go-drift/chartmotion/pkg/drawing"
	"github.com/go-drift/chartmotion/pkg/visualstates"
)

var pieData = [][]float64{
	{3, 5, 2, 4},
	{1, 1, 1, 1},
	{6, 2, 3},
	{2, 4, 1, 3, 5},
}

const (
	pieStartAngle = -90.0
	pieHole       = 0.45
)

// Pie is a doughnut chart. Slices sweep in from the top, re-divide the
// ring on every step and collapse when the data has fewer points.
type Pie struct {
	canvas  *canvas.Canvas
	opts    Options
	colors  *palette
	states  *visualstates.Dictionary
	slices  []*drawing.Doughnut
	hovered *drawing.Doughnut
}

// NewPie builds an empty doughnut chart on c.
func NewPie(c *canvas.Canvas, opts Options) *Pie {
	return &Pie{
		canvas: c,
		opts:   opts,
		colors: newPalette(c, opts),
		states: hoverStates(true),
	}
}

// Steps implements Scene.
func (p *Pie) Steps() int { return len(pieData) }

// Step implements Scene.
func (p *Pie) Step(i int) error {
	values := pieData[i%len(pieData)]
	if err := p.SetValues(values); err != nil {
		return err
	}
	return p.HoverIndex(i % len(values))
}

func (p *Pie) diameter() float64 {
	return min(p.opts.Size.Width, p.opts.Size.Height) - 2*barMargin
}

// SetValues animates the slices to values.
func (p *Pie) SetValues(values []float64) error {
	total := 0.0
	for _, v := range values {
		total += v
	}
	start := pieStartAngle
	for i, v := range values {
		if i == len(p.slices) {
			p.slices = append(p.slices, p.newSlice(i, start))
		}
		sweep := 0.0
		if total > 0 {
			sweep = v / total * 360
		}
		s := p.slices[i]
		s.StartAngle.Set(start)
		s.SweepAngle.Set(sweep)
		start += sweep
	}

	for _, s := range p.slices[len(values):] {
		if p.hovered == s {
			p.hovered = nil
		}
		s.StartAngle.Set(pieStartAngle + 360)
		s.SweepAngle.Set(0)
		s.SetRemoveOnCompleted(true)
	}
	p.slices = p.slices[:len(values)]
	return nil
}

func (p *Pie) newSlice(i int, start float64) *drawing.Doughnut {
	s := drawing.NewDoughnut()
	d := p.diameter()
	s.CenterX.Set(p.opts.Size.Width / 2)
	s.CenterY.Set(p.opts.Size.Height / 2)
	s.Width.Set(d)
	s.Height.Set(d)
	s.InnerRadius.Set(d / 2 * pieHole)
	s.StartAngle.Set(start)
	s.CompleteTransitions()
	if t := p.opts.Transition; t != nil {
		s.SetTransition(t)
	}
	p.colors.paint(i).AddGeometry(p.canvas, s)
	return s
}

// HoverIndex moves the Hover state to slice i.
func (p *Pie) HoverIndex(i int) error {
	if p.hovered != nil {
		if err := p.states.ClearState(Hover, p.hovered); err != nil {
			return err
		}
		p.hovered = nil
	}
	if i < 0 || i >= len(p.slices) {
		return nil
	}
	p.hovered = p.slices[i]
	return p.states.SetState(Hover, p.hovered)
}

// Len returns the number of live slices.
func (p *Pie) Len() int { return len(p.slices) }
