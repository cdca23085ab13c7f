// Package scene builds the demo charts rendered by the chartmotion CLI.
package scene

import (
	"slices"
	"strconv"

	"github.com/go-drift/chartmotion/pkg/canvas"
	"github.com/go-drift/chartmotion/pkg/drawing"
	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
	"github.com/go-drift/chartmotion/pkg/visualstates"
)

// Hover is the visual state applied to the highlighted data point.
const Hover = "Hover"

// DefaultPalette colors series when the settings define none.
var DefaultPalette = []rendering.Color{
	rendering.RGB(0x4E, 0x79, 0xA7),
	rendering.RGB(0xF2, 0x8E, 0x2B),
	rendering.RGB(0xE1, 0x57, 0x59),
	rendering.RGB(0x76, 0xB7, 0xB2),
	rendering.RGB(0x59, 0xA1, 0x4F),
	rendering.RGB(0xED, 0xC9, 0x48),
}

// Options configures a scene.
type Options struct {
	Size         rendering.Size
	Transition   *motion.Animation
	Palette      []rendering.Color
	PaintOptions []drawing.PaintOption
}

// Scene is a chart whose data changes step by step.
type Scene interface {
	// Step shows the data of update i, wrapping around Steps.
	Step(i int) error
	// Steps returns the number of distinct updates.
	Steps() int
}

type constructor func(c *canvas.Canvas, opts Options) Scene

var constructors = map[string]constructor{
	"bars": func(c *canvas.Canvas, opts Options) Scene { return NewBars(c, opts) },
	"pie":  func(c *canvas.Canvas, opts Options) Scene { return NewPie(c, opts) },
}

// New builds the scene registered under name on c.
func New(name string, c *canvas.Canvas, opts Options) (Scene, error) {
	build, ok := constructors[name]
	if !ok {
		return nil, errors.New("scene.New", errors.KindInvalidArgument, "unknown scene %q (want one of %v)", name, Names())
	}
	return build(c, opts), nil
}

// Names lists the registered scenes in sorted order.
func Names() []string {
	names := make([]string, 0, len(constructors))
	for name := range constructors {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// palette hands out one paint per color, created on first use.
type palette struct {
	canvas *canvas.Canvas
	colors []rendering.Color
	opts   []drawing.PaintOption
	paints []*drawing.SolidColorPaint
}

func newPalette(c *canvas.Canvas, opts Options) *palette {
	colors := opts.Palette
	if len(colors) == 0 {
		colors = DefaultPalette
	}
	return &palette{canvas: c, colors: colors, opts: opts.PaintOptions}
}

func (p *palette) paint(i int) *drawing.SolidColorPaint {
	i %= len(p.colors)
	for len(p.paints) <= i {
		paint := drawing.NewSolidColorPaint(p.colors[len(p.paints)], p.opts...)
		p.canvas.AddPaintTask(paint)
		p.paints = append(p.paints, paint)
	}
	return p.paints[i]
}

// hoverStates dims the hovered point and pushes it out.
func hoverStates(pushOut bool) *visualstates.Dictionary {
	d := visualstates.NewDictionary()
	setters := []visualstates.Setter{{Property: "Opacity", Value: 0.7}}
	if pushOut {
		setters = append(setters, visualstates.Setter{Property: "PushOut", Value: 12.0})
	}
	d.Add(Hover, setters...)
	return d
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', 4, 64)
}
