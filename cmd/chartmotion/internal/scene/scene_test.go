package scene

import (
	"math"
	"testing"
	"time"

	"github.com/go-drift/chartmotion/pkg/easing"
	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
	drifttest "github.com/go-drift/chartmotion/pkg/testing"
)

func options() Options {
	return Options{
		Size:       rendering.Size{Width: 400, Height: 300},
		Transition: motion.NewAnimation(easing.Linear, 100*time.Millisecond),
	}
}

func settle(t *testing.T, tester *drifttest.FrameTester) {
	t.Helper()
	if err := tester.PumpAndSettle(2 * time.Second); err != nil {
		t.Fatalf("PumpAndSettle() error = %v", err)
	}
}

func TestNew(t *testing.T) {
	tester := drifttest.NewFrameTester()
	for _, name := range Names() {
		if _, err := New(name, tester.Canvas(), options()); err != nil {
			t.Errorf("New(%q) error = %v", name, err)
		}
	}
	if _, err := New("radar", tester.Canvas(), options()); !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("New(radar) error = %v, want KindInvalidArgument", err)
	}
	if got := Names(); len(got) != 2 || got[0] != "bars" || got[1] != "pie" {
		t.Errorf("Names() = %v, want [bars pie]", got)
	}
}

func TestBarsGrowAndShrink(t *testing.T) {
	tester := drifttest.NewFrameTester()
	tester.SetSize(options().Size)
	bars := NewBars(tester.Canvas(), options())

	if err := bars.Step(0); err != nil {
		t.Fatal(err)
	}
	settle(t, tester)
	if bars.Len() != 5 {
		t.Fatalf("Len() = %d, want 5", bars.Len())
	}
	// The tallest column (9) spans the whole plot height.
	tallest := bars.bars[3].rect
	if got, want := tallest.Height.Get(), bars.baseline()-2*barMargin; math.Abs(got-want) > 1e-9 {
		t.Errorf("tallest Height = %v, want %v", got, want)
	}
	if !bars.bars[0].rect.IsActive(Hover) {
		t.Error("column 0 should be hovered after step 0")
	}

	if err := bars.Step(2); err != nil {
		t.Fatal(err)
	}
	tester.Clock().Advance(50 * time.Millisecond)
	if n := tester.Canvas().CountGeometries(); n != 11 {
		t.Errorf("CountGeometries() mid transition = %d, want 11", n)
	}
	settle(t, tester)
	if bars.Len() != 3 {
		t.Errorf("Len() = %d, want 3", bars.Len())
	}
	// Axis plus a column and a label per value.
	if n := tester.Canvas().CountGeometries(); n != 7 {
		t.Errorf("CountGeometries() = %d, want 7", n)
	}
	if bars.bars[0].rect.IsActive(Hover) || !bars.bars[2].rect.IsActive(Hover) {
		t.Error("hover should move from column 0 to column 2")
	}
	if got := bars.bars[0].rect.Opacity.Get(); got != 1 {
		t.Errorf("column 0 Opacity = %v, want 1 after hover cleared", got)
	}
	if got := bars.bars[2].rect.Opacity.Get(); got != 0.7 {
		t.Errorf("column 2 Opacity = %v, want 0.7", got)
	}
}

func TestBarsLabels(t *testing.T) {
	tester := drifttest.NewFrameTester()
	bars := NewBars(tester.Canvas(), options())
	if err := bars.SetValues([]float64{1.5, 3}); err != nil {
		t.Fatal(err)
	}
	settle(t, tester)

	var texts []string
	for _, d := range tester.LastFrame().Draws() {
		if d.Op == "draw_text" {
			texts = append(texts, d.Text)
		}
	}
	if len(texts) != 2 || texts[0] != "1.5" || texts[1] != "3" {
		t.Errorf("labels = %v, want [1.5 3]", texts)
	}
}

func TestPieSweepsFullCircle(t *testing.T) {
	tester := drifttest.NewFrameTester()
	pie := NewPie(tester.Canvas(), options())

	if err := pie.Step(0); err != nil {
		t.Fatal(err)
	}
	settle(t, tester)
	total := 0.0
	for _, s := range pie.slices {
		total += s.SweepAngle.Get()
	}
	if math.Abs(total-360) > 1e-9 {
		t.Errorf("total sweep = %v, want 360", total)
	}
	if got := pie.slices[0].PushOut.Get(); got != 12 {
		t.Errorf("hovered PushOut = %v, want 12", got)
	}

	if err := pie.Step(2); err != nil {
		t.Fatal(err)
	}
	settle(t, tester)
	if n := tester.Canvas().CountGeometries(); n != 3 {
		t.Errorf("CountGeometries() = %d, want 3", n)
	}
	if got := pie.slices[0].PushOut.Get(); got != 0 {
		t.Errorf("PushOut after hover moved = %v, want 0", got)
	}
	if got := pie.slices[2].PushOut.Get(); got != 12 {
		t.Errorf("hovered PushOut = %v, want 12", got)
	}
}

func TestPalette(t *testing.T) {
	tester := drifttest.NewFrameTester()
	opts := options()
	opts.Palette = []rendering.Color{rendering.ColorRed, rendering.ColorBlue}
	p := newPalette(tester.Canvas(), opts)

	if p.paint(0) != p.paint(2) {
		t.Error("paint(0) and paint(2) should share a color")
	}
	if got := p.paint(1).Color.Get(); got != rendering.ColorBlue {
		t.Errorf("paint(1) color = %v, want blue", got)
	}
	if n := len(tester.Canvas().PaintTasks()); n != 2 {
		t.Errorf("len(PaintTasks()) = %d, want 2", n)
	}
}
