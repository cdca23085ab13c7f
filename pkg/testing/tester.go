package testing

import (
	"errors"
	"time"

	"github.com/go-drift/chartmotion/pkg/canvas"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

const (
	// DefaultTestWidth is the default width of the test surface.
	DefaultTestWidth = 800
	// DefaultTestHeight is the default height of the test surface.
	DefaultTestHeight = 600
	// DefaultFrameInterval is how far PumpAndSettle advances the clock
	// between frames.
	DefaultFrameInterval = 16 * time.Millisecond
)

// ErrSettleTimeout is returned when PumpAndSettle exceeds its timeout.
var ErrSettleTimeout = errors.New("PumpAndSettle timed out: canvas did not settle")

// FrameTester drives a canvas with a fake clock and records every frame
// into a display list instead of a real surface.
type FrameTester struct {
	canvas   *canvas.Canvas
	clock    *FakeClock
	size     rendering.Size
	recorder rendering.PictureRecorder
	last     *rendering.DisplayList
	frames   int
}

// NewFrameTester creates a tester around a fresh canvas. Options are
// applied after the fake clock, so a test may still replace it.
func NewFrameTester(opts ...canvas.Option) *FrameTester {
	clk := NewFakeClock()
	opts = append([]canvas.Option{canvas.WithClock(clk)}, opts...)
	return &FrameTester{
		canvas: canvas.New(opts...),
		clock:  clk,
		size:   rendering.Size{Width: DefaultTestWidth, Height: DefaultTestHeight},
	}
}

// SetSize sets the recording surface size.
func (t *FrameTester) SetSize(size rendering.Size) {
	t.size = size
}

// Canvas returns the canvas under test.
func (t *FrameTester) Canvas() *canvas.Canvas {
	return t.canvas
}

// Clock returns the fake clock for advancing time in tests.
func (t *FrameTester) Clock() *FakeClock {
	return t.clock
}

// Frames returns the number of frames pumped so far.
func (t *FrameTester) Frames() int {
	return t.frames
}

// LastFrame returns the display list of the most recent frame, or nil
// before the first Pump.
func (t *FrameTester) LastFrame() *rendering.DisplayList {
	return t.last
}

// Pump draws one frame at the current clock time and returns its display
// list.
func (t *FrameTester) Pump() (*rendering.DisplayList, error) {
	ctx := t.recorder.BeginRecording(t.size)
	err := t.canvas.DrawFrame(ctx)
	t.last = t.recorder.EndRecording()
	t.frames++
	return t.last, err
}

// PumpAndSettle draws frames until the canvas is valid or the timeout is
// reached. The clock advances by DefaultFrameInterval after every frame
// that leaves the canvas invalid. It returns ErrSettleTimeout if the
// canvas does not settle within timeout.
func (t *FrameTester) PumpAndSettle(timeout time.Duration) error {
	var elapsed time.Duration
	for elapsed <= timeout {
		if _, err := t.Pump(); err != nil {
			return err
		}
		if t.canvas.IsValid() {
			return nil
		}
		t.clock.Advance(DefaultFrameInterval)
		elapsed += DefaultFrameInterval
	}
	return ErrSettleTimeout
}

// PumpFor draws frames every DefaultFrameInterval for d, whether or not
// the canvas settles, and returns the last display list.
func (t *FrameTester) PumpFor(d time.Duration) (*rendering.DisplayList, error) {
	for elapsed := time.Duration(0); ; elapsed += DefaultFrameInterval {
		dl, err := t.Pump()
		if err != nil || elapsed >= d {
			return dl, err
		}
		t.clock.Advance(DefaultFrameInterval)
	}
}
