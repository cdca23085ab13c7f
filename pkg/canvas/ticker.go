package canvas

import (
	"context"
	"time"

	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/logging"
)

// DefaultMaxFPS caps RunUntilValid when NewTicker gets a non-positive rate.
const DefaultMaxFPS = 60

// maxConsecutiveFailures bounds how many failed frames in a row
// RunUntilValid tolerates before giving up.
const maxConsecutiveFailures = 3

// DrawFunc draws one frame of c, usually by preparing a drawing context
// and calling c.DrawFrame.
type DrawFunc func(c *Canvas) error

// Ticker requests frames from a canvas on behalf of a host.
//
// Hosts with their own vsync call Step from the callback. Hosts without
// one call RunUntilValid, which polls at the configured frame rate until
// the canvas settles. Attach subscribes to the canvas so Pending reports
// work queued by Invalidate between frames.
type Ticker struct {
	canvas   *Canvas
	draw     DrawFunc
	interval time.Duration
	pending  bool
	detach   func()
	frames   int
}

// NewTicker returns a ticker drawing c through draw at most maxFPS times
// per second.
func NewTicker(c *Canvas, maxFPS int, draw DrawFunc) *Ticker {
	if maxFPS <= 0 {
		maxFPS = DefaultMaxFPS
	}
	return &Ticker{
		canvas:   c,
		draw:     draw,
		interval: time.Second / time.Duration(maxFPS),
	}
}

// Interval returns the minimum time between frames.
func (t *Ticker) Interval() time.Duration { return t.interval }

// Frames returns the number of frames drawn so far.
func (t *Ticker) Frames() int { return t.frames }

// Attach subscribes to the canvas Invalidated event. It is idempotent.
func (t *Ticker) Attach() {
	if t.detach != nil {
		return
	}
	t.detach = t.canvas.OnInvalidated(func() { t.pending = true })
	logging.Logger().Debug("ticker attached", "canvas", t.canvas.ID(), "interval", t.interval)
}

// Detach undoes Attach.
func (t *Ticker) Detach() {
	if t.detach == nil {
		return
	}
	t.detach()
	t.detach = nil
	logging.Logger().Debug("ticker detached", "canvas", t.canvas.ID(), "frames", t.frames)
}

// Pending reports whether the canvas needs another frame.
func (t *Ticker) Pending() bool {
	return t.pending || !t.canvas.IsValid()
}

// Step draws a frame if one is pending. It returns whether a frame was
// drawn and the error the draw function returned.
func (t *Ticker) Step() (bool, error) {
	if !t.Pending() {
		return false, nil
	}
	t.pending = false
	t.frames++
	return true, t.draw(t.canvas)
}

// RunUntilValid draws frames until the canvas is valid, ctx is done, or
// several frames in a row fail. A failed frame is reported and retried on
// the next tick.
func (t *Ticker) RunUntilValid(ctx context.Context) error {
	const op = "canvas.RunUntilValid"
	failures := 0
	step := func() error {
		if _, err := t.Step(); err != nil {
			failures++
			errors.ReportError(op, err)
			if failures >= maxConsecutiveFailures {
				return errors.Wrap(op, errors.KindRender, err)
			}
			return nil
		}
		failures = 0
		return nil
	}

	if err := step(); err != nil {
		return err
	}
	if !t.Pending() {
		return nil
	}

	clock := time.NewTicker(t.interval)
	defer clock.Stop()
	for t.Pending() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.C:
		}
		if err := step(); err != nil {
			return err
		}
	}
	return nil
}
