package canvas

import (
	"cmp"
	"slices"
	"time"

	"github.com/google/uuid"

	"github.com/go-drift/chartmotion/pkg/drawing"
	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/logging"
	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

// Option configures a Canvas.
type Option func(*Canvas)

// WithClock sets the frame time source. Defaults to motion.SystemClock.
func WithClock(clock motion.Clock) Option {
	return func(c *Canvas) { c.clock = clock }
}

// WithBackground sets the color each frame is cleared with.
func WithBackground(color rendering.Color) Option {
	return func(c *Canvas) { c.background = color }
}

// WithAnimationsDisabled completes every transition at the start of each
// frame, for first paints and reduced-motion hosts.
func WithAnimationsDisabled(disabled bool) Option {
	return func(c *Canvas) { c.animationsDisabled = disabled }
}

// WithTrace records a sample per frame into buf.
func WithTrace(buf *FrameTraceBuffer) Option {
	return func(c *Canvas) { c.trace = buf }
}

type listener struct {
	id int
	fn func()
}

// Canvas owns the paint tasks of one drawing surface and draws them frame
// by frame.
type Canvas struct {
	id                 uuid.UUID
	clock              motion.Clock
	start              time.Time
	background         rendering.Color
	animationsDisabled bool
	trace              *FrameTraceBuffer

	tasks []drawing.PaintTask
	valid bool
	frame int64

	drawing bool
	redraw  bool

	invalidated    []listener
	validated      []listener
	nextListenerID int
}

// New returns an empty canvas. It starts invalid so the first tick draws.
func New(opts ...Option) *Canvas {
	c := &Canvas{
		id:         uuid.New(),
		clock:      motion.SystemClock{},
		background: rendering.ColorTransparent,
	}
	for _, opt := range opts {
		opt(c)
	}
	c.start = c.clock.Now()
	return c
}

// ID identifies the canvas in logs and traces.
func (c *Canvas) ID() string { return c.id.String() }

// Trace returns the trace buffer, or nil when tracing is off.
func (c *Canvas) Trace() *FrameTraceBuffer { return c.trace }

// Elapsed returns the canvas time since it was created.
func (c *Canvas) Elapsed() time.Duration {
	return c.clock.Now().Sub(c.start)
}

// AnimationsDisabled reports whether transitions are skipped.
func (c *Canvas) AnimationsDisabled() bool { return c.animationsDisabled }

// SetAnimationsDisabled turns transition skipping on or off.
func (c *Canvas) SetAnimationsDisabled(disabled bool) {
	c.animationsDisabled = disabled
	c.Invalidate()
}

// AddPaintTask adds task to the canvas. Adding a task twice has no effect.
func (c *Canvas) AddPaintTask(task drawing.PaintTask) {
	if slices.Contains(c.tasks, task) {
		return
	}
	c.tasks = append(c.tasks, task)
	task.SetInvalidator(c.Invalidate)
	c.Invalidate()
}

// RemovePaintTask removes task and requests a frame so it disappears.
func (c *Canvas) RemovePaintTask(task drawing.PaintTask) {
	if c.detach(task) {
		c.Invalidate()
	}
}

// SetPaintTasks replaces all paint tasks.
func (c *Canvas) SetPaintTasks(tasks ...drawing.PaintTask) {
	for _, task := range c.tasks {
		task.SetInvalidator(nil)
	}
	c.tasks = c.tasks[:0]
	for _, task := range tasks {
		if !slices.Contains(c.tasks, task) {
			c.tasks = append(c.tasks, task)
			task.SetInvalidator(c.Invalidate)
		}
	}
	c.Invalidate()
}

// PaintTasks returns the paint tasks in insertion order.
func (c *Canvas) PaintTasks() []drawing.PaintTask {
	return slices.Clone(c.tasks)
}

// Clear removes every paint task.
func (c *Canvas) Clear() {
	c.SetPaintTasks()
}

// CountGeometries returns the number of geometries the tasks draw here.
func (c *Canvas) CountGeometries() int {
	n := 0
	for _, task := range c.tasks {
		n += len(task.Geometries(c))
	}
	return n
}

func (c *Canvas) detach(task drawing.PaintTask) bool {
	i := slices.Index(c.tasks, task)
	if i < 0 {
		return false
	}
	c.tasks = slices.Delete(c.tasks, i, i+1)
	task.SetInvalidator(nil)
	return true
}

// IsValid reports whether the last frame left every transition settled
// and nothing changed since.
func (c *Canvas) IsValid() bool { return c.valid }

// Invalidate requests another frame and notifies Invalidated listeners.
func (c *Canvas) Invalidate() {
	c.valid = false
	if c.drawing {
		c.redraw = true
	}
	for _, l := range slices.Clone(c.invalidated) {
		l.fn()
	}
}

// OnInvalidated registers fn to run whenever the canvas is invalidated.
// The returned function unregisters it.
func (c *Canvas) OnInvalidated(fn func()) func() {
	return c.subscribe(&c.invalidated, fn)
}

// OnValidated registers fn to run after a frame that left the canvas valid.
// The returned function unregisters it.
func (c *Canvas) OnValidated(fn func()) func() {
	return c.subscribe(&c.validated, fn)
}

func (c *Canvas) subscribe(list *[]listener, fn func()) func() {
	id := c.nextListenerID
	c.nextListenerID++
	*list = append(*list, listener{id: id, fn: fn})
	return func() {
		*list = slices.DeleteFunc(*list, func(l listener) bool { return l.id == id })
	}
}

type geometryRemoval struct {
	task     drawing.PaintTask
	geometry drawing.Drawable
}

// DrawFrame draws one frame into ctx.
//
// Tasks draw in ascending z-index order, ties in insertion order. Each
// task and geometry is evaluated at the same frame time; any of them with
// a registered property still moving leaves the canvas invalid. Objects
// marked remove-on-completed that settled this frame are drawn one last
// time and pruned afterwards. Geometries of a paused task are skipped
// entirely: they are not drawn, evaluated or pruned until it resumes.
//
// An error from ctx.EndDraw leaves the canvas invalid and prunes nothing,
// so the next tick draws the final state again.
func (c *Canvas) DrawFrame(ctx rendering.DrawingContext) error {
	workStart := time.Now()
	now := c.clock.Now()
	c.frame++
	c.drawing = true
	c.redraw = false
	defer func() { c.drawing = false }()

	ctx.BeginDraw()
	ctx.Clear(c.background)

	tasks := slices.Clone(c.tasks)
	slices.SortStableFunc(tasks, func(a, b drawing.PaintTask) int {
		return cmp.Compare(a.ZIndex(), b.ZIndex())
	})

	isValid := true
	drawn := 0
	var removeGeometries []geometryRemoval
	var removeTasks []drawing.PaintTask

	for _, task := range tasks {
		task.BeginFrame(now)
		if c.animationsDisabled {
			task.CompleteTransitions()
		}
		task.Initialize(ctx)

		if !task.IsPaused() {
			for _, g := range task.Geometries(c) {
				g.SetInvalidator(c.Invalidate)
				g.BeginFrame(now)
				if c.animationsDisabled {
					g.CompleteTransitions()
				}
				g.Draw(ctx)
				drawn++
				g.EndFrame()
				settled := g.IsValid() && g.IsCompleted()
				isValid = isValid && settled
				if settled && g.RemoveOnCompleted() {
					removeGeometries = append(removeGeometries, geometryRemoval{task: task, geometry: g})
				}
			}
		}

		task.EndFrame()
		settled := task.IsValid() && task.IsCompleted()
		isValid = isValid && settled
		if settled && task.RemoveOnCompleted() && !task.IsPaused() {
			removeTasks = append(removeTasks, task)
		}
	}

	sample := FrameSample{
		Frame:           c.frame,
		ElapsedMs:       durationToMillis(now.Sub(c.start)),
		Tasks:           len(tasks),
		GeometriesDrawn: drawn,
	}

	if err := ctx.EndDraw(); err != nil {
		c.valid = false
		sample.Failed = true
		c.record(sample, workStart)
		logging.Logger().Warn("frame failed", "canvas", c.ID(), "frame", c.frame, "err", err)
		return errors.Wrap("canvas.DrawFrame", errors.KindRender, err)
	}

	// Completed objects leave only once their final frame reached the
	// target.
	for _, r := range removeGeometries {
		r.task.RemoveGeometry(c, r.geometry)
	}
	for _, task := range removeTasks {
		c.detach(task)
	}
	sample.GeometriesRemoved = len(removeGeometries)
	sample.TasksRemoved = len(removeTasks)

	c.valid = isValid && !c.redraw
	sample.Valid = c.valid
	c.record(sample, workStart)
	logging.Logger().Debug("frame drawn",
		"canvas", c.ID(),
		"frame", c.frame,
		"valid", c.valid,
		"drawn", drawn,
		"removed", len(removeGeometries)+len(removeTasks))

	if c.valid {
		for _, l := range slices.Clone(c.validated) {
			l.fn()
		}
	}
	return nil
}

func (c *Canvas) record(sample FrameSample, workStart time.Time) {
	if c.trace == nil {
		return
	}
	work := time.Since(workStart)
	sample.WorkMs = durationToMillis(work)
	c.trace.Add(sample, work)
}
