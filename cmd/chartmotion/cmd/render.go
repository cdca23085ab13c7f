package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"syscall"
	"time"

	"github.com/go-drift/chartmotion/cmd/chartmotion/internal/scene"
	"github.com/go-drift/chartmotion/pkg/canvas"
	"github.com/go-drift/chartmotion/pkg/config"
	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/logging"
	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
	"github.com/go-drift/chartmotion/pkg/rendering/ggcanvas"
)

func init() {
	RegisterCommand(&Command{
		Name:  "render",
		Short: "Render a demo chart to PNG frames",
		Long: `Render a demo chart frame by frame.

The scene steps through several data updates. Each update starts new
transitions, and frames are written until the chart settles again.
Animation, colors and frame rate come from chartmotion.yaml in the
current directory, or from the file given with --config.

Flags:
  --scene NAME       Scene to render: bars or pie (default: bars)
  --out DIR          Output directory for frame_NNNN.png (default: frames)
  --width PX         Surface width (default: 640)
  --height PX        Surface height (default: 360)
  --steps N          Number of data updates (default: one per dataset)
  --frames N         Frame limit per update (default: 600)
  --trace FILE       Write the frame timeline as JSON
  --config FILE      Settings file (default: ./chartmotion.yaml if present)
  --watch            Render again whenever the settings file changes
  --realtime         Pace frames with the wall clock instead of stepping time`,
		Usage: "chartmotion render [--scene NAME] [--out DIR] [--width PX] [--height PX] [--steps N] [--frames N] [--trace FILE] [--config FILE] [--watch] [--realtime]",
		Run:   runRender,
	})
}

type renderOptions struct {
	scene    string
	out      string
	width    int
	height   int
	steps    int
	frames   int
	trace    string
	config   string
	watch    bool
	realtime bool
}

func parseRenderArgs(args []string) (renderOptions, error) {
	opts := renderOptions{
		scene:  "bars",
		out:    "frames",
		width:  640,
		height: 360,
		frames: 600,
	}
	value := func(i int) (string, error) {
		if i+1 >= len(args) {
			return "", fmt.Errorf("%s requires a value", args[i])
		}
		return args[i+1], nil
	}
	number := func(i int) (int, error) {
		v, err := value(i)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, fmt.Errorf("%s requires a positive number, got %q", args[i], v)
		}
		return n, nil
	}

	for i := 0; i < len(args); i++ {
		var err error
		switch args[i] {
		case "--scene":
			opts.scene, err = value(i)
			i++
		case "--out":
			opts.out, err = value(i)
			i++
		case "--trace":
			opts.trace, err = value(i)
			i++
		case "--config":
			opts.config, err = value(i)
			i++
		case "--width":
			opts.width, err = number(i)
			i++
		case "--height":
			opts.height, err = number(i)
			i++
		case "--steps":
			opts.steps, err = number(i)
			i++
		case "--frames":
			opts.frames, err = number(i)
			i++
		case "--watch":
			opts.watch = true
		case "--realtime":
			opts.realtime = true
		default:
			err = fmt.Errorf("unknown flag %q", args[i])
		}
		if err != nil {
			return opts, err
		}
	}
	return opts, nil
}

func runRender(args []string) error {
	opts, err := parseRenderArgs(args)
	if err != nil {
		return err
	}

	settingsPath := opts.config
	var settings *config.Settings
	if settingsPath != "" {
		settings, err = config.Load(settingsPath)
	} else {
		settingsPath = config.FileName
		settings, err = config.LoadOptional(".")
	}
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := render(ctx, settings, opts); err != nil {
		return err
	}
	if !opts.watch {
		return nil
	}

	fmt.Printf("Watching %s for changes (Ctrl+C to stop)...\n", settingsPath)
	return config.Watch(ctx, settingsPath, func(s *config.Settings, err error) {
		if err != nil {
			return
		}
		if err := render(ctx, s, opts); err != nil {
			errors.ReportError("render", err)
		}
	})
}

// steppedClock advances by one frame interval per drawn frame, so the
// output does not depend on how fast frames are encoded.
type steppedClock struct {
	now      time.Time
	interval time.Duration
}

func (c *steppedClock) Now() time.Time { return c.now }
func (c *steppedClock) advance()       { c.now = c.now.Add(c.interval) }

func render(ctx context.Context, settings *config.Settings, opts renderOptions) error {
	surface, err := ggcanvas.New(opts.width, opts.height)
	if err != nil {
		return err
	}
	defer surface.Close()

	canvasOpts, err := settings.CanvasOptions()
	if err != nil {
		return err
	}
	if opts.trace != "" && settings.Canvas.Trace == nil {
		canvasOpts = append(canvasOpts, canvas.WithTrace(canvas.NewFrameTraceBuffer(0, 0)))
	}
	var stepped *steppedClock
	var clock motion.Clock = motion.SystemClock{}
	if !opts.realtime {
		stepped = &steppedClock{now: time.Now(), interval: time.Second / time.Duration(settings.MaxFPS())}
		clock = stepped
	}
	c := canvas.New(append(canvasOpts, canvas.WithClock(clock))...)

	transition, err := settings.Transition()
	if err != nil {
		return err
	}
	palette, err := settings.PaletteColors()
	if err != nil {
		return err
	}
	sc, err := scene.New(opts.scene, c, scene.Options{
		Size:         rendering.Size{Width: float64(opts.width), Height: float64(opts.height)},
		Transition:   transition,
		Palette:      palette,
		PaintOptions: settings.PaintOptions(),
	})
	if err != nil {
		return err
	}

	if err := os.MkdirAll(opts.out, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	frames := 0
	ticker := canvas.NewTicker(c, settings.MaxFPS(), func(c *canvas.Canvas) error {
		if err := c.DrawFrame(surface); err != nil {
			return err
		}
		if stepped != nil {
			stepped.advance()
		}
		frames++
		return surface.SavePNG(filepath.Join(opts.out, fmt.Sprintf("frame_%04d.png", frames)))
	})
	ticker.Attach()
	defer ticker.Detach()

	steps := opts.steps
	if steps == 0 {
		steps = sc.Steps()
	}
	for step := range steps {
		if err := sc.Step(step); err != nil {
			return err
		}
		if opts.realtime {
			if err := ticker.RunUntilValid(ctx); err != nil {
				return err
			}
			continue
		}
		for n := 0; ticker.Pending(); n++ {
			if err := ctx.Err(); err != nil {
				return err
			}
			if n == opts.frames {
				logging.Logger().Warn("scene did not settle", "step", step, "frames", n)
				break
			}
			if _, err := ticker.Step(); err != nil {
				return err
			}
		}
	}
	fmt.Printf("Rendered %d frames of %q to %s\n", frames, opts.scene, opts.out)

	if opts.trace != "" {
		return writeTrace(opts.trace, c)
	}
	return nil
}

func writeTrace(path string, c *canvas.Canvas) error {
	timeline := c.Trace().Snapshot()
	timeline.Canvas = c.ID()
	data, err := json.MarshalIndent(timeline, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("failed to write trace: %w", err)
	}
	fmt.Printf("Wrote %d frame samples to %s (%d slow)\n", len(timeline.Samples), path, timeline.SlowFrames)
	return nil
}
