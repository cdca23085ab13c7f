package cmd

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/chartmotion/pkg/canvas"
	"github.com/go-drift/chartmotion/pkg/config"
)

func TestParseRenderArgs(t *testing.T) {
	opts, err := parseRenderArgs([]string{"--scene", "pie", "--width", "320", "--watch", "--trace", "t.json"})
	if err != nil {
		t.Fatalf("parseRenderArgs() error = %v", err)
	}
	if opts.scene != "pie" || opts.width != 320 || opts.height != 360 || !opts.watch || opts.trace != "t.json" {
		t.Errorf("parseRenderArgs() = %+v", opts)
	}

	for _, args := range [][]string{
		{"--width"},
		{"--width", "0"},
		{"--frames", "many"},
		{"--bogus"},
	} {
		if _, err := parseRenderArgs(args); err == nil {
			t.Errorf("parseRenderArgs(%q) error = nil, want error", args)
		}
	}
}

func TestRenderWritesFramesAndTrace(t *testing.T) {
	dir := t.TempDir()
	settings := config.Defaults()
	settings.Animation.Duration = config.Duration(50 * time.Millisecond)
	settings.Animation.Easing = "linear"

	opts := renderOptions{
		scene:  "bars",
		out:    filepath.Join(dir, "frames"),
		width:  64,
		height: 48,
		steps:  1,
		frames: 100,
		trace:  filepath.Join(dir, "trace.json"),
	}
	if err := render(context.Background(), settings, opts); err != nil {
		t.Fatalf("render() error = %v", err)
	}

	matches, err := filepath.Glob(filepath.Join(opts.out, "frame_*.png"))
	if err != nil {
		t.Fatal(err)
	}
	// Frames step by 1/60s; three steps fall just short of 50ms, so the
	// transition completes on the fifth frame.
	if len(matches) != 5 {
		t.Errorf("wrote %d frames, want 5", len(matches))
	}

	data, err := os.ReadFile(opts.trace)
	if err != nil {
		t.Fatal(err)
	}
	var timeline canvas.FrameTimeline
	if err := json.Unmarshal(data, &timeline); err != nil {
		t.Fatalf("trace is not JSON: %v", err)
	}
	if len(timeline.Samples) != len(matches) || timeline.Canvas == "" {
		t.Errorf("timeline = %d samples for canvas %q, want %d", len(timeline.Samples), timeline.Canvas, len(matches))
	}
	if last := timeline.Samples[len(timeline.Samples)-1]; !last.Valid {
		t.Errorf("last sample = %+v, want valid", last)
	}
}

func TestRenderUnknownScene(t *testing.T) {
	opts := renderOptions{scene: "radar", out: t.TempDir(), width: 10, height: 10, frames: 1}
	if err := render(context.Background(), config.Defaults(), opts); err == nil {
		t.Error("render() error = nil, want unknown scene error")
	}
}

func TestCurveBar(t *testing.T) {
	tests := []struct {
		v    float64
		want int
	}{
		{0, 0},
		{0.5, easingBarWidth / 2},
		{1, easingBarWidth},
		{-0.2, 0},
		{10, easingBarWidth + easingBarWidth/4},
	}
	for _, tt := range tests {
		if got := len(curveBar(tt.v)); got != tt.want {
			t.Errorf("len(curveBar(%v)) = %d, want %d", tt.v, got, tt.want)
		}
	}
}

func TestRunUnknownCommand(t *testing.T) {
	if err := run([]string{"explode"}); err == nil {
		t.Error("run(explode) error = nil, want error")
	}
}
