package config

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/go-drift/chartmotion/pkg/canvas"
	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

func TestParseOverridesDefaults(t *testing.T) {
	s, err := Parse([]byte(`
version: "1.0"
animation:
  duration: 250ms
  easing: bounce_out
canvas:
  background: white
  colorLerp: lab
  maxFPS: 30
palette: ["#f00", steelblue, "#00000080"]
`))
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if got := time.Duration(s.Animation.Duration); got != 250*time.Millisecond {
		t.Errorf("Duration = %v, want 250ms", got)
	}
	if s.Animation.Repeat != 1 {
		t.Errorf("Repeat = %d, want default 1", s.Animation.Repeat)
	}
	if s.MaxFPS() != 30 {
		t.Errorf("MaxFPS() = %d, want 30", s.MaxFPS())
	}
	bg, err := s.Background()
	if err != nil || bg != rendering.ColorWhite {
		t.Errorf("Background() = %v, %v, want %v", bg, err, rendering.ColorWhite)
	}
	colors, err := s.PaletteColors()
	if err != nil {
		t.Fatalf("PaletteColors() error = %v", err)
	}
	want := []rendering.Color{rendering.ColorRed, rendering.RGB(70, 130, 180), rendering.RGBA(0, 0, 0, 0x80)}
	for i := range want {
		if colors[i] != want[i] {
			t.Errorf("colors[%d] = %v, want %v", i, colors[i], want[i])
		}
	}
}

func TestParseEmptyUsesDefaults(t *testing.T) {
	s, err := Parse(nil)
	if err != nil {
		t.Fatalf("Parse(nil) error = %v", err)
	}
	anim, err := s.Transition()
	if err != nil {
		t.Fatalf("Transition() error = %v", err)
	}
	if anim.Duration != DefaultDuration {
		t.Errorf("Duration = %v, want %v", anim.Duration, DefaultDuration)
	}
	if got := anim.Easing(0.5); got <= 0.5 {
		t.Errorf("Easing(0.5) = %v, want an ease-out above 0.5", got)
	}
	if s.MaxFPS() != DefaultMaxFPS {
		t.Errorf("MaxFPS() = %d, want %d", s.MaxFPS(), DefaultMaxFPS)
	}
	bg, _ := s.Background()
	if bg != rendering.ColorTransparent {
		t.Errorf("Background() = %v, want transparent", bg)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"unknown key", "colour: red"},
		{"bad duration", "animation: {duration: soon}"},
		{"negative duration", "animation: {duration: -1s}"},
		{"unknown easing", "animation: {easing: wobble}"},
		{"bad repeat", "animation: {repeat: -2}"},
		{"bad background", "canvas: {background: '#12345'}"},
		{"unknown color", "canvas: {background: notacolor}"},
		{"bad lerp", "canvas: {colorLerp: hsv}"},
		{"newer major", "version: 2.0.0"},
		{"newer minor", "version: 1.1.0"},
		{"not semver", "version: latest"},
		{"bad palette", "palette: [red, '#xyz']"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			if !errors.IsKind(err, errors.KindConfig) {
				t.Errorf("Parse(%q) error = %v, want KindConfig", tt.yaml, err)
			}
		})
	}
}

func TestValidateReportsAllProblems(t *testing.T) {
	s := Defaults()
	s.Animation.Easing = "nope"
	s.Canvas.MaxFPS = -1
	err := s.Validate()
	if err == nil {
		t.Fatal("Validate() = nil, want error")
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok || len(joined.Unwrap()) != 2 {
		t.Errorf("Validate() = %v, want two joined errors", err)
	}
}

func TestTransitionRepeat(t *testing.T) {
	s := Defaults()
	s.Animation.Repeat = -1
	anim, err := s.Transition()
	if err != nil {
		t.Fatal(err)
	}
	if anim.Repeat != motion.RepeatForever {
		t.Errorf("Repeat = %d, want RepeatForever", anim.Repeat)
	}
}

func TestCanvasOptions(t *testing.T) {
	s := Defaults()
	s.Canvas.Trace = &TraceConfig{Capacity: 8}
	s.Canvas.AnimationsDisabled = true
	opts, err := s.CanvasOptions()
	if err != nil {
		t.Fatal(err)
	}
	c := canvas.New(opts...)
	if !c.AnimationsDisabled() {
		t.Error("AnimationsDisabled() = false, want true")
	}
	if c.Trace() == nil || c.Trace().Capacity() != 8 {
		t.Errorf("Trace() = %v, want capacity 8", c.Trace())
	}
}

func TestLoadOptional(t *testing.T) {
	dir := t.TempDir()
	s, err := LoadOptional(dir)
	if err != nil {
		t.Fatalf("LoadOptional(empty) error = %v", err)
	}
	if s.Animation.Easing != DefaultEasing {
		t.Errorf("Easing = %q, want %q", s.Animation.Easing, DefaultEasing)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("animation: {easing: linear}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	s, err = LoadOptional(dir)
	if err != nil || s.Animation.Easing != "linear" {
		t.Errorf("LoadOptional() = %+v, %v, want linear easing", s, err)
	}

	if err := os.WriteFile(filepath.Join(dir, FileName), []byte("animation: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOptional(dir); !errors.IsKind(err, errors.KindConfig) {
		t.Errorf("LoadOptional(broken) error = %v, want KindConfig", err)
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	s := Defaults()
	s.Canvas.Background = "#102030"
	data, err := s.Marshal()
	if err != nil {
		t.Fatal(err)
	}
	back, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) error = %v\n%s", err, data)
	}
	if back.Animation.Duration != s.Animation.Duration || back.Canvas.Background != s.Canvas.Background {
		t.Errorf("round trip = %+v, want %+v", back, s)
	}
}

func TestWatchReloads(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, FileName)
	if err := os.WriteFile(path, []byte("animation: {easing: linear}\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	reloaded := make(chan *Settings, 16)
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, path, func(s *Settings, err error) {
			if err == nil {
				reloaded <- s
			}
		})
	}()

	// The watcher may not be registered yet, so keep saving until a
	// reload arrives.
	deadline := time.After(5 * time.Second)
	save := time.NewTicker(100 * time.Millisecond)
	defer save.Stop()
	for {
		select {
		case s := <-reloaded:
			if s.Animation.Easing != "cubic-out" {
				t.Errorf("reloaded Easing = %q, want cubic-out", s.Animation.Easing)
			}
			cancel()
			if err := <-done; err != nil {
				t.Errorf("Watch() error = %v", err)
			}
			return
		case <-save.C:
			if err := os.WriteFile(path, []byte("animation: {easing: cubic-out}\n"), 0o644); err != nil {
				t.Fatal(err)
			}
		case <-deadline:
			t.Fatal("no reload within 5s")
		}
	}
}
