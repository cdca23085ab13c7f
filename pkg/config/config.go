// Package config loads chartmotion settings from chartmotion.yaml.
//
// Settings are an explicit value handed to canvas and paint constructors;
// nothing in the motion core reads global configuration.
package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"golang.org/x/mod/semver"
	"gopkg.in/yaml.v3"

	"github.com/go-drift/chartmotion/pkg/canvas"
	"github.com/go-drift/chartmotion/pkg/drawing"
	"github.com/go-drift/chartmotion/pkg/easing"
	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

// FileName is the settings file LoadOptional looks for.
const FileName = "chartmotion.yaml"

// SchemaVersion is the newest settings schema this package understands.
// Files declaring a different major version, or a newer minor one, are
// rejected.
const SchemaVersion = "v1.0.0"

const (
	DefaultDuration = 800 * time.Millisecond
	DefaultEasing   = "exponential-out"
	DefaultMaxFPS   = canvas.DefaultMaxFPS
)

// Color interpolation modes.
const (
	ColorLerpRGB = "rgb"
	ColorLerpLab = "lab"
)

// Settings is the parsed content of chartmotion.yaml.
type Settings struct {
	Version   string          `yaml:"version,omitempty"`
	Animation AnimationConfig `yaml:"animation"`
	Canvas    CanvasConfig    `yaml:"canvas"`
	// Palette lists series colors by hex or SVG color name.
	Palette []string `yaml:"palette,omitempty"`
}

// AnimationConfig is the default transition applied to chart geometries.
type AnimationConfig struct {
	Duration Duration `yaml:"duration,omitempty"`
	Easing   string   `yaml:"easing,omitempty"`
	// Repeat is the number of cycles; -1 repeats forever.
	Repeat int `yaml:"repeat,omitempty"`
}

// CanvasConfig holds canvas and frame loop settings.
type CanvasConfig struct {
	Background         string       `yaml:"background,omitempty"`
	MaxFPS             int          `yaml:"maxFPS,omitempty"`
	AnimationsDisabled bool         `yaml:"animationsDisabled,omitempty"`
	ColorLerp          string       `yaml:"colorLerp,omitempty"`
	Trace              *TraceConfig `yaml:"trace,omitempty"`
}

// TraceConfig enables frame tracing.
type TraceConfig struct {
	Capacity  int      `yaml:"capacity,omitempty"`
	SlowFrame Duration `yaml:"slowFrame,omitempty"`
}

// Duration is a time.Duration written as a Go duration string ("250ms").
type Duration time.Duration

// UnmarshalYAML parses a duration string.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML writes the duration as a string.
func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}

// Defaults returns the settings used when no file is present.
func Defaults() *Settings {
	return &Settings{
		Version: SchemaVersion,
		Animation: AnimationConfig{
			Duration: Duration(DefaultDuration),
			Easing:   DefaultEasing,
			Repeat:   1,
		},
		Canvas: CanvasConfig{
			MaxFPS:    DefaultMaxFPS,
			ColorLerp: ColorLerpRGB,
		},
	}
}

// LoadOptional reads chartmotion.yaml from dir if present and returns the
// defaults otherwise.
func LoadOptional(dir string) (*Settings, error) {
	s, err := Load(filepath.Join(dir, FileName))
	if errors.Is(err, os.ErrNotExist) {
		return Defaults(), nil
	}
	return s, err
}

// Load reads and validates the settings file at path.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap("config.Load", errors.KindConfig, fmt.Errorf("failed to read %s: %w", path, err))
	}
	s, err := Parse(data)
	if err != nil {
		return nil, errors.Wrap("config.Load", errors.KindConfig, fmt.Errorf("%s: %w", path, err))
	}
	return s, nil
}

// Parse decodes settings from YAML on top of the defaults and validates
// them. Unknown keys are rejected.
func Parse(data []byte) (*Settings, error) {
	s := Defaults()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(s); err != nil && err != io.EOF {
		return nil, errors.Wrap("config.Parse", errors.KindConfig, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate reports every problem with the settings at once.
func (s *Settings) Validate() error {
	const op = "config.Validate"
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, errors.New(op, errors.KindConfig, format, args...))
	}

	if err := checkVersion(s.Version); err != nil {
		errs = append(errs, errors.Wrap(op, errors.KindConfig, err))
	}
	if s.Animation.Duration < 0 {
		fail("animation.duration must not be negative, got %v", time.Duration(s.Animation.Duration))
	}
	if _, err := easing.ByName(s.Animation.Easing); err != nil {
		errs = append(errs, errors.Wrap(op, errors.KindConfig, err))
	}
	if s.Animation.Repeat < -1 {
		fail("animation.repeat must be -1 or more, got %d", s.Animation.Repeat)
	}
	if _, err := ParseColor(s.Canvas.Background); s.Canvas.Background != "" && err != nil {
		errs = append(errs, errors.Wrap(op, errors.KindConfig, err))
	}
	if s.Canvas.MaxFPS < 0 {
		fail("canvas.maxFPS must not be negative, got %d", s.Canvas.MaxFPS)
	}
	switch strings.ToLower(s.Canvas.ColorLerp) {
	case "", ColorLerpRGB, ColorLerpLab:
	default:
		fail("canvas.colorLerp must be %q or %q, got %q", ColorLerpRGB, ColorLerpLab, s.Canvas.ColorLerp)
	}
	if t := s.Canvas.Trace; t != nil && (t.Capacity < 0 || t.SlowFrame < 0) {
		fail("canvas.trace values must not be negative")
	}
	for i, c := range s.Palette {
		if _, err := ParseColor(c); err != nil {
			fail("palette[%d]: %v", i, err)
		}
	}
	return errors.Join(errs...)
}

func checkVersion(version string) error {
	if version == "" {
		return nil
	}
	v := version
	if !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return fmt.Errorf("version %q is not a semantic version", version)
	}
	if semver.Major(v) != semver.Major(SchemaVersion) || semver.Compare(v, SchemaVersion) > 0 {
		return fmt.Errorf("version %s is not supported (want %s or older %s.x)", version, SchemaVersion, semver.Major(SchemaVersion))
	}
	return nil
}

// Transition returns the configured default animation.
func (s *Settings) Transition() (*motion.Animation, error) {
	ease, err := easing.ByName(s.Animation.Easing)
	if err != nil {
		return nil, errors.Wrap("config.Transition", errors.KindConfig, err)
	}
	anim := motion.NewAnimation(ease, time.Duration(s.Animation.Duration))
	switch {
	case s.Animation.Repeat < 0:
		anim = anim.WithRepeat(motion.RepeatForever)
	case s.Animation.Repeat > 1:
		anim = anim.WithRepeat(s.Animation.Repeat)
	}
	return anim, nil
}

// Background returns the canvas clear color, transparent when unset.
func (s *Settings) Background() (rendering.Color, error) {
	if s.Canvas.Background == "" {
		return rendering.ColorTransparent, nil
	}
	return ParseColor(s.Canvas.Background)
}

// ColorLerp returns the color interpolation paints should use.
func (s *Settings) ColorLerp() motion.Lerp[rendering.Color] {
	if strings.EqualFold(s.Canvas.ColorLerp, ColorLerpLab) {
		return motion.LerpColorLab
	}
	return motion.LerpColor
}

// MaxFPS returns the frame rate cap for tickers.
func (s *Settings) MaxFPS() int {
	if s.Canvas.MaxFPS <= 0 {
		return DefaultMaxFPS
	}
	return s.Canvas.MaxFPS
}

// PaletteColors returns the series colors, in order.
func (s *Settings) PaletteColors() ([]rendering.Color, error) {
	colors := make([]rendering.Color, 0, len(s.Palette))
	for _, name := range s.Palette {
		c, err := ParseColor(name)
		if err != nil {
			return nil, errors.Wrap("config.PaletteColors", errors.KindConfig, err)
		}
		colors = append(colors, c)
	}
	return colors, nil
}

// CanvasOptions translates the canvas section into canvas options.
func (s *Settings) CanvasOptions() ([]canvas.Option, error) {
	bg, err := s.Background()
	if err != nil {
		return nil, errors.Wrap("config.CanvasOptions", errors.KindConfig, err)
	}
	opts := []canvas.Option{
		canvas.WithBackground(bg),
		canvas.WithAnimationsDisabled(s.Canvas.AnimationsDisabled),
	}
	if t := s.Canvas.Trace; t != nil {
		opts = append(opts, canvas.WithTrace(canvas.NewFrameTraceBuffer(t.Capacity, time.Duration(t.SlowFrame))))
	}
	return opts, nil
}

// PaintOptions returns options every solid color paint should receive.
func (s *Settings) PaintOptions() []drawing.PaintOption {
	return []drawing.PaintOption{drawing.WithColorLerp(s.ColorLerp())}
}

// Marshal encodes the settings as YAML.
func (s *Settings) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(s); err != nil {
		return nil, err
	}
	if err := enc.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
