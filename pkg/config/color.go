package config

import (
	"strconv"
	"strings"

	"golang.org/x/image/colornames"

	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

// ParseColor parses "#RGB", "#RRGGBB", "#RRGGBBAA", "transparent" or an
// SVG 1.1 color name such as "steelblue".
func ParseColor(s string) (rendering.Color, error) {
	const op = "config.ParseColor"
	name := strings.ToLower(strings.TrimSpace(s))
	if name == "transparent" {
		return rendering.ColorTransparent, nil
	}
	if hex, ok := strings.CutPrefix(name, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			hex += "ff"
		}
		if len(hex) != 8 {
			return 0, errors.New(op, errors.KindConfig, "invalid hex color %q", s)
		}
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return 0, errors.New(op, errors.KindConfig, "invalid hex color %q", s)
		}
		return rendering.RGBA(uint8(v>>24), uint8(v>>16), uint8(v>>8), uint8(v)), nil
	}
	c, ok := colornames.Map[name]
	if !ok {
		return 0, errors.New(op, errors.KindConfig, "unknown color %q", s)
	}
	return rendering.RGBA(c.R, c.G, c.B, c.A), nil
}
