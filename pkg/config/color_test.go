package config

import (
	"testing"

	"github.com/go-drift/chartmotion/pkg/rendering"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want rendering.Color
	}{
		{"#fff", rendering.ColorWhite},
		{"#FF0000", rendering.ColorRed},
		{"#0000ff80", rendering.RGBA(0, 0, 255, 0x80)},
		{" Blue ", rendering.ColorBlue},
		{"steelblue", rendering.RGB(70, 130, 180)},
		{"transparent", rendering.ColorTransparent},
	}
	for _, tt := range tests {
		got, err := ParseColor(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseColor(%q) = %v, %v, want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParseColorErrors(t *testing.T) {
	for _, in := range []string{"", "#", "#12", "#1234567", "#gggggg", "notacolor"} {
		if got, err := ParseColor(in); err == nil {
			t.Errorf("ParseColor(%q) = %v, want error", in, got)
		}
	}
}
