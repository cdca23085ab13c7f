package ggcanvas

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/go-drift/chartmotion/pkg/errors"
	"github.com/go-drift/chartmotion/pkg/rendering"
)

func isRed(c color.Color) bool {
	r, g, b, a := c.RGBA()
	return r > 0xF000 && g < 0x1000 && b < 0x1000 && a > 0xF000
}

func isWhite(c color.Color) bool {
	r, g, b, _ := c.RGBA()
	return r > 0xF000 && g > 0xF000 && b > 0xF000
}

func TestDrawRectRasterizes(t *testing.T) {
	ctx, err := New(50, 50)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer ctx.Close()

	ctx.BeginDraw()
	ctx.Clear(rendering.ColorWhite)
	ctx.SelectPaint(rendering.Paint{Color: rendering.ColorRed, Style: rendering.PaintStyleFill})
	ctx.DrawRect(rendering.RectFromLTWH(10, 10, 20, 20))
	ctx.Save()
	ctx.Translate(40, 40)
	ctx.DrawRect(rendering.RectFromLTWH(0, 0, 8, 8))
	ctx.Restore()
	if err := ctx.EndDraw(); err != nil {
		t.Fatalf("EndDraw error: %v", err)
	}

	img := ctx.Image()
	if c := img.At(20, 20); !isRed(c) {
		t.Errorf("pixel (20, 20) = %v, want red", c)
	}
	if c := img.At(44, 44); !isRed(c) {
		t.Errorf("pixel (44, 44) = %v, want red (translated rect)", c)
	}
	if c := img.At(3, 3); !isWhite(c) {
		t.Errorf("pixel (3, 3) = %v, want white background", c)
	}
}

func TestEncodePNG(t *testing.T) {
	ctx, err := New(8, 8)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer ctx.Close()
	ctx.BeginDraw()
	ctx.Clear(rendering.ColorBlue)

	var buf bytes.Buffer
	if err := ctx.EncodePNG(&buf); err != nil {
		t.Fatalf("EncodePNG error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Error("output is missing the PNG signature")
	}
}

func TestNewRejectsEmptySurface(t *testing.T) {
	_, err := New(0, 10)
	if !errors.IsKind(err, errors.KindInvalidArgument) {
		t.Errorf("New(0, 10) error = %v, want invalid argument", err)
	}
}

func TestMeasureText(t *testing.T) {
	ctx, err := New(10, 10)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer ctx.Close()

	short := ctx.MeasureText("ab", 12)
	long := ctx.MeasureText("abcdef", 12)
	if short.Width <= 0 || long.Width <= short.Width {
		t.Errorf("MeasureText widths = %v, %v; want positive and increasing", short.Width, long.Width)
	}
	if got := ctx.MeasureText("", 12); got != (rendering.Size{}) {
		t.Errorf("MeasureText(\"\") = %v, want zero", got)
	}
}

func TestDrawWithoutPaintPanics(t *testing.T) {
	ctx, err := New(10, 10)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	defer ctx.Close()
	ctx.BeginDraw()

	defer func() {
		if recover() == nil {
			t.Error("expected panic for draw before SelectPaint")
		}
	}()
	ctx.DrawCircle(rendering.Offset{X: 5, Y: 5}, 2)
}
