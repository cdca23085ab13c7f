// Package ggcanvas implements rendering.DrawingContext on top of the
// gogpu/gg software rasterizer, so frames can be rendered without a GPU
// device and written out as PNG images.
//
// Text is drawn with the Go regular font. gg draws glyphs in device space,
// so text honors the translation of the current transform but not its
// rotation or scale.
package ggcanvas
