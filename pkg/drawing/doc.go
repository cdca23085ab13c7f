// Package drawing provides the animatable geometries and paint tasks a
// canvas renders.
//
// A paint task selects a style on the drawing context and then draws the
// geometries it owns for that canvas. Geometries and paints embed
// motion.Animatable, so every coordinate, size and color transitions
// smoothly when set. Geometries also embed visualstates.Tracker, which
// lets a visualstates.Dictionary apply hover or selection styles to them.
package drawing
