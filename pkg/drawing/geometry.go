package drawing

import (
	"math"
	"time"

	"github.com/go-drift/chartmotion/pkg/motion"
	"github.com/go-drift/chartmotion/pkg/rendering"
	"github.com/go-drift/chartmotion/pkg/visualstates"
)

// Drawable is anything a paint task can draw and the canvas can track.
type Drawable interface {
	BeginFrame(now time.Time)
	EndFrame() bool
	IsValid() bool
	IsCompleted() bool
	RemoveOnCompleted() bool
	CompleteTransitions(names ...string)
	SetInvalidator(fn func())
	Draw(ctx rendering.DrawingContext)
}

// shape is implemented by each concrete geometry.
type shape interface {
	// bounds returns the local-space box transforms pivot around.
	bounds(ctx rendering.DrawingContext) rendering.Rect
	drawShape(ctx rendering.DrawingContext)
}

// Geometry holds the properties shared by all shapes. X and Y position the
// shape; Rotation is in degrees; Scale, Translate and Transform apply
// around TransformOrigin, given as a fraction of the shape's bounds.
type Geometry struct {
	motion.Animatable
	visualstates.Tracker

	X         *motion.MotionProperty[float64]
	Y         *motion.MotionProperty[float64]
	Opacity   *motion.MotionProperty[float64]
	Rotation  *motion.MotionProperty[float64]
	Scale     *motion.MotionProperty[rendering.Offset]
	Translate *motion.MotionProperty[rendering.Offset]
	Transform *motion.MotionProperty[rendering.Matrix]

	// TransformOrigin is not animated. Defaults to the center (0.5, 0.5).
	TransformOrigin rendering.Offset

	shape shape
}

func (g *Geometry) init(s shape) {
	g.shape = s
	g.X = motion.Register(&g.Animatable, "X", 0.0, motion.LerpFloat)
	g.Y = motion.Register(&g.Animatable, "Y", 0.0, motion.LerpFloat)
	g.Opacity = motion.Register(&g.Animatable, "Opacity", 1.0, motion.LerpFloat)
	g.Rotation = motion.Register(&g.Animatable, "Rotation", 0.0, motion.LerpFloat)
	g.Scale = motion.Register(&g.Animatable, "Scale", rendering.Offset{X: 1, Y: 1}, motion.LerpOffset)
	g.Translate = motion.Register(&g.Animatable, "Translate", rendering.Offset{}, motion.LerpOffset)
	g.Transform = motion.Register(&g.Animatable, "Transform", rendering.IdentityMatrix(), motion.LerpMatrix)
	g.TransformOrigin = rendering.Offset{X: 0.5, Y: 0.5}
}

// Draw renders the shape with its opacity and transforms applied.
func (g *Geometry) Draw(ctx rendering.DrawingContext) {
	opacity := g.Opacity.Get()
	rotation := g.Rotation.Get()
	scale := g.Scale.Get()
	translate := g.Translate.Get()
	transform := g.Transform.Get()

	ctx.Save()
	defer ctx.Restore()

	if opacity != 1 {
		ctx.SetOpacity(opacity)
	}

	transformed := rotation != 0 || scale != (rendering.Offset{X: 1, Y: 1}) ||
		translate != (rendering.Offset{}) || !transform.IsIdentity()
	if transformed {
		b := g.shape.bounds(ctx)
		origin := rendering.Offset{
			X: b.Left + b.Width()*g.TransformOrigin.X,
			Y: b.Top + b.Height()*g.TransformOrigin.Y,
		}
		ctx.Translate(origin.X+translate.X, origin.Y+translate.Y)
		if rotation != 0 {
			ctx.Rotate(rotation * math.Pi / 180)
		}
		if scale.X != 1 || scale.Y != 1 {
			ctx.Scale(scale.X, scale.Y)
		}
		if !transform.IsIdentity() {
			ctx.Concat(transform)
		}
		ctx.Translate(-origin.X, -origin.Y)
	}

	g.shape.drawShape(ctx)
}
