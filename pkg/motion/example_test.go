package motion_test

import (
	"fmt"
	"time"

	"github.com/go-drift/chartmotion/pkg/easing"
	"github.com/go-drift/chartmotion/pkg/motion"
)

// bar is a minimal animatable with one property.
type bar struct {
	motion.Animatable
	Height *motion.MotionProperty[float64]
}

func newBar() *bar {
	b := &bar{}
	b.Height = motion.Register(&b.Animatable, "Height", 0.0, motion.LerpFloat)
	b.SetTransition(motion.NewAnimation(easing.Linear, 400*time.Millisecond))
	return b
}

// This example drives a property frame by frame with explicit times.
func ExampleMotionProperty() {
	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	b := newBar()
	b.BeginFrame(start)
	b.Height.Set(80)

	for ms := 0; ms <= 400; ms += 100 {
		b.BeginFrame(start.Add(time.Duration(ms) * time.Millisecond))
		h := b.Height.Get()
		fmt.Printf("t=%dms height=%.0f valid=%t\n", ms, h, b.IsValid())
	}

	// Output:
	// t=0ms height=0 valid=false
	// t=100ms height=20 valid=false
	// t=200ms height=40 valid=false
	// t=300ms height=60 valid=false
	// t=400ms height=80 valid=true
}

// This example shows how CompleteTransitions skips an animation.
func ExampleAnimatable_CompleteTransitions() {
	b := newBar()
	b.Height.Set(80)
	b.CompleteTransitions()
	fmt.Println(b.Height.Get())

	// Output:
	// 80
}
