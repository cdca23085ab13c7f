package easing_test

import (
	"fmt"

	"github.com/go-drift/chartmotion/pkg/easing"
)

// This example shows how to build a CSS-style cubic-bezier curve.
func ExampleNewCubicBezier() {
	curve, err := easing.NewCubicBezier(0.42, 0.0, 0.58, 1.0)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Printf("Progress 0.0 -> %.2f\n", curve(0.0))
	fmt.Printf("Progress 0.5 -> %.2f\n", curve(0.5))
	fmt.Printf("Progress 1.0 -> %.2f\n", curve(1.0))

	// Output:
	// Progress 0.0 -> 0.00
	// Progress 0.5 -> 0.50
	// Progress 1.0 -> 1.00
}

// This example shows how settings files resolve easing names.
func ExampleByName() {
	curve, err := easing.ByName("quadratic-in")
	if err != nil {
		fmt.Println("error:", err)
		return
	}
	fmt.Printf("%.2f\n", curve(0.5))

	// Output:
	// 0.25
}
