// Package testing provides a frame testing harness for chartmotion.
//
// # Quick Start
//
// Create a tester, add paint tasks to its canvas, and pump frames:
//
//	func TestBarsGrow(t *testing.T) {
//	    tester := drifttest.NewFrameTester()
//	    paint := drawing.NewSolidColorPaint(rendering.ColorBlue)
//	    bar := drawing.NewRectangle()
//	    bar.SetTransition(motion.NewAnimation(easing.Linear, 100*time.Millisecond))
//	    bar.Height.Set(40)
//	    paint.AddGeometry(tester.Canvas(), bar)
//	    tester.Canvas().AddPaintTask(paint)
//
//	    if err := tester.PumpAndSettle(time.Second); err != nil {
//	        t.Fatal(err)
//	    }
//	}
//
// # Snapshot Testing
//
// Capture and compare the display operations of the last frame:
//
//	snapshot := tester.CaptureSnapshot()
//	snapshot.MatchesFile(t, "testdata/bars.snapshot.json")
//
// Update snapshots with:
//
//	CHARTMOTION_UPDATE_SNAPSHOTS=1 go test ./...
//
// # Animation Testing
//
// Control time for deterministic animation tests:
//
//	tester.Clock().Advance(100 * time.Millisecond)
//	tester.Pump()
//
// # Import Alias
//
// Since this package has the same name as the standard library testing
// package, import it with an alias:
//
//	import drifttest "github.com/go-drift/chartmotion/pkg/testing"
package testing
