package cmd

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/muesli/termenv"

	"github.com/go-drift/chartmotion/pkg/easing"
)

func init() {
	RegisterCommand(&Command{
		Name:  "easings",
		Short: "Tabulate easing curves",
		Long: `Print easing curves as a table of samples with a bar per value.

Without names every registered curve is listed. Names accept the forms
used in chartmotion.yaml, for example cubic-out or bounce_in_out.

Flags:
  --samples N        Number of intervals between t=0 and t=1 (default: 10)
  --list             Only print the registered names`,
		Usage: "chartmotion easings [name...] [--samples N] [--list]",
		Run:   runEasings,
	})
}

const easingBarWidth = 40

func runEasings(args []string) error {
	samples := 10
	list := false
	var names []string
	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--samples":
			if i+1 >= len(args) {
				return fmt.Errorf("--samples requires a value")
			}
			n, err := strconv.Atoi(args[i+1])
			if err != nil || n <= 0 {
				return fmt.Errorf("--samples requires a positive number, got %q", args[i+1])
			}
			samples = n
			i++
		case "--list":
			list = true
		default:
			names = append(names, args[i])
		}
	}

	if list {
		for _, name := range easing.Names() {
			fmt.Println(name)
		}
		return nil
	}
	if len(names) == 0 {
		names = easing.Names()
	}
	out := termenv.NewOutput(os.Stdout)
	for _, name := range names {
		fn, err := easing.ByName(name)
		if err != nil {
			return err
		}
		printCurve(out, name, fn, samples)
	}
	return nil
}

// printCurve writes one curve. Values outside [0, 1] are drawn in a
// warning color so overshoot is visible at a glance.
func printCurve(out *termenv.Output, name string, fn easing.Func, samples int) {
	fmt.Fprintln(out, out.String(name).Bold())
	for i := 0; i <= samples; i++ {
		t := float64(i) / float64(samples)
		v := fn(t)
		bar := out.String(curveBar(v)).Foreground(out.Color("#4E79A7"))
		if v < 0 || v > 1 {
			bar = bar.Foreground(out.Color("#E15759"))
		}
		fmt.Fprintf(out, "  %4.2f  %7.4f  %s\n", t, v, bar)
	}
	fmt.Fprintln(out)
}

func curveBar(v float64) string {
	n := int(v*easingBarWidth + 0.5)
	n = max(0, min(easingBarWidth+easingBarWidth/4, n))
	return strings.Repeat("#", n)
}
