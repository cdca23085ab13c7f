package easing

import (
	"slices"
	"strings"

	"github.com/go-drift/chartmotion/pkg/errors"
)

var named = map[string]Func{
	"linear":             Linear,
	"quadratic-in":       QuadraticIn,
	"quadratic-out":      QuadraticOut,
	"quadratic-in-out":   QuadraticInOut,
	"cubic-in":           CubicIn,
	"cubic-out":          CubicOut,
	"cubic-in-out":       CubicInOut,
	"sin-in":             SinIn,
	"sin-out":            SinOut,
	"sin-in-out":         SinInOut,
	"circle-in":          CircleIn,
	"circle-out":         CircleOut,
	"circle-in-out":      CircleInOut,
	"polynomial-in":      PolynomialIn,
	"polynomial-out":     PolynomialOut,
	"polynomial-in-out":  PolynomialInOut,
	"exponential-in":     ExponentialIn,
	"exponential-out":    ExponentialOut,
	"exponential-in-out": ExponentialInOut,
	"back-in":            BackIn,
	"back-out":           BackOut,
	"back-in-out":        BackInOut,
	"bounce-in":          BounceIn,
	"bounce-out":         BounceOut,
	"bounce-in-out":      BounceInOut,
	"elastic-in":         ElasticIn,
	"elastic-out":        ElasticOut,
	"elastic-in-out":     ElasticInOut,
	"ease":               Ease,
	"ease-in":            EaseIn,
	"ease-out":           EaseOut,
	"ease-in-out":        EaseInOut,
}

// ByName returns the easing function registered under name, e.g.
// "cubic-out" or "bounce-in-out". Names are case-insensitive and accept
// underscores in place of hyphens.
func ByName(name string) (Func, error) {
	key := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "_", "-")
	if fn, ok := named[key]; ok {
		return fn, nil
	}
	return nil, errors.New("easing.ByName", errors.KindInvalidArgument, "unknown easing function %q", name)
}

// Names returns the registered easing names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
