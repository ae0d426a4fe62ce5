package easing

import (
	"fmt"
	"math"
	"strings"
)

type easing = Easing

// A few stateless built-in curves.
var (
	Linear     easing = Func(func(t float64) float64 { return t })
	InQuad     easing = Func(func(t float64) float64 { return t * t })
	OutQuad    easing = Func(func(t float64) float64 { return t * (2 - t) })
	InOutCubic easing = Func(inOutCubic)

	// Overshoots the target by ~10% before settling.
	OutBack easing = Func(outBack)

	// Bounces against the target a few times with decreasing height.
	OutBounce easing = Func(outBounce)

	// Damped oscillation around the target.
	OutElastic easing = Func(outElastic)
)

var byName = map[string]Easing{
	"linear":       Linear,
	"in-quad":      InQuad,
	"out-quad":     OutQuad,
	"in-out-cubic": InOutCubic,
	"out-back":     OutBack,
	"out-bounce":   OutBounce,
	"out-elastic":  OutElastic,
}

// Returns the built-in curve registered under the given name,
// e.g. "out-back". Names are case insensitive.
func ByName(name string) (Easing, error) {
	curve, found := byName[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return nil, fmt.Errorf("unknown easing %q", name)
	}
	return curve, nil
}

// Returns the names accepted by [ByName]().
func Names() []string {
	names := make([]string, 0, len(byName))
	for name := range byName {
		names = append(names, name)
	}
	return names
}

func inOutCubic(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	f := -2*t + 2
	return 1 - f*f*f/2
}

func outBack(t float64) float64 {
	const c1 = 1.70158
	const c3 = c1 + 1
	f := t - 1
	return 1 + c3*f*f*f + c1*f*f
}

func outBounce(t float64) float64 {
	const n1 = 7.5625
	const d1 = 2.75
	switch {
	case t < 1/d1:
		return n1 * t * t
	case t < 2/d1:
		t -= 1.5 / d1
		return n1*t*t + 0.75
	case t < 2.5/d1:
		t -= 2.25 / d1
		return n1*t*t + 0.9375
	default:
		t -= 2.625 / d1
		return n1*t*t + 0.984375
	}
}

func outElastic(t float64) float64 {
	if t == 0 || t == 1 {
		return t
	}
	const c4 = (2 * math.Pi) / 3
	return math.Pow(2, -10*t)*math.Sin((t*10-0.75)*c4) + 1
}
