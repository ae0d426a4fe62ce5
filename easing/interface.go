// This package defines an [Easing] interface that reels use to shape
// their bounce-snap animation, and provides a few default
// implementations.
//
// All provided implementations respect a couple properties:
//   - Normalized: Ease(0) == 0 and Ease(1) == 1. Overshooting
//     curves like [OutBack] or [OutElastic] can leave the [0, 1]
//     range in between, but never at the ends.
//   - Clamped: inputs outside [0, 1] are clamped before evaluation.
//
// If you write your own curves you can ignore these properties,
// but the tween package will still snap to the final value when
// a tween completes.
package easing

// The interface for mireel easing curves.
//
// Given a normalized progress t in [0, 1], Ease() returns
// the normalized interpolation factor.
type Easing interface {
	Ease(t float64) float64
}

// Adapter to use ordinary functions as an [Easing].
type Func func(t float64) float64

func (self Func) Ease(t float64) float64 { return self(clamp01(t)) }

func clamp01(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t
}
