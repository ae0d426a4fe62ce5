// Package tween implements tick-driven value interpolation
// shaped by [easing.Easing] curves.
package tween

import (
	"github.com/edwinsyarief/mireel/easing"
	"github.com/edwinsyarief/mireel/internal"
)

// A single interpolation from From to To over Duration ticks.
//
// The zero value is a completed tween with value 0.
type Tween struct {
	From     float64
	To       float64
	Duration internal.TicksDuration
	Easing   easing.Easing // nil means easing.Linear

	elapsed internal.TicksDuration
}

// Creates a new tween.
func New(from, to float64, duration internal.TicksDuration, curve easing.Easing) Tween {
	return Tween{From: from, To: to, Duration: duration, Easing: curve}
}

// Advances the tween by tickRate ticks and returns its new
// value and whether it has completed.
func (self *Tween) Update(tickRate uint64) (float64, bool) {
	if !self.Done() {
		remaining := uint64(self.Duration - self.elapsed)
		if tickRate >= remaining {
			self.elapsed = self.Duration
		} else {
			self.elapsed += internal.TicksDuration(tickRate)
		}
	}
	return self.Value(), self.Done()
}

// Returns the current value.
func (self *Tween) Value() float64 {
	if self.Done() {
		return self.To
	}
	curve := self.Easing
	if curve == nil {
		curve = easing.Linear
	}
	t := float64(self.elapsed) / float64(self.Duration)
	return self.From + (self.To-self.From)*curve.Ease(t)
}

func (self *Tween) Done() bool {
	return self.elapsed >= self.Duration
}

// Rewinds the tween to its start.
func (self *Tween) Reset() {
	self.elapsed = 0
}

// Progress in [0, 1].
func (self *Tween) Progress() float64 {
	if self.Duration == 0 {
		return 1
	}
	return float64(self.elapsed) / float64(self.Duration)
}
