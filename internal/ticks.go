package internal

import (
	"math"
	"time"
)

// Helper type used for fades and durations measured in updates.
type TicksDuration uint32

const maxTicks = math.MaxUint32

// Converts a wall-clock duration to a tick count at the given
// updates per second, rounding to the nearest tick. Negative
// durations map to zero.
func TicksFor(duration time.Duration, ups int) TicksDuration {
	if duration <= 0 || ups <= 0 {
		return 0
	}
	ticks := math.Round(duration.Seconds() * float64(ups))
	if ticks >= maxTicks {
		return maxTicks
	}
	return TicksDuration(ticks)
}

// Returns the duration of a single update in seconds.
func UpdateDelta(ups int) float64 {
	if ups <= 0 {
		panic("expected ups > 0")
	}
	return 1.0 / float64(ups)
}

// Returns the wall-clock duration of the given ticks.
func (self TicksDuration) Duration(ups int) time.Duration {
	if ups <= 0 {
		return 0
	}
	return time.Duration(float64(self) / float64(ups) * float64(time.Second))
}
