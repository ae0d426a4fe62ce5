package mireel

import (
	"errors"

	"github.com/edwinsyarief/mireel/internal"
)

// Helper type used for delays, fades and tween durations.
type TicksDuration = internal.TicksDuration

const ZeroTicks TicksDuration = 0

// internal usage
const maxUint32 = 0xFFFF_FFFF

// --- errors ---

var (
	// Returned when spinning or stopping something that is
	// already spinning or stopping.
	ErrBusy = errors.New("reels busy")

	// Returned when requesting a stop while reels are idle.
	ErrNotSpinning = errors.New("reels not spinning")

	// Returned when a stop index falls outside the reel strip.
	ErrStopIndex = errors.New("stop index out of range")

	// Returned by stop-on-symbol requests for symbols missing
	// from the reel strip.
	ErrUnknownSymbol = errors.New("symbol not on strip")
)

const viewCountMismatch = "reel views must cover the visible rows plus one buffer row above and below"

// --- helpers ---

func wrapIndex(index, length int) int {
	index %= length
	if index < 0 {
		index += length
	}
	return index
}
