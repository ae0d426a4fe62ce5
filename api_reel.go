package mireel

import (
	"github.com/edwinsyarief/mireel/config"
	"github.com/edwinsyarief/mireel/symbol"
)

// --- views ---

// The external collaborator in charge of displaying a single
// symbol instance. Reels never draw anything themselves: they
// only tell their views where to be, which logical symbol to
// show and how blurred to look.
type SymbolView interface {
	// Sets the top-left corner of the symbol, in logical pixels.
	SetPosition(x, y float64)

	// Sets the logical symbol to display. Views resolve the
	// actual image on their own, see [symbol.Table].
	SetSymbol(id symbol.ID)

	// Sets the blur level in [0, 1]. Zero means the sharp image.
	SetBlur(level float64)
}

// Creates the view for the given slot of the given reel. Each
// reel requests rows + 2 views, slot 0 being the hidden buffer
// row above the window.
type ViewFactory func(reel, slot int) SymbolView

// --- reel state ---

type ReelState uint8

const (
	Idle ReelState = iota
	SpinningAccel
	SpinningConst
	Stopping
	Result
)

// Returns a string representation of the reel state.
func (self ReelState) String() string {
	switch self {
	case Idle:
		return "Idle"
	case SpinningAccel:
		return "SpinningAccel"
	case SpinningConst:
		return "SpinningConst"
	case Stopping:
		return "Stopping"
	case Result:
		return "Result"
	default:
		panic("invalid ReelState")
	}
}

// Returns whether the state is one of the spinning states,
// [Stopping] included.
func (self ReelState) Spinning() bool {
	return self == SpinningAccel || self == SpinningConst || self == Stopping
}

// --- reel ---

// Creates a standalone reel. Most games should use [NewGroup]()
// instead, which creates and sequences all the configured reels.
//
// The views must be exactly cfg.Rows + 2, otherwise the function
// panics.
func NewReel(index int, strip []symbol.ID, views []SymbolView, cfg *config.Config, opts ...Option) (*Reel, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newReel(index, strip, views, cfg, newOptions(opts))
}

// Starts spinning the reel. Returns [ErrBusy] unless the reel is [Idle].
func (self *Reel) Spin() error {
	return self.spin()
}

// Requests the reel to stop with the given strip index on the
// payline. The reel keeps spinning at full speed for delay ticks
// after reaching [SpinningConst] before it starts decelerating.
//
// Returns [ErrNotSpinning] if the reel is idle or showing its
// result, [ErrBusy] if a stop was already requested and
// [ErrStopIndex] for indices outside the strip.
func (self *Reel) Stop(stopIndex int, delay TicksDuration) error {
	return self.requestStop(stopIndex, delay)
}

// Like [Reel.Stop](), but choosing the strip index of the given
// symbol that comes first in spin order. Returns [ErrUnknownSymbol]
// if the symbol is not on the strip.
func (self *Reel) StopOn(id symbol.ID, delay TicksDuration) error {
	index, err := self.nearestIndex(id)
	if err != nil {
		return err
	}
	return self.requestStop(index, delay)
}

// Drops the remaining delay of a pending stop.
func (self *Reel) Hurry() { self.hurry() }

// Aborts the spin and puts the reel back to [Idle] right away,
// aligned to the row grid and without blur. Callbacks registered
// with [Reel.OnStopped]() are not invoked.
func (self *Reel) Reset() { self.reset() }

// Advances the reel by one tick. Must be called once per
// game update.
func (self *Reel) Update() { self.update() }

// Registers a function to be invoked each time the reel
// completes its stop animation and goes back to [Idle].
func (self *Reel) OnStopped(fn func(*Reel)) {
	self.onStopped = append(self.onStopped, fn)
}

func (self *Reel) Index() int { return self.index }
func (self *Reel) State() ReelState { return self.state }
func (self *Reel) Speed() float64 { return self.speed }

// Returns the randomized top speed multiplier drawn by the
// last [Reel.Spin]().
func (self *Reel) Multiplier() float64 { return self.multiplier }

// Returns the current blur level in [0, 1].
func (self *Reel) Blur() float64 { return self.blur.Level() }

// Returns the strip index of the symbol most recently brought
// into the top buffer row.
func (self *Reel) Cursor() int { return self.cursor }

// Returns a copy of the reel strip.
func (self *Reel) Strip() []symbol.ID {
	return append([]symbol.ID(nil), self.strip...)
}

// Returns the strip index on the payline after the last completed
// stop or reset, or -1 if the reel never stopped.
func (self *Reel) StopIndex() int { return self.stopped }

// Returns the visible symbols, top to bottom.
func (self *Reel) Window() []symbol.ID {
	visible := self.visibleSlots()
	window := make([]symbol.ID, len(visible))
	for i, slotIndex := range visible {
		window[i] = self.slots[slotIndex].id
	}
	return window
}

// Returns the symbol currently on the payline row.
func (self *Reel) Landed() symbol.ID {
	visible := self.visibleSlots()
	if self.payline >= len(visible) {
		return 0
	}
	return self.slots[visible[self.payline]].id
}

// Returns the logical top-left corner of the reel window.
func (self *Reel) Origin() (x, y float64) {
	return self.origin.X, self.origin.Y
}
