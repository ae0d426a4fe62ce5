package mireel

import (
	"github.com/edwinsyarief/mireel/config"
	"github.com/edwinsyarief/mireel/symbol"
)

// Summary of a completed spin.
type SpinResult struct {
	Windows [][]symbol.ID // visible symbols per reel, top to bottom
	Landed  []symbol.ID   // payline symbol per reel
	Stops   []int         // strip index on the payline per reel
	Ticks   uint64        // updates elapsed from Spin() to the last reel stopping
}

// Receives group lifecycle notifications. All methods are
// invoked from within [Group.Update](), except SpinStarted,
// which is invoked from [Group.Spin]().
type Observer interface {
	SpinStarted(reels int)
	ReelStopped(reel int, landed symbol.ID, ticks uint64)
	SpinCompleted(result SpinResult)
}

// Creates one reel per configured strip, requesting the symbol
// views from the given factory.
//
// Stop requests are staggered: reel i starts decelerating
// i * cfg.StopDelay ticks after reel 0. If cfg.SpinDuration is
// not zero, the group also requests its own stop once spinning
// for that long, using the configured [outcome.Source] (uniformly
// random by default, see [WithSource]()).
func NewGroup(cfg *config.Config, factory ViewFactory, opts ...Option) (*Group, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return newGroup(cfg, factory, newOptions(opts))
}

// Starts spinning every reel. Returns [ErrBusy] unless all the
// reels are [Idle].
func (self *Group) Spin() error {
	return self.spin()
}

// Requests a staggered stop on the given strip indices, one per
// reel. Returns [ErrNotSpinning] while idle and [ErrBusy] if a
// stop was already requested for the current spin or for any of
// its reels. Every reel is checked before any of them is touched,
// so a rejected request leaves the whole group as it was.
func (self *Group) Stop(stops []int) error {
	return self.stop(stops, self.stopDelay)
}

// Like [Group.Stop](), but with one symbol per reel. Each reel
// picks the strip index of its symbol that comes first in spin
// order.
func (self *Group) StopOn(ids []symbol.ID) error {
	return self.stopOn(ids)
}

// Quick stop. If no stop was requested yet, requests one from the
// outcome source without stagger. Otherwise, drops the remaining
// stagger delays so every reel starts decelerating right away.
func (self *Group) Slam() error {
	return self.slam()
}

// Aborts the current spin: every reel goes back to [Idle] at
// once, pending stops are dropped and no completion is reported.
// Reels spun on their own are reset too. Callbacks registered
// with [Group.OnReset]() are invoked even if nothing was spinning.
func (self *Group) Reset() {
	self.reset()
}

// Registers a function to be invoked by [Group.Reset]().
func (self *Group) OnReset(fn func()) {
	self.onReset = append(self.onReset, fn)
}

// Advances every reel by one tick. Must be called once per
// game update.
func (self *Group) Update() {
	self.update()
}

// Registers a function to be invoked once every reel has
// stopped. Typically used to re-enable input and evaluate wins.
func (self *Group) OnComplete(fn func(SpinResult)) {
	self.onComplete = append(self.onComplete, fn)
}

// Returns whether a spin is in progress.
func (self *Group) Busy() bool { return self.running > 0 }

// Returns whether a stop was already requested for the current spin.
func (self *Group) Stopping() bool { return self.stopping }

// Returns the number of reels still spinning or bouncing.
func (self *Group) Running() int { return self.running }

// Returns the ticks elapsed since the current or last spin started.
func (self *Group) SpinTicks() uint64 { return self.spinTicks }

func (self *Group) Reels() []*Reel {
	return append([]*Reel(nil), self.reels...)
}

func (self *Group) Reel(index int) *Reel {
	return self.reels[index]
}

func (self *Group) Len() int { return len(self.reels) }
