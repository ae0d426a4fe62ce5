package mireel

import (
	"fmt"

	"github.com/edwinsyarief/mireel/config"
	"github.com/edwinsyarief/mireel/outcome"
	"github.com/edwinsyarief/mireel/symbol"
	"go.uber.org/zap"
)

type Group struct {
	reels    []*Reel
	strips   [][]symbol.ID
	inSpin   []bool
	running  int
	stopping bool
	stops    []int

	spinTicks      uint64
	autoStop       TicksDuration
	autoStopFailed bool // the source failed once this spin, don't retry
	stopDelay      TicksDuration

	source     outcome.Source
	observers  []Observer
	onComplete []func(SpinResult)
	onReset    []func()
	logger     *zap.Logger
}

func newGroup(cfg *config.Config, factory ViewFactory, opts *options) (*Group, error) {
	if factory == nil {
		panic("nil view factory")
	}
	self := &Group{
		reels:     make([]*Reel, 0, cfg.Reels()),
		strips:    cfg.Strips,
		inSpin:    make([]bool, cfg.Reels()),
		autoStop:  cfg.Ticks(cfg.SpinDuration),
		stopDelay: cfg.Ticks(cfg.StopDelay),
		source:    opts.source,
		observers: opts.observers,
		logger:    opts.logger,
	}
	if self.source == nil {
		self.source = outcome.NewRandom(opts.rng)
	}
	if checker, ok := self.source.(outcome.Checker); ok {
		if err := checker.Check(cfg.Strips); err != nil {
			return nil, fmt.Errorf("outcome: %w", err)
		}
	}

	for i, strip := range cfg.Strips {
		views := make([]SymbolView, cfg.Rows+2)
		for slot := range views {
			views[slot] = factory(i, slot)
		}
		reel, err := newReel(i, strip, views, cfg, opts)
		if err != nil {
			return nil, fmt.Errorf("reel %d: %w", i, err)
		}
		reel.OnStopped(self.reelStopped)
		self.reels = append(self.reels, reel)
	}
	return self, nil
}

func (self *Group) spin() error {
	if self.running > 0 {
		return ErrBusy
	}
	for _, reel := range self.reels {
		if reel.state != Idle {
			return ErrBusy
		}
	}

	for i, reel := range self.reels {
		if err := reel.spin(); err != nil {
			return err // unreachable after the checks above
		}
		self.inSpin[i] = true
	}
	self.running = len(self.reels)
	self.stopping = false
	self.stops = nil
	self.spinTicks = 0
	self.autoStopFailed = false

	self.logger.Info("spin started", zap.Int("reels", len(self.reels)))
	for _, observer := range self.observers {
		observer.SpinStarted(len(self.reels))
	}
	return nil
}

func (self *Group) stop(stops []int, stagger TicksDuration) error {
	if self.running == 0 {
		return ErrNotSpinning
	}
	if self.stopping {
		return ErrBusy
	}
	if len(stops) != len(self.reels) {
		return fmt.Errorf("%w: %d stops for %d reels", ErrStopIndex, len(stops), len(self.reels))
	}
	for i, reel := range self.reels {
		if stops[i] < 0 || stops[i] >= len(reel.strip) {
			return fmt.Errorf("%w: reel %d stop %d", ErrStopIndex, i, stops[i])
		}
		if err := reel.canStop(); err != nil {
			return fmt.Errorf("reel %d: %w", i, err)
		}
	}

	for i, reel := range self.reels {
		delay := TicksDuration(i) * stagger
		if err := reel.requestStop(stops[i], delay); err != nil {
			return fmt.Errorf("reel %d: %w", i, err) // unreachable after the checks above
		}
	}
	self.stopping = true
	self.stops = append([]int(nil), stops...)
	self.logger.Debug("stop requested",
		zap.Ints("stops", stops),
		zap.Uint64("ticks", self.spinTicks),
	)
	return nil
}

func (self *Group) stopOn(ids []symbol.ID) error {
	if len(ids) != len(self.reels) {
		return fmt.Errorf("%w: %d symbols for %d reels", ErrStopIndex, len(ids), len(self.reels))
	}
	stops := make([]int, len(ids))
	for i, id := range ids {
		index, err := self.reels[i].nearestIndex(id)
		if err != nil {
			return fmt.Errorf("reel %d symbol %d: %w", i, id, err)
		}
		stops[i] = index
	}
	return self.stop(stops, self.stopDelay)
}

func (self *Group) stopFromSource(stagger TicksDuration) error {
	stops, err := self.source.Next(self.strips)
	if err != nil {
		return fmt.Errorf("outcome: %w", err)
	}
	return self.stop(stops, stagger)
}

func (self *Group) slam() error {
	if self.running == 0 {
		return ErrNotSpinning
	}
	if self.stopping {
		for _, reel := range self.reels {
			reel.hurry()
		}
		return nil
	}
	return self.stopFromSource(ZeroTicks)
}

func (self *Group) update() {
	if self.running > 0 {
		self.spinTicks += 1
		if self.autoStop > 0 && !self.stopping && !self.autoStopFailed && self.spinTicks >= uint64(self.autoStop) {
			if err := self.stopFromSource(self.stopDelay); err != nil {
				self.autoStopFailed = true
				self.logger.Warn("auto stop failed, waiting for a manual stop", zap.Error(err))
			}
		}
	}
	for _, reel := range self.reels {
		reel.update()
	}
}

func (self *Group) reset() {
	for i, reel := range self.reels {
		self.inSpin[i] = false
		reel.reset()
	}
	wasRunning := self.running > 0
	self.running = 0
	self.stopping = false
	self.stops = nil
	self.autoStopFailed = false

	if wasRunning {
		self.logger.Info("spin reset", zap.Uint64("ticks", self.spinTicks))
	}
	for _, fn := range self.onReset {
		fn()
	}
}

func (self *Group) reelStopped(reel *Reel) {
	if !self.inSpin[reel.index] {
		return // spun on its own, outside the group
	}
	self.inSpin[reel.index] = false
	self.running -= 1

	landed := reel.Landed()
	self.logger.Debug("reel stopped",
		zap.Int("reel", reel.index),
		zap.Int("symbol", int(landed)),
		zap.Uint64("ticks", self.spinTicks),
	)
	for _, observer := range self.observers {
		observer.ReelStopped(reel.index, landed, self.spinTicks)
	}
	if self.running > 0 {
		return
	}

	result := self.result()
	self.stopping = false
	self.logger.Info("spin completed",
		zap.Ints("stops", result.Stops),
		zap.Uint64("ticks", result.Ticks),
	)
	for _, observer := range self.observers {
		observer.SpinCompleted(result)
	}
	for _, fn := range self.onComplete {
		fn(result)
	}
}

func (self *Group) result() SpinResult {
	result := SpinResult{
		Windows: make([][]symbol.ID, len(self.reels)),
		Landed:  make([]symbol.ID, len(self.reels)),
		Stops:   make([]int, len(self.reels)),
		Ticks:   self.spinTicks,
	}
	for i, reel := range self.reels {
		result.Windows[i] = reel.Window()
		result.Landed[i] = reel.Landed()
		result.Stops[i] = reel.stopped
	}
	return result
}
