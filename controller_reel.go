package mireel

import (
	"math"
	"math/rand/v2"
	"slices"

	ebimath "github.com/edwinsyarief/ebi-math"
	"github.com/edwinsyarief/mireel/config"
	"github.com/edwinsyarief/mireel/easing"
	"github.com/edwinsyarief/mireel/internal"
	"github.com/edwinsyarief/mireel/symbol"
	"github.com/edwinsyarief/mireel/tween"
	"go.uber.org/zap"
)

type reelSlot struct {
	view SymbolView
	y    float64 // logical, relative to the window top
	id   symbol.ID
}

type stopRequest struct {
	pending bool
	target  int
	delay   TicksDuration
	waited  TicksDuration
}

type landing struct {
	armed      bool
	target     int
	targetSlot int // -1 until the target symbol has been recycled in
}

type Reel struct {
	index  int
	strip  []symbol.ID
	slots  []reelSlot
	cursor int // strip index of the symbol most recently recycled to the top
	origin ebimath.Vector

	// geometry
	rows      int
	payline   int
	rowHeight float64

	// physics
	state        ReelState
	speed        float64
	multiplier   float64
	acceleration float64
	maxSpeed     float64
	variance     float64
	deceleration float64
	landingSpeed float64
	updateDelta  float64
	spinTicks    uint64

	// blur
	blur         blurFader
	blurOn       bool
	blurOnSpeed  float64
	blurOffSpeed float64
	blurFadeIn   TicksDuration
	blurFadeOut  TicksDuration
	lastBlur     float64

	// stop
	stop    stopRequest
	landing landing
	stopped int // last completed stop index, -1 before the first stop

	// bounce
	bounce       *tween.Sequence
	bounceOffset float64
	bounceDepth  float64
	bounceOut    TicksDuration
	bounceBack   TicksDuration
	bounceEasing easing.Easing

	rng       *rand.Rand
	logger    *zap.Logger
	onStopped []func(*Reel)
}

func newReel(index int, strip []symbol.ID, views []SymbolView, cfg *config.Config, opts *options) (*Reel, error) {
	if len(views) != cfg.Rows+2 {
		panic(viewCountMismatch)
	}
	if len(strip) < cfg.Rows+2 {
		panic("reel strip shorter than the reel views")
	}
	curve, err := easing.ByName(cfg.Bounce.Easing)
	if err != nil {
		return nil, err
	}

	self := &Reel{
		index:        index,
		strip:        slices.Clone(strip),
		slots:        make([]reelSlot, len(views)),
		origin:       ebimath.V(opts.originX+float64(index)*(cfg.SymbolWidth+cfg.ReelGap), opts.originY),
		rows:         cfg.Rows,
		payline:      cfg.PaylineRow,
		rowHeight:    cfg.SymbolHeight,
		multiplier:   1.0,
		acceleration: cfg.Acceleration,
		maxSpeed:     cfg.MaxSpeed,
		variance:     cfg.SpeedVariance,
		deceleration: cfg.Deceleration,
		landingSpeed: cfg.LandingSpeed,
		updateDelta:  internal.UpdateDelta(cfg.UPS),
		blurOnSpeed:  cfg.Blur.OnSpeed,
		blurOffSpeed: cfg.Blur.OffSpeed,
		blurFadeIn:   cfg.Ticks(cfg.Blur.FadeIn),
		blurFadeOut:  cfg.Ticks(cfg.Blur.FadeOut),
		stopped:      -1,
		bounceDepth:  cfg.Bounce.Depth,
		bounceOut:    cfg.Ticks(cfg.Bounce.Out),
		bounceBack:   cfg.Ticks(cfg.Bounce.Back),
		bounceEasing: curve,
		rng:          opts.rng,
		logger:       opts.logger.With(zap.Int("reel", index)),
	}

	// slot 0 is the buffer row above the window, the last
	// one the buffer row below it
	for i, view := range views {
		if view == nil {
			panic("nil reel view")
		}
		self.slots[i] = reelSlot{
			view: view,
			y:    float64(i-1) * self.rowHeight,
			id:   self.strip[i],
		}
		view.SetSymbol(self.slots[i].id)
		view.SetBlur(0)
	}
	self.cursor = 0
	self.pushPositions()
	return self, nil
}

// --- state machine ---

func (self *Reel) setState(state ReelState) {
	if self.state == state {
		return
	}
	self.logger.Debug("reel state",
		zap.Stringer("from", self.state),
		zap.Stringer("to", state),
		zap.Float64("speed", self.speed),
		zap.Uint64("ticks", self.spinTicks),
	)
	self.state = state
}

func (self *Reel) spin() error {
	if self.state != Idle {
		return ErrBusy
	}
	self.multiplier = 1.0
	if self.variance > 0 {
		self.multiplier += (self.rng.Float64()*2.0 - 1.0) * self.variance
	}
	self.speed = 0
	self.spinTicks = 0
	self.stop = stopRequest{}
	self.landing = landing{targetSlot: -1}
	self.setState(SpinningAccel)
	return nil
}

// Returns why a stop request would be rejected right now.
func (self *Reel) canStop() error {
	switch self.state {
	case Idle, Result:
		return ErrNotSpinning
	case Stopping:
		return ErrBusy
	}
	if self.stop.pending {
		return ErrBusy
	}
	return nil
}

func (self *Reel) requestStop(target int, delay TicksDuration) error {
	if err := self.canStop(); err != nil {
		return err
	}
	if target < 0 || target >= len(self.strip) {
		return ErrStopIndex
	}
	self.stop = stopRequest{pending: true, target: target, delay: delay}
	return nil
}

// Returns the strip index of id that will be met first when the
// reel keeps spinning from its current position.
func (self *Reel) nearestIndex(id symbol.ID) (int, error) {
	n := len(self.strip)
	for step := 1; step <= n; step++ {
		index := wrapIndex(self.cursor-step, n)
		if self.strip[index] == id {
			return index, nil
		}
	}
	return -1, ErrUnknownSymbol
}

func (self *Reel) hurry() {
	if self.stop.pending {
		self.stop.delay = 0
	}
}

func (self *Reel) update() {
	if self.state == Idle {
		return
	}
	self.spinTicks += 1

	switch self.state {
	case SpinningAccel:
		// the stop delay runs from the request, but deceleration
		// can't begin before reaching full speed
		if self.stop.pending && self.stop.waited < self.stop.delay {
			self.stop.waited += 1
		}
		self.speed += self.acceleration * self.updateDelta
		topSpeed := self.maxSpeed * self.multiplier
		if self.speed >= topSpeed {
			self.speed = topSpeed
			self.setState(SpinningConst)
		}
		self.advance()
	case SpinningConst:
		if self.stop.pending {
			if self.stop.waited >= self.stop.delay {
				self.stop.pending = false
				self.landing = landing{target: self.stop.target, targetSlot: -1}
				self.setState(Stopping)
			} else {
				self.stop.waited += 1
			}
		}
		self.advance()
	case Stopping:
		self.speed -= self.deceleration * self.updateDelta
		if self.speed <= self.landingSpeed {
			self.speed = self.landingSpeed
			if !self.landing.armed {
				self.armLanding()
			}
		}
		self.advance()
		if self.landing.targetSlot >= 0 {
			slot := &self.slots[self.landing.targetSlot]
			if slot.y >= self.paylineY() {
				self.snap(slot.y - self.paylineY())
			}
		}
	case Result:
		value, done := self.bounce.Update(1)
		self.bounceOffset = value
		if done {
			self.finish()
		}
	}

	self.updateBlur()
	self.pushPositions()
}

// Moves every slot down by one tick of travel, recycling the
// slots that leave the bottom buffer row.
func (self *Reel) advance() {
	travel := self.speed * self.updateDelta
	for i := range self.slots {
		self.slots[i].y += travel
	}

	self.recycleBottom()
}

func (self *Reel) recycleBottom() {
	// the lowest slot leaves first and must take the older
	// symbol, so recycle one slot at a time from the bottom
	bottomLimit := float64(self.rows+1) * self.rowHeight
	loopHeight := float64(len(self.slots)) * self.rowHeight
	for {
		lowest := 0
		for i := range self.slots {
			if self.slots[i].y > self.slots[lowest].y {
				lowest = i
			}
		}
		if self.slots[lowest].y < bottomLimit {
			return
		}
		self.slots[lowest].y -= loopHeight
		self.recycle(lowest)
	}
}

func (self *Reel) recycle(slotIndex int) {
	self.cursor = wrapIndex(self.cursor-1, len(self.strip))
	slot := &self.slots[slotIndex]
	slot.id = self.strip[self.cursor]
	slot.view.SetSymbol(slot.id)

	if self.landing.armed && self.landing.targetSlot < 0 && self.cursor == self.landing.target {
		self.landing.targetSlot = slotIndex
	}
}

// Rewinds the cursor so the next recycled symbols are the ones
// that must sit below the payline once the target lands on it.
func (self *Reel) armLanding() {
	below := self.rows - 1 - self.payline
	self.cursor = wrapIndex(self.landing.target+below+1, len(self.strip))
	self.landing.armed = true
	self.logger.Debug("reel landing armed",
		zap.Int("target", self.landing.target),
		zap.Int("symbol", int(self.strip[self.landing.target])),
	)
}

func (self *Reel) paylineY() float64 {
	return float64(self.payline) * self.rowHeight
}

func (self *Reel) snap(overshoot float64) {
	for i := range self.slots {
		self.slots[i].y -= overshoot
		// kill float drift accumulated while spinning
		self.slots[i].y = math.Round(self.slots[i].y/self.rowHeight) * self.rowHeight
	}
	self.speed = 0
	self.stopped = self.landing.target
	self.blurOn = false
	self.blur.Reset()

	depth := max(self.bounceDepth, overshoot)
	self.bounce = tween.NewSequence(
		tween.New(overshoot, depth, self.bounceOut, easing.OutQuad),
		tween.New(depth, 0, self.bounceBack, self.bounceEasing),
	)
	self.bounceOffset = overshoot
	self.setState(Result)
	if self.bounce.Done() {
		self.finish()
	}
}

func (self *Reel) finish() {
	self.bounce = nil
	self.bounceOffset = 0
	self.landing = landing{targetSlot: -1}
	self.setState(Idle)
	for _, fn := range self.onStopped {
		fn(self)
	}
}

func (self *Reel) updateBlur() {
	if self.state == Idle || self.state == Result {
		self.blurOn = false
		self.blur.Reset()
		self.pushBlur()
		return
	}

	switch {
	case !self.blurOn && self.speed >= self.blurOnSpeed:
		self.blurOn = true
		self.blur.Start(self.blurFadeIn)
	case self.blurOn && self.speed < self.blurOffSpeed:
		self.blurOn = false
		self.blur.End(self.blurFadeOut)
	}
	self.blur.Update(1)
	self.pushBlur()
}

func (self *Reel) pushBlur() {
	level := self.blur.Level()
	if ebimath.Abs(level-self.lastBlur) < 1e-6 {
		return
	}
	self.lastBlur = level
	for i := range self.slots {
		self.slots[i].view.SetBlur(level)
	}
}

func (self *Reel) pushPositions() {
	for i := range self.slots {
		slot := &self.slots[i]
		slot.view.SetPosition(self.origin.X, self.origin.Y+slot.y+self.bounceOffset)
	}
}

// Aborts the current spin. Pending stops, the landing and the
// bounce are dropped, blur is cleared and the slots are aligned
// back to the row grid. Stopped callbacks are not invoked.
func (self *Reel) reset() {
	if self.state == Idle {
		return
	}

	self.stop = stopRequest{}
	self.landing = landing{targetSlot: -1}

	// every slot shares the same offset from the grid
	offset := self.slots[0].y - math.Round(self.slots[0].y/self.rowHeight)*self.rowHeight
	for i := range self.slots {
		self.slots[i].y = math.Round((self.slots[i].y-offset)/self.rowHeight) * self.rowHeight
	}
	self.recycleBottom()

	// the top slot now sits in the buffer row above the window
	self.stopped = wrapIndex(self.cursor+1+self.payline, len(self.strip))
	self.speed = 0
	self.bounce = nil
	self.bounceOffset = 0
	self.setState(Idle)
	self.logger.Debug("reel reset", zap.Int("cursor", self.cursor))
	self.updateBlur()
	self.pushPositions()
}

// --- queries ---

// Visible slot indices ordered top to bottom. A slot counts as
// visible for the row its centre is in.
func (self *Reel) visibleSlots() []int {
	rowOf := func(slotIndex int) int {
		return int(math.Floor((self.slots[slotIndex].y + self.rowHeight/2) / self.rowHeight))
	}

	visible := make([]int, 0, self.rows)
	for i := range self.slots {
		row := rowOf(i)
		if row >= 0 && row < self.rows {
			visible = append(visible, i)
		}
	}
	slices.SortFunc(visible, func(a, b int) int {
		return rowOf(a) - rowOf(b)
	})
	return visible
}
