package mireel

// Blur level channel with fade in, hold and fade out stages,
// all measured in ticks. Starting while fading out (or ending
// while fading in) resumes from the current level, so blur never
// pops when speed oscillates around the thresholds.
type blurFader struct {
	elapsed uint64
	fadeIn  TicksDuration
	hold    TicksDuration
	fadeOut TicksDuration
	level   float64
}

func (self *blurFader) Start(fadeIn TicksDuration) {
	if self.IsActive() && !self.IsFadingOut() {
		return
	}
	activity := self.Activity()
	self.fadeIn = fadeIn
	self.hold = maxUint32
	self.fadeOut = 0
	self.elapsed = uint64(float64(fadeIn) * activity)
}

func (self *blurFader) End(fadeOut TicksDuration) {
	if !self.IsActive() || self.IsFadingOut() {
		return
	}
	activity := self.Activity()
	var held uint64
	if self.elapsed > uint64(self.fadeIn) {
		held = self.elapsed - uint64(self.fadeIn)
	}
	self.hold = TicksDuration(min(held, maxUint32))
	self.fadeOut = fadeOut
	self.elapsed = uint64(self.fadeIn) + uint64(self.hold)
	self.elapsed += uint64(float64(fadeOut) * (1.0 - activity))
}

func (self *blurFader) Reset() {
	*self = blurFader{}
}

func (self *blurFader) total() uint64 {
	return uint64(self.fadeIn) + uint64(self.hold) + uint64(self.fadeOut)
}

func (self *blurFader) IsActive() bool {
	return self.elapsed < self.total()
}

func (self *blurFader) IsFadingIn() bool {
	return self.IsActive() && self.elapsed < uint64(self.fadeIn)
}

func (self *blurFader) IsFadingOut() bool {
	return self.IsActive() && self.elapsed >= uint64(self.fadeIn)+uint64(self.hold)
}

func (self *blurFader) Update(tickRate uint64) {
	if self.IsActive() {
		self.elapsed = min(self.elapsed+tickRate, self.total())
	}
	self.level = self.Activity()
}

// Last level computed by Update().
func (self *blurFader) Level() float64 {
	return self.level
}

func (self *blurFader) Activity() float64 {
	if !self.IsActive() {
		return 0
	}
	elapsed := self.elapsed
	if elapsed < uint64(self.fadeIn) {
		return float64(elapsed) / float64(self.fadeIn)
	}
	elapsed -= uint64(self.fadeIn)
	if elapsed < uint64(self.hold) {
		return 1.0
	}
	elapsed -= uint64(self.hold)
	return 1.0 - float64(elapsed)/float64(self.fadeOut)
}
