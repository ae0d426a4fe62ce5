package tween

// Chains tweens one after another. The value of a sequence is
// the value of its current tween. Leftover ticks are not carried
// over to the next tween.
type Sequence struct {
	tweens  []Tween
	current int
}

func NewSequence(tweens ...Tween) *Sequence {
	return &Sequence{tweens: tweens}
}

// Advances the current tween and returns the sequence value
// and whether every tween has completed.
func (self *Sequence) Update(tickRate uint64) (float64, bool) {
	if self.Done() {
		return self.Value(), true
	}
	tween := &self.tweens[self.current]
	_, done := tween.Update(tickRate)
	if done {
		self.current += 1
		// skip zero-length tweens so they don't eat an update
		for self.current < len(self.tweens) && self.tweens[self.current].Done() {
			self.current += 1
		}
	}
	return self.Value(), self.Done()
}

func (self *Sequence) Value() float64 {
	switch {
	case len(self.tweens) == 0:
		return 0
	case self.current >= len(self.tweens):
		return self.tweens[len(self.tweens)-1].To
	default:
		return self.tweens[self.current].Value()
	}
}

func (self *Sequence) Done() bool {
	return self.current >= len(self.tweens)
}

func (self *Sequence) Reset() {
	for i := range self.tweens {
		self.tweens[i].Reset()
	}
	self.current = 0
}
