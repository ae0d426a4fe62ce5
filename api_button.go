package mireel

import (
	"image"

	"go.uber.org/zap"
)

type ButtonState uint8

const (
	ButtonReady    ButtonState = iota // idle reels, click spins
	ButtonSlam                        // spinning, click requests a quick stop
	ButtonDisabled                    // waiting for the reels to complete
)

func (self ButtonState) String() string {
	switch self {
	case ButtonReady:
		return "ButtonReady"
	case ButtonSlam:
		return "ButtonSlam"
	case ButtonDisabled:
		return "ButtonDisabled"
	default:
		panic("invalid ButtonState")
	}
}

// Spin button glue. Frontends detect clicks on their own and
// forward them to [SpinButton.Click](); the button takes care of
// spinning, slamming and locking itself until the group reports
// completion.
type SpinButton struct {
	group     *Group
	bounds    image.Rectangle
	state     ButtonState
	allowSlam bool
	clicks    uint64
	logger    *zap.Logger
}

// Creates a spin button bound to the given group. If allowSlam is
// true, a click while the reels spin requests a quick stop
// instead of being ignored.
func NewSpinButton(group *Group, bounds image.Rectangle, allowSlam bool) *SpinButton {
	if group == nil {
		panic("nil group")
	}
	self := &SpinButton{
		group:     group,
		bounds:    bounds,
		allowSlam: allowSlam,
		logger:    group.logger,
	}
	if group.Busy() {
		self.state = ButtonDisabled
	}
	group.OnComplete(func(SpinResult) { self.state = ButtonReady })
	group.OnReset(func() { self.state = ButtonReady })
	return self
}

// Invokes the button. Returns whether the click did anything.
func (self *SpinButton) Click() bool {
	self.clicks += 1
	switch self.state {
	case ButtonReady:
		if err := self.group.Spin(); err != nil {
			self.logger.Warn("spin rejected", zap.Error(err))
			return false
		}
		if self.allowSlam {
			self.state = ButtonSlam
		} else {
			self.state = ButtonDisabled
		}
		return true
	case ButtonSlam:
		if err := self.group.Slam(); err != nil {
			// keep the reels stoppable by the next click
			self.logger.Warn("slam rejected", zap.Error(err))
			if !self.group.Busy() {
				self.state = ButtonReady
			}
			return false
		}
		self.state = ButtonDisabled
		return true
	default:
		return false
	}
}

// Aborts the spin through [Group.Reset]() and enables the button
// again.
func (self *SpinButton) Reset() {
	self.group.Reset()
}

// Clicks the button if (x, y) falls within its bounds.
func (self *SpinButton) ClickAt(x, y int) bool {
	if !self.Contains(x, y) {
		return false
	}
	return self.Click()
}

// Hit test against the button bounds.
func (self *SpinButton) Contains(x, y int) bool {
	return image.Pt(x, y).In(self.bounds)
}

func (self *SpinButton) Bounds() image.Rectangle { return self.bounds }
func (self *SpinButton) State() ButtonState { return self.state }

// Returns how many times the button was invoked, ignored clicks
// included.
func (self *SpinButton) Clicks() uint64 { return self.clicks }

// Returns whether clicks currently do anything.
func (self *SpinButton) Enabled() bool {
	return self.state != ButtonDisabled
}

// Returns the text to display on the button.
func (self *SpinButton) Label() string {
	switch self.state {
	case ButtonReady:
		return "SPIN"
	case ButtonSlam:
		return "STOP"
	default:
		return "..."
	}
}
