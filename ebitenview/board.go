package ebitenview

import (
	"image"
	"image/color"

	"github.com/edwinsyarief/mireel"
	"github.com/edwinsyarief/mireel/config"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

var (
	frameColor   = RGB(40, 40, 56)
	paylineColor = color.RGBA{200, 40, 40, 200}
	buttonColors = map[mireel.ButtonState]color.RGBA{
		mireel.ButtonReady:    RGB(40, 160, 80),
		mireel.ButtonSlam:     RGB(200, 120, 30),
		mireel.ButtonDisabled: RGB(90, 90, 90),
	}
)

// All the reel windows of a group. Pass [Board.Factory] to
// [mireel.NewGroup]() so the group views are created here.
type Board struct {
	cfg     *config.Config
	loader  *Loader
	windows []*ReelWindow
	originX float64
	originY float64
}

func NewBoard(cfg *config.Config, loader *Loader, originX, originY float64) *Board {
	self := &Board{cfg: cfg, loader: loader, originX: originX, originY: originY}
	width := int(cfg.SymbolWidth)
	height := int(float64(cfg.Rows) * cfg.SymbolHeight)
	for i := 0; i < cfg.Reels(); i++ {
		x := originX + float64(i)*(cfg.SymbolWidth+cfg.ReelGap)
		self.windows = append(self.windows, NewReelWindow(x, originY, width, height))
	}
	return self
}

// View factory for [mireel.NewGroup](). The group must also be
// created with [mireel.WithOrigin]() matching the board origin.
func (self *Board) Factory(reel, slot int) mireel.SymbolView {
	sprite := NewSprite(self.loader, self.cfg.SymbolWidth, self.cfg.SymbolHeight)
	self.windows[reel].Add(sprite)
	return sprite
}

// Returns the bounds covering all reel windows.
func (self *Board) Bounds() image.Rectangle {
	reels := float64(self.cfg.Reels())
	width := reels*self.cfg.SymbolWidth + (reels-1)*self.cfg.ReelGap
	height := float64(self.cfg.Rows) * self.cfg.SymbolHeight
	return image.Rect(int(self.originX), int(self.originY), int(self.originX+width), int(self.originY+height))
}

func (self *Board) Draw(screen *ebiten.Image) {
	frame := self.Bounds().Inset(-6)
	FillRect(screen, frame, frameColor)
	for _, window := range self.windows {
		window.Draw(screen)
	}

	paylineY := int(self.originY + (float64(self.cfg.PaylineRow)+0.5)*self.cfg.SymbolHeight)
	bounds := self.Bounds()
	FillRect(screen, image.Rect(bounds.Min.X-6, paylineY-1, bounds.Max.X+6, paylineY+1), paylineColor)
}

// Draws a spin button with its label.
func DrawButton(screen *ebiten.Image, button *mireel.SpinButton) {
	bounds := button.Bounds()
	FillRect(screen, bounds, buttonColors[button.State()])
	label := button.Label()
	x := bounds.Min.X + (bounds.Dx()-len(label)*6)/2
	y := bounds.Min.Y + (bounds.Dy()-16)/2
	ebitenutil.DebugPrintAt(screen, label, x, y)
}
