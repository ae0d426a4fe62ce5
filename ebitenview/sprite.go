package ebitenview

import (
	"github.com/edwinsyarief/mireel"
	"github.com/edwinsyarief/mireel/symbol"
	"github.com/hajimehoshi/ebiten/v2"
)

// A single symbol instance. Positions are relative to the board
// origin, sizes come from the reel configuration.
type Sprite struct {
	loader *Loader
	x, y   float64
	width  float64
	height float64
	id     symbol.ID
	blur   float64
	opts   ebiten.DrawImageOptions
}

var _ mireel.SymbolView = (*Sprite)(nil)

func NewSprite(loader *Loader, width, height float64) *Sprite {
	return &Sprite{loader: loader, width: width, height: height}
}

func (self *Sprite) SetPosition(x, y float64) { self.x, self.y = x, y }
func (self *Sprite) SetSymbol(id symbol.ID) { self.id = id }
func (self *Sprite) SetBlur(level float64) { self.blur = clamp01(level) }

func (self *Sprite) Position() (x, y float64) { return self.x, self.y }
func (self *Sprite) Symbol() symbol.ID { return self.id }

// Draws the sprite on the target, shifted by (-originX, -originY).
// The blurred image is crossfaded over the sharp one.
func (self *Sprite) Draw(target *ebiten.Image, originX, originY float64) {
	sharpAlpha, blurAlpha := crossfade(self.blur)
	x, y := self.x-originX, self.y-originY
	if sharpAlpha > 0 {
		self.drawImage(target, self.loader.Image(self.id, false), x, y, sharpAlpha)
	}
	if blurAlpha > 0 {
		self.drawImage(target, self.loader.Image(self.id, true), x, y, blurAlpha)
	}
}

func (self *Sprite) drawImage(target, source *ebiten.Image, x, y float64, alpha float32) {
	self.opts = DrawImageOptionsAt(source, x, y, self.width, self.height)
	self.opts.ColorScale.ScaleAlpha(alpha)
	target.DrawImage(source, &self.opts)
}

// Returns the alpha of the sharp and blurred images for the
// given blur level. Both ramps run twice as fast as the level so
// the mid point doesn't look washed out.
func crossfade(level float64) (sharp, blurred float32) {
	return float32(clamp01(1 - 2*level)), float32(clamp01(2 * level))
}

func clamp01(value float64) float64 {
	return min(max(value, 0), 1)
}
