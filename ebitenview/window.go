package ebitenview

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Reel windows are offscreen canvases sized to the visible rows
// of a reel. Sprites are drawn to the window and the window is
// then projected to the screen, which clips the buffer rows.
//
// Creating a window involves creating an [*ebiten.Image], so
// windows are created once per reel and reused every frame.
type ReelWindow struct {
	canvas        *ebiten.Image
	x, y          float64
	width         int
	height        int
	sprites       []*Sprite
	drawImageOpts ebiten.DrawImageOptions
}

// Creates a window with its top-left corner at (x, y).
func NewReelWindow(x, y float64, width, height int) *ReelWindow {
	return &ReelWindow{
		canvas: ebiten.NewImage(width, height),
		x:      x,
		y:      y,
		width:  width,
		height: height,
	}
}

func (self *ReelWindow) Add(sprite *Sprite) {
	self.sprites = append(self.sprites, sprite)
}

// Returns the size of the window.
func (self *ReelWindow) Size() (width, height int) {
	return self.width, self.height
}

// Redraws every sprite and projects the window on the target.
func (self *ReelWindow) Draw(target *ebiten.Image) {
	self.canvas.Clear()
	for _, sprite := range self.sprites {
		sprite.Draw(self.canvas, self.x, self.y)
	}
	self.drawImageOpts.GeoM.Reset()
	self.drawImageOpts.GeoM.Translate(self.x, self.y)
	target.DrawImage(self.canvas, &self.drawImageOpts)
}
