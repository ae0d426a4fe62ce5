package tui

import (
	"math"

	"github.com/edwinsyarief/mireel"
	"github.com/edwinsyarief/mireel/symbol"
)

// Blur levels above this threshold draw the glyph dimmed.
const DimThreshold = 0.5

// A single symbol instance drawn as one glyph. The reel places
// cells in logical pixels; the board maps them to terminal lines.
type Cell struct {
	reel int
	x, y float64
	id   symbol.ID
	blur float64
}

var _ mireel.SymbolView = (*Cell)(nil)

func (self *Cell) SetPosition(x, y float64) { self.x, self.y = x, y }
func (self *Cell) SetSymbol(id symbol.ID) { self.id = id }
func (self *Cell) SetBlur(level float64) { self.blur = level }

func (self *Cell) Reel() int { return self.reel }
func (self *Cell) Symbol() symbol.ID { return self.id }
func (self *Cell) Blurred() bool { return self.blur > DimThreshold }

// Returns the window line the glyph falls on, relative to the
// window top. The result may be outside the window.
func (self *Cell) line(originY, rowHeight float64) int {
	top := math.Round((self.y - originY) / rowHeight * LinesPerRow)
	return int(top) + LinesPerRow/2
}
