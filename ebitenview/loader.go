// Package ebitenview implements [mireel.SymbolView] on top of
// Ebitengine images. It is a reference frontend: it loads symbol
// images from the paths in a [symbol.Table] and draws each reel
// through a clipped offscreen window.
package ebitenview

import (
	"errors"
	"image/color"
	_ "image/png"
	"io/fs"

	"github.com/edwinsyarief/mireel/symbol"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"go.uber.org/zap"
)

type imageKey struct {
	id      symbol.ID
	blurred bool
}

// Loads and caches symbol images by logical id. Missing files
// are replaced by generated placeholders, so the demo runs
// without any assets.
type Loader struct {
	table        *symbol.Table
	images       map[imageKey]*ebiten.Image
	placeholders map[imageKey]*ebiten.Image
	logger       *zap.Logger
}

func NewLoader(table *symbol.Table, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		table:        table,
		images:       make(map[imageKey]*ebiten.Image),
		placeholders: make(map[imageKey]*ebiten.Image),
		logger:       logger,
	}
}

// Returns the image for the given symbol.
func (self *Loader) Image(id symbol.ID, blurred bool) *ebiten.Image {
	key := imageKey{id, blurred}
	if img, found := self.images[key]; found {
		return img
	}

	path, err := self.table.ImagePath(id, blurred)
	if err == nil {
		var img *ebiten.Image
		img, _, err = ebitenutil.NewImageFromFile(path)
		if err == nil {
			self.images[key] = img
			return img
		}
	}
	if errors.Is(err, fs.ErrNotExist) {
		self.logger.Debug("symbol image missing, using placeholder", zap.Int("symbol", int(id)))
	} else {
		self.logger.Warn("symbol image failed to load", zap.Int("symbol", int(id)), zap.Error(err))
	}
	img := self.placeholder(key)
	self.images[key] = img
	return img
}

// Preloads the sharp and blurred images of every symbol.
func (self *Loader) Preload() {
	for _, id := range self.table.IDs() {
		self.Image(id, false)
		self.Image(id, true)
	}
}

func (self *Loader) placeholder(key imageKey) *ebiten.Image {
	if img, found := self.placeholders[key]; found {
		return img
	}
	clr := placeholderColor(key.id)
	if key.blurred {
		clr.A = 160
		clr.R, clr.G, clr.B = uint8(uint16(clr.R)*160/255), uint8(uint16(clr.G)*160/255), uint8(uint16(clr.B)*160/255)
	}
	img := MaskToImage(8, placeholderMask(key.blurred), clr, RGB(24, 24, 32))
	self.placeholders[key] = img
	return img
}

var palette = []color.RGBA{
	{220, 40, 60, 255},
	{240, 220, 60, 255},
	{250, 150, 40, 255},
	{150, 60, 200, 255},
	{240, 190, 40, 255},
	{90, 90, 110, 255},
	{230, 30, 30, 255},
}

func placeholderColor(id symbol.ID) color.RGBA {
	index := int(id) % len(palette)
	if index < 0 {
		index += len(palette)
	}
	return palette[index]
}

func placeholderMask(blurred bool) []uint8 {
	if blurred {
		return []uint8{
			0, 1, 1, 1, 1, 1, 1, 0,
			0, 1, 1, 1, 1, 1, 1, 0,
			0, 1, 1, 1, 1, 1, 1, 0,
			0, 1, 1, 1, 1, 1, 1, 0,
			0, 1, 1, 1, 1, 1, 1, 0,
			0, 1, 1, 1, 1, 1, 1, 0,
			0, 1, 1, 1, 1, 1, 1, 0,
			0, 1, 1, 1, 1, 1, 1, 0,
		}
	}
	return []uint8{
		0, 0, 1, 1, 1, 1, 0, 0,
		0, 1, 1, 1, 1, 1, 1, 0,
		1, 1, 2, 1, 1, 2, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 1, 1, 1, 1, 1, 1,
		1, 1, 2, 2, 2, 2, 1, 1,
		0, 1, 1, 1, 1, 1, 1, 0,
		0, 0, 1, 1, 1, 1, 0, 0,
	}
}
