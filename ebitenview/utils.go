package ebitenview

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Builds a placeholder image from a mask, one byte per pixel.
// Zero pixels stay transparent, n > 0 takes colors[n-1]. Without
// colors, every set pixel is white.
func MaskToImage(width int, mask []uint8, colors ...color.RGBA) *ebiten.Image {
	if width <= 0 {
		panic("expected width > 0")
	}
	height := len(mask) / width
	if height*width != len(mask) {
		panic("given width can't split given mask into rows of equal length")
	}
	if len(colors) == 0 {
		colors = []color.RGBA{{255, 255, 255, 255}}
	}

	rgba := image.NewRGBA(image.Rect(0, 0, width, height))
	for index, value := range mask {
		if value == 0 {
			continue
		}
		clr := colors[value-1]
		pixelIndex := index << 2
		rgba.Pix[pixelIndex+0] = clr.R
		rgba.Pix[pixelIndex+1] = clr.G
		rgba.Pix[pixelIndex+2] = clr.B
		rgba.Pix[pixelIndex+3] = clr.A
	}
	return ebiten.NewImageFromImage(rgba)
}

// Returns the image options with a GeoM set up to draw the
// given image at (x, y), scaled to fit the given size.
func DrawImageOptionsAt(source *ebiten.Image, x, y, width, height float64) ebiten.DrawImageOptions {
	var opts ebiten.DrawImageOptions
	bounds := source.Bounds()
	if bounds.Dx() > 0 && bounds.Dy() > 0 {
		opts.GeoM.Scale(width/float64(bounds.Dx()), height/float64(bounds.Dy()))
	}
	opts.GeoM.Translate(x, y)
	return opts
}

// Fills the given rectangle with alpha blending.
func FillRect(target *ebiten.Image, bounds image.Rectangle, fillColor color.Color) {
	vector.DrawFilledRect(
		target,
		float32(bounds.Min.X), float32(bounds.Min.Y),
		float32(bounds.Dx()), float32(bounds.Dy()),
		fillColor, false,
	)
}

// Returns [color.RGBA]{r, g, b, 255}.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{r, g, b, 255}
}
