// Package tui renders reel groups on a terminal through tcell.
//
// Each symbol row takes [LinesPerRow] terminal lines and each
// reel [CellWidth] columns. Symbols are drawn with the glyph of
// their [symbol.Table] entry, dimmed while blurred.
package tui

import (
	"image"

	"github.com/edwinsyarief/mireel"
	"github.com/edwinsyarief/mireel/config"
	"github.com/edwinsyarief/mireel/symbol"
	"github.com/gdamore/tcell/v2"
)

const (
	LinesPerRow = 3
	CellWidth   = 5
)

var (
	frameStyle   = tcell.StyleDefault.Foreground(tcell.ColorGray)
	paylineStyle = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	glyphStyle   = tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	blurStyle    = tcell.StyleDefault.Foreground(tcell.ColorGray).Dim(true)
	buttonStyles = map[mireel.ButtonState]tcell.Style{
		mireel.ButtonReady:    tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorGreen),
		mireel.ButtonSlam:     tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorOrange),
		mireel.ButtonDisabled: tcell.StyleDefault.Foreground(tcell.ColorSilver).Background(tcell.ColorDarkGray),
	}
)

// The subset of [tcell.Screen] the board draws on.
type Canvas interface {
	SetContent(x, y int, mainc rune, combc []rune, style tcell.Style)
}

var _ Canvas = (tcell.Screen)(nil)

// All the cells of a group, framed at a fixed terminal position.
// Pass [Board.Factory] to [mireel.NewGroup]().
type Board struct {
	cfg   *config.Config
	table *symbol.Table
	cells []*Cell
	col   int
	row   int
}

// Creates a board whose top-left frame corner sits at (col, row).
// The group must be created with the default origin.
func NewBoard(cfg *config.Config, table *symbol.Table, col, row int) *Board {
	return &Board{cfg: cfg, table: table, col: col, row: row}
}

func (self *Board) Factory(reel, slot int) mireel.SymbolView {
	cell := &Cell{reel: reel}
	self.cells = append(self.cells, cell)
	return cell
}

// Returns the frame size in terminal cells.
func (self *Board) Size() (width, height int) {
	reels := self.cfg.Reels()
	return reels*(CellWidth+1) + 1, self.cfg.Rows*LinesPerRow + 2
}

func (self *Board) windowLines() int { return self.cfg.Rows * LinesPerRow }

// Returns the terminal column of the glyph of the given reel.
func (self *Board) glyphColumn(reel int) int {
	return self.col + 1 + reel*(CellWidth+1) + CellWidth/2
}

func (self *Board) paylineLine() int {
	return self.row + 1 + self.cfg.PaylineRow*LinesPerRow + LinesPerRow/2
}

func (self *Board) Draw(canvas Canvas) {
	width, height := self.Size()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			r := ' '
			switch {
			case y == 0 || y == height-1:
				r = '─'
			case x%(CellWidth+1) == 0:
				r = '│'
			}
			canvas.SetContent(self.col+x, self.row+y, r, nil, frameStyle)
		}
	}
	canvas.SetContent(self.col, self.paylineLine(), '▶', nil, paylineStyle)
	canvas.SetContent(self.col+width-1, self.paylineLine(), '◀', nil, paylineStyle)

	for _, cell := range self.cells {
		line := cell.line(0, self.cfg.SymbolHeight)
		if line < 0 || line >= self.windowLines() {
			continue
		}
		style := glyphStyle
		if cell.Blurred() {
			style = blurStyle
		}
		canvas.SetContent(self.glyphColumn(cell.reel), self.row+1+line, self.table.Glyph(cell.id), nil, style)
	}
}

const buttonWidth = 10

// Returns the button area, in terminal cells, right under the
// board frame.
func (self *Board) ButtonBounds() image.Rectangle {
	width, height := self.Size()
	x := self.col + (width-buttonWidth)/2
	y := self.row + height + 1
	return image.Rect(x, y, x+buttonWidth, y+1)
}

// Draws the spin button label centred in [Board.ButtonBounds]().
func (self *Board) DrawButton(canvas Canvas, button *mireel.SpinButton) {
	bounds := self.ButtonBounds()
	style := buttonStyles[button.State()]
	for x := bounds.Min.X; x < bounds.Max.X; x++ {
		canvas.SetContent(x, bounds.Min.Y, ' ', nil, style)
	}
	label := "[ " + button.Label() + " ]"
	DrawText(canvas, bounds.Min.X+(buttonWidth-len(label))/2, bounds.Min.Y, label, style)
}

// Writes text at the given position, one rune per cell.
func DrawText(canvas Canvas, x, y int, text string, style tcell.Style) {
	i := 0
	for _, r := range text {
		canvas.SetContent(x+i, y, r, nil, style)
		i++
	}
}
