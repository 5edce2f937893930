package render

import "github.com/lguibr/brickbreaker/game"

// CellKind is what occupies one character cell of a rasterised frame.
type CellKind uint8

const (
	CellEmpty CellKind = iota
	CellBlock
	CellBonus
	CellPaddle
	CellBall
)

// RGBPixel is a 24-bit colour.
type RGBPixel struct {
	R, G, B uint8
}

// Entity colours, shared by every host.
var (
	ColorBackground = RGBPixel{0, 0, 0}
	ColorBlock      = RGBPixel{0, 128, 0}
	ColorBall       = RGBPixel{255, 0, 0}
	ColorPaddle     = RGBPixel{0, 0, 255}
	ColorBonus      = RGBPixel{255, 255, 0}
)

func (kind CellKind) Color() RGBPixel {
	switch kind {
	case CellBlock:
		return ColorBlock
	case CellBonus:
		return ColorBonus
	case CellPaddle:
		return ColorPaddle
	case CellBall:
		return ColorBall
	}
	return ColorBackground
}

func (kind CellKind) Glyph() rune {
	switch kind {
	case CellBlock:
		return '#'
	case CellBonus:
		return '+'
	case CellPaddle:
		return '='
	case CellBall:
		return 'O'
	}
	return ' '
}

// Rasterize maps the field onto a cols×rows grid of cells. A cell takes the
// kind of the topmost entity overlapping it: balls over the paddle over
// bonuses over blocks.
func Rasterize(state game.GameState, cols, rows int) [][]CellKind {
	if cols <= 0 || rows <= 0 || state.Width <= 0 || state.Height <= 0 {
		return nil
	}
	cells := make([][]CellKind, rows)
	for y := range cells {
		cells[y] = make([]CellKind, cols)
	}

	paint := func(r game.Rect, kind CellKind) {
		if r.W <= 0 || r.H <= 0 {
			return
		}
		// Cell (cx, cy) covers [cx*W/cols, (cx+1)*W/cols) horizontally.
		x0 := r.X * cols / state.Width
		x1 := ceilDiv(r.Right()*cols, state.Width)
		y0 := r.Y * rows / state.Height
		y1 := ceilDiv(r.Bottom()*rows, state.Height)
		for cy := max(y0, 0); cy < min(y1, rows); cy++ {
			for cx := max(x0, 0); cx < min(x1, cols); cx++ {
				if cells[cy][cx] < kind {
					cells[cy][cx] = kind
				}
			}
		}
	}

	for _, block := range state.Blocks {
		if block.Visible {
			paint(block.Bounds(), CellBlock)
		}
	}
	for _, bonus := range state.Bonuses {
		paint(bonus.Bounds(), CellBonus)
	}
	paint(state.Paddle.Bounds(), CellPaddle)
	for _, ball := range state.Balls {
		paint(ball.Bounds(), CellBall)
	}
	return cells
}

func ceilDiv(a, b int) int {
	if a <= 0 {
		return a / b
	}
	return (a + b - 1) / b
}
