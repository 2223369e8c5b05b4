package window

import "github.com/lox/gundown/internal/game"

const (
	windowWidth  = 520
	windowHeight = 720

	cellSize = 80
	cellGap  = 8
	gridTop  = 110
)

type rect struct {
	X, Y, W, H float32
}

func (r rect) contains(x, y float32) bool {
	return x >= r.X && x < r.X+r.W && y >= r.Y && y < r.Y+r.H
}

// layout holds the fixed widget positions for a window size.
type layout struct {
	width, height float32

	sizeField   rect
	hiddenField rect
	cheatBox    rect
	startButton rect

	newGameButton rect
	quitButton    rect
}

func newLayout(width, height float32) layout {
	return layout{
		width:         width,
		height:        height,
		sizeField:     rect{X: 260, Y: 120, W: 160, H: 40},
		hiddenField:   rect{X: 260, Y: 180, W: 160, H: 40},
		cheatBox:      rect{X: 260, Y: 240, W: 32, H: 32},
		startButton:   rect{X: 180, Y: 320, W: 160, H: 48},
		newGameButton: rect{X: 90, Y: height - 80, W: 160, H: 48},
		quitButton:    rect{X: width - 250, Y: height - 80, W: 160, H: 48},
	}
}

// gridOrigin centres the board horizontally.
func (l layout) gridOrigin(b game.Board) (float32, float32) {
	w := float32(b.Cols()*cellSize + (b.Cols()-1)*cellGap)
	return (l.width - w) / 2, gridTop
}

// cellRect is the button for zero-based row r and column c.
func (l layout) cellRect(b game.Board, r, c int) rect {
	x, y := l.gridOrigin(b)
	return rect{
		X: x + float32(c*(cellSize+cellGap)),
		Y: y + float32(r*(cellSize+cellGap)),
		W: cellSize,
		H: cellSize,
	}
}

// cellAt returns the cell whose button contains x, y.
func (l layout) cellAt(b game.Board, x, y float32) (int, bool) {
	for r := 0; r < b.Rows(); r++ {
		for c := 0; c < b.Cols(); c++ {
			if l.cellRect(b, r, c).contains(x, y) {
				return b.CellAt(r, c), true
			}
		}
	}
	return 0, false
}
