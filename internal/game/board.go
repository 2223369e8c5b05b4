package game

// Board is an immutable rows x cols grid whose cells are numbered
// 1..CellCount in row-major order.
type Board struct {
	rows int
	cols int
}

// NewBoard returns a board of the given dimensions. It does not validate;
// use Config.Validate for the game bounds.
func NewBoard(rows, cols int) Board {
	return Board{rows: rows, cols: cols}
}

// Rows returns the number of rows.
func (b Board) Rows() int { return b.rows }

// Cols returns the number of columns.
func (b Board) Cols() int { return b.cols }

// CellCount returns rows*cols.
func (b Board) CellCount() int { return b.rows * b.cols }

// Contains reports whether cell is a valid cell number on this board.
func (b Board) Contains(cell int) bool {
	return cell >= 1 && cell <= b.CellCount()
}

// Cells returns every cell number in order.
func (b Board) Cells() []int {
	cells := make([]int, b.CellCount())
	for i := range cells {
		cells[i] = i + 1
	}
	return cells
}

// Grid returns the cell numbers grouped by row.
func (b Board) Grid() [][]int {
	grid := make([][]int, b.rows)
	for r := range grid {
		row := make([]int, b.cols)
		for c := range row {
			row[c] = b.CellAt(r, c)
		}
		grid[r] = row
	}
	return grid
}

// CellAt returns the cell number at zero-based row r and column c.
func (b Board) CellAt(r, c int) int {
	return r*b.cols + c + 1
}

// Position returns the zero-based row and column of cell.
func (b Board) Position(cell int) (r, c int) {
	return (cell - 1) / b.cols, (cell - 1) % b.cols
}
