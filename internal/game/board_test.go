package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoardNumbering(t *testing.T) {
	for rows := MinSize; rows <= MaxSize; rows++ {
		for cols := MinSize; cols <= MaxSize; cols++ {
			b := NewBoard(rows, cols)
			require.Equal(t, rows*cols, b.CellCount())

			cells := b.Cells()
			require.Len(t, cells, rows*cols)
			for i, cell := range cells {
				assert.Equal(t, i+1, cell)
			}

			grid := b.Grid()
			require.Len(t, grid, rows)
			next := 1
			for r, row := range grid {
				require.Len(t, row, cols)
				for c, cell := range row {
					assert.Equal(t, next, cell, "row-major order at %d,%d", r, c)
					gotR, gotC := b.Position(cell)
					assert.Equal(t, r, gotR)
					assert.Equal(t, c, gotC)
					next++
				}
			}
		}
	}
}

func TestBoardContains(t *testing.T) {
	b := NewBoard(3, 4)
	assert.False(t, b.Contains(0))
	assert.True(t, b.Contains(1))
	assert.True(t, b.Contains(12))
	assert.False(t, b.Contains(13))
	assert.False(t, b.Contains(-1))
}
