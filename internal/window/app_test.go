package window

import (
	"errors"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/randutil"
	"github.com/lox/gundown/internal/setup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubWriter struct {
	records []game.Record
	err     error
}

func (w *stubWriter) Write(rec *game.Record) (string, error) {
	if w.err != nil {
		return "", w.err
	}
	w.records = append(w.records, *rec)
	return "20260307 1405 1111.txt", nil
}

func newTestApp(t *testing.T, w ResultWriter, defaults game.Config, hidden ...int) *App {
	t.Helper()
	mClock := quartz.NewMock(t)
	mClock.Set(time.Date(2026, time.March, 7, 14, 5, 0, 0, time.UTC))
	return NewApp(Options{
		Logger:         log.New(io.Discard),
		RNG:            randutil.New(11),
		Clock:          mClock,
		Writer:         w,
		Defaults:       defaults,
		SessionOptions: []game.SessionOption{game.WithHidden(hidden...)},
	})
}

func centre(r rect) (float32, float32) {
	return r.X + r.W/2, r.Y + r.H/2
}

func (a *App) clickCell(t *testing.T, cell int) {
	t.Helper()
	board := a.session.Board()
	r, c := board.Position(cell)
	a.click(centre(a.layout.cellRect(board, r, c)))
}

func TestLayoutCellAt(t *testing.T) {
	l := newLayout(windowWidth, windowHeight)
	for _, size := range [][2]int{{3, 3}, {3, 5}, {5, 4}, {5, 5}} {
		board := game.NewBoard(size[0], size[1])
		for _, cell := range board.Cells() {
			r, c := board.Position(cell)
			x, y := centre(l.cellRect(board, r, c))
			got, ok := l.cellAt(board, x, y)
			require.True(t, ok)
			assert.Equal(t, cell, got)
		}

		last := l.cellRect(board, board.Rows()-1, board.Cols()-1)
		assert.LessOrEqual(t, last.X+last.W, float32(windowWidth), "%v fits horizontally", size)
		assert.Less(t, last.Y+last.H, l.newGameButton.Y, "%v clears the buttons", size)

		// The gap between the first two buttons is not a cell.
		first := l.cellRect(board, 0, 0)
		_, ok := l.cellAt(board, first.X+first.W+cellGap/2, first.Y+1)
		assert.False(t, ok)
	}

	_, ok := l.cellAt(game.NewBoard(3, 3), 1, 1)
	assert.False(t, ok)
}

func TestSetupForm(t *testing.T) {
	a := newTestApp(t, nil, game.Config{Rows: 3, Cols: 3, Hidden: 2})
	assert.Equal(t, "3x3", a.form.Size)
	assert.Equal(t, "2", a.form.Hidden)

	a.click(centre(a.layout.hiddenField))
	require.Equal(t, setup.FieldHidden, a.form.Focus)
	a.backspace()
	a.typeText("8")
	a.click(centre(a.layout.startButton))
	assert.Equal(t, screenSetup, a.screen)
	assert.Equal(t, "For a 3x3 grid, hidden objects must be between 2 and 4", a.form.Err)

	a.click(centre(a.layout.sizeField))
	for range 3 {
		a.backspace()
	}
	a.typeText("4x4")
	a.click(centre(a.layout.cheatBox))
	assert.True(t, a.form.Cheat)
	a.tab(true)
	a.space()
	assert.True(t, a.form.Cheat, "space only toggles when the box is focused")
	a.tab(false)
	a.space()
	assert.False(t, a.form.Cheat)

	a.enter()
	require.Equal(t, screenGrid, a.screen, a.form.Err)
	assert.Empty(t, a.form.Err)
	assert.Equal(t, game.Config{Rows: 4, Cols: 4, Hidden: 8}, a.session.Config())
}

func TestEmptyDefaults(t *testing.T) {
	a := newTestApp(t, nil, game.Config{})
	assert.Empty(t, a.form.Size)
	a.enter()
	assert.Equal(t, "Grid format must be like 3x3", a.form.Err)
}

func TestPlayToResult(t *testing.T) {
	w := &stubWriter{}
	a := newTestApp(t, w, game.Config{Rows: 3, Cols: 3, Hidden: 2}, 1, 5)
	a.enter()
	require.Equal(t, screenGrid, a.screen)

	a.clickCell(t, 5)
	a.clickCell(t, 5)
	assert.Equal(t, 2, a.session.Turn(), "repeated click uses no turn")

	// Setup-only input is ignored during play.
	a.typeText("9")
	a.tab(false)
	a.enter()
	assert.Equal(t, screenGrid, a.screen)

	a.clickCell(t, 2)
	require.Equal(t, screenResult, a.screen)
	require.Len(t, w.records, 1)
	assert.Equal(t, []int{5}, w.records[0].Found)
	assert.Equal(t, 50, a.record.Score)
	assert.Equal(t, "Game saved to 20260307 1405 1111.txt", a.status())

	a.click(centre(a.layout.newGameButton))
	assert.Equal(t, screenSetup, a.screen)
	assert.Equal(t, "3x3", a.form.Size)
	assert.Empty(t, a.status())
}

func TestWriteFailureShownAsStatus(t *testing.T) {
	w := &stubWriter{err: errors.New("read-only file system")}
	a := newTestApp(t, w, game.Config{Rows: 3, Cols: 3, Hidden: 2}, 1, 5)
	a.enter()
	a.clickCell(t, 1)
	a.clickCell(t, 5)

	require.Equal(t, screenResult, a.screen)
	assert.Equal(t, 100, a.record.Score)
	assert.Equal(t, "Error writing to file: read-only file system", a.status())

	a.click(centre(a.layout.quitButton))
	assert.True(t, a.quit)
}
