package tui

import (
	"io"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/randutil"
	"github.com/lox/gundown/internal/setup"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingWriter struct {
	records []game.Record
}

func (w *recordingWriter) Write(rec *game.Record) (string, error) {
	w.records = append(w.records, *rec)
	return "results/20260307 1405 4321.txt", nil
}

func newTestModel(t *testing.T, w ResultWriter, hidden ...int) *Model {
	t.Helper()
	mClock := quartz.NewMock(t)
	mClock.Set(time.Date(2026, time.March, 7, 14, 5, 0, 0, time.UTC))

	var sessionOpts []game.SessionOption
	if len(hidden) > 0 {
		sessionOpts = append(sessionOpts, game.WithHidden(hidden...))
	}
	return NewModel(Options{
		Logger:         log.New(io.Discard),
		RNG:            randutil.New(7),
		Clock:          mClock,
		Writer:         w,
		Defaults:       game.Config{Rows: 3, Cols: 3, Hidden: 2},
		SessionOptions: sessionOpts,
	})
}

func send(m *Model, msgs ...tea.Msg) {
	for _, msg := range msgs {
		m.Update(msg)
	}
}

func key(t tea.KeyType) tea.KeyMsg { return tea.KeyMsg{Type: t} }

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

// buttonAt returns the centre of the button for zero-based row r, column c.
func buttonAt(r, c int) (int, int) {
	return gridLeft + c*(buttonWidth+buttonGap) + 1, gridTop + r
}

func TestSetupPrefilledFromDefaults(t *testing.T) {
	m := newTestModel(t, nil)

	assert.Equal(t, screenSetup, m.screen)
	assert.Equal(t, "3x3", m.sizeInput.Value())
	assert.Equal(t, "2", m.hiddenInput.Value())
	assert.Equal(t, setup.FieldSize, m.form.Focus)

	view := m.View()
	assert.Contains(t, view, "Grid size (3x3 to 5x5):")
	assert.Contains(t, view, "Cheat mode:")
	assert.Contains(t, view, "[ ]")
}

func TestSetupRejectsInvalidInput(t *testing.T) {
	m := newTestModel(t, nil)

	send(m, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace), runes("6x6"), key(tea.KeyEnter))
	assert.Equal(t, screenSetup, m.screen)
	assert.Equal(t, "Grid size must be between 3x3 and 5x5", m.form.Err)
	assert.Contains(t, m.View(), "Grid size must be between 3x3 and 5x5")

	send(m, key(tea.KeyBackspace), key(tea.KeyBackspace), key(tea.KeyBackspace), runes("3x3"),
		key(tea.KeyTab), key(tea.KeyBackspace), runes("9"), key(tea.KeyEnter))
	assert.Equal(t, screenSetup, m.screen)
	assert.Equal(t, "For a 3x3 grid, hidden objects must be between 2 and 4", m.form.Err)

	send(m, key(tea.KeyBackspace), runes("abc"), key(tea.KeyEnter))
	assert.Equal(t, "Dimensions and hidden count must be integers", m.form.Err)
}

func TestSetupToggleCheat(t *testing.T) {
	m := newTestModel(t, nil, 1, 5)

	send(m, key(tea.KeyTab), key(tea.KeyTab))
	require.Equal(t, setup.FieldCheat, m.form.Focus)
	send(m, key(tea.KeySpace))
	assert.True(t, m.form.Cheat)
	assert.Contains(t, m.View(), "[x]")

	send(m, key(tea.KeyEnter))
	require.Equal(t, screenGrid, m.screen)
	assert.True(t, m.session.Config().Cheat)

	view := m.View()
	assert.Contains(t, view, "[  ] [ 2] [ 3]")
	assert.Contains(t, view, "[ 4] [  ] [ 6]")
}

func TestTabWrapsAroundFields(t *testing.T) {
	m := newTestModel(t, nil)
	send(m, key(tea.KeyShiftTab))
	assert.Equal(t, setup.FieldCheat, m.form.Focus)
	send(m, key(tea.KeyTab))
	assert.Equal(t, setup.FieldSize, m.form.Focus)
}

func TestKeyboardAndMouseGame(t *testing.T) {
	w := &recordingWriter{}
	m := newTestModel(t, w, 1, 5)

	send(m, key(tea.KeyEnter))
	require.Equal(t, screenGrid, m.screen)
	assert.Contains(t, m.View(), "Guess 1 of 2")

	// Guess the focused top-left cell.
	send(m, key(tea.KeyEnter))
	assert.True(t, m.session.IsFound(1))
	assert.Contains(t, m.View(), "Guess 2 of 2")

	// Clicking a guessed cell again is free.
	x, y := buttonAt(0, 0)
	send(m, click(x, y))
	assert.Equal(t, 2, m.session.Turn())

	// Gaps and off-grid clicks do nothing.
	send(m, click(gridLeft+buttonWidth, gridTop), click(0, gridTop), click(gridLeft, gridTop+3), click(gridLeft, 0))
	assert.Equal(t, 2, m.session.Turn())

	x, y = buttonAt(2, 2)
	send(m, click(x, y))
	require.Equal(t, screenResult, m.screen)

	require.Len(t, w.records, 1)
	rec := w.records[0]
	assert.Equal(t, []int{1, 9}, rec.Guesses)
	assert.Equal(t, []int{1}, rec.Found)
	assert.Equal(t, 50, rec.Score)
	assert.True(t, rec.Complete)

	view := m.View()
	assert.Contains(t, view, "[ X] [ 2] [ 3]")
	assert.Contains(t, view, "[ 4] [ H] [ 6]")
	assert.Contains(t, view, "Hidden locations: 1,5")
	assert.Contains(t, view, "Found locations : 1")
	assert.Contains(t, view, "1 out of 2 found (50%)")
	assert.Contains(t, view, "Game saved to results/20260307 1405 4321.txt")
}

func TestCursorMovementClampsToBoard(t *testing.T) {
	m := newTestModel(t, nil, 1, 5)
	send(m, key(tea.KeyEnter))

	send(m, key(tea.KeyUp), key(tea.KeyLeft))
	assert.Equal(t, 1, m.cursor)

	send(m, key(tea.KeyRight), key(tea.KeyDown))
	assert.Equal(t, 5, m.cursor)

	send(m, runes("l"), runes("l"), runes("j"), runes("j"))
	assert.Equal(t, 9, m.cursor)

	send(m, key(tea.KeySpace))
	assert.True(t, m.session.Guessed(9))
}

func TestNewGameAfterResult(t *testing.T) {
	m := newTestModel(t, nil, 1, 5)
	send(m, key(tea.KeyEnter), key(tea.KeyEnter), key(tea.KeyRight), key(tea.KeyEnter))
	require.Equal(t, screenResult, m.screen)
	assert.NotContains(t, m.View(), "Game saved to")

	send(m, runes("n"))
	assert.Equal(t, screenSetup, m.screen)
	assert.Equal(t, "3x3", m.sizeInput.Value())
	assert.Equal(t, "2", m.hiddenInput.Value())
	assert.Nil(t, m.session)
}

func TestQuit(t *testing.T) {
	m := newTestModel(t, nil)
	_, cmd := m.Update(key(tea.KeyEsc))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Empty(t, m.View())
}
