// Package tui is the terminal button-grid front-end: a setup form followed
// by one clickable button per cell.
package tui

import (
	"fmt"
	rand "math/rand/v2"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/results"
	"github.com/lox/gundown/internal/setup"
)

// Grid layout. Buttons are drawn as "[NN]" with one space between them,
// starting gridLeft columns in and gridTop lines down, one row per line.
const (
	gridTop     = 3
	gridLeft    = 2
	buttonWidth = 4
	buttonGap   = 1
)

type screen int

const (
	screenSetup screen = iota
	screenGrid
	screenResult
)

// ResultWriter persists a finished game. *results.Writer satisfies it.
type ResultWriter interface {
	Write(rec *game.Record) (string, error)
}

// Options configures a Model.
type Options struct {
	Logger   *log.Logger
	RNG      *rand.Rand
	Clock    quartz.Clock
	Writer   ResultWriter
	Defaults game.Config

	// SessionOptions are applied to every new session.
	SessionOptions []game.SessionOption
}

// Model represents the Bubble Tea model for the game.
type Model struct {
	opts   Options
	logger *log.Logger

	screen      screen
	form        *setup.Form
	sizeInput   textinput.Model
	hiddenInput textinput.Model

	session *game.Session
	cursor  int // focused cell number
	record  game.Record
	saved   string
	saveErr error

	quitting bool
}

// NewModel creates the model on the setup screen.
func NewModel(opts Options) *Model {
	if opts.Logger == nil {
		panic("logger is required")
	}
	if opts.RNG == nil {
		panic("rng is required")
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}

	m := &Model{
		opts:        opts,
		logger:      opts.Logger.WithPrefix("tui"),
		sizeInput:   newInput("3x3"),
		hiddenInput: newInput("2"),
	}
	m.resetSetup(opts.Defaults)
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = setup.MaxInput
	ti.Width = setup.MaxInput + 1
	ti.Prompt = ""
	ti.TextStyle = LabelStyle
	return ti
}

func (m *Model) resetSetup(cfg game.Config) {
	m.screen = screenSetup
	m.form = setup.New(cfg)
	if cfg.Rows == 0 {
		m.form = &setup.Form{}
	}
	m.sizeInput.SetValue(m.form.Size)
	m.hiddenInput.SetValue(m.form.Hidden)
	m.session = nil
	m.saved = ""
	m.saveErr = nil
	m.syncFocus()
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		}
	}

	switch m.screen {
	case screenSetup:
		return m, m.updateSetup(msg)
	case screenGrid:
		return m, m.updateGrid(msg)
	default:
		return m, m.updateResult(msg)
	}
}

func (m *Model) updateSetup(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			m.form.Next()
			return m.syncFocus()
		case "shift+tab", "up":
			m.form.Prev()
			return m.syncFocus()
		case " ", "x":
			if m.form.Focus == setup.FieldCheat {
				m.form.ToggleCheat()
				return nil
			}
		case "enter":
			return m.submitSetup()
		}
	}

	var cmd tea.Cmd
	switch m.form.Focus {
	case setup.FieldSize:
		m.sizeInput, cmd = m.sizeInput.Update(msg)
		m.form.Size = m.sizeInput.Value()
	case setup.FieldHidden:
		m.hiddenInput, cmd = m.hiddenInput.Update(msg)
		m.form.Hidden = m.hiddenInput.Value()
	}
	return cmd
}

func (m *Model) syncFocus() tea.Cmd {
	m.sizeInput.Blur()
	m.hiddenInput.Blur()
	switch m.form.Focus {
	case setup.FieldSize:
		return m.sizeInput.Focus()
	case setup.FieldHidden:
		return m.hiddenInput.Focus()
	}
	return nil
}

func (m *Model) submitSetup() tea.Cmd {
	m.form.Size = m.sizeInput.Value()
	m.form.Hidden = m.hiddenInput.Value()

	cfg, err := m.form.Submit()
	if err != nil {
		m.logger.Debug("Setup rejected", "error", err)
		return nil
	}

	opts := append([]game.SessionOption{game.WithClock(m.opts.Clock)}, m.opts.SessionOptions...)
	session, err := game.NewSession(m.opts.RNG, cfg, opts...)
	if err != nil {
		m.form.Err = setup.Message(err)
		return nil
	}
	m.session = session
	m.cursor = 1
	m.screen = screenGrid
	m.sizeInput.Blur()
	m.hiddenInput.Blur()
	m.logger.Info("Starting game", "session_id", session.ID(), "grid", cfg.Size(), "hidden", cfg.Hidden, "cheat", cfg.Cheat)
	return nil
}

func (m *Model) updateGrid(msg tea.Msg) tea.Cmd {
	board := m.session.Board()
	switch msg := msg.(type) {
	case tea.KeyMsg:
		r, c := board.Position(m.cursor)
		switch msg.String() {
		case "up", "k":
			r = max(r-1, 0)
		case "down", "j":
			r = min(r+1, board.Rows()-1)
		case "left", "h":
			c = max(c-1, 0)
		case "right", "l":
			c = min(c+1, board.Cols()-1)
		case "enter", " ":
			m.guess(m.cursor)
			return nil
		case "q":
			m.quitting = true
			return tea.Quit
		}
		m.cursor = board.CellAt(r, c)
	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return nil
		}
		if cell, ok := m.cellAt(msg.X, msg.Y); ok {
			m.cursor = cell
			m.guess(cell)
		}
	}
	return nil
}

func (m *Model) updateResult(msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch key.String() {
	case "n", "enter":
		m.resetSetup(m.session.Config())
		return textinput.Blink
	case "q":
		m.quitting = true
		return tea.Quit
	}
	return nil
}

// guess is the single entry point for every way a cell can be chosen.
// Repeated cells are no-ops.
func (m *Model) guess(cell int) {
	res, err := m.session.SubmitGuess(cell)
	if err != nil {
		m.logger.Warn("Guess rejected", "cell", cell, "error", err)
		return
	}
	if res == game.GuessRepeated {
		return
	}
	m.logger.Info("Guess", "cell", cell, "result", res.String(), "remaining", m.session.Remaining())

	if m.session.IsTerminal() {
		m.finish()
	}
}

func (m *Model) finish() {
	m.record = m.session.Finalize()
	m.screen = screenResult
	if m.opts.Writer == nil {
		return
	}
	m.saved, m.saveErr = m.opts.Writer.Write(&m.record)
	if m.saveErr != nil {
		m.logger.Error("Failed to save result", "error", m.saveErr)
	}
}

// cellAt maps a terminal position to the button drawn there.
func (m *Model) cellAt(x, y int) (int, bool) {
	board := m.session.Board()
	r := y - gridTop
	if r < 0 || r >= board.Rows() || x < gridLeft {
		return 0, false
	}
	pitch := buttonWidth + buttonGap
	c := (x - gridLeft) / pitch
	if c >= board.Cols() || (x-gridLeft)%pitch >= buttonWidth {
		return 0, false
	}
	return board.CellAt(r, c), true
}

// View renders the model.
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	switch m.screen {
	case screenSetup:
		return m.viewSetup()
	case screenGrid:
		return m.viewGrid()
	default:
		return m.viewResult()
	}
}

func (m *Model) viewSetup() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" GunDown ") + "\n\n")

	label := func(f setup.Field, text string) string {
		if m.form.Focus == f {
			return FocusedLabelStyle.Render("> " + text)
		}
		return LabelStyle.Render("  " + text)
	}
	cheat := "[ ]"
	if m.form.Cheat {
		cheat = "[x]"
	}

	b.WriteString(label(setup.FieldSize, fmt.Sprintf("%-26s", "Grid size (3x3 to 5x5):")) + m.sizeInput.View() + "\n")
	b.WriteString(label(setup.FieldHidden, fmt.Sprintf("%-26s", "Hidden objects:")) + m.hiddenInput.View() + "\n")
	b.WriteString(label(setup.FieldCheat, fmt.Sprintf("%-26s", "Cheat mode:")) + cheat + "\n\n")

	if m.form.Err != "" {
		b.WriteString(ErrorStyle.Render(m.form.Err) + "\n\n")
	}
	b.WriteString(InfoStyle.Render("Tab to move • Space toggles cheat mode • Enter to start • Esc to quit"))
	return b.String()
}

func (m *Model) viewGrid() string {
	var b strings.Builder
	cfg := m.session.Config()
	b.WriteString(HeaderStyle.Render(" GunDown ") + "\n")
	b.WriteString(fmt.Sprintf("Grid %s | Hidden %d | Guess %d of %d\n\n",
		cfg.Size(), cfg.Hidden, m.session.Turn(), cfg.Hidden))
	b.WriteString(m.renderButtons(game.ModeInPlay, true))
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("Arrows move • Enter or click guesses • q to quit"))
	return b.String()
}

func (m *Model) viewResult() string {
	var b strings.Builder
	b.WriteString(HeaderStyle.Render(" GunDown ") + "\n")
	b.WriteString("Game Over\n\n")
	b.WriteString(m.renderButtons(game.ModePostGame, false))
	b.WriteString("\n")
	b.WriteString(fmt.Sprintf("Hidden locations: %s\n", results.JoinCells(m.record.Hidden)))
	b.WriteString(fmt.Sprintf("Found locations : %s\n", results.JoinCells(m.record.Found)))
	b.WriteString(SuccessStyle.Render(results.Summary(m.record)) + "\n")
	switch {
	case m.saveErr != nil:
		b.WriteString(WarningStyle.Render("Error writing to file: "+m.saveErr.Error()) + "\n")
	case m.saved != "":
		b.WriteString(InfoStyle.Render("Game saved to "+m.saved) + "\n")
	}
	b.WriteString("\n")
	b.WriteString(InfoStyle.Render("n for a new game • q to quit"))
	return b.String()
}

// renderButtons draws one line per board row, matching the cellAt layout.
func (m *Model) renderButtons(mode game.Mode, showCursor bool) string {
	var b strings.Builder
	for _, row := range m.session.Board().Grid() {
		b.WriteString(strings.Repeat(" ", gridLeft))
		for i, cell := range row {
			if i > 0 {
				b.WriteString(strings.Repeat(" ", buttonGap))
			}
			b.WriteString(m.renderButton(cell, mode, showCursor))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func (m *Model) renderButton(cell int, mode game.Mode, showCursor bool) string {
	mark := m.session.RenderCell(cell, mode)
	text := fmt.Sprintf("[%2s]", mark.Label(cell))

	switch {
	case showCursor && cell == m.cursor:
		return CursorStyle.Render(text)
	case mark == game.MarkHit:
		return HitStyle.Render(text)
	case mark == game.MarkMissed:
		return MissedStyle.Render(text)
	case m.session.Guessed(cell):
		return GuessedStyle.Render(text)
	default:
		return ButtonStyle.Render(text)
	}
}

// Run starts the program on the alternate screen with mouse support.
func Run(m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}
