// Package window is the desktop button-grid front-end, drawn with raylib.
// State and layout live in files without cgo so they can be tested
// headless; only the render loop needs a cgo build.
package window

import (
	"errors"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/setup"
)

// ErrUnavailable is returned by Run in builds without cgo.
var ErrUnavailable = errors.New("window shell requires a cgo build with raylib")

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

// Options configures an App.
type Options struct {
	Logger   *log.Logger
	RNG      *rand.Rand
	Clock    quartz.Clock
	Writer   ResultWriter
	Defaults game.Config

	// SessionOptions are applied to every new session.
	SessionOptions []game.SessionOption
}

// App holds the window state between frames.
type App struct {
	opts   Options
	logger *log.Logger
	layout layout

	screen  screen
	form    *setup.Form
	session *game.Session
	record  game.Record
	saved   string
	saveErr error
	quit    bool
}

// NewApp creates the app on the setup screen.
func NewApp(opts Options) *App {
	if opts.Logger == nil {
		panic("logger is required")
	}
	if opts.RNG == nil {
		panic("rng is required")
	}
	if opts.Clock == nil {
		opts.Clock = quartz.NewReal()
	}
	a := &App{
		opts:   opts,
		logger: opts.Logger.WithPrefix("window"),
		layout: newLayout(windowWidth, windowHeight),
	}
	a.newGame(opts.Defaults)
	return a
}

func (a *App) newGame(cfg game.Config) {
	a.screen = screenSetup
	if cfg.Rows == 0 {
		a.form = &setup.Form{}
	} else {
		a.form = setup.New(cfg)
	}
	a.session = nil
	a.record = game.Record{}
	a.saved = ""
	a.saveErr = nil
}

// click handles a left mouse press at window coordinates x, y.
func (a *App) click(x, y float32) {
	switch a.screen {
	case screenSetup:
		switch {
		case a.layout.sizeField.contains(x, y):
			a.form.Focus = setup.FieldSize
		case a.layout.hiddenField.contains(x, y):
			a.form.Focus = setup.FieldHidden
		case a.layout.cheatBox.contains(x, y):
			a.form.Focus = setup.FieldCheat
			a.form.ToggleCheat()
		case a.layout.startButton.contains(x, y):
			a.submit()
		}
	case screenGrid:
		if cell, ok := a.layout.cellAt(a.session.Board(), x, y); ok {
			a.guess(cell)
		}
	case screenResult:
		switch {
		case a.layout.newGameButton.contains(x, y):
			a.newGame(a.session.Config())
		case a.layout.quitButton.contains(x, y):
			a.quit = true
		}
	}
}

// typeText feeds typed characters to the focused setup field.
func (a *App) typeText(s string) {
	if a.screen == screenSetup {
		a.form.Type(s)
	}
}

func (a *App) backspace() {
	if a.screen == screenSetup {
		a.form.Backspace()
	}
}

func (a *App) tab(back bool) {
	if a.screen != screenSetup {
		return
	}
	if back {
		a.form.Prev()
	} else {
		a.form.Next()
	}
}

func (a *App) enter() {
	switch a.screen {
	case screenSetup:
		a.submit()
	case screenResult:
		a.newGame(a.session.Config())
	}
}

func (a *App) space() {
	if a.screen == screenSetup && a.form.Focus == setup.FieldCheat {
		a.form.ToggleCheat()
	}
}

func (a *App) escape() {
	a.quit = true
}

func (a *App) submit() {
	cfg, err := a.form.Submit()
	if err != nil {
		a.logger.Debug("Setup rejected", "error", err)
		return
	}
	opts := append([]game.SessionOption{game.WithClock(a.opts.Clock)}, a.opts.SessionOptions...)
	session, err := game.NewSession(a.opts.RNG, cfg, opts...)
	if err != nil {
		a.form.Err = setup.Message(err)
		return
	}
	a.session = session
	a.screen = screenGrid
	a.logger.Info("Starting game", "session_id", session.ID(), "grid", cfg.Size(), "hidden", cfg.Hidden, "cheat", cfg.Cheat)
}

// guess submits cell; repeated cells are no-ops.
func (a *App) guess(cell int) {
	res, err := a.session.SubmitGuess(cell)
	if err != nil {
		a.logger.Warn("Guess rejected", "cell", cell, "error", err)
		return
	}
	if res == game.GuessRepeated {
		return
	}
	a.logger.Info("Guess", "cell", cell, "result", res.String(), "remaining", a.session.Remaining())
	if !a.session.IsTerminal() {
		return
	}

	a.record = a.session.Finalize()
	a.screen = screenResult
	if a.opts.Writer == nil {
		return
	}
	a.saved, a.saveErr = a.opts.Writer.Write(&a.record)
	if a.saveErr != nil {
		a.logger.Error("Failed to save result", "error", a.saveErr)
	}
}

// status is the line shown under the result grid.
func (a *App) status() string {
	switch {
	case a.saveErr != nil:
		return "Error writing to file: " + a.saveErr.Error()
	case a.saved != "":
		return "Game saved to " + a.saved
	}
	return ""
}
