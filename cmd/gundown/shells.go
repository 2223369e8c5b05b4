package main

import (
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/tui"
	"github.com/lox/gundown/internal/window"
)

// ShellFlags pre-fill the setup form of the graphical shells. Unset values
// come from the settings file.
type ShellFlags struct {
	Grid   string `kong:"help='Initial grid size'"`
	Hidden int    `kong:"help='Initial hidden object count'"`
	Cheat  bool   `kong:"help='Start with cheat mode ticked'"`
}

func (f ShellFlags) defaults(e *env) game.Config {
	settings := e.cfg.Game
	if f.Grid != "" {
		settings.Grid = f.Grid
	}
	if f.Hidden != 0 {
		settings.Hidden = f.Hidden
	}
	settings.Cheat = settings.Cheat || f.Cheat

	cfg := *e.cfg
	cfg.Game = settings
	defaults, err := cfg.GameConfig()
	if err != nil {
		// The form shows the problem once the player presses start.
		e.logger.Warn().Err(err).Msg("Ignoring invalid shell defaults")
		defaults, _ = e.cfg.GameConfig()
	}
	return defaults
}

// TuiCmd runs the button grid in the terminal.
type TuiCmd struct {
	ShellFlags
}

func (c *TuiCmd) Run(g *Globals) error {
	e, err := g.open()
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info().Int64("seed", e.seed).Msg("Terminal grid")
	return tui.Run(tui.NewModel(tui.Options{
		Logger:   e.shell,
		RNG:      e.rng,
		Clock:    e.clock,
		Writer:   e.writer,
		Defaults: c.defaults(e),
	}))
}

// WindowCmd runs the button grid in a raylib window.
type WindowCmd struct {
	ShellFlags
}

func (c *WindowCmd) Run(g *Globals) error {
	e, err := g.open()
	if err != nil {
		return err
	}
	defer e.Close()

	e.logger.Info().Int64("seed", e.seed).Msg("Desktop window")
	return window.NewApp(window.Options{
		Logger:   e.shell,
		RNG:      e.rng,
		Clock:    e.clock,
		Writer:   e.writer,
		Defaults: c.defaults(e),
	}).Run()
}
