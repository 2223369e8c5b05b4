package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/lox/gundown/internal/config"
	"github.com/lox/gundown/internal/console"
	"github.com/lox/gundown/internal/game"
)

var errMissingArgs = errors.New("missing arguments, try 'gundown help' for more info")

// PlayCmd runs one game at the console prompt.
type PlayCmd struct {
	Grid   string `arg:"" optional:"" help:"Grid size, 3x3 to 5x5"`
	Hidden string `arg:"" optional:"" help:"Number of hidden objects"`
	Show   string `arg:"" optional:"" help:"Pass 'show' to blank out the hidden cells (cheat mode)"`
}

// config validates the arguments before anything touches the disk.
func (c *PlayCmd) config() (game.Config, error) {
	if c.Grid == "" || c.Hidden == "" {
		return game.Config{}, errMissingArgs
	}
	return game.ParseConfig(c.Grid, c.Hidden, strings.EqualFold(c.Show, "show"))
}

func promptConfig(cfg *config.Config) console.PromptConfig {
	return console.PromptConfig{
		Stdin:       os.Stdin,
		Stdout:      os.Stdout,
		HistoryFile: cfg.Console.History,
	}
}

func (c *PlayCmd) Run(g *Globals, kctx *kong.Context) error {
	cfg, err := c.config()
	if err != nil {
		if errors.Is(err, errMissingArgs) {
			_ = kctx.PrintUsage(true)
		}
		return err
	}

	e, err := g.open()
	if err != nil {
		return err
	}
	defer e.Close()

	session, err := game.NewSession(e.rng, cfg, game.WithClock(e.clock))
	if err != nil {
		return err
	}
	e.logger.Info().
		Str("session_id", session.ID()).
		Int64("seed", e.seed).
		Str("grid", cfg.Size()).
		Int("hidden", cfg.Hidden).
		Bool("cheat", cfg.Cheat).
		Msg("Console game")

	prompt, err := console.NewPrompt(promptConfig(e.cfg))
	if err != nil {
		return fmt.Errorf("failed to create prompt: %w", err)
	}
	defer prompt.Close()

	_, err = console.New(session, console.Options{
		In:     prompt,
		Out:    os.Stdout,
		Writer: e.writer,
		Logger: e.shell,
	}).Run()
	return err
}
