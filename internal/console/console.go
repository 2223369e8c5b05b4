// Package console drives a game session from a line-oriented terminal
// prompt: one guess per line, with a handful of typed commands.
package console

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/chzyer/readline"
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/results"
)

// ResultWriter persists a finished game. *results.Writer satisfies it.
type ResultWriter interface {
	Write(rec *game.Record) (string, error)
}

// Options configures a Console.
type Options struct {
	In     LineReader
	Out    io.Writer
	Writer ResultWriter
	Logger *log.Logger
}

// Console plays one session over a LineReader.
type Console struct {
	session  *game.Session
	in       LineReader
	out      io.Writer
	writer   ResultWriter
	logger   *log.Logger
	styles   *Styles
	commands *commandSet
	stopped  bool
}

// New creates a console for session.
func New(session *game.Session, opts Options) *Console {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Console{
		session:  session,
		in:       opts.In,
		out:      opts.Out,
		writer:   opts.Writer,
		logger:   logger.WithPrefix("console").With("session_id", session.ID()),
		styles:   NewStyles(lipgloss.NewRenderer(opts.Out)),
		commands: newCommandSet(),
	}
}

// Run shows the board, collects guesses until the session is terminal or
// the player quits, then prints and saves the result. A failure to save is
// reported to the player and does not make Run fail.
func (c *Console) Run() (game.Record, error) {
	cfg := c.session.Config()
	c.logger.Info("Starting console game", "grid", cfg.Size(), "hidden", cfg.Hidden, "cheat", cfg.Cheat)

	c.printf("\nGrid Size: %s | Hidden Objects: %d\n", cfg.Size(), cfg.Hidden)
	c.printGrid(game.ModePreGame)
	c.println(strings.Repeat("-", 20))

	for !c.session.IsTerminal() && !c.stopped {
		if err := c.promptGuess(); err != nil {
			return game.Record{}, err
		}
	}

	rec := c.session.Finalize()
	c.showResult(rec)
	c.save(&rec)
	return rec, nil
}

// promptGuess reads lines until one guess is recorded or the player stops.
func (c *Console) promptGuess() error {
	cfg := c.session.Config()
	for {
		c.in.SetPrompt(c.styles.Prompt.Render(
			fmt.Sprintf("Guess hidden object location %d of %d: ", c.session.Turn(), cfg.Hidden)))

		line, err := c.in.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			c.println(c.styles.Info.Render("Use 'quit' to stop"))
			continue
		} else if errors.Is(err, io.EOF) {
			c.logger.Info("Input closed, stopping early")
			c.stopped = true
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to read guess: %w", err)
		}

		line = strings.TrimSpace(line)
		cell, convErr := strconv.Atoi(line)
		if convErr != nil {
			if c.runCommand(line) {
				return nil
			}
			continue
		}

		res, err := c.session.SubmitGuess(cell)
		if errors.Is(err, game.ErrInvalidGuess) {
			c.println(c.styles.Error.Render(
				fmt.Sprintf("Please enter a number between 1 and %d.", c.session.Board().CellCount())))
			continue
		} else if err != nil {
			return err
		}
		if res == game.GuessRepeated {
			c.logger.Debug("Repeated guess ignored", "cell", cell)
			continue
		}

		c.logger.Info("Guess", "cell", cell, "result", res.String(), "remaining", c.session.Remaining())
		return nil
	}
}

// runCommand handles a non-numeric line. It returns true when the guess
// loop should stop prompting for the current turn.
func (c *Console) runCommand(line string) bool {
	cmd, ok := c.commands.lookup(line)
	if !ok {
		msg := "Invalid input. Enter a number."
		if suggestion, ok := c.commands.suggest(line); ok {
			msg += fmt.Sprintf(" Did you mean '%s'?", suggestion)
		}
		c.println(c.styles.Error.Render(msg))
		return false
	}

	switch cmd.kind {
	case cmdBoard:
		c.printGrid(game.ModeInPlay)
	case cmdHelp:
		c.printHelp()
	case cmdQuit:
		c.logger.Info("Player quit", "guesses", len(c.session.Guesses()))
		c.stopped = true
		return true
	}
	return false
}

func (c *Console) printHelp() {
	c.println(c.styles.Info.Render("Enter a cell number to guess, or one of:"))
	for _, cmd := range c.commands.ordered {
		aliases := ""
		if len(cmd.Aliases) > 0 {
			aliases = " (" + strings.Join(cmd.Aliases, ", ") + ")"
		}
		c.printf("  %s%s - %s\n", cmd.Name, aliases, cmd.Description)
	}
}

func (c *Console) printGrid(mode game.Mode) {
	board := c.session.Board()
	for _, row := range board.Grid() {
		labels := make([]string, len(row))
		for i, cell := range row {
			mark := c.session.RenderCell(cell, mode)
			label := mark.Label(cell)
			switch mark {
			case game.MarkHit:
				label = c.styles.Hit.Render(label)
			case game.MarkMissed:
				label = c.styles.Missed.Render(label)
			}
			labels[i] = label
		}
		c.println(strings.Join(labels, "\t"))
	}
}

func (c *Console) showResult(rec game.Record) {
	if c.stopped && !rec.Complete {
		c.println("")
		c.println(c.styles.Warning.Render("Stopped before the last guess."))
	}
	c.println("\n" + c.styles.Title.Render("--- Game Over ---"))
	c.printGrid(game.ModePostGame)

	c.println("\nFinal Result")
	c.printf("Hidden locations: %s\n", results.JoinCells(rec.Hidden))
	c.printf("Found locations : %s\n", results.JoinCells(rec.Found))
	c.println(c.styles.Success.Render(results.Summary(rec)))
}

func (c *Console) save(rec *game.Record) {
	if c.writer == nil {
		return
	}
	path, err := c.writer.Write(rec)
	if err != nil {
		c.logger.Error("Failed to save result", "error", err)
		c.println(c.styles.Warning.Render("Error writing to file: " + err.Error()))
		return
	}
	c.printf("Game saved to %s\n", path)
}

func (c *Console) printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

func (c *Console) println(s string) {
	fmt.Fprintln(c.out, s)
}
