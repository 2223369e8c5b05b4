package game

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Board and hidden-count bounds.
const (
	MinSize   = 3
	MaxSize   = 5
	MinHidden = 2
)

var (
	// ErrInvalidConfig marks a grid size or hidden count the game rejects.
	ErrInvalidConfig = errors.New("invalid config")
	// ErrInvalidGuess marks a guess outside the board.
	ErrInvalidGuess = errors.New("invalid guess")
	// ErrSessionOver is returned when guessing after the last turn.
	ErrSessionOver = errors.New("session is over")
)

// Config describes one game.
type Config struct {
	Rows   int
	Cols   int
	Hidden int
	Cheat  bool
}

// MaxHidden returns the largest hidden count allowed on a rows x cols board.
func MaxHidden(rows, cols int) int {
	return (rows * cols) / 2
}

// Validate checks the board and hidden-count bounds.
func (c Config) Validate() error {
	if c.Rows < MinSize || c.Rows > MaxSize || c.Cols < MinSize || c.Cols > MaxSize {
		return fmt.Errorf("%w: grid size must be between %dx%d and %dx%d",
			ErrInvalidConfig, MinSize, MinSize, MaxSize, MaxSize)
	}
	maxHidden := MaxHidden(c.Rows, c.Cols)
	if c.Hidden < MinHidden || c.Hidden > maxHidden {
		return fmt.Errorf("%w: for a %dx%d grid, hidden objects must be between %d and %d",
			ErrInvalidConfig, c.Rows, c.Cols, MinHidden, maxHidden)
	}
	return nil
}

// Size renders the grid size the way players type it, e.g. "3x4".
func (c Config) Size() string {
	return fmt.Sprintf("%dx%d", c.Rows, c.Cols)
}

// ParseGridSize parses "RxC" (the separator is case-insensitive).
func ParseGridSize(s string) (rows, cols int, err error) {
	s = strings.ToLower(strings.TrimSpace(s))
	r, c, ok := strings.Cut(s, "x")
	if !ok {
		return 0, 0, fmt.Errorf("%w: grid format must be like 3x3", ErrInvalidConfig)
	}
	rows, errR := strconv.Atoi(r)
	cols, errC := strconv.Atoi(c)
	if errR != nil || errC != nil {
		return 0, 0, fmt.Errorf("%w: dimensions and hidden count must be integers", ErrInvalidConfig)
	}
	return rows, cols, nil
}

// ParseConfig builds and validates a Config from the raw strings a shell
// collects from the player.
func ParseConfig(size, hidden string, cheat bool) (Config, error) {
	rows, cols, err := ParseGridSize(size)
	if err != nil {
		return Config{}, err
	}
	n, err := strconv.Atoi(strings.TrimSpace(hidden))
	if err != nil {
		return Config{}, fmt.Errorf("%w: dimensions and hidden count must be integers", ErrInvalidConfig)
	}
	cfg := Config{Rows: rows, Cols: cols, Hidden: n, Cheat: cheat}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
