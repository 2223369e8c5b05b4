package game

import (
	"fmt"
	rand "math/rand/v2"
	"slices"

	"github.com/coder/quartz"
	"github.com/google/uuid"
	"github.com/lox/gundown/internal/randutil"
	"github.com/zyedidia/generic/mapset"
)

// GuessResult is the outcome of SubmitGuess.
type GuessResult int

const (
	GuessMiss GuessResult = iota
	GuessHit
	// GuessRepeated means the cell was already guessed; no turn was used.
	GuessRepeated
)

func (g GuessResult) String() string {
	switch g {
	case GuessMiss:
		return "miss"
	case GuessHit:
		return "hit"
	case GuessRepeated:
		return "repeated"
	default:
		return fmt.Sprintf("GuessResult(%d)", int(g))
	}
}

// SessionOption configures a Session during creation.
type SessionOption func(*sessionConfig)

type sessionConfig struct {
	clock  quartz.Clock
	hidden []int
	id     string
}

// WithClock sets the clock used to timestamp the result record.
func WithClock(clock quartz.Clock) SessionOption {
	return func(c *sessionConfig) { c.clock = clock }
}

// WithHidden places the hidden objects on the given cells instead of
// sampling them. The cells must be distinct, on the board, and match the
// configured hidden count.
func WithHidden(cells ...int) SessionOption {
	return func(c *sessionConfig) { c.hidden = slices.Clone(cells) }
}

// WithID overrides the generated session identifier.
func WithID(id string) SessionOption {
	return func(c *sessionConfig) { c.id = id }
}

// Session holds the full rule set for one game. It is not safe for
// concurrent use; every shell drives it from a single goroutine.
type Session struct {
	id     string
	cfg    Config
	board  Board
	rng    *rand.Rand
	clock  quartz.Clock
	hidden mapset.Set[int]

	guesses []int
	guessed mapset.Set[int]
	found   []int

	record *Record
}

// NewSession validates cfg and places the hidden objects using rng.
// The RNG is required so that randomness stays explicit and tests can seed it.
//
//	rng := randutil.New(42)
//	s, err := game.NewSession(rng, game.Config{Rows: 3, Cols: 3, Hidden: 2})
func NewSession(rng *rand.Rand, cfg Config, opts ...SessionOption) (*Session, error) {
	if rng == nil {
		panic("rng is required for session creation")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	sc := &sessionConfig{}
	for _, opt := range opts {
		opt(sc)
	}
	if sc.clock == nil {
		sc.clock = quartz.NewReal()
	}
	if sc.id == "" {
		sc.id = uuid.NewString()
	}

	board := NewBoard(cfg.Rows, cfg.Cols)

	cells := sc.hidden
	if cells == nil {
		cells = randutil.Sample(rng, board.CellCount(), cfg.Hidden)
	} else if err := validateHidden(board, cfg.Hidden, cells); err != nil {
		return nil, err
	}

	hidden := mapset.New[int]()
	for _, cell := range cells {
		hidden.Put(cell)
	}

	return &Session{
		id:      sc.id,
		cfg:     cfg,
		board:   board,
		rng:     rng,
		clock:   sc.clock,
		hidden:  hidden,
		guesses: make([]int, 0, cfg.Hidden),
		guessed: mapset.New[int](),
		found:   make([]int, 0, cfg.Hidden),
	}, nil
}

func validateHidden(board Board, want int, cells []int) error {
	if len(cells) != want {
		return fmt.Errorf("%w: %d hidden cells given, want %d", ErrInvalidConfig, len(cells), want)
	}
	seen := mapset.New[int]()
	for _, cell := range cells {
		if !board.Contains(cell) {
			return fmt.Errorf("%w: hidden cell %d is off the board", ErrInvalidConfig, cell)
		}
		if seen.Has(cell) {
			return fmt.Errorf("%w: hidden cell %d listed twice", ErrInvalidConfig, cell)
		}
		seen.Put(cell)
	}
	return nil
}

// ID returns the session identifier used in logs.
func (s *Session) ID() string { return s.id }

// Config returns the validated game configuration.
func (s *Session) Config() Config { return s.cfg }

// Board returns the game board.
func (s *Session) Board() Board { return s.board }

// SubmitGuess records a guess at cell.
//
// A cell off the board returns an error wrapping ErrInvalidGuess and leaves
// the session unchanged. A cell that was already guessed returns
// GuessRepeated without using a turn. Once the session is terminal or has
// been finalized every guess returns ErrSessionOver.
func (s *Session) SubmitGuess(cell int) (GuessResult, error) {
	if s.IsTerminal() || s.record != nil {
		return GuessMiss, ErrSessionOver
	}
	if !s.board.Contains(cell) {
		return GuessMiss, fmt.Errorf("%w: %d is not between 1 and %d", ErrInvalidGuess, cell, s.board.CellCount())
	}
	if s.guessed.Has(cell) {
		return GuessRepeated, nil
	}

	s.guesses = append(s.guesses, cell)
	s.guessed.Put(cell)
	if s.hidden.Has(cell) {
		s.found = append(s.found, cell)
		return GuessHit, nil
	}
	return GuessMiss, nil
}

// IsTerminal reports whether every guess has been used.
func (s *Session) IsTerminal() bool {
	return len(s.guesses) == s.cfg.Hidden
}

// Turn returns the 1-based number of the next guess.
func (s *Session) Turn() int {
	return len(s.guesses) + 1
}

// Remaining returns how many guesses are left.
func (s *Session) Remaining() int {
	return s.cfg.Hidden - len(s.guesses)
}

// Guessed reports whether cell has already been guessed.
func (s *Session) Guessed(cell int) bool {
	return s.guessed.Has(cell)
}

// IsHidden reports whether an object is hidden at cell.
func (s *Session) IsHidden(cell int) bool {
	return s.hidden.Has(cell)
}

// IsFound reports whether cell hides an object that has been guessed.
func (s *Session) IsFound(cell int) bool {
	return s.hidden.Has(cell) && s.guessed.Has(cell)
}

// Guesses returns the guesses in the order they were made.
func (s *Session) Guesses() []int {
	return slices.Clone(s.guesses)
}

// Hidden returns the hidden cells in ascending order.
func (s *Session) Hidden() []int {
	cells := make([]int, 0, s.hidden.Size())
	s.hidden.Each(func(cell int) {
		cells = append(cells, cell)
	})
	slices.Sort(cells)
	return cells
}

// Found returns the guessed hidden cells in ascending order.
func (s *Session) Found() []int {
	found := slices.Clone(s.found)
	slices.Sort(found)
	return found
}

// Score returns floor(100 * found / hidden).
func (s *Session) Score() int {
	return Score(len(s.found), s.cfg.Hidden)
}

// Finalize snapshots the session into a Record. The first call stamps the
// time and draws the file code; later calls return the same record.
//
// The graphical shells only finalize a terminal session; the console may
// finalize early when the player quits.
func (s *Session) Finalize() Record {
	if s.record != nil {
		return s.record.clone()
	}
	rec := Record{
		SessionID: s.id,
		Timestamp: s.clock.Now(),
		Rows:      s.cfg.Rows,
		Cols:      s.cfg.Cols,
		Hidden:    s.Hidden(),
		Found:     s.Found(),
		Guesses:   s.Guesses(),
		Score:     s.Score(),
		Cheat:     s.cfg.Cheat,
		Code:      randutil.Code(s.rng),
		Complete:  s.IsTerminal(),
	}
	s.record = &rec
	return rec.clone()
}
