// Package game implements the rules of GunDown, a single-player game of
// finding objects hidden on a numbered grid.
//
// The main type is Session, which owns the board, the hidden cells, the
// guesses made so far and the final result record. Every front-end (the
// console prompt, the terminal button grid and the native window) drives
// the same Session in the same order.
//
// # Basic Usage
//
//	cfg, err := game.ParseConfig("3x3", "2", false)
//	if err != nil {
//	    // errors.Is(err, game.ErrInvalidConfig)
//	}
//	s, err := game.NewSession(randutil.New(seed), cfg)
//	for !s.IsTerminal() {
//	    res, err := s.SubmitGuess(cell)
//	    // res is GuessHit, GuessMiss or GuessRepeated
//	}
//	rec := s.Finalize()
//
// # Deterministic Testing
//
// NewSession requires a *rand.Rand so tests can seed it. WithHidden fixes
// the hidden cells outright and WithClock injects a quartz mock clock for
// the record timestamp:
//
//	s, _ := game.NewSession(randutil.New(1), cfg,
//	    game.WithHidden(1, 5),
//	    game.WithClock(quartz.NewMock(t)))
//
// # Rendering
//
// RenderCell maps a cell and a Mode to a Mark; shells only choose how to
// draw each Mark.
package game
