package game

import (
	"slices"
	"time"
)

// Record is the immutable result of a finished session.
type Record struct {
	SessionID string
	Timestamp time.Time
	Rows      int
	Cols      int
	// Hidden and Found are sorted ascending.
	Hidden  []int
	Found   []int
	Guesses []int
	Score   int
	Cheat   bool
	// Code is the four digit value used in the result filename.
	Code int
	// Complete is false when the player stopped before the last guess.
	Complete bool
}

// HiddenCount returns the number of hidden objects.
func (r Record) HiddenCount() int { return len(r.Hidden) }

// FoundCount returns the number of objects found.
func (r Record) FoundCount() int { return len(r.Found) }

func (r Record) clone() Record {
	r.Hidden = slices.Clone(r.Hidden)
	r.Found = slices.Clone(r.Found)
	r.Guesses = slices.Clone(r.Guesses)
	return r
}

// Score returns floor(100 * found / hidden), or 0 when hidden is 0.
func Score(found, hidden int) int {
	if hidden <= 0 {
		return 0
	}
	return 100 * found / hidden
}
