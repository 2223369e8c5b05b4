package game

import "strconv"

// Mode selects which view of the board RenderCell produces.
type Mode int

const (
	// ModePreGame is the board shown before the first guess.
	ModePreGame Mode = iota
	// ModeInPlay is the board shown while guesses remain.
	ModeInPlay
	// ModePostGame reveals every hidden object.
	ModePostGame
)

// Mark is what a shell draws for a single cell.
type Mark int

const (
	MarkNumber Mark = iota
	MarkBlank
	MarkHit
	MarkMissed
)

// Markers used by Mark.Label.
const (
	HitMarker    = "X"
	MissedMarker = "H"
	BlankMarker  = " "
)

// Label returns the text for the mark on the given cell.
func (m Mark) Label(cell int) string {
	switch m {
	case MarkBlank:
		return BlankMarker
	case MarkHit:
		return HitMarker
	case MarkMissed:
		return MissedMarker
	default:
		return strconv.Itoa(cell)
	}
}

// RenderCell decides how a cell is drawn.
//
// Before the reveal a hidden cell shows its number, or a blank in cheat mode.
// After the reveal a found hidden cell is a hit and an unfound one is a miss.
// Cells without an object always show their number.
func (s *Session) RenderCell(cell int, mode Mode) Mark {
	if !s.hidden.Has(cell) {
		return MarkNumber
	}
	if mode == ModePostGame {
		if s.guessed.Has(cell) {
			return MarkHit
		}
		return MarkMissed
	}
	if s.cfg.Cheat {
		return MarkBlank
	}
	return MarkNumber
}

// RenderGrid returns the labels of every cell grouped by row.
func (s *Session) RenderGrid(mode Mode) [][]string {
	grid := s.board.Grid()
	out := make([][]string, len(grid))
	for r, row := range grid {
		labels := make([]string, len(row))
		for c, cell := range row {
			labels[c] = s.RenderCell(cell, mode).Label(cell)
		}
		out[r] = labels
	}
	return out
}
