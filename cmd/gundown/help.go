package main

import (
	"fmt"

	"github.com/alecthomas/kong"
)

const rules = `
--- GunDown Help ---
Goal: Find hidden objects on the grid.
Rules: Guess locations based on the grid numbers. You get one guess per
hidden object; a cell you already guessed costs nothing.
Usage: gundown [GridSize] [HiddenCount] (show)
Example: gundown 3x3 3
Grids run from 3x3 to 5x5. At least 2 objects are hidden, and at most
half the cells. Add 'show' to blank out the hidden cells.
Each game is saved to "YYYYMMDD HHMM RRRR.txt" ("C" is added in cheat mode).

`

// HelpCmd prints the rules followed by the command usage.
type HelpCmd struct{}

func (HelpCmd) Run(kctx *kong.Context) error {
	fmt.Fprint(kctx.Stdout, rules)
	return kctx.PrintUsage(false)
}
