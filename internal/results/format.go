// Package results writes and reads the plain-text record of a finished game.
//
// Each game produces one file named "YYYYMMDD HHMM RRRR[C].txt" holding:
//
//	Date: YYYY-MM-DD
//	Time: HH:MM
//	Hidden locations: n1,n2,...
//	Found locations: n1,n2,...
//	<found> out of <hidden> found (<pct>%)
package results

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lox/gundown/internal/game"
)

const (
	dateLayout     = "2006-01-02"
	timeLayout     = "15:04"
	filenameLayout = "20060102 1504"

	// Ext is the result file extension.
	Ext = ".txt"
	// CheatSuffix marks results from games played in cheat mode.
	CheatSuffix = "C"
)

// Format renders the record in the result file layout.
func Format(rec game.Record) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "Date: %s\n", rec.Timestamp.Format(dateLayout))
	fmt.Fprintf(&b, "Time: %s\n", rec.Timestamp.Format(timeLayout))
	fmt.Fprintf(&b, "Hidden locations: %s\n", JoinCells(rec.Hidden))
	fmt.Fprintf(&b, "Found locations: %s\n", JoinCells(rec.Found))
	b.WriteString(Summary(rec))
	b.WriteString("\n")
	return []byte(b.String())
}

// Summary returns the "<found> out of <hidden> found (<pct>%)" line.
func Summary(rec game.Record) string {
	return fmt.Sprintf("%d out of %d found (%d%%)", rec.FoundCount(), rec.HiddenCount(), rec.Score)
}

// Filename returns the file name for the record.
func Filename(rec game.Record) string {
	name := fmt.Sprintf("%s %04d", rec.Timestamp.Format(filenameLayout), rec.Code)
	if rec.Cheat {
		name += CheatSuffix
	}
	return name + Ext
}

// JoinCells renders cell numbers comma separated with no spaces.
func JoinCells(cells []int) string {
	parts := make([]string, len(cells))
	for i, c := range cells {
		parts[i] = strconv.Itoa(c)
	}
	return strings.Join(parts, ",")
}
