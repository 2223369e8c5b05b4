package results

import (
	"fmt"
	"io"

	"github.com/BurntSushi/toml"
	"github.com/lox/gundown/internal/game"
)

// exportRecord is the TOML shape of a result, for tooling that would rather
// not scrape the text layout.
type exportRecord struct {
	Date    string `toml:"date"`
	Time    string `toml:"time"`
	Hidden  []int  `toml:"hidden"`
	Found   []int  `toml:"found"`
	Summary string `toml:"summary"`
	Score   int    `toml:"score"`
	Code    int    `toml:"code,omitempty"`
	Cheat   bool   `toml:"cheat"`
}

// EncodeTOML writes rec as a TOML document.
func EncodeTOML(w io.Writer, rec game.Record) error {
	found := rec.Found
	if found == nil {
		found = []int{}
	}
	out := exportRecord{
		Date:    rec.Timestamp.Format(dateLayout),
		Time:    rec.Timestamp.Format(timeLayout),
		Hidden:  rec.Hidden,
		Found:   found,
		Summary: Summary(rec),
		Score:   rec.Score,
		Code:    rec.Code,
		Cheat:   rec.Cheat,
	}
	enc := toml.NewEncoder(w)
	enc.Indent = "\t"
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	return nil
}
