package results

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/randutil"
)

// ErrMalformed is returned when a result file or name does not follow the
// result layout.
var ErrMalformed = errors.New("malformed result")

var (
	summaryRe  = regexp.MustCompile(`^(\d+) out of (\d+) found \((\d+)%\)$`)
	filenameRe = regexp.MustCompile(`^(\d{8} \d{4}) (\d{4})(C?)\.txt$`)
)

// Parse reads a result file body. The returned record carries the
// timestamp (in the local zone), hidden and found cells and the score;
// the code and cheat flag live in the file name, see ParseFilename.
//
// The file does not say whether the player stopped early or which misses
// were guessed, so Complete is always true and Guesses is empty.
func Parse(r io.Reader) (game.Record, error) {
	var (
		rec             game.Record
		date, clock     string
		haveSummary     bool
		found, hidden   int
		haveHid, haveFd bool
	)

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		switch {
		case strings.HasPrefix(line, "Date:"):
			date = strings.TrimSpace(strings.TrimPrefix(line, "Date:"))
		case strings.HasPrefix(line, "Time:"):
			clock = strings.TrimSpace(strings.TrimPrefix(line, "Time:"))
		case strings.HasPrefix(line, "Hidden locations:"):
			cells, err := splitCells(strings.TrimPrefix(line, "Hidden locations:"))
			if err != nil {
				return game.Record{}, err
			}
			rec.Hidden, haveHid = cells, true
		case strings.HasPrefix(line, "Found locations:"):
			cells, err := splitCells(strings.TrimPrefix(line, "Found locations:"))
			if err != nil {
				return game.Record{}, err
			}
			rec.Found, haveFd = cells, true
		case summaryRe.MatchString(line):
			m := summaryRe.FindStringSubmatch(line)
			found, _ = strconv.Atoi(m[1])
			hidden, _ = strconv.Atoi(m[2])
			rec.Score, _ = strconv.Atoi(m[3])
			haveSummary = true
		case strings.TrimSpace(line) == "":
		default:
			return game.Record{}, fmt.Errorf("%w: unexpected line %q", ErrMalformed, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return game.Record{}, fmt.Errorf("failed to read result: %w", err)
	}

	if date == "" || clock == "" || !haveHid || !haveFd || !haveSummary {
		return game.Record{}, fmt.Errorf("%w: missing fields", ErrMalformed)
	}
	ts, err := time.ParseInLocation(dateLayout+" "+timeLayout, date+" "+clock, time.Local)
	if err != nil {
		return game.Record{}, fmt.Errorf("%w: bad timestamp: %v", ErrMalformed, err)
	}
	rec.Timestamp = ts

	if found != len(rec.Found) || hidden != len(rec.Hidden) {
		return game.Record{}, fmt.Errorf("%w: summary %d/%d disagrees with %d found, %d hidden",
			ErrMalformed, found, hidden, len(rec.Found), len(rec.Hidden))
	}
	rec.Complete = true
	return rec, nil
}

// ParseFilename extracts the timestamp, code and cheat flag from a result
// file name. Directories in name are ignored.
func ParseFilename(name string) (ts time.Time, code int, cheat bool, err error) {
	m := filenameRe.FindStringSubmatch(filepath.Base(name))
	if m == nil {
		return time.Time{}, 0, false, fmt.Errorf("%w: file name %q", ErrMalformed, name)
	}
	ts, err = time.ParseInLocation(filenameLayout, m[1], time.Local)
	if err != nil {
		return time.Time{}, 0, false, fmt.Errorf("%w: file name %q: %v", ErrMalformed, name, err)
	}
	code, _ = strconv.Atoi(m[2])
	if code < randutil.CodeMin || code > randutil.CodeMax {
		return time.Time{}, 0, false, fmt.Errorf("%w: code %d out of range", ErrMalformed, code)
	}
	return ts, code, m[3] == CheatSuffix, nil
}

// Load reads a result file and fills in the code and cheat flag from its
// name when the name follows the result scheme.
func Load(path string) (game.Record, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return game.Record{}, err
	}
	defer f.Close()

	rec, err := Parse(f)
	if err != nil {
		return game.Record{}, fmt.Errorf("%s: %w", path, err)
	}
	if _, code, cheat, err := ParseFilename(path); err == nil {
		rec.Code = code
		rec.Cheat = cheat
	}
	return rec, nil
}

func splitCells(s string) ([]int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return []int{}, nil
	}
	parts := strings.Split(s, ",")
	cells := make([]int, 0, len(parts))
	for _, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("%w: bad cell %q", ErrMalformed, p)
		}
		cells = append(cells, n)
	}
	if !slices.IsSorted(cells) {
		slices.Sort(cells)
	}
	return cells, nil
}
