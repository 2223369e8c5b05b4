package results

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"os"
	"path/filepath"

	"github.com/lox/gundown/internal/fileutil"
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/randutil"
	"github.com/rs/zerolog"
)

// ErrWrite wraps every failure to persist a result.
var ErrWrite = errors.New("failed to write result")

const defaultAttempts = 5

// WriterConfig configures a Writer.
type WriterConfig struct {
	// Dir is the directory result files are created in. Defaults to ".".
	Dir string
	// RNG draws a replacement code when a file name is already taken.
	RNG *rand.Rand
	// Attempts bounds how many names are tried. Defaults to 5.
	Attempts int
}

// Writer persists finished games, one file per game.
type Writer struct {
	cfg    WriterConfig
	logger zerolog.Logger
}

// NewWriter creates a result writer.
func NewWriter(logger zerolog.Logger, cfg WriterConfig) *Writer {
	if cfg.Dir == "" {
		cfg.Dir = "."
	}
	if cfg.RNG == nil {
		cfg.RNG, _ = randutil.NewFromTime()
	}
	if cfg.Attempts <= 0 {
		cfg.Attempts = defaultAttempts
	}
	return &Writer{cfg: cfg, logger: logger}
}

// Dir returns the output directory.
func (w *Writer) Dir() string { return w.cfg.Dir }

// Write creates the result file for rec and returns its path.
//
// An existing file is never overwritten: if the name is taken a new code is
// drawn into rec.Code and the write retried, so on success rec matches the
// saved file. Any failure wraps ErrWrite.
func (w *Writer) Write(rec *game.Record) (string, error) {
	if err := os.MkdirAll(w.cfg.Dir, 0o755); err != nil {
		return "", fmt.Errorf("%w: create dir: %v", ErrWrite, err)
	}

	for attempt := 1; attempt <= w.cfg.Attempts; attempt++ {
		path := filepath.Join(w.cfg.Dir, Filename(*rec))
		err := fileutil.CreateFileAtomic(path, Format(*rec), 0o644)
		if err == nil {
			w.logger.Info().
				Str("session_id", rec.SessionID).
				Str("file", path).
				Int("found", rec.FoundCount()).
				Int("hidden", rec.HiddenCount()).
				Int("score", rec.Score).
				Bool("cheat", rec.Cheat).
				Msg("Result saved")
			return path, nil
		}
		if !errors.Is(err, fileutil.ErrExist) {
			w.logger.Error().Err(err).Str("session_id", rec.SessionID).Str("file", path).Msg("Result write failed")
			return "", fmt.Errorf("%w: %v", ErrWrite, err)
		}
		w.logger.Debug().Str("file", path).Int("attempt", attempt).Msg("Result name taken, drawing a new code")
		rec.Code = randutil.Code(w.cfg.RNG)
	}
	return "", fmt.Errorf("%w: no free file name after %d attempts", ErrWrite, w.cfg.Attempts)
}
