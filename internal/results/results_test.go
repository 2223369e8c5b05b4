package results

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/lox/gundown/internal/game"
	"github.com/lox/gundown/internal/randutil"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRecord() game.Record {
	return game.Record{
		SessionID: "s-1",
		Timestamp: time.Date(2026, time.October, 14, 9, 7, 0, 0, time.UTC),
		Rows:      3,
		Cols:      3,
		Hidden:    []int{1, 5},
		Found:     []int{1},
		Guesses:   []int{1, 9},
		Score:     50,
		Code:      4821,
		Complete:  true,
	}
}

func TestFormat(t *testing.T) {
	want := "Date: 2026-10-14\n" +
		"Time: 09:07\n" +
		"Hidden locations: 1,5\n" +
		"Found locations: 1\n" +
		"1 out of 2 found (50%)\n"
	assert.Equal(t, want, string(Format(sampleRecord())))

	rec := sampleRecord()
	rec.Found = nil
	rec.Score = 0
	assert.Contains(t, string(Format(rec)), "Found locations: \n0 out of 2 found (0%)\n")
}

func TestFilename(t *testing.T) {
	rec := sampleRecord()
	assert.Equal(t, "20261014 0907 4821.txt", Filename(rec))

	rec.Cheat = true
	assert.Equal(t, "20261014 0907 4821C.txt", Filename(rec))
}

func TestParseRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rec  game.Record
	}{
		{name: "partial", rec: sampleRecord()},
		{name: "none found", rec: func() game.Record {
			r := sampleRecord()
			r.Found = []int{}
			r.Score = 0
			return r
		}()},
		{name: "all found on 5x5", rec: game.Record{
			Timestamp: time.Date(2025, time.December, 31, 23, 59, 0, 0, time.UTC),
			Hidden:    []int{3, 8, 12, 19, 25},
			Found:     []int{3, 8, 12, 19, 25},
			Score:     100,
			Code:      1000,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(bytes.NewReader(Format(tt.rec)))
			require.NoError(t, err)
			assert.Equal(t, tt.rec.Hidden, got.Hidden)
			assert.ElementsMatch(t, tt.rec.Found, got.Found)
			assert.Equal(t, tt.rec.Score, got.Score)
			assert.Equal(t, tt.rec.Timestamp.Format("2006-01-02 15:04"), got.Timestamp.Format("2006-01-02 15:04"))
		})
	}
}

func TestParseCannotTellAnEarlyStop(t *testing.T) {
	stopped := sampleRecord()
	stopped.Guesses = []int{1}
	stopped.Complete = false

	got, err := Parse(bytes.NewReader(Format(stopped)))
	require.NoError(t, err)
	assert.True(t, got.Complete)
	assert.Empty(t, got.Guesses)
	assert.Equal(t, Format(stopped), Format(got), "an early stop writes the same body")
}

func TestParseMalformed(t *testing.T) {
	tests := map[string]string{
		"missing summary": "Date: 2026-10-14\nTime: 09:07\nHidden locations: 1,5\nFound locations: 1\n",
		"bad cell":        "Date: 2026-10-14\nTime: 09:07\nHidden locations: 1,x\nFound locations: 1\n1 out of 2 found (50%)\n",
		"bad date":        "Date: 14/10/2026\nTime: 09:07\nHidden locations: 1,5\nFound locations: 1\n1 out of 2 found (50%)\n",
		"summary count":   "Date: 2026-10-14\nTime: 09:07\nHidden locations: 1,5\nFound locations: 1\n2 out of 2 found (100%)\n",
		"unknown line":    "Date: 2026-10-14\nScore: 12\n",
	}
	for name, body := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(body))
			assert.ErrorIs(t, err, ErrMalformed)
		})
	}
}

func TestParseFilename(t *testing.T) {
	ts, code, cheat, err := ParseFilename("/tmp/results/20261014 0907 4821C.txt")
	require.NoError(t, err)
	assert.Equal(t, "20261014 0907", ts.Format("20060102 1504"))
	assert.Equal(t, 4821, code)
	assert.True(t, cheat)

	_, _, cheat, err = ParseFilename("20261014 0907 4821.txt")
	require.NoError(t, err)
	assert.False(t, cheat)

	for _, bad := range []string{"result.txt", "20261014 0907 0999.txt", "20261014 0907 4821X.txt", "20261014 0907 4821.log"} {
		_, _, _, err := ParseFilename(bad)
		assert.ErrorIs(t, err, ErrMalformed, bad)
	}
}

func ptr[T any](v T) *T { return &v }

func TestWriter(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	t.Run("writes and loads back", func(t *testing.T) {
		dir := t.TempDir()
		w := NewWriter(logger, WriterConfig{Dir: dir, RNG: randutil.New(1)})

		rec := sampleRecord()
		rec.Cheat = true
		path, err := w.Write(&rec)
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "20261014 0907 4821C.txt"), path)

		loaded, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, rec.Hidden, loaded.Hidden)
		assert.Equal(t, rec.Found, loaded.Found)
		assert.Equal(t, rec.Score, loaded.Score)
		assert.Equal(t, 4821, loaded.Code)
		assert.True(t, loaded.Cheat)
	})

	t.Run("creates the output directory", func(t *testing.T) {
		dir := filepath.Join(t.TempDir(), "nested", "results")
		w := NewWriter(logger, WriterConfig{Dir: dir, RNG: randutil.New(1)})

		path, err := w.Write(ptr(sampleRecord()))
		require.NoError(t, err)
		assert.FileExists(t, path)
	})

	t.Run("draws a new code when the name is taken", func(t *testing.T) {
		dir := t.TempDir()
		rec := sampleRecord()
		taken := filepath.Join(dir, Filename(rec))
		require.NoError(t, os.WriteFile(taken, []byte("keep me"), 0o644))

		w := NewWriter(logger, WriterConfig{Dir: dir, RNG: randutil.New(7)})
		path, err := w.Write(&rec)
		require.NoError(t, err)
		assert.NotEqual(t, taken, path)

		_, code, _, err := ParseFilename(path)
		require.NoError(t, err)
		assert.NotEqual(t, sampleRecord().Code, code)
		assert.Equal(t, code, rec.Code, "the record carries the code it was saved under")
		assert.Equal(t, filepath.Join(dir, Filename(rec)), path)

		data, err := os.ReadFile(taken)
		require.NoError(t, err)
		assert.Equal(t, "keep me", string(data))
	})

	t.Run("gives up after the configured attempts", func(t *testing.T) {
		dir := t.TempDir()
		rec := sampleRecord()
		require.NoError(t, os.WriteFile(filepath.Join(dir, Filename(rec)), nil, 0o644))

		w := NewWriter(logger, WriterConfig{Dir: dir, RNG: randutil.New(7), Attempts: 1})
		_, err := w.Write(&rec)
		assert.ErrorIs(t, err, ErrWrite)
	})

	t.Run("write errors wrap ErrWrite", func(t *testing.T) {
		blocker := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(blocker, nil, 0o644))

		w := NewWriter(logger, WriterConfig{Dir: blocker})
		_, err := w.Write(ptr(sampleRecord()))
		assert.ErrorIs(t, err, ErrWrite)
	})
}

func TestEncodeTOML(t *testing.T) {
	rec := sampleRecord()
	rec.Found = nil
	rec.Score = 0

	var buf bytes.Buffer
	require.NoError(t, EncodeTOML(&buf, rec))

	var decoded exportRecord
	_, err := toml.Decode(buf.String(), &decoded)
	require.NoError(t, err)
	assert.Equal(t, "2026-10-14", decoded.Date)
	assert.Equal(t, "09:07", decoded.Time)
	assert.Equal(t, []int{1, 5}, decoded.Hidden)
	assert.Empty(t, decoded.Found)
	assert.Equal(t, "0 out of 2 found (0%)", decoded.Summary)
	assert.Equal(t, 4821, decoded.Code)
	assert.False(t, decoded.Cheat)
}
