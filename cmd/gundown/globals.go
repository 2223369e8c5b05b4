package main

import (
	"errors"
	"fmt"
	rand "math/rand/v2"
	"os"

	"github.com/charmbracelet/log"
	"github.com/coder/quartz"
	"github.com/lox/gundown/cmd/gundown/shared"
	"github.com/lox/gundown/internal/config"
	"github.com/lox/gundown/internal/randutil"
	"github.com/lox/gundown/internal/results"
	"github.com/rs/zerolog"
)

// Globals are the flags shared by every command.
type Globals struct {
	Config     string `kong:"default='gundown.hcl',env='GUNDOWN_CONFIG',help='HCL settings file (optional)'"`
	ResultsDir string `kong:"name='results-dir',env='GUNDOWN_RESULTS_DIR',help='Directory result files are written to'"`
	Debug      bool   `kong:"help='Enable debug logging'"`
	Seed       *int64 `kong:"help='Seed the random source to replay a game'"`
}

// env is everything a shell needs, built from the flags and settings file.
type env struct {
	cfg    *config.Config
	rng    *rand.Rand
	seed   int64
	clock  quartz.Clock
	logger zerolog.Logger
	shell  *log.Logger
	writer *results.Writer

	logFile *os.File
}

func (g *Globals) settings() (*config.Config, error) {
	cfg, err := config.Load(g.Config)
	if err != nil {
		return nil, err
	}
	if g.ResultsDir != "" {
		cfg.Results.Dir = g.ResultsDir
	}
	if g.Debug {
		cfg.Log.Level = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", g.Config, err)
	}
	return cfg, nil
}

func (g *Globals) open() (*env, error) {
	cfg, err := g.settings()
	if err != nil {
		return nil, err
	}

	logFile, err := shared.OpenLogFile(cfg.Log.File)
	if err != nil {
		return nil, err
	}
	logger, err := shared.SetupLogger(logFile, cfg.Log.Level)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}
	shell, err := shared.SetupShellLogger(logFile, cfg.Log.Level)
	if err != nil {
		_ = logFile.Close()
		return nil, err
	}

	var (
		rng  *rand.Rand
		seed int64
	)
	if g.Seed != nil {
		seed = *g.Seed
		rng = randutil.New(seed)
	} else {
		rng, seed = randutil.NewFromTime()
	}
	logger.Debug().Int64("seed", seed).Str("results_dir", cfg.Results.Dir).Msg("Starting")

	clock := quartz.NewReal()
	return &env{
		cfg:    cfg,
		rng:    rng,
		seed:   seed,
		clock:  clock,
		logger: logger,
		shell:  shell,
		writer: results.NewWriter(logger, results.WriterConfig{
			Dir: cfg.Results.Dir,
			RNG: rng,
		}),
		logFile: logFile,
	}, nil
}

func (e *env) Close() error {
	if e.logFile == nil {
		return nil
	}
	err := e.logFile.Close()
	e.logFile = nil
	if err != nil && !errors.Is(err, os.ErrClosed) {
		return err
	}
	return nil
}
