// Package config loads the optional gundown.hcl settings file.
package config

import (
	"fmt"
	"os"

	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/lox/gundown/internal/game"
)

// DefaultFilename is looked up in the working directory when no --config
// flag is given.
const DefaultFilename = "gundown.hcl"

// Config represents the complete settings file.
type Config struct {
	Results ResultSettings  `hcl:"results,block"`
	Log     LogSettings     `hcl:"log,block"`
	Game    GameSettings    `hcl:"game,block"`
	Console ConsoleSettings `hcl:"console,block"`
}

// ResultSettings controls where result files go.
type ResultSettings struct {
	Dir string `hcl:"dir,optional"`
}

// LogSettings controls the diagnostic log. The interactive shells own the
// terminal, so logs always go to a file.
type LogSettings struct {
	Level string `hcl:"level,optional"`
	File  string `hcl:"file,optional"`
}

// GameSettings pre-fills the setup form of the graphical shells.
type GameSettings struct {
	Grid   string `hcl:"grid,optional"`
	Hidden int    `hcl:"hidden,optional"`
	Cheat  bool   `hcl:"cheat,optional"`
}

// ConsoleSettings configures the console prompt.
type ConsoleSettings struct {
	// History is the readline history file. Empty disables history.
	History string `hcl:"history,optional"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		Results: ResultSettings{
			Dir: ".",
		},
		Log: LogSettings{
			Level: "info",
			File:  "gundown.log",
		},
		Game: GameSettings{
			Grid:   "3x3",
			Hidden: 3,
		},
	}
}

// Load reads settings from an HCL file. A missing file yields the defaults.
func Load(filename string) (*Config, error) {
	if _, err := os.Stat(filename); os.IsNotExist(err) {
		return Default(), nil
	}

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse HCL file: %s", diags.Error())
	}

	// Every block is optional in the file, so decode into pointers and
	// fill the gaps from the defaults.
	var raw struct {
		Results *ResultSettings  `hcl:"results,block"`
		Log     *LogSettings     `hcl:"log,block"`
		Game    *GameSettings    `hcl:"game,block"`
		Console *ConsoleSettings `hcl:"console,block"`
	}
	diags = gohcl.DecodeBody(file.Body, nil, &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode HCL: %s", diags.Error())
	}

	cfg := Default()
	if raw.Results != nil && raw.Results.Dir != "" {
		cfg.Results.Dir = raw.Results.Dir
	}
	if raw.Log != nil {
		if raw.Log.Level != "" {
			cfg.Log.Level = raw.Log.Level
		}
		if raw.Log.File != "" {
			cfg.Log.File = raw.Log.File
		}
	}
	if raw.Game != nil {
		if raw.Game.Grid != "" {
			cfg.Game.Grid = raw.Game.Grid
		}
		if raw.Game.Hidden != 0 {
			cfg.Game.Hidden = raw.Game.Hidden
		}
		cfg.Game.Cheat = raw.Game.Cheat
	}
	if raw.Console != nil {
		cfg.Console.History = raw.Console.History
	}

	return cfg, nil
}

// Validate validates the settings.
func (c *Config) Validate() error {
	if c.Results.Dir == "" {
		return fmt.Errorf("results dir is required")
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.Log.Level] {
		return fmt.Errorf("invalid log level: %s", c.Log.Level)
	}

	if _, err := c.GameConfig(); err != nil {
		return fmt.Errorf("invalid game defaults: %w", err)
	}
	return nil
}

// GameConfig returns the game defaults as a validated game.Config.
func (c *Config) GameConfig() (game.Config, error) {
	return game.ParseConfig(c.Game.Grid, fmt.Sprint(c.Game.Hidden), c.Game.Cheat)
}
