package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/lox/gundown/internal/results"
)

// ResultCmd reads a saved result file back.
type ResultCmd struct {
	File string `arg:"" name:"file" help:"Path to a result .txt file"`
	TOML bool   `name:"toml" help:"Print the result as TOML"`
}

func (cmd ResultCmd) Run(kctx *kong.Context) error {
	rec, err := results.Load(cmd.File)
	if err != nil {
		return err
	}
	if cmd.TOML {
		return results.EncodeTOML(kctx.Stdout, rec)
	}

	if _, err := kctx.Stdout.Write(results.Format(rec)); err != nil {
		return err
	}
	mode := "normal"
	if rec.Cheat {
		mode = "cheat"
	}
	_, err = fmt.Fprintf(kctx.Stdout, "Code: %04d (%s mode)\n", rec.Code, mode)
	return err
}
