package main

import (
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Play    PlayCmd          `cmd:"" default:"withargs" help:"Play in the console (the default command)"`
	Help    HelpCmd          `cmd:"" help:"Show the game rules and usage"`
	Tui     TuiCmd           `cmd:"" help:"Play on a clickable grid in the terminal"`
	Window  WindowCmd        `cmd:"" help:"Play on a clickable grid in a desktop window"`
	Result  ResultCmd        `cmd:"" help:"Print a saved result file"`
}

func main() {
	// A missing .env is fine; variables already set take precedence.
	_ = godotenv.Load()

	var cli CLI
	parser := kong.Must(&cli,
		kong.Name("gundown"),
		kong.Description("Find the objects hidden on a numbered grid"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
		kong.Bind(&cli.Globals),
	)
	ctx, err := parser.Parse(normalizeArgs(os.Args[1:]))
	parser.FatalIfErrorf(err)
	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}

// normalizeArgs accepts the help command in any case, so "gundown HELP" shows
// the rules instead of being read as a grid size.
func normalizeArgs(args []string) []string {
	if len(args) > 0 && strings.EqualFold(args[0], "help") {
		args = append([]string{"help"}, args[1:]...)
	}
	return args
}
