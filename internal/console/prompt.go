package console

import (
	"io"

	"github.com/chzyer/readline"
)

// LineReader reads one line of player input at a time.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
	SetPrompt(prompt string)
}

// PromptConfig configures NewPrompt.
type PromptConfig struct {
	Stdin       io.ReadCloser
	Stdout      io.Writer
	HistoryFile string
}

// NewPrompt creates a readline prompt that tab-completes the console
// commands. Close the returned instance when the game ends.
func NewPrompt(cfg PromptConfig) (*readline.Instance, error) {
	completer := readline.NewPrefixCompleter()
	for _, cmd := range defaultCommands() {
		completer.Children = append(completer.Children, readline.PcItem(cmd.Name))
	}

	return readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     cfg.HistoryFile,
		AutoComplete:    completer,
		InterruptPrompt: "^C",
		EOFPrompt:       "quit",
		Stdin:           cfg.Stdin,
		Stdout:          cfg.Stdout,
	})
}
