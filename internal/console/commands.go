package console

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// maxSuggestDistance bounds how far a typo may be from a command name
// before no suggestion is offered.
const maxSuggestDistance = 2

type commandKind int

const (
	cmdBoard commandKind = iota
	cmdHelp
	cmdQuit
)

// Command represents a console command typed instead of a cell number.
type Command struct {
	Name        string
	Aliases     []string
	Description string
	kind        commandKind
}

func defaultCommands() []*Command {
	return []*Command{
		{Name: "board", Aliases: []string{"b", "grid"}, Description: "Show the board again", kind: cmdBoard},
		{Name: "help", Aliases: []string{"?"}, Description: "Show available commands", kind: cmdHelp},
		{Name: "quit", Aliases: []string{"q", "exit"}, Description: "Stop now and record the result so far", kind: cmdQuit},
	}
}

// commandSet indexes commands by name and alias.
type commandSet struct {
	ordered []*Command
	byName  map[string]*Command
}

func newCommandSet() *commandSet {
	cs := &commandSet{byName: make(map[string]*Command)}
	for _, cmd := range defaultCommands() {
		cs.ordered = append(cs.ordered, cmd)
		cs.byName[cmd.Name] = cmd
		for _, alias := range cmd.Aliases {
			cs.byName[alias] = cmd
		}
	}
	return cs
}

func (cs *commandSet) lookup(input string) (*Command, bool) {
	cmd, ok := cs.byName[strings.ToLower(strings.TrimSpace(input))]
	return cmd, ok
}

// suggest returns the closest command name to input, if any is close enough.
// Single-letter aliases are not considered; every short typo is near them.
func (cs *commandSet) suggest(input string) (string, bool) {
	input = strings.ToLower(strings.TrimSpace(input))
	if len(input) < 2 {
		return "", false
	}

	type candidate struct {
		name string
		dist int
	}
	var candidates []candidate
	for name, cmd := range cs.byName {
		if len(name) < 3 {
			continue
		}
		dist := levenshtein.ComputeDistance(input, name)
		if dist <= maxSuggestDistance && dist < len(name) {
			candidates = append(candidates, candidate{name: cmd.Name, dist: dist})
		}
	}
	if len(candidates) == 0 {
		return "", false
	}
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].dist != candidates[j].dist {
			return candidates[i].dist < candidates[j].dist
		}
		return candidates[i].name < candidates[j].name
	})
	return candidates[0].name, true
}
