package requests

import (
	"strings"

	"github.com/brettbedarf/dirtree"
)

// actions is the dispatch table keyed by upper-case command keyword
var actions = func() map[string]dirtree.Action {
	m := make(map[string]dirtree.Action, len(dirtree.Actions))
	for _, a := range dirtree.Actions {
		m[a.String()] = a
	}
	return m
}()

// LookupAction matches a keyword case-insensitively against the dispatch table
func LookupAction(keyword string) (dirtree.Action, bool) {
	a, ok := actions[strings.ToUpper(keyword)]
	return a, ok
}

// ParseCommand turns a raw line into a [dirtree.Command].
// The line is trimmed and split on whitespace; the first token is the action
// and the rest are its positional arguments, which must match the action's arity.
func ParseCommand(line string) (*dirtree.Command, error) {
	text := strings.TrimSpace(line)
	if text == "" {
		return nil, dirtree.NewError(dirtree.ErrEmptyCommand, "Empty command")
	}

	fields := strings.Fields(text)
	keyword, args := fields[0], fields[1:]

	action, ok := LookupAction(keyword)
	if !ok {
		return nil, dirtree.NewError(dirtree.ErrUnknownCommand, "Unknown command %s", keyword)
	}
	if len(args) != action.Arity() {
		return nil, dirtree.NewError(dirtree.ErrArgument, "argument error").Prefixed("Cannot " + text)
	}

	return &dirtree.Command{
		Action: action,
		Args:   args,
		Text:   text,
	}, nil
}

// Keywords returns the known command keywords
func Keywords() []string {
	keywords := make([]string, 0, len(dirtree.Actions))
	for _, a := range dirtree.Actions {
		keywords = append(keywords, a.String())
	}
	return keywords
}
