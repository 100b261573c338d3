package command

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
)

// Handler produces the result for a recognized command.
type Handler func(r *Registry) Result

// Command is one entry in the console vocabulary.
type Command struct {
	Name string
	Desc string
	Run  Handler
}

// Registry maps case-folded command names to handlers, keeping
// registration order for help output.
type Registry struct {
	order  []string
	byName map[string]Command
	fold   cases.Caser
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		byName: make(map[string]Command),
		fold:   cases.Fold(),
	}
}

// Register adds a command. Names are matched case-insensitively.
func (r *Registry) Register(cmd Command) error {
	cmd.Name = strings.TrimSpace(cmd.Name)
	if cmd.Name == "" {
		return errors.New("command registry: empty command name")
	}
	if cmd.Run == nil {
		return fmt.Errorf("command registry: %q has no handler", cmd.Name)
	}
	key := r.normalize(cmd.Name)
	if _, ok := r.byName[key]; ok {
		return fmt.Errorf("command registry: duplicate command %q", cmd.Name)
	}
	r.byName[key] = cmd
	r.order = append(r.order, key)
	return nil
}

// Resolve finds the command for a line, ignoring case and surrounding
// whitespace.
func (r *Registry) Resolve(line string) (Command, bool) {
	cmd, ok := r.byName[r.normalize(line)]
	return cmd, ok
}

// Names returns registered command names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byName[key].Name)
	}
	return out
}

// Commands returns registered commands in registration order.
func (r *Registry) Commands() []Command {
	out := make([]Command, 0, len(r.order))
	for _, key := range r.order {
		out = append(out, r.byName[key])
	}
	return out
}

// Dispatch maps a submitted line to its result. Unrecognized input,
// including the empty line, yields the unknown-command message.
func (r *Registry) Dispatch(line string) Result {
	line = strings.TrimSpace(line)
	cmd, ok := r.Resolve(line)
	if !ok {
		return unknown(line)
	}
	res := cmd.Run(r)
	res.Command = cmd.Name
	return res
}

func (r *Registry) normalize(s string) string {
	return r.fold.String(strings.TrimSpace(s))
}
