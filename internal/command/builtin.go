// Package command holds the closed vocabulary of the ArgøNaut console and
// the canned responses it prints.
package command

import (
	"fmt"
	"strings"
)

// Result is what the console shows for a submitted line. When Clear is set
// the output surface is wiped and Text is empty. Command names the
// recognized command and is empty for unknown input.
type Result struct {
	Command string
	Text    string
	Clear   bool
}

// Known reports whether the line matched a registered command.
func (r Result) Known() bool {
	return r.Command != ""
}

// Default returns a registry holding the built-in commands.
func Default() *Registry {
	r := NewRegistry()
	for _, cmd := range []Command{
		{Name: "help", Desc: "Show this help message", Run: cmdHelp},
		{Name: "create", Desc: "Create a new Argonaut parser", Run: canned(
			"Creating a new Argonaut parser...",
			"Parser created with default settings.",
		)},
		{Name: "add", Desc: "Add an argument to the parser", Run: canned(
			"Adding a new argument...",
			`Argument "--example" added successfully.`,
		)},
		{Name: "parse", Desc: "Parse arguments", Run: canned(
			"Parsing arguments...",
			"Arguments parsed successfully.",
		)},
		{Name: "clear", Desc: "Clear the terminal", Run: cmdClear},
	} {
		if err := r.Register(cmd); err != nil {
			panic(err)
		}
	}
	return r
}

func cmdHelp(r *Registry) Result {
	var b strings.Builder
	b.WriteString("Available commands:\n")
	for _, cmd := range r.Commands() {
		fmt.Fprintf(&b, "  %-8s - %s\n", cmd.Name, cmd.Desc)
	}
	return Result{Text: b.String()}
}

func cmdClear(*Registry) Result {
	return Result{Clear: true}
}

func canned(lines ...string) Handler {
	text := strings.Join(lines, "\n") + "\n"
	return func(*Registry) Result {
		return Result{Text: text}
	}
}

func unknown(line string) Result {
	return Result{Text: fmt.Sprintf("Unknown command: %s\nType \"help\" for a list of available commands.\n", line)}
}
