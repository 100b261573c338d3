package command

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDispatchIsTotal(t *testing.T) {
	r := Default()
	for _, line := range []string{"help", "create", "add", "parse", "clear", "HELP", "", "xyz"} {
		t.Run(line, func(t *testing.T) {
			res := r.Dispatch(line)
			if res.Clear {
				assert.Empty(t, res.Text)
				return
			}
			assert.NotEmpty(t, res.Text)
			assert.True(t, strings.HasSuffix(res.Text, "\n"), "result should end with a newline")
		})
	}
}

func TestDispatchCaseInsensitive(t *testing.T) {
	r := Default()
	want := r.Dispatch("help")
	for _, line := range []string{"Help", "HELP", "hElP", "  help  "} {
		assert.Equal(t, want, r.Dispatch(line), "line %q", line)
	}
}

func TestHelpListsCommandsInOrder(t *testing.T) {
	res := Default().Dispatch("help")
	want := "Available commands:\n" +
		"  help     - Show this help message\n" +
		"  create   - Create a new Argonaut parser\n" +
		"  add      - Add an argument to the parser\n" +
		"  parse    - Parse arguments\n" +
		"  clear    - Clear the terminal\n"
	assert.Equal(t, want, res.Text)
	assert.False(t, res.Clear)
}

func TestCannedResponses(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"create", "Creating a new Argonaut parser...\nParser created with default settings.\n"},
		{"add", "Adding a new argument...\nArgument \"--example\" added successfully.\n"},
		{"parse", "Parsing arguments...\nArguments parsed successfully.\n"},
	}

	r := Default()
	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, Result{Command: tt.line, Text: tt.want}, r.Dispatch(tt.line))
		})
	}
}

func TestAddDoesNotDependOnCreate(t *testing.T) {
	r := Default()
	before := r.Dispatch("add")
	r.Dispatch("create")
	assert.Equal(t, before, r.Dispatch("add"))
}

func TestClearOnlySignalsWipe(t *testing.T) {
	assert.Equal(t, Result{Command: "clear", Clear: true}, Default().Dispatch("CLEAR"))
}

func TestUnknownCommand(t *testing.T) {
	r := Default()

	res := r.Dispatch("xyz")
	assert.False(t, res.Known())
	assert.Equal(t, "Unknown command: xyz\nType \"help\" for a list of available commands.\n", res.Text)

	res = r.Dispatch("")
	assert.Equal(t, "Unknown command: \nType \"help\" for a list of available commands.\n", res.Text)

	res = r.Dispatch("help me")
	assert.True(t, strings.HasPrefix(res.Text, "Unknown command: help me\n"))
}

func TestDispatchNamesRecognizedCommand(t *testing.T) {
	res := Default().Dispatch("  PaRsE ")
	assert.True(t, res.Known())
	assert.Equal(t, "parse", res.Command)
}

func TestRegisterRejectsBadCommands(t *testing.T) {
	r := NewRegistry()
	noop := func(*Registry) Result { return Result{} }

	require.NoError(t, r.Register(Command{Name: "ping", Run: noop}))
	assert.Error(t, r.Register(Command{Name: "  ", Run: noop}))
	assert.Error(t, r.Register(Command{Name: "pong"}))
	assert.Error(t, r.Register(Command{Name: "PING", Run: noop}))
	assert.Equal(t, []string{"ping"}, r.Names())
}

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"help", "create", "add", "parse", "clear"}, Default().Names())
}
