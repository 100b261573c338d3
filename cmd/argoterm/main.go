package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/argonaut/console/internal/command"
	"github.com/argonaut/console/internal/config"
	"github.com/argonaut/console/internal/logging"
	"github.com/argonaut/console/internal/ui"
)

// options collects flag values before they are merged over the environment.
type options struct {
	cfg      config.Config
	noSplash bool
}

func newOptions() *options {
	return &options{cfg: config.Default()}
}

func (o *options) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "argoterm",
		Short:         "Interactive ArgøNaut console",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := o.resolve(cmd)
			if err != nil {
				return err
			}
			return run(cfg, os.Stdout)
		},
	}

	f := cmd.Flags()
	f.DurationVar(&o.cfg.TypingDelay, "typing-delay", o.cfg.TypingDelay, "pause between typed characters (0 uses the default)")
	f.StringVar(&o.cfg.Theme, "theme", o.cfg.Theme, "terminal palette: auto, dark or light")
	f.StringVar(&o.cfg.Prompt, "prompt", o.cfg.Prompt, "prompt printed before each input line")
	f.StringVar(&o.cfg.LogFile, "log-file", o.cfg.LogFile, "write a rotated activity log to this file")
	f.IntVar(&o.cfg.Scrollback, "scrollback", o.cfg.Scrollback, "lines of output to keep")
	f.BoolVar(&o.noSplash, "no-splash", false, "start at the console without the loading screen")

	cmd.SetHelpFunc(func(c *cobra.Command, _ []string) {
		printUsage(c.OutOrStdout())
	})
	return cmd
}

// resolve overlays explicitly set flags on the environment configuration.
func (o *options) resolve(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return cfg, fmt.Errorf("read environment: %w", err)
	}

	f := cmd.Flags()
	if f.Changed("typing-delay") {
		cfg.TypingDelay = o.cfg.TypingDelay
	}
	if f.Changed("theme") {
		cfg.Theme = o.cfg.Theme
	}
	if f.Changed("prompt") {
		cfg.Prompt = o.cfg.Prompt
	}
	if f.Changed("log-file") {
		cfg.LogFile = o.cfg.LogFile
	}
	if f.Changed("scrollback") {
		cfg.Scrollback = o.cfg.Scrollback
	}
	if f.Changed("no-splash") {
		cfg.Splash = !o.noSplash
	}

	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// run mounts the console on out. Without a terminal there is nothing to
// mount on, so the console quietly stays down.
func run(cfg config.Config, out *os.File) error {
	log := logging.New(cfg.LogFile)
	defer log.Close()

	if !term.IsTerminal(int(out.Fd())) {
		log.Log(`event=skip-mount reason="output is not a terminal"`)
		return nil
	}

	theme, err := ui.ThemeByName(cfg.Theme)
	if err != nil {
		return err
	}

	p := tea.NewProgram(initialModel(cfg, theme, log), tea.WithAltScreen(), tea.WithOutput(out))
	if _, err := p.Run(); err != nil {
		log.LogError(err)
		return fmt.Errorf("run console: %w", err)
	}
	return nil
}

func printUsage(w io.Writer) {
	heading := ui.TitleStyle.Render
	label := ui.PromptStyle.Render
	dim := ui.DimStyle.Render

	fmt.Fprintln(w, heading("argoterm")+dim(" - ArgøNaut interactive console"))
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Usage:"))
	fmt.Fprintln(w, "  argoterm [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "  Launches a simulated shell that demonstrates the ArgøNaut parser.")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Flags:"))
	fmt.Fprintln(w, "  "+label("--typing-delay")+"  Pause between typed characters (default 50ms)")
	fmt.Fprintln(w, "  "+label("--theme")+"         Terminal palette: auto, dark or light")
	fmt.Fprintln(w, "  "+label("--prompt")+"        Prompt printed before each input line")
	fmt.Fprintln(w, "  "+label("--log-file")+"      Write a rotated activity log to this file")
	fmt.Fprintln(w, "  "+label("--scrollback")+"    Lines of output to keep")
	fmt.Fprintln(w, "  "+label("--no-splash")+"     Skip the loading screen")
	fmt.Fprintln(w, "  "+label("-h, --help")+"      Show this help message")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Environment:"))
	fmt.Fprintln(w, "  "+label(config.EnvTypingDelay)+"  Same as --typing-delay")
	fmt.Fprintln(w, "  "+label(config.EnvTheme)+"         Same as --theme")
	fmt.Fprintln(w, "  "+label(config.EnvPrompt)+"        Same as --prompt")
	fmt.Fprintln(w, "  "+label(config.EnvLogFile)+"      Same as --log-file")
	fmt.Fprintln(w, "  "+label(config.EnvScrollback)+"    Same as --scrollback")
	fmt.Fprintln(w, "  "+label(config.EnvSplash)+"        Set to false to skip the loading screen")
	fmt.Fprintln(w)
	fmt.Fprintln(w, heading("Commands (interactive):"))
	fmt.Fprintln(w)

	columns := []ui.Column{
		{Header: "Command", Width: 10},
		{Header: "Description", Width: 32},
	}
	cmds := command.Default().Commands()
	rows := make([][]string, len(cmds))
	for i, c := range cmds {
		rows[i] = []string{c.Name, c.Desc}
	}
	fmt.Fprint(w, ui.RenderTable(columns, rows))
	fmt.Fprintln(w)
	fmt.Fprintln(w, dim("  ↑/↓ history • backspace erase • ctrl+c quit"))
}

func main() {
	if err := newOptions().command().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", ui.ErrorStyle.Render("Error:"), err)
		fmt.Fprintln(os.Stderr, "Run 'argoterm --help' for usage information")
		os.Exit(1)
	}
}
