// Package config resolves argoterm settings from the environment and
// command-line flags.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/argonaut/console/internal/console"
	"github.com/argonaut/console/internal/typing"
	"github.com/argonaut/console/internal/ui"
)

// Environment variables read by FromEnv.
const (
	EnvTypingDelay = "ARGOTERM_TYPING_DELAY"
	EnvTheme       = "ARGOTERM_THEME"
	EnvPrompt      = "ARGOTERM_PROMPT"
	EnvLogFile     = "ARGOTERM_LOG_FILE"
	EnvSplash      = "ARGOTERM_SPLASH"
	EnvScrollback  = "ARGOTERM_SCROLLBACK"
)

var (
	ErrNegativeDelay = errors.New("typing delay must not be negative")
	ErrUnknownTheme  = errors.New("unknown theme")
	ErrEmptyPrompt   = errors.New("prompt must not be empty")
	ErrScrollback    = errors.New("scrollback must be positive")
)

// Config holds everything the console needs at startup.
type Config struct {
	TypingDelay time.Duration
	Theme       string
	Prompt      string
	LogFile     string
	Splash      bool
	Scrollback  int
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		TypingDelay: typing.DefaultDelay,
		Theme:       "auto",
		Prompt:      console.DefaultPrompt,
		Splash:      true,
		Scrollback:  ui.DefaultScrollback,
	}
}

// FromEnv returns Default overlaid with any ARGOTERM_* variables that are
// set.
func FromEnv() (Config, error) {
	return fromLookup(os.LookupEnv)
}

func fromLookup(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	if v, ok := lookup(EnvTypingDelay); ok && v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvTypingDelay, err)
		}
		cfg.TypingDelay = d
	}
	if v, ok := lookup(EnvTheme); ok && v != "" {
		cfg.Theme = v
	}
	if v, ok := lookup(EnvPrompt); ok && v != "" {
		cfg.Prompt = v
	}
	if v, ok := lookup(EnvLogFile); ok {
		cfg.LogFile = v
	}
	if v, ok := lookup(EnvSplash); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvSplash, err)
		}
		cfg.Splash = b
	}
	if v, ok := lookup(EnvScrollback); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return cfg, fmt.Errorf("%s: %w", EnvScrollback, err)
		}
		cfg.Scrollback = n
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.TypingDelay < 0 {
		return fmt.Errorf("%w: %s", ErrNegativeDelay, c.TypingDelay)
	}
	if !validTheme(c.Theme) {
		return fmt.Errorf("%w %q (want one of %v)", ErrUnknownTheme, c.Theme, ui.ThemeNames)
	}
	if c.Prompt == "" {
		return ErrEmptyPrompt
	}
	if c.Scrollback <= 0 {
		return fmt.Errorf("%w: %d", ErrScrollback, c.Scrollback)
	}
	return nil
}

func validTheme(name string) bool {
	for _, n := range ui.ThemeNames {
		if n == name {
			return true
		}
	}
	return false
}
