// Package config loads CLANK settings from an optional .env file, the
// environment and command-line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "clank"

// Colour modes. Auto colours only when stdout is a terminal.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Config holds presentation, logging and archive settings. None of them
// change how the story resolves.
type Config struct {
	LogLevel    string `envconfig:"LOG_LEVEL" default:"warn"`
	LogEncoding string `envconfig:"LOG_ENCODING" default:"console"`
	LogOutput   string `envconfig:"LOG_OUTPUT" default:"stderr"`

	Color      string        `envconfig:"COLOR" default:"auto"`
	CharDelay  time.Duration `envconfig:"CHAR_DELAY" default:"20ms"`
	LinePause  time.Duration `envconfig:"LINE_PAUSE" default:"300ms"`
	ScenePause time.Duration `envconfig:"SCENE_PAUSE" default:"2s"`

	// Unprefixed SUPABASE_URL and SUPABASE_KEY are accepted as well.
	SupabaseURL  string `envconfig:"SUPABASE_URL"`
	SupabaseKey  string `envconfig:"SUPABASE_KEY"`
	ArchiveTable string `envconfig:"ARCHIVE_TABLE" default:"playthrough"`
}

// ArchiveEnabled reports whether finished playthroughs should be recorded.
func (c Config) ArchiveEnabled() bool {
	return c.SupabaseURL != "" && c.SupabaseKey != ""
}

// Load reads dotenvPath (skipped when missing), the environment and then
// args parsed with fs.
func Load(fset *flag.FlagSet, args []string, dotenvPath string) (Config, error) {
	if dotenvPath != "" {
		if err := godotenv.Load(dotenvPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", dotenvPath, err)
		}
	}

	var cfg Config
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	var fast, noColor bool
	fset.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	fset.BoolVar(&noColor, "no-color", false, "disable ANSI colours")
	fset.BoolVar(&fast, "fast", false, "print instantly, without typewriter or pauses")
	if err := fset.Parse(args); err != nil {
		return Config{}, err
	}
	if noColor {
		cfg.Color = ColorNever
	}
	color, err := colorMode(cfg.Color)
	if err != nil {
		return Config{}, err
	}
	cfg.Color = color
	if fast {
		cfg.CharDelay, cfg.LinePause, cfg.ScenePause = 0, 0, 0
	}
	return cfg, nil
}

// colorMode normalises CLANK_COLOR. Boolean spellings map to always and
// never.
func colorMode(v string) (string, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", ColorAuto:
		return ColorAuto, nil
	case ColorAlways, "true", "1", "yes":
		return ColorAlways, nil
	case ColorNever, "false", "0", "no":
		return ColorNever, nil
	}
	return "", fmt.Errorf("invalid CLANK_COLOR %q: want auto, always or never", v)
}

// Exitf writes a formatted error message to stderr and exits with code 1.
func Exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
