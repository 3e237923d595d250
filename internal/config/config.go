// Package config loads the optional minvi configuration file.
//
// The file is TOML. A missing file is not an error: the editor runs with
// defaults, and only a present-but-malformed file is reported.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
)

// Config is the full configuration tree.
type Config struct {
	Editor Editor `toml:"editor"`
	Log    Log    `toml:"log"`
}

// Editor holds display settings.
type Editor struct {
	// Placeholder marks screen rows past the end of the buffer.
	Placeholder string `toml:"placeholder"`

	// WelcomeMessage is the status message shown on startup.
	WelcomeMessage string `toml:"welcome_message"`
}

// Log holds logging settings. Logging is off unless File is set; the
// terminal itself is owned by the UI, so nothing may write to stderr while
// the editor runs.
type Log struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Editor: Editor{
			Placeholder:    "~",
			WelcomeMessage: "WELCOME! :q to quit",
		},
		Log: Log{
			Level: "info",
		},
	}
}

// DefaultPath returns the conventional location of the config file, or ""
// when the user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "minvi", "minvi.toml")
}

// Load reads the config file at path, layering it over the defaults. A
// missing file (or an empty path) returns the defaults with no error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config file %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parsing config file %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults backfills fields the file left empty.
func (c *Config) applyDefaults() {
	def := Default()
	if c.Editor.Placeholder == "" {
		c.Editor.Placeholder = def.Editor.Placeholder
	}
	if c.Editor.WelcomeMessage == "" {
		c.Editor.WelcomeMessage = def.Editor.WelcomeMessage
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
}
