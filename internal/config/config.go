// Package config loads user configuration for amterm.
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/andyrewlee/amterm/internal/vterm"
)

// Config holds the user-tunable settings. Terminal state itself is never
// persisted; this file only shapes how a session starts.
type Config struct {
	// Shell overrides $SHELL for new sessions.
	Shell string `json:"shell,omitempty"`

	// MaxScrollback caps the scrollback buffer in lines.
	MaxScrollback int `json:"max_scrollback,omitempty"`

	// CursorBlinkMs is the cursor blink half-period in milliseconds.
	CursorBlinkMs int `json:"cursor_blink_ms,omitempty"`

	// LogLevel is one of debug, info, warn, error.
	LogLevel string `json:"log_level,omitempty"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		MaxScrollback: vterm.MaxScrollback,
		CursorBlinkMs: 500,
		LogLevel:      "info",
	}
}

// DefaultPath returns ~/.config/amterm/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "amterm", "config.json"), nil
}

// LogDir returns the directory for log files.
func LogDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".local", "share", "amterm", "logs"), nil
}

// Load reads the config file at path, filling in defaults. A missing
// file is not an error; a malformed one is.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, err
	}

	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.MaxScrollback <= 0 {
		c.MaxScrollback = vterm.MaxScrollback
	}
	if c.CursorBlinkMs <= 0 {
		c.CursorBlinkMs = 500
	}
}
