package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
	_ "time/tzdata"

	"github.com/BurntSushi/toml"

	"github.com/Tiliavir/topup/internal/timesheet"
)

// Config is the root configuration for topup, stored in
// $XDG_CONFIG_HOME/topup/config.toml.
type Config struct {
	// RequiredHours is the daily quota each day is measured against.
	RequiredHours int `toml:"required_hours"`
	// Timezone is the IANA zone the portal reports clock times in.
	Timezone string       `toml:"timezone"`
	Portal   PortalConfig `toml:"portal"`
}

// PortalConfig holds settings for fetching the timesheet page directly.
type PortalConfig struct {
	// URL of the attendance page. Empty means input comes from a file or stdin.
	URL string `toml:"url"`
	// Token is sent as a bearer token when fetching URL.
	Token string `toml:"token"`
}

const (
	// DefaultRequiredHours mirrors the processor's built-in quota.
	DefaultRequiredHours = timesheet.DefaultRequiredHours
	// DefaultTimezone is the zone of the attendance portal.
	DefaultTimezone = "Asia/Kolkata"
)

func defaultConfig() Config {
	return Config{
		RequiredHours: DefaultRequiredHours,
		Timezone:      DefaultTimezone,
	}
}

// configTemplate is the annotated config written on first run.
const configTemplate = `# topup configuration
#
# All settings are optional; the values below are the built-in defaults.

# Hours a day must add up to before no top-up is needed.
# Can be overridden per run with: topup compute --hours <n>
required_hours = 10

# IANA time zone the attendance portal reports clock times in.
timezone = "Asia/Kolkata"

[portal]
# Attendance page to fetch when no file is given, e.g.
# "https://portal.example.com/attendance/week".
url = ""

# Bearer token sent with the request. Leave empty for public pages.
token = ""
`

// XDGConfigHome returns $XDG_CONFIG_HOME or ~/.config.
func XDGConfigHome() string {
	if v := os.Getenv("XDG_CONFIG_HOME"); v != "" {
		return v
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return "."
	}
	return filepath.Join(home, ".config")
}

// DefaultPath returns the default config file location.
func DefaultPath() string {
	return filepath.Join(XDGConfigHome(), "topup", "config.toml")
}

// Load reads the config at path, creating it with annotated defaults on
// first run. Missing keys fall back to the built-in defaults.
func Load(path string) (Config, error) {
	if path == "" {
		return defaultConfig(), errors.New("config path is empty")
	}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		// First run: write the annotated template so users can discover options.
		if writeErr := writeDefault(path); writeErr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not create config file %s: %v\n", path, writeErr)
		}
		return defaultConfig(), nil
	} else if err != nil {
		return defaultConfig(), fmt.Errorf("reading config file %s: %w", path, err)
	}

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return defaultConfig(), fmt.Errorf("parsing config file %s: %w\nTip: delete the file to regenerate defaults", path, err)
	}

	if cfg.RequiredHours <= 0 {
		cfg.RequiredHours = DefaultRequiredHours
	}
	if cfg.Timezone == "" {
		cfg.Timezone = DefaultTimezone
	}
	if _, err := cfg.Location(); err != nil {
		return defaultConfig(), err
	}
	return cfg, nil
}

// Location resolves the configured time zone.
func (c Config) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(c.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", c.Timezone, err)
	}
	return loc, nil
}

// Processor returns the processor settings for this config.
func (c Config) Processor() timesheet.Config {
	return timesheet.Config{RequiredMinutes: c.RequiredHours * 60}
}

func writeDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(configTemplate), 0o600); err != nil {
		return fmt.Errorf("writing default config: %w", err)
	}
	return nil
}
