// Package settings provides persisted configuration for tabcast.
//
// Settings live in a single TOML file (~/.tabcast/config.toml). Loading
// starts from built-in defaults and decodes the file over them, so
// fields added in later versions fall back to their defaults. Invalid
// enum values are replaced by defaults rather than rejected.
package settings

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/ukaji3/tabcast-go/pkg/tabcast"
)

// Settings mirrors the persisted key/value record.
type Settings struct {
	// Separator is the cell separator character ("tab" for tab).
	Separator string `toml:"separator"`
	// Quote is the quote style name: none, double, single.
	Quote string `toml:"quote_style"`
	// LineBreaks is the line-break handling name: strip, space, token.
	LineBreaks string `toml:"line_break_handling"`
	// BaseFilename is the output filename stem.
	BaseFilename string `toml:"base_filename"`
	// Counter is the rotating export counter, rendered with at least
	// three digits.
	Counter string `toml:"export_counter"`
	// CopyToClipboard also places the export body on the clipboard.
	CopyToClipboard bool `toml:"copy_to_clipboard"`
}

// Default returns the built-in settings.
func Default() *Settings {
	return &Settings{
		Separator:       ";",
		Quote:           "none",
		LineBreaks:      "space",
		BaseFilename:    "table-export",
		Counter:         "001",
		CopyToClipboard: false,
	}
}

// ConfigDir returns the tabcast configuration directory.
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home directory: %w", err)
	}
	return filepath.Join(home, ".tabcast"), nil
}

// ConfigPath returns the settings file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load reads settings from the default path, merged over defaults.
// A missing file is not an error; defaults are returned.
func Load() (*Settings, error) {
	path, err := ConfigPath()
	if err != nil {
		return Default(), err
	}
	return LoadFrom(path)
}

// LoadFrom reads settings from an explicit path, merged over defaults.
func LoadFrom(path string) (*Settings, error) {
	s := Default()
	if _, err := os.Stat(path); err != nil {
		return s, nil
	}
	if _, err := toml.DecodeFile(path, s); err != nil {
		return Default(), fmt.Errorf("decode settings: %w", err)
	}
	s.normalize()
	return s, nil
}

// normalize replaces invalid stored values by their defaults.
func (s *Settings) normalize() {
	def := Default()
	if _, err := tabcast.ParseSeparator(s.Separator); err != nil {
		s.Separator = def.Separator
	}
	if _, err := tabcast.ParseQuoteStyle(s.Quote); err != nil {
		s.Quote = def.Quote
	}
	if _, err := tabcast.ParseLineBreakPolicy(s.LineBreaks); err != nil {
		s.LineBreaks = def.LineBreaks
	}
	if s.BaseFilename == "" {
		s.BaseFilename = def.BaseFilename
	}
	s.Counter = tabcast.PadCounter(s.Counter)
}

// Config builds the conversion configuration from the stored values.
// Callers should Load (which normalizes) before converting.
func (s *Settings) Config() (tabcast.Config, error) {
	sep, err := tabcast.ParseSeparator(s.Separator)
	if err != nil {
		return tabcast.Config{}, err
	}
	quote, err := tabcast.ParseQuoteStyle(s.Quote)
	if err != nil {
		return tabcast.Config{}, err
	}
	lb, err := tabcast.ParseLineBreakPolicy(s.LineBreaks)
	if err != nil {
		return tabcast.Config{}, err
	}
	return tabcast.Config{Separator: sep, Quote: quote, LineBreaks: lb}, nil
}

// Save writes settings to the default path.
func Save(s *Settings) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	return SaveTo(s, path)
}

// SaveTo writes settings to an explicit path, creating the parent
// directory if needed. The file is written 0600.
func SaveTo(s *Settings, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0700); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	file, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("create settings file: %w", err)
	}
	defer file.Close()

	fmt.Fprintln(file, "# tabcast settings")
	fmt.Fprintln(file, "# Saved automatically after every successful export.")
	fmt.Fprintln(file, "")

	if err := toml.NewEncoder(file).Encode(s); err != nil {
		return fmt.Errorf("encode settings: %w", err)
	}
	return nil
}
