package config

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/iburimskiy/particle-field/internal/field"
)

// Config is the user-tunable part of the program. Zero sizes fall back to
// the compile-time defaults.
type Config struct {
	Preset string

	// Count replaces the preset's particle count when CountSet is true, so
	// an explicit 0 asks for an empty field.
	Count    int
	CountSet bool
	Width    int
	Height   int
	Orbs     bool
	Debug    bool
	Seed     uint64

	// SaveDirectory is where the save dialog starts. Empty means the
	// working directory.
	SaveDirectory string
}

var ErrUnknownPreset = errors.New("config: unknown preset")

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Preset: "rich",
		Width:  WindowWidth,
		Height: WindowHeight,
		Orbs:   true,
	}
}

// DefaultPath returns the rc file in the user's home directory, or "" if the
// home directory is unknown.
func DefaultPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, RCFile)
}

// Load reads path over the defaults. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	if err := cfg.Parse(f); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Parse applies "key = value" lines from r. Blank lines and lines starting
// with '#' are skipped, unknown keys are ignored.
func (c *Config) Parse(r io.Reader) error {
	home, _ := os.UserHomeDir()
	scanner := bufio.NewScanner(r)
	line := 0
	for scanner.Scan() {
		line++
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		key, value, ok := strings.Cut(text, "=")
		if !ok {
			return fmt.Errorf("line %d: expected key = value", line)
		}
		key = strings.ToLower(strings.TrimSpace(key))
		value = strings.TrimSpace(value)

		var err error
		switch key {
		case "preset":
			c.Preset = strings.ToLower(value)
		case "count", "particles":
			c.Count, err = strconv.Atoi(value)
			c.CountSet = err == nil
		case "width":
			c.Width, err = strconv.Atoi(value)
		case "height":
			c.Height, err = strconv.Atoi(value)
		case "orbs":
			c.Orbs, err = strconv.ParseBool(value)
		case "debug":
			c.Debug, err = strconv.ParseBool(value)
		case "seed":
			c.Seed, err = strconv.ParseUint(value, 10, 64)
		case "savedirectory", "save_directory", "savedir":
			if strings.HasPrefix(value, "~") && home != "" {
				value = filepath.Join(home, strings.TrimPrefix(value, "~"))
			}
			c.SaveDirectory = value
		}
		if err != nil {
			return fmt.Errorf("line %d: %s: %w", line, key, err)
		}
	}
	return scanner.Err()
}

// Settings resolves the preset and applies the count override.
func (c Config) Settings() (field.Settings, error) {
	var s field.Settings
	switch c.Preset {
	case "", "rich":
		s = field.Rich()
	case "light":
		s = field.Light()
	default:
		return s, fmt.Errorf("%w %q", ErrUnknownPreset, c.Preset)
	}
	if c.CountSet {
		s.Count = c.Count
	}
	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}
