package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/Zaphoood/urstack/src/history"
	"github.com/Zaphoood/urstack/src/util"
	"gopkg.in/yaml.v3"
)

const (
	DEFAULT_CAPACITY        = 10
	DEFAULT_CLIPBOARD_CLEAR = 10
)

type Config struct {
	// Capacity of a new history, also the default offered when resizing
	Capacity int  `yaml:"capacity"`
	Color    bool `yaml:"color"`
	// Plain forces the numbered console menu instead of the terminal UI
	Plain bool `yaml:"plain"`
	// Seconds after which a yanked action is cleared from the clipboard; 0 keeps it
	ClipboardClearSeconds int    `yaml:"clipboard_clear_seconds"`
	LogFile               string `yaml:"log_file"`
}

func Default() Config {
	return Config{
		Capacity:              DEFAULT_CAPACITY,
		Color:                 true,
		ClipboardClearSeconds: DEFAULT_CLIPBOARD_CLEAR,
	}
}

// DefaultPath returns the location that is read when no path is given explicitly
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's config directory: %w", err)
	}
	return filepath.Join(dir, "urstack", "config.yaml"), nil
}

// Load reads the config at path. An empty path means DefaultPath, which may be missing,
// in which case the defaults are returned. Fields absent from the file keep their default.
// The result is not validated, so that command line overrides can be applied first.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := len(path) > 0
	if !explicit {
		var err error
		path, err = DefaultPath()
		if err != nil {
			return cfg, nil
		}
	}
	path, err := util.ExpandPath(path)
	if err != nil {
		return cfg, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config file '%s': %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file '%s': %w", path, err)
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.Capacity <= 0 {
		return history.InvalidCapacity{Capacity: c.Capacity}
	}
	if c.ClipboardClearSeconds < 0 {
		return fmt.Errorf("clipboard_clear_seconds must not be negative, got %d", c.ClipboardClearSeconds)
	}
	return nil
}
