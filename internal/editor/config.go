package editor

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the editor settings read from panelforge.toml.
type Config struct {
	Columns      int     `toml:"columns"`
	Rows         int     `toml:"rows"`
	WindowWidth  int     `toml:"window_width"`
	WindowHeight int     `toml:"window_height"`
	BoxThreshold float64 `toml:"box_threshold_px"` // accidental-click cutoff for rubber-band selection
}

// DefaultConfig returns the compiled-in settings.
func DefaultConfig() Config {
	return Config{
		Columns:      12,
		Rows:         8,
		WindowWidth:  1280,
		WindowHeight: 800,
		BoxThreshold: 5,
	}
}

// LoadConfig reads settings from path, layered over the defaults. A missing
// file is not an error; a malformed or invalid one is, and callers should
// fall back to DefaultConfig.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return DefaultConfig(), err
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return DefaultConfig(), fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return DefaultConfig(), fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	if c.Columns < 1 || c.Rows < 1 {
		return fmt.Errorf("grid must be at least 1x1, got %dx%d", c.Columns, c.Rows)
	}
	if c.WindowWidth < 1 || c.WindowHeight < 1 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.WindowWidth, c.WindowHeight)
	}
	if c.BoxThreshold < 0 {
		return fmt.Errorf("box threshold must be non-negative, got %v", c.BoxThreshold)
	}
	return nil
}
