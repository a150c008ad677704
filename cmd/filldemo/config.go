package main

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"
)

// config holds the demo's tunables, loadable from a TOML file.
type config struct {
	// Width and Height size the synthetic test image when no input is
	// given.
	Width  int
	Height int

	// StorePath is the SQLite database holding persisted progress.
	StorePath string

	// HistoryCap bounds the undo stack.
	HistoryCap int

	// SaveDelayMS is the persistence debounce window in milliseconds.
	SaveDelayMS int

	Outline outlineConfig
}

// outlineConfig mirrors inkfill.OutlineStyle in file-friendly form.
type outlineConfig struct {
	Apply   bool
	Visible bool
	Tint    string
	Opacity int
}

func defaultConfig() config {
	return config{
		Width:       800,
		Height:      600,
		StorePath:   "filldemo.db",
		HistoryCap:  20,
		SaveDelayMS: 500,
		Outline: outlineConfig{
			Apply:   false,
			Visible: true,
			Tint:    "#000000",
			Opacity: 100,
		},
	}
}

// load overlays values from a TOML file onto the defaults.
func (c *config) load(path string) error {
	if _, err := toml.DecodeFile(path, c); err != nil {
		return fmt.Errorf("decode %s: %w", path, err)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("invalid dimensions %dx%d", c.Width, c.Height)
	}
	return nil
}

// SaveDelay returns the debounce window as a duration.
func (c *config) SaveDelay() time.Duration {
	return time.Duration(c.SaveDelayMS) * time.Millisecond
}
