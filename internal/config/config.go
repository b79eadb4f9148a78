package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/devclass/internal/detector"
	"github.com/five82/devclass/internal/device"
)

// Config captures the installation options for devclass.
type Config struct {
	Breaker       device.Type // zero keeps the detector default
	CellWidth     int         // pixels per terminal column
	WatchInterval time.Duration
	Panels        []Panel
}

// Panel is a named block of text shown by the UI unless its directive hides it.
type Panel struct {
	Name      string
	Text      string
	Directive detector.Directive
}

const (
	defaultConfigPath    = "~/.config/devclass/config.toml"
	defaultCellWidth     = 8
	defaultWatchInterval = 500 * time.Millisecond
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		CellWidth:     defaultCellWidth,
		WatchInterval: defaultWatchInterval,
		Panels:        defaultPanels(),
	}
}

func defaultPanels() []Panel {
	return []Panel{
		{Name: "sidebar", Text: "Shown from the breaker up.", Directive: detector.Directive{Kind: detector.HideOnMobile}},
		{Name: "compact", Text: "Shown below the breaker.", Directive: detector.Directive{Kind: detector.HideOnDesktop}},
		{Name: "not-tablet", Text: "Hidden on tablets.", Directive: detector.Directive{Kind: detector.HideOnDevice, Device: device.Tablet}},
	}
}

// Load locates and parses the config, falling back to defaults when missing.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("open config: %w", err)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		Breaker       string `toml:"breaker"`
		CellWidth     int    `toml:"cell_width"`
		WatchInterval string `toml:"watch_interval"`
		Panels        []struct {
			Name string `toml:"name"`
			Text string `toml:"text"`
			Hide string `toml:"hide"`
		} `toml:"panel"`
	}
	// Unknown keys are rejected so a misspelled table never falls back to
	// the default panels.
	dec := toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields()
	if err := dec.Decode(&raw); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("parse config: %w\n%s", err, strict.String())
		}
		return Config{}, fmt.Errorf("parse config: %w", err)
	}

	breaker, err := detector.ParseBreaker(raw.Breaker)
	if err != nil {
		return Config{}, err
	}
	cfg.Breaker = breaker

	if raw.CellWidth < 0 {
		return Config{}, fmt.Errorf("cell_width must be positive, got %d", raw.CellWidth)
	}
	if raw.CellWidth > 0 {
		cfg.CellWidth = raw.CellWidth
	}

	if interval := strings.TrimSpace(raw.WatchInterval); interval != "" {
		d, err := time.ParseDuration(interval)
		if err != nil {
			return Config{}, fmt.Errorf("parse watch_interval: %w", err)
		}
		if d <= 0 {
			return Config{}, fmt.Errorf("watch_interval must be positive, got %s", d)
		}
		cfg.WatchInterval = d
	}

	if len(raw.Panels) > 0 {
		panels := make([]Panel, 0, len(raw.Panels))
		for i, p := range raw.Panels {
			name := strings.TrimSpace(p.Name)
			if name == "" {
				return Config{}, fmt.Errorf("panel %d: name is empty", i)
			}
			directive, err := detector.ParseDirective(p.Hide)
			if err != nil {
				return Config{}, fmt.Errorf("panel %q: %w", name, err)
			}
			panels = append(panels, Panel{Name: name, Text: strings.TrimSpace(p.Text), Directive: directive})
		}
		cfg.Panels = panels
	}

	return cfg, nil
}

// ToPixels converts a terminal column count to a viewport width in pixels.
func (c Config) ToPixels(columns int) int {
	cell := c.CellWidth
	if cell <= 0 {
		cell = defaultCellWidth
	}
	return columns * cell
}

// DetectorOptions returns the detector options carried by the config.
func (c Config) DetectorOptions() detector.Options {
	return detector.Options{Breaker: c.Breaker}
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
