// Package prefs handles devclass user preferences persistence.
// Preferences are stored in ~/.config/devclass/prefs.toml.
package prefs

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	toml "github.com/pelletier/go-toml/v2"

	"github.com/five82/devclass/internal/detector"
	"github.com/five82/devclass/internal/device"
)

// Prefs holds user preferences for devclass.
type Prefs struct {
	Theme string
	// Breaker chosen interactively; zero means no override.
	Breaker device.Type
}

type prefsFile struct {
	Theme   string `toml:"theme"`
	Breaker string `toml:"breaker,omitempty"`
}

const (
	defaultPrefsPath = "~/.config/devclass/prefs.toml"
	defaultTheme     = "Nightfox"
)

// DefaultPath returns the default preferences file path.
func DefaultPath() string {
	return defaultPrefsPath
}

// Load reads preferences from the given path, falling back to defaults if
// missing or unreadable. A file naming an unknown breaker is an error rather
// than a silent fallback.
func Load(path string) (Prefs, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Prefs{Theme: defaultTheme}, nil
	}

	p := Prefs{Theme: defaultTheme}

	file, err := os.Open(resolved)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return p, nil
		}
		return p, nil // Graceful degradation
	}
	defer func() { _ = file.Close() }()

	bytes, err := io.ReadAll(file)
	if err != nil {
		return p, nil // Graceful degradation
	}

	var raw prefsFile
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return Prefs{Theme: defaultTheme}, nil // Graceful degradation
	}

	if theme := strings.TrimSpace(raw.Theme); theme != "" {
		p.Theme = theme
	}
	breaker, err := detector.ParseBreaker(raw.Breaker)
	if err != nil {
		return Prefs{Theme: defaultTheme}, fmt.Errorf("prefs breaker: %w", err)
	}
	p.Breaker = breaker
	return p, nil
}

// Save writes preferences to the given path, creating directories as needed.
func Save(path string, p Prefs) error {
	resolved, err := resolvePath(path)
	if err != nil {
		return fmt.Errorf("resolve path: %w", err)
	}

	dir := filepath.Dir(resolved)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create prefs dir: %w", err)
	}

	raw := prefsFile{Theme: p.Theme}
	if p.Breaker != 0 {
		raw.Breaker = p.Breaker.String()
	}
	bytes, err := toml.Marshal(raw)
	if err != nil {
		return fmt.Errorf("marshal prefs: %w", err)
	}

	if err := os.WriteFile(resolved, bytes, 0o644); err != nil {
		return fmt.Errorf("write prefs: %w", err)
	}

	return nil
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultPrefsPath)
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
