package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/five82/devclass/internal/breakpoint"
	"github.com/five82/devclass/internal/config"
	"github.com/five82/devclass/internal/detector"
	"github.com/five82/devclass/internal/prefs"
	"github.com/five82/devclass/internal/state"
	"github.com/five82/devclass/internal/ui"
)

// Mode selects how devclass presents the classification.
type Mode int

const (
	ModeUI     Mode = iota // interactive Bubble Tea UI
	ModeReport             // one-shot report for Options.Width
	ModeWatch              // print class changes of the terminal width
)

// Options configure the devclass application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/devclass/prefs.toml
	LogPath    string // empty discards logs
	Mode       Mode
	Width      int // pixels; used by ModeReport
	Out        io.Writer
}

// Run loads configuration, builds the detector and runs the selected mode
// until it finishes or ctx is cancelled.
func Run(ctx context.Context, opts Options) error {
	logger, closeLog, err := newLogger(opts.LogPath)
	if err != nil {
		return err
	}
	defer func() { _ = closeLog() }()

	out := opts.Out
	if out == nil {
		out = os.Stdout
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs, err := prefs.Load(opts.PrefsPath)
	if err != nil {
		return fmt.Errorf("load prefs: %w", err)
	}

	det, err := newDetector(cfg, userPrefs)
	if err != nil {
		return err
	}
	logger.Info("detector configured",
		"breaker", det.Breaker(),
		"cell_width", cfg.CellWidth,
		"panels", len(cfg.Panels),
	)

	switch opts.Mode {
	case ModeReport:
		if opts.Width < 0 {
			return fmt.Errorf("width must not be negative, got %d", opts.Width)
		}
		return ui.Report(out, det, opts.Width)

	case ModeWatch:
		store := &state.Store{}
		StartWatcher(ctx, Watch{
			Store:    store,
			Source:   TerminalSource{Fd: int(os.Stdout.Fd())},
			Detector: det,
			ToPixels: cfg.ToPixels,
			Interval: cfg.WatchInterval,
			Logger:   logger,
			OnChange: func(snap state.Snapshot) { printTransition(out, snap) },
		})
		<-ctx.Done()
		return nil

	default:
		return ui.Run(ui.Options{
			Context:   ctx,
			Detector:  det,
			Store:     &state.Store{},
			Config:    &cfg,
			Prefs:     userPrefs,
			PrefsPath: opts.PrefsPath,
			Logger:    logger,
		})
	}
}

// newDetector applies the configured breaker, then the user's override.
// Either step failing aborts before the detector is used.
func newDetector(cfg config.Config, userPrefs prefs.Prefs) (*detector.Detector, error) {
	det := detector.New(breakpoint.Default())
	if err := det.Configure(cfg.DetectorOptions()); err != nil {
		return nil, fmt.Errorf("configure detector: %w", err)
	}
	if err := det.Configure(detector.Options{Breaker: userPrefs.Breaker}); err != nil {
		return nil, fmt.Errorf("apply preferred breaker: %w", err)
	}
	return det, nil
}

func printTransition(w io.Writer, snap state.Snapshot) {
	split := "desktop"
	if snap.Mobile {
		split = "mobile"
	}
	if _, err := fmt.Fprintf(w, "%s  %dpx (%d cols)  %s  breaker=%v\n",
		snap.Class(), snap.Width, snap.Columns, split, snap.Breaker); err != nil {
		slog.Default().Warn("write transition", "error", err)
	}
}
