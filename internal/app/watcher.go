package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"golang.org/x/term"

	"github.com/five82/devclass/internal/detector"
	"github.com/five82/devclass/internal/state"
)

const defaultWatchInterval = 500 * time.Millisecond

// WidthSource reports the current viewport width in terminal columns.
type WidthSource interface {
	Columns() (int, error)
}

// TerminalSource reads the width of the terminal attached to Fd.
type TerminalSource struct {
	Fd int
}

// Columns implements WidthSource.
func (s TerminalSource) Columns() (int, error) {
	width, _, err := term.GetSize(s.Fd)
	if err != nil {
		return 0, fmt.Errorf("terminal size: %w", err)
	}
	return width, nil
}

// Watch describes what the watcher measures and where results go.
type Watch struct {
	Store    *state.Store
	Source   WidthSource
	Detector *detector.Detector
	ToPixels func(columns int) int
	Interval time.Duration
	Logger   *slog.Logger
	// OnChange runs on the watcher goroutine after each class change.
	OnChange func(state.Snapshot)
}

// StartWatcher launches a background goroutine that measures the width at a
// fixed cadence until ctx is cancelled. It returns immediately.
func StartWatcher(ctx context.Context, w Watch) {
	interval := w.Interval
	if interval <= 0 {
		interval = defaultWatchInterval
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			w.measure()
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
}

func (w Watch) measure() {
	columns, err := w.Source.Columns()
	if err != nil {
		w.Store.Fail(err)
		w.logger().Warn("width poll failed", "error", err)
		return
	}

	pixels := columns
	if w.ToPixels != nil {
		pixels = w.ToPixels(columns)
	}

	if !w.Store.Update(state.Measure(w.Detector, columns, pixels)) {
		return
	}

	snap := w.Store.Snapshot()
	w.logger().Info("device class changed",
		"class", snap.Class(),
		"width", snap.Width,
		"columns", snap.Columns,
		"mobile", snap.Mobile,
		"breaker", snap.Breaker,
	)
	if w.OnChange != nil {
		w.OnChange(snap)
	}
}

func (w Watch) logger() *slog.Logger {
	if w.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return w.Logger
}
