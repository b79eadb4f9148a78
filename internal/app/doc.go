// Package app wires configuration, the detector and the presentation modes
// together.
//
// # Startup
//
// Run performs, in order:
//
//  1. Open the slog logger (file from -log, discarded otherwise)
//  2. config.Load for installation options
//  3. prefs.Load for the user's theme and breaker override
//  4. Build a detector on the default breakpoint table and apply the
//     configured breaker, then the preferred one
//  5. Dispatch to the selected Mode
//
// A bad breaker in either file stops startup with an error; the detector is
// never used with a breaker that did not validate.
//
// # Modes
//
//   - ModeUI: Bubble Tea UI, classification follows terminal resizes
//   - ModeReport: print the classification of Options.Width and exit
//   - ModeWatch: poll the terminal width and print class transitions
//
// # Watcher
//
// StartWatcher polls a WidthSource on a ticker, converts columns to pixels
// with the configured cell width and records each measurement in a
// state.Store. OnChange fires only when the class, the mobile flag or the
// breaker changes. Source errors are recorded with Store.Fail and logged;
// polling continues on the next tick.
//
//	StartWatcher(ctx, app.Watch{
//		Store:    store,
//		Source:   app.TerminalSource{Fd: int(os.Stdout.Fd())},
//		Detector: det,
//		ToPixels: cfg.ToPixels,
//	})
package app
