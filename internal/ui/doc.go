// Package ui provides the Bubble Tea front end for devclass.
//
// # Architecture Overview
//
// The UI is the host the detector answers to. Every tea.WindowSizeMsg is
// converted from terminal columns to pixels (config cell width), classified
// with state.Measure and recorded in the state.Store. The view then renders
// from the store snapshot.
//
// # Package Structure
//
//   - app.go: Model, Options, Run and key handling
//   - view.go: header, query lines, configured panels and footer
//   - report.go: breakpoint table and the one-shot text report
//   - keys.go: key bindings (bubbles/key)
//   - help.go: help overlay
//   - theme.go: color palettes and lipgloss styles
//
// # Panels
//
// Each configured panel carries a directive. The view passes the rendered
// panel through Detector.Apply; hidden panels are listed by name on a single
// faint line so it is visible why they are missing.
//
// # Keys
//
//   - b: cycle the breaker through phone, tablet, desktop
//   - B: reset the breaker to the configured one
//   - T: cycle theme
//   - h/?: help
//   - q/ctrl+c: quit
//
// Breaker and theme changes are written to the prefs file immediately.
package ui
