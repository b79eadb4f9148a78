// Package config loads devclass installation options from TOML.
//
// # Configuration Discovery
//
// The Load function follows this resolution order:
//
//  1. If a path is explicitly provided, use it
//  2. Otherwise, use ~/.config/devclass/config.toml (default)
//  3. If the config file doesn't exist, fall back to defaults
//  4. If the file exists but fields are missing/empty, use defaults
//
// # Default Values
//
//   - Breaker: unset (the detector keeps desktop)
//   - Cell width: 8 pixels per terminal column
//   - Watch interval: 500ms
//   - Panels: sidebar (hide-on-mobile), compact (hide-on-desktop),
//     not-tablet (hide-on-device:tablet)
//
// # TOML Format
//
//	breaker = "tablet"
//	cell_width = 8
//	watch_interval = "250ms"
//
//	[[panel]]
//	name = "sidebar"
//	text = "Navigation"
//	hide = "hide-on-mobile"
//
//	[[panel]]
//	name = "tablet-note"
//	hide = "hide-on-device:tablet"
//
// Panels keep the order they are declared in.
//
// # Error Handling
//
// Load returns errors for:
//   - Path expansion failures
//   - File read errors (except os.ErrNotExist, which triggers defaults)
//   - TOML parsing errors
//   - An unknown breaker name (wraps *device.UnknownNameError)
//   - Bad panel directives, negative cell widths, unparsable intervals
//
// An invalid breaker is never silently replaced by the default: the whole
// load fails so nothing reaches the detector.
package config
