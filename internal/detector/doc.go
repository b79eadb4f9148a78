// Package detector is the surface a UI host consumes: classification queries
// bound to a configurable breaker, and directives that hide content.
//
// # Breaker
//
// The breaker is the device type whose threshold splits mobile from desktop.
// It defaults to the widest type in the table (desktop) and changes only
// through Configure, which validates first and commits second:
//
//	det := detector.New(breakpoint.Default())
//	if err := det.Configure(detector.Options{Breaker: device.Tablet}); err != nil {
//		return err // *InvalidConfigurationError, breaker unchanged
//	}
//
// Reads and writes of the breaker are guarded by a RWMutex, so the UI can
// switch breakers while queries run.
//
// # Queries
//
//   - IsMobile(w):  w < threshold(breaker)
//   - IsDesktop(w): w >= threshold(breaker)
//   - IsDevice(w, t): w in Range(t), regardless of the breaker
//
// # Directives
//
// Directives are written as strings in configuration:
//
//	hide-on-mobile
//	hide-on-desktop
//	hide-on-device:tablet
//
// Apply returns the content unchanged, or "" when the directive hides it.
package detector
