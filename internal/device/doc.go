// Package device defines the closed set of device classes a viewport can
// belong to.
//
// # Device Types
//
// Exactly three types exist, listed in canonical order of ascending width:
//
//   - Phone
//   - Tablet
//   - Desktop
//
// The set is fixed for the lifetime of the process. The zero Type is never a
// member, so an unset field or a raw width cast to Type is rejected by
// IsValidType:
//
//	device.IsValidType(device.Tablet)      // true
//	device.IsValidType(0)                  // false
//	device.IsValidType(device.Type(1024))  // false
//
// # Names
//
// Each type has a lowercase key name used in configuration files and
// directive bindings:
//
//	breaker = "tablet"
//	hide = "hide-on-device:phone"
//
// Parse accepts those names case-insensitively. Type also implements
// encoding.TextMarshaler and TextUnmarshaler so it renders by name in
// structured logs.
package device
