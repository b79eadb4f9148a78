// Package breakpoint maps device types to viewport width intervals.
//
// # Table
//
// A Table is an ordered list of (device type, minimum width) pairs. The
// order is part of the data, not an accident of storage: NewTable rejects
// entries that are not listed in canonical device order with strictly
// increasing thresholds, and Range derives each upper limit from the next
// entry.
//
// Default table:
//
//	phone    320
//	tablet   768
//	desktop 1024
//
// # Ranges
//
// Each type owns the half-open interval [LowerLimit, UpperLimit):
//
//	phone    [320, 768)
//	tablet   [768, 1024)
//	desktop  [1024, +inf)
//
// The widest type's upper limit is Unbounded (math.MaxInt). Widths below the
// phone threshold belong to no type; Classify reports false for them.
//
// # Queries
//
// IsMobile and IsDesktop split widths at a breaker type's threshold.
// IsDevice tests exact range membership and ignores the breaker. For any
// breaker b and width w, IsDevice(w, b) == IsDesktop(w, b) when b is the
// widest type, and IsDesktop(w, b) implies w >= Range(b).LowerLimit for all b.
//
// # Errors
//
// Every lookup by device type validates the type first and returns
// *UnknownDeviceTypeError carrying the offending value. Nothing is retried;
// the computation is pure.
package breakpoint
