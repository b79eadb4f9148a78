package breakpoint

import (
	"errors"
	"fmt"
	"math"

	"github.com/five82/devclass/internal/device"
)

// Unbounded is the upper limit of the widest device type's range. No real
// viewport width reaches it.
const Unbounded = math.MaxInt

// Breakpoint is the minimum viewport width, in pixels, at which a device type
// begins.
type Breakpoint struct {
	Type     device.Type
	MinWidth int
}

// Table is an ordered breakpoint list. Entries are kept in ascending
// threshold order, which is also the canonical device order; Range depends
// on that order.
type Table struct {
	entries []Breakpoint
}

// Range is the half-open width interval [LowerLimit, UpperLimit) owned by
// one device type.
type Range struct {
	LowerLimit int
	UpperLimit int
}

// Contains reports whether width falls inside the range.
func (r Range) Contains(width int) bool {
	return width >= r.LowerLimit && width < r.UpperLimit
}

// Bounded reports whether the range has a finite upper limit.
func (r Range) Bounded() bool {
	return r.UpperLimit != Unbounded
}

func (r Range) String() string {
	if !r.Bounded() {
		return fmt.Sprintf("[%d, +inf)", r.LowerLimit)
	}
	return fmt.Sprintf("[%d, %d)", r.LowerLimit, r.UpperLimit)
}

// UnknownDeviceTypeError reports a token outside the device enumeration.
type UnknownDeviceTypeError struct {
	Type device.Type
}

func (e *UnknownDeviceTypeError) Error() string {
	return fmt.Sprintf("unknown device type: %d", int(e.Type))
}

var defaultEntries = []Breakpoint{
	{Type: device.Phone, MinWidth: 320},
	{Type: device.Tablet, MinWidth: 768},
	{Type: device.Desktop, MinWidth: 1024},
}

// Default returns the standard table: phone 320, tablet 768, desktop 1024.
func Default() Table {
	table, err := NewTable(defaultEntries...)
	if err != nil {
		panic(fmt.Sprintf("breakpoint: invalid default table: %v", err))
	}
	return table
}

// NewTable builds a table from entries listed in canonical device order.
// Every device type must appear exactly once with a non-negative threshold,
// and thresholds must be strictly increasing.
func NewTable(entries ...Breakpoint) (Table, error) {
	canonical := device.Types()
	if len(entries) != len(canonical) {
		return Table{}, fmt.Errorf("breakpoint table needs %d entries, got %d", len(canonical), len(entries))
	}
	for i, entry := range entries {
		if !device.IsValidType(entry.Type) {
			return Table{}, &UnknownDeviceTypeError{Type: entry.Type}
		}
		if entry.Type != canonical[i] {
			return Table{}, fmt.Errorf("breakpoint %d is %v, want %v", i, entry.Type, canonical[i])
		}
		if entry.MinWidth < 0 {
			return Table{}, fmt.Errorf("breakpoint %v has negative width %d", entry.Type, entry.MinWidth)
		}
		if i > 0 && entry.MinWidth <= entries[i-1].MinWidth {
			return Table{}, fmt.Errorf("breakpoint %v (%d) must exceed %v (%d)",
				entry.Type, entry.MinWidth, entries[i-1].Type, entries[i-1].MinWidth)
		}
	}

	dup := make([]Breakpoint, len(entries))
	copy(dup, entries)
	return Table{entries: dup}, nil
}

// Entries returns a copy of the breakpoints in ascending order.
func (t Table) Entries() []Breakpoint {
	dup := make([]Breakpoint, len(t.entries))
	copy(dup, t.entries)
	return dup
}


// Len returns the number of breakpoints in t. The zero Table has none.
func (t Table) Len() int {
	return len(t.entries)
}
// Widest returns the device type with the highest threshold.
func (t Table) Widest() device.Type {
	if len(t.entries) == 0 {
		return 0
	}
	return t.entries[len(t.entries)-1].Type
}

// Threshold returns the minimum width of the given device type.
func (t Table) Threshold(typ device.Type) (int, error) {
	idx, err := t.index(typ)
	if err != nil {
		return 0, err
	}
	return t.entries[idx].MinWidth, nil
}

// Range returns the width interval owned by the given device type. The
// upper limit is the next type's threshold, or Unbounded for the widest type.
func (t Table) Range(typ device.Type) (Range, error) {
	idx, err := t.index(typ)
	if err != nil {
		return Range{}, err
	}

	r := Range{LowerLimit: t.entries[idx].MinWidth, UpperLimit: Unbounded}
	if idx+1 < len(t.entries) {
		r.UpperLimit = t.entries[idx+1].MinWidth
	}
	return r, nil
}

// Classify returns the device type whose range contains width. It reports
// false for widths below the lowest threshold.
func (t Table) Classify(width int) (device.Type, bool) {
	for i := len(t.entries) - 1; i >= 0; i-- {
		if width >= t.entries[i].MinWidth {
			return t.entries[i].Type, true
		}
	}
	return 0, false
}

// IsMobile reports whether width lies below the breaker's threshold.
func (t Table) IsMobile(width int, breaker device.Type) (bool, error) {
	threshold, err := t.Threshold(breaker)
	if err != nil {
		return false, err
	}
	return width < threshold, nil
}

// IsDesktop reports whether width reaches the breaker's threshold.
func (t Table) IsDesktop(width int, breaker device.Type) (bool, error) {
	threshold, err := t.Threshold(breaker)
	if err != nil {
		return false, err
	}
	return width >= threshold, nil
}

// IsDevice reports whether width lies inside the exact range of typ,
// independent of any breaker.
func (t Table) IsDevice(width int, typ device.Type) (bool, error) {
	r, err := t.Range(typ)
	if err != nil {
		return false, err
	}
	return r.Contains(width), nil
}

// IsUnknownDeviceType reports whether err is or wraps an UnknownDeviceTypeError.
func IsUnknownDeviceType(err error) bool {
	var target *UnknownDeviceTypeError
	return errors.As(err, &target)
}

// index finds typ by identity. The first match in ascending order wins.
func (t Table) index(typ device.Type) (int, error) {
	if !device.IsValidType(typ) {
		return 0, &UnknownDeviceTypeError{Type: typ}
	}
	for i, entry := range t.entries {
		if entry.Type == typ {
			return i, nil
		}
	}
	return 0, &UnknownDeviceTypeError{Type: typ}
}
