package detector

import (
	"fmt"
	"strings"
	"sync"

	"github.com/five82/devclass/internal/breakpoint"
	"github.com/five82/devclass/internal/device"
)

// Options configure a Detector. A zero Breaker means no breaker was supplied.
type Options struct {
	Breaker device.Type
}

// InvalidConfigurationError is returned when a breaker falls outside the
// device enumeration. Breaker is set for a rejected type; Value and Err are
// set when a breaker name could not be parsed.
type InvalidConfigurationError struct {
	Breaker device.Type
	Value   string
	Err     error
}

func (e *InvalidConfigurationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid breaker option %q: %v", e.Value, e.Err)
	}
	return fmt.Sprintf("invalid breaker option: %v", e.Breaker)
}

func (e *InvalidConfigurationError) Unwrap() error {
	return e.Err
}

// ParseBreaker parses a breaker name from a config or prefs file. A blank name
// yields zero, meaning no breaker was supplied.
func ParseBreaker(name string) (device.Type, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return 0, nil
	}
	typ, err := device.Parse(trimmed)
	if err != nil {
		return 0, &InvalidConfigurationError{Value: trimmed, Err: err}
	}
	return typ, nil
}

// Detector answers classification queries against a breakpoint table and a
// breaker that splits mobile from desktop. The zero Detector behaves like
// New(breakpoint.Default()).
type Detector struct {
	table breakpoint.Table

	mu      sync.RWMutex
	breaker device.Type
}

// New creates a detector whose breaker is the widest type of table.
func New(table breakpoint.Table) *Detector {
	return &Detector{table: table, breaker: table.Widest()}
}

// Configure applies opts. An invalid breaker is rejected before anything is
// committed, so the previous breaker stays active.
func (d *Detector) Configure(opts Options) error {
	if opts.Breaker == 0 {
		return nil
	}
	if !device.IsValidType(opts.Breaker) {
		return &InvalidConfigurationError{Breaker: opts.Breaker}
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	d.breaker = opts.Breaker
	return nil
}

// Breaker returns the active breaker.
func (d *Detector) Breaker() device.Type {
	d.mu.RLock()
	breaker := d.breaker
	d.mu.RUnlock()
	if breaker == 0 {
		return d.Table().Widest()
	}
	return breaker
}

// Table returns the detector's breakpoint table.
func (d *Detector) Table() breakpoint.Table {
	if d.table.Len() == 0 {
		return breakpoint.Default()
	}
	return d.table
}

// IsMobile reports whether width lies below the breaker threshold.
func (d *Detector) IsMobile(width int) bool {
	return width < d.breakerThreshold()
}

// IsDesktop reports whether width reaches the breaker threshold.
func (d *Detector) IsDesktop(width int) bool {
	return width >= d.breakerThreshold()
}

// IsDevice reports whether width lies in the exact range of typ. The breaker
// plays no part.
func (d *Detector) IsDevice(width int, typ device.Type) (bool, error) {
	return d.Table().IsDevice(width, typ)
}

// Range returns the width interval owned by typ.
func (d *Detector) Range(typ device.Type) (breakpoint.Range, error) {
	return d.Table().Range(typ)
}

// Classify returns the device type owning width, if any.
func (d *Detector) Classify(width int) (device.Type, bool) {
	return d.Table().Classify(width)
}

func (d *Detector) breakerThreshold() int {
	threshold, err := d.Table().Threshold(d.Breaker())
	if err != nil {
		// Configure only commits valid breakers and an unset breaker falls
		// back to the table's widest type.
		panic(fmt.Sprintf("detector: breaker has no threshold: %v", err))
	}
	return threshold
}
