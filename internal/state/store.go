package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/five82/devclass/internal/detector"
	"github.com/five82/devclass/internal/device"
)

// Measurement is one classified viewport width.
type Measurement struct {
	Columns    int // terminal columns, zero when the width came from elsewhere
	Width      int // pixels
	Type       device.Type
	Classified bool // false when Width is below every breakpoint
	Mobile     bool
	Breaker    device.Type
}

// Measure classifies width with det.
func Measure(det *detector.Detector, columns, width int) Measurement {
	typ, ok := det.Classify(width)
	return Measurement{
		Columns:    columns,
		Width:      width,
		Type:       typ,
		Classified: ok,
		Mobile:     det.IsMobile(width),
		Breaker:    det.Breaker(),
	}
}

// Class returns a short label for the measurement's device class.
func (m Measurement) Class() string {
	if !m.Classified {
		return "unclassified"
	}
	return m.Type.String()
}

func (m Measurement) sameClass(other Measurement) bool {
	return m.Type == other.Type &&
		m.Classified == other.Classified &&
		m.Mobile == other.Mobile &&
		m.Breaker == other.Breaker
}

// Snapshot represents the latest viewport state.
type Snapshot struct {
	Measurement
	HasMeasurement      bool
	LastUpdated         time.Time
	Transitions         int // class changes since the first measurement
	LastError           error
	ConsecutiveFailures int
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records m and reports whether its class differs from the previous
// measurement. The first measurement always counts as a change.
func (s *Store) Update(m Measurement) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := !s.snapshot.HasMeasurement || !s.snapshot.Measurement.sameClass(m)
	if changed && s.snapshot.HasMeasurement {
		s.snapshot.Transitions++
	}

	s.snapshot.Measurement = m
	s.snapshot.HasMeasurement = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures = 0
	return changed
}

// Fail records a width source error. The previous measurement is kept.
func (s *Store) Fail(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastError = err
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.ConsecutiveFailures++
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
