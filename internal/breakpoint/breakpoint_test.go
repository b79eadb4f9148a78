package breakpoint

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/five82/devclass/internal/device"
)

func TestRange_LowerBelowUpper(t *testing.T) {
	table := Default()
	for _, typ := range device.Types() {
		r, err := table.Range(typ)
		if err != nil {
			t.Fatalf("Range(%v) returned error: %v", typ, err)
		}
		if r.LowerLimit >= r.UpperLimit {
			t.Fatalf("Range(%v) = %v, want lower < upper", typ, r)
		}
	}
}

func TestRange_AdjacentTypesShareBoundary(t *testing.T) {
	table := Default()
	types := device.Types()
	for i := 0; i+1 < len(types); i++ {
		lo, err := table.Range(types[i])
		if err != nil {
			t.Fatalf("Range(%v) returned error: %v", types[i], err)
		}
		hi, err := table.Range(types[i+1])
		if err != nil {
			t.Fatalf("Range(%v) returned error: %v", types[i+1], err)
		}
		if lo.UpperLimit != hi.LowerLimit {
			t.Fatalf("Range(%v).UpperLimit = %d, Range(%v).LowerLimit = %d, want equal",
				types[i], lo.UpperLimit, types[i+1], hi.LowerLimit)
		}
	}
}

func TestRange_DefaultValues(t *testing.T) {
	table := Default()
	cases := []struct {
		typ  device.Type
		want Range
	}{
		{device.Phone, Range{LowerLimit: 320, UpperLimit: 768}},
		{device.Tablet, Range{LowerLimit: 768, UpperLimit: 1024}},
		{device.Desktop, Range{LowerLimit: 1024, UpperLimit: Unbounded}},
	}
	for _, tc := range cases {
		got, err := table.Range(tc.typ)
		if err != nil {
			t.Fatalf("Range(%v) returned error: %v", tc.typ, err)
		}
		if got != tc.want {
			t.Fatalf("Range(%v) = %#v, want %#v", tc.typ, got, tc.want)
		}
	}
}

// The widest range is open-ended; its sentinel must beat any width a caller
// can pass, including the largest int.
func TestRange_WidestIsUnbounded(t *testing.T) {
	table := Default()
	r, err := table.Range(table.Widest())
	if err != nil {
		t.Fatalf("Range(widest) returned error: %v", err)
	}
	if r.UpperLimit != Unbounded {
		t.Fatalf("UpperLimit = %d, want Unbounded", r.UpperLimit)
	}
	if r.Bounded() {
		t.Fatalf("Bounded() = true, want false")
	}
	for _, width := range []int{1024, 7680, 1 << 40, math.MaxInt - 1} {
		if !r.Contains(width) {
			t.Fatalf("Contains(%d) = false, want true", width)
		}
	}
	if got := r.String(); got != "[1024, +inf)" {
		t.Fatalf("String() = %q, want [1024, +inf)", got)
	}
}

func TestRange_UnknownDeviceType(t *testing.T) {
	table := Default()
	for _, typ := range []device.Type{0, -3, device.Desktop + 1, device.Type(1024)} {
		_, err := table.Range(typ)
		var unknown *UnknownDeviceTypeError
		if !errors.As(err, &unknown) {
			t.Fatalf("Range(%d) error = %v, want *UnknownDeviceTypeError", int(typ), err)
		}
		if unknown.Type != typ {
			t.Fatalf("UnknownDeviceTypeError.Type = %d, want %d", int(unknown.Type), int(typ))
		}
		if !IsUnknownDeviceType(err) {
			t.Fatalf("IsUnknownDeviceType(%v) = false, want true", err)
		}
	}
}

func TestThreshold(t *testing.T) {
	table := Default()
	want := map[device.Type]int{device.Phone: 320, device.Tablet: 768, device.Desktop: 1024}
	for typ, width := range want {
		got, err := table.Threshold(typ)
		if err != nil {
			t.Fatalf("Threshold(%v) returned error: %v", typ, err)
		}
		if got != width {
			t.Fatalf("Threshold(%v) = %d, want %d", typ, got, width)
		}
	}
	if _, err := table.Threshold(0); !IsUnknownDeviceType(err) {
		t.Fatalf("Threshold(0) error = %v, want unknown device type", err)
	}
}

func TestIsDevice_Boundaries(t *testing.T) {
	table := Default()
	cases := []struct {
		width int
		typ   device.Type
		want  bool
	}{
		{319, device.Phone, false},
		{320, device.Phone, true},
		{767, device.Phone, true},
		{768, device.Phone, false},
		{768, device.Tablet, true},
		{1023, device.Tablet, true},
		{1024, device.Tablet, false},
		{1023, device.Desktop, false},
		{1024, device.Desktop, true},
		{0, device.Phone, false},
	}
	for _, tc := range cases {
		got, err := table.IsDevice(tc.width, tc.typ)
		if err != nil {
			t.Fatalf("IsDevice(%d, %v) returned error: %v", tc.width, tc.typ, err)
		}
		if got != tc.want {
			t.Fatalf("IsDevice(%d, %v) = %v, want %v", tc.width, tc.typ, got, tc.want)
		}
	}

	if _, err := table.IsDevice(500, 0); !IsUnknownDeviceType(err) {
		t.Fatalf("IsDevice(500, 0) error = %v, want unknown device type", err)
	}
}

func TestIsMobileIsDesktop_DesktopBreaker(t *testing.T) {
	table := Default()
	cases := []struct {
		width       int
		wantMobile  bool
		wantDesktop bool
	}{
		{0, true, false},
		{1023, true, false},
		{1024, false, true},
		{4000, false, true},
	}
	for _, tc := range cases {
		mobile, err := table.IsMobile(tc.width, device.Desktop)
		if err != nil {
			t.Fatalf("IsMobile returned error: %v", err)
		}
		desktop, err := table.IsDesktop(tc.width, device.Desktop)
		if err != nil {
			t.Fatalf("IsDesktop returned error: %v", err)
		}
		if mobile != tc.wantMobile || desktop != tc.wantDesktop {
			t.Fatalf("width %d: mobile=%v desktop=%v, want %v/%v",
				tc.width, mobile, desktop, tc.wantMobile, tc.wantDesktop)
		}
	}

	if _, err := table.IsMobile(10, 99); !IsUnknownDeviceType(err) {
		t.Fatalf("IsMobile with bad breaker error = %v, want unknown device type", err)
	}
	if _, err := table.IsDesktop(10, 99); !IsUnknownDeviceType(err) {
		t.Fatalf("IsDesktop with bad breaker error = %v, want unknown device type", err)
	}
}

// IsDevice and IsDesktop agree wherever the breaker's own range applies:
// everywhere for the widest breaker, below the range's upper limit otherwise.
func TestIsDeviceAgreesWithIsDesktopAtBreaker(t *testing.T) {
	table := Default()
	for _, breaker := range device.Types() {
		r, err := table.Range(breaker)
		if err != nil {
			t.Fatalf("Range(%v) returned error: %v", breaker, err)
		}
		for width := 0; width < 2048; width++ {
			if width >= r.UpperLimit {
				break
			}
			isDevice, _ := table.IsDevice(width, breaker)
			isDesktop, _ := table.IsDesktop(width, breaker)
			if isDevice != isDesktop {
				t.Fatalf("breaker %v width %d: IsDevice=%v IsDesktop=%v", breaker, width, isDevice, isDesktop)
			}
		}
	}
}

func TestClassify(t *testing.T) {
	table := Default()
	cases := []struct {
		width  int
		want   device.Type
		wantOK bool
	}{
		{-1, 0, false},
		{0, 0, false},
		{319, 0, false},
		{320, device.Phone, true},
		{767, device.Phone, true},
		{768, device.Tablet, true},
		{1024, device.Desktop, true},
		{math.MaxInt - 1, device.Desktop, true},
	}
	for _, tc := range cases {
		got, ok := table.Classify(tc.width)
		if got != tc.want || ok != tc.wantOK {
			t.Fatalf("Classify(%d) = %v, %v; want %v, %v", tc.width, got, ok, tc.want, tc.wantOK)
		}
	}
}

func TestNewTable_Validation(t *testing.T) {
	cases := []struct {
		name    string
		entries []Breakpoint
		wantErr string
	}{
		{
			name:    "missing entry",
			entries: []Breakpoint{{device.Phone, 320}, {device.Tablet, 768}},
			wantErr: "needs 3 entries",
		},
		{
			name:    "out of order",
			entries: []Breakpoint{{device.Tablet, 320}, {device.Phone, 768}, {device.Desktop, 1024}},
			wantErr: "want phone",
		},
		{
			name:    "duplicate type",
			entries: []Breakpoint{{device.Phone, 320}, {device.Phone, 768}, {device.Desktop, 1024}},
			wantErr: "want tablet",
		},
		{
			name:    "equal thresholds",
			entries: []Breakpoint{{device.Phone, 320}, {device.Tablet, 320}, {device.Desktop, 1024}},
			wantErr: "must exceed",
		},
		{
			name:    "negative",
			entries: []Breakpoint{{device.Phone, -1}, {device.Tablet, 768}, {device.Desktop, 1024}},
			wantErr: "negative width",
		},
		{
			name:    "unknown type",
			entries: []Breakpoint{{0, 320}, {device.Tablet, 768}, {device.Desktop, 1024}},
			wantErr: "unknown device type",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewTable(tc.entries...)
			if err == nil {
				t.Fatalf("NewTable returned nil error, want %q", tc.wantErr)
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Fatalf("NewTable error = %q, want it to mention %q", err.Error(), tc.wantErr)
			}
		})
	}
}

func TestNewTable_CustomThresholds(t *testing.T) {
	table, err := NewTable(
		Breakpoint{device.Phone, 0},
		Breakpoint{device.Tablet, 600},
		Breakpoint{device.Desktop, 1280},
	)
	if err != nil {
		t.Fatalf("NewTable returned error: %v", err)
	}
	r, err := table.Range(device.Tablet)
	if err != nil {
		t.Fatalf("Range returned error: %v", err)
	}
	if r != (Range{LowerLimit: 600, UpperLimit: 1280}) {
		t.Fatalf("Range(tablet) = %v, want [600, 1280)", r)
	}
	if got, ok := table.Classify(0); !ok || got != device.Phone {
		t.Fatalf("Classify(0) = %v, %v; want phone, true", got, ok)
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	table := Default()
	entries := table.Entries()
	entries[0].MinWidth = 9999
	if got, _ := table.Threshold(device.Phone); got != 320 {
		t.Fatalf("Threshold(phone) = %d after mutating Entries(), want 320", got)
	}
}
