package device

import (
	"fmt"
	"strings"
)

// Type identifies a device class. The zero value is not a device type.
type Type int

const (
	Phone Type = iota + 1
	Tablet
	Desktop
)

// registry lists every device type in canonical order (ascending width).
var registry = [...]struct {
	typ  Type
	name string
}{
	{Phone, "phone"},
	{Tablet, "tablet"},
	{Desktop, "desktop"},
}

// Types returns all device types in canonical order.
func Types() []Type {
	out := make([]Type, 0, len(registry))
	for _, entry := range registry {
		out = append(out, entry.typ)
	}
	return out
}

// IsValidType reports whether t is one of the defined device types.
func IsValidType(t Type) bool {
	for _, entry := range registry {
		if entry.typ == t {
			return true
		}
	}
	return false
}

// IsValid reports whether t is one of the defined device types.
func (t Type) IsValid() bool {
	return IsValidType(t)
}

func (t Type) String() string {
	for _, entry := range registry {
		if entry.typ == t {
			return entry.name
		}
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// UnknownNameError is returned when a device type name cannot be parsed.
type UnknownNameError struct {
	Name string
}

func (e *UnknownNameError) Error() string {
	return fmt.Sprintf("unknown device type %q", e.Name)
}

// Parse resolves a device type from its key name. Matching ignores case and
// surrounding whitespace.
func Parse(name string) (Type, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, entry := range registry {
		if entry.name == key {
			return entry.typ, nil
		}
	}
	return 0, &UnknownNameError{Name: name}
}

// MarshalText implements encoding.TextMarshaler.
func (t Type) MarshalText() ([]byte, error) {
	if !t.IsValid() {
		return nil, fmt.Errorf("marshal device type: %v is not a device type", t)
	}
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Type) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
