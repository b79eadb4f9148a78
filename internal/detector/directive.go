package detector

import (
	"errors"
	"fmt"
	"strings"

	"github.com/five82/devclass/internal/device"
)

// DirectiveKind selects which query hides an element.
type DirectiveKind int

const (
	HideOnMobile DirectiveKind = iota + 1
	HideOnDesktop
	HideOnDevice
)

const (
	hideOnMobileName  = "hide-on-mobile"
	hideOnDesktopName = "hide-on-desktop"
	hideOnDeviceName  = "hide-on-device"
)

func (k DirectiveKind) String() string {
	switch k {
	case HideOnMobile:
		return hideOnMobileName
	case HideOnDesktop:
		return hideOnDesktopName
	case HideOnDevice:
		return hideOnDeviceName
	default:
		return fmt.Sprintf("DirectiveKind(%d)", int(k))
	}
}

// Directive hides content depending on the viewport width. Device is only
// used by HideOnDevice.
type Directive struct {
	Kind   DirectiveKind
	Device device.Type
}

func (d Directive) String() string {
	if d.Kind == HideOnDevice {
		return fmt.Sprintf("%s:%v", d.Kind, d.Device)
	}
	return d.Kind.String()
}

// ErrUnknownDirective is returned for directive names other than
// hide-on-mobile, hide-on-desktop and hide-on-device.
var ErrUnknownDirective = errors.New("unknown directive")

// ParseDirective parses "hide-on-mobile", "hide-on-desktop" or
// "hide-on-device:<type>".
func ParseDirective(s string) (Directive, error) {
	name, binding, hasBinding := strings.Cut(strings.TrimSpace(s), ":")
	switch strings.ToLower(strings.TrimSpace(name)) {
	case hideOnMobileName:
		if hasBinding {
			return Directive{}, fmt.Errorf("%s takes no binding, got %q", hideOnMobileName, binding)
		}
		return Directive{Kind: HideOnMobile}, nil
	case hideOnDesktopName:
		if hasBinding {
			return Directive{}, fmt.Errorf("%s takes no binding, got %q", hideOnDesktopName, binding)
		}
		return Directive{Kind: HideOnDesktop}, nil
	case hideOnDeviceName:
		typ, err := device.Parse(binding)
		if err != nil {
			return Directive{}, fmt.Errorf("can not hide unknown device type %q: %w", binding, err)
		}
		return Directive{Kind: HideOnDevice, Device: typ}, nil
	default:
		return Directive{}, fmt.Errorf("%w: %q", ErrUnknownDirective, s)
	}
}

// Hidden reports whether content under dir is hidden at width.
func (d *Detector) Hidden(dir Directive, width int) (bool, error) {
	switch dir.Kind {
	case HideOnMobile:
		return d.IsMobile(width), nil
	case HideOnDesktop:
		return d.IsDesktop(width), nil
	case HideOnDevice:
		hidden, err := d.IsDevice(width, dir.Device)
		if err != nil {
			return false, fmt.Errorf("can not hide unknown device type: %w", err)
		}
		return hidden, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrUnknownDirective, dir.Kind)
	}
}

// Apply returns content, or the empty string when dir hides it at width.
func (d *Detector) Apply(dir Directive, width int, content string) (string, error) {
	hidden, err := d.Hidden(dir, width)
	if err != nil {
		return "", err
	}
	if hidden {
		return "", nil
	}
	return content, nil
}
