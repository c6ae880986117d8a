// Package device defines the boundary to the raw input hardware: a pull-based
// source that yields one pre-scaled sample triple per tick. It carries the
// interface, the device identity constants, test/simulation sources, and the
// Windows joystick reader.
package device

import (
	"errors"

	"github.com/simcoaches/trackpro/pkg/axis"
)

// Identity of the supported pedal controller.
const (
	VendorID  uint16 = 0x2735
	ProductID uint16 = 0x1DD2
)

// RawInputMax is the native 16-bit axis range reported by the controller
// before scaling into the engine's raw domain.
const RawInputMax = 65535

// ErrUnavailable is returned by Poll when the device cannot currently be
// read. Callers retry once within the same tick and otherwise keep their
// last-known-good values.
var ErrUnavailable = errors.New("device unavailable")

// Sample is one instantaneous reading of all three axes, already scaled into
// the 0..4095 raw domain.
type Sample struct {
	X  int `json:"x"`
	Z  int `json:"z"`
	RY int `json:"ry"`
}

// Value returns the reading for one axis.
func (s Sample) Value(a axis.Axis) int {
	switch a {
	case axis.Z:
		return s.Z
	case axis.RY:
		return s.RY
	default:
		return s.X
	}
}

// Source supplies one raw sample triple per tick.
type Source interface {
	// Poll reads the current axis values. It returns ErrUnavailable on a
	// transient failure; the reading is then undefined.
	Poll() (Sample, error)
	// Close releases the underlying device.
	Close() error
}

// Matches reports whether an enumerated controller is the supported device.
// Enumeration takes the first match.
func Matches(vendorID, productID uint16) bool {
	return vendorID == VendorID && productID == ProductID
}

// Scale converts a native 16-bit axis value into the 0..4095 raw domain.
func Scale(v int) int {
	if v < 0 {
		return 0
	}
	if v > RawInputMax {
		return axis.RawMax
	}
	return v * axis.RawMax / RawInputMax
}
