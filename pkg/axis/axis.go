package axis

import (
	"fmt"
	"strings"
)

// Raw sample domain. The device-polling layer scales all samples into this
// range before they reach the engine.
const (
	RawMin = 0
	RawMax = 4095
)

// NarrowSpan is the minimum calibration span (10% of full scale) below which
// a range is accepted with a precision warning.
const NarrowSpan = 409

// UnusualMargin is the distance from either raw extreme within which a sample
// used as a calibration bound is flagged as suspicious.
const UnusualMargin = 100

// Axis identifies one independently calibrated input channel.
type Axis int

const (
	X Axis = iota
	Z
	RY
)

// All lists every axis in display order.
var All = [3]Axis{X, Z, RY}

func (a Axis) String() string {
	switch a {
	case X:
		return "X"
	case Z:
		return "Z"
	case RY:
		return "RY"
	}
	return fmt.Sprintf("Axis(%d)", int(a))
}

// Slot returns the axis slot index in the persisted calibration layout.
// The slots are not contiguous: the external record layout assigns X, Z and
// RY to slots 0, 2 and 4.
func (a Axis) Slot() int {
	switch a {
	case X:
		return 0
	case Z:
		return 2
	case RY:
		return 4
	}
	return 0
}

// DefaultName returns the factory display name for the axis.
func (a Axis) DefaultName() string {
	return a.String() + "-Axis"
}

// Parse converts a case-insensitive axis name ("x", "z", "ry") to an Axis.
func Parse(s string) (Axis, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "X":
		return X, nil
	case "Z":
		return Z, nil
	case "RY":
		return RY, nil
	}
	return X, fmt.Errorf("unknown axis %q (expected X, Z or RY)", s)
}
