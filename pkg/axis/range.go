package axis

import "errors"

var (
	// ErrInvalidRange means min >= max. A range carrying this error must be
	// rejected; the previous range stays in effect.
	ErrInvalidRange = errors.New("invalid range: minimum must be less than maximum")

	// ErrNarrowRange means the range is valid but its span is below
	// NarrowSpan. It is a warning: the range is still usable, precision may
	// suffer.
	ErrNarrowRange = errors.New("calibration range is very small and may affect precision")
)

// Range is the user-defined inclusive [Min,Max] sub-interval of the raw
// domain that maps to 0-100%.
type Range struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// DefaultRange covers the full raw domain.
func DefaultRange() Range {
	return Range{Min: RawMin, Max: RawMax}
}

// Mid returns the arithmetic midpoint, truncated. It is derived on every
// persistence write and never stored independently.
func (r Range) Mid() int {
	return (r.Min + r.Max) / 2
}

// Span returns Max - Min.
func (r Range) Span() int {
	return r.Max - r.Min
}

// Validate checks a proposed range before acceptance. It returns
// ErrInvalidRange when min >= max (fatal, reject), ErrNarrowRange when the
// span is below NarrowSpan (warning, accept), and nil otherwise. Callers
// distinguish the two with errors.Is.
func (r Range) Validate() error {
	if r.Min >= r.Max {
		return ErrInvalidRange
	}
	if r.Span() < NarrowSpan {
		return ErrNarrowRange
	}
	return nil
}

// Unusual reports whether a raw value sits within UnusualMargin of either
// raw extreme. Such values are suspicious as calibration bounds but are
// never rejected on that basis alone.
func Unusual(value int) bool {
	return value < RawMin+UnusualMargin || value > RawMax-UnusualMargin
}

// Snapshot is the full three-axis calibration state at one point in time.
// Snapshots pushed to the undo history are treated as immutable.
type Snapshot struct {
	X  Range `json:"x"`
	Z  Range `json:"z"`
	RY Range `json:"ry"`
}

// DefaultSnapshot returns the factory calibration: every axis at full scale.
func DefaultSnapshot() Snapshot {
	return Snapshot{X: DefaultRange(), Z: DefaultRange(), RY: DefaultRange()}
}

// Range returns the range for the given axis.
func (s Snapshot) Range(a Axis) Range {
	switch a {
	case Z:
		return s.Z
	case RY:
		return s.RY
	default:
		return s.X
	}
}

// SetRange replaces the range for the given axis.
func (s *Snapshot) SetRange(a Axis, r Range) {
	switch a {
	case Z:
		s.Z = r
	case RY:
		s.RY = r
	default:
		s.X = r
	}
}
