// Package store persists per-axis calibration records to the host's
// key-value store. On Windows that is the DirectInput calibration area of the
// registry; everywhere else a file tree mirroring the same key layout is
// used, which keeps the daemon and its tests portable. Every successful
// write is followed by a best-effort device-refresh notification.
package store

import (
	"errors"
	"strconv"
	"strings"

	"github.com/simcoaches/trackpro/pkg/axis"
)

// External key layout. Key construction must reproduce it exactly or
// previously persisted calibration data becomes unreadable.
const (
	// BasePath is the fixed prefix of the per-device calibration area.
	BasePath = `System\CurrentControlSet\Control\MediaProperties\PrivateProperties\DirectInput`
	// DeviceSegment identifies the supported controller.
	DeviceSegment = `VID_1DD2&PID_2735`
	// ValueName is the binary value holding the record under each axis key.
	ValueName = "Calibration"
)

// ErrNotFound means no record is stored under the axis key. Record-kind and
// length failures surface as axis.ErrCorrupt.
var ErrNotFound = errors.New("calibration record not found")

// Store reads and writes per-axis calibration records.
type Store interface {
	// WriteAxis derives the midpoint, zeroes the deadzones, and persists the
	// 20-byte record for the axis, then issues the refresh notification.
	// Notification failures are logged, never returned.
	WriteAxis(a axis.Axis, r axis.Range) error
	// ReadAxis returns the stored record, ErrNotFound when absent, or an
	// error wrapping axis.ErrCorrupt when the stored blob is malformed.
	ReadAxis(a axis.Axis) (axis.Record, error)
}

// Key returns the registry-style key for one axis:
// <BasePath>\<DeviceSegment>\Calibration\0\Type\Axes\<slot>.
func Key(a axis.Axis) string {
	return BasePath + `\` + DeviceSegment + `\Calibration\0\Type\Axes\` + strconv.Itoa(a.Slot())
}

// keyPathElems returns the key split into path elements, for stores that map
// keys onto directories.
func keyPathElems(a axis.Axis) []string {
	return strings.Split(Key(a), `\`)
}
