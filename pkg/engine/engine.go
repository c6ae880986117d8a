// Package engine implements the calibration engine: it owns the three live
// axis ranges, the calibrated-mode flag, the undo history and the chart
// buffers, and drives the device tick loop. It has no UI dependency; the
// daemon's HTTP layer and the CLI are thin adapters over it.
package engine

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/axis"
	"github.com/simcoaches/trackpro/pkg/device"
	"github.com/simcoaches/trackpro/pkg/events"
	"github.com/simcoaches/trackpro/pkg/store"
)

// Engine is the single owner of calibration state. All mutation is
// serialized behind one mutex: HTTP handlers and the tick loop run on
// different goroutines, but there is exactly one writer role at any instant.
type Engine struct {
	mu sync.Mutex

	store  store.Store
	source device.Source
	hub    *events.Hub

	ranges     axis.Snapshot
	calibrated bool
	raws       device.Sample
	haveSample bool

	history *History
	buffers map[axis.Axis]*SampleBuffer

	lastTickOK bool
}

// OpResult reports the outcome of a calibration operation, including
// non-fatal warnings the caller should surface to the user.
type OpResult struct {
	Op         string        `json:"op"`
	Axis       string        `json:"axis,omitempty"`
	Ranges     axis.Snapshot `json:"ranges"`
	Calibrated bool          `json:"calibrated"`
	Warnings   []string      `json:"warnings,omitempty"`
}

// Status is the engine state snapshot exposed to front-ends.
type Status struct {
	DeviceAvailable bool           `json:"deviceAvailable"`
	Calibrated      bool           `json:"calibrated"`
	Ranges          axis.Snapshot  `json:"ranges"`
	Raw             device.Sample  `json:"raw"`
	Percent         map[string]int `json:"percent"`
	RawPercent      map[string]int `json:"rawPercent"`
	HistoryLen      int            `json:"historyLen"`
}

// New returns an engine over the given store and source. source may be nil:
// the engine then runs in no-device mode, where status still works but every
// calibration set operation reports the source as unavailable.
func New(st store.Store, src device.Source, hub *events.Hub) *Engine {
	e := &Engine{
		store:   st,
		source:  src,
		hub:     hub,
		ranges:  axis.DefaultSnapshot(),
		history: NewHistory(),
		buffers: make(map[axis.Axis]*SampleBuffer, len(axis.All)),
	}
	for _, a := range axis.All {
		e.buffers[a] = NewSampleBuffer()
	}
	return e
}

// LoadPersisted reads any previously stored calibration into the live
// ranges. Absent or unreadable records leave the factory default in place;
// neither is fatal.
func (e *Engine) LoadPersisted() {
	e.mu.Lock()
	defer e.mu.Unlock()

	for _, a := range axis.All {
		rec, err := e.store.ReadAxis(a)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				logrus.WithField("axis", a.String()).Debug("no stored calibration, using defaults")
			} else {
				logrus.WithError(err).WithField("axis", a.String()).Warn("stored calibration unreadable, using defaults")
			}
			continue
		}
		r := rec.Range()
		if r.Min >= r.Max {
			logrus.WithFields(logrus.Fields{
				"axis": a.String(),
				"min":  r.Min,
				"max":  r.Max,
			}).Warn("stored calibration range invalid, using defaults")
			continue
		}
		e.ranges.SetRange(a, r)
	}
}

// SetMin overwrites the axis minimum with the current raw sample and
// persists the axis. It returns device.ErrUnavailable before the first
// successful poll (no-device mode).
func (e *Engine) SetMin(a axis.Axis) (OpResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.haveSample {
		return OpResult{}, device.ErrUnavailable
	}
	raw := e.raws.Value(a)
	r := e.ranges.Range(a)
	r.Min = raw
	e.ranges.SetRange(a, r)

	res := e.resultLocked("set-min", a)
	if axis.Unusual(raw) {
		res.Warnings = append(res.Warnings, unusualWarning(a, raw))
	}

	err := e.persistLocked(res, a)
	return res, err
}

// SetMax overwrites the axis maximum with the current raw sample, flips the
// engine into calibrated display mode, and persists the axis.
func (e *Engine) SetMax(a axis.Axis) (OpResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if !e.haveSample {
		return OpResult{}, device.ErrUnavailable
	}
	raw := e.raws.Value(a)
	r := e.ranges.Range(a)
	r.Max = raw
	e.ranges.SetRange(a, r)
	e.setCalibratedLocked(true)

	res := e.resultLocked("set-max", a)
	if axis.Unusual(raw) {
		res.Warnings = append(res.Warnings, unusualWarning(a, raw))
	}

	err := e.persistLocked(res, a)
	return res, err
}

// Reset restores all three axes to factory defaults and leaves calibrated
// display mode. It does not back up the current state; RestoreDefaults is
// the only auto-backup path.
func (e *Engine) Reset() (OpResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.resetLocked("reset")
}

// RestoreDefaults pushes the current snapshot onto the undo history and then
// performs a reset.
func (e *Engine) RestoreDefaults() (OpResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.history.Backup(e.ranges)
	return e.resetLocked("restore-defaults")
}

// RestoreLast pops the most recent history snapshot, makes it live, and
// persists all three axes. ErrEmptyHistory is informational, not a failure:
// nothing is changed.
func (e *Engine) RestoreLast() (OpResult, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap, err := e.history.RestoreLast()
	if err != nil {
		return OpResult{}, err
	}
	e.ranges = snap

	res := e.resultLocked("restore-last", -1)
	err = e.persistLocked(res, axis.All[:]...)
	return res, err
}

// Validate checks the axis's current range: ErrInvalidRange rejects,
// ErrNarrowRange warns, nil passes.
func (e *Engine) Validate(a axis.Axis) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ranges.Range(a).Validate()
}

// IsValueUnusual reports whether a raw value sits suspiciously close to a
// domain extreme. It never alters state.
func (e *Engine) IsValueUnusual(value int) bool {
	return axis.Unusual(value)
}

// Range returns the live range for one axis.
func (e *Engine) Range(a axis.Axis) axis.Range {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ranges.Range(a)
}

// Samples returns the chart buffer for one axis, oldest-first.
func (e *Engine) Samples(a axis.Axis) []float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.buffers[a].Values()
}

// HistoryLen returns the number of undo snapshots currently held.
func (e *Engine) HistoryLen() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.history.Len()
}

// Status returns a consistent snapshot of the engine state.
func (e *Engine) Status() Status {
	e.mu.Lock()
	defer e.mu.Unlock()

	st := Status{
		DeviceAvailable: e.source != nil && e.haveSample,
		Calibrated:      e.calibrated,
		Ranges:          e.ranges,
		Raw:             e.raws,
		Percent:         make(map[string]int, len(axis.All)),
		RawPercent:      make(map[string]int, len(axis.All)),
		HistoryLen:      e.history.Len(),
	}
	for _, a := range axis.All {
		raw := e.raws.Value(a)
		st.Percent[a.String()] = axis.Percent(raw, e.ranges.Range(a))
		st.RawPercent[a.String()] = axis.Percent(raw, axis.DefaultRange())
	}
	return st
}

func (e *Engine) resetLocked(op string) (OpResult, error) {
	e.ranges = axis.DefaultSnapshot()
	e.setCalibratedLocked(false)

	res := e.resultLocked(op, -1)
	err := e.persistLocked(res, axis.All[:]...)
	return res, err
}

// setCalibratedLocked switches display mode. The chart buffers change scale
// (raw vs percent) with the flag, so they are cleared on a transition.
func (e *Engine) setCalibratedLocked(v bool) {
	if e.calibrated == v {
		return
	}
	e.calibrated = v
	for _, b := range e.buffers {
		b.Clear()
	}
}

// resultLocked builds an OpResult for the named operation. a < 0 means the
// operation covers all axes.
func (e *Engine) resultLocked(op string, a axis.Axis) OpResult {
	res := OpResult{
		Op:         op,
		Ranges:     e.ranges,
		Calibrated: e.calibrated,
	}
	if a >= 0 {
		res.Axis = a.String()
	}
	return res
}

// persistLocked writes the given axes to the store and publishes the change
// event. Store failures are logged and returned so callers can surface them,
// but in-memory state is already updated and stays that way; persistence is
// fire-and-forget from the engine's perspective.
func (e *Engine) persistLocked(res OpResult, axes ...axis.Axis) error {
	var firstErr error
	for _, a := range axes {
		if err := e.store.WriteAxis(a, e.ranges.Range(a)); err != nil {
			logrus.WithError(err).WithField("axis", a.String()).Error("failed to persist calibration")
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	e.hub.Publish(events.CalibrationChanged, events.CalibrationChangedEvent{
		Op:   res.Op,
		Axis: res.Axis,
		Ranges: map[string]any{
			"X":  e.ranges.X,
			"Z":  e.ranges.Z,
			"RY": e.ranges.RY,
		},
		Warnings: res.Warnings,
		Ts:       time.Now().Unix(),
	})
	return firstErr
}

func unusualWarning(a axis.Axis, raw int) string {
	return fmt.Sprintf("%s: the value %d is very close to the extreme, verify your input", a, raw)
}
