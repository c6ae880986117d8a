package engine

import (
	"errors"

	"github.com/simcoaches/trackpro/pkg/axis"
)

// HistoryCap bounds the undo history. It is a pure undo stack with FIFO
// eviction, not a cache: when full, the oldest snapshot is dropped.
const HistoryCap = 10

// ErrEmptyHistory means restore was requested with no backups available.
// It is informational: the caller surfaces it as a no-op notification.
var ErrEmptyHistory = errors.New("no previous calibration available")

// History is the bounded stack of full three-axis calibration snapshots.
// It is process-local and never persisted. Not safe for concurrent use; the
// engine serializes access behind its mutex.
type History struct {
	snaps []axis.Snapshot
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{}
}

// Backup appends a snapshot, evicting the oldest entry when the stack
// exceeds HistoryCap.
func (h *History) Backup(s axis.Snapshot) {
	h.snaps = append(h.snaps, s)
	if len(h.snaps) > HistoryCap {
		h.snaps = h.snaps[1:]
	}
}

// RestoreLast removes and returns the most recent snapshot, or
// ErrEmptyHistory when none exist.
func (h *History) RestoreLast() (axis.Snapshot, error) {
	if len(h.snaps) == 0 {
		return axis.Snapshot{}, ErrEmptyHistory
	}
	s := h.snaps[len(h.snaps)-1]
	h.snaps = h.snaps[:len(h.snaps)-1]
	return s, nil
}

// Len returns the number of stored snapshots.
func (h *History) Len() int {
	return len(h.snaps)
}
