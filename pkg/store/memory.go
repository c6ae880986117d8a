package store

import (
	"sync"

	"github.com/simcoaches/trackpro/pkg/axis"
)

var _ Store = (*Memory)(nil)

// Memory is an in-memory store used by tests and by the daemon when it runs
// without any persistence backend.
type Memory struct {
	mu       sync.RWMutex
	records  map[string][]byte
	writes   int
	notifier Notifier
}

// NewMemory returns an empty in-memory store. notifier may be nil.
func NewMemory(notifier Notifier) *Memory {
	return &Memory{records: make(map[string][]byte), notifier: notifier}
}

// WriteAxis implements Store.
func (m *Memory) WriteAxis(a axis.Axis, r axis.Range) error {
	b, err := axis.NewRecord(r).MarshalBinary()
	if err != nil {
		return err
	}
	m.mu.Lock()
	m.records[Key(a)] = b
	m.writes++
	m.mu.Unlock()

	notifyRefresh(m.notifier, Key(a))
	return nil
}

// ReadAxis implements Store.
func (m *Memory) ReadAxis(a axis.Axis) (axis.Record, error) {
	m.mu.RLock()
	b, ok := m.records[Key(a)]
	m.mu.RUnlock()

	var rec axis.Record
	if !ok {
		return rec, ErrNotFound
	}
	if err := rec.UnmarshalBinary(b); err != nil {
		return rec, err
	}
	return rec, nil
}

// SetRaw stores an arbitrary blob under the axis key, for corrupt-record
// tests.
func (m *Memory) SetRaw(a axis.Axis, b []byte) {
	m.mu.Lock()
	m.records[Key(a)] = b
	m.mu.Unlock()
}

// Writes returns the number of WriteAxis calls.
func (m *Memory) Writes() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.writes
}
