package device

import "sync"

// Mock is a scripted source for tests. Each queued entry is returned by one
// Poll call; an entry with Fail set reports ErrUnavailable instead. When the
// script is exhausted, Poll keeps returning the last scripted sample.
type Mock struct {
	mu     sync.Mutex
	script []MockStep
	pos    int
	last   Sample
	polls  int
	closed bool
}

// MockStep is one scripted Poll outcome.
type MockStep struct {
	Sample Sample
	Fail   bool
}

// NewMock returns a mock source that replays the given script.
func NewMock(script ...MockStep) *Mock {
	return &Mock{script: script}
}

// Enqueue appends further steps to the script.
func (m *Mock) Enqueue(steps ...MockStep) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, steps...)
}

// Poll implements Source.
func (m *Mock) Poll() (Sample, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.polls++
	if m.pos >= len(m.script) {
		return m.last, nil
	}
	step := m.script[m.pos]
	m.pos++
	if step.Fail {
		return Sample{}, ErrUnavailable
	}
	m.last = step.Sample
	return step.Sample, nil
}

// Polls returns how many times Poll has been called.
func (m *Mock) Polls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.polls
}

// Close implements Source.
func (m *Mock) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closed = true
	return nil
}
