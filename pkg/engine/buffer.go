package engine

// BufferCap is the number of recent values each axis keeps for chart
// display.
const BufferCap = 100

// SampleBuffer is a fixed-capacity queue of recently observed values feeding
// one axis chart. Values are raw (0..4095) until calibration completes, then
// percentages (0..100). Not safe for concurrent use; the engine serializes
// access behind its mutex.
type SampleBuffer struct {
	vals []float64
	cap  int
}

// NewSampleBuffer returns an empty buffer with capacity BufferCap.
func NewSampleBuffer() *SampleBuffer {
	return &SampleBuffer{cap: BufferCap}
}

// Push appends a value, evicting the oldest when full.
func (b *SampleBuffer) Push(v float64) {
	b.vals = append(b.vals, v)
	if len(b.vals) > b.cap {
		b.vals = b.vals[1:]
	}
}

// Values returns the buffered values oldest-first. The returned slice is a
// copy.
func (b *SampleBuffer) Values() []float64 {
	out := make([]float64, len(b.vals))
	copy(out, b.vals)
	return out
}

// Len returns the number of buffered values.
func (b *SampleBuffer) Len() int {
	return len(b.vals)
}

// Clear drops all buffered values. Used when the chart scale switches
// between raw and percent.
func (b *SampleBuffer) Clear() {
	b.vals = b.vals[:0]
}
