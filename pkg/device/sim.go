package device

import (
	"math"
	"sync"

	"github.com/simcoaches/trackpro/pkg/axis"
)

// Sim is a deterministic simulated pedal set for development without
// hardware. Each axis sweeps the raw domain as a phase-shifted sine so the
// three outputs are visibly distinct.
type Sim struct {
	mu   sync.Mutex
	step int
}

// NewSim returns a simulated source starting at phase zero.
func NewSim() *Sim {
	return &Sim{}
}

// Poll advances the simulation by one step and never fails.
func (s *Sim) Poll() (Sample, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.step++
	t := float64(s.step) / 100
	return Sample{
		X:  sineRaw(t, 0),
		Z:  sineRaw(t, 2*math.Pi/3),
		RY: sineRaw(t, 4*math.Pi/3),
	}, nil
}

// Close implements Source.
func (s *Sim) Close() error { return nil }

func sineRaw(t, phase float64) int {
	v := (math.Sin(t+phase) + 1) / 2 * axis.RawMax
	return int(v)
}
