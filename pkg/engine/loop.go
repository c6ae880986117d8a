package engine

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/axis"
	"github.com/simcoaches/trackpro/pkg/device"
	"github.com/simcoaches/trackpro/pkg/events"
)

// DefaultTickInterval matches the reference front-ends' 10 ms update timer.
const DefaultTickInterval = 10 * time.Millisecond

// Tick polls the source once (retrying once on a transient failure), updates
// the live raw samples and chart buffers, and publishes the per-tick sample
// event. On a failed tick the previous values are retained and
// device.ErrUnavailable is returned; the caller skips that tick.
func (e *Engine) Tick() error {
	if e.source == nil {
		return device.ErrUnavailable
	}

	s, err := e.source.Poll()
	if err != nil {
		// One re-acquisition attempt per tick.
		s, err = e.source.Poll()
	}
	if err != nil {
		e.mu.Lock()
		wasOK := e.lastTickOK
		e.lastTickOK = false
		e.mu.Unlock()
		if wasOK {
			logrus.WithError(err).Warn("device poll failed, keeping last known values")
			e.hub.Publish(events.DeviceLost, struct {
				Ts int64 `json:"ts"`
			}{Ts: time.Now().Unix()})
		}
		return device.ErrUnavailable
	}

	e.mu.Lock()
	e.raws = s
	e.haveSample = true
	e.lastTickOK = true

	ev := events.AxesSampleEvent{
		Raw:        make(map[string]int, len(axis.All)),
		Percent:    make(map[string]int, len(axis.All)),
		RawPercent: make(map[string]int, len(axis.All)),
		Chart:      make(map[string]float64, len(axis.All)),
		Calibrated: e.calibrated,
		Ts:         time.Now().UnixMilli(),
	}
	for _, a := range axis.All {
		raw := s.Value(a)
		r := e.ranges.Range(a)

		// The chart plots raw values until the first max-set completes,
		// then switches to the calibrated percentage.
		chart := float64(raw)
		if e.calibrated {
			chart = axis.PercentFloat(raw, r)
		}
		e.buffers[a].Push(chart)

		key := a.String()
		ev.Raw[key] = raw
		ev.Percent[key] = axis.Percent(raw, r)
		ev.RawPercent[key] = axis.Percent(raw, axis.DefaultRange())
		ev.Chart[key] = chart
	}
	e.mu.Unlock()

	e.hub.Publish(events.AxesSample, ev)
	return nil
}

// Run drives the tick loop until the context is canceled. Failed ticks are
// skipped; the loop never stops on its own.
func (e *Engine) Run(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = DefaultTickInterval
	}
	t := time.NewTicker(interval)
	defer t.Stop()

	logrus.WithField("interval", interval).Debug("tick loop starting")
	for {
		select {
		case <-ctx.Done():
			logrus.Debug("tick loop stopped")
			return
		case <-t.C:
			_ = e.Tick()
		}
	}
}
