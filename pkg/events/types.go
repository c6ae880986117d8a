package events

import "encoding/json"

// Event name constants.
const (
	// AxesSample is published once per successful tick.
	AxesSample = "axes.sample"
	// CalibrationChanged is published after any mutating calibration
	// operation (set-min, set-max, reset, restore).
	CalibrationChanged = "calibration.changed"
	// DeviceRefresh is the best-effort broadcast issued after every
	// persistence write so other consumers reload calibration.
	DeviceRefresh = "device.refresh"
	// DeviceLost is published when the source stays unavailable past the
	// in-tick retry.
	DeviceLost = "device.lost"
)

// Event is a generic daemon event.
type Event struct {
	Name string          // event name, see constants above
	Data json.RawMessage // raw JSON payload
}

// AxesSampleEvent is the typed payload for axes.sample.
type AxesSampleEvent struct {
	Raw        map[string]int     `json:"raw"`
	Percent    map[string]int     `json:"percent"`
	RawPercent map[string]int     `json:"rawPercent"`
	Chart      map[string]float64 `json:"chart"`
	Calibrated bool               `json:"calibrated"`
	Ts         int64              `json:"ts"`
}

// CalibrationChangedEvent is the typed payload for calibration.changed.
type CalibrationChangedEvent struct {
	Op       string         `json:"op"`
	Axis     string         `json:"axis,omitempty"`
	Ranges   map[string]any `json:"ranges"`
	Warnings []string       `json:"warnings,omitempty"`
	Ts       int64          `json:"ts"`
}

// DeviceRefreshEvent is the typed payload for device.refresh.
type DeviceRefreshEvent struct {
	Key string `json:"key"`
	Ts  int64  `json:"ts"`
}

// DecodeAs unmarshals an event payload into the caller-specified type. Empty
// payloads decode to the zero value with a nil error.
func DecodeAs[T any](e Event) (T, error) {
	var v T
	if len(e.Data) == 0 {
		return v, nil
	}
	if err := json.Unmarshal(e.Data, &v); err != nil {
		var zero T
		return zero, err
	}
	return v, nil
}
