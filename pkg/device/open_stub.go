//go:build !windows

package device

// Open reports no hardware on platforms without a joystick API. The daemon
// falls back to no-device mode or the simulator.
func Open() (Source, error) {
	return nil, ErrUnavailable
}
