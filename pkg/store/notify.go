package store

import (
	"time"

	"github.com/simcoaches/trackpro/pkg/events"
)

// Notifier broadcasts a device-refresh after a calibration write so other
// consumers reload. The broadcast is fire-and-forget: stores log a failed
// notification and carry on.
type Notifier interface {
	NotifyDeviceRefresh(key string) error
}

// HubNotifier publishes the refresh on the daemon's event hub. It is the
// portable notifier; on Windows the registry store pairs it with the
// system-wide WM_DEVICECHANGE broadcast.
type HubNotifier struct {
	Hub *events.Hub
}

// NotifyDeviceRefresh implements Notifier.
func (n HubNotifier) NotifyDeviceRefresh(key string) error {
	n.Hub.Publish(events.DeviceRefresh, events.DeviceRefreshEvent{
		Key: key,
		Ts:  time.Now().Unix(),
	})
	return nil
}
