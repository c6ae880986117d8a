//go:build windows

package daemon

import (
	"github.com/simcoaches/trackpro/pkg/config"
	"github.com/simcoaches/trackpro/pkg/store"
)

// newPlatformStore uses the DirectInput calibration registry keys, the same
// place the driver reads from.
func newPlatformStore(_ config.Config, notifier store.Notifier) store.Store {
	return store.NewRegistry(notifier)
}
