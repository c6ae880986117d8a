//go:build !windows

package daemon

import (
	"github.com/simcoaches/trackpro/pkg/config"
	"github.com/simcoaches/trackpro/pkg/store"
)

// newPlatformStore keeps calibration records in files laid out like the
// registry key path, so records move between platforms unchanged.
func newPlatformStore(conf config.Config, notifier store.Notifier) store.Store {
	return store.NewFile(conf.StoreDir(), notifier)
}
