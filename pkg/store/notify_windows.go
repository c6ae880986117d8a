//go:build windows

package store

import (
	"unsafe"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

const (
	wmDeviceChange   = 0x0219
	dbtDeviceArrival = 0x8000
	hwndBroadcast    = 0xFFFF
	smtoAbortIfHung  = 0x0002
	broadcastWaitMS  = 1000
)

var (
	user32                 = windows.NewLazySystemDLL("user32.dll")
	procSendMessageTimeout = user32.NewProc("SendMessageTimeoutW")
)

// broadcastDeviceChange sends WM_DEVICECHANGE/DBT_DEVICEARRIVAL to every
// top-level window so DirectInput consumers re-read calibration.
func broadcastDeviceChange() error {
	var result uintptr
	ret, _, err := procSendMessageTimeout.Call(
		hwndBroadcast,
		wmDeviceChange,
		dbtDeviceArrival,
		0,
		smtoAbortIfHung,
		broadcastWaitMS,
		uintptr(unsafe.Pointer(&result)),
	)
	if ret == 0 {
		return pkgerrors.Wrap(err, "SendMessageTimeoutW failed")
	}
	return nil
}
