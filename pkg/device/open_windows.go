//go:build windows

package device

import (
	"unsafe"

	pkgerrors "github.com/pkg/errors"
	"golang.org/x/sys/windows"
)

var (
	winmm             = windows.NewLazySystemDLL("winmm.dll")
	procJoyGetNumDevs = winmm.NewProc("joyGetNumDevs")
	procJoyGetPosEx   = winmm.NewProc("joyGetPosEx")
)

const (
	joyErrNoError uintptr = 0

	// joyReturnX | joyReturnZ | joyReturnR
	joyReturnAxes uint32 = 0x1 | 0x4 | 0x8
)

// joyInfoEx mirrors winmm's JOYINFOEX.
type joyInfoEx struct {
	Size         uint32
	Flags        uint32
	Xpos         uint32
	Ypos         uint32
	Zpos         uint32
	Rpos         uint32
	Upos         uint32
	Vpos         uint32
	Buttons      uint32
	ButtonNumber uint32
	POV          uint32
	Reserved1    uint32
	Reserved2    uint32
}

// Joystick reads wheel axes through the winmm joystick API.
type Joystick struct {
	id uintptr
}

var _ Source = (*Joystick)(nil)

// Open finds the first joystick that answers a position query.
func Open() (Source, error) {
	n, _, _ := procJoyGetNumDevs.Call()
	for id := uintptr(0); id < n; id++ {
		j := &Joystick{id: id}
		if _, err := j.Poll(); err == nil {
			return j, nil
		}
	}
	return nil, pkgerrors.Wrap(ErrUnavailable, "no joystick answered")
}

func (j *Joystick) Poll() (Sample, error) {
	info := joyInfoEx{
		Size:  uint32(unsafe.Sizeof(joyInfoEx{})),
		Flags: joyReturnAxes,
	}
	ret, _, _ := procJoyGetPosEx.Call(j.id, uintptr(unsafe.Pointer(&info)))
	if ret != joyErrNoError {
		return Sample{}, pkgerrors.Wrapf(ErrUnavailable, "joyGetPosEx returned %d", ret)
	}
	return Sample{
		X:  Scale(int(info.Xpos)),
		Z:  Scale(int(info.Zpos)),
		RY: Scale(int(info.Rpos)),
	}, nil
}

func (j *Joystick) Close() error { return nil }
