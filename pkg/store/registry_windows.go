//go:build windows

package store

import (
	"errors"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sys/windows/registry"

	"github.com/simcoaches/trackpro/pkg/axis"
)

var _ Store = (*Registry)(nil)

// Registry persists calibration records in the DirectInput calibration area
// under HKEY_CURRENT_USER, which is where the OS driver stack reads them.
type Registry struct {
	notifier Notifier
}

// NewRegistry returns the registry-backed store. notifier may be nil; the
// system-wide WM_DEVICECHANGE broadcast is issued regardless.
func NewRegistry(notifier Notifier) *Registry {
	return &Registry{notifier: notifier}
}

// WriteAxis implements Store.
func (s *Registry) WriteAxis(a axis.Axis, r axis.Range) error {
	rec := axis.NewRecord(r)
	b, err := rec.MarshalBinary()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to encode calibration record")
	}

	k, _, err := registry.CreateKey(registry.CURRENT_USER, Key(a), registry.SET_VALUE)
	if err != nil {
		return pkgerrors.Wrapf(err, "failed to create calibration key %s", Key(a))
	}
	defer k.Close()

	if err := k.SetBinaryValue(ValueName, b); err != nil {
		return pkgerrors.Wrapf(err, "failed to write calibration for axis %s", a)
	}

	logrus.WithFields(logrus.Fields{
		"axis": a.String(),
		"min":  rec.Min,
		"mid":  rec.Mid,
		"max":  rec.Max,
	}).Debug("calibration record written")

	if err := broadcastDeviceChange(); err != nil {
		logrus.WithError(err).Warn("device refresh broadcast failed")
	}
	notifyRefresh(s.notifier, Key(a))
	return nil
}

// ReadAxis implements Store.
func (s *Registry) ReadAxis(a axis.Axis) (axis.Record, error) {
	var rec axis.Record

	k, err := registry.OpenKey(registry.CURRENT_USER, Key(a), registry.QUERY_VALUE)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return rec, ErrNotFound
		}
		return rec, pkgerrors.Wrapf(err, "failed to open calibration key %s", Key(a))
	}
	defer k.Close()

	b, _, err := k.GetBinaryValue(ValueName)
	if err != nil {
		if errors.Is(err, registry.ErrNotExist) {
			return rec, ErrNotFound
		}
		if errors.Is(err, registry.ErrUnexpectedType) {
			return rec, pkgerrors.Wrapf(axis.ErrCorrupt, "value %s is not REG_BINARY", ValueName)
		}
		return rec, pkgerrors.Wrapf(err, "failed to read calibration for axis %s", a)
	}
	if err := rec.UnmarshalBinary(b); err != nil {
		return rec, err
	}
	return rec, nil
}
