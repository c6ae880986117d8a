package store

import (
	"os"
	"path/filepath"

	pkgerrors "github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/simcoaches/trackpro/pkg/axis"
)

var _ Store = (*File)(nil)

// File persists calibration records as one binary file per axis key under a
// root directory, mirroring the registry layout: the key path becomes the
// directory, ValueName the file name.
type File struct {
	root     string
	notifier Notifier
}

// NewFile returns a file-backed store rooted at dir. notifier may be nil.
func NewFile(dir string, notifier Notifier) *File {
	return &File{root: dir, notifier: notifier}
}

func (f *File) recordPath(a axis.Axis) string {
	elems := append([]string{f.root}, keyPathElems(a)...)
	elems = append(elems, ValueName)
	return filepath.Join(elems...)
}

// WriteAxis implements Store.
func (f *File) WriteAxis(a axis.Axis, r axis.Range) error {
	rec := axis.NewRecord(r)
	b, err := rec.MarshalBinary()
	if err != nil {
		return pkgerrors.Wrap(err, "failed to encode calibration record")
	}

	p := f.recordPath(a)
	if err := os.MkdirAll(filepath.Dir(p), 0755); err != nil {
		return pkgerrors.Wrapf(err, "failed to create calibration key %s", Key(a))
	}
	if err := os.WriteFile(p, b, 0644); err != nil {
		return pkgerrors.Wrapf(err, "failed to write calibration for axis %s", a)
	}

	logrus.WithFields(logrus.Fields{
		"axis": a.String(),
		"min":  rec.Min,
		"mid":  rec.Mid,
		"max":  rec.Max,
	}).Debug("calibration record written")

	notifyRefresh(f.notifier, Key(a))
	return nil
}

// ReadAxis implements Store.
func (f *File) ReadAxis(a axis.Axis) (axis.Record, error) {
	var rec axis.Record
	b, err := os.ReadFile(f.recordPath(a))
	if err != nil {
		if os.IsNotExist(err) {
			return rec, ErrNotFound
		}
		return rec, pkgerrors.Wrapf(err, "failed to read calibration for axis %s", a)
	}
	if err := rec.UnmarshalBinary(b); err != nil {
		return rec, err
	}
	return rec, nil
}

func notifyRefresh(n Notifier, key string) {
	if n == nil {
		return
	}
	if err := n.NotifyDeviceRefresh(key); err != nil {
		logrus.WithError(err).Warn("device refresh broadcast failed")
	}
}
