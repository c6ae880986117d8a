package store

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/simcoaches/trackpro/pkg/axis"
)

func TestKeyLayout(t *testing.T) {
	tests := []struct {
		a    axis.Axis
		want string
	}{
		{a: axis.X, want: `System\CurrentControlSet\Control\MediaProperties\PrivateProperties\DirectInput\VID_1DD2&PID_2735\Calibration\0\Type\Axes\0`},
		{a: axis.Z, want: `System\CurrentControlSet\Control\MediaProperties\PrivateProperties\DirectInput\VID_1DD2&PID_2735\Calibration\0\Type\Axes\2`},
		{a: axis.RY, want: `System\CurrentControlSet\Control\MediaProperties\PrivateProperties\DirectInput\VID_1DD2&PID_2735\Calibration\0\Type\Axes\4`},
	}
	for _, tt := range tests {
		if got := Key(tt.a); got != tt.want {
			t.Errorf("Key(%s) = %q, want %q", tt.a, got, tt.want)
		}
	}
}

func TestFileStoreRoundTrip(t *testing.T) {
	s := NewFile(t.TempDir(), nil)

	in := axis.Range{Min: 440, Max: 3790}
	if err := s.WriteAxis(axis.X, in); err != nil {
		t.Fatalf("WriteAxis: %v", err)
	}

	rec, err := s.ReadAxis(axis.X)
	if err != nil {
		t.Fatalf("ReadAxis: %v", err)
	}
	want := axis.Record{Min: 440, Mid: 2115, Max: 3790}
	if rec != want {
		t.Errorf("ReadAxis = %+v, want %+v", rec, want)
	}
}

func TestFileStoreMidRecomputedOnRewrite(t *testing.T) {
	s := NewFile(t.TempDir(), nil)

	if err := s.WriteAxis(axis.Z, axis.Range{Min: 0, Max: 4095}); err != nil {
		t.Fatalf("first WriteAxis: %v", err)
	}
	if err := s.WriteAxis(axis.Z, axis.Range{Min: 1000, Max: 3000}); err != nil {
		t.Fatalf("second WriteAxis: %v", err)
	}
	rec, err := s.ReadAxis(axis.Z)
	if err != nil {
		t.Fatalf("ReadAxis: %v", err)
	}
	if rec.Mid != 2000 {
		t.Errorf("Mid = %d, want 2000 (recomputed, not stale)", rec.Mid)
	}
}

func TestFileStoreNotFound(t *testing.T) {
	s := NewFile(t.TempDir(), nil)
	if _, err := s.ReadAxis(axis.RY); !errors.Is(err, ErrNotFound) {
		t.Errorf("ReadAxis on empty store err = %v, want ErrNotFound", err)
	}
}

func TestFileStoreCorruptRecord(t *testing.T) {
	dir := t.TempDir()
	s := NewFile(dir, nil)
	if err := s.WriteAxis(axis.X, axis.DefaultRange()); err != nil {
		t.Fatalf("WriteAxis: %v", err)
	}

	// Truncate the stored blob below the fixed record size.
	p := s.recordPath(axis.X)
	if err := os.WriteFile(p, make([]byte, 7), 0644); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	if _, err := s.ReadAxis(axis.X); !errors.Is(err, axis.ErrCorrupt) {
		t.Errorf("ReadAxis on truncated blob err = %v, want axis.ErrCorrupt", err)
	}
}

func TestFileStoreAxesKeptSeparate(t *testing.T) {
	s := NewFile(t.TempDir(), nil)
	if err := s.WriteAxis(axis.X, axis.Range{Min: 1, Max: 1001}); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteAxis(axis.RY, axis.Range{Min: 2, Max: 2002}); err != nil {
		t.Fatal(err)
	}
	x, err := s.ReadAxis(axis.X)
	if err != nil || x.Min != 1 {
		t.Errorf("X record = %+v, %v", x, err)
	}
	ry, err := s.ReadAxis(axis.RY)
	if err != nil || ry.Max != 2002 {
		t.Errorf("RY record = %+v, %v", ry, err)
	}
	if _, err := s.ReadAxis(axis.Z); !errors.Is(err, ErrNotFound) {
		t.Errorf("Z should be absent, got err = %v", err)
	}
}

func TestMemoryStore(t *testing.T) {
	m := NewMemory(nil)
	if err := m.WriteAxis(axis.X, axis.Range{Min: 440, Max: 3790}); err != nil {
		t.Fatalf("WriteAxis: %v", err)
	}
	rec, err := m.ReadAxis(axis.X)
	if err != nil || rec.Mid != 2115 {
		t.Errorf("ReadAxis = %+v, %v", rec, err)
	}
	if m.Writes() != 1 {
		t.Errorf("Writes() = %d, want 1", m.Writes())
	}

	m.SetRaw(axis.X, []byte{1, 2, 3})
	if _, err := m.ReadAxis(axis.X); !errors.Is(err, axis.ErrCorrupt) {
		t.Errorf("corrupt read err = %v, want axis.ErrCorrupt", err)
	}
}

func TestNamesDefaultsAndPersistence(t *testing.T) {
	path := filepath.Join(t.TempDir(), "axis-names.json")

	n, err := NewNames(path)
	if err != nil {
		t.Fatalf("NewNames: %v", err)
	}
	if got := n.Get(axis.X); got != "X-Axis" {
		t.Errorf("default name = %q, want X-Axis", got)
	}

	if err := n.Set(axis.X, "Throttle"); err != nil {
		t.Fatalf("Set: %v", err)
	}

	// A fresh instance sees the persisted rename; the others stay default.
	n2, err := NewNames(path)
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	if got := n2.Get(axis.X); got != "Throttle" {
		t.Errorf("reloaded name = %q, want Throttle", got)
	}
	if got := n2.Get(axis.Z); got != "Z-Axis" {
		t.Errorf("Z name = %q, want Z-Axis", got)
	}

	if err := n2.Set(axis.X, ""); err != nil {
		t.Fatalf("clear: %v", err)
	}
	if got := n2.Get(axis.X); got != "X-Axis" {
		t.Errorf("cleared name = %q, want factory default", got)
	}
}
