package axis

import (
	"errors"
	"testing"
)

func TestRangeValidate(t *testing.T) {
	tests := []struct {
		name string
		r    Range
		want error
	}{
		{name: "full scale ok", r: DefaultRange(), want: nil},
		{name: "typical calibration ok", r: Range{Min: 440, Max: 3790}, want: nil},
		{name: "exactly narrow threshold ok", r: Range{Min: 0, Max: NarrowSpan}, want: nil},
		{name: "narrow range warns", r: Range{Min: 100, Max: 200}, want: ErrNarrowRange},
		{name: "one below threshold warns", r: Range{Min: 0, Max: NarrowSpan - 1}, want: ErrNarrowRange},
		{name: "equal bounds invalid", r: Range{Min: 2000, Max: 2000}, want: ErrInvalidRange},
		{name: "inverted bounds invalid", r: Range{Min: 3000, Max: 1000}, want: ErrInvalidRange},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.r.Validate()
			if tt.want == nil {
				if err != nil {
					t.Errorf("Validate(%+v) = %v, want nil", tt.r, err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Errorf("Validate(%+v) = %v, want %v", tt.r, err, tt.want)
			}
		})
	}
}

func TestUnusual(t *testing.T) {
	tests := []struct {
		value int
		want  bool
	}{
		{value: 0, want: true},
		{value: 99, want: true},
		{value: 100, want: false},
		{value: 2048, want: false},
		{value: 3995, want: false},
		{value: 3996, want: true},
		{value: 4095, want: true},
	}
	for _, tt := range tests {
		if got := Unusual(tt.value); got != tt.want {
			t.Errorf("Unusual(%d) = %t, want %t", tt.value, got, tt.want)
		}
	}
}

func TestSnapshotRangeAccess(t *testing.T) {
	s := DefaultSnapshot()
	s.SetRange(Z, Range{Min: 10, Max: 500})
	if got := s.Range(Z); got != (Range{Min: 10, Max: 500}) {
		t.Errorf("Range(Z) = %+v after SetRange", got)
	}
	if got := s.Range(X); got != DefaultRange() {
		t.Errorf("Range(X) = %+v, want default", got)
	}
	if got := s.Range(RY); got != DefaultRange() {
		t.Errorf("Range(RY) = %+v, want default", got)
	}
}

func TestAxisParseAndSlots(t *testing.T) {
	for _, a := range All {
		got, err := Parse(a.String())
		if err != nil || got != a {
			t.Errorf("Parse(%q) = %v, %v", a.String(), got, err)
		}
	}
	if _, err := Parse("y"); err == nil {
		t.Error("Parse(\"y\") should fail")
	}
	slots := map[Axis]int{X: 0, Z: 2, RY: 4}
	for a, want := range slots {
		if a.Slot() != want {
			t.Errorf("%s.Slot() = %d, want %d", a, a.Slot(), want)
		}
	}
}
