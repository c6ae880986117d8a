package axis

import (
	"errors"
	"testing"
)

func TestRecordRoundTrip(t *testing.T) {
	rec := Record{Min: 440, Mid: 2115, Max: 3790, MinDeadzone: 12, MaxDeadzone: 34}

	b, err := rec.MarshalBinary()
	if err != nil {
		t.Fatalf("MarshalBinary: %v", err)
	}
	if len(b) != RecordSize {
		t.Fatalf("encoded length = %d, want %d", len(b), RecordSize)
	}

	var got Record
	if err := got.UnmarshalBinary(b); err != nil {
		t.Fatalf("UnmarshalBinary: %v", err)
	}
	if got != rec {
		t.Errorf("round-trip mismatch: got %+v, want %+v", got, rec)
	}
}

func TestRecordLayoutLittleEndian(t *testing.T) {
	rec := Record{Min: 0x01020304, Mid: 0, Max: 0xA0B0C0D0}
	b, _ := rec.MarshalBinary()

	// Min occupies the first field, least significant byte first.
	if b[0] != 0x04 || b[1] != 0x03 || b[2] != 0x02 || b[3] != 0x01 {
		t.Errorf("Min field bytes = % x, want 04 03 02 01", b[0:4])
	}
	if b[8] != 0xD0 || b[11] != 0xA0 {
		t.Errorf("Max field bytes = % x, want D0 C0 B0 A0", b[8:12])
	}
}

func TestNewRecordDerivesMidAndZeroDeadzones(t *testing.T) {
	tests := []struct {
		name    string
		r       Range
		wantMid uint32
	}{
		{name: "calibrated pedal", r: Range{Min: 440, Max: 3790}, wantMid: 2115},
		{name: "full scale", r: DefaultRange(), wantMid: 2047},
		{name: "odd midpoint truncates", r: Range{Min: 0, Max: 3}, wantMid: 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := NewRecord(tt.r)
			if rec.Mid != tt.wantMid {
				t.Errorf("Mid = %d, want %d", rec.Mid, tt.wantMid)
			}
			if rec.MinDeadzone != 0 || rec.MaxDeadzone != 0 {
				t.Errorf("deadzones = %d/%d, want 0/0", rec.MinDeadzone, rec.MaxDeadzone)
			}
			if got := rec.Range(); got != tt.r {
				t.Errorf("Range() = %+v, want %+v", got, tt.r)
			}
		})
	}
}

func TestUnmarshalBinaryRejectsBadLength(t *testing.T) {
	for _, n := range []int{0, 19, 21, 40} {
		var rec Record
		err := rec.UnmarshalBinary(make([]byte, n))
		if !errors.Is(err, ErrCorrupt) {
			t.Errorf("UnmarshalBinary(%d bytes) err = %v, want ErrCorrupt", n, err)
		}
	}
}
