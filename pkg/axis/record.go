package axis

import (
	"encoding/binary"
	"errors"
	"fmt"
)

// RecordSize is the exact length of a persisted calibration record: five
// 4-byte unsigned little-endian fields, no padding.
const RecordSize = 20

// ErrCorrupt means a stored calibration blob is not a well-formed record.
var ErrCorrupt = errors.New("calibration record is corrupt")

// Record is the fixed-layout binary calibration record persisted per axis.
// Mid is always recomputed from Min and Max at write time. The deadzone
// fields exist in the external layout but are never set by this system;
// they round-trip unchanged when read from elsewhere.
type Record struct {
	Min         uint32 `json:"min"`
	Mid         uint32 `json:"mid"`
	Max         uint32 `json:"max"`
	MinDeadzone uint32 `json:"minDeadzone"`
	MaxDeadzone uint32 `json:"maxDeadzone"`
}

// NewRecord builds the record persisted for a range: Mid derived, both
// deadzones zero.
func NewRecord(r Range) Record {
	return Record{
		Min: uint32(r.Min),
		Mid: uint32(r.Mid()),
		Max: uint32(r.Max),
	}
}

// Range returns the [Min,Max] bounds carried by the record.
func (rec Record) Range() Range {
	return Range{Min: int(rec.Min), Max: int(rec.Max)}
}

// MarshalBinary encodes the record into its 20-byte little-endian layout.
func (rec Record) MarshalBinary() ([]byte, error) {
	b := make([]byte, RecordSize)
	binary.LittleEndian.PutUint32(b[0:4], rec.Min)
	binary.LittleEndian.PutUint32(b[4:8], rec.Mid)
	binary.LittleEndian.PutUint32(b[8:12], rec.Max)
	binary.LittleEndian.PutUint32(b[12:16], rec.MinDeadzone)
	binary.LittleEndian.PutUint32(b[16:20], rec.MaxDeadzone)
	return b, nil
}

// UnmarshalBinary decodes a 20-byte little-endian record. Any other length
// is reported as ErrCorrupt.
func (rec *Record) UnmarshalBinary(b []byte) error {
	if len(b) != RecordSize {
		return fmt.Errorf("%w: got %d bytes, want %d", ErrCorrupt, len(b), RecordSize)
	}
	rec.Min = binary.LittleEndian.Uint32(b[0:4])
	rec.Mid = binary.LittleEndian.Uint32(b[4:8])
	rec.Max = binary.LittleEndian.Uint32(b[8:12])
	rec.MinDeadzone = binary.LittleEndian.Uint32(b[12:16])
	rec.MaxDeadzone = binary.LittleEndian.Uint32(b[16:20])
	return nil
}
