package axis

// Percent maps a raw sample onto the calibrated 0-100 output using integer
// truncation, saturating at the range bounds. The saturation checks run
// first, so a degenerate range (Min == Max) can never divide by zero; the
// controller's validation step is still the only place such ranges are
// rejected.
func Percent(raw int, r Range) int {
	if raw <= r.Min {
		return 0
	}
	if raw >= r.Max {
		return 100
	}
	return (raw - r.Min) * 100 / (r.Max - r.Min)
}

// PercentFloat is the continuous variant used for chart display, clamped to
// [0,100]. It agrees with Percent at the range bounds.
func PercentFloat(raw int, r Range) float64 {
	if raw <= r.Min {
		return 0
	}
	if raw >= r.Max {
		return 100
	}
	return float64(raw-r.Min) / float64(r.Max-r.Min) * 100
}
