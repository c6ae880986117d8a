package axis

import "testing"

func TestPercent(t *testing.T) {
	tests := []struct {
		name string
		raw  int
		r    Range
		want int
	}{
		{name: "default range min", raw: 0, r: DefaultRange(), want: 0},
		{name: "default range max", raw: 4095, r: DefaultRange(), want: 100},
		{name: "default range midpoint truncates", raw: 2048, r: DefaultRange(), want: 50},
		{name: "below min saturates", raw: 100, r: Range{Min: 440, Max: 3790}, want: 0},
		{name: "above max saturates", raw: 4000, r: Range{Min: 440, Max: 3790}, want: 100},
		{name: "at min", raw: 440, r: Range{Min: 440, Max: 3790}, want: 0},
		{name: "at max", raw: 3790, r: Range{Min: 440, Max: 3790}, want: 100},
		{name: "interior truncates", raw: 441, r: Range{Min: 440, Max: 3790}, want: 0},
		{name: "negative-distance from degenerate range", raw: 2000, r: Range{Min: 2000, Max: 2000}, want: 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Percent(tt.raw, tt.r); got != tt.want {
				t.Errorf("Percent(%d, %+v) = %d, want %d", tt.raw, tt.r, got, tt.want)
			}
		})
	}
}

func TestPercentMonotonic(t *testing.T) {
	r := Range{Min: 440, Max: 3790}
	prev := 0
	for raw := r.Min; raw <= r.Max; raw++ {
		got := Percent(raw, r)
		if got < prev {
			t.Fatalf("Percent not monotonic: Percent(%d)=%d < Percent(%d)=%d", raw, got, raw-1, prev)
		}
		prev = got
	}
	if Percent(r.Min, r) != 0 {
		t.Errorf("Percent(min) = %d, want 0", Percent(r.Min, r))
	}
	if Percent(r.Max, r) != 100 {
		t.Errorf("Percent(max) = %d, want 100", Percent(r.Max, r))
	}
}

func TestPercentFloatAgreesAtBounds(t *testing.T) {
	ranges := []Range{
		DefaultRange(),
		{Min: 440, Max: 3790},
		{Min: 100, Max: 200},
	}
	for _, r := range ranges {
		if got := PercentFloat(r.Min, r); got != 0 {
			t.Errorf("PercentFloat(min, %+v) = %v, want 0", r, got)
		}
		if got := PercentFloat(r.Max, r); got != 100 {
			t.Errorf("PercentFloat(max, %+v) = %v, want 100", r, got)
		}
		if got := PercentFloat(r.Min-50, r); got != 0 {
			t.Errorf("PercentFloat(below min, %+v) = %v, want 0", r, got)
		}
		if got := PercentFloat(r.Max+50, r); got != 100 {
			t.Errorf("PercentFloat(above max, %+v) = %v, want 100", r, got)
		}
	}
}
