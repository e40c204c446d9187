package booking

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                           string
		aStart, aEnd, bStart, bEnd     time.Time
		want                           bool
	}{
		{
			name:   "identical ranges overlap",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 15),
			bStart: date(2026, 9, 10), bEnd: date(2026, 9, 15),
			want: true,
		},
		{
			name:   "partial overlap at the end",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 15),
			bStart: date(2026, 9, 14), bEnd: date(2026, 9, 20),
			want: true,
		},
		{
			name:   "one range inside the other",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 20),
			bStart: date(2026, 9, 12), bEnd: date(2026, 9, 14),
			want: true,
		},
		{
			name:   "touching ranges do not overlap (checkout day reusable)",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 15),
			bStart: date(2026, 9, 15), bEnd: date(2026, 9, 20),
			want: false,
		},
		{
			name:   "touching ranges the other way around",
			aStart: date(2026, 9, 15), aEnd: date(2026, 9, 20),
			bStart: date(2026, 9, 10), bEnd: date(2026, 9, 15),
			want: false,
		},
		{
			name:   "disjoint ranges",
			aStart: date(2026, 9, 10), aEnd: date(2026, 9, 12),
			bStart: date(2026, 9, 20), bEnd: date(2026, 9, 25),
			want: false,
		},
		{
			name:   "single-night stay inside range",
			aStart: date(2026, 9, 12), aEnd: date(2026, 9, 13),
			bStart: date(2026, 9, 10), bEnd: date(2026, 9, 15),
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(tt.aStart, tt.aEnd, tt.bStart, tt.bEnd)
			if got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}

			// Overlap is symmetric.
			if sym := Overlaps(tt.bStart, tt.bEnd, tt.aStart, tt.aEnd); sym != got {
				t.Errorf("Overlaps() not symmetric: %v vs %v", got, sym)
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	existing := []*Booking{
		{CheckIn: date(2026, 9, 10), CheckOut: date(2026, 9, 15)},
		{CheckIn: date(2026, 9, 20), CheckOut: date(2026, 9, 25)},
	}

	if !Available(existing, date(2026, 9, 15), date(2026, 9, 20)) {
		t.Error("the gap between two bookings should be available")
	}
	if Available(existing, date(2026, 9, 14), date(2026, 9, 16)) {
		t.Error("a range overlapping an existing booking should not be available")
	}
	if !Available(nil, date(2026, 9, 1), date(2026, 9, 30)) {
		t.Error("a room with no bookings should always be available")
	}
}
