package booking

import "time"

// Overlaps reports whether the half-open ranges [aStart, aEnd) and
// [bStart, bEnd) share at least one night. Ranges that merely touch,
// where one checks out the day the other checks in, do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd time.Time) bool {
	return aStart.Before(bEnd) && aEnd.After(bStart)
}

// Available reports whether [checkIn, checkOut) is free of conflicts with
// every booking in existing.
func Available(existing []*Booking, checkIn, checkOut time.Time) bool {
	for _, b := range existing {
		if Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			return false
		}
	}
	return true
}
