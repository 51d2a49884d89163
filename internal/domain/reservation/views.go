package reservation

import "time"

// LateWindow is the grace period after the booked time before a guest who
// has not arrived counts as late.
const LateWindow = 30 * time.Minute

func (r *Reservation) IsToday(now time.Time) bool {
	return r.details.Date.Equal(DateOf(now))
}

// IsPast reports whether r belongs in history: dated before today, or
// completed regardless of its date.
func (r *Reservation) IsPast(now time.Time) bool {
	return r.details.Date.Before(DateOf(now)) || r.IsCompleted()
}

// IsLate is true only for today's bookings without an arrival once more
// than LateWindow has elapsed past the booked time. Malformed times are never late.
func (r *Reservation) IsLate(now time.Time) bool {
	if !r.IsToday(now) || r.arrived {
		return false
	}
	booked, ok := r.details.Time.Minutes()
	if !ok {
		return false
	}
	return minutesOf(now) > booked+int(LateWindow/time.Minute)
}
