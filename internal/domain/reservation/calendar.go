package reservation

import "time"

// CalendarGridDays is six full weeks, enough for any month layout.
const CalendarGridDays = 42

type CalendarDay struct {
	Date         Date
	InMonth      bool
	IsToday      bool
	Reservations []Reservation
}

// MonthGrid lays out month as a Sunday-first grid of CalendarGridDays days
// and attaches the reservations of each day in the order given.
func MonthGrid(now time.Time, year int, month time.Month, rs []Reservation) []CalendarDay {
	first := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	start := first.AddDate(0, 0, -int(first.Weekday()))
	today := DateOf(now)

	byDate := make(map[Date][]Reservation)
	for _, r := range rs {
		byDate[r.details.Date] = append(byDate[r.details.Date], r)
	}

	days := make([]CalendarDay, 0, CalendarGridDays)
	for i := 0; i < CalendarGridDays; i++ {
		day := start.AddDate(0, 0, i)
		date := DateOf(day)
		days = append(days, CalendarDay{
			Date:         date,
			InMonth:      day.Month() == month,
			IsToday:      date.Equal(today),
			Reservations: byDate[date],
		})
	}
	return days
}
