package reservation

import (
	"sort"
	"strings"
)

// Criteria narrows a reservation listing. Zero values match everything.
type Criteria struct {
	Text   string
	Status *Status
	Date   *Date
}

func (c Criteria) Matches(r *Reservation) bool {
	if !r.MatchesText(c.Text) {
		return false
	}
	if c.Status != nil && r.details.Status != *c.Status {
		return false
	}
	if c.Date != nil && !r.details.Date.Equal(*c.Date) {
		return false
	}
	return true
}

// MatchesText compares name and email case-insensitively and the phone
// number verbatim. An empty text matches every reservation.
func (r *Reservation) MatchesText(text string) bool {
	if text == "" {
		return true
	}
	lower := strings.ToLower(text)
	return strings.Contains(strings.ToLower(r.details.CustomerName), lower) ||
		strings.Contains(r.details.CustomerPhone, text) ||
		strings.Contains(strings.ToLower(r.details.CustomerEmail), lower)
}

// SortBySchedule orders rs by date, then time. Equal slots keep their order.
func SortBySchedule(rs []Reservation) {
	sort.SliceStable(rs, func(i, j int) bool {
		a, b := rs[i].details, rs[j].details
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return a.Time.String() < b.Time.String()
	})
}
