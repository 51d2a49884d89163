package response

import (
	"time"

	"restaurant-reservations/internal/domain/reservation"
	"restaurant-reservations/internal/pkg/errs"

	"github.com/jinzhu/copier"
)

type ReservationResponse struct {
	ID            string    `json:"id"`
	CustomerName  string    `json:"customerName"`
	CustomerPhone string    `json:"customerPhone"`
	CustomerEmail string    `json:"customerEmail"`
	PartySize     int       `json:"partySize"`
	Date          string    `json:"date"`
	Time          string    `json:"time"`
	TableNumber   *int      `json:"tableNumber,omitempty"`
	Notes         *string   `json:"notes,omitempty"`
	Status        string    `json:"status"`
	Arrived       bool      `json:"arrived"`
	CreatedAt     time.Time `json:"createdAt"`
	// Late is only reported by the today view.
	Late    *bool  `json:"late,omitempty"`
	Warning string `json:"warning,omitempty"`
}

type CalendarDayResponse struct {
	Date         string                `json:"date"`
	InMonth      bool                  `json:"inMonth"`
	IsToday      bool                  `json:"isToday"`
	Reservations []ReservationResponse `json:"reservations"`
}

var detailsCopyOption = copier.Option{
	DeepCopy: true,
	Converters: []copier.TypeConverter{
		{
			SrcType: reservation.Date{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(reservation.Date).String(), nil
			},
		},
		{
			SrcType: reservation.TimeOfDay{},
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(reservation.TimeOfDay).String(), nil
			},
		},
		{
			SrcType: reservation.Status(""),
			DstType: "",
			Fn: func(src any) (any, error) {
				return src.(reservation.Status).String(), nil
			},
		},
	},
}

func FromReservation(r reservation.Reservation) (ReservationResponse, error) {
	var resp ReservationResponse
	details := r.Details()
	if err := copier.CopyWithOption(&resp, &details, detailsCopyOption); err != nil {
		return ReservationResponse{}, errs.Wrapf(err, "map reservation %s", r.ID())
	}

	resp.ID = r.ID().String()
	resp.Arrived = r.Arrived()
	resp.CreatedAt = r.CreatedAt()
	return resp, nil
}

func FromReservations(rs []reservation.Reservation) ([]ReservationResponse, error) {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		resp, err := FromReservation(r)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// FromTodayReservations annotates each reservation with its lateness at now.
func FromTodayReservations(rs []reservation.Reservation, isLate func(reservation.Reservation) bool) ([]ReservationResponse, error) {
	out := make([]ReservationResponse, 0, len(rs))
	for _, r := range rs {
		resp, err := FromReservation(r)
		if err != nil {
			return nil, err
		}
		late := isLate(r)
		resp.Late = &late
		out = append(out, resp)
	}
	return out, nil
}

func FromCalendar(days []reservation.CalendarDay) ([]CalendarDayResponse, error) {
	out := make([]CalendarDayResponse, 0, len(days))
	for _, day := range days {
		items, err := FromReservations(day.Reservations)
		if err != nil {
			return nil, errs.Wrapf(err, "calendar day %s", day.Date)
		}
		out = append(out, CalendarDayResponse{
			Date:         day.Date.String(),
			InMonth:      day.InMonth,
			IsToday:      day.IsToday,
			Reservations: items,
		})
	}
	return out, nil
}
