package request

import (
	"errors"
	"net/mail"
	"strings"

	"restaurant-reservations/internal/domain/reservation"
)

var (
	ErrCustomerNameRequired = errors.New("customer name is required")
	ErrInvalidEmail         = errors.New("customer email is not a valid address")
)

type CreateReservationRequest struct {
	CustomerName  string  `json:"customerName" binding:"required,max=200"`
	CustomerPhone string  `json:"customerPhone" binding:"max=50"`
	CustomerEmail string  `json:"customerEmail" binding:"max=254"`
	PartySize     int     `json:"partySize" binding:"required,min=1"`
	Date          string  `json:"date" binding:"required"`
	Time          string  `json:"time" binding:"required"`
	TableNumber   *int    `json:"tableNumber,omitempty" binding:"omitempty,min=1"`
	Notes         *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Status        string  `json:"status,omitempty"`
}

// UpdateReservationRequest is a partial update. A tableNumber of 0 or an
// empty notes string clears the field; arrived can only be set to true.
type UpdateReservationRequest struct {
	CustomerName  *string `json:"customerName,omitempty" binding:"omitempty,max=200"`
	CustomerPhone *string `json:"customerPhone,omitempty" binding:"omitempty,max=50"`
	CustomerEmail *string `json:"customerEmail,omitempty" binding:"omitempty,max=254"`
	PartySize     *int    `json:"partySize,omitempty" binding:"omitempty,min=1"`
	Date          *string `json:"date,omitempty"`
	Time          *string `json:"time,omitempty"`
	TableNumber   *int    `json:"tableNumber,omitempty" binding:"omitempty,min=0"`
	Notes         *string `json:"notes,omitempty" binding:"omitempty,max=1000"`
	Status        *string `json:"status,omitempty"`
	Arrived       *bool   `json:"arrived,omitempty"`
}

func (r CreateReservationRequest) ToDomain() (reservation.Details, error) {
	name := strings.TrimSpace(r.CustomerName)
	if name == "" {
		return reservation.Details{}, ErrCustomerNameRequired
	}
	email := strings.TrimSpace(r.CustomerEmail)
	if err := validateEmail(email); err != nil {
		return reservation.Details{}, err
	}

	date, err := reservation.ParseDate(r.Date)
	if err != nil {
		return reservation.Details{}, err
	}
	tod, err := reservation.ParseTimeOfDay(r.Time)
	if err != nil {
		return reservation.Details{}, err
	}

	status := reservation.StatusConfirmed
	if r.Status != "" {
		if status, err = reservation.ParseStatus(r.Status); err != nil {
			return reservation.Details{}, err
		}
	}

	return reservation.Details{
		CustomerName:  name,
		CustomerPhone: strings.TrimSpace(r.CustomerPhone),
		CustomerEmail: email,
		PartySize:     r.PartySize,
		Date:          date,
		Time:          tod,
		TableNumber:   r.TableNumber,
		Notes:         optionalNotes(r.Notes),
		Status:        status,
	}, nil
}

func (r UpdateReservationRequest) ToPatch() (reservation.Patch, error) {
	p := reservation.Patch{
		PartySize:   r.PartySize,
		TableNumber: r.TableNumber,
		Notes:       trimNotes(r.Notes),
		Arrived:     r.Arrived,
	}

	if r.CustomerName != nil {
		name := strings.TrimSpace(*r.CustomerName)
		if name == "" {
			return reservation.Patch{}, ErrCustomerNameRequired
		}
		p.CustomerName = &name
	}
	if r.CustomerPhone != nil {
		phone := strings.TrimSpace(*r.CustomerPhone)
		p.CustomerPhone = &phone
	}
	if r.CustomerEmail != nil {
		email := strings.TrimSpace(*r.CustomerEmail)
		if err := validateEmail(email); err != nil {
			return reservation.Patch{}, err
		}
		p.CustomerEmail = &email
	}
	if r.Date != nil {
		date, err := reservation.ParseDate(*r.Date)
		if err != nil {
			return reservation.Patch{}, err
		}
		p.Date = &date
	}
	if r.Time != nil {
		tod, err := reservation.ParseTimeOfDay(*r.Time)
		if err != nil {
			return reservation.Patch{}, err
		}
		p.Time = &tod
	}
	if r.Status != nil {
		status, err := reservation.ParseStatus(*r.Status)
		if err != nil {
			return reservation.Patch{}, err
		}
		p.Status = &status
	}

	return p, nil
}

// SearchQuery is the query string of the reservation listing. A status of
// "all" or an empty one disables the status filter.
type SearchQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
	Date   string `form:"date"`
}

const allStatuses = "all"

func (q SearchQuery) ToCriteria() (reservation.Criteria, error) {
	criteria := reservation.Criteria{Text: q.Search}

	if q.Status != "" && !strings.EqualFold(q.Status, allStatuses) {
		status, err := reservation.ParseStatus(q.Status)
		if err != nil {
			return reservation.Criteria{}, err
		}
		criteria.Status = &status
	}
	if q.Date != "" {
		date, err := reservation.ParseDate(q.Date)
		if err != nil {
			return reservation.Criteria{}, err
		}
		criteria.Date = &date
	}

	return criteria, nil
}

func validateEmail(email string) error {
	if email == "" {
		return nil
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return ErrInvalidEmail
	}
	return nil
}

// optionalNotes drops blank notes so a new record never stores "".
func optionalNotes(notes *string) *string {
	trimmed := trimNotes(notes)
	if trimmed == nil || *trimmed == "" {
		return nil
	}
	return trimmed
}

// trimNotes keeps "" so a patch can clear existing notes.
func trimNotes(notes *string) *string {
	if notes == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*notes)
	return &trimmed
}
