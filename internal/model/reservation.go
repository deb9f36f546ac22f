// internal/model/reservation.go
package model

import (
	"fmt"
	"time"

	appErrors "github.com/tablebook/reservations-backend/internal/errors"
)

// Reservation is one booking for a customer. ID follows the same
// zero-until-saved convention as Customer; numGuests and notes are kept
// behind validating setters.
type Reservation struct {
	ID         int       `db:"id" json:"id"`
	CustomerID int       `db:"customer_id" json:"customer_id"`
	StartAt    time.Time `db:"start_at" json:"start_at"`
	numGuests  int
	notes      string
}

// NewReservation builds a reservation from a stored row. Row values are
// trusted, so the validated fields are assigned directly.
func NewReservation(id, customerID, numGuests int, startAt time.Time, notes string) *Reservation {
	return &Reservation{
		ID:         id,
		CustomerID: customerID,
		StartAt:    startAt,
		numGuests:  numGuests,
		notes:      notes,
	}
}

// NumGuests returns the party size.
func (r *Reservation) NumGuests() int { return r.numGuests }

// SetNumGuests stores the party size. Anything below one guest fails with
// a BadRequestError.
func (r *Reservation) SetNumGuests(n int) error {
	if n < 1 {
		return appErrors.NewBadRequest("Must have at least 1 guest!")
	}
	r.numGuests = n
	return nil
}

// Notes returns the stored notes. Always a string, never unset.
func (r *Reservation) Notes() string { return r.notes }

// SetNotes stores val as this reservation's notes. Empty-ish input becomes
// ""; any other non-string input fails with a BadRequestError.
func (r *Reservation) SetNotes(val any) error {
	notes, err := normalizeNotes(val)
	if err != nil {
		return err
	}
	r.notes = notes
	return nil
}

// FormattedStartAt renders the start time for display, e.g.
// "April 1st 2020, 3:00 pm".
func (r *Reservation) FormattedStartAt() string {
	return fmt.Sprintf("%s %s %d, %s",
		r.StartAt.Month(),
		ordinal(r.StartAt.Day()),
		r.StartAt.Year(),
		r.StartAt.Format("3:04 pm"),
	)
}

// ordinal returns the day number with its English suffix (1st, 2nd, 11th...).
func ordinal(day int) string {
	suffix := "th"
	switch {
	case day%100 >= 11 && day%100 <= 13:
		// 11th, 12th, 13th
	case day%10 == 1:
		suffix = "st"
	case day%10 == 2:
		suffix = "nd"
	case day%10 == 3:
		suffix = "rd"
	}
	return fmt.Sprintf("%d%s", day, suffix)
}
