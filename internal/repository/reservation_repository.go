package repository

import (
	"context"
	"database/sql"
	"time"

	appErrors "github.com/tablebook/reservations-backend/internal/errors"
	"github.com/tablebook/reservations-backend/internal/model"
)

// ReservationRepositoryInterface defines methods used by services
type ReservationRepositoryInterface interface {
	GetByID(ctx context.Context, id int) (*model.Reservation, error)
	ListForCustomer(ctx context.Context, customerID int) ([]*model.Reservation, error)
	Save(ctx context.Context, res *model.Reservation) error
}

// ReservationRepository is the concrete implementation over *sql.DB
type ReservationRepository struct {
	DB *sql.DB
}

// GetByID fetches a reservation by ID. A missing row is a NotFoundError.
func (r *ReservationRepository) GetByID(ctx context.Context, id int) (*model.Reservation, error) {
	query := `
        SELECT id, customer_id, num_guests, start_at, notes
        FROM reservations
        WHERE id = $1
    `
	res, err := scanReservation(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewReservationNotFound(id)
		}
		return nil, err
	}
	return res, nil
}

// ListForCustomer fetches all reservations belonging to a customer, in the
// store's natural row order.
func (r *ReservationRepository) ListForCustomer(ctx context.Context, customerID int) ([]*model.Reservation, error) {
	query := `
        SELECT id, customer_id, num_guests, start_at, notes
        FROM reservations
        WHERE customer_id = $1
    `
	rows, err := r.DB.QueryContext(ctx, query, customerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reservations := []*model.Reservation{}
	for rows.Next() {
		res, err := scanReservation(rows)
		if err != nil {
			return nil, err
		}
		reservations = append(reservations, res)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return reservations, nil
}

// Save inserts the reservation when it has no ID yet, capturing the
// generated key onto the instance, and otherwise rewrites the full row.
// The party-size invariant is re-checked before any statement is issued,
// so a zero-value reservation cannot reach the store.
func (r *ReservationRepository) Save(ctx context.Context, res *model.Reservation) error {
	if res.NumGuests() < 1 {
		return appErrors.NewBadRequest("Must have at least 1 guest!")
	}
	if res.ID == 0 {
		query := `
            INSERT INTO reservations (customer_id, start_at, num_guests, notes)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `
		return r.DB.QueryRowContext(ctx, query, res.CustomerID, res.StartAt, res.NumGuests(), res.Notes()).Scan(&res.ID)
	}
	query := `
        UPDATE reservations
        SET customer_id=$1, start_at=$2, num_guests=$3, notes=$4
        WHERE id = $5
    `
	_, err := r.DB.ExecContext(ctx, query, res.CustomerID, res.StartAt, res.NumGuests(), res.Notes(), res.ID)
	return err
}

func scanReservation(row rowScanner) (*model.Reservation, error) {
	var (
		id, customerID, numGuests int
		startAt                   time.Time
		notes                     sql.NullString
	)
	if err := row.Scan(&id, &customerID, &numGuests, &startAt, &notes); err != nil {
		return nil, err
	}
	return model.NewReservation(id, customerID, numGuests, startAt, notes.String), nil
}

var _ ReservationRepositoryInterface = (*ReservationRepository)(nil)
