package repository

import (
	"context"
	"database/sql"

	appErrors "github.com/tablebook/reservations-backend/internal/errors"
	"github.com/tablebook/reservations-backend/internal/model"
)

// CustomerRepositoryInterface defines methods used by services
type CustomerRepositoryInterface interface {
	All(ctx context.Context) ([]*model.Customer, error)
	Search(ctx context.Context, query string) ([]*model.Customer, error)
	GetByID(ctx context.Context, id int) (*model.Customer, error)
	Save(ctx context.Context, c *model.Customer) error
	TopWithReservationCounts(ctx context.Context) ([]CustomerWithCount, error)
}

// CustomerRepository is the concrete implementation over *sql.DB
type CustomerRepository struct {
	DB *sql.DB
}

// CustomerWithCount pairs a customer with their reservation count. It is
// the row shape returned by TopWithReservationCounts.
type CustomerWithCount struct {
	Customer         *model.Customer
	ReservationCount int
}

// All fetches every customer ordered by last then first name.
func (r *CustomerRepository) All(ctx context.Context) ([]*model.Customer, error) {
	query := `
        SELECT id, first_name, last_name, phone, notes
        FROM customers
        ORDER BY last_name, first_name
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// Search fetches customers whose first name, last name or "first last"
// concatenation contains the query, case-insensitively. An empty query
// matches everyone.
func (r *CustomerRepository) Search(ctx context.Context, query string) ([]*model.Customer, error) {
	q := `
        SELECT id, first_name, last_name, phone, notes
        FROM customers AS c
        WHERE c.first_name ILIKE $1
           OR c.last_name ILIKE $1
           OR CONCAT(c.first_name, ' ', c.last_name) ILIKE $1
        ORDER BY last_name, first_name
    `
	rows, err := r.DB.QueryContext(ctx, q, "%"+query+"%")
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectCustomers(rows)
}

// GetByID fetches a customer by ID. A missing row is a NotFoundError.
func (r *CustomerRepository) GetByID(ctx context.Context, id int) (*model.Customer, error) {
	query := `
        SELECT id, first_name, last_name, phone, notes
        FROM customers
        WHERE id = $1
    `
	c, err := scanCustomer(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, appErrors.NewCustomerNotFound(id)
		}
		return nil, err
	}
	return c, nil
}

// Save inserts the customer when it has no ID yet, capturing the generated
// key onto the instance, and otherwise rewrites the full row. A failed
// insert leaves ID untouched.
func (r *CustomerRepository) Save(ctx context.Context, c *model.Customer) error {
	if c.ID == 0 {
		query := `
            INSERT INTO customers (first_name, last_name, phone, notes)
            VALUES ($1, $2, $3, $4)
            RETURNING id
        `
		return r.DB.QueryRowContext(ctx, query, c.FirstName, c.LastName, c.Phone, c.Notes()).Scan(&c.ID)
	}
	query := `
        UPDATE customers
        SET first_name=$1, last_name=$2, phone=$3, notes=$4
        WHERE id = $5
    `
	_, err := r.DB.ExecContext(ctx, query, c.FirstName, c.LastName, c.Phone, c.Notes(), c.ID)
	return err
}

// TopWithReservationCounts returns at most ten customers ordered by how
// many reservations they hold, most first. The inner join means a customer
// with zero reservations never appears.
func (r *CustomerRepository) TopWithReservationCounts(ctx context.Context) ([]CustomerWithCount, error) {
	query := `
        SELECT c.id, c.first_name, c.last_name, c.phone, c.notes, COUNT(r.id)
        FROM customers AS c
        JOIN reservations AS r ON c.id = r.customer_id
        GROUP BY c.id
        ORDER BY COUNT(r.id) DESC
        LIMIT 10
    `
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	top := []CustomerWithCount{}
	for rows.Next() {
		var (
			id                  int
			firstName, lastName string
			phone, notes        sql.NullString
			count               int
		)
		if err := rows.Scan(&id, &firstName, &lastName, &phone, &notes, &count); err != nil {
			return nil, err
		}
		top = append(top, CustomerWithCount{
			Customer:         model.NewCustomer(id, firstName, lastName, phone.String, notes.String),
			ReservationCount: count,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return top, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// scanCustomer reads one customer row. Phone and notes may be NULL in the
// store and come back as empty strings.
func scanCustomer(row rowScanner) (*model.Customer, error) {
	var (
		id                  int
		firstName, lastName string
		phone, notes        sql.NullString
	)
	if err := row.Scan(&id, &firstName, &lastName, &phone, &notes); err != nil {
		return nil, err
	}
	return model.NewCustomer(id, firstName, lastName, phone.String, notes.String), nil
}

func collectCustomers(rows *sql.Rows) ([]*model.Customer, error) {
	customers := []*model.Customer{}
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return customers, nil
}

var _ CustomerRepositoryInterface = (*CustomerRepository)(nil)
