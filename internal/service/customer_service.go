// internal/service/customer_service.go
package service

import (
	"context"

	"github.com/tablebook/reservations-backend/internal/model"
	"github.com/tablebook/reservations-backend/internal/repository"
)

// CustomerService composes the two repositories. It owns the pieces of
// behavior that cross entity lines: list-or-search dispatch and looking up
// a customer's reservations.
type CustomerService struct {
	CustomerRepo    repository.CustomerRepositoryInterface
	ReservationRepo repository.ReservationRepositoryInterface
}

// ListCustomers returns every customer, or only search matches when query
// is non-empty. Both paths come back ordered by last then first name.
func (s *CustomerService) ListCustomers(ctx context.Context, query string) ([]*model.Customer, error) {
	if query == "" {
		return s.CustomerRepo.All(ctx)
	}
	return s.CustomerRepo.Search(ctx, query)
}

// GetCustomer fetches one customer by ID.
func (s *CustomerService) GetCustomer(ctx context.Context, id int) (*model.Customer, error) {
	return s.CustomerRepo.GetByID(ctx, id)
}

// ReservationsFor returns all reservations held by the given customer.
func (s *CustomerService) ReservationsFor(ctx context.Context, customerID int) ([]*model.Reservation, error) {
	return s.ReservationRepo.ListForCustomer(ctx, customerID)
}

// TopCustomers returns up to ten customers ranked by reservation count.
func (s *CustomerService) TopCustomers(ctx context.Context) ([]repository.CustomerWithCount, error) {
	return s.CustomerRepo.TopWithReservationCounts(ctx)
}
