// internal/errors/errors.go
package appErrors

import (
	"errors"
	"fmt"
	"net/http"
)

// BadRequestError signals invalid input caught before any statement is
// issued. Handlers should translate this into an HTTP 400 response.
type BadRequestError struct {
	Message string
}

func (e *BadRequestError) Error() string { return e.Message }

func (e *BadRequestError) StatusCode() int { return http.StatusBadRequest }

// NewBadRequest wraps a validation message in a BadRequestError.
func NewBadRequest(message string) error {
	return &BadRequestError{Message: message}
}

// NotFoundError signals a by-id lookup that matched zero rows. Handlers
// should translate this into an HTTP 404 response.
type NotFoundError struct {
	Resource string
	ID       int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("No such %s: %d", e.Resource, e.ID)
}

func (e *NotFoundError) StatusCode() int { return http.StatusNotFound }

// Helper constructors
func NewCustomerNotFound(id int) error {
	return &NotFoundError{Resource: "customer", ID: id}
}

func NewReservationNotFound(id int) error {
	return &NotFoundError{Resource: "reservation", ID: id}
}

// IsNotFound reports whether err is (or wraps) a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsBadRequest reports whether err is (or wraps) a BadRequestError.
func IsBadRequest(err error) bool {
	var br *BadRequestError
	return errors.As(err, &br)
}
