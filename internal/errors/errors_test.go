package appErrors_test

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	appErrors "github.com/tablebook/reservations-backend/internal/errors"
)

func TestNotFoundMessages(t *testing.T) {
	err := appErrors.NewCustomerNotFound(42)
	assert.Equal(t, "No such customer: 42", err.Error())

	err = appErrors.NewReservationNotFound(9)
	assert.Equal(t, "No such reservation: 9", err.Error())
}

func TestStatusHints(t *testing.T) {
	var nf *appErrors.NotFoundError
	assert.ErrorAs(t, appErrors.NewCustomerNotFound(1), &nf)
	assert.Equal(t, http.StatusNotFound, nf.StatusCode())

	var br *appErrors.BadRequestError
	assert.ErrorAs(t, appErrors.NewBadRequest("Input must be a string!"), &br)
	assert.Equal(t, http.StatusBadRequest, br.StatusCode())
}

func TestHelpersSeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("loading customer: %w", appErrors.NewCustomerNotFound(3))
	assert.True(t, appErrors.IsNotFound(wrapped))
	assert.False(t, appErrors.IsBadRequest(wrapped))

	assert.True(t, appErrors.IsBadRequest(appErrors.NewBadRequest("nope")))
	assert.False(t, appErrors.IsNotFound(nil))
}
