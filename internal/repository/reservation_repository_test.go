package repository_test

import (
	"context"
	"database/sql"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	appErrors "github.com/tablebook/reservations-backend/internal/errors"
	"github.com/tablebook/reservations-backend/internal/model"
	"github.com/tablebook/reservations-backend/internal/repository"
)

var reservationColumns = []string{"id", "customer_id", "num_guests", "start_at", "notes"}

func newReservationRepo(t *testing.T) (*repository.ReservationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return &repository.ReservationRepository{DB: db}, mock
}

func TestReservationRepositoryGetByID(t *testing.T) {
	repo, mock := newReservationRepo(t)

	startAt := time.Date(2026, time.September, 1, 18, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(reservationColumns).
		AddRow(5, 1, 4, startAt, "birthday dinner")
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id =")).
		WithArgs(5).
		WillReturnRows(rows)

	res, err := repo.GetByID(context.Background(), 5)
	require.NoError(t, err)
	assert.Equal(t, 5, res.ID)
	assert.Equal(t, 1, res.CustomerID)
	assert.Equal(t, 4, res.NumGuests())
	assert.True(t, startAt.Equal(res.StartAt))
	assert.Equal(t, "birthday dinner", res.Notes())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositoryGetByIDNotFound(t *testing.T) {
	repo, mock := newReservationRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE id =")).
		WithArgs(9).
		WillReturnError(sql.ErrNoRows)

	res, err := repo.GetByID(context.Background(), 9)
	assert.Nil(t, res)
	require.Error(t, err)
	assert.True(t, appErrors.IsNotFound(err))
	assert.Equal(t, "No such reservation: 9", err.Error())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositoryListForCustomer(t *testing.T) {
	repo, mock := newReservationRepo(t)

	startAt := time.Date(2026, time.September, 1, 18, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows(reservationColumns).
		AddRow(1, 3, 2, startAt, "").
		AddRow(2, 3, 6, startAt.Add(48*time.Hour), "needs the large table")
	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE customer_id =")).
		WithArgs(3).
		WillReturnRows(rows)

	reservations, err := repo.ListForCustomer(context.Background(), 3)
	require.NoError(t, err)
	require.Len(t, reservations, 2)
	assert.Equal(t, 2, reservations[0].NumGuests())
	assert.Equal(t, 6, reservations[1].NumGuests())

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositoryListForCustomerEmpty(t *testing.T) {
	repo, mock := newReservationRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM reservations WHERE customer_id =")).
		WithArgs(99).
		WillReturnRows(sqlmock.NewRows(reservationColumns))

	reservations, err := repo.ListForCustomer(context.Background(), 99)
	require.NoError(t, err)
	assert.Empty(t, reservations)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositorySaveInsert(t *testing.T) {
	repo, mock := newReservationRepo(t)

	startAt := time.Date(2026, time.September, 8, 19, 30, 0, 0, time.UTC)
	res := &model.Reservation{CustomerID: 1, StartAt: startAt}
	require.NoError(t, res.SetNumGuests(4))
	require.NoError(t, res.SetNotes("birthday dinner"))

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO reservations (customer_id, start_at, num_guests, notes)")).
		WithArgs(1, startAt, 4, "birthday dinner").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(21))

	require.NoError(t, repo.Save(context.Background(), res))
	assert.Equal(t, 21, res.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositorySaveUpdate(t *testing.T) {
	repo, mock := newReservationRepo(t)

	startAt := time.Date(2026, time.September, 8, 19, 30, 0, 0, time.UTC)
	res := model.NewReservation(21, 1, 5, startAt, "moved to the patio")

	mock.ExpectExec(regexp.QuoteMeta("UPDATE reservations SET")).
		WithArgs(1, startAt, 5, "moved to the patio", 21).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.Save(context.Background(), res))
	assert.Equal(t, 21, res.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestReservationRepositorySaveRejectsZeroGuests(t *testing.T) {
	repo, mock := newReservationRepo(t)

	// numGuests was never set; the invariant check must fire before any
	// statement reaches the store
	res := &model.Reservation{CustomerID: 1, StartAt: time.Now()}

	err := repo.Save(context.Background(), res)
	require.Error(t, err)
	assert.True(t, appErrors.IsBadRequest(err))
	assert.Equal(t, 0, res.ID)

	assert.NoError(t, mock.ExpectationsWereMet())
}
