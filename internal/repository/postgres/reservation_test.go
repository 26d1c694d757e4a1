package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"vrms-backend/internal/domain"
	"vrms-backend/internal/repository"
)

func reservationRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "customer_id", "vehicle_id", "start_date", "end_date", "picked_up", "brought_back", "created_at", "updated_at"})
}

func TestReservationRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	res := &domain.Reservation{
		CustomerID: 2,
		VehicleID:  1,
		StartDate:  time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC),
		EndDate:    time.Date(2026, 9, 5, 0, 0, 0, 0, time.UTC),
	}

	mock.ExpectQuery("INSERT INTO reservations").
		WithArgs(res.CustomerID, res.VehicleID, res.StartDate, res.EndDate, res.PickedUp, res.BroughtBack, sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Create(ctx, res)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), res.ID)
}

func TestReservationRepository_ListActiveByVehicle(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Active reservation holds the vehicle", func(t *testing.T) {
		rows := reservationRows().
			AddRow(5, 2, 1, time.Now(), time.Now().Add(48*time.Hour), true, false, time.Now(), time.Now())

		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE vehicle_id = \\$1 AND brought_back = false").
			WithArgs(int32(1)).
			WillReturnRows(rows)

		active, err := repo.ListActiveByVehicle(ctx, 1)
		assert.NoError(t, err)
		assert.Len(t, active, 1)
		assert.True(t, active[0].Active())
	})

	t.Run("No active reservations", func(t *testing.T) {
		mock.ExpectQuery("SELECT (.+) FROM reservations WHERE vehicle_id = \\$1 AND brought_back = false").
			WithArgs(int32(3)).
			WillReturnRows(reservationRows())

		active, err := repo.ListActiveByVehicle(ctx, 3)
		assert.NoError(t, err)
		assert.Empty(t, active)
	})
}

func TestReservationRepository_ListOverdue(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()
	now := time.Now()

	rows := reservationRows().
		AddRow(5, 2, 1, now.Add(-96*time.Hour), now.Add(-24*time.Hour), true, false, now, now)

	mock.ExpectQuery("SELECT (.+) FROM reservations WHERE brought_back = false AND end_date < \\$1").
		WithArgs(now).
		WillReturnRows(rows)

	overdue, err := repo.ListOverdue(ctx, now)
	assert.NoError(t, err)
	assert.Len(t, overdue, 1)
	assert.True(t, overdue[0].Overdue(now))
}

func TestReservationRepository_MarkPickedUp(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET picked_up = true").
			WithArgs(sqlmock.AnyArg(), int32(5)).
			WillReturnResult(sqlmock.NewResult(0, 1))

		assert.NoError(t, repo.MarkPickedUp(ctx, 5))
	})

	t.Run("Row vanished", func(t *testing.T) {
		mock.ExpectExec("UPDATE reservations SET picked_up = true").
			WithArgs(sqlmock.AnyArg(), int32(99)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.MarkPickedUp(ctx, 99), repository.ErrConflict)
	})
}

func TestReservationRepository_MarkBroughtBack(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	mock.ExpectExec("UPDATE reservations SET brought_back = true").
		WithArgs(sqlmock.AnyArg(), int32(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.MarkBroughtBack(ctx, 5))
}

func TestReservationRepository_GetWithCustomer(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewReservationRepository(db)
	ctx := context.Background()

	rows := sqlmock.NewRows([]string{
		"id", "customer_id", "vehicle_id", "start_date", "end_date", "picked_up", "brought_back", "created_at", "updated_at",
		"c_id", "user_id", "first_name", "last_name", "phone_number", "license_number", "address", "c_created_at", "c_updated_at",
		"email",
	}).AddRow(
		5, 2, 1, time.Now(), time.Now().Add(48*time.Hour), false, false, time.Now(), time.Now(),
		2, 10, "Ada", "Lovelace", "+310000000", "NL-123456", "Analytical Street 1", time.Now(), time.Now(),
		"ada@example.com",
	)

	mock.ExpectQuery("FROM reservations r").
		WithArgs(int32(5)).
		WillReturnRows(rows)

	out, err := repo.GetWithCustomer(ctx, 5)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), out.Reservation.ID)
	assert.Equal(t, "Ada", out.Customer.FirstName)
	assert.Equal(t, "ada@example.com", out.Email)
}
