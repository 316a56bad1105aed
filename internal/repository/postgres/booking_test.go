package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
)

func newBooking() *domain.Booking {
	return &domain.Booking{
		UserID:       7,
		UserEmail:    "guest@test.com",
		HotelID:      1,
		RoomTypeID:   2,
		Payment:      &domain.Payment{Amount: 220, PaymentMethod: domain.PaymentMethodVisa, PaymentStatus: "PAID"},
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-12",
		TotalPrice:   220,
		Status:       domain.BookingStatusPending,
	}
}

func TestBookingRepository_CountOverlapping(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	t.Run("No Overlap", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(int32(2), "2026-09-10", "2026-09-12", int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountOverlapping(ctx, 2, "2026-09-10", "2026-09-12", 0)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
	})

	t.Run("Excludes Own Booking", func(t *testing.T) {
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(int32(2), "2026-09-10", "2026-09-12", int32(5)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		count, err := repo.CountOverlapping(ctx, 2, "2026-09-10", "2026-09-12", 5)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), count)
	})
}

func TestBookingRepository_CreateWithPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewBookingRepository(db)

		b := newBooking()

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(int32(2), "2026-09-10", "2026-09-12", int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO payments").
			WithArgs(220.0, sqlmock.AnyArg(), domain.PaymentMethodVisa, "PAID").
			WillReturnRows(sqlmock.NewRows([]string{"id", "payment_date"}).AddRow(3, time.Now()))
		mock.ExpectQuery("INSERT INTO bookings").
			WithArgs(int32(7), "guest@test.com", int32(1), int32(2), int32(3), "2026-09-10", "2026-09-12", 220.0, domain.BookingStatusPending, sqlmock.AnyArg()).
			WillReturnRows(sqlmock.NewRows([]string{"id", "created_on"}).AddRow(9, time.Now()))
		mock.ExpectCommit()

		err = repo.CreateWithPayment(ctx, b)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), b.ID)
		assert.Equal(t, int32(3), b.PaymentID)
		assert.Equal(t, int32(3), b.Payment.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Conflict Detected By Recheck", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(int32(2), "2026-09-10", "2026-09-12", int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
		mock.ExpectRollback()

		err = repo.CreateWithPayment(ctx, newBooking())
		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})

	t.Run("Conflict Detected By Exclusion Constraint", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectExec("SELECT pg_advisory_xact_lock").
			WithArgs(int64(2)).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
			WithArgs(int32(2), "2026-09-10", "2026-09-12", int32(0)).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery("INSERT INTO payments").
			WillReturnRows(sqlmock.NewRows([]string{"id", "payment_date"}).AddRow(3, time.Now()))
		mock.ExpectQuery("INSERT INTO bookings").
			WillReturnError(&pq.Error{Code: "23P01"})
		mock.ExpectRollback()

		err = repo.CreateWithPayment(ctx, newBooking())
		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindValidation))
	})
}

func TestBookingRepository_DeleteWithPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM bookings").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"payment_id"}).AddRow(3))
		mock.ExpectExec("DELETE FROM payments").
			WithArgs(int32(3)).
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		err = repo.DeleteWithPayment(ctx, 9)
		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not Found", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		if err != nil {
			t.Fatalf("error opening mock database: %v", err)
		}
		defer db.Close()
		repo := NewBookingRepository(db)

		mock.ExpectBegin()
		mock.ExpectQuery("DELETE FROM bookings").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"payment_id"}))
		mock.ExpectRollback()

		err = repo.DeleteWithPayment(ctx, 9)
		assert.Error(t, err)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}

func TestBookingRepository_GetByID(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewBookingRepository(db)
	ctx := context.Background()

	cols := []string{
		"id", "user_id", "user_email", "hotel_id", "room_type_id", "payment_id",
		"check_in_date", "check_out_date", "total_price", "status", "created_on",
		"amount", "payment_date", "payment_method", "payment_status",
	}

	t.Run("Success", func(t *testing.T) {
		checkIn, _ := time.Parse("2006-01-02", "2026-09-10")
		checkOut, _ := time.Parse("2006-01-02", "2026-09-12")
		mock.ExpectQuery("SELECT b.id, b.user_id").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows(cols).
				AddRow(9, 7, "guest@test.com", 1, 2, 3, checkIn, checkOut, 220.0, "PENDING", time.Now(), 220.0, time.Now(), "VISA", "PAID"))

		b, err := repo.GetByID(ctx, 9)
		assert.NoError(t, err)
		assert.Equal(t, int32(9), b.ID)
		assert.Equal(t, "2026-09-10", b.CheckInDate)
		assert.Equal(t, "2026-09-12", b.CheckOutDate)
		assert.Equal(t, domain.BookingStatusPending, b.Status)
		assert.NotNil(t, b.Payment)
		assert.Equal(t, domain.PaymentMethodVisa, b.Payment.PaymentMethod)
	})

	t.Run("Not Found", func(t *testing.T) {
		mock.ExpectQuery("SELECT b.id, b.user_id").
			WithArgs(int32(404)).
			WillReturnRows(sqlmock.NewRows(cols))

		b, err := repo.GetByID(ctx, 404)
		assert.Error(t, err)
		assert.Nil(t, b)
		assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
	})
}
