package postgres

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
)

func TestRateRepository_SumForStay(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRateRepository(db)
	ctx := context.Background()

	t.Run("Rates Present", func(t *testing.T) {
		mock.ExpectQuery("SELECT SUM\\(rate\\) FROM room_rates").
			WithArgs(int32(2), "2026-09-10", "2026-09-12").
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(220.0))

		sum, ok, err := repo.SumForStay(ctx, 2, "2026-09-10", "2026-09-12")
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 220.0, sum)
	})

	t.Run("No Rates In Range", func(t *testing.T) {
		// SUM over zero rows is NULL
		mock.ExpectQuery("SELECT SUM\\(rate\\) FROM room_rates").
			WithArgs(int32(2), "2026-09-10", "2026-09-12").
			WillReturnRows(sqlmock.NewRows([]string{"sum"}).AddRow(nil))

		sum, ok, err := repo.SumForStay(ctx, 2, "2026-09-10", "2026-09-12")
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0.0, sum)
	})
}

func TestRateRepository_AverageRate(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRateRepository(db)
	ctx := context.Background()

	t.Run("Rates Present", func(t *testing.T) {
		mock.ExpectQuery("SELECT AVG\\(rate\\) FROM room_rates").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(120.0))

		avg, ok, err := repo.AverageRate(ctx, 2)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, 120.0, avg)
	})

	t.Run("No Rates", func(t *testing.T) {
		mock.ExpectQuery("SELECT AVG\\(rate\\) FROM room_rates").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"avg"}).AddRow(nil))

		avg, ok, err := repo.AverageRate(ctx, 2)
		assert.NoError(t, err)
		assert.False(t, ok)
		assert.Equal(t, 0.0, avg)
	})
}

func TestRateRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRateRepository(db)
	ctx := context.Background()

	rate := &domain.RoomRate{RoomTypeID: 2, Rate: 110, Date: "2026-09-10"}

	mock.ExpectQuery("INSERT INTO room_rates").
		WithArgs(rate.RoomTypeID, rate.Rate, rate.Date).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	err = repo.Create(ctx, rate)
	assert.NoError(t, err)
	assert.Equal(t, int32(1), rate.ID)
}

func TestRateRepository_Update_NotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRateRepository(db)
	ctx := context.Background()

	rate := &domain.RoomRate{ID: 404, RoomTypeID: 2, Rate: 110, Date: "2026-09-10"}

	mock.ExpectExec("UPDATE room_rates SET").
		WithArgs(rate.RoomTypeID, rate.Rate, rate.Date, rate.ID).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err = repo.Update(ctx, rate)
	assert.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindNotFound))
}

func TestRateRepository_StorageError(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewRateRepository(db)
	ctx := context.Background()

	mock.ExpectQuery("SELECT SUM\\(rate\\) FROM room_rates").
		WithArgs(int32(2), "2026-09-10", "2026-09-12").
		WillReturnError(sql.ErrConnDone)

	_, _, err = repo.SumForStay(ctx, 2, "2026-09-10", "2026-09-12")
	assert.Error(t, err)
	assert.True(t, apperror.IsKind(err, apperror.KindStorage))
}
