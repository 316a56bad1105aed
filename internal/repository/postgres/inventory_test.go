package postgres

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"

	"hotelier-backend/internal/domain"
)

func TestInventoryRepository_Totals(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewInventoryRepository(db)
	ctx := context.Background()

	t.Run("Total By Type", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(available_rooms\\), 0\\) FROM inventories WHERE room_type_id").
			WithArgs(int32(2)).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(14))

		total, err := repo.TotalRoomsByType(ctx, 2)
		assert.NoError(t, err)
		assert.Equal(t, int32(14), total)
	})

	t.Run("Total By Hotel", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(available_rooms\\), 0\\) FROM inventories WHERE hotel_id").
			WithArgs(int32(1)).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(40))

		total, err := repo.TotalRoomsByHotel(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int32(40), total)
	})

	t.Run("No Rows Sums To Zero", func(t *testing.T) {
		mock.ExpectQuery("SELECT COALESCE\\(SUM\\(available_rooms\\), 0\\) FROM inventories WHERE room_type_id").
			WithArgs(int32(9)).
			WillReturnRows(sqlmock.NewRows([]string{"total"}).AddRow(0))

		total, err := repo.TotalRoomsByType(ctx, 9)
		assert.NoError(t, err)
		assert.Equal(t, int32(0), total)
	})
}

func TestInventoryRepository_Create(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("error opening mock database: %v", err)
	}
	defer db.Close()

	repo := NewInventoryRepository(db)
	ctx := context.Background()

	inv := &domain.Inventory{HotelID: 1, RoomTypeID: 2, AvailableRooms: 7, Date: "2026-09-10"}

	mock.ExpectQuery("INSERT INTO inventories").
		WithArgs(inv.HotelID, inv.RoomTypeID, inv.AvailableRooms, inv.Date).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(5))

	err = repo.Create(ctx, inv)
	assert.NoError(t, err)
	assert.Equal(t, int32(5), inv.ID)
}
