package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type inventoryRepository struct {
	db *sql.DB
}

func NewInventoryRepository(db *sql.DB) repository.InventoryRepository {
	return &inventoryRepository{db: db}
}

func (r *inventoryRepository) Create(ctx context.Context, inv *domain.Inventory) error {
	query := `INSERT INTO inventories (hotel_id, room_type_id, available_rooms, date) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, inv.HotelID, inv.RoomTypeID, inv.AvailableRooms, inv.Date).Scan(&inv.ID); err != nil {
		return apperror.Storage("create inventory", err)
	}
	return nil
}

func (r *inventoryRepository) GetByID(ctx context.Context, id int32) (*domain.Inventory, error) {
	inv := &domain.Inventory{}
	var date time.Time
	query := `SELECT id, hotel_id, room_type_id, available_rooms, date FROM inventories WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&inv.ID, &inv.HotelID, &inv.RoomTypeID, &inv.AvailableRooms, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("inventory %d not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("get inventory", err)
	}
	inv.Date = date.Format("2006-01-02")
	return inv, nil
}

func (r *inventoryRepository) List(ctx context.Context) ([]domain.Inventory, error) {
	query := `SELECT id, hotel_id, room_type_id, available_rooms, date FROM inventories ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperror.Storage("list inventories", err)
	}
	defer rows.Close()

	var invs []domain.Inventory
	for rows.Next() {
		var inv domain.Inventory
		var date time.Time
		if err := rows.Scan(&inv.ID, &inv.HotelID, &inv.RoomTypeID, &inv.AvailableRooms, &date); err != nil {
			return nil, apperror.Storage("scan inventory", err)
		}
		inv.Date = date.Format("2006-01-02")
		invs = append(invs, inv)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate inventories", err)
	}
	return invs, nil
}

func (r *inventoryRepository) Update(ctx context.Context, inv *domain.Inventory) error {
	query := `UPDATE inventories SET hotel_id=$1, room_type_id=$2, available_rooms=$3, date=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, inv.HotelID, inv.RoomTypeID, inv.AvailableRooms, inv.Date, inv.ID)
	if err != nil {
		return apperror.Storage("update inventory", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("inventory %d not found", inv.ID)
	}
	return nil
}

func (r *inventoryRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM inventories WHERE id = $1`, id)
	if err != nil {
		return apperror.Storage("delete inventory", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("inventory %d not found", id)
	}
	return nil
}

func (r *inventoryRepository) TotalRoomsByType(ctx context.Context, roomTypeID int32) (int32, error) {
	var total int32
	query := `SELECT COALESCE(SUM(available_rooms), 0) FROM inventories WHERE room_type_id = $1`
	if err := r.db.QueryRowContext(ctx, query, roomTypeID).Scan(&total); err != nil {
		return 0, apperror.Storage("total rooms by type", err)
	}
	return total, nil
}

func (r *inventoryRepository) TotalRoomsByHotel(ctx context.Context, hotelID int32) (int32, error) {
	var total int32
	query := `SELECT COALESCE(SUM(available_rooms), 0) FROM inventories WHERE hotel_id = $1`
	if err := r.db.QueryRowContext(ctx, query, hotelID).Scan(&total); err != nil {
		return 0, apperror.Storage("total rooms by hotel", err)
	}
	return total, nil
}
