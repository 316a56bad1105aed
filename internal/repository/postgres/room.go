package postgres

import (
	"context"
	"database/sql"
	"errors"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type roomRepository struct {
	db *sql.DB
}

func NewRoomRepository(db *sql.DB) repository.RoomRepository {
	return &roomRepository{db: db}
}

func (r *roomRepository) Create(ctx context.Context, room *domain.Room) error {
	query := `INSERT INTO rooms (hotel_id, room_type_id, description, status) VALUES ($1, $2, $3, $4) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, room.HotelID, room.RoomTypeID, room.Description, room.Status).Scan(&room.ID); err != nil {
		return apperror.Storage("create room", err)
	}
	return nil
}

func (r *roomRepository) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	room := &domain.Room{}
	query := `SELECT id, hotel_id, room_type_id, COALESCE(description, ''), status FROM rooms WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&room.ID, &room.HotelID, &room.RoomTypeID, &room.Description, &room.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("room %d not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("get room", err)
	}
	return room, nil
}

func (r *roomRepository) ListByHotel(ctx context.Context, hotelID int32) ([]domain.Room, error) {
	query := `SELECT id, hotel_id, room_type_id, COALESCE(description, ''), status FROM rooms WHERE hotel_id = $1 ORDER BY id`
	return r.scanRooms(r.db.QueryContext(ctx, query, hotelID))
}

func (r *roomRepository) List(ctx context.Context) ([]domain.Room, error) {
	query := `SELECT id, hotel_id, room_type_id, COALESCE(description, ''), status FROM rooms ORDER BY id`
	return r.scanRooms(r.db.QueryContext(ctx, query))
}

func (r *roomRepository) scanRooms(rows *sql.Rows, err error) ([]domain.Room, error) {
	if err != nil {
		return nil, apperror.Storage("list rooms", err)
	}
	defer rows.Close()

	var rooms []domain.Room
	for rows.Next() {
		var room domain.Room
		if err := rows.Scan(&room.ID, &room.HotelID, &room.RoomTypeID, &room.Description, &room.Status); err != nil {
			return nil, apperror.Storage("scan room", err)
		}
		rooms = append(rooms, room)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate rooms", err)
	}
	return rooms, nil
}

func (r *roomRepository) Update(ctx context.Context, room *domain.Room) error {
	query := `UPDATE rooms SET hotel_id=$1, room_type_id=$2, description=$3, status=$4 WHERE id=$5`
	res, err := r.db.ExecContext(ctx, query, room.HotelID, room.RoomTypeID, room.Description, room.Status, room.ID)
	if err != nil {
		return apperror.Storage("update room", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("room %d not found", room.ID)
	}
	return nil
}

func (r *roomRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM rooms WHERE id = $1`, id)
	if err != nil {
		return apperror.Storage("delete room", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("room %d not found", id)
	}
	return nil
}
