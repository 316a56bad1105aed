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

type hotelRepository struct {
	db *sql.DB
}

func NewHotelRepository(db *sql.DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

func (r *hotelRepository) Create(ctx context.Context, h *domain.Hotel) error {
	query := `INSERT INTO hotels (name, address, email, stars, check_in_time, check_out_time, created_on)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING id, created_on`
	var createdOn time.Time
	err := r.db.QueryRowContext(ctx, query, h.Name, h.Address, h.Email, h.Stars, h.CheckInTime, h.CheckOutTime, time.Now()).Scan(&h.ID, &createdOn)
	if err != nil {
		return apperror.Storage("create hotel", err)
	}
	h.CreatedOn = createdOn.Format("2006-01-02")
	return nil
}

func (r *hotelRepository) GetByID(ctx context.Context, id int32) (*domain.Hotel, error) {
	h := &domain.Hotel{}
	var createdOn time.Time
	query := `SELECT id, name, address, email, stars, COALESCE(check_in_time, ''), COALESCE(check_out_time, ''), created_on FROM hotels WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&h.ID, &h.Name, &h.Address, &h.Email, &h.Stars, &h.CheckInTime, &h.CheckOutTime, &createdOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("hotel %d not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("get hotel", err)
	}
	h.CreatedOn = createdOn.Format("2006-01-02")
	return h, nil
}

func (r *hotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	query := `SELECT id, name, address, email, stars, COALESCE(check_in_time, ''), COALESCE(check_out_time, ''), created_on FROM hotels ORDER BY id`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperror.Storage("list hotels", err)
	}
	defer rows.Close()

	var hotels []domain.Hotel
	for rows.Next() {
		var h domain.Hotel
		var createdOn time.Time
		if err := rows.Scan(&h.ID, &h.Name, &h.Address, &h.Email, &h.Stars, &h.CheckInTime, &h.CheckOutTime, &createdOn); err != nil {
			return nil, apperror.Storage("scan hotel", err)
		}
		h.CreatedOn = createdOn.Format("2006-01-02")
		hotels = append(hotels, h)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate hotels", err)
	}
	return hotels, nil
}

func (r *hotelRepository) Update(ctx context.Context, h *domain.Hotel) error {
	query := `UPDATE hotels SET name=$1, address=$2, email=$3, stars=$4, check_in_time=$5, check_out_time=$6 WHERE id=$7`
	res, err := r.db.ExecContext(ctx, query, h.Name, h.Address, h.Email, h.Stars, h.CheckInTime, h.CheckOutTime, h.ID)
	if err != nil {
		return apperror.Storage("update hotel", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("hotel %d not found", h.ID)
	}
	return nil
}

func (r *hotelRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM hotels WHERE id = $1`, id)
	if err != nil {
		return apperror.Storage("delete hotel", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("hotel %d not found", id)
	}
	return nil
}
