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

type rateRepository struct {
	db *sql.DB
}

func NewRateRepository(db *sql.DB) repository.RateRepository {
	return &rateRepository{db: db}
}

func (r *rateRepository) Create(ctx context.Context, rate *domain.RoomRate) error {
	query := `INSERT INTO room_rates (room_type_id, rate, date) VALUES ($1, $2, $3) RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, rate.RoomTypeID, rate.Rate, rate.Date).Scan(&rate.ID); err != nil {
		return apperror.Storage("create room rate", err)
	}
	return nil
}

func (r *rateRepository) GetByID(ctx context.Context, id int32) (*domain.RoomRate, error) {
	rate := &domain.RoomRate{}
	var date time.Time
	query := `SELECT id, room_type_id, rate, date FROM room_rates WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&rate.ID, &rate.RoomTypeID, &rate.Rate, &date)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("room rate %d not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("get room rate", err)
	}
	rate.Date = date.Format("2006-01-02")
	return rate, nil
}

func (r *rateRepository) ListByRoomType(ctx context.Context, roomTypeID int32) ([]domain.RoomRate, error) {
	query := `SELECT id, room_type_id, rate, date FROM room_rates WHERE ($1 = 0 OR room_type_id = $1) ORDER BY date`
	rows, err := r.db.QueryContext(ctx, query, roomTypeID)
	if err != nil {
		return nil, apperror.Storage("list room rates", err)
	}
	defer rows.Close()

	var rates []domain.RoomRate
	for rows.Next() {
		var rate domain.RoomRate
		var date time.Time
		if err := rows.Scan(&rate.ID, &rate.RoomTypeID, &rate.Rate, &date); err != nil {
			return nil, apperror.Storage("scan room rate", err)
		}
		rate.Date = date.Format("2006-01-02")
		rates = append(rates, rate)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate room rates", err)
	}
	return rates, nil
}

func (r *rateRepository) Update(ctx context.Context, rate *domain.RoomRate) error {
	query := `UPDATE room_rates SET room_type_id=$1, rate=$2, date=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, rate.RoomTypeID, rate.Rate, rate.Date, rate.ID)
	if err != nil {
		return apperror.Storage("update room rate", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("room rate %d not found", rate.ID)
	}
	return nil
}

func (r *rateRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM room_rates WHERE id = $1`, id)
	if err != nil {
		return apperror.Storage("delete room rate", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("room rate %d not found", id)
	}
	return nil
}

func (r *rateRepository) SumForStay(ctx context.Context, roomTypeID int32, checkIn, checkOut string) (float64, bool, error) {
	var sum sql.NullFloat64
	query := `SELECT SUM(rate) FROM room_rates WHERE room_type_id = $1 AND date >= $2 AND date < $3`
	if err := r.db.QueryRowContext(ctx, query, roomTypeID, checkIn, checkOut).Scan(&sum); err != nil {
		return 0, false, apperror.Storage("sum room rates", err)
	}
	if !sum.Valid {
		return 0, false, nil
	}
	return sum.Float64, true, nil
}

func (r *rateRepository) AverageRate(ctx context.Context, roomTypeID int32) (float64, bool, error) {
	var avg sql.NullFloat64
	query := `SELECT AVG(rate) FROM room_rates WHERE room_type_id = $1`
	if err := r.db.QueryRowContext(ctx, query, roomTypeID).Scan(&avg); err != nil {
		return 0, false, apperror.Storage("average room rate", err)
	}
	if !avg.Valid {
		return 0, false, nil
	}
	return avg.Float64, true, nil
}
