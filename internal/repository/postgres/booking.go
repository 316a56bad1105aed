package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/lib/pq"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

const msgDatesUnavailable = "the room type is not available for the selected dates"

type bookingRepository struct {
	db *sql.DB
}

func NewBookingRepository(db *sql.DB) repository.BookingRepository {
	return &bookingRepository{db: db}
}

const overlapQuery = `SELECT COUNT(*) FROM bookings
	WHERE room_type_id = $1 AND check_in_date < $3 AND check_out_date > $2
	AND ($4 = 0 OR id <> $4)`

func (r *bookingRepository) CountOverlapping(ctx context.Context, roomTypeID int32, checkIn, checkOut string, excludeID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, overlapQuery, roomTypeID, checkIn, checkOut, excludeID).Scan(&count)
	if err != nil {
		return 0, apperror.Storage("count overlapping bookings", err)
	}
	return count, nil
}

// CreateWithPayment takes an advisory transaction lock on the room type so
// two concurrent creates for the same type serialize, then re-runs the
// overlap check and inserts payment + booking. The schema's exclusion
// constraint on (room_type_id, daterange) backstops anything that slips
// through; its violation is reported the same way as a failed re-check.
func (r *bookingRepository) CreateWithPayment(ctx context.Context, b *domain.Booking) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Storage("begin booking transaction", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(b.RoomTypeID)); err != nil {
		return apperror.Storage("lock room type", err)
	}

	var count int32
	if err := tx.QueryRowContext(ctx, overlapQuery, b.RoomTypeID, b.CheckInDate, b.CheckOutDate, int32(0)).Scan(&count); err != nil {
		return apperror.Storage("re-check availability", err)
	}
	if count > 0 {
		return apperror.Validation(msgDatesUnavailable)
	}

	var paymentDate time.Time
	err = tx.QueryRowContext(ctx,
		`INSERT INTO payments (amount, payment_date, payment_method, payment_status)
		 VALUES ($1, $2, $3, $4) RETURNING id, payment_date`,
		b.Payment.Amount, time.Now(), b.Payment.PaymentMethod, b.Payment.PaymentStatus,
	).Scan(&b.Payment.ID, &paymentDate)
	if err != nil {
		return apperror.Storage("create payment", err)
	}
	b.Payment.PaymentDate = paymentDate.Format(time.RFC3339)
	b.PaymentID = b.Payment.ID

	var createdOn time.Time
	err = tx.QueryRowContext(ctx,
		`INSERT INTO bookings (user_id, user_email, hotel_id, room_type_id, payment_id, check_in_date, check_out_date, total_price, status, created_on)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10) RETURNING id, created_on`,
		b.UserID, b.UserEmail, b.HotelID, b.RoomTypeID, b.PaymentID, b.CheckInDate, b.CheckOutDate, b.TotalPrice, b.Status, time.Now(),
	).Scan(&b.ID, &createdOn)
	if err != nil {
		return mapBookingWriteError(err)
	}
	b.CreatedOn = createdOn.Format(time.RFC3339)

	if err := tx.Commit(); err != nil {
		return mapBookingWriteError(err)
	}
	return nil
}

func (r *bookingRepository) Update(ctx context.Context, b *domain.Booking, revalidate bool) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Storage("begin booking transaction", err)
	}
	defer tx.Rollback()

	if revalidate {
		if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock($1)`, int64(b.RoomTypeID)); err != nil {
			return apperror.Storage("lock room type", err)
		}
		var count int32
		if err := tx.QueryRowContext(ctx, overlapQuery, b.RoomTypeID, b.CheckInDate, b.CheckOutDate, b.ID).Scan(&count); err != nil {
			return apperror.Storage("re-check availability", err)
		}
		if count > 0 {
			return apperror.Validation(msgDatesUnavailable)
		}
	}

	res, err := tx.ExecContext(ctx,
		`UPDATE bookings SET hotel_id=$1, room_type_id=$2, check_in_date=$3, check_out_date=$4, total_price=$5, status=$6 WHERE id=$7`,
		b.HotelID, b.RoomTypeID, b.CheckInDate, b.CheckOutDate, b.TotalPrice, b.Status, b.ID,
	)
	if err != nil {
		return mapBookingWriteError(err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("booking %d not found", b.ID)
	}

	if b.Payment != nil {
		_, err = tx.ExecContext(ctx,
			`UPDATE payments SET amount=$1, payment_method=$2, payment_status=$3 WHERE id=$4`,
			b.Payment.Amount, b.Payment.PaymentMethod, b.Payment.PaymentStatus, b.PaymentID,
		)
		if err != nil {
			return apperror.Storage("update payment", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return mapBookingWriteError(err)
	}
	return nil
}

const bookingSelect = `SELECT b.id, b.user_id, b.user_email, b.hotel_id, b.room_type_id, b.payment_id,
	b.check_in_date, b.check_out_date, b.total_price, b.status, b.created_on,
	p.amount, p.payment_date, p.payment_method, p.payment_status
	FROM bookings b JOIN payments p ON p.id = b.payment_id`

func (r *bookingRepository) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	row := r.db.QueryRowContext(ctx, bookingSelect+` WHERE b.id = $1`, id)
	b, err := scanBooking(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("booking %d not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("get booking", err)
	}
	return b, nil
}

func (r *bookingRepository) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, bookingSelect+` WHERE b.user_id = $1 ORDER BY b.created_on DESC`, userID)
	return collectBookings(rows, err)
}

func (r *bookingRepository) List(ctx context.Context) ([]domain.Booking, error) {
	rows, err := r.db.QueryContext(ctx, bookingSelect+` ORDER BY b.created_on DESC`)
	return collectBookings(rows, err)
}

func (r *bookingRepository) DeleteWithPayment(ctx context.Context, id int32) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return apperror.Storage("begin booking transaction", err)
	}
	defer tx.Rollback()

	var paymentID int32
	err = tx.QueryRowContext(ctx, `DELETE FROM bookings WHERE id = $1 RETURNING payment_id`, id).Scan(&paymentID)
	if errors.Is(err, sql.ErrNoRows) {
		return apperror.NotFound("booking %d not found", id)
	}
	if err != nil {
		return apperror.Storage("delete booking", err)
	}

	// The booking exclusively owns its payment; no implicit cascade here.
	if _, err := tx.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, paymentID); err != nil {
		return apperror.Storage("delete payment", err)
	}

	if err := tx.Commit(); err != nil {
		return apperror.Storage("commit booking delete", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	b := &domain.Booking{Payment: &domain.Payment{}}
	var checkIn, checkOut, createdOn, paymentDate time.Time
	err := row.Scan(
		&b.ID, &b.UserID, &b.UserEmail, &b.HotelID, &b.RoomTypeID, &b.PaymentID,
		&checkIn, &checkOut, &b.TotalPrice, &b.Status, &createdOn,
		&b.Payment.Amount, &paymentDate, &b.Payment.PaymentMethod, &b.Payment.PaymentStatus,
	)
	if err != nil {
		return nil, err
	}
	b.Payment.ID = b.PaymentID
	b.CheckInDate = checkIn.Format("2006-01-02")
	b.CheckOutDate = checkOut.Format("2006-01-02")
	b.CreatedOn = createdOn.Format(time.RFC3339)
	b.Payment.PaymentDate = paymentDate.Format(time.RFC3339)
	return b, nil
}

func collectBookings(rows *sql.Rows, err error) ([]domain.Booking, error) {
	if err != nil {
		return nil, apperror.Storage("list bookings", err)
	}
	defer rows.Close()

	var bookings []domain.Booking
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, apperror.Storage("scan booking", err)
		}
		bookings = append(bookings, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate bookings", err)
	}
	return bookings, nil
}

// mapBookingWriteError turns the schema's overlap backstop (exclusion
// constraint, 23P01) and duplicate keys (23505) into the same validation
// error the in-transaction re-check raises; everything else stays a
// storage fault.
func mapBookingWriteError(err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23P01", "23505":
			return apperror.Validation(msgDatesUnavailable)
		}
	}
	return apperror.Storage("write booking", err)
}
