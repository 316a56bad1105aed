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

// Payments are created and deleted through BookingRepository, which owns the
// booking/payment pair. This repository only reads and patches existing rows.
type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) GetByID(ctx context.Context, id int32) (*domain.Payment, error) {
	p := &domain.Payment{}
	var paymentDate time.Time
	query := `SELECT id, amount, payment_date, payment_method, payment_status FROM payments WHERE id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&p.ID, &p.Amount, &paymentDate, &p.PaymentMethod, &p.PaymentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperror.NotFound("payment %d not found", id)
	}
	if err != nil {
		return nil, apperror.Storage("get payment", err)
	}
	p.PaymentDate = paymentDate.Format(time.RFC3339)
	return p, nil
}

func (r *paymentRepository) List(ctx context.Context) ([]domain.Payment, error) {
	query := `SELECT id, amount, payment_date, payment_method, payment_status FROM payments ORDER BY payment_date DESC`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, apperror.Storage("list payments", err)
	}
	defer rows.Close()

	var payments []domain.Payment
	for rows.Next() {
		var p domain.Payment
		var paymentDate time.Time
		if err := rows.Scan(&p.ID, &p.Amount, &paymentDate, &p.PaymentMethod, &p.PaymentStatus); err != nil {
			return nil, apperror.Storage("scan payment", err)
		}
		p.PaymentDate = paymentDate.Format(time.RFC3339)
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, apperror.Storage("iterate payments", err)
	}
	return payments, nil
}

func (r *paymentRepository) Update(ctx context.Context, p *domain.Payment) error {
	query := `UPDATE payments SET amount=$1, payment_method=$2, payment_status=$3 WHERE id=$4`
	res, err := r.db.ExecContext(ctx, query, p.Amount, p.PaymentMethod, p.PaymentStatus, p.ID)
	if err != nil {
		return apperror.Storage("update payment", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return apperror.NotFound("payment %d not found", p.ID)
	}
	return nil
}
