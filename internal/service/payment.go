package service

import (
	"context"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{paymentRepo: paymentRepo}
}

func (s *paymentService) GetPayment(ctx context.Context, id int32) (*domain.Payment, error) {
	return s.paymentRepo.GetByID(ctx, id)
}

func (s *paymentService) ListPayments(ctx context.Context) ([]domain.Payment, error) {
	return s.paymentRepo.List(ctx)
}

func (s *paymentService) UpdatePayment(ctx context.Context, payment *domain.Payment) error {
	if !payment.PaymentMethod.Valid() {
		return apperror.Validation("invalid payment method %q", payment.PaymentMethod)
	}
	return s.paymentRepo.Update(ctx, payment)
}
