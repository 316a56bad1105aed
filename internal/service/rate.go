package service

import (
	"context"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
	"hotelier-backend/internal/utils"
)

type rateService struct {
	rateRepo     repository.RateRepository
	roomTypeRepo repository.RoomTypeRepository
}

func NewRateService(rateRepo repository.RateRepository, roomTypeRepo repository.RoomTypeRepository) RateService {
	return &rateService{rateRepo: rateRepo, roomTypeRepo: roomTypeRepo}
}

func (s *rateService) CreateRate(ctx context.Context, rate *domain.RoomRate) error {
	if err := s.validate(ctx, rate); err != nil {
		return err
	}
	return s.rateRepo.Create(ctx, rate)
}

func (s *rateService) GetRate(ctx context.Context, id int32) (*domain.RoomRate, error) {
	return s.rateRepo.GetByID(ctx, id)
}

func (s *rateService) ListRates(ctx context.Context, roomTypeID int32) ([]domain.RoomRate, error) {
	return s.rateRepo.ListByRoomType(ctx, roomTypeID)
}

func (s *rateService) UpdateRate(ctx context.Context, rate *domain.RoomRate) error {
	if err := s.validate(ctx, rate); err != nil {
		return err
	}
	return s.rateRepo.Update(ctx, rate)
}

func (s *rateService) DeleteRate(ctx context.Context, id int32) error {
	return s.rateRepo.Delete(ctx, id)
}

func (s *rateService) validate(ctx context.Context, rate *domain.RoomRate) error {
	if rate.Rate < 0 {
		return apperror.Validation("rate cannot be negative")
	}
	if _, err := utils.ParseDate(rate.Date); err != nil {
		return apperror.Validation("%v", err)
	}
	if _, err := s.roomTypeRepo.GetByID(ctx, rate.RoomTypeID); err != nil {
		return err
	}
	return nil
}
