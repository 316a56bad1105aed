package service

import (
	"context"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type hotelService struct {
	hotelRepo repository.HotelRepository
}

func NewHotelService(hotelRepo repository.HotelRepository) HotelService {
	return &hotelService{hotelRepo: hotelRepo}
}

func (s *hotelService) CreateHotel(ctx context.Context, hotel *domain.Hotel) error {
	if hotel.Name == "" {
		return apperror.Validation("hotel name is required")
	}
	if hotel.Stars < 0 {
		return apperror.Validation("stars cannot be negative")
	}
	return s.hotelRepo.Create(ctx, hotel)
}

func (s *hotelService) GetHotel(ctx context.Context, id int32) (*domain.Hotel, error) {
	return s.hotelRepo.GetByID(ctx, id)
}

func (s *hotelService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	return s.hotelRepo.List(ctx)
}

func (s *hotelService) UpdateHotel(ctx context.Context, hotel *domain.Hotel) error {
	if hotel.Name == "" {
		return apperror.Validation("hotel name is required")
	}
	if hotel.Stars < 0 {
		return apperror.Validation("stars cannot be negative")
	}
	return s.hotelRepo.Update(ctx, hotel)
}

func (s *hotelService) DeleteHotel(ctx context.Context, id int32) error {
	return s.hotelRepo.Delete(ctx, id)
}
