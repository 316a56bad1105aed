package service

import (
	"context"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type roomTypeService struct {
	roomTypeRepo repository.RoomTypeRepository
}

func NewRoomTypeService(roomTypeRepo repository.RoomTypeRepository) RoomTypeService {
	return &roomTypeService{roomTypeRepo: roomTypeRepo}
}

func (s *roomTypeService) CreateRoomType(ctx context.Context, rt *domain.RoomType) error {
	if rt.Name == "" {
		return apperror.Validation("room type name is required")
	}
	if rt.Capacity <= 0 {
		return apperror.Validation("capacity must be a positive integer")
	}
	return s.roomTypeRepo.Create(ctx, rt)
}

func (s *roomTypeService) GetRoomType(ctx context.Context, id int32) (*domain.RoomType, error) {
	return s.roomTypeRepo.GetByID(ctx, id)
}

func (s *roomTypeService) ListRoomTypes(ctx context.Context) ([]domain.RoomType, error) {
	return s.roomTypeRepo.List(ctx)
}

// UpdateRoomType only touches descriptive fields; capacity stays fixed once
// the type exists because bookings may already reference it.
func (s *roomTypeService) UpdateRoomType(ctx context.Context, rt *domain.RoomType) error {
	if rt.Name == "" {
		return apperror.Validation("room type name is required")
	}
	return s.roomTypeRepo.Update(ctx, rt)
}

func (s *roomTypeService) DeleteRoomType(ctx context.Context, id int32) error {
	return s.roomTypeRepo.Delete(ctx, id)
}
