package service

import (
	"context"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
)

type roomService struct {
	roomRepo     repository.RoomRepository
	hotelRepo    repository.HotelRepository
	roomTypeRepo repository.RoomTypeRepository
}

func NewRoomService(roomRepo repository.RoomRepository, hotelRepo repository.HotelRepository, roomTypeRepo repository.RoomTypeRepository) RoomService {
	return &roomService{roomRepo: roomRepo, hotelRepo: hotelRepo, roomTypeRepo: roomTypeRepo}
}

func (s *roomService) CreateRoom(ctx context.Context, room *domain.Room) error {
	if err := s.validateRefs(ctx, room); err != nil {
		return err
	}
	if room.Status == "" {
		room.Status = domain.RoomStatusAvailable
	}
	if room.Status != domain.RoomStatusAvailable && room.Status != domain.RoomStatusOccupied {
		return apperror.Validation("invalid room status %q", room.Status)
	}
	return s.roomRepo.Create(ctx, room)
}

func (s *roomService) GetRoom(ctx context.Context, id int32) (*domain.Room, error) {
	return s.roomRepo.GetByID(ctx, id)
}

// ListRooms returns every room, or only a hotel's rooms when hotelID > 0.
func (s *roomService) ListRooms(ctx context.Context, hotelID int32) ([]domain.Room, error) {
	if hotelID > 0 {
		return s.roomRepo.ListByHotel(ctx, hotelID)
	}
	return s.roomRepo.List(ctx)
}

func (s *roomService) UpdateRoom(ctx context.Context, room *domain.Room) error {
	if err := s.validateRefs(ctx, room); err != nil {
		return err
	}
	if room.Status != domain.RoomStatusAvailable && room.Status != domain.RoomStatusOccupied {
		return apperror.Validation("invalid room status %q", room.Status)
	}
	return s.roomRepo.Update(ctx, room)
}

func (s *roomService) DeleteRoom(ctx context.Context, id int32) error {
	return s.roomRepo.Delete(ctx, id)
}

func (s *roomService) validateRefs(ctx context.Context, room *domain.Room) error {
	if _, err := s.hotelRepo.GetByID(ctx, room.HotelID); err != nil {
		return err
	}
	if _, err := s.roomTypeRepo.GetByID(ctx, room.RoomTypeID); err != nil {
		return err
	}
	return nil
}
