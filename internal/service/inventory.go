package service

import (
	"context"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/repository"
	"hotelier-backend/internal/utils"
)

type inventoryService struct {
	inventoryRepo repository.InventoryRepository
	hotelRepo     repository.HotelRepository
	roomTypeRepo  repository.RoomTypeRepository
}

func NewInventoryService(inventoryRepo repository.InventoryRepository, hotelRepo repository.HotelRepository, roomTypeRepo repository.RoomTypeRepository) InventoryService {
	return &inventoryService{inventoryRepo: inventoryRepo, hotelRepo: hotelRepo, roomTypeRepo: roomTypeRepo}
}

func (s *inventoryService) CreateInventory(ctx context.Context, inv *domain.Inventory) error {
	if err := s.validate(ctx, inv); err != nil {
		return err
	}
	return s.inventoryRepo.Create(ctx, inv)
}

func (s *inventoryService) GetInventory(ctx context.Context, id int32) (*domain.Inventory, error) {
	return s.inventoryRepo.GetByID(ctx, id)
}

func (s *inventoryService) ListInventories(ctx context.Context) ([]domain.Inventory, error) {
	return s.inventoryRepo.List(ctx)
}

func (s *inventoryService) UpdateInventory(ctx context.Context, inv *domain.Inventory) error {
	if err := s.validate(ctx, inv); err != nil {
		return err
	}
	return s.inventoryRepo.Update(ctx, inv)
}

func (s *inventoryService) DeleteInventory(ctx context.Context, id int32) error {
	return s.inventoryRepo.Delete(ctx, id)
}

func (s *inventoryService) TotalRoomsByType(ctx context.Context, roomTypeID int32) (int32, error) {
	return s.inventoryRepo.TotalRoomsByType(ctx, roomTypeID)
}

func (s *inventoryService) TotalRoomsByHotel(ctx context.Context, hotelID int32) (int32, error) {
	return s.inventoryRepo.TotalRoomsByHotel(ctx, hotelID)
}

func (s *inventoryService) validate(ctx context.Context, inv *domain.Inventory) error {
	if inv.AvailableRooms < 0 {
		return apperror.Validation("available rooms cannot be negative")
	}
	if _, err := utils.ParseDate(inv.Date); err != nil {
		return apperror.Validation("%v", err)
	}
	if _, err := s.hotelRepo.GetByID(ctx, inv.HotelID); err != nil {
		return err
	}
	if _, err := s.roomTypeRepo.GetByID(ctx, inv.RoomTypeID); err != nil {
		return err
	}
	return nil
}
