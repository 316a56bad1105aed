package postgres

import (
	"database/sql"
	"hotelier-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.HotelRepository
	repository.RoomTypeRepository
	repository.RoomRepository
	repository.RateRepository
	repository.InventoryRepository
	repository.PaymentRepository
	repository.BookingRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                  db,
		HotelRepository:     NewHotelRepository(db),
		RoomTypeRepository:  NewRoomTypeRepository(db),
		RoomRepository:      NewRoomRepository(db),
		RateRepository:      NewRateRepository(db),
		InventoryRepository: NewInventoryRepository(db),
		PaymentRepository:   NewPaymentRepository(db),
		BookingRepository:   NewBookingRepository(db),
	}
}
