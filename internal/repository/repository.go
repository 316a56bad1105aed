package repository

import (
	"context"
	"hotelier-backend/internal/domain"
)

type HotelRepository interface {
	Create(ctx context.Context, hotel *domain.Hotel) error
	GetByID(ctx context.Context, id int32) (*domain.Hotel, error)
	List(ctx context.Context) ([]domain.Hotel, error)
	Update(ctx context.Context, hotel *domain.Hotel) error
	Delete(ctx context.Context, id int32) error
}

type RoomTypeRepository interface {
	Create(ctx context.Context, roomType *domain.RoomType) error
	GetByID(ctx context.Context, id int32) (*domain.RoomType, error)
	List(ctx context.Context) ([]domain.RoomType, error)
	Update(ctx context.Context, roomType *domain.RoomType) error
	Delete(ctx context.Context, id int32) error
}

type RoomRepository interface {
	Create(ctx context.Context, room *domain.Room) error
	GetByID(ctx context.Context, id int32) (*domain.Room, error)
	ListByHotel(ctx context.Context, hotelID int32) ([]domain.Room, error)
	List(ctx context.Context) ([]domain.Room, error)
	Update(ctx context.Context, room *domain.Room) error
	Delete(ctx context.Context, id int32) error
}

type RateRepository interface {
	Create(ctx context.Context, rate *domain.RoomRate) error
	GetByID(ctx context.Context, id int32) (*domain.RoomRate, error)
	// ListByRoomType lists rates for one room type, or every rate when
	// roomTypeID is 0.
	ListByRoomType(ctx context.Context, roomTypeID int32) ([]domain.RoomRate, error)
	Update(ctx context.Context, rate *domain.RoomRate) error
	Delete(ctx context.Context, id int32) error

	// SumForStay sums every rate row for the room type with date in
	// [checkIn, checkOut). The bool is false when no rows matched.
	SumForStay(ctx context.Context, roomTypeID int32, checkIn, checkOut string) (float64, bool, error)
	// AverageRate averages every rate row for the room type regardless of
	// date. The bool is false when the room type has no rate rows at all.
	AverageRate(ctx context.Context, roomTypeID int32) (float64, bool, error)
}

type InventoryRepository interface {
	Create(ctx context.Context, inv *domain.Inventory) error
	GetByID(ctx context.Context, id int32) (*domain.Inventory, error)
	List(ctx context.Context) ([]domain.Inventory, error)
	Update(ctx context.Context, inv *domain.Inventory) error
	Delete(ctx context.Context, id int32) error

	TotalRoomsByType(ctx context.Context, roomTypeID int32) (int32, error)
	TotalRoomsByHotel(ctx context.Context, hotelID int32) (int32, error)
}

type PaymentRepository interface {
	GetByID(ctx context.Context, id int32) (*domain.Payment, error)
	List(ctx context.Context) ([]domain.Payment, error)
	Update(ctx context.Context, payment *domain.Payment) error
}

type BookingRepository interface {
	// CountOverlapping counts bookings for the room type whose date range
	// intersects [checkIn, checkOut), skipping excludeID when > 0.
	// Cancelled bookings are counted; see the availability notes in DESIGN.md.
	CountOverlapping(ctx context.Context, roomTypeID int32, checkIn, checkOut string, excludeID int32) (int32, error)

	// CreateWithPayment persists the booking and its owned payment in one
	// transaction, re-checking availability under a room-type lock. A date
	// conflict detected inside the transaction surfaces as a validation error.
	CreateWithPayment(ctx context.Context, booking *domain.Booking) error

	// Update rewrites the booking row; when revalidate is true the overlap
	// check is re-run inside the transaction, excluding the booking itself.
	// The owned payment row is updated in place when booking.Payment is
	// non-nil.
	Update(ctx context.Context, booking *domain.Booking, revalidate bool) error

	GetByID(ctx context.Context, id int32) (*domain.Booking, error)
	ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error)
	List(ctx context.Context) ([]domain.Booking, error)

	// DeleteWithPayment removes the booking and its owned payment in one
	// transaction.
	DeleteWithPayment(ctx context.Context, id int32) error
}
