package service

import (
	"context"
	"hotelier-backend/internal/domain"
)

// Actor is the identity the request-handling layer resolved for the current
// caller. The core never authenticates; it only enforces ownership.
type Actor struct {
	ID    int32
	Email string
}

// BookingPatch carries the updatable booking fields; nil means "leave as is".
type BookingPatch struct {
	HotelID      *int32
	RoomTypeID   *int32
	CheckInDate  *string
	CheckOutDate *string
	Status       *domain.BookingStatus
	Payment      *PaymentPatch
}

// PaymentPatch updates the booking's owned payment in place.
type PaymentPatch struct {
	Amount        *float64
	PaymentMethod *domain.PaymentMethod
	PaymentStatus *string
}

type BookingService interface {
	CreateBooking(ctx context.Context, actor Actor, hotelID, roomTypeID int32, payment domain.Payment, checkIn, checkOut string, status domain.BookingStatus) (*domain.Booking, error)
	UpdateBooking(ctx context.Context, actor Actor, bookingID int32, patch BookingPatch) (*domain.Booking, error)
	CancelBooking(ctx context.Context, actor Actor, bookingID int32) (*domain.Booking, error)
	DeleteBooking(ctx context.Context, actor Actor, bookingID int32) error
	GetBooking(ctx context.Context, bookingID int32) (*domain.Booking, error)
	ListBookings(ctx context.Context, userID int32) ([]domain.Booking, error)
	ListAllBookings(ctx context.Context) ([]domain.Booking, error)

	// CheckAvailability reports whether the room type is free of conflicting
	// bookings over [checkIn, checkOut), optionally ignoring one booking id.
	CheckAvailability(ctx context.Context, roomTypeID int32, checkIn, checkOut string, excludeBookingID int32) (bool, error)

	// ComputePrice prices a stay: the per-date rate sum when positive,
	// otherwise nights times the room type's all-time average rate,
	// otherwise 0. Pure read.
	ComputePrice(ctx context.Context, roomTypeID int32, checkIn, checkOut string) (float64, error)
}

type HotelService interface {
	CreateHotel(ctx context.Context, hotel *domain.Hotel) error
	GetHotel(ctx context.Context, id int32) (*domain.Hotel, error)
	ListHotels(ctx context.Context) ([]domain.Hotel, error)
	UpdateHotel(ctx context.Context, hotel *domain.Hotel) error
	DeleteHotel(ctx context.Context, id int32) error
}

type RoomTypeService interface {
	CreateRoomType(ctx context.Context, roomType *domain.RoomType) error
	GetRoomType(ctx context.Context, id int32) (*domain.RoomType, error)
	ListRoomTypes(ctx context.Context) ([]domain.RoomType, error)
	UpdateRoomType(ctx context.Context, roomType *domain.RoomType) error
	DeleteRoomType(ctx context.Context, id int32) error
}

type RoomService interface {
	CreateRoom(ctx context.Context, room *domain.Room) error
	GetRoom(ctx context.Context, id int32) (*domain.Room, error)
	ListRooms(ctx context.Context, hotelID int32) ([]domain.Room, error)
	UpdateRoom(ctx context.Context, room *domain.Room) error
	DeleteRoom(ctx context.Context, id int32) error
}

type RateService interface {
	CreateRate(ctx context.Context, rate *domain.RoomRate) error
	GetRate(ctx context.Context, id int32) (*domain.RoomRate, error)
	ListRates(ctx context.Context, roomTypeID int32) ([]domain.RoomRate, error)
	UpdateRate(ctx context.Context, rate *domain.RoomRate) error
	DeleteRate(ctx context.Context, id int32) error
}

type InventoryService interface {
	CreateInventory(ctx context.Context, inv *domain.Inventory) error
	GetInventory(ctx context.Context, id int32) (*domain.Inventory, error)
	ListInventories(ctx context.Context) ([]domain.Inventory, error)
	UpdateInventory(ctx context.Context, inv *domain.Inventory) error
	DeleteInventory(ctx context.Context, id int32) error
	TotalRoomsByType(ctx context.Context, roomTypeID int32) (int32, error)
	TotalRoomsByHotel(ctx context.Context, hotelID int32) (int32, error)
}

type PaymentService interface {
	GetPayment(ctx context.Context, id int32) (*domain.Payment, error)
	ListPayments(ctx context.Context) ([]domain.Payment, error)
	UpdatePayment(ctx context.Context, payment *domain.Payment) error
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, toEmail string, booking *domain.Booking) error
	SendBookingCancellation(ctx context.Context, toEmail string, booking *domain.Booking) error
	SendCheckInReminder(ctx context.Context, toEmail string, booking *domain.Booking) error
}
