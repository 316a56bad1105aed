package service

import (
	"context"

	"hotelier-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockBookingRepo
type MockBookingRepo struct {
	mock.Mock
}

func (m *MockBookingRepo) CountOverlapping(ctx context.Context, roomTypeID int32, checkIn, checkOut string, excludeID int32) (int32, error) {
	args := m.Called(ctx, roomTypeID, checkIn, checkOut, excludeID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockBookingRepo) CreateWithPayment(ctx context.Context, booking *domain.Booking) error {
	args := m.Called(ctx, booking)
	return args.Error(0)
}
func (m *MockBookingRepo) Update(ctx context.Context, booking *domain.Booking, revalidate bool) error {
	args := m.Called(ctx, booking, revalidate)
	return args.Error(0)
}
func (m *MockBookingRepo) GetByID(ctx context.Context, id int32) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) ListByUser(ctx context.Context, userID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) List(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingRepo) DeleteWithPayment(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRateRepo
type MockRateRepo struct {
	mock.Mock
}

func (m *MockRateRepo) Create(ctx context.Context, rate *domain.RoomRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
func (m *MockRateRepo) GetByID(ctx context.Context, id int32) (*domain.RoomRate, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomRate), args.Error(1)
}
func (m *MockRateRepo) ListByRoomType(ctx context.Context, roomTypeID int32) ([]domain.RoomRate, error) {
	args := m.Called(ctx, roomTypeID)
	return args.Get(0).([]domain.RoomRate), args.Error(1)
}
func (m *MockRateRepo) Update(ctx context.Context, rate *domain.RoomRate) error {
	args := m.Called(ctx, rate)
	return args.Error(0)
}
func (m *MockRateRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockRateRepo) SumForStay(ctx context.Context, roomTypeID int32, checkIn, checkOut string) (float64, bool, error) {
	args := m.Called(ctx, roomTypeID, checkIn, checkOut)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}
func (m *MockRateRepo) AverageRate(ctx context.Context, roomTypeID int32) (float64, bool, error) {
	args := m.Called(ctx, roomTypeID)
	return args.Get(0).(float64), args.Bool(1), args.Error(2)
}

// MockHotelRepo
type MockHotelRepo struct {
	mock.Mock
}

func (m *MockHotelRepo) Create(ctx context.Context, hotel *domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}
func (m *MockHotelRepo) GetByID(ctx context.Context, id int32) (*domain.Hotel, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Hotel), args.Error(1)
}
func (m *MockHotelRepo) List(ctx context.Context) ([]domain.Hotel, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Hotel), args.Error(1)
}
func (m *MockHotelRepo) Update(ctx context.Context, hotel *domain.Hotel) error {
	args := m.Called(ctx, hotel)
	return args.Error(0)
}
func (m *MockHotelRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoomTypeRepo
type MockRoomTypeRepo struct {
	mock.Mock
}

func (m *MockRoomTypeRepo) Create(ctx context.Context, roomType *domain.RoomType) error {
	args := m.Called(ctx, roomType)
	return args.Error(0)
}
func (m *MockRoomTypeRepo) GetByID(ctx context.Context, id int32) (*domain.RoomType, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RoomType), args.Error(1)
}
func (m *MockRoomTypeRepo) List(ctx context.Context) ([]domain.RoomType, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.RoomType), args.Error(1)
}
func (m *MockRoomTypeRepo) Update(ctx context.Context, roomType *domain.RoomType) error {
	args := m.Called(ctx, roomType)
	return args.Error(0)
}
func (m *MockRoomTypeRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockRoomRepo
type MockRoomRepo struct {
	mock.Mock
}

func (m *MockRoomRepo) Create(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) GetByID(ctx context.Context, id int32) (*domain.Room, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Room), args.Error(1)
}
func (m *MockRoomRepo) ListByHotel(ctx context.Context, hotelID int32) ([]domain.Room, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) List(ctx context.Context) ([]domain.Room, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Room), args.Error(1)
}
func (m *MockRoomRepo) Update(ctx context.Context, room *domain.Room) error {
	args := m.Called(ctx, room)
	return args.Error(0)
}
func (m *MockRoomRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

// MockInventoryRepo
type MockInventoryRepo struct {
	mock.Mock
}

func (m *MockInventoryRepo) Create(ctx context.Context, inv *domain.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInventoryRepo) GetByID(ctx context.Context, id int32) (*domain.Inventory, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Inventory), args.Error(1)
}
func (m *MockInventoryRepo) List(ctx context.Context) ([]domain.Inventory, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Inventory), args.Error(1)
}
func (m *MockInventoryRepo) Update(ctx context.Context, inv *domain.Inventory) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}
func (m *MockInventoryRepo) Delete(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockInventoryRepo) TotalRoomsByType(ctx context.Context, roomTypeID int32) (int32, error) {
	args := m.Called(ctx, roomTypeID)
	return args.Get(0).(int32), args.Error(1)
}
func (m *MockInventoryRepo) TotalRoomsByHotel(ctx context.Context, hotelID int32) (int32, error) {
	args := m.Called(ctx, hotelID)
	return args.Get(0).(int32), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendBookingConfirmation(ctx context.Context, toEmail string, booking *domain.Booking) error {
	args := m.Called(ctx, toEmail, booking)
	return args.Error(0)
}
func (m *MockEmailService) SendBookingCancellation(ctx context.Context, toEmail string, booking *domain.Booking) error {
	args := m.Called(ctx, toEmail, booking)
	return args.Error(0)
}
func (m *MockEmailService) SendCheckInReminder(ctx context.Context, toEmail string, booking *domain.Booking) error {
	args := m.Called(ctx, toEmail, booking)
	return args.Error(0)
}
