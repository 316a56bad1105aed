package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/security"
	"hotelier-backend/internal/service"
)

const testSecret = "0123456789abcdef0123456789abcdef"

// MockBookingService
type MockBookingService struct {
	mock.Mock
}

func (m *MockBookingService) CreateBooking(ctx context.Context, actor service.Actor, hotelID, roomTypeID int32, payment domain.Payment, checkIn, checkOut string, status domain.BookingStatus) (*domain.Booking, error) {
	args := m.Called(ctx, actor, hotelID, roomTypeID, payment, checkIn, checkOut, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) UpdateBooking(ctx context.Context, actor service.Actor, bookingID int32, patch service.BookingPatch) (*domain.Booking, error) {
	args := m.Called(ctx, actor, bookingID, patch)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) CancelBooking(ctx context.Context, actor service.Actor, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, actor, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) DeleteBooking(ctx context.Context, actor service.Actor, bookingID int32) error {
	args := m.Called(ctx, actor, bookingID)
	return args.Error(0)
}
func (m *MockBookingService) GetBooking(ctx context.Context, bookingID int32) (*domain.Booking, error) {
	args := m.Called(ctx, bookingID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListBookings(ctx context.Context, userID int32) ([]domain.Booking, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Booking), args.Error(1)
}
func (m *MockBookingService) CheckAvailability(ctx context.Context, roomTypeID int32, checkIn, checkOut string, excludeBookingID int32) (bool, error) {
	args := m.Called(ctx, roomTypeID, checkIn, checkOut, excludeBookingID)
	return args.Bool(0), args.Error(1)
}
func (m *MockBookingService) ComputePrice(ctx context.Context, roomTypeID int32, checkIn, checkOut string) (float64, error) {
	args := m.Called(ctx, roomTypeID, checkIn, checkOut)
	return args.Get(0).(float64), args.Error(1)
}

func newTestRouter(bookings service.BookingService) (http.Handler, security.TokenManager) {
	tokens := security.NewTokenManager(testSecret)
	router := NewRouter(Services{Bookings: bookings}, tokens)
	return router, tokens
}

func TestBookingHandler_Availability(t *testing.T) {
	svc := new(MockBookingService)
	router, _ := newTestRouter(svc)

	svc.On("CheckAvailability", mock.Anything, int32(2), "2026-09-10", "2026-09-12", int32(0)).Return(true, nil)

	req := httptest.NewRequest("GET", "/api/v1/bookings/availability?room_type_id=2&check_in_date=2026-09-10&check_out_date=2026-09-12", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body availabilityResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Available)
	assert.Equal(t, int32(2), body.RoomTypeID)
}

func TestBookingHandler_Price(t *testing.T) {
	svc := new(MockBookingService)
	router, _ := newTestRouter(svc)

	svc.On("ComputePrice", mock.Anything, int32(2), "2026-09-10", "2026-09-12").Return(220.0, nil)

	req := httptest.NewRequest("GET", "/api/v1/bookings/price?room_type_id=2&check_in_date=2026-09-10&check_out_date=2026-09-12", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var body priceResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, 220.0, body.TotalPrice)
}

func TestBookingHandler_Create(t *testing.T) {
	payload := `{
		"hotel_id": 1,
		"room_type_id": 2,
		"check_in_date": "2026-09-10",
		"check_out_date": "2026-09-12",
		"payment": {"payment_method": "VISA"}
	}`

	t.Run("Requires Auth", func(t *testing.T) {
		svc := new(MockBookingService)
		router, _ := newTestRouter(svc)

		req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(payload))
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		svc.AssertNotCalled(t, "CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Success", func(t *testing.T) {
		svc := new(MockBookingService)
		router, tokens := newTestRouter(svc)

		actor := service.Actor{ID: 7, Email: "guest@test.com"}
		svc.On("CreateBooking", mock.Anything, actor, int32(1), int32(2),
			domain.Payment{PaymentMethod: domain.PaymentMethodVisa}, "2026-09-10", "2026-09-12", domain.BookingStatus("")).
			Return(&domain.Booking{ID: 9, UserID: 7, TotalPrice: 220, Status: domain.BookingStatusPending}, nil)

		token, err := tokens.GenerateAccessToken(7, "guest@test.com")
		assert.NoError(t, err)

		req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusCreated, rec.Code)

		var body domain.Booking
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, int32(9), body.ID)
		assert.Equal(t, 220.0, body.TotalPrice)
	})

	t.Run("Conflict Maps To 400", func(t *testing.T) {
		svc := new(MockBookingService)
		router, tokens := newTestRouter(svc)

		svc.On("CreateBooking", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything).
			Return(nil, apperror.Validation("the room type is not available for the selected dates"))

		token, _ := tokens.GenerateAccessToken(7, "guest@test.com")
		req := httptest.NewRequest("POST", "/api/v1/bookings", strings.NewReader(payload))
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestBookingHandler_ErrorMapping(t *testing.T) {
	svc := new(MockBookingService)
	router, tokens := newTestRouter(svc)
	token, _ := tokens.GenerateAccessToken(7, "guest@test.com")

	t.Run("Permission Maps To 403", func(t *testing.T) {
		svc.On("DeleteBooking", mock.Anything, service.Actor{ID: 7, Email: "guest@test.com"}, int32(5)).
			Return(apperror.Permission("booking 5 does not belong to user 7")).Once()

		req := httptest.NewRequest("DELETE", "/api/v1/bookings/5", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
	})

	t.Run("NotFound Maps To 404", func(t *testing.T) {
		svc.On("GetBooking", mock.Anything, int32(404)).
			Return(nil, apperror.NotFound("booking 404 not found")).Once()

		req := httptest.NewRequest("GET", "/api/v1/bookings/404", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})

	t.Run("Storage Maps To 500 Without Detail", func(t *testing.T) {
		svc.On("GetBooking", mock.Anything, int32(5)).
			Return(nil, apperror.Storage("get booking", assert.AnError)).Once()

		req := httptest.NewRequest("GET", "/api/v1/bookings/5", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)

		var body errorResponse
		assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "internal server error", body.Error)
	})
}
