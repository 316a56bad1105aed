package service

import (
	"context"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/logger"
	"hotelier-backend/internal/repository"
	"hotelier-backend/internal/utils"
)

type bookingService struct {
	bookingRepo  repository.BookingRepository
	rateRepo     repository.RateRepository
	hotelRepo    repository.HotelRepository
	roomTypeRepo repository.RoomTypeRepository
	emailSvc     EmailService
}

func NewBookingService(
	bookingRepo repository.BookingRepository,
	rateRepo repository.RateRepository,
	hotelRepo repository.HotelRepository,
	roomTypeRepo repository.RoomTypeRepository,
	emailSvc EmailService,
) BookingService {
	return &bookingService{
		bookingRepo:  bookingRepo,
		rateRepo:     rateRepo,
		hotelRepo:    hotelRepo,
		roomTypeRepo: roomTypeRepo,
		emailSvc:     emailSvc,
	}
}

func (s *bookingService) CreateBooking(ctx context.Context, actor Actor, hotelID, roomTypeID int32, payment domain.Payment, checkIn, checkOut string, status domain.BookingStatus) (*domain.Booking, error) {
	if _, _, err := utils.ValidateStayDates(checkIn, checkOut); err != nil {
		return nil, apperror.Validation("%v", err)
	}
	if status == "" {
		status = domain.BookingStatusPending
	}
	if !status.Valid() {
		return nil, apperror.Validation("invalid booking status %q", status)
	}
	if !payment.PaymentMethod.Valid() {
		return nil, apperror.Validation("invalid payment method %q", payment.PaymentMethod)
	}

	if _, err := s.hotelRepo.GetByID(ctx, hotelID); err != nil {
		return nil, err
	}
	if _, err := s.roomTypeRepo.GetByID(ctx, roomTypeID); err != nil {
		return nil, err
	}

	available, err := s.CheckAvailability(ctx, roomTypeID, checkIn, checkOut, 0)
	if err != nil {
		return nil, err
	}
	if !available {
		return nil, apperror.Validation("the room type is not available for the selected dates")
	}

	totalPrice, err := s.ComputePrice(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return nil, err
	}
	// The payment records the derived price; any amount the caller put on
	// the payment is ignored, same as TotalPrice.
	payment.Amount = totalPrice

	booking := &domain.Booking{
		UserID:       actor.ID,
		UserEmail:    actor.Email,
		HotelID:      hotelID,
		RoomTypeID:   roomTypeID,
		Payment:      &payment,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   totalPrice,
		Status:       status,
	}

	// The repository re-checks availability inside the transaction, so the
	// check above can race harmlessly with concurrent creates.
	if err := s.bookingRepo.CreateWithPayment(ctx, booking); err != nil {
		return nil, err
	}

	if actor.Email != "" {
		if err := s.emailSvc.SendBookingConfirmation(ctx, actor.Email, booking); err != nil {
			logger.Warn("Failed to send booking confirmation", "booking_id", booking.ID, "error", err)
		}
	}

	return booking, nil
}

func (s *bookingService) UpdateBooking(ctx context.Context, actor Actor, bookingID int32, patch BookingPatch) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}
	if booking.UserID != actor.ID {
		return nil, apperror.Permission("booking %d does not belong to user %d", bookingID, actor.ID)
	}

	datesChanged := false
	typeChanged := false

	if patch.HotelID != nil && *patch.HotelID != booking.HotelID {
		if _, err := s.hotelRepo.GetByID(ctx, *patch.HotelID); err != nil {
			return nil, err
		}
		booking.HotelID = *patch.HotelID
	}
	if patch.RoomTypeID != nil && *patch.RoomTypeID != booking.RoomTypeID {
		if _, err := s.roomTypeRepo.GetByID(ctx, *patch.RoomTypeID); err != nil {
			return nil, err
		}
		booking.RoomTypeID = *patch.RoomTypeID
		typeChanged = true
	}
	if patch.CheckInDate != nil && *patch.CheckInDate != booking.CheckInDate {
		booking.CheckInDate = *patch.CheckInDate
		datesChanged = true
	}
	if patch.CheckOutDate != nil && *patch.CheckOutDate != booking.CheckOutDate {
		booking.CheckOutDate = *patch.CheckOutDate
		datesChanged = true
	}
	if patch.Status != nil {
		if !patch.Status.Valid() {
			return nil, apperror.Validation("invalid booking status %q", *patch.Status)
		}
		booking.Status = *patch.Status
	}
	amountPatched := false
	if patch.Payment != nil {
		if patch.Payment.Amount != nil {
			booking.Payment.Amount = *patch.Payment.Amount
			amountPatched = true
		}
		if patch.Payment.PaymentMethod != nil {
			if !patch.Payment.PaymentMethod.Valid() {
				return nil, apperror.Validation("invalid payment method %q", *patch.Payment.PaymentMethod)
			}
			booking.Payment.PaymentMethod = *patch.Payment.PaymentMethod
		}
		if patch.Payment.PaymentStatus != nil {
			booking.Payment.PaymentStatus = *patch.Payment.PaymentStatus
		}
	}

	revalidate := datesChanged || typeChanged
	if revalidate {
		if _, _, err := utils.ValidateStayDates(booking.CheckInDate, booking.CheckOutDate); err != nil {
			return nil, apperror.Validation("%v", err)
		}
		available, err := s.CheckAvailability(ctx, booking.RoomTypeID, booking.CheckInDate, booking.CheckOutDate, booking.ID)
		if err != nil {
			return nil, err
		}
		if !available {
			return nil, apperror.Validation("the room type is not available for the selected dates")
		}
		totalPrice, err := s.ComputePrice(ctx, booking.RoomTypeID, booking.CheckInDate, booking.CheckOutDate)
		if err != nil {
			return nil, err
		}
		booking.TotalPrice = totalPrice
		// A reprice flows through to the payment unless the patch set an
		// amount explicitly.
		if !amountPatched {
			booking.Payment.Amount = totalPrice
		}
	}

	if patch.Payment == nil && !revalidate {
		// Leave the payment row untouched when nothing changed its amount.
		booking.Payment = nil
	}

	if err := s.bookingRepo.Update(ctx, booking, revalidate); err != nil {
		return nil, err
	}

	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *bookingService) CancelBooking(ctx context.Context, actor Actor, bookingID int32) (*domain.Booking, error) {
	cancelled := domain.BookingStatusCancelled
	booking, err := s.UpdateBooking(ctx, actor, bookingID, BookingPatch{Status: &cancelled})
	if err != nil {
		return nil, err
	}

	if actor.Email != "" {
		if err := s.emailSvc.SendBookingCancellation(ctx, actor.Email, booking); err != nil {
			logger.Warn("Failed to send booking cancellation", "booking_id", booking.ID, "error", err)
		}
	}
	return booking, nil
}

func (s *bookingService) DeleteBooking(ctx context.Context, actor Actor, bookingID int32) error {
	booking, err := s.bookingRepo.GetByID(ctx, bookingID)
	if err != nil {
		return err
	}
	if booking.UserID != actor.ID {
		return apperror.Permission("booking %d does not belong to user %d", bookingID, actor.ID)
	}
	return s.bookingRepo.DeleteWithPayment(ctx, bookingID)
}

func (s *bookingService) GetBooking(ctx context.Context, bookingID int32) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, bookingID)
}

func (s *bookingService) ListBookings(ctx context.Context, userID int32) ([]domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}

func (s *bookingService) ListAllBookings(ctx context.Context) ([]domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

// CheckAvailability counts every booking overlapping the half-open range,
// cancelled ones included. Callers pass excludeBookingID when revalidating
// an existing booking's own dates.
func (s *bookingService) CheckAvailability(ctx context.Context, roomTypeID int32, checkIn, checkOut string, excludeBookingID int32) (bool, error) {
	if _, _, err := utils.ValidateStayDates(checkIn, checkOut); err != nil {
		return false, apperror.Validation("%v", err)
	}
	count, err := s.bookingRepo.CountOverlapping(ctx, roomTypeID, checkIn, checkOut, excludeBookingID)
	if err != nil {
		return false, err
	}
	return count == 0, nil
}

func (s *bookingService) ComputePrice(ctx context.Context, roomTypeID int32, checkIn, checkOut string) (float64, error) {
	in, out, err := utils.ValidateStayDates(checkIn, checkOut)
	if err != nil {
		return 0, apperror.Validation("%v", err)
	}

	sum, _, err := s.rateRepo.SumForStay(ctx, roomTypeID, checkIn, checkOut)
	if err != nil {
		return 0, err
	}
	// A zero sum is treated like an empty one and falls through to the
	// average, matching the historical pricing rule for sparse rate tables.
	if sum > 0 {
		return sum, nil
	}

	avg, ok, err := s.rateRepo.AverageRate(ctx, roomTypeID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, nil
	}
	return float64(utils.Nights(in, out)) * avg, nil
}
