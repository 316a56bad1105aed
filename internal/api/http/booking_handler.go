package http

import (
	"net/http"
	"strconv"

	"hotelier-backend/internal/apperror"
	"hotelier-backend/internal/domain"
	"hotelier-backend/internal/service"

	"github.com/gorilla/mux"
)

// BookingHandler exposes the booking lifecycle over REST
type BookingHandler struct {
	bookings service.BookingService
}

func NewBookingHandler(bookings service.BookingService) *BookingHandler {
	return &BookingHandler{bookings: bookings}
}

type createBookingRequest struct {
	HotelID      int32                `json:"hotel_id"`
	RoomTypeID   int32                `json:"room_type_id"`
	CheckInDate  string               `json:"check_in_date"`
	CheckOutDate string               `json:"check_out_date"`
	Status       domain.BookingStatus `json:"status,omitempty"`
	Payment      struct {
		PaymentMethod domain.PaymentMethod `json:"payment_method"`
		PaymentStatus string               `json:"payment_status,omitempty"`
	} `json:"payment"`
}

type updateBookingRequest struct {
	HotelID      *int32                `json:"hotel_id,omitempty"`
	RoomTypeID   *int32                `json:"room_type_id,omitempty"`
	CheckInDate  *string               `json:"check_in_date,omitempty"`
	CheckOutDate *string               `json:"check_out_date,omitempty"`
	Status       *domain.BookingStatus `json:"status,omitempty"`
	Payment      *struct {
		Amount        *float64              `json:"amount,omitempty"`
		PaymentMethod *domain.PaymentMethod `json:"payment_method,omitempty"`
		PaymentStatus *string               `json:"payment_status,omitempty"`
	} `json:"payment,omitempty"`
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	var req createBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment := domain.Payment{
		PaymentMethod: req.Payment.PaymentMethod,
		PaymentStatus: req.Payment.PaymentStatus,
	}

	booking, err := h.bookings.CreateBooking(r.Context(), actor, req.HotelID, req.RoomTypeID, payment, req.CheckInDate, req.CheckOutDate, req.Status)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, booking)
}

func (h *BookingHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookings.GetBooking(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

// List returns the caller's own bookings, newest first
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	bookings, err := h.bookings.ListBookings(r.Context(), actor.ID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

// ListAll returns every booking, newest first
func (h *BookingHandler) ListAll(w http.ResponseWriter, r *http.Request) {
	bookings, err := h.bookings.ListAllBookings(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, bookings)
}

func (h *BookingHandler) Update(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	var req updateBookingRequest
	if err := decodeBody(r, &req); err != nil {
		writeError(w, err)
		return
	}

	patch := service.BookingPatch{
		HotelID:      req.HotelID,
		RoomTypeID:   req.RoomTypeID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		Status:       req.Status,
	}
	if req.Payment != nil {
		patch.Payment = &service.PaymentPatch{
			Amount:        req.Payment.Amount,
			PaymentMethod: req.Payment.PaymentMethod,
			PaymentStatus: req.Payment.PaymentStatus,
		}
	}

	booking, err := h.bookings.UpdateBooking(r.Context(), actor, id, patch)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	booking, err := h.bookings.CancelBooking(r.Context(), actor, id)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, booking)
}

func (h *BookingHandler) Delete(w http.ResponseWriter, r *http.Request) {
	actor, ok := ActorFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "authentication required"})
		return
	}

	id, err := pathID(r)
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.bookings.DeleteBooking(r.Context(), actor, id); err != nil {
		writeError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

type availabilityResponse struct {
	RoomTypeID   int32  `json:"room_type_id"`
	CheckInDate  string `json:"check_in_date"`
	CheckOutDate string `json:"check_out_date"`
	Available    bool   `json:"available"`
}

// Availability reports whether a room type is free over a date range
func (h *BookingHandler) Availability(w http.ResponseWriter, r *http.Request) {
	roomTypeID, err := queryID(r, "room_type_id")
	if err != nil {
		writeError(w, err)
		return
	}
	checkIn := r.URL.Query().Get("check_in_date")
	checkOut := r.URL.Query().Get("check_out_date")

	var excludeID int32
	if raw := r.URL.Query().Get("exclude_booking_id"); raw != "" {
		excludeID, err = parseID(raw)
		if err != nil {
			writeError(w, err)
			return
		}
	}

	available, err := h.bookings.CheckAvailability(r.Context(), roomTypeID, checkIn, checkOut, excludeID)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, availabilityResponse{
		RoomTypeID:   roomTypeID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		Available:    available,
	})
}

type priceResponse struct {
	RoomTypeID   int32   `json:"room_type_id"`
	CheckInDate  string  `json:"check_in_date"`
	CheckOutDate string  `json:"check_out_date"`
	TotalPrice   float64 `json:"total_price"`
}

// Price quotes a stay without creating anything
func (h *BookingHandler) Price(w http.ResponseWriter, r *http.Request) {
	roomTypeID, err := queryID(r, "room_type_id")
	if err != nil {
		writeError(w, err)
		return
	}
	checkIn := r.URL.Query().Get("check_in_date")
	checkOut := r.URL.Query().Get("check_out_date")

	price, err := h.bookings.ComputePrice(r.Context(), roomTypeID, checkIn, checkOut)
	if err != nil {
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, priceResponse{
		RoomTypeID:   roomTypeID,
		CheckInDate:  checkIn,
		CheckOutDate: checkOut,
		TotalPrice:   price,
	})
}

// pathID extracts the {id} route variable
func pathID(r *http.Request) (int32, error) {
	return parseID(mux.Vars(r)["id"])
}

// queryID extracts a required integer query parameter
func queryID(r *http.Request, name string) (int32, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return 0, apperror.Validation("%s is required", name)
	}
	return parseID(raw)
}

func parseID(raw string) (int32, error) {
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, apperror.Validation("invalid id %q", raw)
	}
	return int32(id), nil
}
