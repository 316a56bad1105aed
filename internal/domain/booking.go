package domain

import (
	"encoding/json"
	"time"
)

type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "PENDING"
	BookingStatusConfirmed BookingStatus = "CONFIRMED"
	BookingStatusCancelled BookingStatus = "CANCELLED"
)

// Booking is a stay of one room type over a half-open date range
// [CheckInDate, CheckOutDate). TotalPrice is derived server-side at
// create/update time and never trusted from the caller.
type Booking struct {
	ID           int32         `json:"id"`
	UserID       int32         `json:"user_id"`
	UserEmail    string        `json:"user_email,omitempty"`
	HotelID      int32         `json:"hotel_id"`
	RoomTypeID   int32         `json:"room_type_id"`
	PaymentID    int32         `json:"payment_id"`
	Payment      *Payment      `json:"payment,omitempty"`
	CheckInDate  string        `json:"check_in_date"`  // "2006-01-02"
	CheckOutDate string        `json:"check_out_date"` // "2006-01-02", exclusive
	TotalPrice   float64       `json:"total_price"`
	Status       BookingStatus `json:"status"`
	CreatedOn    string        `json:"created_on"`
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusConfirmed, BookingStatusCancelled:
		return true
	}
	return false
}

// Duration returns the stay length in nights, or 0 when either date fails
// to parse. The persisted dates are validated on the way in, so 0 only
// shows up for zero-value bookings.
func (b *Booking) Duration() int {
	in, err := time.Parse("2006-01-02", b.CheckInDate)
	if err != nil {
		return 0
	}
	out, err := time.Parse("2006-01-02", b.CheckOutDate)
	if err != nil {
		return 0
	}
	return int(out.Sub(in).Hours() / 24)
}

// MarshalJSON adds the derived duration, in nights, to the wire form.
func (b Booking) MarshalJSON() ([]byte, error) {
	type booking Booking
	return json.Marshal(struct {
		booking
		Duration int `json:"duration"`
	}{booking(b), b.Duration()})
}
