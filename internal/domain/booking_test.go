package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBookingDuration(t *testing.T) {
	b := Booking{CheckInDate: "2026-09-10", CheckOutDate: "2026-09-12"}
	assert.Equal(t, 2, b.Duration())

	assert.Equal(t, 0, (&Booking{}).Duration())
}

func TestBookingMarshalJSON(t *testing.T) {
	b := Booking{
		ID:           5,
		UserID:       7,
		HotelID:      1,
		RoomTypeID:   2,
		CheckInDate:  "2026-09-10",
		CheckOutDate: "2026-09-13",
		TotalPrice:   330,
		Status:       BookingStatusConfirmed,
	}

	data, err := json.Marshal(&b)
	assert.NoError(t, err)

	var got map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, float64(3), got["duration"])
	assert.Equal(t, "2026-09-10", got["check_in_date"])
	assert.Equal(t, float64(330), got["total_price"])
}
