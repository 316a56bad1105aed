package domain

// RoomRate is the nightly price of a room type on a single calendar date.
// Uniqueness of (room_type_id, date) is NOT enforced; consumers must
// aggregate, never assume a single row per date.
type RoomRate struct {
	ID         int32   `json:"id"`
	RoomTypeID int32   `json:"room_type_id"`
	Rate       float64 `json:"rate"`
	Date       string  `json:"date"` // "2006-01-02"
}
