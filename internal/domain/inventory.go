package domain

// Inventory is the count of rooms of a given type a hotel can sell on a
// given date. It represents capacity, not occupancy.
type Inventory struct {
	ID             int32  `json:"id"`
	HotelID        int32  `json:"hotel_id"`
	RoomTypeID     int32  `json:"room_type_id"`
	AvailableRooms int32  `json:"available_rooms"`
	Date           string `json:"date"` // "2006-01-02"
}
