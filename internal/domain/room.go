package domain

type RoomStatus string

const (
	RoomStatusAvailable RoomStatus = "AVAILABLE"
	RoomStatusOccupied  RoomStatus = "OCCUPIED"
)

// Room is a physical room in a hotel. Availability checks operate on the
// room type, so rooms carry only descriptive state.
type Room struct {
	ID          int32      `json:"id"`
	HotelID     int32      `json:"hotel_id"`
	RoomTypeID  int32      `json:"room_type_id"`
	Description string     `json:"description"`
	Status      RoomStatus `json:"status"`
}
