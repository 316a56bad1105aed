package domain

// RoomType is a bookable category of room (e.g. "Deluxe"), shared across
// physical rooms. Bookings and rates reference the type, not the room.
type RoomType struct {
	ID          int32  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Capacity    int32  `json:"capacity"`
}
