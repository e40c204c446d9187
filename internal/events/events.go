package events

// Stream topics consumed by the statistics worker.
const (
	TopicUserRegistration = "user_registration"
	TopicRoomBooking      = "room_booking"
)

// UserRegistrationEvent is emitted once per successful registration.
type UserRegistrationEvent struct {
	UserID int64 `json:"user_id"`
}

// RoomBookingEvent is emitted once per successful booking.
// Dates use the 2006-01-02 layout.
type RoomBookingEvent struct {
	UserID   int64  `json:"user_id"`
	CheckIn  string `json:"check_in"`
	CheckOut string `json:"check_out"`
}
