package booking

import (
	"net/http"
	"time"

	"hotelbooking/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "booking not found")
	ErrUserNotFound     = apperror.New(http.StatusNotFound, "user not found")
	ErrRoomNotFound     = apperror.New(http.StatusNotFound, "room not found")
	ErrAlreadyBooked    = apperror.New(http.StatusConflict, "room is already booked for the selected dates")
	ErrInvalidDateRange = apperror.New(http.StatusBadRequest, "check_out must be after check_in")
	ErrCheckInNotFuture = apperror.New(http.StatusBadRequest, "check_in must be a future date")
)

// Booking reserves a room for a user over the half-open date range
// [CheckIn, CheckOut). A booking is immutable once created.
type Booking struct {
	ID        int64
	UserID    int64
	RoomID    int64
	CheckIn   time.Time
	CheckOut  time.Time
	CreatedAt time.Time
}

// Filter defines optional criteria for listing bookings.
type Filter struct {
	UserID *int64
	RoomID *int64

	Page     int
	PageSize int
}
