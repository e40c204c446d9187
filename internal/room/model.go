package room

import (
	"net/http"
	"time"

	"hotelbooking/internal/pkg/apperror"
)

var (
	ErrNotFound         = apperror.New(http.StatusNotFound, "room not found")
	ErrHotelNotFound    = apperror.New(http.StatusNotFound, "hotel not found")
	ErrEmptyName        = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidPrice     = apperror.New(http.StatusBadRequest, "price must be positive")
	ErrInvalidMaxPeople = apperror.New(http.StatusBadRequest, "max_people must be positive")
	ErrInvalidDate      = apperror.New(http.StatusBadRequest, "invalid date, expected YYYY-MM-DD")
	ErrRoomNumberTaken  = apperror.New(http.StatusConflict, "room number already in use")
	ErrHasBookings      = apperror.New(http.StatusConflict, "room has existing bookings")
)

// Room represents a bookable hotel room.
type Room struct {
	ID           int64
	HotelID      int64
	Name         string
	Description  *string
	RoomNumber   string
	Price        float64
	MaxPeople    int
	BlockedDates []time.Time // dates explicitly closed for booking
	CreatedAt    time.Time
}

// Filter defines optional search criteria for listing rooms.
// The CheckIn/CheckOut pair only takes effect when both are present.
type Filter struct {
	NameStarts         string
	DescriptionStarts  string
	RoomNumberContains string
	PriceGte           *float64
	PriceLte           *float64
	MaxPeople          *int
	HotelID            *int64
	CheckIn            *time.Time
	CheckOut           *time.Time

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
