package hotel

import (
	"net/http"
	"time"

	"hotelbooking/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "hotel not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidRating   = apperror.New(http.StatusBadRequest, "rating must be between 1 and 5")
	ErrInvalidDistance = apperror.New(http.StatusBadRequest, "distance cannot be negative")
	ErrHasRooms        = apperror.New(http.StatusConflict, "hotel still has rooms with bookings")
)

// Hotel represents a hotel that owns zero or more rooms.
type Hotel struct {
	ID              int64
	Name            string
	Title           string
	City            string
	Address         string
	Distance        int // km from city center
	Rating          int
	NumberOfRatings int
	CreatedAt       time.Time
}

// Filter defines optional search criteria for listing hotels.
// Zero-valued fields contribute no predicate.
type Filter struct {
	NameStarts    string
	TitleStarts   string
	CityStarts    string
	AddressStarts string
	DistanceLte   *int
	RatingIn      []int

	Page      int
	PageSize  int
	SortBy    string
	SortOrder string
}
