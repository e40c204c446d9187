package http

import (
	"time"

	"hotelbooking/internal/booking"
	"hotelbooking/internal/pkg/request"
	"hotelbooking/internal/room"
)

type BookingResponse struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	RoomID    int64     `json:"room_id"`
	CheckIn   string    `json:"check_in"`
	CheckOut  string    `json:"check_out"`
	CreatedAt time.Time `json:"created_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:        b.ID,
		UserID:    b.UserID,
		RoomID:    b.RoomID,
		CheckIn:   b.CheckIn.Format(time.DateOnly),
		CheckOut:  b.CheckOut.Format(time.DateOnly),
		CreatedAt: b.CreatedAt,
	}
}

type CreateBookingRequest struct {
	UserID   int64  `json:"user_id" binding:"required,min=1"`
	RoomID   int64  `json:"room_id" binding:"required,min=1"`
	CheckIn  string `json:"check_in" binding:"required,datetime=2006-01-02"`
	CheckOut string `json:"check_out" binding:"required,datetime=2006-01-02"`
}

func (r CreateBookingRequest) ToBookRequest() (booking.BookRequest, error) {
	checkIn, err := time.Parse(time.DateOnly, r.CheckIn)
	if err != nil {
		return booking.BookRequest{}, room.ErrInvalidDate
	}
	checkOut, err := time.Parse(time.DateOnly, r.CheckOut)
	if err != nil {
		return booking.BookRequest{}, room.ErrInvalidDate
	}
	return booking.BookRequest{
		UserID:   r.UserID,
		RoomID:   r.RoomID,
		CheckIn:  checkIn,
		CheckOut: checkOut,
	}, nil
}

type ListBookingsRequest struct {
	request.ListParams
	UserID *int64 `form:"user_id" binding:"omitempty,min=1"`
	RoomID *int64 `form:"room_id" binding:"omitempty,min=1"`
}

func (r ListBookingsRequest) ToFilter() booking.Filter {
	return booking.Filter{
		UserID:   r.UserID,
		RoomID:   r.RoomID,
		Page:     r.Page,
		PageSize: r.PageSize,
	}
}
