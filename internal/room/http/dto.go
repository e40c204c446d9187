package http

import (
	"encoding/json"
	"time"

	"hotelbooking/internal/pkg/request"
	"hotelbooking/internal/room"
)

type RoomResponse struct {
	ID           int64     `json:"id"`
	HotelID      int64     `json:"hotel_id"`
	Name         string    `json:"name"`
	Description  *string   `json:"description"`
	RoomNumber   string    `json:"room_number"`
	Price        float64   `json:"price"`
	MaxPeople    int       `json:"max_people"`
	BlockedDates []string  `json:"blocked_dates"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewRoomResponse(rm *room.Room) RoomResponse {
	dates := make([]string, 0, len(rm.BlockedDates))
	for _, d := range rm.BlockedDates {
		dates = append(dates, d.Format(time.DateOnly))
	}
	return RoomResponse{
		ID:           rm.ID,
		HotelID:      rm.HotelID,
		Name:         rm.Name,
		Description:  rm.Description,
		RoomNumber:   rm.RoomNumber,
		Price:        rm.Price,
		MaxPeople:    rm.MaxPeople,
		BlockedDates: dates,
		CreatedAt:    rm.CreatedAt,
	}
}

type CreateRoomRequest struct {
	HotelID      int64    `json:"hotel_id" binding:"required,min=1"`
	Name         string   `json:"name" binding:"required"`
	Description  *string  `json:"description"`
	RoomNumber   string   `json:"room_number" binding:"required"`
	Price        float64  `json:"price" binding:"required,gt=0"`
	MaxPeople    int      `json:"max_people" binding:"required,min=1"`
	BlockedDates []string `json:"blocked_dates" binding:"omitempty,dive,datetime=2006-01-02"`
}

// ListRoomsRequest defines query parameters for searching rooms. Every
// parameter is optional. check_in and check_out must be supplied together
// to exclude rooms blocked anywhere in that range.
type ListRoomsRequest struct {
	request.ListParams
	NameStarts         string   `form:"name_starts"`
	DescriptionStarts  string   `form:"description_starts"`
	RoomNumberContains string   `form:"room_number_contains"`
	PriceGte           *float64 `form:"price_gte" binding:"omitempty,gt=0"`
	PriceLte           *float64 `form:"price_lte" binding:"omitempty,gt=0"`
	MaxPeople          *int     `form:"max_people" binding:"omitempty,min=1"`
	HotelID            *int64   `form:"hotel_id" binding:"omitempty,min=1"`
	CheckIn            string   `form:"check_in" binding:"omitempty,datetime=2006-01-02"`
	CheckOut           string   `form:"check_out" binding:"omitempty,datetime=2006-01-02"`
	SortBy             string   `form:"sort_by" binding:"omitempty,oneof=id name room_number price max_people created_at"`
	SortOrder          string   `form:"sort_order" binding:"omitempty,oneof=ASC DESC"`
}

func (r ListRoomsRequest) ToFilter() (room.Filter, error) {
	f := room.Filter{
		NameStarts:         r.NameStarts,
		DescriptionStarts:  r.DescriptionStarts,
		RoomNumberContains: r.RoomNumberContains,
		PriceGte:           r.PriceGte,
		PriceLte:           r.PriceLte,
		MaxPeople:          r.MaxPeople,
		HotelID:            r.HotelID,
		Page:               r.Page,
		PageSize:           r.PageSize,
		SortBy:             r.SortBy,
		SortOrder:          r.SortOrder,
	}

	if r.CheckIn != "" {
		t, err := time.Parse(time.DateOnly, r.CheckIn)
		if err != nil {
			return room.Filter{}, room.ErrInvalidDate
		}
		f.CheckIn = &t
	}
	if r.CheckOut != "" {
		t, err := time.Parse(time.DateOnly, r.CheckOut)
		if err != nil {
			return room.Filter{}, room.ErrInvalidDate
		}
		f.CheckOut = &t
	}

	return f, nil
}

type PatchManyRoomsRequest struct {
	IDs   []int64         `json:"ids" binding:"required,min=1,dive,min=1"`
	Patch json.RawMessage `json:"patch" binding:"required"`
}

type PatchManyRoomsResponse struct {
	ProcessedIDs []int64 `json:"processed_ids"`
}
