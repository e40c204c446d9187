package http

import (
	"encoding/json"
	"time"

	"hotelbooking/internal/hotel"
	"hotelbooking/internal/pkg/request"
)

type HotelResponse struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Title           string    `json:"title"`
	City            string    `json:"city"`
	Address         string    `json:"address"`
	Distance        int       `json:"distance"`
	Rating          int       `json:"rating"`
	NumberOfRatings int       `json:"number_of_ratings"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewHotelResponse(h *hotel.Hotel) HotelResponse {
	return HotelResponse{
		ID:              h.ID,
		Name:            h.Name,
		Title:           h.Title,
		City:            h.City,
		Address:         h.Address,
		Distance:        h.Distance,
		Rating:          h.Rating,
		NumberOfRatings: h.NumberOfRatings,
		CreatedAt:       h.CreatedAt,
	}
}

type CreateHotelRequest struct {
	Name            string `json:"name" binding:"required"`
	Title           string `json:"title"`
	City            string `json:"city"`
	Address         string `json:"address"`
	Distance        int    `json:"distance" binding:"min=0"`
	Rating          int    `json:"rating" binding:"required,min=1,max=5"`
	NumberOfRatings int    `json:"number_of_ratings" binding:"min=0"`
}

// ListHotelsRequest defines query parameters for searching hotels.
// Every parameter is optional; absent parameters do not restrict results.
type ListHotelsRequest struct {
	request.ListParams
	NameStarts    string `form:"name_starts"`
	TitleStarts   string `form:"title_starts"`
	CityStarts    string `form:"city_starts"`
	AddressStarts string `form:"address_starts"`
	DistanceLte   *int   `form:"distance_lte" binding:"omitempty,min=0"`
	RatingIn      []int  `form:"rating_in" binding:"omitempty,dive,min=1,max=5"`
	SortBy        string `form:"sort_by" binding:"omitempty,oneof=id name city distance rating created_at"`
	SortOrder     string `form:"sort_order" binding:"omitempty,oneof=ASC DESC"`
}

func (r ListHotelsRequest) ToFilter() hotel.Filter {
	return hotel.Filter{
		NameStarts:    r.NameStarts,
		TitleStarts:   r.TitleStarts,
		CityStarts:    r.CityStarts,
		AddressStarts: r.AddressStarts,
		DistanceLte:   r.DistanceLte,
		RatingIn:      r.RatingIn,
		Page:          r.Page,
		PageSize:      r.PageSize,
		SortBy:        r.SortBy,
		SortOrder:     r.SortOrder,
	}
}

type PatchManyHotelsRequest struct {
	IDs   []int64         `json:"ids" binding:"required,min=1,dive,min=1"`
	Patch json.RawMessage `json:"patch" binding:"required"`
}

type PatchManyHotelsResponse struct {
	ProcessedIDs []int64 `json:"processed_ids"`
}

type RateHotelRequest struct {
	Score int `json:"score" binding:"required,min=1,max=5"`
}
