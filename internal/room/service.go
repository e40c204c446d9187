package room

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"hotelbooking/internal/hotel"
	"hotelbooking/internal/pkg/patch"
)

// HotelGetter resolves hotels by id; satisfied by hotel.Service.
type HotelGetter interface {
	GetByID(ctx context.Context, id int64) (*hotel.Hotel, error)
}

type CreateRequest struct {
	HotelID      int64
	Name         string
	Description  *string
	RoomNumber   string
	Price        float64
	MaxPeople    int
	BlockedDates []time.Time
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Room, error)
	GetByID(ctx context.Context, id int64) (*Room, error)
	GetMany(ctx context.Context, ids []int64) ([]*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Patch(ctx context.Context, id int64, doc json.RawMessage) (*Room, error)
	PatchMany(ctx context.Context, ids []int64, doc json.RawMessage) ([]int64, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) error
}

type service struct {
	repo   Repository
	hotels HotelGetter
}

func NewService(repo Repository, hotels HotelGetter) Service {
	return &service{
		repo:   repo,
		hotels: hotels,
	}
}

func validate(rm *Room) error {
	if strings.TrimSpace(rm.Name) == "" {
		return ErrEmptyName
	}
	if rm.Price <= 0 {
		return ErrInvalidPrice
	}
	if rm.MaxPeople <= 0 {
		return ErrInvalidMaxPeople
	}
	return nil
}

func (s *service) resolveHotel(ctx context.Context, hotelID int64) error {
	if _, err := s.hotels.GetByID(ctx, hotelID); err != nil {
		if errors.Is(err, hotel.ErrNotFound) {
			return ErrHotelNotFound
		}
		return err
	}
	return nil
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Room, error) {
	rm := &Room{
		HotelID:      req.HotelID,
		Name:         strings.TrimSpace(req.Name),
		Description:  req.Description,
		RoomNumber:   req.RoomNumber,
		Price:        req.Price,
		MaxPeople:    req.MaxPeople,
		BlockedDates: req.BlockedDates,
	}
	if err := validate(rm); err != nil {
		return nil, err
	}
	if err := s.resolveHotel(ctx, rm.HotelID); err != nil {
		return nil, err
	}

	if err := s.repo.Create(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Room, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetMany(ctx context.Context, ids []int64) ([]*Room, error) {
	return s.repo.GetMany(ctx, ids)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	return s.repo.List(ctx, filter)
}

// doc is the external representation used for merging sparse change-sets.
// Description and BlockedDates are clearable: an explicit null empties them,
// while an absent key keeps the stored value.
type doc struct {
	HotelID      int64    `json:"hotel_id"`
	Name         string   `json:"name"`
	Description  *string  `json:"description"`
	RoomNumber   string   `json:"room_number"`
	Price        float64  `json:"price"`
	MaxPeople    int      `json:"max_people"`
	BlockedDates []string `json:"blocked_dates"`
}

func docOf(rm *Room) doc {
	dates := make([]string, 0, len(rm.BlockedDates))
	for _, d := range rm.BlockedDates {
		dates = append(dates, d.Format(time.DateOnly))
	}
	return doc{
		HotelID:      rm.HotelID,
		Name:         rm.Name,
		Description:  rm.Description,
		RoomNumber:   rm.RoomNumber,
		Price:        rm.Price,
		MaxPeople:    rm.MaxPeople,
		BlockedDates: dates,
	}
}

func applyDoc(rm *Room, d doc) error {
	rm.HotelID = d.HotelID
	rm.Name = strings.TrimSpace(d.Name)
	rm.Description = d.Description
	rm.RoomNumber = d.RoomNumber
	rm.Price = d.Price
	rm.MaxPeople = d.MaxPeople

	dates := make([]time.Time, 0, len(d.BlockedDates))
	for _, str := range d.BlockedDates {
		t, err := time.Parse(time.DateOnly, str)
		if err != nil {
			return ErrInvalidDate
		}
		dates = append(dates, t)
	}
	rm.BlockedDates = dates
	return nil
}

func (s *service) applyPatch(ctx context.Context, rm *Room, raw json.RawMessage) error {
	prevHotelID := rm.HotelID

	d := docOf(rm)
	if err := patch.Apply(raw, &d); err != nil {
		return err
	}
	if err := applyDoc(rm, d); err != nil {
		return err
	}
	if err := validate(rm); err != nil {
		return err
	}
	if rm.HotelID != prevHotelID {
		if err := s.resolveHotel(ctx, rm.HotelID); err != nil {
			return err
		}
	}
	return nil
}

func (s *service) Patch(ctx context.Context, id int64, raw json.RawMessage) (*Room, error) {
	rm, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := s.applyPatch(ctx, rm, raw); err != nil {
		return nil, err
	}
	if err := s.repo.Update(ctx, rm); err != nil {
		return nil, err
	}
	return rm, nil
}

// PatchMany applies the same change-set to every room in ids. A missing id
// aborts the whole operation with NotFound, matching the single-room path.
func (s *service) PatchMany(ctx context.Context, ids []int64, raw json.RawMessage) ([]int64, error) {
	rooms, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[int64]struct{}, len(rooms))
	for _, rm := range rooms {
		found[rm.ID] = struct{}{}
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, ErrNotFound
		}
	}

	processed := make([]int64, 0, len(rooms))
	for _, rm := range rooms {
		if err := s.applyPatch(ctx, rm, raw); err != nil {
			return nil, err
		}
		if err := s.repo.Update(ctx, rm); err != nil {
			return nil, err
		}
		processed = append(processed, rm.ID)
	}

	return processed, nil
}

func (s *service) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}

func (s *service) DeleteMany(ctx context.Context, ids []int64) error {
	return s.repo.DeleteMany(ctx, ids)
}
