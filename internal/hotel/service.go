package hotel

import (
	"context"
	"encoding/json"
	"strings"

	"hotelbooking/internal/pkg/patch"
)

type CreateRequest struct {
	Name            string
	Title           string
	City            string
	Address         string
	Distance        int
	Rating          int
	NumberOfRatings int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Hotel, error)
	GetByID(ctx context.Context, id int64) (*Hotel, error)
	GetMany(ctx context.Context, ids []int64) ([]*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	Patch(ctx context.Context, id int64, doc json.RawMessage) (*Hotel, error)
	PatchMany(ctx context.Context, ids []int64, doc json.RawMessage) ([]int64, error)
	Rate(ctx context.Context, id int64, score int) (*Hotel, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Hotel, error) {
	h := &Hotel{
		Name:            strings.TrimSpace(req.Name),
		Title:           req.Title,
		City:            req.City,
		Address:         req.Address,
		Distance:        req.Distance,
		Rating:          req.Rating,
		NumberOfRatings: req.NumberOfRatings,
	}
	if err := validate(h); err != nil {
		return nil, err
	}
	if err := s.repo.Create(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetMany(ctx context.Context, ids []int64) ([]*Hotel, error) {
	return s.repo.GetMany(ctx, ids)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	return s.repo.List(ctx, filter)
}

// doc is the external representation used for merging sparse change-sets.
// Value fields keep their pre-filled state when absent from the change-set.
type doc struct {
	Name            string `json:"name"`
	Title           string `json:"title"`
	City            string `json:"city"`
	Address         string `json:"address"`
	Distance        int    `json:"distance"`
	Rating          int    `json:"rating"`
	NumberOfRatings int    `json:"number_of_ratings"`
}

func docOf(h *Hotel) doc {
	return doc{
		Name:            h.Name,
		Title:           h.Title,
		City:            h.City,
		Address:         h.Address,
		Distance:        h.Distance,
		Rating:          h.Rating,
		NumberOfRatings: h.NumberOfRatings,
	}
}

func applyDoc(h *Hotel, d doc) {
	h.Name = strings.TrimSpace(d.Name)
	h.Title = d.Title
	h.City = d.City
	h.Address = d.Address
	h.Distance = d.Distance
	h.Rating = d.Rating
	h.NumberOfRatings = d.NumberOfRatings
}

func validate(h *Hotel) error {
	if h.Name == "" {
		return ErrEmptyName
	}
	if h.Rating < 1 || h.Rating > 5 {
		return ErrInvalidRating
	}
	if h.Distance < 0 {
		return ErrInvalidDistance
	}
	return nil
}

func (s *service) Patch(ctx context.Context, id int64, raw json.RawMessage) (*Hotel, error) {
	h, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	d := docOf(h)
	if err := patch.Apply(raw, &d); err != nil {
		return nil, err
	}
	applyDoc(h, d)
	if err := validate(h); err != nil {
		return nil, err
	}

	if err := s.repo.Update(ctx, h); err != nil {
		return nil, err
	}
	return h, nil
}

// PatchMany applies the same change-set to every hotel in ids. Any id that
// does not resolve aborts the whole operation with NotFound; the single and
// bulk paths fail the same way.
func (s *service) PatchMany(ctx context.Context, ids []int64, raw json.RawMessage) ([]int64, error) {
	hotels, err := s.repo.GetMany(ctx, ids)
	if err != nil {
		return nil, err
	}

	found := make(map[int64]*Hotel, len(hotels))
	for _, h := range hotels {
		found[h.ID] = h
	}
	for _, id := range ids {
		if _, ok := found[id]; !ok {
			return nil, ErrNotFound
		}
	}

	processed := make([]int64, 0, len(hotels))
	for _, h := range hotels {
		d := docOf(h)
		if err := patch.Apply(raw, &d); err != nil {
			return nil, err
		}
		applyDoc(h, d)
		if err := validate(h); err != nil {
			return nil, err
		}
		if err := s.repo.Update(ctx, h); err != nil {
			return nil, err
		}
		processed = append(processed, h.ID)
	}

	return processed, nil
}

// Rate folds a new 1-5 score into the running average rating. The update
// itself is atomic in the repository.
func (s *service) Rate(ctx context.Context, id int64, score int) (*Hotel, error) {
	if score < 1 || score > 5 {
		return nil, ErrInvalidRating
	}
	return s.repo.Rate(ctx, id, score)
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
