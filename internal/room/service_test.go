package room

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/hotel"
)

type fakeRepo struct {
	nextID int64
	rooms  map[int64]*Room
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{rooms: make(map[int64]*Room)}
}

func (r *fakeRepo) Create(ctx context.Context, rm *Room) error {
	r.nextID++
	rm.ID = r.nextID
	stored := *rm
	r.rooms[rm.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*Room, error) {
	rm, ok := r.rooms[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *rm
	return &copied, nil
}

func (r *fakeRepo) GetMany(ctx context.Context, ids []int64) ([]*Room, error) {
	var out []*Room
	for _, id := range ids {
		if rm, ok := r.rooms[id]; ok {
			copied := *rm
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	var out []*Room
	for _, rm := range r.rooms {
		copied := *rm
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, rm *Room) error {
	if _, ok := r.rooms[rm.ID]; !ok {
		return ErrNotFound
	}
	stored := *rm
	r.rooms[rm.ID] = &stored
	return nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	if _, ok := r.rooms[id]; !ok {
		return ErrNotFound
	}
	delete(r.rooms, id)
	return nil
}

func (r *fakeRepo) DeleteMany(ctx context.Context, ids []int64) error {
	for _, id := range ids {
		delete(r.rooms, id)
	}
	return nil
}

type fakeHotels struct {
	ids map[int64]bool
}

func (f *fakeHotels) GetByID(ctx context.Context, id int64) (*hotel.Hotel, error) {
	if !f.ids[id] {
		return nil, hotel.ErrNotFound
	}
	return &hotel.Hotel{ID: id}, nil
}

func newTestService() Service {
	return NewService(newFakeRepo(), &fakeHotels{ids: map[int64]bool{1: true}})
}

func seedRoom(t *testing.T, svc Service) *Room {
	t.Helper()
	desc := "Sea view"
	rm, err := svc.Create(context.Background(), CreateRequest{
		HotelID:     1,
		Name:        "Deluxe Double",
		Description: &desc,
		RoomNumber:  "204",
		Price:       120,
		MaxPeople:   2,
		BlockedDates: []time.Time{
			time.Date(2026, 12, 24, 0, 0, 0, 0, time.UTC),
		},
	})
	require.NoError(t, err)
	return rm
}

func TestCreateValidation(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Create(ctx, CreateRequest{HotelID: 1, Name: " ", Price: 100, MaxPeople: 2})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = svc.Create(ctx, CreateRequest{HotelID: 1, Name: "A", Price: 0, MaxPeople: 2})
	assert.ErrorIs(t, err, ErrInvalidPrice)

	_, err = svc.Create(ctx, CreateRequest{HotelID: 1, Name: "A", Price: 100, MaxPeople: 0})
	assert.ErrorIs(t, err, ErrInvalidMaxPeople)

	_, err = svc.Create(ctx, CreateRequest{HotelID: 42, Name: "A", Price: 100, MaxPeople: 2})
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestPatchPreservesUnspecifiedFields(t *testing.T) {
	svc := newTestService()
	rm := seedRoom(t, svc)

	patched, err := svc.Patch(context.Background(), rm.ID, json.RawMessage(`{"price":150}`))
	require.NoError(t, err)

	assert.Equal(t, 150.0, patched.Price)
	assert.Equal(t, "Deluxe Double", patched.Name)
	require.NotNil(t, patched.Description)
	assert.Equal(t, "Sea view", *patched.Description)
	assert.Len(t, patched.BlockedDates, 1)
}

func TestPatchNullClearsDescription(t *testing.T) {
	svc := newTestService()
	rm := seedRoom(t, svc)

	patched, err := svc.Patch(context.Background(), rm.ID, json.RawMessage(`{"description":null}`))
	require.NoError(t, err)
	assert.Nil(t, patched.Description)
}

func TestPatchReplacesBlockedDates(t *testing.T) {
	svc := newTestService()
	rm := seedRoom(t, svc)

	patched, err := svc.Patch(context.Background(), rm.ID,
		json.RawMessage(`{"blocked_dates":["2027-01-01","2027-01-02"]}`))
	require.NoError(t, err)

	require.Len(t, patched.BlockedDates, 2)
	assert.Equal(t, "2027-01-01", patched.BlockedDates[0].Format(time.DateOnly))
}

func TestPatchRejectsBadDate(t *testing.T) {
	svc := newTestService()
	rm := seedRoom(t, svc)

	_, err := svc.Patch(context.Background(), rm.ID,
		json.RawMessage(`{"blocked_dates":["not-a-date"]}`))
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestPatchUnknownHotelRejected(t *testing.T) {
	svc := newTestService()
	rm := seedRoom(t, svc)

	_, err := svc.Patch(context.Background(), rm.ID, json.RawMessage(`{"hotel_id":42}`))
	assert.ErrorIs(t, err, ErrHotelNotFound)
}

func TestPatchManyMissingIDAborts(t *testing.T) {
	svc := newTestService()
	rm := seedRoom(t, svc)
	ctx := context.Background()

	_, err := svc.PatchMany(ctx, []int64{rm.ID, 999}, json.RawMessage(`{"price":99}`))
	assert.ErrorIs(t, err, ErrNotFound)

	stored, err := svc.GetByID(ctx, rm.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, stored.Price)
}
