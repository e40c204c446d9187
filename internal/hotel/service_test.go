package hotel

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu     sync.Mutex
	nextID int64
	hotels map[int64]*Hotel
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{hotels: make(map[int64]*Hotel)}
}

func (r *fakeRepo) Create(ctx context.Context, h *Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.nextID++
	h.ID = r.nextID
	stored := *h
	r.hotels[h.ID] = &stored
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return nil, ErrNotFound
	}
	copied := *h
	return &copied, nil
}

func (r *fakeRepo) GetMany(ctx context.Context, ids []int64) ([]*Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Hotel
	for _, id := range ids {
		if h, ok := r.hotels[id]; ok {
			copied := *h
			out = append(out, &copied)
		}
	}
	return out, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Hotel
	for _, h := range r.hotels {
		copied := *h
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (r *fakeRepo) Update(ctx context.Context, h *Hotel) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hotels[h.ID]; !ok {
		return ErrNotFound
	}
	stored := *h
	r.hotels[h.ID] = &stored
	return nil
}

// Rate mirrors the repository's single-statement update: the fold happens
// under the store lock, never through a separate read and write.
func (r *fakeRepo) Rate(ctx context.Context, id int64, score int) (*Hotel, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	h, ok := r.hotels[id]
	if !ok {
		return nil, ErrNotFound
	}
	n := h.NumberOfRatings
	avg := (float64(h.Rating)*float64(n) + float64(score)) / float64(n+1)
	h.Rating = int(math.Round(avg))
	h.NumberOfRatings = n + 1
	copied := *h
	return &copied, nil
}

func (r *fakeRepo) Delete(ctx context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.hotels[id]; !ok {
		return ErrNotFound
	}
	delete(r.hotels, id)
	return nil
}

func (r *fakeRepo) DeleteMany(ctx context.Context, ids []int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.hotels, id)
	}
	return nil
}

func seedHotel(t *testing.T, svc Service) *Hotel {
	t.Helper()
	h, err := svc.Create(context.Background(), CreateRequest{
		Name:            "Grand Plaza",
		Title:           "Right by the station",
		City:            "Berlin",
		Address:         "Platz 1",
		Distance:        300,
		Rating:          4,
		NumberOfRatings: 10,
	})
	require.NoError(t, err)
	return h
}

func TestPatchPreservesUnspecifiedFields(t *testing.T) {
	svc := NewService(newFakeRepo())
	h := seedHotel(t, svc)

	patched, err := svc.Patch(context.Background(), h.ID, json.RawMessage(`{"city":"Hamburg"}`))
	require.NoError(t, err)

	assert.Equal(t, "Hamburg", patched.City)
	assert.Equal(t, "Grand Plaza", patched.Name)
	assert.Equal(t, "Right by the station", patched.Title)
	assert.Equal(t, 300, patched.Distance)
	assert.Equal(t, 4, patched.Rating)
}

func TestPatchRejectsInvalidResult(t *testing.T) {
	svc := NewService(newFakeRepo())
	h := seedHotel(t, svc)
	ctx := context.Background()

	_, err := svc.Patch(ctx, h.ID, json.RawMessage(`{"rating":9}`))
	assert.ErrorIs(t, err, ErrInvalidRating)

	// The stored hotel is untouched after a rejected patch.
	stored, err := svc.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, 4, stored.Rating)
}

func TestPatchManyAppliesToAll(t *testing.T) {
	svc := NewService(newFakeRepo())
	a := seedHotel(t, svc)
	b := seedHotel(t, svc)
	ctx := context.Background()

	ids, err := svc.PatchMany(ctx, []int64{a.ID, b.ID}, json.RawMessage(`{"city":"Munich"}`))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int64{a.ID, b.ID}, ids)

	for _, id := range ids {
		h, err := svc.GetByID(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, "Munich", h.City)
	}
}

func TestPatchManyMissingIDAborts(t *testing.T) {
	svc := NewService(newFakeRepo())
	h := seedHotel(t, svc)
	ctx := context.Background()

	_, err := svc.PatchMany(ctx, []int64{h.ID, 999}, json.RawMessage(`{"city":"Munich"}`))
	assert.ErrorIs(t, err, ErrNotFound)

	// Nothing is applied when any id is missing.
	stored, err := svc.GetByID(ctx, h.ID)
	require.NoError(t, err)
	assert.Equal(t, "Berlin", stored.City)
}

func TestRateFoldsIntoRunningAverage(t *testing.T) {
	svc := NewService(newFakeRepo())
	h := seedHotel(t, svc) // rating 4, 10 ratings

	rated, err := svc.Rate(context.Background(), h.ID, 5)
	require.NoError(t, err)

	// (4*10 + 5) / 11 = 4.09 -> rounds to 4
	assert.Equal(t, 4, rated.Rating)
	assert.Equal(t, 11, rated.NumberOfRatings)

	_, err = svc.Rate(context.Background(), h.ID, 0)
	assert.ErrorIs(t, err, ErrInvalidRating)
}

func TestRateConcurrentLosesNoIncrements(t *testing.T) {
	svc := NewService(newFakeRepo())
	h := seedHotel(t, svc) // 10 ratings

	const raters = 20
	var wg sync.WaitGroup
	for i := 0; i < raters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Rate(context.Background(), h.ID, 5)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	stored, err := svc.GetByID(context.Background(), h.ID)
	require.NoError(t, err)
	assert.Equal(t, 10+raters, stored.NumberOfRatings)
}

func TestRateFirstScoreBecomesRating(t *testing.T) {
	svc := NewService(newFakeRepo())
	h, err := svc.Create(context.Background(), CreateRequest{
		Name:   "Fresh Hotel",
		Rating: 3,
	})
	require.NoError(t, err)

	// With zero prior ratings the first score replaces the seed value.
	rated, err := svc.Rate(context.Background(), h.ID, 5)
	require.NoError(t, err)
	assert.Equal(t, 5, rated.Rating)
	assert.Equal(t, 1, rated.NumberOfRatings)
}
