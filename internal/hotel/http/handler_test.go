package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/hotel"
)

// stubService embeds the interface so only the methods under test need
// implementations; anything else panics.
type stubService struct {
	hotel.Service
	getMany func(ctx context.Context, ids []int64) ([]*hotel.Hotel, error)
}

func (s *stubService) GetMany(ctx context.Context, ids []int64) ([]*hotel.Hotel, error) {
	return s.getMany(ctx, ids)
}

func newTestRouter(svc hotel.Service) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	noop := func(c *gin.Context) {}
	RegisterRoutes(r.Group("/v1"), NewHandler(svc), noop, noop)
	return r
}

func TestGetManyHotels(t *testing.T) {
	svc := &stubService{
		getMany: func(ctx context.Context, ids []int64) ([]*hotel.Hotel, error) {
			require.Equal(t, []int64{1, 2}, ids)
			return []*hotel.Hotel{
				{ID: 1, Name: "Grand Plaza", Rating: 4},
				{ID: 2, Name: "Seaside Inn", Rating: 5},
			}, nil
		},
	}
	router := newTestRouter(svc)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/hotels/by-ids?ids=1&ids=2", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var items []HotelResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &items))
	require.Len(t, items, 2)
	assert.Equal(t, "Grand Plaza", items[0].Name)
	assert.Equal(t, "Seaside Inn", items[1].Name)
}

func TestGetManyHotelsRequiresIDs(t *testing.T) {
	router := newTestRouter(&stubService{})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/v1/hotels/by-ids", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
