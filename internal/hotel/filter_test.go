package hotel

import (
	"testing"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func intPtr(i int) *int { return &i }

func TestPredicatesEmptyFilter(t *testing.T) {
	assert.Empty(t, Filter{}.Predicates(), "an empty filter must not restrict results")
}

func TestPredicatesEmptyRatingSetIsNoop(t *testing.T) {
	f := Filter{RatingIn: []int{}}
	assert.Empty(t, f.Predicates(), "an empty rating set must not match zero rows")
}

func TestPredicatesComposition(t *testing.T) {
	f := Filter{
		NameStarts:  "Grand",
		CityStarts:  "Ber",
		DistanceLte: intPtr(500),
		RatingIn:    []int{4, 5},
	}

	preds := f.Predicates()
	require.Len(t, preds, 4)

	query := squirrel.Select("*").From("hotels")
	for _, p := range preds {
		query = query.Where(p)
	}

	sql, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "name ILIKE $1")
	assert.Contains(t, sql, "city ILIKE $2")
	assert.Contains(t, sql, "distance <= $3")
	assert.Contains(t, sql, "rating IN ($4,$5)")
	assert.Equal(t, []interface{}{"Grand%", "Ber%", 500, 4, 5}, args)
}

func TestPredicatesEscapesLikeInput(t *testing.T) {
	f := Filter{NameStarts: "100%_sure"}

	sql, args, err := squirrel.Select("*").From("hotels").
		Where(f.Predicates()[0]).
		ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "name ILIKE ?")
	assert.Equal(t, []interface{}{`100\%\_sure%`}, args)
}
