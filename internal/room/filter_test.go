package room

import (
	"testing"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func datePtr(y int, m time.Month, d int) *time.Time {
	t := time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	return &t
}

func TestPredicatesEmptyFilter(t *testing.T) {
	assert.Empty(t, Filter{}.Predicates(), "an empty filter must not restrict results")
}

func TestPredicatesDateRangeNeedsBothEnds(t *testing.T) {
	onlyIn := Filter{CheckIn: datePtr(2026, 9, 10)}
	assert.Empty(t, onlyIn.Predicates(), "check_in alone must be ignored")

	onlyOut := Filter{CheckOut: datePtr(2026, 9, 15)}
	assert.Empty(t, onlyOut.Predicates(), "check_out alone must be ignored")

	both := Filter{
		CheckIn:  datePtr(2026, 9, 10),
		CheckOut: datePtr(2026, 9, 15),
	}
	assert.Len(t, both.Predicates(), 1)
}

func TestPredicatesComposition(t *testing.T) {
	price := 120.0
	people := 2
	f := Filter{
		NameStarts: "Deluxe",
		PriceLte:   &price,
		MaxPeople:  &people,
		CheckIn:    datePtr(2026, 9, 10),
		CheckOut:   datePtr(2026, 9, 15),
	}

	preds := f.Predicates()
	require.Len(t, preds, 4)

	query := squirrel.Select("*").From("public.rooms rooms")
	for _, p := range preds {
		query = query.Where(p)
	}

	sql, args, err := query.PlaceholderFormat(squirrel.Dollar).ToSql()
	require.NoError(t, err)

	assert.Contains(t, sql, "name ILIKE $1")
	assert.Contains(t, sql, "price <= $2")
	assert.Contains(t, sql, "max_people = $3")
	assert.Contains(t, sql, "NOT EXISTS")
	assert.Contains(t, sql, "blocked_date BETWEEN $4 AND $5")
	require.Len(t, args, 5)
	assert.Equal(t, "Deluxe%", args[0])
}
