package hotel

import (
	"github.com/Masterminds/squirrel"

	"hotelbooking/internal/pkg/query"
)

// Predicates converts the filter into independent squirrel predicates.
// Absent criteria yield nothing; an empty RatingIn set is treated as
// "no constraint" rather than matching no rows. Callers AND the result.
func (f Filter) Predicates() []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer

	if f.NameStarts != "" {
		preds = append(preds, query.PrefixMatch("name", f.NameStarts))
	}
	if f.TitleStarts != "" {
		preds = append(preds, query.PrefixMatch("title", f.TitleStarts))
	}
	if f.CityStarts != "" {
		preds = append(preds, query.PrefixMatch("city", f.CityStarts))
	}
	if f.AddressStarts != "" {
		preds = append(preds, query.PrefixMatch("address", f.AddressStarts))
	}
	if f.DistanceLte != nil {
		preds = append(preds, squirrel.LtOrEq{"distance": *f.DistanceLte})
	}
	if len(f.RatingIn) > 0 {
		preds = append(preds, squirrel.Eq{"rating": f.RatingIn})
	}

	return preds
}
