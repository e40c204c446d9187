package room

import (
	"github.com/Masterminds/squirrel"

	"hotelbooking/internal/pkg/query"
)

// Predicates converts the filter into independent squirrel predicates to be
// ANDed together. Absent criteria yield nothing. The date-range constraint
// excludes rooms with any blocked date inside [CheckIn, CheckOut] and is a
// no-op unless both ends are supplied.
func (f Filter) Predicates() []squirrel.Sqlizer {
	var preds []squirrel.Sqlizer

	if f.NameStarts != "" {
		preds = append(preds, query.PrefixMatch("name", f.NameStarts))
	}
	if f.DescriptionStarts != "" {
		preds = append(preds, query.PrefixMatch("description", f.DescriptionStarts))
	}
	if f.RoomNumberContains != "" {
		preds = append(preds, query.Contains("room_number", f.RoomNumberContains))
	}
	if f.PriceGte != nil {
		preds = append(preds, squirrel.GtOrEq{"price": *f.PriceGte})
	}
	if f.PriceLte != nil {
		preds = append(preds, squirrel.LtOrEq{"price": *f.PriceLte})
	}
	if f.MaxPeople != nil {
		preds = append(preds, squirrel.Eq{"max_people": *f.MaxPeople})
	}
	if f.HotelID != nil {
		preds = append(preds, squirrel.Eq{"hotel_id": *f.HotelID})
	}
	if f.CheckIn != nil && f.CheckOut != nil {
		preds = append(preds, squirrel.Expr(
			"NOT EXISTS (SELECT 1 FROM public.room_blocked_dates d WHERE d.room_id = rooms.id AND d.blocked_date BETWEEN ? AND ?)",
			*f.CheckIn, *f.CheckOut,
		))
	}

	return preds
}
