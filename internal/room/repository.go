package room

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, r *Room) error
	GetByID(ctx context.Context, id int64) (*Room, error)
	GetMany(ctx context.Context, ids []int64) ([]*Room, error)
	List(ctx context.Context, filter Filter) ([]*Room, int, error)
	Update(ctx context.Context, r *Room) error
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

// blockedDatesSubquery aggregates a room's blocked dates into a JSON array of
// YYYY-MM-DD strings, so the whole room loads in a single round trip.
const blockedDatesSubquery = `COALESCE(
	(
		SELECT json_agg(to_char(d.blocked_date, 'YYYY-MM-DD') ORDER BY d.blocked_date)
		FROM public.room_blocked_dates d
		WHERE d.room_id = rooms.id
	),
	'[]'::json
) AS blocked_dates`

var roomColumns = []string{
	"rooms.id", "rooms.hotel_id", "rooms.name", "rooms.description",
	"rooms.room_number", "rooms.price", "rooms.max_people", "rooms.created_at",
	blockedDatesSubquery,
}

func parseBlockedDates(raw []byte) ([]time.Time, error) {
	var strs []string
	if err := json.Unmarshal(raw, &strs); err != nil {
		return nil, fmt.Errorf("unmarshal blocked dates failed: %w", err)
	}
	dates := make([]time.Time, 0, len(strs))
	for _, s := range strs {
		d, err := time.Parse(time.DateOnly, s)
		if err != nil {
			return nil, fmt.Errorf("parse blocked date %q failed: %w", s, err)
		}
		dates = append(dates, d)
	}
	return dates, nil
}

func mapRoomPgError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return ErrRoomNumberTaken
		case pgerrcode.ForeignKeyViolation:
			return ErrHotelNotFound
		}
	}
	return err
}

func (r *pgxRepository) Create(ctx context.Context, rm *Room) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin create room tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.rooms").
		Columns("hotel_id", "name", "description", "room_number", "price", "max_people").
		Values(rm.HotelID, rm.Name, rm.Description, rm.RoomNumber, rm.Price, rm.MaxPeople).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create room query failed: %w", err)
	}

	if err := tx.QueryRow(ctx, query, args...).Scan(&rm.ID, &rm.CreatedAt); err != nil {
		return mapRoomPgError(err)
	}

	if err := insertBlockedDates(ctx, tx, rm.ID, rm.BlockedDates); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func insertBlockedDates(ctx context.Context, tx pgx.Tx, roomID int64, dates []time.Time) error {
	if len(dates) == 0 {
		return nil
	}

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	ins := psql.Insert("public.room_blocked_dates").Columns("room_id", "blocked_date")
	for _, d := range dates {
		ins = ins.Values(roomID, d)
	}

	query, args, err := ins.ToSql()
	if err != nil {
		return fmt.Errorf("build insert blocked dates query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, query, args...); err != nil {
		return fmt.Errorf("insert blocked dates failed: %w", err)
	}
	return nil
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(roomColumns...).
		From("public.rooms rooms").
		Where(squirrel.Eq{"rooms.id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get room query failed: %w", err)
	}

	var rm Room
	var datesJSON []byte
	if err := r.pool.QueryRow(ctx, query, args...).Scan(
		&rm.ID, &rm.HotelID, &rm.Name, &rm.Description,
		&rm.RoomNumber, &rm.Price, &rm.MaxPeople, &rm.CreatedAt, &datesJSON,
	); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("get room failed: %w", err)
	}

	if rm.BlockedDates, err = parseBlockedDates(datesJSON); err != nil {
		return nil, err
	}
	return &rm, nil
}

func (r *pgxRepository) GetMany(ctx context.Context, ids []int64) ([]*Room, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(roomColumns...).
		From("public.rooms rooms").
		Where(squirrel.Eq{"rooms.id": ids}).
		OrderBy("rooms.id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	for rows.Next() {
		var rm Room
		var datesJSON []byte
		if err := rows.Scan(
			&rm.ID, &rm.HotelID, &rm.Name, &rm.Description,
			&rm.RoomNumber, &rm.Price, &rm.MaxPeople, &rm.CreatedAt, &datesJSON,
		); err != nil {
			return nil, fmt.Errorf("scan room failed: %w", err)
		}
		if rm.BlockedDates, err = parseBlockedDates(datesJSON); err != nil {
			return nil, err
		}
		rooms = append(rooms, &rm)
	}
	return rooms, rows.Err()
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Room, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(roomColumns, "count(*) OVER() AS total_count")...).
		From("public.rooms rooms")

	for _, p := range filter.Predicates() {
		query = query.Where(p)
	}

	orderBy := "rooms.id"
	if filter.SortBy != "" {
		orderBy = "rooms." + filter.SortBy
	}
	orderDir := "ASC"
	if filter.SortOrder != "" {
		orderDir = filter.SortOrder
	}
	query = query.OrderBy(orderBy + " " + orderDir)

	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PageSize < 1 {
		filter.PageSize = 20
	}
	offset := (filter.Page - 1) * filter.PageSize
	query = query.Limit(uint64(filter.PageSize)).Offset(uint64(offset))

	sql, args, err := query.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build list rooms query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list rooms failed: %w", err)
	}
	defer rows.Close()

	var rooms []*Room
	var total int

	for rows.Next() {
		var rm Room
		var datesJSON []byte
		if err := rows.Scan(
			&rm.ID, &rm.HotelID, &rm.Name, &rm.Description,
			&rm.RoomNumber, &rm.Price, &rm.MaxPeople, &rm.CreatedAt, &datesJSON, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan room failed: %w", err)
		}
		if rm.BlockedDates, err = parseBlockedDates(datesJSON); err != nil {
			return nil, 0, err
		}
		rooms = append(rooms, &rm)
	}

	return rooms, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, rm *Room) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin update room tx failed: %w", err)
	}
	defer tx.Rollback(ctx)

	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.rooms").
		Set("hotel_id", rm.HotelID).
		Set("name", rm.Name).
		Set("description", rm.Description).
		Set("room_number", rm.RoomNumber).
		Set("price", rm.Price).
		Set("max_people", rm.MaxPeople).
		Where(squirrel.Eq{"id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update room query failed: %w", err)
	}

	ct, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return mapRoomPgError(err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}

	// Blocked dates are replaced wholesale.
	del, delArgs, err := psql.Delete("public.room_blocked_dates").
		Where(squirrel.Eq{"room_id": rm.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete blocked dates query failed: %w", err)
	}
	if _, err := tx.Exec(ctx, del, delArgs...); err != nil {
		return fmt.Errorf("delete blocked dates failed: %w", err)
	}
	if err := insertBlockedDates(ctx, tx, rm.ID, rm.BlockedDates); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.rooms").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete room query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrHasBookings
		}
		return fmt.Errorf("delete room failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteMany(ctx context.Context, ids []int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.rooms").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete rooms query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrHasBookings
		}
		return fmt.Errorf("delete rooms failed: %w", err)
	}
	return nil
}
