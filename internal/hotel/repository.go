package hotel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, h *Hotel) error
	GetByID(ctx context.Context, id int64) (*Hotel, error)
	GetMany(ctx context.Context, ids []int64) ([]*Hotel, error)
	List(ctx context.Context, filter Filter) ([]*Hotel, int, error)
	Update(ctx context.Context, h *Hotel) error
	Rate(ctx context.Context, id int64, score int) (*Hotel, error)
	Delete(ctx context.Context, id int64) error
	DeleteMany(ctx context.Context, ids []int64) error
}

type pgxRepository struct {
	pool *pgxpool.Pool
}

func NewPgxRepository(pool *pgxpool.Pool) Repository {
	return &pgxRepository{pool: pool}
}

var hotelColumns = []string{"id", "name", "title", "city", "address", "distance", "rating", "number_of_ratings", "created_at"}

func scanHotel(row pgx.Row) (*Hotel, error) {
	var h Hotel
	err := row.Scan(&h.ID, &h.Name, &h.Title, &h.City, &h.Address, &h.Distance, &h.Rating, &h.NumberOfRatings, &h.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scan hotel failed: %w", err)
	}
	return &h, nil
}

func (r *pgxRepository) Create(ctx context.Context, h *Hotel) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Insert("public.hotels").
		Columns("name", "title", "city", "address", "distance", "rating", "number_of_ratings").
		Values(h.Name, h.Title, h.City, h.Address, h.Distance, h.Rating, h.NumberOfRatings).
		Suffix("RETURNING id, created_at").
		ToSql()
	if err != nil {
		return fmt.Errorf("build create hotel query failed: %w", err)
	}

	return r.pool.QueryRow(ctx, query, args...).Scan(&h.ID, &h.CreatedAt)
}

func (r *pgxRepository) GetByID(ctx context.Context, id int64) (*Hotel, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(hotelColumns...).
		From("public.hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hotel query failed: %w", err)
	}

	return scanHotel(r.pool.QueryRow(ctx, query, args...))
}

func (r *pgxRepository) GetMany(ctx context.Context, ids []int64) ([]*Hotel, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Select(hotelColumns...).
		From("public.hotels").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build get hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	for rows.Next() {
		h, err := scanHotel(rows)
		if err != nil {
			return nil, err
		}
		hotels = append(hotels, h)
	}
	return hotels, rows.Err()
}

func (r *pgxRepository) List(ctx context.Context, filter Filter) ([]*Hotel, int, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query := psql.Select(append(hotelColumns, "count(*) OVER() AS total_count")...).
		From("public.hotels")

	for _, p := range filter.Predicates() {
		query = query.Where(p)
	}

	orderBy := "id"
	if filter.SortBy != "" {
		orderBy = filter.SortBy
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
		return nil, 0, fmt.Errorf("build list hotels query failed: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("list hotels failed: %w", err)
	}
	defer rows.Close()

	var hotels []*Hotel
	var total int

	for rows.Next() {
		var h Hotel
		if err := rows.Scan(
			&h.ID, &h.Name, &h.Title, &h.City, &h.Address,
			&h.Distance, &h.Rating, &h.NumberOfRatings, &h.CreatedAt, &total,
		); err != nil {
			return nil, 0, fmt.Errorf("scan hotel failed: %w", err)
		}
		hotels = append(hotels, &h)
	}

	return hotels, total, rows.Err()
}

func (r *pgxRepository) Update(ctx context.Context, h *Hotel) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.hotels").
		Set("name", h.Name).
		Set("title", h.Title).
		Set("city", h.City).
		Set("address", h.Address).
		Set("distance", h.Distance).
		Set("rating", h.Rating).
		Set("number_of_ratings", h.NumberOfRatings).
		Where(squirrel.Eq{"id": h.ID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build update hotel query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("update hotel failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// Rate folds a new score into the running average in a single UPDATE, so
// concurrent ratings cannot lose increments to a read-modify-write race.
func (r *pgxRepository) Rate(ctx context.Context, id int64, score int) (*Hotel, error) {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Update("public.hotels").
		Set("rating", squirrel.Expr("round((rating * number_of_ratings + ?)::numeric / (number_of_ratings + 1))", score)).
		Set("number_of_ratings", squirrel.Expr("number_of_ratings + 1")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(hotelColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("build rate hotel query failed: %w", err)
	}

	return scanHotel(r.pool.QueryRow(ctx, query, args...))
}

// Delete removes the hotel; rooms are removed by the FK cascade. A foreign
// key violation surfaces when some room still holds bookings.
func (r *pgxRepository) Delete(ctx context.Context, id int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.hotels").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete hotel query failed: %w", err)
	}

	ct, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrHasRooms
		}
		return fmt.Errorf("delete hotel failed: %w", err)
	}
	if ct.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgxRepository) DeleteMany(ctx context.Context, ids []int64) error {
	psql := squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	query, args, err := psql.Delete("public.hotels").
		Where(squirrel.Eq{"id": ids}).
		ToSql()
	if err != nil {
		return fmt.Errorf("build delete hotels query failed: %w", err)
	}

	if _, err := r.pool.Exec(ctx, query, args...); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return ErrHasRooms
		}
		return fmt.Errorf("delete hotels failed: %w", err)
	}
	return nil
}
