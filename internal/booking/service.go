package booking

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"hotelbooking/internal/events"
	"hotelbooking/internal/observability"
	"hotelbooking/internal/room"
	"hotelbooking/internal/user"
)

// UserGetter resolves users by id; satisfied by user.Service.
type UserGetter interface {
	GetByID(ctx context.Context, id int64) (*user.User, error)
}

// RoomGetter resolves rooms by id; satisfied by room.Service.
type RoomGetter interface {
	GetByID(ctx context.Context, id int64) (*room.Room, error)
}

type BookRequest struct {
	UserID   int64
	RoomID   int64
	CheckIn  time.Time
	CheckOut time.Time
}

type Service interface {
	Book(ctx context.Context, req BookRequest) (*Booking, error)
	GetByID(ctx context.Context, id int64) (*Booking, error)
	List(ctx context.Context, filter Filter) ([]*Booking, int, error)
}

type service struct {
	repo      Repository
	users     UserGetter
	rooms     RoomGetter
	publisher events.Publisher
	locks     *roomLocks
	log       zerolog.Logger

	now func() time.Time
}

func NewService(repo Repository, users UserGetter, rooms RoomGetter, publisher events.Publisher, log zerolog.Logger) Service {
	return &service{
		repo:      repo,
		users:     users,
		rooms:     rooms,
		publisher: publisher,
		locks:     newRoomLocks(),
		log:       log,
		now:       time.Now,
	}
}

func (s *service) Book(ctx context.Context, req BookRequest) (*Booking, error) {
	b, err := s.book(ctx, req)
	switch {
	case err == nil:
		observability.ObserveBooking("created")
	case errors.Is(err, ErrAlreadyBooked):
		observability.ObserveBooking("conflict")
	case errors.Is(err, ErrInvalidDateRange), errors.Is(err, ErrCheckInNotFuture),
		errors.Is(err, ErrUserNotFound), errors.Is(err, ErrRoomNotFound):
		observability.ObserveBooking("rejected")
	default:
		observability.ObserveBooking("error")
	}
	return b, err
}

func (s *service) book(ctx context.Context, req BookRequest) (*Booking, error) {
	// 1. Validate the date range.
	if !req.CheckOut.After(req.CheckIn) {
		return nil, ErrInvalidDateRange
	}
	// Same-day check-in is not allowed; the stay must start tomorrow at the
	// earliest.
	today := s.now().UTC().Truncate(24 * time.Hour)
	if !req.CheckIn.After(today) {
		return nil, ErrCheckInNotFuture
	}

	// 2. Resolve the user.
	if _, err := s.users.GetByID(ctx, req.UserID); err != nil {
		if errors.Is(err, user.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}

	// 3. Resolve the room.
	if _, err := s.rooms.GetByID(ctx, req.RoomID); err != nil {
		if errors.Is(err, room.ErrNotFound) {
			return nil, ErrRoomNotFound
		}
		return nil, err
	}

	// 4+5. Check availability and insert under the per-room lock, so a
	// concurrent request for the same room cannot pass the check in between.
	unlock := s.locks.lock(req.RoomID)
	defer unlock()

	existing, err := s.repo.FindOverlapping(ctx, req.RoomID, req.CheckIn, req.CheckOut)
	if err != nil {
		return nil, err
	}
	if !Available(existing, req.CheckIn, req.CheckOut) {
		return nil, ErrAlreadyBooked
	}

	b := &Booking{
		UserID:   req.UserID,
		RoomID:   req.RoomID,
		CheckIn:  req.CheckIn,
		CheckOut: req.CheckOut,
	}
	if err := s.repo.Create(ctx, b); err != nil {
		return nil, err
	}

	// 6. Notify the statistics channel. Failures never undo the booking.
	events.Emit(s.publisher, s.log, events.TopicRoomBooking, events.RoomBookingEvent{
		UserID:   b.UserID,
		CheckIn:  b.CheckIn.Format(time.DateOnly),
		CheckOut: b.CheckOut.Format(time.DateOnly),
	})

	return b, nil
}

func (s *service) GetByID(ctx context.Context, id int64) (*Booking, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	return s.repo.List(ctx, filter)
}
