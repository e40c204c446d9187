package booking

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"hotelbooking/internal/events"
	"hotelbooking/internal/room"
	"hotelbooking/internal/user"
)

type fakeRepo struct {
	mu       sync.Mutex
	nextID   int64
	bookings []*Booking

	createErr error
}

func (r *fakeRepo) Create(ctx context.Context, b *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	b.ID = r.nextID
	b.CreatedAt = time.Now()
	stored := *b
	r.bookings = append(r.bookings, &stored)
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id int64) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, b := range r.bookings {
		if b.ID == id {
			return b, nil
		}
	}
	return nil, ErrNotFound
}

func (r *fakeRepo) FindOverlapping(ctx context.Context, roomID int64, checkIn, checkOut time.Time) ([]*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*Booking
	for _, b := range r.bookings {
		if b.RoomID == roomID && Overlaps(checkIn, checkOut, b.CheckIn, b.CheckOut) {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *fakeRepo) List(ctx context.Context, filter Filter) ([]*Booking, int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bookings, len(r.bookings), nil
}

func (r *fakeRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.bookings)
}

type fakeUsers struct {
	ids map[int64]bool
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*user.User, error) {
	if !f.ids[id] {
		return nil, user.ErrNotFound
	}
	return &user.User{ID: id, Role: user.RoleUser}, nil
}

type fakeRooms struct {
	ids map[int64]bool
}

func (f *fakeRooms) GetByID(ctx context.Context, id int64) (*room.Room, error) {
	if !f.ids[id] {
		return nil, room.ErrNotFound
	}
	return &room.Room{ID: id}, nil
}

type fakePublisher struct {
	mu       sync.Mutex
	payloads []any
	err      error
}

func (p *fakePublisher) Publish(ctx context.Context, topic string, payload any) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func (p *fakePublisher) published() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.payloads)
}

func (p *fakePublisher) first() any {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.payloads[0]
}

func newTestService(repo *fakeRepo, pub events.Publisher) Service {
	users := &fakeUsers{ids: map[int64]bool{1: true}}
	rooms := &fakeRooms{ids: map[int64]bool{10: true}}
	return NewService(repo, users, rooms, pub, zerolog.Nop())
}

func TestBookSuccess(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub)

	b, err := svc.Book(context.Background(), BookRequest{
		UserID:   1,
		RoomID:   10,
		CheckIn:  date(2100, 9, 10),
		CheckOut: date(2100, 9, 15),
	})
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.NotZero(t, b.ID)
	assert.Equal(t, 1, repo.count())

	// Event emission is detached; wait for it.
	require.Eventually(t, func() bool {
		return pub.published() == 1
	}, time.Second, 10*time.Millisecond, "expected exactly one booking event")

	ev, ok := pub.first().(events.RoomBookingEvent)
	require.True(t, ok)
	assert.Equal(t, int64(1), ev.UserID)
	assert.Equal(t, "2100-09-10", ev.CheckIn)
	assert.Equal(t, "2100-09-15", ev.CheckOut)
}

func TestBookValidation(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakePublisher{})
	ctx := context.Background()

	t.Run("check_out not after check_in", func(t *testing.T) {
		_, err := svc.Book(ctx, BookRequest{
			UserID: 1, RoomID: 10,
			CheckIn: date(2100, 9, 15), CheckOut: date(2100, 9, 15),
		})
		assert.ErrorIs(t, err, ErrInvalidDateRange)
	})

	t.Run("check_in in the past", func(t *testing.T) {
		_, err := svc.Book(ctx, BookRequest{
			UserID: 1, RoomID: 10,
			CheckIn: date(2000, 1, 1), CheckOut: date(2000, 1, 5),
		})
		assert.ErrorIs(t, err, ErrCheckInNotFuture)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := svc.Book(ctx, BookRequest{
			UserID: 99, RoomID: 10,
			CheckIn: date(2100, 9, 10), CheckOut: date(2100, 9, 15),
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("unknown room", func(t *testing.T) {
		_, err := svc.Book(ctx, BookRequest{
			UserID: 1, RoomID: 99,
			CheckIn: date(2100, 9, 10), CheckOut: date(2100, 9, 15),
		})
		assert.ErrorIs(t, err, ErrRoomNotFound)
	})

	t.Run("unknown user reported before unknown room", func(t *testing.T) {
		_, err := svc.Book(ctx, BookRequest{
			UserID: 99, RoomID: 99,
			CheckIn: date(2100, 9, 10), CheckOut: date(2100, 9, 15),
		})
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	assert.Equal(t, 0, repo.count(), "no booking should be stored on rejection")
}

func TestBookCheckInMustBeFuture(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakePublisher{}).(*service)
	// Pin the clock to mid-day so truncation to "today" is exercised.
	svc.now = func() time.Time {
		return time.Date(2100, 9, 10, 14, 30, 0, 0, time.UTC)
	}
	ctx := context.Background()

	// Checking in today is too late; the earliest stay starts tomorrow.
	_, err := svc.Book(ctx, BookRequest{
		UserID: 1, RoomID: 10,
		CheckIn: date(2100, 9, 10), CheckOut: date(2100, 9, 15),
	})
	assert.ErrorIs(t, err, ErrCheckInNotFuture)
	assert.Equal(t, 0, repo.count())

	_, err = svc.Book(ctx, BookRequest{
		UserID: 1, RoomID: 10,
		CheckIn: date(2100, 9, 11), CheckOut: date(2100, 9, 15),
	})
	assert.NoError(t, err)
}

func TestBookConflict(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{}
	svc := newTestService(repo, pub)
	ctx := context.Background()

	_, err := svc.Book(ctx, BookRequest{
		UserID: 1, RoomID: 10,
		CheckIn: date(2100, 9, 10), CheckOut: date(2100, 9, 15),
	})
	require.NoError(t, err)

	_, err = svc.Book(ctx, BookRequest{
		UserID: 1, RoomID: 10,
		CheckIn: date(2100, 9, 14), CheckOut: date(2100, 9, 16),
	})
	assert.ErrorIs(t, err, ErrAlreadyBooked)
	assert.EqualError(t, err, "room is already booked for the selected dates")
	assert.Equal(t, 1, repo.count())

	// Back-to-back stays are fine.
	_, err = svc.Book(ctx, BookRequest{
		UserID: 1, RoomID: 10,
		CheckIn: date(2100, 9, 15), CheckOut: date(2100, 9, 20),
	})
	assert.NoError(t, err)
}

func TestBookEventFailureDoesNotUndoBooking(t *testing.T) {
	repo := &fakeRepo{}
	pub := &fakePublisher{err: errors.New("stream down")}
	svc := newTestService(repo, pub)

	b, err := svc.Book(context.Background(), BookRequest{
		UserID: 1, RoomID: 10,
		CheckIn: date(2100, 9, 10), CheckOut: date(2100, 9, 15),
	})
	require.NoError(t, err)
	require.NotNil(t, b)
	assert.Equal(t, 1, repo.count(), "booking must survive a failed event publish")
}

func TestBookConcurrentSameRoom(t *testing.T) {
	repo := &fakeRepo{}
	svc := newTestService(repo, &fakePublisher{})

	const attempts = 16
	var wg sync.WaitGroup
	errCh := make(chan error, attempts)

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.Book(context.Background(), BookRequest{
				UserID: 1, RoomID: 10,
				CheckIn: date(2100, 9, 10), CheckOut: date(2100, 9, 15),
			})
			errCh <- err
		}()
	}
	wg.Wait()
	close(errCh)

	var created, conflicts int
	for err := range errCh {
		switch {
		case err == nil:
			created++
		case errors.Is(err, ErrAlreadyBooked):
			conflicts++
		default:
			t.Fatalf("unexpected error: %v", err)
		}
	}

	assert.Equal(t, 1, created, "exactly one concurrent request may win")
	assert.Equal(t, attempts-1, conflicts)
	assert.Equal(t, 1, repo.count())
}
