package stats

import (
	"context"
	"encoding/csv"
	"fmt"
	"io"
	"time"
)

type Service interface {
	RecordRegistration(ctx context.Context, userID int64) error
	RecordBooking(ctx context.Context, userID int64, checkIn, checkOut string) error
	List(ctx context.Context) ([]Statistic, error)
	ExportCSV(ctx context.Context, w io.Writer) error
}

type service struct {
	repo Repository

	now func() time.Time
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		now:  time.Now,
	}
}

func (s *service) RecordRegistration(ctx context.Context, userID int64) error {
	return s.repo.Insert(ctx, &Statistic{
		UserID:     userID,
		EventType:  EventRegistration,
		RecordedAt: s.now().UTC(),
	})
}

func (s *service) RecordBooking(ctx context.Context, userID int64, checkIn, checkOut string) error {
	return s.repo.Insert(ctx, &Statistic{
		UserID:     userID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		EventType:  EventBooking,
		RecordedAt: s.now().UTC(),
	})
}

func (s *service) List(ctx context.Context) ([]Statistic, error) {
	return s.repo.FindAll(ctx)
}

// ExportCSV writes all recorded statistics as CSV.
func (s *service) ExportCSV(ctx context.Context, w io.Writer) error {
	stats, err := s.repo.FindAll(ctx)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	if err := cw.Write([]string{"User ID", "Check-In", "Check-Out", "Event Type"}); err != nil {
		return fmt.Errorf("write csv header failed: %w", err)
	}
	for _, st := range stats {
		row := []string{
			fmt.Sprintf("%d", st.UserID),
			st.CheckIn,
			st.CheckOut,
			st.EventType,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("write csv row failed: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}
