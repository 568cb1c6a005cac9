package services

import (
	"context"

	"github.com/heritagehub/apiserver/types"
)

// TourRepository defines persistence operations for tours and bookings.
type TourRepository interface {
	ListByMonument(ctx context.Context, monumentID int) ([]types.Tour, error)
	Create(ctx context.Context, tour types.Tour) (types.Tour, error)
	CreateBooking(ctx context.Context, tourID, userID int) (types.Booking, error)
	ListAttendees(ctx context.Context, tourID int) ([]types.Attendee, error)
	ListUserBookings(ctx context.Context, userID int) ([]types.ItineraryEntry, error)
}

// TourService encapsulates tour scheduling and booking use-cases.
type TourService struct {
	repo TourRepository
}

func NewTourService(repo TourRepository) *TourService {
	return &TourService{repo: repo}
}

func (s *TourService) ListByMonument(ctx context.Context, monumentID int) ([]types.Tour, error) {
	return s.repo.ListByMonument(ctx, monumentID)
}

func (s *TourService) Create(ctx context.Context, tour types.Tour) (types.Tour, error) {
	return s.repo.Create(ctx, tour)
}

// Book creates a booking for the (tour, user) pair. A second booking
// for the same pair surfaces as store.ErrDuplicate from the repository.
func (s *TourService) Book(ctx context.Context, tourID, userID int) (types.Booking, error) {
	return s.repo.CreateBooking(ctx, tourID, userID)
}

func (s *TourService) ListAttendees(ctx context.Context, tourID int) ([]types.Attendee, error) {
	return s.repo.ListAttendees(ctx, tourID)
}

func (s *TourService) ListUserBookings(ctx context.Context, userID int) ([]types.ItineraryEntry, error) {
	return s.repo.ListUserBookings(ctx, userID)
}
