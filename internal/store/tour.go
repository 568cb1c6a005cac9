package store

import (
	"context"
	"database/sql"
	"time"

	"github.com/heritagehub/apiserver/types"
)

// TourRepository handles persistence for tours and bookings.
type TourRepository struct {
	db *sql.DB
}

func NewTourRepository(db *sql.DB) *TourRepository {
	return &TourRepository{db: db}
}

// ListByMonument returns a monument's upcoming tours with the guide's
// username attached, ordered by date then time.
func (r *TourRepository) ListByMonument(ctx context.Context, monumentID int) ([]types.Tour, error) {
	const query = `
		SELECT tours.id, tours.monument_id, tours.guide_id, tours.tour_date,
		       tours.tour_time, tours.meeting_link, users.username AS guide_name
		FROM tours
		JOIN users ON tours.guide_id = users.id
		WHERE tours.monument_id = $1
		ORDER BY tours.tour_date, tours.tour_time`
	rows, err := r.db.QueryContext(ctx, query, monumentID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tours := make([]types.Tour, 0)
	for rows.Next() {
		var tour types.Tour
		if err := rows.Scan(
			&tour.ID,
			&tour.MonumentID,
			&tour.GuideID,
			&tour.TourDate,
			&tour.TourTime,
			&tour.MeetingLink,
			&tour.GuideName,
		); err != nil {
			return nil, err
		}
		tours = append(tours, tour)
	}
	return tours, rows.Err()
}

func (r *TourRepository) Create(ctx context.Context, tour types.Tour) (types.Tour, error) {
	const query = `
		INSERT INTO tours (monument_id, guide_id, tour_date, tour_time, meeting_link)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`
	if err := r.db.QueryRowContext(
		ctx,
		query,
		tour.MonumentID,
		tour.GuideID,
		tour.TourDate,
		tour.TourTime,
		tour.MeetingLink,
	).Scan(&tour.ID); err != nil {
		return types.Tour{}, err
	}
	return tour, nil
}

// CreateBooking inserts a booking for the (tour, user) pair. There is
// deliberately no existence pre-check: the UNIQUE(tour_id, user_id)
// constraint decides under concurrency, and a violation surfaces as
// ErrDuplicate.
func (r *TourRepository) CreateBooking(ctx context.Context, tourID, userID int) (types.Booking, error) {
	booking := types.Booking{
		TourID:   tourID,
		UserID:   userID,
		BookedAt: time.Now(),
	}

	const query = `
		INSERT INTO bookings (tour_id, user_id, booked_at)
		VALUES ($1, $2, $3)
		RETURNING id`
	if err := r.db.QueryRowContext(ctx, query, tourID, userID, booking.BookedAt).Scan(&booking.ID); err != nil {
		if isUniqueViolation(err) {
			return types.Booking{}, ErrDuplicate
		}
		return types.Booking{}, err
	}
	return booking, nil
}

// ListAttendees returns the users booked on a tour in booking order.
func (r *TourRepository) ListAttendees(ctx context.Context, tourID int) ([]types.Attendee, error) {
	const query = `
		SELECT users.username, users.email, bookings.booked_at
		FROM bookings
		JOIN users ON bookings.user_id = users.id
		WHERE bookings.tour_id = $1`
	rows, err := r.db.QueryContext(ctx, query, tourID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	attendees := make([]types.Attendee, 0)
	for rows.Next() {
		var attendee types.Attendee
		if err := rows.Scan(&attendee.Username, &attendee.Email, &attendee.BookedAt); err != nil {
			return nil, err
		}
		attendees = append(attendees, attendee)
	}
	return attendees, rows.Err()
}

// ListUserBookings returns a user's itinerary joined across tours and
// monuments, earliest tour first.
func (r *TourRepository) ListUserBookings(ctx context.Context, userID int) ([]types.ItineraryEntry, error) {
	const query = `
		SELECT bookings.id AS booking_id, tours.tour_date, tours.tour_time,
		       tours.meeting_link, monuments.name AS monument_name
		FROM bookings
		JOIN tours ON bookings.tour_id = tours.id
		JOIN monuments ON tours.monument_id = monuments.id
		WHERE bookings.user_id = $1
		ORDER BY tours.tour_date ASC`
	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]types.ItineraryEntry, 0)
	for rows.Next() {
		var entry types.ItineraryEntry
		if err := rows.Scan(
			&entry.BookingID,
			&entry.TourDate,
			&entry.TourTime,
			&entry.MeetingLink,
			&entry.MonumentName,
		); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}
