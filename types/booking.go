package types

import "time"

// Booking is a user's ticket for a tour. At most one booking may exist
// per (tour, user) pair; the store enforces this with a unique constraint.
type Booking struct {
	ID       int       `json:"id" db:"id"`
	TourID   int       `json:"tour_id" db:"tour_id"`
	UserID   int       `json:"user_id" db:"user_id"`
	BookedAt time.Time `json:"booked_at" db:"booked_at"`
}

// Attendee is a booked user as seen by the tour's guide.
type Attendee struct {
	Username string    `json:"username"`
	Email    string    `json:"email"`
	BookedAt time.Time `json:"booked_at"`
}

// ItineraryEntry is a user's booking joined across tours and monuments,
// shaped for direct rendering.
type ItineraryEntry struct {
	BookingID    int    `json:"booking_id"`
	TourDate     string `json:"tour_date"`
	TourTime     string `json:"tour_time"`
	MeetingLink  string `json:"meeting_link"`
	MonumentName string `json:"monument_name"`
}
