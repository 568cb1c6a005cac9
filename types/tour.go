package types

// Tour is a live guided tour scheduled for a monument.
//
// TourDate and TourTime are kept as strings end to end: the client
// submits and renders them verbatim, and ordering happens in SQL.
type Tour struct {
	ID          int    `json:"id" db:"id"`
	MonumentID  int    `json:"monument_id" db:"monument_id"`
	GuideID     int    `json:"guide_id" db:"guide_id"`
	TourDate    string `json:"tour_date" db:"tour_date"`
	TourTime    string `json:"tour_time" db:"tour_time"`
	MeetingLink string `json:"meeting_link" db:"meeting_link"`

	// GuideName is the guide's username, joined from users.
	GuideName string `json:"guide_name,omitempty"`
}
