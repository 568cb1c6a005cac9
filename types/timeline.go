package types

// TimelineEvent is a dated entry in a monument's history timeline.
type TimelineEvent struct {
	ID               int    `json:"id" db:"id"`
	MonumentID       int    `json:"monument_id" db:"monument_id"`
	EventYear        int    `json:"event_year" db:"event_year"`
	EventTitle       string `json:"event_title" db:"event_title"`
	EventDescription string `json:"event_description" db:"event_description"`
}
