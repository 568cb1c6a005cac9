package types

import "time"

// Review is a visitor rating and comment on a monument.
type Review struct {
	ID         int       `json:"id" db:"id"`
	MonumentID int       `json:"monument_id" db:"monument_id"`
	UserID     int       `json:"user_id" db:"user_id"`
	Rating     int       `json:"rating" db:"rating"`
	Comment    string    `json:"comment" db:"comment"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`

	// Username is the reviewer's display name, joined from users.
	Username string `json:"username,omitempty"`
}
