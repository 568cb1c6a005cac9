package types

import "time"

// Article is a long-form post written by a staff member.
type Article struct {
	ID        int       `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	ImageURL  string    `json:"image_url" db:"image_url"`
	AuthorID  int       `json:"author_id" db:"author_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`

	// AuthorName is the author's username, joined from users.
	AuthorName string `json:"author_name,omitempty"`
}
