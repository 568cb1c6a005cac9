package types

import "time"

// Roles a user account can hold. Role names are stored verbatim and
// rendered directly by the client, hence the spaces.
const (
	RoleUser           = "User"
	RoleTourGuide      = "Tour Guide"
	RoleContentCreator = "Content Creator"
	RoleAdmin          = "Admin"
)

// ValidRole reports whether role is one of the known role names.
func ValidRole(role string) bool {
	switch role {
	case RoleUser, RoleTourGuide, RoleContentCreator, RoleAdmin:
		return true
	}
	return false
}

// User represents an account in the system.
// It contains identity, role, and audit metadata.
type User struct {
	// ID is the unique identifier of the user.
	ID int `json:"id" db:"id"`

	// Username is the unique login name chosen by the user.
	Username string `json:"username" db:"username"`

	// Email is the user's email address. Unique alongside Username;
	// either can be presented as the login identifier.
	Email string `json:"email" db:"email"`

	// Role indicates the user's authorization level within the system
	// (User, Tour Guide, Content Creator, Admin).
	Role string `json:"role" db:"role"`

	// PasswordHash stores the hashed representation of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" db:"password_hash"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
