package models

import "time"

// Roles derived from the staff flag at login time. They are never stored.
const (
	RoleManager = "manager"
	RolePlayer  = "player"
)

// User represents a login account. Player accounts are created from a
// player record with the player's id_number as username.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"` // '-' means don't send in JSON response
	FirstName    string    `json:"first_name" db:"first_name"`
	LastName     string    `json:"last_name" db:"last_name"`
	IsStaff      bool      `json:"is_staff" db:"is_staff"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// Role returns the access level derived from the staff flag.
func (u *User) Role() string {
	if u.IsStaff {
		return RoleManager
	}
	return RolePlayer
}

// AuthToken is an opaque bearer credential bound to a user. A user has at
// most one token; it is created on first login and reused afterwards.
type AuthToken struct {
	Key       string    `json:"key" db:"key"`
	UserID    int64     `json:"user_id" db:"user_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
