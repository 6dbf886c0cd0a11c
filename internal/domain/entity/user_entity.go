package entity

import (
	"strconv"
	"time"
)

// User is the identity behind posts, comments and follow edges.
// Passwords are stored as bcrypt hashes in Password field.
// Users are created by the auth flow and never mutated by the core.
type User struct {
	ID        int64
	Username  string
	Password  string
	CreatedAt time.Time
}

// IDString renders the id the way it travels in JWT claims and session keys.
func (u *User) IDString() string {
	return strconv.FormatInt(u.ID, 10)
}

// ParseUserID is the inverse of IDString.
func ParseUserID(s string) (int64, error) {
	return strconv.ParseInt(s, 10, 64)
}
