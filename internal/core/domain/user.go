package domain

import (
	"errors"
	"time"
)

const (
	RoleAdmin  = "admin"
	RoleViewer = "viewer"
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")
var ErrUserNotFound = errors.New("user not found")
var ErrUsernameTaken = errors.New("username already exists")
var ErrSelfDeletion = errors.New("cannot delete own account")
var ErrInvalidRole = errors.New("invalid role")

// ValidRole reports whether s names a known role.
func ValidRole(s string) bool {
	return s == RoleAdmin || s == RoleViewer
}

// User models an authenticated actor in the system.
type User struct {
	ID           int64     `json:"id" db:"id"`
	Username     string    `json:"username" db:"username"`
	PasswordHash string    `json:"-" db:"password_hash"`
	Role         string    `json:"role" db:"role"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// Identity is the subset of a user carried inside a session token and
// returned on every outward-facing auth response. It never contains the
// password hash.
type Identity struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Role     string `json:"role"`
}

// PublicView returns the outward-facing representation of the user.
func (u *User) PublicView() Identity {
	return Identity{ID: u.ID, Username: u.Username, Role: u.Role}
}
