package domain

import (
	"errors"
	"time"
)

// Role is the closed set of actor roles. Authorization code switches
// exhaustively on it; adding a role must revisit every switch.
type Role string

const (
	RoleAdmin    Role = "admin"
	RoleEmployee Role = "employee"
	RoleClient   Role = "client"
)

var ErrInvalidRole = errors.New("invalid role")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUserNotFound = errors.New("user not found")
var ErrUserExists = errors.New("user already exists")

// ParseRole converts a raw string into a Role, rejecting anything outside
// the closed set.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleAdmin, RoleEmployee, RoleClient:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// Principal is the identity resolved for the current request. It is built
// only from a successfully validated token and is immutable afterwards; an
// anonymous caller has no Principal at all.
type Principal struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// User models a stored account. PasswordHash never leaves the server.
type User struct {
	ID           int64     `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Principal returns the request identity carried by this user's token.
func (u *User) Principal() Principal {
	return Principal{ID: u.ID, Name: u.Name, Email: u.Email, Role: u.Role}
}
