package domain

import (
	"errors"
	"fmt"
	"time"
)

// Role is the closed set of actor roles in the system. Persistence uses the
// numeric role_id; everything above the storage edge works with Role so that
// invalid role values cannot exist in the domain.
type Role string

const (
	RoleAdmin   Role = "admin"
	RoleTutor   Role = "tutor"
	RoleStudent Role = "student"
)

// Numeric role identifiers as stored in the roles table.
const (
	roleIDAdmin   = 1
	roleIDTutor   = 2
	roleIDStudent = 3
)

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrUnauthorized = errors.New("unauthorized")
var ErrForbidden = errors.New("access forbidden")
var ErrUserExists = errors.New("user already exists")
var ErrUserNotFound = errors.New("user not found")

// RoleFromID maps a stored role_id to a Role. Unknown ids fail closed.
func RoleFromID(id int) (Role, error) {
	switch id {
	case roleIDAdmin:
		return RoleAdmin, nil
	case roleIDTutor:
		return RoleTutor, nil
	case roleIDStudent:
		return RoleStudent, nil
	}
	return "", fmt.Errorf("unknown role_id %d", id)
}

// ID returns the numeric identifier persisted for the role.
func (r Role) ID() int {
	switch r {
	case RoleAdmin:
		return roleIDAdmin
	case RoleTutor:
		return roleIDTutor
	default:
		return roleIDStudent
	}
}

// Valid reports whether the role belongs to the closed set.
func (r Role) Valid() bool {
	return r == RoleAdmin || r == RoleTutor || r == RoleStudent
}

// User models a registered account.
type User struct {
	ID        int64     `json:"user_id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Credential is the stored password material for a user. It is created
// atomically with the User row and never crosses the auth boundary.
type Credential struct {
	AuthID       int64  `json:"-"`
	UserID       int64  `json:"-"`
	PasswordHash string `json:"-"`
}
