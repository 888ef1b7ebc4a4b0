package auth

import (
	"time"

	"github.com/google/uuid"
)

// RoleAdmin grants access to the back-office routes.
const RoleAdmin = "admin"

// User is an authenticated account. Role comes from the system_users table,
// not the account itself.
type User struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Name         string    `json:"name,omitempty"`
	Role         string    `json:"role,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Session is a server-side record of an issued token, kept so sign-out can
// invalidate it before expiry.
type Session struct {
	Token     string    `json:"token"`
	UserID    uuid.UUID `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

// Credentials is returned by sign-up and sign-in: the bearer token plus the
// signed-in user.
type Credentials struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
