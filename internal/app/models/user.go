package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id"`
	Email     string    `json:"email" db:"email"`
	Password  string    `json:"-" db:"password"`
	Name      string    `json:"name" db:"name"`
	Role      UserRole  `json:"role" db:"role"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// UserProfile is the per-caller profile singleton ('user_profiles' table)
type UserProfile struct {
	UserID int64   `json:"-" db:"user_id"`
	Name   string  `json:"name" db:"name"`
	Branch *string `json:"branch,omitempty" db:"branch"`
	Year   *string `json:"year,omitempty" db:"year"`
	Skills *string `json:"skills,omitempty" db:"skills"`
}
