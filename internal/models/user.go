package models

import "time"

// User represents a registered account
type User struct {
	Username     string    `json:"username"`   // Unique username
	Email        string    `json:"email"`      // Optional email
	PasswordHash string    `json:"-"`          // bcrypt hash, never serialized
	Disabled     bool      `json:"disabled"`   // Disabled accounts cannot log in
	CreatedAt    time.Time `json:"created_at"` // Registration timestamp
}
