package models

import "time"

// Todo represents a stored todo record
// swagger:model Todo
type Todo struct {
	ID          int64     `json:"id"`                 // Server-assigned identifier
	Title       string    `json:"title"`              // Short title, never empty
	Description string    `json:"description"`        // Free-form description
	Completed   bool      `json:"completed"`          // Completion flag
	CreatedAt   time.Time `json:"created_at"`         // Creation timestamp
	OwnerID     string    `json:"owner_id,omitempty"` // Username of the creator
}

// TodoInput holds the mutable fields of a todo.
type TodoInput struct {
	Title       string
	Description string
	Completed   bool
}
