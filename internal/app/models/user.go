package models

import (
	"time"
)

// User defines the user model based on the 'users' table
type User struct {
	ID        int64     `json:"id" db:"id" example:"1"`                    // Unique identifier for the user
	Name      string    `json:"name" db:"name" example:"Priya Sharma"`     // Full name
	Email     string    `json:"email" db:"email" example:"priya@mail.com"` // User's email address (unique)
	Password  string    `json:"-" db:"password_hash"`                      // bcrypt hash (excluded from JSON)
	Role      RoleType  `json:"role" db:"role" example:"student"`          // student, mentor or admin
	Skills    *string   `json:"skills,omitempty" db:"skills"`              // Free-text comma-separated skill list (nullable)
	CreatedAt time.Time `json:"createdAt" db:"created_at"`                 // Timestamp when the user signed up
}
