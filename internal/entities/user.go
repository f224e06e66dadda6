package entities

import "time"

// User represents a registered user record.
// Records are immutable once created; there is no update or delete path.
type User struct {
	ID           int64      `json:"id"`
	FullName     string     `json:"full_name"`
	Email        string     `json:"email"`
	PhoneNumber  *string    `json:"phone_number,omitempty"`
	DOB          *time.Time `json:"dob,omitempty"`
	PasswordHash string     `json:"-"` // Don't expose password hash in JSON
	CreatedAt    time.Time  `json:"created_at"`
}
