package domain

import "time"

// User represents a registered account. PasswordHash is a bcrypt hash;
// the plaintext password never leaves the registration/login request.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
