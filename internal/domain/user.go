package domain

import "time"

// User is the domain model for an authenticated account.
type User struct {
	ID           string
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}
