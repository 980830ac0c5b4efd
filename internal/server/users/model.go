package users

import "time"

// User is an identity record. Email is unique and immutable; the record is
// never mutated or deleted after creation.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
