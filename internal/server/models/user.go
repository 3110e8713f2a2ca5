// Package models holds the server-side persistence models.
package models

import "time"

// User is a registered account. Only the bcrypt digest of the password is
// ever stored; the plaintext never leaves the registration/login request.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
