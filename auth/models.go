// Package auth handles authentication: user registration, login, token
// issuance and token verification. This file defines the User model as
// stored in the database and used by the business logic.
package auth

import "time"

// User represents a user in the system.
// HashedPassword carries the bcrypt digest, never the plaintext password,
// and is excluded from JSON serialization of this model.
type User struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	HashedPassword string    `json:"-"`
	CreatedAt      time.Time `json:"created_at"`
}
