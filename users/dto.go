// Package users encapsulates the user-listing feature behind the
// authenticated surface of the API. This file defines its response shapes.
package users

import "time"

// UserRecord is one element of the list-users response.
// Password carries the stored bcrypt hash verbatim. Existing consumers
// depend on the response shape, hash field included; see DESIGN.md before
// pointing this endpoint at anything public.
type UserRecord struct {
	ID        int       `json:"id"`
	Username  string    `json:"username"`
	Password  string    `json:"password"`
	CreatedAt time.Time `json:"created_at"`
}
