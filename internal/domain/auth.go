package domain

import "time"

// TokenPayload is the decoded content of a session credential: exactly the
// three semantic fields a gate decision needs, plus validity bounds.
type TokenPayload struct {
	UserID    string
	Email     string
	Role      Role
	IssuedAt  time.Time
	ExpiresAt time.Time
}
