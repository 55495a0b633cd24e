package domain

import "time"

const (
	RoleAdmin = "admin"
	RoleUser  = "user"
)

// User models a registered account. Accounts are immutable after
// registration; there are no update or delete endpoints.
type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Identity is the decoded content of a verified token. It is the only
// notion of "who is calling" the handlers and services ever see; there is
// no server-side session lookup.
type Identity struct {
	UserID string
	Email  string
	Name   string
	Role   string
	// TokenID is the jti claim, used by the revocation list.
	TokenID string
	// ExpiresAt is the token's expiry; revocation entries live this long.
	ExpiresAt time.Time
}

// IsAdmin reports whether the identity carries the admin role.
func (i Identity) IsAdmin() bool {
	return i.Role == RoleAdmin
}
