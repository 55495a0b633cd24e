package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// AuthResult is returned by both Register and Login: a signed identity token
// plus the public view of the account (password hash excluded by the User
// JSON contract).
type AuthResult struct {
	Token string
	User  *domain.User
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Logout revokes the caller's token until its natural expiry.
	Logout(ctx context.Context, identity domain.Identity) error
	ListUsers(ctx context.Context) ([]*domain.User, error)
}
