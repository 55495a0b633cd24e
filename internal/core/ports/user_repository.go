package ports

import (
	"context"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// UserRepository defines the interface for account persistence.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// List returns every account, newest first. Used by the admin surface only.
	List(ctx context.Context) ([]*domain.User, error)
}
