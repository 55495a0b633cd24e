package ports

import (
	"context"
	"time"

	"github.com/inkwell/blog-api/internal/core/domain"
)

// TokenCodec issues and verifies signed identity tokens. Verification is
// stateless apart from the optional revocation check.
type TokenCodec interface {
	Issue(user *domain.User) (string, error)
	Verify(ctx context.Context, raw string) (domain.Identity, error)
}

// TokenDenylist records revoked token ids until their natural expiry.
type TokenDenylist interface {
	Revoke(ctx context.Context, tokenID string, ttl time.Duration) error
	IsRevoked(ctx context.Context, tokenID string) (bool, error)
}
