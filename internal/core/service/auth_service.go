package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/blog-api/internal/api/metrics"
	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

// AuthService implements registration, login, and token revocation.
type AuthService struct {
	repo     ports.UserRepository
	codec    ports.TokenCodec
	denylist ports.TokenDenylist
	log      zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, codec ports.TokenCodec, denylist ports.TokenDenylist, log zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, codec: codec, denylist: denylist, log: log}
}

// Register creates an account with the default "user" role and returns a
// freshly issued token alongside it.
func (s *AuthService) Register(ctx context.Context, name, email, password string) (*ports.AuthResult, error) {
	if name == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := s.codec.Issue(created)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("user_id", created.ID).Msg("user registered")
	return &ports.AuthResult{Token: token, User: created}, nil
}

// Login verifies credentials and issues a token. An unknown email and a
// wrong password produce the identical error, never revealing which check
// failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidInput
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginAttemptsTotal.WithLabelValues("failure").Inc()
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.codec.Issue(user)
	if err != nil {
		return nil, err
	}

	metrics.LoginAttemptsTotal.WithLabelValues("success").Inc()
	return &ports.AuthResult{Token: token, User: user}, nil
}

// Logout denylists the caller's token id for the remainder of its lifetime.
// Without a denylist configured the operation is a no-op: the token stays
// valid until expiry, which is the documented stateless-auth tradeoff.
func (s *AuthService) Logout(ctx context.Context, identity domain.Identity) error {
	if s.denylist == nil || identity.TokenID == "" {
		return nil
	}

	ttl := time.Until(identity.ExpiresAt)
	if ttl <= 0 {
		return nil
	}

	if err := s.denylist.Revoke(ctx, identity.TokenID, ttl); err != nil {
		s.log.Error().Err(err).Str("user_id", identity.UserID).Msg("failed to revoke token")
		return err
	}
	return nil
}

// ListUsers returns all accounts. The handler layer restricts this to admins.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
