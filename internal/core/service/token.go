package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid"
	"github.com/golang-jwt/jwt/v5"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/ports"
)

const defaultTokenTTL = 7 * 24 * time.Hour

// identityClaims is the JWT payload: the public identity fields plus the
// registered jti/exp claims.
type identityClaims struct {
	UserID string `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenCodec signs and verifies identity tokens with an HS256 secret. The
// denylist is optional; when nil, verification is fully stateless.
type TokenCodec struct {
	secret   []byte
	ttl      time.Duration
	denylist ports.TokenDenylist
}

func NewTokenCodec(secret string, ttl time.Duration, denylist ports.TokenDenylist) *TokenCodec {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenCodec{secret: []byte(secret), ttl: ttl, denylist: denylist}
}

// Issue encodes the user's identity into a signed token expiring ttl from now.
func (c *TokenCodec) Issue(user *domain.User) (string, error) {
	jti, err := uuid.NewV4()
	if err != nil {
		return "", err
	}

	now := time.Now()
	claims := identityClaims{
		UserID: user.ID,
		Email:  user.Email,
		Name:   user.Name,
		Role:   user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify checks signature and expiry and returns the embedded identity.
// A structurally valid token whose jti has been revoked is rejected the
// same way as a forged one.
func (c *TokenCodec) Verify(ctx context.Context, raw string) (domain.Identity, error) {
	claims := &identityClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	if c.denylist != nil && claims.ID != "" {
		revoked, err := c.denylist.IsRevoked(ctx, claims.ID)
		if err == nil && revoked {
			return domain.Identity{}, domain.ErrInvalidToken
		}
	}

	var expires time.Time
	if claims.ExpiresAt != nil {
		expires = claims.ExpiresAt.Time
	}

	return domain.Identity{
		UserID:    claims.UserID,
		Email:     claims.Email,
		Name:      claims.Name,
		Role:      claims.Role,
		TokenID:   claims.ID,
		ExpiresAt: expires,
	}, nil
}
