package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/blog-api/internal/core/domain"
	"github.com/inkwell/blog-api/internal/core/service"
)

func signedToken(t *testing.T, secret string) string {
	t.Helper()
	codec := service.NewTokenCodec(secret, time.Hour, nil)
	token, err := codec.Issue(&domain.User{
		ID:    "u1",
		Name:  "Alice",
		Email: "alice@example.com",
		Role:  domain.RoleUser,
	})
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return token
}

func TestAuthMiddleware_ValidToken(t *testing.T) {
	e := echo.New()
	token := signedToken(t, "secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	called := false
	mw := Auth(service.NewTokenCodec("secret", time.Hour, nil))
	handler := mw(func(c echo.Context) error {
		called = true
		identity, ok := c.Get(IdentityKey).(domain.Identity)
		if !ok {
			t.Fatalf("identity not set")
		}
		if identity.UserID != "u1" || identity.Name != "Alice" || identity.Role != domain.RoleUser {
			t.Fatalf("unexpected identity: %+v", identity)
		}
		return c.NoContent(http.StatusOK)
	})

	if err := handler(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if !called {
		t.Fatalf("next not called")
	}
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenCodec("secret", time.Hour, nil))
	err := mw(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %v", err)
	}
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	e := echo.New()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenCodec("secret", time.Hour, nil))
	err := mw(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 for malformed header, got %v", err)
	}
}

// Wrong-secret and expired tokens are authenticated-but-invalid: 403.
func TestAuthMiddleware_InvalidToken(t *testing.T) {
	e := echo.New()
	token := signedToken(t, "other-secret")

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	mw := Auth(service.NewTokenCodec("secret", time.Hour, nil))
	err := mw(func(c echo.Context) error { return nil })(c)

	he, ok := err.(*echo.HTTPError)
	if !ok || he.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %v", err)
	}
}
