package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inkwell/blog-api/internal/core/domain"
)

type stubUserRepo struct {
	users map[string]*domain.User // keyed by email
	next  int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func cloneUser(u *domain.User) *domain.User {
	if u == nil {
		return nil
	}
	clone := *u
	return &clone
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, exists := r.users[user.Email]; exists {
		return nil, domain.ErrEmailTaken
	}
	r.next++
	created := cloneUser(user)
	created.ID = fmt.Sprintf("u%d", r.next)
	r.users[created.Email] = cloneUser(created)
	return created, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	if u, ok := r.users[email]; ok {
		return cloneUser(u), nil
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	out := make([]*domain.User, 0, len(r.users))
	for _, u := range r.users {
		out = append(out, cloneUser(u))
	}
	return out, nil
}

func newTestAuthService(denylist *stubDenylist) (*AuthService, *stubUserRepo) {
	repo := newStubUserRepo()
	if denylist == nil {
		codec := NewTokenCodec("secret", time.Hour, nil)
		return NewAuthService(repo, codec, nil, zerolog.Nop()), repo
	}
	codec := NewTokenCodec("secret", time.Hour, denylist)
	return NewAuthService(repo, codec, denylist, zerolog.Nop()), repo
}

func TestAuthService_Register_Success(t *testing.T) {
	svc, repo := newTestAuthService(nil)

	result, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass123")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected a token")
	}
	if result.User.Role != domain.RoleUser {
		t.Fatalf("expected default role %q, got %q", domain.RoleUser, result.User.Role)
	}

	stored := repo.users["alice@example.com"]
	if stored.PasswordHash == "pass123" {
		t.Fatalf("expected password to be hashed")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("pass123")); err != nil {
		t.Fatalf("stored hash does not match password: %v", err)
	}
}

func TestAuthService_Register_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	for _, args := range [][3]string{
		{"", "a@example.com", "pass"},
		{"Alice", "", "pass"},
		{"Alice", "a@example.com", ""},
	} {
		if _, err := svc.Register(context.Background(), args[0], args[1], args[2]); err != domain.ErrInvalidInput {
			t.Fatalf("expected ErrInvalidInput for %v, got %v", args, err)
		}
	}
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	if _, err := svc.Register(context.Background(), "Alice", "alice@example.com", "pass"); err != nil {
		t.Fatalf("first register failed: %v", err)
	}
	if _, err := svc.Register(context.Background(), "Other", "alice@example.com", "pass2"); err != domain.ErrEmailTaken {
		t.Fatalf("expected ErrEmailTaken, got %v", err)
	}
}

func TestAuthService_Login_Success(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	if _, err := svc.Register(context.Background(), "Carol", "carol@example.com", "s3cret"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	result, err := svc.Login(context.Background(), "carol@example.com", "s3cret")
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if result.Token == "" {
		t.Fatalf("expected token")
	}
	if result.User.Name != "Carol" {
		t.Fatalf("unexpected user: %+v", result.User)
	}
}

// Wrong password and unknown email must be indistinguishable.
func TestAuthService_Login_IndistinguishableFailures(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	if _, err := svc.Register(context.Background(), "Dave", "dave@example.com", "goodpass"); err != nil {
		t.Fatalf("register failed: %v", err)
	}

	_, errWrongPass := svc.Login(context.Background(), "dave@example.com", "badpass")
	_, errNoUser := svc.Login(context.Background(), "ghost@example.com", "whatever")

	if errWrongPass != domain.ErrInvalidCredentials {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", errWrongPass)
	}
	if errNoUser != domain.ErrInvalidCredentials {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", errNoUser)
	}
	if errWrongPass.Error() != errNoUser.Error() {
		t.Fatalf("failure messages differ: %q vs %q", errWrongPass, errNoUser)
	}
}

func TestAuthService_Login_MissingFields(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	if _, err := svc.Login(context.Background(), "", "pass"); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if _, err := svc.Login(context.Background(), "a@example.com", ""); err != domain.ErrInvalidInput {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestAuthService_Logout_RevokesToken(t *testing.T) {
	denylist := newStubDenylist()
	svc, _ := newTestAuthService(denylist)

	identity := domain.Identity{
		UserID:    "u1",
		TokenID:   "jti-1",
		ExpiresAt: time.Now().Add(time.Hour),
	}
	if err := svc.Logout(context.Background(), identity); err != nil {
		t.Fatalf("logout failed: %v", err)
	}
	if !denylist.revoked["jti-1"] {
		t.Fatalf("expected token id to be denylisted")
	}
}

func TestAuthService_Logout_WithoutDenylistIsNoop(t *testing.T) {
	svc, _ := newTestAuthService(nil)

	identity := domain.Identity{UserID: "u1", TokenID: "jti-1", ExpiresAt: time.Now().Add(time.Hour)}
	if err := svc.Logout(context.Background(), identity); err != nil {
		t.Fatalf("expected no-op logout, got %v", err)
	}
}
