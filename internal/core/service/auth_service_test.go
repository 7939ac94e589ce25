package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

const testSecret = "test-secret"

// stubUserRepo is an in-memory UserRepository keyed by email.
type stubUserRepo struct {
	users  map[string]*domain.User
	nextID int
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[string]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	if _, ok := r.users[user.Email]; ok {
		return nil, domain.ErrUserExists
	}
	r.nextID++
	created := *user
	created.ID = string(rune('a' + r.nextID - 1))
	r.users[created.Email] = &created
	return cloneUser(&created), nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	user, ok := r.users[email]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	return cloneUser(user), nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id string) (*domain.User, error) {
	for _, user := range r.users {
		if user.ID == id {
			return cloneUser(user), nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context) ([]*domain.User, error) {
	users := make([]*domain.User, 0, len(r.users))
	for _, user := range r.users {
		users = append(users, cloneUser(user))
	}
	return users, nil
}

func cloneUser(u *domain.User) *domain.User {
	c := *u
	return &c
}

func newTestAuthService(repo ports.UserRepository) *AuthService {
	return NewAuthService(repo, testSecret, time.Hour, zerolog.Nop())
}

func TestAuthService_RegisterDefaultsRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	user, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("expected default role %q, got %q", domain.RoleUser, user.Role)
	}
	if user.PasswordHash == "secret1" {
		t.Error("raw password stored instead of hash")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("secret1")) != nil {
		t.Error("stored hash does not match the password")
	}
}

func TestAuthService_RegisterRejectsUnknownRole(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "alice",
		Email:    "alice@example.com",
		Password: "secret1",
		Role:     "superuser",
	})

	var verr *domain.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	if len(verr.Fields) != 1 || verr.Fields[0].Field != "role" {
		t.Errorf("unexpected fields: %+v", verr.Fields)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	input := ports.RegisterInput{Username: "alice", Email: "alice@example.com", Password: "secret1"}

	if _, err := svc.Register(context.Background(), input); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(context.Background(), input)
	if !errors.Is(err, domain.ErrUserExists) {
		t.Errorf("expected ErrUserExists, got %v", err)
	}
}

func TestAuthService_LoginIssuesToken(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "secret1",
		Role:     domain.RoleAdmin,
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	token, err := svc.Login(context.Background(), "bob@example.com", "secret1")
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	claims := &domain.Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(_ *jwt.Token) (any, error) {
		return []byte(testSecret), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("token does not verify: %v", err)
	}
	if claims.Subject != registered.ID {
		t.Errorf("expected subject %q, got %q", registered.ID, claims.Subject)
	}
	if claims.Email != "bob@example.com" {
		t.Errorf("unexpected email claim: %q", claims.Email)
	}
	if claims.Role != domain.RoleAdmin {
		t.Errorf("expected role claim %q, got %q", domain.RoleAdmin, claims.Role)
	}

	ttl := claims.ExpiresAt.Sub(claims.IssuedAt.Time)
	if ttl != time.Hour {
		t.Errorf("expected 1h expiry window, got %v", ttl)
	}
}

func TestAuthService_LoginUnknownEmail(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())

	_, err := svc.Login(context.Background(), "ghost@example.com", "whatever")
	if !errors.Is(err, domain.ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestAuthService_LoginBadPassword(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	if _, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "bob", Email: "bob@example.com", Password: "secret1",
	}); err != nil {
		t.Fatalf("register: %v", err)
	}

	_, err := svc.Login(context.Background(), "bob@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Errorf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestAuthService_GetUserOmitsCredentials(t *testing.T) {
	svc := newTestAuthService(newStubUserRepo())
	registered, err := svc.Register(context.Background(), ports.RegisterInput{
		Username: "carol", Email: "carol@example.com", Password: "secret1",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	ref, err := svc.GetUser(context.Background(), registered.ID)
	if err != nil {
		t.Fatalf("get user: %v", err)
	}
	if ref.ID != registered.ID || ref.Username != "carol" || ref.Email != "carol@example.com" {
		t.Errorf("unexpected ref: %+v", ref)
	}
}
