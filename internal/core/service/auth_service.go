package service

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/microblog/platform/internal/api/metrics"
	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

// AuthService implements registration, login and the public identity
// read surface. The signing secret is injected once at startup and never
// mutated; issued tokens are self-contained and not persisted.
type AuthService struct {
	repo      ports.UserRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(repo ports.UserRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}
	return &AuthService{repo: repo, jwtSecret: jwtSecret, tokenTTL: tokenTTL, logger: logger}
}

// Register creates a new identity. The raw password never reaches the
// repository; only its bcrypt hash is stored. The transport layer has
// already validated field shapes, so only the role constraint is checked
// again here before touching storage.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*domain.User, error) {
	role := input.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !domain.ValidRole(role) {
		return nil, &domain.ValidationError{Fields: []domain.FieldError{
			{Field: "role", Message: "role must be one of: user admin"},
		}}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	now := time.Now().UTC()
	user := &domain.User{
		Username:     input.Username,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	created, err := s.repo.Create(ctx, user)
	if err != nil {
		return nil, err
	}

	metrics.UsersRegisteredTotal.WithLabelValues(created.Role).Inc()
	s.logger.Info().Str("userId", created.ID).Str("role", created.Role).Msg("identity registered")
	return created, nil
}

// Login verifies the credentials and mints a signed access token. The
// claims freeze the identity's role at issuance time; without a
// revocation list the expiry is the only invalidation bound.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		metrics.LoginFailuresTotal.WithLabelValues("user_not_found").Inc()
		return "", err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		metrics.LoginFailuresTotal.WithLabelValues("bad_password").Inc()
		return "", domain.ErrInvalidCredentials
	}

	claims := domain.NewClaims(user, s.tokenTTL, time.Now().UTC())
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.jwtSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	metrics.TokensIssuedTotal.Inc()
	s.logger.Info().Str("userId", user.ID).Str("role", user.Role).Msg("token issued")
	return token, nil
}

// GetUser returns the public view of one identity.
func (s *AuthService) GetUser(ctx context.Context, id string) (*domain.UserRef, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return user.Ref(), nil
}

// ListUsers returns the public views of all identities.
func (s *AuthService) ListUsers(ctx context.Context) ([]*domain.UserRef, error) {
	users, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	refs := make([]*domain.UserRef, len(users))
	for i, u := range users {
		refs[i] = u.Ref()
	}
	return refs, nil
}
