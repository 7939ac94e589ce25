package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// RegisterInput carries all data needed to register an identity.
// Role is optional and defaults to "user".
type RegisterInput struct {
	Username string
	Email    string
	Password string
	Role     string
}

// AuthService defines identity registration, credential verification,
// token issuance and the public identity read surface.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// Login verifies the credentials and returns a signed access token.
	// Tokens are never persisted; the signature and expiry are the only
	// verification state.
	Login(ctx context.Context, email, password string) (string, error)
	GetUser(ctx context.Context, id string) (*domain.UserRef, error)
	ListUsers(ctx context.Context) ([]*domain.UserRef, error)
}
