package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// UserDirectory resolves identities owned by the auth service over the
// network. Implementations carry no retries and no cache; a failed call
// is reported as a plain error and interpreted by the caller's policy.
type UserDirectory interface {
	FindUser(ctx context.Context, id string) (*domain.UserRef, error)
}

// PostDirectory resolves posts owned by the post service over the network.
type PostDirectory interface {
	FindPost(ctx context.Context, id string) (*domain.PostRef, error)
}
