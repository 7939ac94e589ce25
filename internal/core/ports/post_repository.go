package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// PostUpdate carries a partial update. Nil fields are left untouched.
type PostUpdate struct {
	Title   *string
	Content *string
}

// PostRepository defines persistence operations for posts.
type PostRepository interface {
	Create(ctx context.Context, post *domain.Post) (*domain.Post, error)
	FindByID(ctx context.Context, id string) (*domain.Post, error)
	FindAll(ctx context.Context) ([]*domain.Post, error)
	Update(ctx context.Context, id string, update PostUpdate) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
