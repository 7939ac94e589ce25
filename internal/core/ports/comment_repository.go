package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// CommentRepository defines persistence operations for comments.
// Comments are append-only: no update, no delete.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) (*domain.Comment, error)
	FindAll(ctx context.Context) ([]*domain.Comment, error)
}
