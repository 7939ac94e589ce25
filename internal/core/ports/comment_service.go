package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// CreateCommentInput carries all data needed to create a comment.
type CreateCommentInput struct {
	PostID string
	UserID string
	Text   string
}

// EnrichedComment is the response-only composite of a comment and its
// resolved relations. A nil User or Post is the explicit absence marker
// for a failed best-effort lookup.
type EnrichedComment struct {
	Comment domain.Comment
	User    *domain.UserRef
	Post    *domain.PostRef
}

// CommentService defines use-case operations for comments.
type CommentService interface {
	// Create confirms both referenced records concurrently before
	// persisting; any failure aborts the creation.
	Create(ctx context.Context, input CreateCommentInput) (*EnrichedComment, error)
	// List returns all comments enriched best-effort, in store order.
	List(ctx context.Context) ([]EnrichedComment, error)
}
