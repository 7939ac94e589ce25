package ports

import (
	"context"

	"github.com/microblog/platform/internal/core/domain"
)

// CreatePostInput carries all data needed to create a post.
type CreatePostInput struct {
	UserID  string
	Title   string
	Content string
}

// UpdatePostInput carries a partial post update; nil fields are untouched.
type UpdatePostInput struct {
	Title   *string
	Content *string
}

// EnrichedPost is the response-only composite of a post and its resolved
// author. User is nil when a best-effort lookup failed; it is never
// partially filled. EnrichedPost is never stored.
type EnrichedPost struct {
	Post domain.Post
	User *domain.UserRef
}

// PostService defines use-case operations for posts.
type PostService interface {
	// Create confirms the referenced identity before persisting. A failed
	// lookup aborts the whole creation and nothing is stored.
	Create(ctx context.Context, input CreatePostInput) (*EnrichedPost, error)
	// Get returns a post enriched best-effort with its author.
	Get(ctx context.Context, id string) (*EnrichedPost, error)
	// List returns all posts enriched best-effort, in store order.
	List(ctx context.Context) ([]EnrichedPost, error)
	Update(ctx context.Context, id string, input UpdatePostInput) (*domain.Post, error)
	Delete(ctx context.Context, id string) error
}
