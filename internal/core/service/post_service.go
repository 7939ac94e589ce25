package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/microblog/platform/internal/api/metrics"
	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

// PostService implements post CRUD plus author enrichment. The author is
// a soft reference: confirmed against the auth service when a post is
// created, resolved best-effort when posts are read.
type PostService struct {
	repo   ports.PostRepository
	users  ports.UserDirectory
	logger zerolog.Logger
}

func NewPostService(repo ports.PostRepository, users ports.UserDirectory, logger zerolog.Logger) *PostService {
	return &PostService{repo: repo, users: users, logger: logger}
}

// Create confirms the referenced identity before anything is persisted.
// A failed lookup — not found, network error, non-success status —
// rejects the whole creation; the post is never stored.
func (s *PostService) Create(ctx context.Context, input ports.CreatePostInput) (*ports.EnrichedPost, error) {
	var user *domain.UserRef
	err := resolveRefs(ctx, func(ctx context.Context) error {
		u, err := s.users.FindUser(ctx, input.UserID)
		if err != nil {
			return fmt.Errorf("user %s: %v", input.UserID, err)
		}
		user = u
		return nil
	})
	if err != nil {
		metrics.DependencyRejectionsTotal.WithLabelValues("post").Inc()
		s.logger.Warn().Err(err).Str("userId", input.UserID).Msg("post creation rejected")
		return nil, err
	}

	now := time.Now().UTC()
	created, err := s.repo.Create(ctx, &domain.Post{
		UserID:    input.UserID,
		Title:     input.Title,
		Content:   input.Content,
		CreatedAt: now,
		UpdatedAt: now,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("postId", created.ID).Str("userId", created.UserID).Msg("post created")
	return &ports.EnrichedPost{Post: *created, User: user}, nil
}

// Get returns one post enriched best-effort with its author.
func (s *PostService) Get(ctx context.Context, id string) (*ports.EnrichedPost, error) {
	post, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return &ports.EnrichedPost{Post: *post, User: s.lookupUser(ctx, post.UserID)}, nil
}

// List returns all posts with their authors resolved concurrently, one
// lookup per post with no cap. Results are written by input index, so
// the output order always matches the store order regardless of which
// lookup finishes first.
func (s *PostService) List(ctx context.Context) ([]ports.EnrichedPost, error) {
	posts, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]ports.EnrichedPost, len(posts))
	forEachConcurrent(len(posts), func(i int) {
		enriched[i] = ports.EnrichedPost{Post: *posts[i], User: s.lookupUser(ctx, posts[i].UserID)}
	})
	return enriched, nil
}

// Update applies a partial update; absent fields are left untouched.
func (s *PostService) Update(ctx context.Context, id string, input ports.UpdatePostInput) (*domain.Post, error) {
	updated, err := s.repo.Update(ctx, id, ports.PostUpdate{Title: input.Title, Content: input.Content})
	if err != nil {
		return nil, err
	}
	s.logger.Info().Str("postId", id).Msg("post updated")
	return updated, nil
}

func (s *PostService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Str("postId", id).Msg("post deleted")
	return nil
}

// lookupUser resolves the author best-effort: a failed lookup yields the
// nil absence marker and never fails the enclosing read.
func (s *PostService) lookupUser(ctx context.Context, id string) *domain.UserRef {
	user, err := s.users.FindUser(ctx, id)
	if err != nil {
		metrics.EnrichmentLookupsTotal.WithLabelValues("user", "miss").Inc()
		s.logger.Warn().Err(err).Str("userId", id).Msg("author lookup failed")
		return nil
	}
	metrics.EnrichmentLookupsTotal.WithLabelValues("user", "hit").Inc()
	return user
}
