package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/microblog/platform/internal/api/metrics"
	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

// CommentService implements comment creation and listing. Comments carry
// two soft references — author and post — owned by different services;
// both are confirmed concurrently on create and resolved best-effort on
// reads.
type CommentService struct {
	repo   ports.CommentRepository
	users  ports.UserDirectory
	posts  ports.PostDirectory
	logger zerolog.Logger
}

func NewCommentService(repo ports.CommentRepository, users ports.UserDirectory, posts ports.PostDirectory, logger zerolog.Logger) *CommentService {
	return &CommentService{repo: repo, users: users, posts: posts, logger: logger}
}

// Create confirms the referenced identity and post concurrently before
// anything is persisted. Either lookup failing rejects the creation.
func (s *CommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*ports.EnrichedComment, error) {
	var (
		user *domain.UserRef
		post *domain.PostRef
	)
	err := resolveRefs(ctx,
		func(ctx context.Context) error {
			u, err := s.users.FindUser(ctx, input.UserID)
			if err != nil {
				return fmt.Errorf("user %s: %v", input.UserID, err)
			}
			user = u
			return nil
		},
		func(ctx context.Context) error {
			p, err := s.posts.FindPost(ctx, input.PostID)
			if err != nil {
				return fmt.Errorf("post %s: %v", input.PostID, err)
			}
			post = p
			return nil
		},
	)
	if err != nil {
		metrics.DependencyRejectionsTotal.WithLabelValues("comment").Inc()
		s.logger.Warn().Err(err).Str("userId", input.UserID).Str("postId", input.PostID).Msg("comment creation rejected")
		return nil, err
	}

	created, err := s.repo.Create(ctx, &domain.Comment{
		PostID:    input.PostID,
		UserID:    input.UserID,
		Text:      input.Text,
		CreatedAt: time.Now().UTC(),
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("commentId", created.ID).Str("postId", created.PostID).Msg("comment created")
	return &ports.EnrichedComment{Comment: *created, User: user, Post: post}, nil
}

// List returns all comments with both relations resolved concurrently:
// one goroutine per comment, two lookups per goroutine, no cap and no
// shared cache. Each lookup fails independently — a miss sets that
// relation to nil without touching the other relation or any other
// comment. Results are written by input index so store order is kept.
func (s *CommentService) List(ctx context.Context) ([]ports.EnrichedComment, error) {
	comments, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	enriched := make([]ports.EnrichedComment, len(comments))
	forEachConcurrent(len(comments), func(i int) {
		c := comments[i]
		var (
			user *domain.UserRef
			post *domain.PostRef
			wg   sync.WaitGroup
		)
		wg.Add(2)
		go func() {
			defer wg.Done()
			user = s.lookupUser(ctx, c.UserID)
		}()
		go func() {
			defer wg.Done()
			post = s.lookupPost(ctx, c.PostID)
		}()
		wg.Wait()
		enriched[i] = ports.EnrichedComment{Comment: *c, User: user, Post: post}
	})
	return enriched, nil
}

func (s *CommentService) lookupUser(ctx context.Context, id string) *domain.UserRef {
	user, err := s.users.FindUser(ctx, id)
	if err != nil {
		metrics.EnrichmentLookupsTotal.WithLabelValues("user", "miss").Inc()
		s.logger.Warn().Err(err).Str("userId", id).Msg("author lookup failed")
		return nil
	}
	metrics.EnrichmentLookupsTotal.WithLabelValues("user", "hit").Inc()
	return user
}

func (s *CommentService) lookupPost(ctx context.Context, id string) *domain.PostRef {
	post, err := s.posts.FindPost(ctx, id)
	if err != nil {
		metrics.EnrichmentLookupsTotal.WithLabelValues("post", "miss").Inc()
		s.logger.Warn().Err(err).Str("postId", id).Msg("post lookup failed")
		return nil
	}
	metrics.EnrichmentLookupsTotal.WithLabelValues("post", "hit").Inc()
	return post
}
