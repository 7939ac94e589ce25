package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

type stubCommentRepo struct {
	comments []*domain.Comment
	nextID   int
}

func (r *stubCommentRepo) Create(_ context.Context, comment *domain.Comment) (*domain.Comment, error) {
	r.nextID++
	created := *comment
	created.ID = string(rune('0' + r.nextID))
	r.comments = append(r.comments, &created)
	c := created
	return &c, nil
}

func (r *stubCommentRepo) FindAll(_ context.Context) ([]*domain.Comment, error) {
	out := make([]*domain.Comment, len(r.comments))
	for i, c := range r.comments {
		cc := *c
		out[i] = &cc
	}
	return out, nil
}

type stubPostDirectory struct {
	findFn func(ctx context.Context, id string) (*domain.PostRef, error)
}

func (d *stubPostDirectory) FindPost(ctx context.Context, id string) (*domain.PostRef, error) {
	return d.findFn(ctx, id)
}

func postRefFor(id string) *domain.PostRef {
	return &domain.PostRef{ID: id, UserID: "u1", Title: "post " + id, Content: "body"}
}

func okUsers() *stubUserDirectory {
	return &stubUserDirectory{findFn: func(_ context.Context, id string) (*domain.UserRef, error) {
		return userRefFor(id), nil
	}}
}

func okPosts() *stubPostDirectory {
	return &stubPostDirectory{findFn: func(_ context.Context, id string) (*domain.PostRef, error) {
		return postRefFor(id), nil
	}}
}

func TestCommentService_CreateEmbedsBothRelations(t *testing.T) {
	repo := &stubCommentRepo{}
	svc := NewCommentService(repo, okUsers(), okPosts(), zerolog.Nop())

	enriched, err := svc.Create(context.Background(), ports.CreateCommentInput{
		PostID: "p1", UserID: "u1", Text: "nice",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if enriched.User == nil || enriched.User.ID != "u1" {
		t.Errorf("expected embedded author, got %+v", enriched.User)
	}
	if enriched.Post == nil || enriched.Post.ID != "p1" {
		t.Errorf("expected embedded post, got %+v", enriched.Post)
	}
	if len(repo.comments) != 1 {
		t.Errorf("expected one persisted comment, got %d", len(repo.comments))
	}
}

func TestCommentService_CreateRejectedWhenPostLookupFails(t *testing.T) {
	repo := &stubCommentRepo{}
	posts := &stubPostDirectory{findFn: func(_ context.Context, _ string) (*domain.PostRef, error) {
		return nil, domain.ErrPostNotFound
	}}
	svc := NewCommentService(repo, okUsers(), posts, zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCommentInput{
		PostID: "ghost", UserID: "u1", Text: "nice",
	})
	if !errors.Is(err, domain.ErrDependencyFailed) {
		t.Fatalf("expected ErrDependencyFailed, got %v", err)
	}
	if len(repo.comments) != 0 {
		t.Errorf("comment must not be persisted after a rejected lookup, found %d", len(repo.comments))
	}
}

func TestCommentService_CreateRejectedWhenUserLookupFails(t *testing.T) {
	repo := &stubCommentRepo{}
	users := &stubUserDirectory{findFn: func(_ context.Context, _ string) (*domain.UserRef, error) {
		return nil, errors.New("connection refused")
	}}
	svc := NewCommentService(repo, users, okPosts(), zerolog.Nop())

	_, err := svc.Create(context.Background(), ports.CreateCommentInput{
		PostID: "p1", UserID: "ghost", Text: "nice",
	})
	if !errors.Is(err, domain.ErrDependencyFailed) {
		t.Fatalf("expected ErrDependencyFailed, got %v", err)
	}
	if len(repo.comments) != 0 {
		t.Errorf("comment must not be persisted, found %d", len(repo.comments))
	}
}

func TestCommentService_ListRelationsFailIndependently(t *testing.T) {
	repo := &stubCommentRepo{}
	for _, c := range []struct{ post, user string }{
		{"p1", "u1"},
		{"p2", "gone"},
		{"dead", "u3"},
	} {
		if _, err := repo.Create(context.Background(), &domain.Comment{PostID: c.post, UserID: c.user, Text: "x"}); err != nil {
			t.Fatal(err)
		}
	}

	users := &stubUserDirectory{findFn: func(_ context.Context, id string) (*domain.UserRef, error) {
		if id == "gone" {
			return nil, domain.ErrUserNotFound
		}
		return userRefFor(id), nil
	}}
	posts := &stubPostDirectory{findFn: func(_ context.Context, id string) (*domain.PostRef, error) {
		if id == "dead" {
			return nil, domain.ErrPostNotFound
		}
		return postRefFor(id), nil
	}}
	svc := NewCommentService(repo, users, posts, zerolog.Nop())

	enriched, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enriched) != 3 {
		t.Fatalf("expected 3 comments, got %d", len(enriched))
	}

	if enriched[0].User == nil || enriched[0].Post == nil {
		t.Errorf("fully resolvable comment must carry both relations: %+v", enriched[0])
	}
	if enriched[1].User != nil {
		t.Errorf("missing author must be nil, got %+v", enriched[1].User)
	}
	if enriched[1].Post == nil || enriched[1].Post.ID != "p2" {
		t.Errorf("post relation must survive an author miss, got %+v", enriched[1].Post)
	}
	if enriched[2].Post != nil {
		t.Errorf("missing post must be nil, got %+v", enriched[2].Post)
	}
	if enriched[2].User == nil || enriched[2].User.ID != "u3" {
		t.Errorf("author relation must survive a post miss, got %+v", enriched[2].User)
	}
}

func TestCommentService_ListEmptyStore(t *testing.T) {
	svc := NewCommentService(&stubCommentRepo{}, okUsers(), okPosts(), zerolog.Nop())

	enriched, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(enriched) != 0 {
		t.Errorf("expected empty result, got %d", len(enriched))
	}
}
