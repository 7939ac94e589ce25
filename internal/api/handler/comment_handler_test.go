package handler_test

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"testing"

	"github.com/microblog/platform/internal/api/handler"
	"github.com/microblog/platform/internal/core/domain"
	"github.com/microblog/platform/internal/core/ports"
)

func contains(s, substr string) bool {
	return strings.Contains(s, substr)
}

type stubCommentService struct {
	createFn func(ctx context.Context, input ports.CreateCommentInput) (*ports.EnrichedComment, error)
	listFn   func(ctx context.Context) ([]ports.EnrichedComment, error)
}

func (s *stubCommentService) Create(ctx context.Context, input ports.CreateCommentInput) (*ports.EnrichedComment, error) {
	return s.createFn(ctx, input)
}

func (s *stubCommentService) List(ctx context.Context) ([]ports.EnrichedComment, error) {
	return s.listFn(ctx)
}

func TestCommentHandler_Create(t *testing.T) {
	svc := &stubCommentService{
		createFn: func(_ context.Context, input ports.CreateCommentInput) (*ports.EnrichedComment, error) {
			return &ports.EnrichedComment{
				Comment: domain.Comment{ID: "c1", PostID: input.PostID, UserID: input.UserID, Text: input.Text},
				User:    &domain.UserRef{ID: input.UserID, Username: "alice"},
				Post:    &domain.PostRef{ID: input.PostID, UserID: "u2", Title: "target"},
			}, nil
		},
	}
	e := newTestEcho()
	e.POST("/comments", handler.NewCommentHandler(svc).Create)

	rec := doJSON(e, http.MethodPost, "/comments",
		`{"postId":"p1","userId":"u1","text":"nice"}`)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	body := rec.Body.String()
	for _, want := range []string{`"id":"c1"`, `"username":"alice"`, `"title":"target"`} {
		if !contains(body, want) {
			t.Errorf("missing %s in body: %s", want, body)
		}
	}
}

func TestCommentHandler_CreateDependencyRejected(t *testing.T) {
	svc := &stubCommentService{
		createFn: func(_ context.Context, _ ports.CreateCommentInput) (*ports.EnrichedComment, error) {
			return nil, fmt.Errorf("%w: post ghost: not found", domain.ErrDependencyFailed)
		},
	}
	e := newTestEcho()
	e.POST("/comments", handler.NewCommentHandler(svc).Create)

	rec := doJSON(e, http.MethodPost, "/comments",
		`{"postId":"ghost","userId":"u1","text":"nice"}`)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for a rejected reference, got %d", rec.Code)
	}
}

func TestCommentHandler_CreateValidation(t *testing.T) {
	e := newTestEcho()
	e.POST("/comments", handler.NewCommentHandler(&stubCommentService{}).Create)

	rec := doJSON(e, http.MethodPost, "/comments", `{"postId":"p1"}`)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !contains(body, `"field":"userid"`) || !contains(body, `"field":"text"`) {
		t.Errorf("expected field errors for userid and text, got: %s", body)
	}
}

func TestCommentHandler_ListKeepsNullRelationMarkers(t *testing.T) {
	svc := &stubCommentService{
		listFn: func(_ context.Context) ([]ports.EnrichedComment, error) {
			return []ports.EnrichedComment{
				{
					Comment: domain.Comment{ID: "c1", PostID: "p1", UserID: "gone", Text: "x"},
					User:    nil,
					Post:    &domain.PostRef{ID: "p1", Title: "still here"},
				},
			}, nil
		},
	}
	e := newTestEcho()
	e.GET("/comments", handler.NewCommentHandler(svc).List)

	rec := doJSON(e, http.MethodGet, "/comments", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	body := rec.Body.String()
	if !contains(body, `"user":null`) {
		t.Errorf("unresolved author must serialize as null, got: %s", body)
	}
	if !contains(body, `"still here"`) {
		t.Errorf("resolved relation must survive the other's miss, got: %s", body)
	}
}
