package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/microblog/platform/internal/core/domain"
)

func TestResolveRefs_AllSucceed(t *testing.T) {
	var a, b bool
	err := resolveRefs(context.Background(),
		func(_ context.Context) error { a = true; return nil },
		func(_ context.Context) error { b = true; return nil },
	)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !a || !b {
		t.Error("all lookups must run")
	}
}

func TestResolveRefs_FirstFailureWins(t *testing.T) {
	err := resolveRefs(context.Background(),
		func(_ context.Context) error { return nil },
		func(_ context.Context) error { return errors.New("user u9: not found") },
	)
	if !errors.Is(err, domain.ErrDependencyFailed) {
		t.Fatalf("expected ErrDependencyFailed, got %v", err)
	}
	if err.Error() == domain.ErrDependencyFailed.Error() {
		t.Error("the failed lookup detail must be carried in the message")
	}
}

func TestResolveRefs_NoLookups(t *testing.T) {
	if err := resolveRefs(context.Background()); err != nil {
		t.Errorf("no lookups must mean no error, got %v", err)
	}
}

func TestForEachConcurrent_IndexAddressing(t *testing.T) {
	out := make([]int, 5)
	forEachConcurrent(5, func(i int) {
		if i == 0 {
			time.Sleep(10 * time.Millisecond)
		}
		out[i] = i + 1
	})
	for i, v := range out {
		if v != i+1 {
			t.Errorf("index %d holds %d", i, v)
		}
	}
}

func TestForEachConcurrent_Zero(t *testing.T) {
	forEachConcurrent(0, func(_ int) {
		t.Error("fn must not be called for n=0")
	})
}
