package service

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/microblog/platform/internal/core/domain"
)

// resolveRefs runs every reference lookup concurrently and fails fast on
// the first error. It implements the strict creation policy: callers
// must invoke it before persisting anything, so a missing or unreachable
// reference rejects the whole write.
func resolveRefs(ctx context.Context, lookups ...func(context.Context) error) error {
	g, gctx := errgroup.WithContext(ctx)
	for _, lookup := range lookups {
		lookup := lookup
		g.Go(func() error { return lookup(gctx) })
	}
	if err := g.Wait(); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrDependencyFailed, err)
	}
	return nil
}

// forEachConcurrent runs fn once per index and waits for all calls to
// finish. There is no concurrency cap: n primary records needing k
// relations each produce up to n*k in-flight lookups. fn writes its
// result by index, so output order is independent of completion order.
func forEachConcurrent(n int, fn func(i int)) {
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		i := i
		go func() {
			defer wg.Done()
			fn(i)
		}()
	}
	wg.Wait()
}
