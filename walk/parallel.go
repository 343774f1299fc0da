package walk

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"jsast/ast"
)

// EachProgram applies fn to every unit of a Programs batch, running at
// most jobs units at a time (GOMAXPROCS when jobs <= 0). Program roots
// are independent, and read-only traversal of an unmodified tree is safe
// from multiple goroutines, so fn must not mutate any unit. Cancellation
// is checked before each unit starts; the first error cancels the rest
// and is returned.
func EachProgram(ctx context.Context, progs *ast.Programs, jobs int, fn func(*ast.Program) error) error {
	if progs == nil || len(progs.Units) == 0 {
		return nil
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(min(jobs, len(progs.Units)))

	for _, unit := range progs.Units {
		unit := unit
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			return fn(unit)
		})
	}

	return g.Wait()
}
