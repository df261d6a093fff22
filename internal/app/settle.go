package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Outcome is the result of one call in a settled group.
type Outcome[T any] struct {
	Value T
	Err   error
}

// Settle3 runs three calls concurrently and waits for all of them.
// One failure does not cancel the others; each outcome is reported on its own.
func Settle3[T1, T2, T3 any](
	ctx context.Context,
	fn1 func(context.Context) (T1, error),
	fn2 func(context.Context) (T2, error),
	fn3 func(context.Context) (T3, error),
) (o1 Outcome[T1], o2 Outcome[T2], o3 Outcome[T3]) {
	var g errgroup.Group

	g.Go(func() error {
		o1.Value, o1.Err = fn1(ctx)
		return nil
	})

	g.Go(func() error {
		o2.Value, o2.Err = fn2(ctx)
		return nil
	})

	g.Go(func() error {
		o3.Value, o3.Err = fn3(ctx)
		return nil
	})

	_ = g.Wait()

	return o1, o2, o3
}
