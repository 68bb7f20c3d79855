package pending

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

// join waits for every branch. A failing branch does not stop its siblings;
// once all of them are done the error of the earliest branch by position wins.
func join(ctx context.Context, waits ...func(ctx context.Context) error) error {
	var g errgroup.Group
	errs := make([]error, len(waits))
	for i, wait := range waits {
		g.Go(func() error {
			errs[i] = recovered(func() error { return wait(ctx) })()
			return nil
		})
	}
	_ = g.Wait()

	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

func awaitInto[T any](p *Pending[T], dst *rop.Result[T]) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		r, err := p.Await(ctx)
		if err != nil {
			return err
		}
		*dst = r
		return nil
	}
}

// Combine merges a successful input with one asynchronous branch started by
// requests. A failed input short-circuits before requests is called.
func Combine[In, T1, Out any](ctx context.Context, input *Pending[In],
	requests func(ctx context.Context, in In) *Pending[T1],
	mapF func(ctx context.Context, in In, r1 T1) Out) *Pending[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) (rop.Result[Out], error) {
		var r1 rop.Result[T1]
		if err := join(ctx, awaitInto(requests(ctx, in), &r1)); err != nil {
			return rop.Result[Out]{}, err
		}
		return solo.Combined(ctx, in, r1, mapF), nil
	})
}

// Combine2 merges a successful input with two branches. requests starts all
// branches before any is awaited; once every branch settled, the first
// failing Result in positional order decides the outcome.
func Combine2[In, T1, T2, Out any](ctx context.Context, input *Pending[In],
	requests func(ctx context.Context, in In) (*Pending[T1], *Pending[T2]),
	mapF func(ctx context.Context, in In, r1 T1, r2 T2) Out) *Pending[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) (rop.Result[Out], error) {
		p1, p2 := requests(ctx, in)

		var (
			r1 rop.Result[T1]
			r2 rop.Result[T2]
		)
		if err := join(ctx, awaitInto(p1, &r1), awaitInto(p2, &r2)); err != nil {
			return rop.Result[Out]{}, err
		}
		return solo.Combined2(ctx, in, r1, r2, mapF), nil
	})
}

func Combine3[In, T1, T2, T3, Out any](ctx context.Context, input *Pending[In],
	requests func(ctx context.Context, in In) (*Pending[T1], *Pending[T2], *Pending[T3]),
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3) Out) *Pending[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) (rop.Result[Out], error) {
		p1, p2, p3 := requests(ctx, in)

		var (
			r1 rop.Result[T1]
			r2 rop.Result[T2]
			r3 rop.Result[T3]
		)
		if err := join(ctx, awaitInto(p1, &r1), awaitInto(p2, &r2), awaitInto(p3, &r3)); err != nil {
			return rop.Result[Out]{}, err
		}
		return solo.Combined3(ctx, in, r1, r2, r3, mapF), nil
	})
}

func Combine4[In, T1, T2, T3, T4, Out any](ctx context.Context, input *Pending[In],
	requests func(ctx context.Context, in In) (*Pending[T1], *Pending[T2], *Pending[T3], *Pending[T4]),
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3, r4 T4) Out) *Pending[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) (rop.Result[Out], error) {
		p1, p2, p3, p4 := requests(ctx, in)

		var (
			r1 rop.Result[T1]
			r2 rop.Result[T2]
			r3 rop.Result[T3]
			r4 rop.Result[T4]
		)
		if err := join(ctx, awaitInto(p1, &r1), awaitInto(p2, &r2), awaitInto(p3, &r3),
			awaitInto(p4, &r4)); err != nil {
			return rop.Result[Out]{}, err
		}
		return solo.Combined4(ctx, in, r1, r2, r3, r4, mapF), nil
	})
}

func Combine5[In, T1, T2, T3, T4, T5, Out any](ctx context.Context, input *Pending[In],
	requests func(ctx context.Context, in In) (*Pending[T1], *Pending[T2], *Pending[T3], *Pending[T4], *Pending[T5]),
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3, r4 T4, r5 T5) Out) *Pending[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) (rop.Result[Out], error) {
		p1, p2, p3, p4, p5 := requests(ctx, in)

		var (
			r1 rop.Result[T1]
			r2 rop.Result[T2]
			r3 rop.Result[T3]
			r4 rop.Result[T4]
			r5 rop.Result[T5]
		)
		if err := join(ctx, awaitInto(p1, &r1), awaitInto(p2, &r2), awaitInto(p3, &r3),
			awaitInto(p4, &r4), awaitInto(p5, &r5)); err != nil {
			return rop.Result[Out]{}, err
		}
		return solo.Combined5(ctx, in, r1, r2, r3, r4, r5, mapF), nil
	})
}
