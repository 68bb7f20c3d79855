package pending

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/core"
)

// Pending is a Result that is still being computed. Besides the Result it can
// settle with an error: an error returned by an asynchronous step, a
// recovered panic (*rop.PanicError) or the context error seen while waiting.
type Pending[T any] struct {
	f *core.Future[rop.Result[T]]
}

// Go starts compute in its own goroutine.
func Go[T any](ctx context.Context, compute func(ctx context.Context) (rop.Result[T], error)) *Pending[T] {
	return &Pending[T]{f: core.Go(ctx, compute)}
}

// From wraps an already known Result.
func From[T any](r rop.Result[T]) *Pending[T] {
	return &Pending[T]{f: core.Resolved(r)}
}

// Reject returns a Pending settled with err.
func Reject[T any](err error) *Pending[T] {
	return &Pending[T]{f: core.Rejected[rop.Result[T]](err)}
}

func (p *Pending[T]) Await(ctx context.Context) (rop.Result[T], error) {
	return p.f.Await(ctx)
}

func (p *Pending[T]) Done() <-chan struct{} {
	return p.f.Done()
}

// then awaits input and, unless it settled with an error, hands the Result to
// step. step runs in a new goroutine; errors skip it.
func then[In, Out any](ctx context.Context, input *Pending[In],
	step func(ctx context.Context, in rop.Result[In]) (rop.Result[Out], error)) *Pending[Out] {

	return Go(ctx, func(ctx context.Context) (rop.Result[Out], error) {
		in, err := input.Await(ctx)
		if err != nil {
			return rop.Result[Out]{}, err
		}
		return step(ctx, in)
	})
}

// Map converts the data of a successful input with onSuccess, which is only
// started once input is known to be successful.
func Map[In, Out any](ctx context.Context, input *Pending[In],
	onSuccess func(ctx context.Context, r In) (Out, error)) *Pending[Out] {

	return then(ctx, input, func(ctx context.Context, in rop.Result[In]) (rop.Result[Out], error) {
		if in.IsFailure() {
			return rop.FailFrom[In, Out](in), nil
		}
		out, err := onSuccess(ctx, in.Data())
		if err != nil {
			return rop.Result[Out]{}, err
		}
		return rop.Create(out), nil
	})
}

// Switch continues a successful input with onSuccess and returns its Result.
func Switch[In, Out any](ctx context.Context, input *Pending[In],
	onSuccess func(ctx context.Context, r In) (rop.Result[Out], error)) *Pending[Out] {

	return then(ctx, input, func(ctx context.Context, in rop.Result[In]) (rop.Result[Out], error) {
		if in.IsFailure() {
			return rop.FailFrom[In, Out](in), nil
		}
		return onSuccess(ctx, in.Data())
	})
}

// Catch replaces an error settled by input with the Result of onError. A
// Result with a failure status is not an error and passes through.
func Catch[T any](ctx context.Context, input *Pending[T],
	onError func(ctx context.Context, err error) rop.Result[T]) *Pending[T] {

	return Go(ctx, func(ctx context.Context) (rop.Result[T], error) {
		r, err := input.Await(ctx)
		if err != nil {
			return onError(ctx, err), nil
		}
		return r, nil
	})
}

// AsValidData awaits input and unwraps it with rop.AsValidData. An error
// settled by input is returned unchanged.
func AsValidData[T any](ctx context.Context, input *Pending[T]) (T, error) {
	r, err := input.Await(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return rop.AsValidData(r)
}
