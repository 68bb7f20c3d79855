package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

func Succeed[T any](input T) rop.Result[T] {
	return rop.Create(input)
}

func Fail[T any](status rop.Status, messages ...string) rop.Result[T] {
	return rop.CreateWithError[T](status, messages...)
}

// Map converts the data of a successful input. A failed input is passed
// through with its status and messages; onSuccess is not called.
func Map[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out) rop.Result[Out] {

	if input.IsSuccess() {
		return rop.Create(onSuccess(ctx, input.Data()))
	}
	return rop.FailFrom[In, Out](input)
}

// MapList converts every item of a successful input, keeping their order.
func MapList[In any, Out any](ctx context.Context,
	input rop.Result[[]In],
	onItem func(ctx context.Context, r In) Out) rop.Result[[]Out] {

	return Map(ctx, input, func(ctx context.Context, items []In) []Out {
		out := make([]Out, 0, len(items))
		for _, item := range items {
			out = append(out, onItem(ctx, item))
		}
		return out
	})
}

// Switch hands the data of a successful input to onSuccess and returns its
// Result as is. A failed input is passed through.
func Switch[In any, Out any](ctx context.Context,
	input rop.Result[In],
	onSuccess func(ctx context.Context, r In) rop.Result[Out]) rop.Result[Out] {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Data())
	}
	return rop.FailFrom[In, Out](input)
}

func Tee[T any](ctx context.Context,
	input rop.Result[T],
	onSuccess func(ctx context.Context, r rop.Result[T])) rop.Result[T] {

	if input.IsSuccess() {
		onSuccess(ctx, input)
	}

	return input
}

func Finally[In, Out any](ctx context.Context, input rop.Result[In],
	onSuccess func(ctx context.Context, r In) Out,
	onFailure func(ctx context.Context, status rop.Status, messages []string) Out) Out {

	if input.IsSuccess() {
		return onSuccess(ctx, input.Data())
	}
	return onFailure(ctx, input.Status(), input.Messages())
}
