package chain

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

// Chain wraps a rop.Result with context to enable fluent chaining
type Chain[T any] struct {
	ctx    context.Context
	result rop.Result[T]
}

// Start creates a new chain from a rop.Result
func Start[T any](ctx context.Context, result rop.Result[T]) *Chain[T] {
	return &Chain[T]{
		ctx:    ctx,
		result: result,
	}
}

// FromValue creates a new chain from a successful value
func FromValue[T any](ctx context.Context, value T) *Chain[T] {
	return Start(ctx, rop.Create(value))
}

// Result returns the underlying rop.Result
func (c *Chain[T]) Result() rop.Result[T] {
	return c.result
}

// Then chains a function that returns rop.Result[U]
func Then[T, U any](c *Chain[T], onSuccess func(context.Context, T) rop.Result[U]) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Switch(c.ctx, c.result, onSuccess),
	}
}

// ThenTry chains a function that may fail with an error.
// The error becomes an OperationFailed result carrying its text.
func ThenTry[T, U any](c *Chain[T], tryOnSuccess func(context.Context, T) (U, error)) *Chain[U] {
	return Then(c, func(ctx context.Context, in T) rop.Result[U] {
		out, err := tryOnSuccess(ctx, in)
		if err != nil {
			return rop.CreateWithError[U](rop.OperationFailed, err.Error())
		}
		return rop.Create(out)
	})
}

// Map chains a pure transformation function
func Map[T, U any](c *Chain[T], onSuccess func(context.Context, T) U) *Chain[U] {
	return &Chain[U]{
		ctx:    c.ctx,
		result: solo.Map(c.ctx, c.result, onSuccess),
	}
}

func (c *Chain[T]) Validate(predicate func(context.Context, T) bool, status rop.Status, message string) *Chain[T] {
	return c.with(solo.Validate(c.ctx, c.result, predicate, status, message, false))
}

// ValidateIfValid runs the check only while the chain is still successful.
func (c *Chain[T]) ValidateIfValid(predicate func(context.Context, T) bool, status rop.Status, message string) *Chain[T] {
	return c.with(solo.Validate(c.ctx, c.result, predicate, status, message, true))
}

func (c *Chain[T]) ValidateMessage(predicate func(context.Context, T) bool, status rop.Status,
	message func(context.Context, T) string) *Chain[T] {
	return c.with(solo.ValidateMessage(c.ctx, c.result, predicate, status, message, false))
}

func (c *Chain[T]) ValidateCondition(condition bool, status rop.Status, message string) *Chain[T] {
	return c.with(solo.ValidateCondition(c.ctx, c.result, condition, status, message, false))
}

// Ensure performs a side effect without changing the result
func (c *Chain[T]) Ensure(onSuccess func(context.Context, T)) *Chain[T] {
	return c.with(solo.Tee(c.ctx, c.result,
		func(ctx context.Context, result rop.Result[T]) {
			onSuccess(ctx, result.Data())
		}))
}

// ValidData leaves the chain through rop.AsValidData
func (c *Chain[T]) ValidData() (T, error) {
	return rop.AsValidData(c.result)
}

// Finally collapses the chain into a final result using solo.Finally
func Finally[T, U any](c *Chain[T], onSuccess func(context.Context, T) U,
	onFailure func(context.Context, rop.Status, []string) U) U {
	return solo.Finally(c.ctx, c.result, onSuccess, onFailure)
}

func (c *Chain[T]) with(result rop.Result[T]) *Chain[T] {
	return &Chain[T]{ctx: c.ctx, result: result}
}
