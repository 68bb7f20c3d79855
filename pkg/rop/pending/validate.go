package pending

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/solo"
)

// Validate is solo.Validate over a Pending input with an asynchronous
// predicate. When skipOnInvalidResult applies the predicate is never started.
func Validate[T any](ctx context.Context, input *Pending[T],
	predicate func(ctx context.Context, in T) (bool, error),
	status rop.Status,
	message string,
	skipOnInvalidResult bool) *Pending[T] {

	return ValidateMessage(ctx, input, predicate, status,
		func(context.Context, T) string { return message }, skipOnInvalidResult)
}

func ValidateMessage[T any](ctx context.Context, input *Pending[T],
	predicate func(ctx context.Context, in T) (bool, error),
	status rop.Status,
	message func(ctx context.Context, in T) string,
	skipOnInvalidResult bool) *Pending[T] {

	return then(ctx, input, func(ctx context.Context, in rop.Result[T]) (rop.Result[T], error) {
		if skipOnInvalidResult && in.IsFailure() {
			return in, nil
		}

		valid := false
		if predicate != nil {
			var err error
			if valid, err = predicate(ctx, in.Data()); err != nil {
				return rop.Result[T]{}, err
			}
		}

		return solo.ValidateMessage(ctx, in,
			func(context.Context, T) bool { return valid }, status, message, skipOnInvalidResult), nil
	})
}

// ValidateCondition is Validate with a condition that does not depend on the
// data. condition is never started when skipOnInvalidResult applies.
func ValidateCondition[T any](ctx context.Context, input *Pending[T],
	condition func(ctx context.Context) (bool, error),
	status rop.Status,
	message string,
	skipOnInvalidResult bool) *Pending[T] {

	var predicate func(context.Context, T) (bool, error)
	if condition != nil {
		predicate = func(ctx context.Context, _ T) (bool, error) { return condition(ctx) }
	}
	return Validate(ctx, input, predicate, status, message, skipOnInvalidResult)
}

func ValidateNotNil[T any](ctx context.Context, input *Pending[T],
	status rop.Status,
	message string,
	skipOnInvalidResult bool) *Pending[T] {

	return then(ctx, input, func(ctx context.Context, in rop.Result[T]) (rop.Result[T], error) {
		return solo.ValidateNotNil(ctx, in, status, message, skipOnInvalidResult), nil
	})
}
