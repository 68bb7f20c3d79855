package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Validate checks the data of input with predicate.
//
// With skipOnInvalidResult set, a failed input is returned untouched and the
// predicate is not called. Otherwise a passing predicate returns input as is
// (a failed input stays failed) and a failing one returns the same data with
// status replaced and message appended.
func Validate[T any](ctx context.Context,
	input rop.Result[T],
	predicate func(ctx context.Context, in T) bool,
	status rop.Status,
	message string,
	skipOnInvalidResult bool) rop.Result[T] {

	return ValidateMessage(ctx, input, predicate, status,
		func(context.Context, T) string { return message }, skipOnInvalidResult)
}

// ValidateMessage is Validate with the message built from the current data.
// message is only called when the check fails.
func ValidateMessage[T any](ctx context.Context,
	input rop.Result[T],
	predicate func(ctx context.Context, in T) bool,
	status rop.Status,
	message func(ctx context.Context, in T) string,
	skipOnInvalidResult bool) rop.Result[T] {

	if skipOnInvalidResult && input.IsFailure() {
		return input
	}

	if predicate != nil && predicate(ctx, input.Data()) {
		return input
	}

	return input.WithMessage(status, message(ctx, input.Data()))
}

// ValidateCondition is Validate with a precomputed condition.
func ValidateCondition[T any](ctx context.Context,
	input rop.Result[T],
	condition bool,
	status rop.Status,
	message string,
	skipOnInvalidResult bool) rop.Result[T] {

	return Validate(ctx, input, func(context.Context, T) bool { return condition },
		status, message, skipOnInvalidResult)
}

// ValidateNotNil fails input when its data is nil (see rop.IsNil).
func ValidateNotNil[T any](ctx context.Context,
	input rop.Result[T],
	status rop.Status,
	message string,
	skipOnInvalidResult bool) rop.Result[T] {

	return Validate(ctx, input, func(_ context.Context, in T) bool { return !rop.IsNil(in) },
		status, message, skipOnInvalidResult)
}
