package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// Combine merges input with one dependent Result produced by requests.
// A failed input short-circuits before requests is called.
func Combine[In, T1, Out any](ctx context.Context,
	input rop.Result[In],
	requests func(ctx context.Context, in In) rop.Result[T1],
	mapF func(ctx context.Context, in In, r1 T1) Out) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) rop.Result[Out] {
		return Combined(ctx, in, requests(ctx, in), mapF)
	})
}

// Combine2 merges input with two independent Results. The first failing
// Result, in positional order, decides the outcome.
func Combine2[In, T1, T2, Out any](ctx context.Context,
	input rop.Result[In],
	requests func(ctx context.Context, in In) (rop.Result[T1], rop.Result[T2]),
	mapF func(ctx context.Context, in In, r1 T1, r2 T2) Out) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) rop.Result[Out] {
		r1, r2 := requests(ctx, in)
		return Combined2(ctx, in, r1, r2, mapF)
	})
}

func Combine3[In, T1, T2, T3, Out any](ctx context.Context,
	input rop.Result[In],
	requests func(ctx context.Context, in In) (rop.Result[T1], rop.Result[T2], rop.Result[T3]),
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3) Out) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) rop.Result[Out] {
		r1, r2, r3 := requests(ctx, in)
		return Combined3(ctx, in, r1, r2, r3, mapF)
	})
}

func Combine4[In, T1, T2, T3, T4, Out any](ctx context.Context,
	input rop.Result[In],
	requests func(ctx context.Context, in In) (rop.Result[T1], rop.Result[T2], rop.Result[T3], rop.Result[T4]),
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3, r4 T4) Out) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) rop.Result[Out] {
		r1, r2, r3, r4 := requests(ctx, in)
		return Combined4(ctx, in, r1, r2, r3, r4, mapF)
	})
}

func Combine5[In, T1, T2, T3, T4, T5, Out any](ctx context.Context,
	input rop.Result[In],
	requests func(ctx context.Context, in In) (rop.Result[T1], rop.Result[T2], rop.Result[T3], rop.Result[T4], rop.Result[T5]),
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3, r4 T4, r5 T5) Out) rop.Result[Out] {

	return Switch(ctx, input, func(ctx context.Context, in In) rop.Result[Out] {
		r1, r2, r3, r4, r5 := requests(ctx, in)
		return Combined5(ctx, in, r1, r2, r3, r4, r5, mapF)
	})
}

// Combined folds already materialized Results; it backs both the solo and
// the pending Combine family.
func Combined[In, T1, Out any](ctx context.Context, in In,
	r1 rop.Result[T1],
	mapF func(ctx context.Context, in In, r1 T1) Out) rop.Result[Out] {

	if r1.IsFailure() {
		return rop.FailFrom[T1, Out](r1)
	}
	return rop.Create(mapF(ctx, in, r1.Data()))
}

func Combined2[In, T1, T2, Out any](ctx context.Context, in In,
	r1 rop.Result[T1], r2 rop.Result[T2],
	mapF func(ctx context.Context, in In, r1 T1, r2 T2) Out) rop.Result[Out] {

	switch {
	case r1.IsFailure():
		return rop.FailFrom[T1, Out](r1)
	case r2.IsFailure():
		return rop.FailFrom[T2, Out](r2)
	}
	return rop.Create(mapF(ctx, in, r1.Data(), r2.Data()))
}

func Combined3[In, T1, T2, T3, Out any](ctx context.Context, in In,
	r1 rop.Result[T1], r2 rop.Result[T2], r3 rop.Result[T3],
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3) Out) rop.Result[Out] {

	switch {
	case r1.IsFailure():
		return rop.FailFrom[T1, Out](r1)
	case r2.IsFailure():
		return rop.FailFrom[T2, Out](r2)
	case r3.IsFailure():
		return rop.FailFrom[T3, Out](r3)
	}
	return rop.Create(mapF(ctx, in, r1.Data(), r2.Data(), r3.Data()))
}

func Combined4[In, T1, T2, T3, T4, Out any](ctx context.Context, in In,
	r1 rop.Result[T1], r2 rop.Result[T2], r3 rop.Result[T3], r4 rop.Result[T4],
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3, r4 T4) Out) rop.Result[Out] {

	switch {
	case r1.IsFailure():
		return rop.FailFrom[T1, Out](r1)
	case r2.IsFailure():
		return rop.FailFrom[T2, Out](r2)
	case r3.IsFailure():
		return rop.FailFrom[T3, Out](r3)
	case r4.IsFailure():
		return rop.FailFrom[T4, Out](r4)
	}
	return rop.Create(mapF(ctx, in, r1.Data(), r2.Data(), r3.Data(), r4.Data()))
}

func Combined5[In, T1, T2, T3, T4, T5, Out any](ctx context.Context, in In,
	r1 rop.Result[T1], r2 rop.Result[T2], r3 rop.Result[T3], r4 rop.Result[T4], r5 rop.Result[T5],
	mapF func(ctx context.Context, in In, r1 T1, r2 T2, r3 T3, r4 T4, r5 T5) Out) rop.Result[Out] {

	switch {
	case r1.IsFailure():
		return rop.FailFrom[T1, Out](r1)
	case r2.IsFailure():
		return rop.FailFrom[T2, Out](r2)
	case r3.IsFailure():
		return rop.FailFrom[T3, Out](r3)
	case r4.IsFailure():
		return rop.FailFrom[T4, Out](r4)
	case r5.IsFailure():
		return rop.FailFrom[T5, Out](r5)
	}
	return rop.Create(mapF(ctx, in, r1.Data(), r2.Data(), r3.Data(), r4.Data(), r5.Data()))
}
