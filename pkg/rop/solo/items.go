package solo

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
)

// ToItems lifts a successful slice Result into Items through converter.
// A failed input becomes Items with the same status and messages and no metadata.
func ToItems[T any](ctx context.Context,
	input rop.Result[[]T],
	converter func(ctx context.Context, items []T) rop.Items[T]) rop.Items[T] {

	if input.IsSuccess() {
		return converter(ctx, input.Data())
	}
	return rop.ItemsFrom[[]T, T](input)
}

// AsItems is ToItems with a total equal to the number of items.
func AsItems[T any](ctx context.Context, input rop.Result[[]T]) rop.Items[T] {
	return ToItems(ctx, input, func(_ context.Context, items []T) rop.Items[T] {
		return rop.CreateItems(items, len(items))
	})
}
