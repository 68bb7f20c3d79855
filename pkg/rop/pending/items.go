package pending

import (
	"context"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/core"
)

// Items is a rop.Items that is still being computed.
type Items[T any] struct {
	f *core.Future[rop.Items[T]]
}

func (p *Items[T]) Await(ctx context.Context) (rop.Items[T], error) {
	return p.f.Await(ctx)
}

func (p *Items[T]) Done() <-chan struct{} {
	return p.f.Done()
}

// ToItems lifts a successful slice into rop.Items with converter. A failed
// input becomes Items with the same status and messages; converter is not started.
func ToItems[T any](ctx context.Context, input *Pending[[]T],
	converter func(ctx context.Context, items []T) (rop.Items[T], error)) *Items[T] {

	return &Items[T]{f: core.Go(ctx, func(ctx context.Context) (rop.Items[T], error) {
		in, err := input.Await(ctx)
		if err != nil {
			return rop.Items[T]{}, err
		}
		if in.IsFailure() {
			return rop.ItemsFrom[[]T, T](in), nil
		}
		return converter(ctx, in.Data())
	})}
}

// AsItems is ToItems with a total equal to the number of items.
func AsItems[T any](ctx context.Context, input *Pending[[]T]) *Items[T] {
	return ToItems(ctx, input, func(_ context.Context, items []T) (rop.Items[T], error) {
		return rop.CreateItems(items, len(items)), nil
	})
}

// AsValidItems awaits input and unwraps its items with rop.AsValidData.
func AsValidItems[T any](ctx context.Context, input *Items[T]) ([]T, error) {
	r, err := input.Await(ctx)
	if err != nil {
		return nil, err
	}
	return rop.AsValidData(r.Result)
}
