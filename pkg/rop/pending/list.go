package pending

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/fluentrop/pkg/rop"
	"github.com/ib-77/fluentrop/pkg/rop/core"
)

// MapList converts every item of a successful input, keeping their order.
// Items are processed by at most core.GetWorkerMaxCount(ctx, 1) goroutines at
// a time, one by one unless the context says otherwise. The first error wins.
func MapList[In, Out any](ctx context.Context, input *Pending[[]In],
	onItem func(ctx context.Context, r In) (Out, error)) *Pending[[]Out] {

	return Map(ctx, input, func(ctx context.Context, items []In) ([]Out, error) {
		out := make([]Out, len(items))

		g := new(errgroup.Group)
		g.SetLimit(core.GetWorkerMaxCount(ctx, 1))

		for i, item := range items {
			g.Go(recovered(func() error {
				v, err := onItem(ctx, item)
				if err != nil {
					return err
				}
				out[i] = v
				return nil
			}))
		}

		if err := g.Wait(); err != nil {
			return nil, err
		}
		return out, nil
	})
}

func recovered(fn func() error) func() error {
	return func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = rop.NewPanicError(r)
			}
		}()
		return fn()
	}
}
